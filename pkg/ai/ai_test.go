package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

type scriptedGenerator struct {
	text  string
	err   error
	calls int
}

func (s *scriptedGenerator) Generate(_ context.Context, _ string) (string, error) {
	s.calls++
	return s.text, s.err
}

func TestFallbackUsesPrimary(t *testing.T) {
	primary := &scriptedGenerator{text: "from primary"}
	secondary := &scriptedGenerator{text: "from secondary"}
	f := NewFallbackGenerator(primary, secondary, zerolog.Nop())

	got, err := f.Generate(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got != "from primary" {
		t.Errorf("Generate() = %q", got)
	}
	if secondary.calls != 0 {
		t.Error("secondary should not run when primary succeeds")
	}
}

func TestFallbackOnPrimaryFailure(t *testing.T) {
	primary := &scriptedGenerator{err: errors.New("quota exceeded")}
	secondary := &scriptedGenerator{text: "from secondary"}
	f := NewFallbackGenerator(primary, secondary, zerolog.Nop())

	got, err := f.Generate(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got != "from secondary" {
		t.Errorf("Generate() = %q", got)
	}
}

func TestFallbackSurfacesPrimaryError(t *testing.T) {
	primaryErr := errors.New("quota exceeded")
	primary := &scriptedGenerator{err: primaryErr}
	secondary := &scriptedGenerator{err: errors.New("connection refused")}
	f := NewFallbackGenerator(primary, secondary, zerolog.Nop())

	_, err := f.Generate(context.Background(), "prompt")
	if !errors.Is(err, primaryErr) {
		t.Fatalf("Generate() error = %v, want primary failure", err)
	}
}

func TestNewTextGeneratorNotConfigured(t *testing.T) {
	_, err := NewTextGenerator(context.Background(), Config{}, zerolog.Nop())
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("NewTextGenerator() error = %v, want ErrNotConfigured", err)
	}

	_, err = NewTextGenerator(context.Background(), Config{Provider: ProviderGemini}, zerolog.Nop())
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("NewTextGenerator(gemini, no key) error = %v, want ErrNotConfigured", err)
	}
}

func TestNewTextGeneratorOllama(t *testing.T) {
	gen, err := NewTextGenerator(context.Background(), Config{
		Provider:      ProviderOllama,
		OllamaBaseURL: "http://localhost:11434",
	}, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewTextGenerator() error = %v", err)
	}
	if _, ok := gen.(*OllamaService); !ok {
		t.Fatalf("generator = %T, want *OllamaService", gen)
	}
}

func TestOllamaGenerate(t *testing.T) {
	var gotReq map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("path = %q", r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&gotReq)
		_ = json.NewEncoder(w).Encode(map[string]any{"response": "hello", "done": true})
	}))
	defer srv.Close()

	o := NewOllamaService(srv.URL, "llama3")
	got, err := o.Generate(context.Background(), "say hello")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got != "hello" {
		t.Errorf("Generate() = %q", got)
	}
	if gotReq["model"] != "llama3" || gotReq["prompt"] != "say hello" {
		t.Errorf("request = %v", gotReq)
	}
	if gotReq["stream"] != false {
		t.Error("streaming must be disabled")
	}
}

func TestOllamaGenerateAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()

	o := NewOllamaService(srv.URL, "nope")
	_, err := o.Generate(context.Background(), "hi")
	if err == nil {
		t.Fatal("Generate() expected error on non-200 status")
	}
}
