// Package llmjson normalizes raw LLM output into parseable JSON.
// Models routinely wrap their answers in markdown fences, prose, or
// single-quoted pseudo-JSON; this package strips that noise before parsing.
package llmjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyResponse indicates the model returned no text at all.
// Retrying the same prompt will not help, so callers should not retry.
var ErrEmptyResponse = errors.New("empty response from model")

// MalformedError indicates text was returned but could not be coerced into
// valid JSON. It keeps the raw offending text for diagnosis.
type MalformedError struct {
	Raw string
	Err error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed model response: %v", e.Err)
}

func (e *MalformedError) Unwrap() error { return e.Err }

// Retryable marks malformed responses as worth another attempt; the model
// may produce valid JSON on a subsequent call.
func (e *MalformedError) Retryable() bool { return true }

// Extract cleans raw model output and returns the embedded JSON object.
// Cleaning steps: drop the literal "json" marker, strip backticks, convert
// single quotes to double quotes, trim whitespace, and if the result is not
// already a bare object, cut out the span between the first "{" and the
// last "}".
func Extract(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", ErrEmptyResponse
	}

	cleaned := strings.ReplaceAll(raw, "json", "")
	cleaned = strings.ReplaceAll(cleaned, "`", "")
	cleaned = strings.ReplaceAll(cleaned, "'", `"`)
	cleaned = strings.TrimSpace(cleaned)

	if !strings.HasPrefix(cleaned, "{") || !strings.HasSuffix(cleaned, "}") {
		start := strings.Index(cleaned, "{")
		end := strings.LastIndex(cleaned, "}")
		if start == -1 || end == -1 || start >= end {
			return "", &MalformedError{Raw: raw, Err: errors.New("no JSON object found in response")}
		}
		cleaned = cleaned[start : end+1]
	}

	return cleaned, nil
}

// Unmarshal extracts the JSON object from raw model output and decodes it
// into v. Parse failures are reported as *MalformedError so the caller's
// retry policy can distinguish them from transport errors.
func Unmarshal(raw string, v any) error {
	cleaned, err := Extract(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(cleaned), v); err != nil {
		return &MalformedError{Raw: raw, Err: err}
	}
	return nil
}
