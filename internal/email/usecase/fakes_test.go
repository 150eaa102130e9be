package usecase

import (
	"context"
	"errors"
	"time"

	authdomain "github.com/gregschwartz/jobseeker-analytics/internal/auth/domain"
	emaildomain "github.com/gregschwartz/jobseeker-analytics/internal/email/domain"
	taskdomain "github.com/gregschwartz/jobseeker-analytics/internal/task/domain"
)

// fakeLLM replays a scripted sequence of responses.
type fakeLLM struct {
	responses []string
	errs      []error
	calls     int
	prompts   []string
}

func (f *fakeLLM) Generate(_ context.Context, prompt string) (string, error) {
	i := f.calls
	f.calls++
	f.prompts = append(f.prompts, prompt)
	var err error
	if i < len(f.errs) {
		err = f.errs[i]
	}
	if err != nil {
		return "", err
	}
	if i < len(f.responses) {
		return f.responses[i], nil
	}
	return "", errors.New("fakeLLM: no scripted response")
}

type fakeMail struct {
	ids      []string
	messages map[string]*emaildomain.EmailMessage
	listErr  error

	listCalls  int
	archived   []string
	lastQuery  string
	getCalls   int
	archiveErr error
}

func (f *fakeMail) ListMessageIDs(_ context.Context, _, _, query string, _ emaildomain.TokenUpdateFunc) ([]string, error) {
	f.listCalls++
	f.lastQuery = query
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.ids, nil
}

func (f *fakeMail) GetMessage(_ context.Context, _, _, messageID string, _ emaildomain.TokenUpdateFunc) (*emaildomain.EmailMessage, error) {
	f.getCalls++
	msg, ok := f.messages[messageID]
	if !ok {
		return nil, errors.New("message not found")
	}
	return msg, nil
}

func (f *fakeMail) ArchiveMessage(_ context.Context, _, _, messageID string, _ emaildomain.TokenUpdateFunc) error {
	if f.archiveErr != nil {
		return f.archiveErr
	}
	f.archived = append(f.archived, messageID)
	return nil
}

type fakeUserRepo struct {
	users map[string]*authdomain.User
}

func (f *fakeUserRepo) Create(user *authdomain.User) error {
	f.users[user.UserID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(id string) (*authdomain.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*authdomain.User, error) {
	for _, u := range f.users {
		if u.UserEmail == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(user *authdomain.User) error {
	f.users[user.UserID] = user
	return nil
}

func (f *fakeUserRepo) UpdateTokens(id, accessToken, refreshToken string) error {
	if u, ok := f.users[id]; ok {
		u.AccessToken = accessToken
		u.RefreshToken = refreshToken
	}
	return nil
}

type fakeEmailRepo struct {
	stored map[string]*emaildomain.UserEmail
}

func newFakeEmailRepo() *fakeEmailRepo {
	return &fakeEmailRepo{stored: make(map[string]*emaildomain.UserEmail)}
}

func (f *fakeEmailRepo) Upsert(email *emaildomain.UserEmail) error {
	f.stored[email.ID] = email
	return nil
}

func (f *fakeEmailRepo) FindByUserID(userID string, limit, offset int) ([]*emaildomain.UserEmail, int64, error) {
	var out []*emaildomain.UserEmail
	for _, e := range f.stored {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeEmailRepo) Exists(userID, emailID string) (bool, error) {
	e, ok := f.stored[emailID]
	return ok && e.UserID == userID, nil
}

type fakeTaskRepo struct {
	runs  map[string]*taskdomain.TaskRun
	saves int
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{runs: make(map[string]*taskdomain.TaskRun)}
}

func (f *fakeTaskRepo) Find(userID string) (*taskdomain.TaskRun, error) {
	return f.runs[userID], nil
}

func (f *fakeTaskRepo) Save(run *taskdomain.TaskRun) error {
	f.saves++
	run.UpdatedAt = time.Now()
	f.runs[run.UserID] = run
	return nil
}

func (f *fakeTaskRepo) FindStale(cutoff time.Time) ([]*taskdomain.TaskRun, error) {
	var out []*taskdomain.TaskRun
	for _, r := range f.runs {
		if r.Status == taskdomain.RunStarted && r.UpdatedAt.Before(cutoff) {
			out = append(out, r)
		}
	}
	return out, nil
}

// fakeClassifier maps email bodies to fixed classifications.
type fakeClassifier struct {
	byText map[string]*emaildomain.Classification
	errs   map[string]error
	calls  int
}

func (f *fakeClassifier) Classify(_ context.Context, emailText string) (*emaildomain.Classification, error) {
	f.calls++
	if err, ok := f.errs[emailText]; ok {
		return nil, err
	}
	if c, ok := f.byText[emailText]; ok {
		return c, nil
	}
	return nil, errors.New("fakeClassifier: unknown text")
}

type fakeBriefing struct {
	doc   *emaildomain.BriefingDocument
	fail  *emaildomain.BriefingError
	calls int
}

func (f *fakeBriefing) Generate(_ context.Context, _ emaildomain.BriefingRequest) (*emaildomain.BriefingDocument, *emaildomain.BriefingError) {
	f.calls++
	if f.fail != nil {
		return nil, f.fail
	}
	return f.doc, nil
}
