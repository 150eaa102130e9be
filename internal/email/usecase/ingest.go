package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"

	authdomain "github.com/gregschwartz/jobseeker-analytics/internal/auth/domain"
	authrepo "github.com/gregschwartz/jobseeker-analytics/internal/auth/repository"
	emaildomain "github.com/gregschwartz/jobseeker-analytics/internal/email/domain"
	emailrepo "github.com/gregschwartz/jobseeker-analytics/internal/email/repository"
	taskdomain "github.com/gregschwartz/jobseeker-analytics/internal/task/domain"
	taskrepo "github.com/gregschwartz/jobseeker-analytics/internal/task/repository"
)

// ErrUserNotFound is returned when an operation references an unknown user.
var ErrUserNotFound = errors.New("user not found")

type emailUsecase struct {
	mail       emaildomain.MailProvider
	classifier Classifier
	briefing   BriefingService
	userRepo   authrepo.UserRepository
	emailRepo  emailrepo.UserEmailRepository
	taskRepo   taskrepo.TaskRunRepository
	staleAfter time.Duration
	log        zerolog.Logger
}

// NewEmailUsecase wires the ingestion pipeline. briefing may be nil when no
// LLM provider is configured; interview invitations are then stored without
// a briefing.
func NewEmailUsecase(
	mail emaildomain.MailProvider,
	classifier Classifier,
	briefing BriefingService,
	userRepo authrepo.UserRepository,
	emailRepo emailrepo.UserEmailRepository,
	taskRepo taskrepo.TaskRunRepository,
	staleAfter time.Duration,
	log zerolog.Logger,
) EmailUsecase {
	return &emailUsecase{
		mail:       mail,
		classifier: classifier,
		briefing:   briefing,
		userRepo:   userRepo,
		emailRepo:  emailRepo,
		taskRepo:   taskRepo,
		staleAfter: staleAfter,
		log:        log.With().Str("component", "ingest").Logger(),
	}
}

func (u *emailUsecase) ProcessEmails(ctx context.Context, userID string) error {
	log := u.log.With().Str("user_id", userID).Logger()

	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}

	run, err := u.taskRepo.Find(userID)
	if err != nil {
		return fmt.Errorf("load run status: %w", err)
	}
	if run != nil && run.Status == taskdomain.RunStarted && time.Since(run.UpdatedAt) < u.staleAfter {
		log.Info().Msg("run already in progress, skipping")
		return nil
	}

	if run == nil {
		run = &taskdomain.TaskRun{UserID: userID}
	}
	run.Status = taskdomain.RunStarted
	run.ProcessedEmails = 0
	run.TotalEmails = 0
	if err := u.taskRepo.Save(run); err != nil {
		return fmt.Errorf("mark run started: %w", err)
	}

	onTokenRefresh := u.tokenSaver(user)

	query := "after:" + user.StartDate.Format("2006/01/02")
	ids, err := u.mail.ListMessageIDs(ctx, user.AccessToken, user.RefreshToken, query, onTokenRefresh)
	if err != nil {
		// Run stays STARTED so the stale-run scheduler retries it later.
		return fmt.Errorf("list messages: %w", err)
	}

	run.TotalEmails = len(ids)
	if err := u.taskRepo.Save(run); err != nil {
		return fmt.Errorf("record message count: %w", err)
	}
	log.Info().Int("total", len(ids)).Msg("processing messages")

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return err
		}

		counted, err := u.processOne(ctx, user, id, onTokenRefresh)
		if err != nil {
			log.Warn().Err(err).Str("message_id", id).Msg("message skipped")
		}

		if counted {
			run.ProcessedEmails++
		}
		if err := u.taskRepo.Save(run); err != nil {
			return fmt.Errorf("record progress: %w", err)
		}
	}

	run.Status = taskdomain.RunFinished
	if err := u.taskRepo.Save(run); err != nil {
		return fmt.Errorf("mark run finished: %w", err)
	}
	log.Info().Int("processed", run.ProcessedEmails).Msg("run finished")
	return nil
}

// processOne handles a single message. The returned bool reports whether the
// message counts toward run progress; messages whose fetch or classification
// failed do not.
func (u *emailUsecase) processOne(ctx context.Context, user *authdomain.User, id string, onTokenRefresh emaildomain.TokenUpdateFunc) (bool, error) {
	exists, err := u.emailRepo.Exists(user.UserID, id)
	if err != nil {
		return false, fmt.Errorf("check existing: %w", err)
	}
	if exists {
		return true, nil
	}

	msg, err := u.mail.GetMessage(ctx, user.AccessToken, user.RefreshToken, id, onTokenRefresh)
	if err != nil {
		return false, fmt.Errorf("fetch message: %w", err)
	}

	result, err := u.classifier.Classify(ctx, msg.TextContent)
	if err != nil {
		return false, fmt.Errorf("classify: %w", err)
	}
	if result.JobApplicationStatus == emaildomain.StatusFalsePositive {
		return true, nil
	}

	record := &emaildomain.UserEmail{
		ID:                msg.ID,
		UserID:            user.UserID,
		CompanyName:       result.CompanyName,
		ApplicationStatus: result.JobApplicationStatus,
		JobTitle:          result.JobTitle,
		Subject:           msg.Subject,
		EmailFrom:         msg.From,
		ReceivedAt:        msg.Date,
	}

	if result.JobApplicationStatus == emaildomain.StatusInterviewInvitation && u.briefing != nil {
		record.InterviewBriefing = u.generateBriefing(ctx, result.CompanyName)
	}

	if err := u.emailRepo.Upsert(record); err != nil {
		return false, fmt.Errorf("persist: %w", err)
	}
	return true, nil
}

// generateBriefing serializes either the briefing document or, on failure,
// the error description so the UI can show what went wrong.
func (u *emailUsecase) generateBriefing(ctx context.Context, companyName string) string {
	doc, briefErr := u.briefing.Generate(ctx, emaildomain.BriefingRequest{CompanyName: companyName})
	var payload any = doc
	if briefErr != nil {
		payload = briefErr
	}
	data, err := json.Marshal(payload)
	if err != nil {
		u.log.Error().Err(err).Str("company", companyName).Msg("briefing serialization failed")
		return ""
	}
	return string(data)
}

// tokenSaver persists refreshed Gmail tokens and keeps the in-memory user
// current for the rest of the run.
func (u *emailUsecase) tokenSaver(user *authdomain.User) emaildomain.TokenUpdateFunc {
	return func(token *oauth2.Token) error {
		user.AccessToken = token.AccessToken
		if token.RefreshToken != "" {
			user.RefreshToken = token.RefreshToken
		}
		return u.userRepo.UpdateTokens(user.UserID, user.AccessToken, user.RefreshToken)
	}
}

func (u *emailUsecase) ProcessingStatus(userID string) (*taskdomain.TaskRun, error) {
	return u.taskRepo.Find(userID)
}

func (u *emailUsecase) ListEmails(userID string, limit, offset int) ([]*emaildomain.UserEmail, int64, error) {
	return u.emailRepo.FindByUserID(userID, limit, offset)
}

func (u *emailUsecase) ArchiveEmail(ctx context.Context, userID, emailID string) error {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}
	return u.mail.ArchiveMessage(ctx, user.AccessToken, user.RefreshToken, emailID, u.tokenSaver(user))
}
