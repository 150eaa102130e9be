package main

import (
	"context"
	"errors"
	"os"

	"github.com/rs/zerolog"

	api "github.com/gregschwartz/jobseeker-analytics/cmd/api"
	authdomain "github.com/gregschwartz/jobseeker-analytics/internal/auth/domain"
	authRepo "github.com/gregschwartz/jobseeker-analytics/internal/auth/repository"
	authUsecase "github.com/gregschwartz/jobseeker-analytics/internal/auth/usecase"
	emaildomain "github.com/gregschwartz/jobseeker-analytics/internal/email/domain"
	emailRepo "github.com/gregschwartz/jobseeker-analytics/internal/email/repository"
	emailUsecase "github.com/gregschwartz/jobseeker-analytics/internal/email/usecase"
	taskdomain "github.com/gregschwartz/jobseeker-analytics/internal/task/domain"
	taskRepo "github.com/gregschwartz/jobseeker-analytics/internal/task/repository"
	"github.com/gregschwartz/jobseeker-analytics/internal/task/scheduler"
	"github.com/gregschwartz/jobseeker-analytics/pkg/ai"
	"github.com/gregschwartz/jobseeker-analytics/pkg/apify"
	"github.com/gregschwartz/jobseeker-analytics/pkg/config"
	"github.com/gregschwartz/jobseeker-analytics/pkg/database"
	"github.com/gregschwartz/jobseeker-analytics/pkg/gmail"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logLevel, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	log := zerolog.New(os.Stderr).Level(logLevel).With().Timestamp().Logger()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &taskdomain.TaskRun{}, &emaildomain.UserEmail{}); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	// Initialize repositories (dependency injection)
	userRepo := authRepo.NewUserRepository(db)
	userEmailRepo := emailRepo.NewUserEmailRepository(db)
	taskRunRepo := taskRepo.NewGormTaskRunRepository(db)

	// Initialize Gmail service
	gmailService := gmail.NewService(cfg.GoogleClientID, cfg.GoogleClientSecret)

	// Initialize LLM provider; the server still serves stored data
	// without one, but ingestion cannot classify
	ctx := context.Background()
	llm, err := ai.NewTextGenerator(ctx, ai.Config{
		Provider:          ai.ProviderType(cfg.LLMProvider),
		GeminiAPIKey:      cfg.GoogleAPIKey,
		GeminiModel:       cfg.GeminiModel,
		RequestsPerSecond: cfg.LLMRateLimit,
		OllamaBaseURL:     cfg.OllamaBaseURL,
		OllamaModel:       cfg.OllamaModel,
	}, log)
	if err != nil {
		if errors.Is(err, ai.ErrNotConfigured) {
			log.Warn().Msg("no LLM provider configured, classification disabled")
		} else {
			log.Fatal().Err(err).Msg("failed to initialize LLM provider")
		}
	}

	// Initialize Apify client for briefing enrichment (optional)
	var apifyClient *apify.Client
	if cfg.ApifyAPIKey != "" {
		apifyClient = apify.NewClient(cfg.ApifyAPIKey, log)
	} else {
		log.Warn().Msg("APIFY_API_KEY not set, briefing enrichment disabled")
	}

	// Initialize use cases (dependency injection)
	classifier := emailUsecase.NewEmailClassifier(llm, log)
	enrichment := emailUsecase.NewEnrichmentProvider(apifyClient, llm, log)
	var briefing emailUsecase.BriefingService
	if llm != nil {
		briefing = emailUsecase.NewBriefingGenerator(llm, enrichment, log)
	}
	userUsecaseInstance := authUsecase.NewUserUsecase(userRepo)
	emailUsecaseInstance := emailUsecase.NewEmailUsecase(
		gmailService,
		classifier,
		briefing,
		userRepo,
		userEmailRepo,
		taskRunRepo,
		cfg.RunStaleAfter,
		log,
	)

	// Retry ingestion runs that stopped making progress
	staleScheduler := scheduler.NewStaleRunScheduler(taskRunRepo, emailUsecaseInstance, cfg.RunStaleAfter, log)
	staleScheduler.Start()
	defer staleScheduler.Stop()

	// Initialize HTTP handler
	handler := api.NewHandler(userUsecaseInstance, emailUsecaseInstance, log)

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
