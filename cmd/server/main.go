package main

import (
	"database/sql"
	"log"
	"net/http"
	"time"

	_ "github.com/lib/pq"

	"clubops/config"
	_ "clubops/docs"
	"clubops/internal/adapters/auth"
	"clubops/internal/adapters/email"
	"clubops/internal/adapters/sheets"
	httpdelivery "clubops/internal/delivery/http"
	"clubops/internal/delivery/http/controllers"
	"clubops/internal/delivery/http/middleware"
	"clubops/internal/repository/postgres"
	"clubops/internal/services"
)

// @title Club Event Operations API
// @version 1.0
// @description Event operations engine for campus clubs: scheduling conflict checks, task boards, budget ledgers, and participant rosters.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("ping database: %v", err)
	}

	eventRepo := postgres.NewEventRepository(db)
	opsRepo := postgres.NewEventOperationsRepository(db)
	participantRepo := postgres.NewParticipantRepository(db)
	memberRepo := postgres.NewClubMemberRepository(db)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:          cfg.Email.SESRegion,
			AccessKeyID:     cfg.Email.SESAccessKeyID,
			SecretAccessKey: cfg.Email.SESSecretAccessKey,
		},
	})
	if err != nil {
		log.Fatalf("create mailer: %v", err)
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())
	fetcher := sheets.NewHTTPFetcher(&http.Client{Timeout: 30 * time.Second})

	operations := services.NewEventOperationsService(
		eventRepo, opsRepo, participantRepo, memberRepo,
		emailService, fetcher, logger, 10*time.Second,
	)

	verifier := auth.NewJWTVerifier(cfg.JWTSecret)
	router := httpdelivery.NewRouter(
		verifier,
		controllers.NewEventController(logger, operations),
		controllers.NewTaskController(logger, operations),
		controllers.NewBudgetController(logger, operations),
		controllers.NewRosterController(logger, operations),
	)

	handler := middleware.CORS(cfg.AllowedOrigins)(middleware.LoggingMiddleware(logger, router))

	logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		log.Fatalf("server: %v", err)
	}
}
