// Command api runs the Arsitek Studio CMS backend.
//
// @title        Arsitek Studio CMS API
// @version      1.0
// @description  Content management and marketing backend for the Arsitek Studio site.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arsitekstudio/cms-api/internal/api"
	"github.com/arsitekstudio/cms-api/internal/auth"
	"github.com/arsitekstudio/cms-api/internal/core/ports"
	"github.com/arsitekstudio/cms-api/internal/core/service"
	"github.com/arsitekstudio/cms-api/internal/infrastructure/config"
	"github.com/arsitekstudio/cms-api/internal/infrastructure/db/postgres"
	redisdb "github.com/arsitekstudio/cms-api/internal/infrastructure/db/redis"
	"github.com/arsitekstudio/cms-api/internal/infrastructure/mail"
	"github.com/arsitekstudio/cms-api/internal/infrastructure/queue"
	"github.com/arsitekstudio/cms-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fallback := logger.Init(logger.Options{})
		fallback.Fatal().Err(err).Msg("configuration failed")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.Production(),
	})
	if cfg.UsingFallbackSecret() {
		log.Warn().Msg("JWT_SECRET not set, using the insecure development fallback")
	}

	db, err := postgres.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}

	// Redis is optional: without it, visit dedup is disabled and tracking
	// still works.
	var dedup service.VisitDeduper
	rdb, err := redisdb.Connect(ctx, cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, visit dedup disabled")
		rdb = nil
	} else {
		dedup = redisdb.NewVisitDeduper(rdb)
	}

	codec := auth.NewTokenCodec(cfg.JWTSecret, cfg.JWTSecretPrevious, cfg.TokenTTL)
	resolver := auth.NewResolver(codec)

	userRepo := postgres.NewUserRepository(db)
	projectRepo := postgres.NewProjectRepository(db)
	serviceRepo := postgres.NewServiceRepository(db)
	teamRepo := postgres.NewTeamRepository(db)
	companyRepo := postgres.NewCompanyRepository(db)
	submissionRepo := postgres.NewSubmissionRepository(db)
	analyticsRepo := postgres.NewAnalyticsRepository(db)

	mailCfg := mail.Config{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		User:      cfg.SMTP.User,
		Pass:      cfg.SMTP.Pass,
		Recipient: cfg.SMTP.Recipient,
	}
	// Leave the interface nil when SMTP is unconfigured; a typed nil
	// pointer would defeat the service's nil check.
	var mailer ports.Mailer
	if mailCfg.Enabled() {
		mailer = mail.NewMailer(mailCfg)
	} else {
		log.Warn().Msg("SMTP not configured, contact notifications disabled")
	}

	// Workers get their own context so they outlive the signal context
	// and can drain events tracked while the HTTP server shuts down.
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	dispatcher := queue.NewDispatcher(0, log)
	analyticsService := service.NewAnalyticsService(analyticsRepo, submissionRepo, dispatcher, dedup, log)
	dispatcher.Start(workerCtx, analyticsService)

	deps := api.Dependencies{
		DB:                db,
		Redis:             rdb,
		Codec:             codec,
		Resolver:          resolver,
		UploadDir:         cfg.UploadDir,
		AuthService:       service.NewAuthService(userRepo, codec, log),
		UserService:       service.NewUserService(userRepo, log),
		ProjectService:    service.NewProjectService(projectRepo, log),
		ContentService:    service.NewContentService(serviceRepo, teamRepo, companyRepo, log),
		SubmissionService: service.NewSubmissionService(submissionRepo, mailer, log),
		AnalyticsService:  analyticsService,
	}

	e := api.NewRouter(deps)

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}

	// The HTTP server has drained, so no new events arrive; flush what
	// the workers still hold, then close the stores.
	dispatcher.Stop()
	if rdb != nil {
		_ = rdb.Close()
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
