package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/wementor/mentor-directory-api/internal/config"
	"github.com/wementor/mentor-directory-api/internal/handler"
	"github.com/wementor/mentor-directory-api/internal/mailer"
	"github.com/wementor/mentor-directory-api/internal/provider"
	"github.com/wementor/mentor-directory-api/internal/repository"
	"github.com/wementor/mentor-directory-api/internal/storage"
	"github.com/wementor/mentor-directory-api/internal/usecase"
	"github.com/wementor/mentor-directory-api/internal/validation"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg := config.Load(&logger)
	if cfg.Env == "development" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(options.Client().ApplyURI(cfg.Mongo.URL))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error().Err(err).Msg("failed to disconnect from mongodb")
		}
	}()

	if err := client.Ping(ctx, nil); err != nil {
		logger.Fatal().Err(err).Msg("failed to ping mongodb")
	}

	db := client.Database(cfg.Mongo.Database)

	adminRepo := repository.NewAdminMongoRepository(ctx, &logger, db)
	categoryRepo := repository.NewCategoryMongoRepository(ctx, &logger, db)
	mentorRepo := repository.NewMentorMongoRepository(ctx, &logger, db)
	socialLinkRepo := repository.NewSocialLinkMongoRepository(ctx, &logger, db)
	whitelistRepo := repository.NewWhitelistEmailMongoRepository(ctx, &logger, db)
	sessionRepo := repository.NewSessionMongoRepository(ctx, &logger, db)
	fileRepo := repository.NewFileMongoRepository(db)

	blobs := storage.NewS3BlobStore(ctx, &logger, cfg.S3.Bucket, cfg.S3.Region)

	var sender mailer.Sender
	if m := mailer.New(&logger, cfg.SMTP); m != nil {
		sender = m
	}

	oauth := provider.NewGoogleOAuthProvider(
		cfg.Google.ClientID,
		cfg.Google.ClientSecret,
		cfg.BaseURL+"/v1/auth/google/callback",
	)

	authUsecase := usecase.NewAuthUsecase(adminRepo, whitelistRepo, sessionRepo, oauth, cfg.SuperAdminEmail, cfg.Session.TTL)
	adminUsecase := usecase.NewAdminUsecase(adminRepo, whitelistRepo, sender, &logger)
	categoryUsecase := usecase.NewCategoryUsecase(categoryRepo)
	mentorUsecase := usecase.NewMentorUsecase(mentorRepo, categoryRepo)
	socialLinkUsecase := usecase.NewSocialLinkUsecase(socialLinkRepo, mentorRepo, &logger)
	whitelistUsecase := usecase.NewWhitelistEmailUsecase(whitelistRepo, sender, &logger)
	fileUsecase := usecase.NewFileUsecase(fileRepo, blobs, &logger)

	validator := validation.New()

	router := handler.NewRouter(handler.RouterDeps{
		Config:         cfg,
		Logger:         &logger,
		AuthUsecase:    authUsecase,
		AdminUsecase:   adminUsecase,
		Auth:           handler.NewAuthHandler(authUsecase, cfg.Session.CookieName, cfg.Env, &logger),
		Admins:         handler.NewAdminHandler(adminUsecase, validator, cfg.Env, &logger),
		Categories:     handler.NewCategoryHandler(categoryUsecase, validator, cfg.Env, &logger),
		Mentors:        handler.NewMentorHandler(mentorUsecase, validator, cfg.Env, &logger),
		SocialLinks:    handler.NewSocialLinkHandler(socialLinkUsecase, validator, cfg.Env, &logger),
		WhitelistEmail: handler.NewWhitelistEmailHandler(whitelistUsecase, validator, cfg.Env, &logger),
		Files:          handler.NewFileHandler(fileUsecase, cfg.Env, &logger),
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Int("port", cfg.Port).Str("env", cfg.Env).Msg("server started")
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	case sig := <-stop:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("graceful shutdown failed")
		}
	}
}
