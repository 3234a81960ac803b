// Package config loads the process configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Config holds the full configuration of the API process.
type Config struct {
	Env             string `env:"APP_ENV"     envDefault:"development"`
	Port            int    `env:"PORT"        envDefault:"5000"`
	BaseURL         string `env:"BASE_URL"    envDefault:"http://localhost:5000"`
	SuperAdminEmail string `env:"SUPER_ADMIN"`

	Mongo   MongoConfig
	Google  GoogleConfig
	S3      S3Config
	SMTP    SMTPConfig
	Session SessionConfig
}

// MongoConfig holds the document store connection settings.
type MongoConfig struct {
	URL      string `env:"MONGODB_URL"`
	Database string `env:"MONGODB_DATABASE" envDefault:"mentor_directory"`
}

// GoogleConfig holds the OAuth client credentials.
type GoogleConfig struct {
	ClientID     string `env:"GOOGLE_OAUTH_CLIENT_ID"`
	ClientSecret string `env:"GOOGLE_OAUTH_CLIENT_SECRET"`
}

// S3Config holds the blob store settings.
type S3Config struct {
	Bucket string `env:"S3_BUCKET"`
	Region string `env:"S3_REGION" envDefault:"us-east-1"`
}

// SMTPConfig holds the mail settings. Leaving SMTP_HOST empty disables
// outgoing notifications.
type SMTPConfig struct {
	Host     string `env:"SMTP_HOST"`
	Port     int    `env:"SMTP_PORT" envDefault:"587"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"SMTP_FROM"`
}

// SessionConfig holds the login-session cookie settings.
type SessionConfig struct {
	CookieName string        `env:"SESSION_COOKIE_NAME" envDefault:"mentor_directory_session"`
	TTL        time.Duration `env:"SESSION_TTL"         envDefault:"24h"`
}

// Load parses and validates the configuration, exiting on failure.
func Load(logger *zerolog.Logger) *Config {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to parse environment variables")
	}

	if err := cfg.validate(); err != nil {
		logger.Fatal().Err(err).Msg("failed to validate configuration")
	}

	return &cfg
}

// validate checks that the required settings are present.
func (c *Config) validate() error {
	if c.Mongo.URL == "" {
		return fmt.Errorf("missing MONGODB_URL environment variable")
	}
	if c.SuperAdminEmail == "" {
		return fmt.Errorf("missing SUPER_ADMIN environment variable")
	}
	if c.Google.ClientID == "" {
		return fmt.Errorf("missing GOOGLE_OAUTH_CLIENT_ID environment variable")
	}
	if c.Google.ClientSecret == "" {
		return fmt.Errorf("missing GOOGLE_OAUTH_CLIENT_SECRET environment variable")
	}
	if c.S3.Bucket == "" {
		return fmt.Errorf("missing S3_BUCKET environment variable")
	}

	return nil
}
