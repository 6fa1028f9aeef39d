package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	// Server
	Port         int
	DatabasePath string

	// Sessions
	SessionSecret string

	// Admin credentials
	AdminUsername string
	AdminPassword string

	// Outbound email (contact form)
	SMTPHost     string
	SMTPPort     int
	EmailOrigem  string
	EmailSenha   string
	EmailDestino string
}

// Load reads configuration from the environment, with an optional .env
// file in the working directory taking lower precedence than real
// environment variables.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading .env: %w", err)
		}
	}
	v.AutomaticEnv()

	v.SetDefault("PORT", 8080)
	v.SetDefault("DATABASE_PATH", "site.db")
	v.SetDefault("SMTP_HOST", "smtp.gmail.com")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("ADMIN_USERNAME", "admin")

	cfg := &Config{
		Port:          v.GetInt("PORT"),
		DatabasePath:  v.GetString("DATABASE_PATH"),
		SessionSecret: v.GetString("SESSION_SECRET"),
		AdminUsername: v.GetString("ADMIN_USERNAME"),
		AdminPassword: v.GetString("ADMIN_PASSWORD"),
		SMTPHost:      v.GetString("SMTP_HOST"),
		SMTPPort:      v.GetInt("SMTP_PORT"),
		EmailOrigem:   v.GetString("EMAIL_ORIGEM"),
		EmailSenha:    v.GetString("EMAIL_SENHA"),
		EmailDestino:  v.GetString("EMAIL_DESTINO"),
	}

	if cfg.DatabasePath == "" {
		return nil, fmt.Errorf("DATABASE_PATH must not be empty")
	}

	return cfg, nil
}
