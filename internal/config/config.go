// Package config loads runtime settings from the environment and an
// optional .env file.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds settings shared by the seed, authprobe and devserver commands.
type Config struct {
	ProjectID       string `env:"FIREBASE_PROJECT_ID" envDefault:"locker-room-talk-app"`
	CredentialsFile string `env:"GOOGLE_APPLICATION_CREDENTIALS"`
	StoreDriver     string `env:"STORE_DRIVER" envDefault:"firestore"`
	DatabaseURL     string `env:"DATABASE_URL"`
	Port            string `env:"PORT" envDefault:"4000"`
	AppEnv          string `env:"APP_ENV" envDefault:"development"`
	AuthProbeKey    string `env:"AUTH_PROBE_KEY" envDefault:"test"`
	WebOrigin       string `env:"WEB_ORIGIN" envDefault:"http://localhost:3000"`
}

// Load reads .env (if present) and parses the environment into a Config.
func Load() (Config, error) {
	// .env is optional
	_ = godotenv.Load()

	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ConsoleAuthURL is where an operator enables sign-in providers for the project.
func (c Config) ConsoleAuthURL() string {
	return fmt.Sprintf("https://console.firebase.google.com/project/%s/authentication", c.ProjectID)
}
