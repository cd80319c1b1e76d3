package app

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the full runtime configuration, loaded from the environment.
type Config struct {
	Port int `env:"PORT" envDefault:"8080"`

	DatabaseFile   string `env:"CHAPTER_DATABASE_FILE" envDefault:"chapter.db"`
	PepperFile     string `env:"CHAPTER_PEPPER_FILE" envDefault:"pepper"`
	SessionKeyFile string `env:"CHAPTER_SESSION_KEY_FILE" envDefault:"session.key"`

	// Issuer is the iss claim on session tokens.
	Issuer string `env:"CHAPTER_ISSUER" envDefault:"chapter-api"`

	// BootstrapToken guards the one-time first-admin endpoint. Empty
	// disables it.
	BootstrapToken string `env:"BOOTSTRAP_TOKEN"`

	// CORSOrigins lists the frontend origins allowed to call the API with
	// credentials.
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`

	// SecureCookies marks session cookies Secure. Leave off only for local
	// HTTP development.
	SecureCookies bool `env:"SECURE_COOKIES" envDefault:"false"`

	Env       string `env:"ENV" envDefault:"dev"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
}

// LoadConfig reads configuration from the environment.
func LoadConfig() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse configuration: %w", err)
	}
	return cfg, nil
}
