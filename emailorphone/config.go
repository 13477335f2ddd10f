package emailorphone

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/vortex-fintech/go-contact/contactpattern"
)

var (
	// ErrParsingConfig is returned when the environment cannot be parsed into Config.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrLoadingEnvFile is returned when an explicitly requested .env file cannot be read.
	ErrLoadingEnvFile = errors.New("failed to load env file")
)

// Config is the only tunable of the classifier.
type Config struct {
	// DisableEmailRegex turns the email grammar off; emails are then checked
	// by the fallback scan only. Phone validation is unaffected.
	DisableEmailRegex bool `env:"EMAILORPHONE_DISABLE_REGEX" envDefault:"false"`
}

// LoadConfig reads Config from the environment. Files, when given, are loaded
// with godotenv first; variables already set in the process win.
func LoadConfig(files ...string) (Config, error) {
	var cfg Config
	if len(files) > 0 {
		if err := godotenv.Load(files...); err != nil {
			return cfg, fmt.Errorf("%w: %w", ErrLoadingEnvFile, err)
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrParsingConfig, err)
	}
	return cfg, nil
}

func (c Config) patterns() contactpattern.Config {
	return contactpattern.Config{DisableEmailRegex: c.DisableEmailRegex}
}
