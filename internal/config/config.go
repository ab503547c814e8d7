// internal/config/config.go
package config

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/viper"

	custom_errors "devfolio/internal/errors"
)

// GitHub logins: alphanumerics and single hyphens, no leading or trailing hyphen, at most 39 chars.
var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9]|-[A-Za-z0-9]){0,38}$`)

// Config holds all configuration for the application.
type Config struct {
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
	ListenAddr      string        `mapstructure:"LISTEN_ADDR"`
	GithubUsername  string        `mapstructure:"GITHUB_USERNAME"`
	GithubToken     string        `mapstructure:"GITHUB_TOKEN"`
	GithubAPIURL    string        `mapstructure:"GITHUB_API_URL"`
	FetchTimeout    time.Duration `mapstructure:"FETCH_TIMEOUT"`
	ShowFetchErrors bool          `mapstructure:"SHOW_FETCH_ERRORS"`
	ContentFile     string        `mapstructure:"CONTENT_FILE"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
}

// LoadConfig reads configuration from file and/or environment variables.
func LoadConfig() (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LISTEN_ADDR", ":8080")
	v.SetDefault("GITHUB_USERNAME", "mohmmedlahlali20")
	v.SetDefault("GITHUB_TOKEN", "")
	v.SetDefault("GITHUB_API_URL", "")
	v.SetDefault("FETCH_TIMEOUT", "10s")
	v.SetDefault("SHOW_FETCH_ERRORS", false)
	v.SetDefault("CONTENT_FILE", "")
	v.SetDefault("SHUTDOWN_TIMEOUT", "5s")

	// Load from .env file if it exists
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // Ignore error if file not found

	// Bind environment variables
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks required fields and value ranges.
func (c *Config) Validate() error {
	if !usernamePattern.MatchString(c.GithubUsername) {
		return &custom_errors.InvalidUsernameError{Username: c.GithubUsername}
	}
	if c.FetchTimeout <= 0 {
		return errors.New("FETCH_TIMEOUT must be a positive duration (e.g. 10s)")
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New("SHUTDOWN_TIMEOUT must be a positive duration (e.g. 5s)")
	}
	if c.ListenAddr == "" {
		return errors.New("LISTEN_ADDR is a required configuration field")
	}
	return nil
}
