// Package config loads the runtime configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/exp/slices"
)

type Config struct {
	// HTTP Server
	Port   string
	APIURL string
	Mode   string

	// Logging
	LogFormat string

	// Database
	DataDir string

	// Error reporting
	SentryDSN         string
	SentryEnvironment string
}

// Load reads the configuration from environment variables. Variables
// from a .env file in the working directory are used when they are not
// set in the environment already.
func Load() *Config {
	// A missing .env file is fine
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		APIURL:            getEnv("API_URL", ""),
		Mode:              getEnv("GIN_MODE", gin.ReleaseMode),
		DataDir:           getEnv("DATA_DIR", "data"),
		SentryDSN:         getEnv("SENTRY_DSN", ""),
		SentryEnvironment: getEnv("SENTRY_ENVIRONMENT", "production"),
	}

	// Human readable logs for development, JSON otherwise
	defaultFormat := "json"
	if cfg.Mode == gin.DebugMode {
		defaultFormat = "human"
	}
	cfg.LogFormat = getEnv("LOG_FORMAT", defaultFormat)

	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.APIURL == "" {
		problems = append(problems, "API_URL must be set")
	} else if _, err := c.URL(); err != nil {
		problems = append(problems, err.Error())
	}

	modes := []string{gin.DebugMode, gin.ReleaseMode, gin.TestMode}
	if !slices.Contains(modes, c.Mode) {
		problems = append(problems, fmt.Sprintf("invalid gin mode '%s': must be one of %v", c.Mode, modes))
	}

	formats := []string{"human", "json"}
	if !slices.Contains(formats, c.LogFormat) {
		problems = append(problems, fmt.Sprintf("invalid log format '%s': must be one of %v", c.LogFormat, formats))
	}

	if c.DataDir == "" {
		problems = append(problems, "the data directory cannot be empty")
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}

	return nil
}

// URL returns the parsed API_URL.
func (c *Config) URL() (*url.URL, error) {
	u, err := url.Parse(c.APIURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API_URL '%s': %w", c.APIURL, err)
	}

	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid API_URL '%s': %w", c.APIURL, errMissingHost)
	}

	return u, nil
}

// DatabasePath is the path of the SQLite database file.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "ledgerbook.db")
}

var errMissingHost = errors.New("scheme and host must be set")

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
