// Package config reads the backend configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"golang.org/x/exp/slices"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

var (
	ErrAPIURL    = errors.New("API_URL must be an absolute URL, e.g. https://leasedesk.example.com/api")
	ErrDBDriver  = errors.New("DB_DRIVER must be one of sqlite, postgres")
	ErrGinMode   = errors.New("GIN_MODE must be one of debug, release, test")
	ErrLogFormat = errors.New("LOG_FORMAT must be one of json, human")
)

// Config holds runtime configuration for the backend.
type Config struct {
	APIURL           string        `envconfig:"API_URL" required:"true"`
	ListenAddr       string        `envconfig:"LISTEN_ADDR" default:":8080"`
	GinMode          string        `envconfig:"GIN_MODE" default:"release"`
	LogFormat        string        `envconfig:"LOG_FORMAT" default:"json"`
	DBDriver         string        `envconfig:"DB_DRIVER" default:"sqlite"`
	DBDSN            string        `envconfig:"DB_DSN" default:"data/leasedesk.db"`
	RedisAddr        string        `envconfig:"REDIS_ADDR"`
	CORSAllowOrigins string        `envconfig:"CORS_ALLOW_ORIGINS"`
	EnablePprof      bool          `envconfig:"ENABLE_PPROF" default:"false"`
	ShutdownTimeout  time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	FormCacheTTL     time.Duration `envconfig:"FORM_CACHE_TTL" default:"10m"`

	// BaseURL is APIURL, parsed
	BaseURL *url.URL `ignored:"true"`
}

// Load reads an optional .env file from the working directory, then
// processes the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: reading .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks enumerated values and parses the API URL.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ErrAPIURL
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	c.BaseURL = u

	if !slices.Contains([]string{DriverSQLite, DriverPostgres}, c.DBDriver) {
		return ErrDBDriver
	}

	if !slices.Contains([]string{gin.DebugMode, gin.ReleaseMode, gin.TestMode}, c.GinMode) {
		return ErrGinMode
	}

	if !slices.Contains([]string{"json", "human"}, c.LogFormat) {
		return ErrLogFormat
	}

	return nil
}

// Origins returns the allowed CORS origins. The variable is a space separated list.
func (c Config) Origins() []string {
	return strings.Fields(c.CORSAllowOrigins)
}

// HumanLogs reports whether logs are written for humans instead of as JSON.
func (c Config) HumanLogs() bool {
	return c.LogFormat == "human" || c.GinMode == gin.DebugMode
}
