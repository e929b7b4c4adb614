package config

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"flag"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	envServerAddress     = "SERVER_ADDRESS"
	envCatalogBaseURL    = "CATALOG_BASE_URL"
	envJWTSecretKey      = "JWT_SECRET_KEY"
	envSessionExpire     = "SESSION_EXPIRE"
	envRequestTimeout    = "REQUEST_TIMEOUT"
	envDetailConcurrency = "DETAIL_CONCURRENCY"
	envLogLevel          = "LOG_LEVEL"
)

const (
	defaultServerAddress     = "localhost:8080"
	defaultCatalogBaseURL    = "https://frontend-take-home-service.fetch.com"
	defaultSessionExpire     = time.Hour // столько живет токен каталога
	defaultRequestTimeout    = 10 * time.Second
	defaultDetailConcurrency = 10
	defaultLogLevel          = "info"
)

type Config struct {
	ServerAddress     string
	CatalogBaseURL    string
	JWTSecretKey      string // Минимум 32 байта для HS256
	SessionExpire     time.Duration
	RequestTimeout    time.Duration
	DetailConcurrency int
	LogLevel          string

	// GeneratedSecret - ключ сгенерирован, потому что JWT_SECRET_KEY не задан
	GeneratedSecret bool
}

// LoadConfig reads flags from args, then lets environment variables (and a .env
// file, when present) override them.
func LoadConfig(args []string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerAddress:     defaultServerAddress,
		CatalogBaseURL:    defaultCatalogBaseURL,
		SessionExpire:     defaultSessionExpire,
		RequestTimeout:    defaultRequestTimeout,
		DetailConcurrency: defaultDetailConcurrency,
		LogLevel:          defaultLogLevel,
	}

	fs := flag.NewFlagSet("dogmatch", flag.ContinueOnError)
	fs.StringVar(&cfg.ServerAddress, "a", cfg.ServerAddress, "Server address")
	fs.StringVar(&cfg.CatalogBaseURL, "catalog-url", cfg.CatalogBaseURL, "Dog catalog base URL")
	fs.DurationVar(&cfg.SessionExpire, "session-expire", cfg.SessionExpire, "Session token expiration")
	fs.DurationVar(&cfg.RequestTimeout, "request-timeout", cfg.RequestTimeout, "Timeout of a single catalog request")
	fs.IntVar(&cfg.DetailConcurrency, "detail-concurrency", cfg.DetailConcurrency, "Parallel dog detail lookups")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	var errs []error
	applyEnv(envServerAddress, &cfg.ServerAddress)
	applyEnv(envCatalogBaseURL, &cfg.CatalogBaseURL)
	applyEnv(envJWTSecretKey, &cfg.JWTSecretKey)
	applyEnv(envLogLevel, &cfg.LogLevel)
	errs = append(errs,
		applyEnvDuration(envSessionExpire, &cfg.SessionExpire),
		applyEnvDuration(envRequestTimeout, &cfg.RequestTimeout),
		applyEnvInt(envDetailConcurrency, &cfg.DetailConcurrency),
	)
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	if err := cfg.ensureJWTSecret(); err != nil {
		return nil, err
	}
	cfg.normalizeServerAddress()
	cfg.CatalogBaseURL = strings.TrimRight(cfg.CatalogBaseURL, "/")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(key string, target *string) {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		*target = val
	}
}

func applyEnvDuration(key string, target *time.Duration) error {
	val, ok := os.LookupEnv(key)
	if !ok || val == "" {
		return nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*target = d
	return nil
}

func applyEnvInt(key string, target *int) error {
	val, ok := os.LookupEnv(key)
	if !ok || val == "" {
		return nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*target = n
	return nil
}

func (c *Config) ensureJWTSecret() error {
	if c.JWTSecretKey == "" {
		// для разработки
		key := make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			return fmt.Errorf("failed to generate JWT secret key: %w", err)
		}
		c.JWTSecretKey = base64.StdEncoding.EncodeToString(key)
		c.GeneratedSecret = true
		return nil
	}

	key, err := base64.StdEncoding.DecodeString(c.JWTSecretKey)
	if err != nil || len(key) < 32 {
		return errors.New("JWT secret key must be base64 and at least 32 bytes long when decoded")
	}
	return nil
}

func (c *Config) normalizeServerAddress() {
	if strings.HasPrefix(c.ServerAddress, ":") {
		c.ServerAddress = "localhost" + c.ServerAddress
	}
}

func (c *Config) validate() error {
	u, err := url.Parse(c.CatalogBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid catalog base URL %q", c.CatalogBaseURL)
	}
	if c.SessionExpire <= 0 {
		return fmt.Errorf("session expiration must be positive, got %s", c.SessionExpire)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	if c.DetailConcurrency < 1 {
		return fmt.Errorf("detail concurrency must be at least 1, got %d", c.DetailConcurrency)
	}
	return nil
}
