package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"club-console/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

// Config stores runtime configuration for the console.
type Config struct {
	AppEnv                 string
	ServiceName            string
	ServiceVersion         string
	APIBaseURL             string
	APITimeout             time.Duration
	APIMaxRetries          int
	APICircuitEnabled      bool
	APICircuitFailureCount int
	APICircuitOpenTimeout  time.Duration
	APICircuitHalfOpenReq  int
	CacheEnabled           bool
	CacheTTL               time.Duration
	DefaultPageSize        int
	SaveWorkers            int
	LogLevel               logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	apiBaseURL := strings.TrimSpace(getEnv("CLUB_API_BASE_URL", "http://localhost:8080/api/v1"))
	if apiBaseURL == "" {
		return Config{}, fmt.Errorf("CLUB_API_BASE_URL cannot be empty")
	}

	apiTimeout, err := time.ParseDuration(getEnv("CLUB_API_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CLUB_API_TIMEOUT: %w", err)
	}
	if apiTimeout <= 0 {
		return Config{}, fmt.Errorf("CLUB_API_TIMEOUT must be > 0")
	}

	apiMaxRetries, err := getEnvAsInt("CLUB_API_MAX_RETRIES", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse CLUB_API_MAX_RETRIES: %w", err)
	}
	if apiMaxRetries < 0 {
		return Config{}, fmt.Errorf("CLUB_API_MAX_RETRIES must be >= 0")
	}

	circuitEnabled, err := strconv.ParseBool(getEnv("CLUB_API_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CLUB_API_CIRCUIT_ENABLED: %w", err)
	}
	circuitFailureCount, err := getEnvAsInt("CLUB_API_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse CLUB_API_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if circuitFailureCount < 1 {
		return Config{}, fmt.Errorf("CLUB_API_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	circuitOpenTimeout, err := time.ParseDuration(getEnv("CLUB_API_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CLUB_API_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if circuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("CLUB_API_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	circuitHalfOpenReq, err := getEnvAsInt("CLUB_API_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse CLUB_API_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if circuitHalfOpenReq < 1 {
		return Config{}, fmt.Errorf("CLUB_API_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "5m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}

	defaultPageSize, err := getEnvAsInt("APP_DEFAULT_PAGE_SIZE", 10)
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_DEFAULT_PAGE_SIZE: %w", err)
	}
	if defaultPageSize < 1 {
		return Config{}, fmt.Errorf("APP_DEFAULT_PAGE_SIZE must be >= 1")
	}

	saveWorkers, err := getEnvAsInt("APP_SAVE_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_SAVE_WORKERS: %w", err)
	}
	if saveWorkers < 1 {
		return Config{}, fmt.Errorf("APP_SAVE_WORKERS must be >= 1")
	}

	return Config{
		AppEnv:                 appEnv,
		ServiceName:            getEnv("APP_SERVICE_NAME", "club-console"),
		ServiceVersion:         getEnv("APP_SERVICE_VERSION", "dev"),
		APIBaseURL:             apiBaseURL,
		APITimeout:             apiTimeout,
		APIMaxRetries:          apiMaxRetries,
		APICircuitEnabled:      circuitEnabled,
		APICircuitFailureCount: circuitFailureCount,
		APICircuitOpenTimeout:  circuitOpenTimeout,
		APICircuitHalfOpenReq:  circuitHalfOpenReq,
		CacheEnabled:           cacheEnabled,
		CacheTTL:               cacheTTL,
		DefaultPageSize:        defaultPageSize,
		SaveWorkers:            saveWorkers,
		LogLevel:               parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
	}, nil
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}
