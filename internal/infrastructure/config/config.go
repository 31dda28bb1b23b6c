package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StorageMemory   = "memory"
	StorageDynamoDB = "dynamodb"
	StoragePostgres = "postgres"
)

// Config is read once at startup from the environment. A .env file is loaded
// into the environment by godotenv before Load runs.
type Config struct {
	HTTPPort  string
	LogLevel  string
	LogFormat string

	StorageDriver    string
	DatabaseURL      string
	AWSRegion        string
	DynamoDBEndpoint string

	FlowableBaseURL    string
	FlowableUsername   string
	FlowablePassword   string
	WorkflowEngineMock bool
	WorkflowTimeout    time.Duration

	CatalogBaseURL      string
	CatalogNotifierMock bool

	ExtensionMaxRemainingManDays int
	RateLimitPerMinute           int64
}

func Load() (Config, error) {
	cfg := Config{
		HTTPPort:  getenvDefault("HTTP_PORT", "8080"),
		LogLevel:  getenvDefault("LOG_LEVEL", "info"),
		LogFormat: getenvDefault("LOG_FORMAT", "json"),

		StorageDriver:    strings.ToLower(getenvDefault("STORAGE_DRIVER", StorageDynamoDB)),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		AWSRegion:        getenvDefault("AWS_REGION", "us-east-1"),
		DynamoDBEndpoint: os.Getenv("DYNAMODB_ENDPOINT"),

		FlowableBaseURL:    strings.TrimRight(getenvDefault("FLOWABLE_BASE_URL", "http://localhost:8080/flowable-rest/service"), "/"),
		FlowableUsername:   getenvDefault("FLOWABLE_USERNAME", "rest-admin"),
		FlowablePassword:   getenvDefault("FLOWABLE_PASSWORD", "test"),
		WorkflowEngineMock: isEnabled("WORKFLOW_ENGINE_MOCK"),

		CatalogBaseURL:      strings.TrimRight(os.Getenv("THIRD_PARTY_API_BASE"), "/"),
		CatalogNotifierMock: isEnabled("CATALOG_NOTIFIER_MOCK"),
	}

	var err error
	if cfg.WorkflowTimeout, err = durationEnv("WORKFLOW_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.ExtensionMaxRemainingManDays, err = intEnv("EXTENSION_MAX_REMAINING_MAN_DAYS", 0); err != nil {
		return Config{}, err
	}
	limit, err := intEnv("RATE_LIMIT_PER_MINUTE", 120)
	if err != nil {
		return Config{}, err
	}
	cfg.RateLimitPerMinute = int64(limit)

	switch cfg.StorageDriver {
	case StorageMemory, StorageDynamoDB:
	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, fmt.Errorf("DATABASE_URL is required for the %s storage driver", StoragePostgres)
		}
	default:
		return Config{}, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}
	if cfg.ExtensionMaxRemainingManDays < 0 {
		return Config{}, fmt.Errorf("EXTENSION_MAX_REMAINING_MAN_DAYS must not be negative")
	}
	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func isEnabled(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func intEnv(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
