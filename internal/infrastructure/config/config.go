package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type DatabaseConfig struct {
	Host     string `validate:"required"`
	Port     int    `validate:"gt=0"`
	User     string `validate:"required"`
	Password string
	Name     string `validate:"required"`
	SSLMode  string
}

type KafkaConfig struct {
	Brokers []string `validate:"min=1"`
	Topic   string   `validate:"required"`
	// OutboxEnabled routes events through the transactional outbox table
	// instead of publishing inline; the relay drains it to the broker.
	OutboxEnabled    bool
	OutboxIntervalMs int `validate:"gt=0"`
	OutboxBatchSize  int `validate:"gt=0"`
}

type BureauConfig struct {
	BaseURL        string `validate:"required,url"`
	APIKey         string
	TimeoutSeconds int `validate:"gt=0"`
	MaxRetries     int `validate:"gte=0"`
	RetryBackoffMs int `validate:"gt=0"`
	// UseStub swaps the bureau client for the in-memory gateway seeded with
	// demo profiles. Development only.
	UseStub bool
}

// ScoringConfig carries the evaluation thresholds and exploration bounds.
// The 60/40 thresholds and the three depth weights are business policy
// defaults, overridable per deployment.
type ScoringConfig struct {
	ApproveThreshold  decimal.Decimal
	ReviewThreshold   decimal.Decimal
	HighRiskThreshold decimal.Decimal
	DefaultMaxDepth   int `validate:"gt=0"`
}

// PipelineConfig bounds the background document-processing pool.
type PipelineConfig struct {
	Workers          int    `validate:"gt=0"`
	DocumentStoreDir string `validate:"required"`
}

type Config struct {
	GRPCPort    int `validate:"gt=0"`
	HTTPPort    int `validate:"gt=0"`
	DB          DatabaseConfig
	Kafka       KafkaConfig
	Bureau      BureauConfig
	Scoring     ScoringConfig
	Pipeline    PipelineConfig
	ServiceName string
}

// Load reads configuration from the environment, consulting a local .env
// file when present (development convenience; real deployments set the
// environment directly).
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		GRPCPort: getEnvInt("GRPC_PORT", 9091),
		HTTPPort: getEnvInt("HTTP_PORT", 8091),
		DB: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "verificacion"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "verificacion_crediticia"),
			SSLMode:  getEnv("DB_SSLMODE", "require"),
		},
		Kafka: KafkaConfig{
			Brokers:          []string{getEnv("KAFKA_BROKERS", "localhost:9092")},
			Topic:            getEnv("KAFKA_TOPIC", "verification-events"),
			OutboxEnabled:    getEnvBool("EVENT_OUTBOX", true),
			OutboxIntervalMs: getEnvInt("EVENT_OUTBOX_INTERVAL_MS", 500),
			OutboxBatchSize:  getEnvInt("EVENT_OUTBOX_BATCH_SIZE", 100),
		},
		Bureau: BureauConfig{
			BaseURL:        getEnv("BUREAU_BASE_URL", "https://api.burodecredito.example.com"),
			APIKey:         getEnv("BUREAU_API_KEY", ""),
			TimeoutSeconds: getEnvInt("BUREAU_TIMEOUT_SECONDS", 10),
			MaxRetries:     getEnvInt("BUREAU_MAX_RETRIES", 3),
			RetryBackoffMs: getEnvInt("BUREAU_RETRY_BACKOFF_MS", 200),
			UseStub:        getEnvBool("BUREAU_STUB", false),
		},
		Scoring: ScoringConfig{
			ApproveThreshold:  getEnvDecimal("SCORE_APPROVE_THRESHOLD", decimal.NewFromInt(60)),
			ReviewThreshold:   getEnvDecimal("SCORE_REVIEW_THRESHOLD", decimal.NewFromInt(40)),
			HighRiskThreshold: getEnvDecimal("SCORE_HIGH_RISK_THRESHOLD", decimal.NewFromInt(25)),
			DefaultMaxDepth:   getEnvInt("EXPLORATION_MAX_DEPTH", 2),
		},
		Pipeline: PipelineConfig{
			Workers:          getEnvInt("PIPELINE_WORKERS", 3),
			DocumentStoreDir: getEnv("DOCUMENT_STORE_DIR", "/var/lib/verificacion/documents"),
		},
		ServiceName: "verificacion-crediticia",
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func (c Config) GRPCAddr() string {
	return fmt.Sprintf(":%d", c.GRPCPort)
}

func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDecimal(key string, fallback decimal.Decimal) decimal.Decimal {
	if v := os.Getenv(key); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			return d
		}
	}
	return fallback
}
