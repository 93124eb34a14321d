package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Postgres PostgresConfig
	JWT      JWTConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Elastic  ElasticsearchConfig
	Ledger   LedgerConfig
	Transfer TransferConfig
}

type ServerConfig struct {
	AppEnv   string
	GRPCPort string
	HTTPPort string
	// StorageDriver is "postgres" or "memory". The memory driver keeps all state in
	// process and skips Redis.
	StorageDriver string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type PostgresConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int
	ConnMaxIdleTime int
}

type JWTConfig struct {
	SecretKey   string
	TokenTTL    time.Duration
	AdminAPIKey string
}

type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
}

type KafkaConfig struct {
	Enabled           bool
	Brokers           []string
	LedgerTopic       string
	VerificationTopic string
	GroupID           string
}

type ElasticsearchConfig struct {
	Enabled   bool
	Addresses []string
	Username  string
	Password  string
}

type LedgerConfig struct {
	Enabled       bool
	Timeout       time.Duration
	RetryInterval time.Duration
	MaxAttempts   int
	BatchSize     int
	// SyncGrace keeps the retry worker away from transfers whose inline ledger
	// call may still be in flight. Never shorter than Timeout.
	SyncGrace time.Duration
}

type TransferConfig struct {
	LockTTL time.Duration
}

func LoadEnv() *Config {
	cfg := &Config{
		Server: ServerConfig{
			AppEnv:        getEnv("APP_ENV", "dev"),
			GRPCPort:      getEnv("GRPC_PORT", ":8082"),
			HTTPPort:      getEnv("HTTP_PORT", ":8080"),
			StorageDriver: getEnv("STORAGE_DRIVER", "postgres"),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "localhost"),
			Port:            getEnv("POSTGRES_PORT", "5432"),
			User:            getEnv("POSTGRES_USER", "agritrace"),
			Password:        getEnv("POSTGRES_PASSWORD", "agritrace"),
			DBName:          getEnv("POSTGRES_DB", "agritrace"),
			SSLMode:         getEnv("POSTGRES_SSLMODE", "disable"),
			MaxOpenConns:    getEnvInt("POSTGRES_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("POSTGRES_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvInt("POSTGRES_CONN_MAX_LIFETIME", 300),
			ConnMaxIdleTime: getEnvInt("POSTGRES_CONN_MAX_IDLE_TIME", 60),
		},
		JWT: JWTConfig{
			SecretKey:   getEnv("JWT_SECRET_KEY", "your-secret-key-change-this-in-prod"),
			TokenTTL:    getEnvDuration("JWT_TOKEN_TTL", 24*time.Hour),
			AdminAPIKey: getEnv("ADMIN_API_KEY", ""),
		},
		Redis: RedisConfig{
			Enabled:  getEnvBool("REDIS_ENABLED", true),
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Kafka: KafkaConfig{
			Enabled:           getEnvBool("KAFKA_ENABLED", true),
			Brokers:           getEnvSlice("KAFKA_BROKERS", []string{"localhost:9092"}),
			LedgerTopic:       getEnv("KAFKA_TOPIC_LEDGER", "agritrace.ledger"),
			VerificationTopic: getEnv("KAFKA_TOPIC_VERIFICATIONS", "identity.verifications"),
			GroupID:           getEnv("KAFKA_GROUP_ID", "agritrace"),
		},
		Elastic: ElasticsearchConfig{
			Enabled:   getEnvBool("ELASTICSEARCH_ENABLED", true),
			Addresses: getEnvSlice("ELASTICSEARCH_ADDRESSES", []string{"http://localhost:9200"}),
			Username:  getEnv("ELASTICSEARCH_USERNAME", ""),
			Password:  getEnv("ELASTICSEARCH_PASSWORD", ""),
		},
		Ledger: LedgerConfig{
			Enabled:       getEnvBool("LEDGER_ENABLED", true),
			Timeout:       getEnvDuration("LEDGER_TIMEOUT", 3*time.Second),
			RetryInterval: getEnvDuration("LEDGER_RETRY_INTERVAL", 30*time.Second),
			MaxAttempts:   getEnvInt("LEDGER_MAX_ATTEMPTS", 10),
			BatchSize:     getEnvInt("LEDGER_BATCH_SIZE", 100),
			SyncGrace:     getEnvDuration("LEDGER_SYNC_GRACE", 10*time.Second),
		},
		Transfer: TransferConfig{
			LockTTL: getEnvDuration("TRANSFER_LOCK_TTL", 5*time.Second),
		},
	}
	if cfg.Ledger.SyncGrace < cfg.Ledger.Timeout {
		cfg.Ledger.SyncGrace = cfg.Ledger.Timeout
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

// getEnvDuration accepts Go duration strings such as "3s" or "500ms".
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvSlice(key string, fallback []string) []string {
	if value, ok := os.LookupEnv(key); ok {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	}
	return fallback
}
