package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string
	FrontendURL string

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string

	RedisURL        string
	CatalogCacheTTL time.Duration

	JWTSecret string
	JWTExpiry time.Duration

	FirebaseCredentials string

	KafkaBrokers    string
	OrderEventTopic string
	SNSTopicArn     string

	RateLimitPerMin int
	RateLimitBurst  int
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found, using system environment variables")
	}

	return Config{
		Port:        getEnv("PORT", "8000"),
		Environment: getEnv("ENVIRONMENT", "development"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),

		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "postgres"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", ""),
		PostgresDB:       getEnv("POSTGRES_DB", "petbloom"),

		RedisURL:        getEnv("REDIS_URL", "redis://localhost:6379"),
		CatalogCacheTTL: time.Minute * 10,

		JWTSecret: getEnv("JWT_SECRET", ""),
		JWTExpiry: time.Hour * 24,

		FirebaseCredentials: getEnv("FIREBASE_CREDENTIALS", ""),

		KafkaBrokers:    getEnv("KAFKA_BROKERS", ""),
		OrderEventTopic: getEnv("ORDER_EVENT_TOPIC", "order.created"),
		SNSTopicArn:     getEnv("SNS_ORDER_TOPIC_ARN", ""),

		RateLimitPerMin: getEnvInt("RATE_LIMIT_PER_MINUTE", 100),
		RateLimitBurst:  getEnvInt("RATE_LIMIT_BURST", 50),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}
