package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr    string
	MetricsAddr string
	DSN         string
	JWTSecret   string
	TokenTTL    time.Duration
	KafkaConfig KafkaConfig
}

// KafkaConfig is optional: an empty broker list disables the kafka
// audit sink and audit events go to the structured log instead.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, using environment variables")
	}

	config := &Config{
		HTTPAddr:    getEnv("HTTP_ADDR", ":3000"),
		MetricsAddr: getEnv("METRICS_ADDR", ":9090"),
		DSN:         getEnv("DSN", ""),
		JWTSecret:   getEnv("JWT_SECRET", ""),
	}

	ttl, err := time.ParseDuration(getEnv("TOKEN_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
	}
	config.TokenTTL = ttl

	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		config.KafkaConfig = KafkaConfig{
			Brokers: strings.Split(brokers, ","),
			Topic:   getEnv("AUDIT_TOPIC", "note-audit"),
		}
	}

	if config.DSN == "" {
		return nil, fmt.Errorf("DSN is required")
	}

	if config.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
