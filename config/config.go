package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds environment-driven settings for the classification service.
type Config struct {
	Port int

	KafkaBrokers          []string
	KafkaReadingsTopic    string
	KafkaPredictionsTopic string
	KafkaGroupID          string
}

// Load reads configuration from environment variables (optionally .env).
func Load() (Config, error) {
	_ = godotenv.Load() // ignore missing file

	cfg := Config{
		Port:                  5000,
		KafkaReadingsTopic:    "sensor.readings",
		KafkaPredictionsTopic: "sensor.predictions",
		KafkaGroupID:          "ml-service",
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil && port > 0 {
			cfg.Port = port
		} else {
			return cfg, fmt.Errorf("invalid PORT: %s", portStr)
		}
	} else if portStr := os.Getenv("ML_PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil && port > 0 {
			cfg.Port = port
		} else {
			return cfg, fmt.Errorf("invalid ML_PORT: %s", portStr)
		}
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}

	if topic := os.Getenv("KAFKA_READINGS_TOPIC"); topic != "" {
		cfg.KafkaReadingsTopic = topic
	}
	if topic := os.Getenv("KAFKA_PREDICTIONS_TOPIC"); topic != "" {
		cfg.KafkaPredictionsTopic = topic
	}
	if group := os.Getenv("KAFKA_GROUP_ID"); group != "" {
		cfg.KafkaGroupID = group
	}

	return cfg, nil
}

// ListenAddr returns the host:port string for the HTTP server.
func (c Config) ListenAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// KafkaEnabled reports whether the streaming bridge should run.
func (c Config) KafkaEnabled() bool {
	return len(c.KafkaBrokers) > 0
}
