package config

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

// Config holds all configuration for the application.
type Config struct {
	AppEnv     string
	LogLevel   string
	LogOutput  string
	OutputPath string
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() *Config {
	return &Config{
		AppEnv:     getEnv("APP_ENV", "development"),
		LogLevel:   getEnv("LOG_LEVEL", "error"),
		LogOutput:  getEnv("LOG_OUTPUT", "stderr"),
		OutputPath: getEnv("GRADES_OUTPUT", "grades.csv"),
	}
}

// NewLogger creates a new Zap logger based on the config. Logs never go to
// stdout, which belongs to the prompts.
func NewLogger(cfg *Config) (*zap.Logger, error) {
	zc := zap.NewDevelopmentConfig()
	if cfg.AppEnv == "production" {
		zc = zap.NewProductionConfig()
	}

	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parse LOG_LEVEL: %w", err)
	}
	zc.Level = level

	if cfg.LogOutput == "stdout" {
		return nil, fmt.Errorf("LOG_OUTPUT cannot be stdout")
	}
	zc.OutputPaths = []string{cfg.LogOutput}
	zc.ErrorOutputPaths = []string{"stderr"}

	return zc.Build()
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
