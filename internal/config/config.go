package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Artifact   ArtifactConfig
	Dataset    DatasetConfig
	Prediction PredictionConfig
	Logger     LoggerConfig
}

type ServerConfig struct {
	Host          string
	Port          int
	TemplatesGlob string
}

type ArtifactConfig struct {
	Path string
}

type DatasetConfig struct {
	Path string
}

type PredictionConfig struct {
	Threshold float64
}

type LoggerConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	// Optional .env for local development.
	_ = godotenv.Load()

	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("WEB_TEMPLATES", "web/templates/*.html")
	v.SetDefault("MODEL_PATH", "artifacts/catboost.json")
	v.SetDefault("DATASET_PATH", "data/loan_data_cleaned.csv")
	v.SetDefault("DECISION_THRESHOLD", 0.5)
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")

	// Env
	v.AutomaticEnv()

	threshold := v.GetFloat64("DECISION_THRESHOLD")
	if threshold <= 0 || threshold >= 1 {
		return nil, fmt.Errorf("DECISION_THRESHOLD must be strictly between 0 and 1, got %g", threshold)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:          v.GetString("SERVER_HOST"),
			Port:          v.GetInt("SERVER_PORT"),
			TemplatesGlob: v.GetString("WEB_TEMPLATES"),
		},
		Artifact: ArtifactConfig{
			Path: v.GetString("MODEL_PATH"),
		},
		Dataset: DatasetConfig{
			Path: v.GetString("DATASET_PATH"),
		},
		Prediction: PredictionConfig{
			Threshold: threshold,
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
	}

	return cfg, nil
}
