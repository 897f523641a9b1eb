package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "web/templates/*.html", cfg.Server.TemplatesGlob)
	assert.Equal(t, "artifacts/catboost.json", cfg.Artifact.Path)
	assert.Equal(t, "data/loan_data_cleaned.csv", cfg.Dataset.Path)
	assert.Equal(t, 0.5, cfg.Prediction.Threshold)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DECISION_THRESHOLD", "0.65")
	t.Setenv("MODEL_PATH", "/var/models/loans.json")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 0.65, cfg.Prediction.Threshold)
	assert.Equal(t, "/var/models/loans.json", cfg.Artifact.Path)
}

func TestLoadRejectsBadThreshold(t *testing.T) {
	for _, v := range []string{"0", "1", "-0.2", "1.5"} {
		t.Run(v, func(t *testing.T) {
			t.Setenv("DECISION_THRESHOLD", v)

			cfg, err := Load()

			assert.Nil(t, cfg)
			assert.ErrorContains(t, err, "DECISION_THRESHOLD")
		})
	}
}
