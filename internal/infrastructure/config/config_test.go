package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9091, cfg.GRPCPort)
	assert.Equal(t, 8091, cfg.HTTPPort)
	assert.Equal(t, "verificacion_crediticia", cfg.DB.Name)
	assert.Equal(t, "verification-events", cfg.Kafka.Topic)
	assert.True(t, cfg.Kafka.OutboxEnabled)

	assert.False(t, cfg.Bureau.UseStub, "the real bureau client is the default")
	assert.Equal(t, "/var/lib/verificacion/documents", cfg.Pipeline.DocumentStoreDir)
	assert.Equal(t, 3, cfg.Pipeline.Workers)

	assert.True(t, cfg.Scoring.ApproveThreshold.Equal(decimal.NewFromInt(60)))
	assert.True(t, cfg.Scoring.ReviewThreshold.Equal(decimal.NewFromInt(40)))
	assert.True(t, cfg.Scoring.HighRiskThreshold.Equal(decimal.NewFromInt(25)))
	assert.Equal(t, 2, cfg.Scoring.DefaultMaxDepth)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("BUREAU_STUB", "true")
	t.Setenv("DOCUMENT_STORE_DIR", "/tmp/verificacion-docs")
	t.Setenv("SCORE_APPROVE_THRESHOLD", "70")
	t.Setenv("PIPELINE_WORKERS", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Bureau.UseStub)
	assert.Equal(t, "/tmp/verificacion-docs", cfg.Pipeline.DocumentStoreDir)
	assert.True(t, cfg.Scoring.ApproveThreshold.Equal(decimal.NewFromInt(70)))
	assert.Equal(t, 5, cfg.Pipeline.Workers)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("PIPELINE_WORKERS", "0")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Workers")
}

func TestAddrs(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9091", cfg.GRPCAddr())
	assert.Equal(t, ":8091", cfg.HTTPAddr())
}
