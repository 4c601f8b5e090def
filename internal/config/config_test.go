package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 8080, cfg.ServerPort)
	require.Equal(t, "./portal.db", cfg.DatabasePath)
	require.Equal(t, 2*time.Hour, cfg.TokenTTL)
	require.Equal(t, 50, cfg.SummaryCutoff)
	require.False(t, cfg.SummaryTemplate)
	require.True(t, cfg.BroadcastEnabled)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("PORT", "9000")
	t.Setenv("SUMMARY_CUTOFF", "120")
	t.Setenv("SUMMARY_TEMPLATE", "true")
	t.Setenv("BROADCAST_ENABLED", "false")
	t.Setenv("TOKEN_TTL", "30m")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 9000, cfg.ServerPort)
	require.Equal(t, 120, cfg.SummaryCutoff)
	require.True(t, cfg.SummaryTemplate)
	require.False(t, cfg.BroadcastEnabled)
	require.Equal(t, 30*time.Minute, cfg.TokenTTL)
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_BadPort(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("PORT", "not-a-port")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_BadCutoff(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("SUMMARY_CUTOFF", "0")

	_, err := Load()
	require.Error(t, err)
}
