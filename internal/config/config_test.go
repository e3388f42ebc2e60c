package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, 10*time.Second, cfg.Dispatch.TickInterval)
	assert.Equal(t, 10, cfg.Dispatch.CheckpointEvery)
	assert.Equal(t, 24*time.Hour, cfg.Dispatch.ActiveWindow)
	assert.Equal(t, 15*time.Minute, cfg.Dispatch.StaleAfter)
	assert.Equal(t, 250*time.Millisecond, cfg.Messenger.SendInterval)
	assert.Equal(t, 2, cfg.Messenger.RetryMax)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "pagecast", cfg.Psql.Addr.Path[1:])
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DISPATCH_TICK_INTERVAL", "2s")
	t.Setenv("DISPATCH_CHECKPOINT_EVERY", "25")
	t.Setenv("MESSENGER_APP_SECRET", "shh")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.Dispatch.TickInterval)
	assert.Equal(t, 25, cfg.Dispatch.CheckpointEvery)
	assert.Equal(t, "shh", cfg.Messenger.AppSecret)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("DISPATCH_STALE_AFTER", "soon")
	_, err := Load()
	require.Error(t, err)
}
