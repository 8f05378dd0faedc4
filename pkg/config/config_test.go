package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:3000", c.Addr)
	assert.Equal(t, "public", c.PublicDir)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, 10*time.Second, c.ShutdownTimeout)
	assert.Empty(t, c.OtelHost)
	assert.False(t, c.OtelStdout)
	assert.Equal(t, 1.0, c.OtelProbability)
	assert.Empty(t, c.RedisAddr)
	assert.Equal(t, "pos:orders", c.RedisChannel)
	assert.Equal(t, 256, c.FeedBuffer)
	assert.Equal(t, 2*time.Second, c.FeedTimeout)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("POS_ADDR", "127.0.0.1:8080")
	t.Setenv("POS_PUBLIC_DIR", "/srv/pos")
	t.Setenv("POS_REDIS_ADDR", "redis:6379")
	t.Setenv("POS_OTEL_PROBABILITY", "0.25")

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", c.Addr)
	assert.Equal(t, "/srv/pos", c.PublicDir)
	assert.Equal(t, "redis:6379", c.RedisAddr)
	assert.Equal(t, 0.25, c.OtelProbability)
}

func TestLoadRejectsBadProbability(t *testing.T) {
	t.Setenv("POS_OTEL_PROBABILITY", "2")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("POS_SHUTDOWN_TIMEOUT", "soon")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsEmptyFeedBuffer(t *testing.T) {
	t.Setenv("POS_FEED_BUFFER", "0")

	_, err := Load()
	assert.Error(t, err)
}
