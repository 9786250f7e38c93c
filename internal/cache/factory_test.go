package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asoloviev/nutritrack/internal/config"
	"github.com/asoloviev/nutritrack/internal/testutil"
)

func TestNewFromConfig_Memory(t *testing.T) {
	c, err := NewFromConfig(config.Cache{Type: "memory", MaxSize: 10}, time.Hour, testutil.MakeNoopLogger())
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.IsType(t, &Memory{}, c)
	_ = c.Close()
}

func TestNewFromConfig_ValkeyRequiresAddress(t *testing.T) {
	_, err := NewFromConfig(config.Cache{Type: "valkey"}, time.Hour, testutil.MakeNoopLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "valkey address is required")
}

func TestNewFromConfig_UnknownType(t *testing.T) {
	_, err := NewFromConfig(config.Cache{Type: "memcached"}, time.Hour, testutil.MakeNoopLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid cache type")
}
