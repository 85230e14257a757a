package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/iq-api/internal/config"
)

func TestRedisOptions_SingleAddr(t *testing.T) {
	opts, err := redisOptions(config.RedisConfig{Addr: "localhost:6379", DB: 2, MinRetryBackoff: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"localhost:6379"}, opts.Addrs)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, 10*time.Millisecond, opts.MinRetryBackoff)
}

func TestRedisOptions_AddrsWin(t *testing.T) {
	opts, err := redisOptions(config.RedisConfig{Mode: "cluster", Addrs: []string{"a:1", "b:2"}, Addr: "c:3"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a:1", "b:2"}, opts.Addrs)
}

func TestRedisOptions_Errors(t *testing.T) {
	_, err := redisOptions(config.RedisConfig{})
	assert.Error(t, err, "без адреса")

	_, err = redisOptions(config.RedisConfig{Mode: "sentinel", Addr: "a:1"})
	assert.Error(t, err, "sentinel без MasterName")

	_, err = redisOptions(config.RedisConfig{Mode: "weird", Addr: "a:1"})
	assert.Error(t, err)
}

func TestRedisOptions_Sentinel(t *testing.T) {
	opts, err := redisOptions(config.RedisConfig{Mode: "sentinel", Addrs: []string{"s:26379"}, MasterName: "mymaster"})
	require.NoError(t, err)
	assert.Equal(t, "mymaster", opts.MasterName)
}
