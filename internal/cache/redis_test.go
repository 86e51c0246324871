package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRedisOptions(t *testing.T) {
	opts, err := parseRedisOptions("localhost:6379")
	require.NoError(t, err)
	assert.Equal(t, "localhost:6379", opts.Addr)

	opts, err = parseRedisOptions("redis://:secret@cache.internal:6380/2")
	require.NoError(t, err)
	assert.Equal(t, "cache.internal:6380", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 2, opts.DB)

	_, err = parseRedisOptions("redis://[broken")
	assert.Error(t, err)
}

func TestInitRedis_InvalidURLDisablesCache(t *testing.T) {
	client = nil
	InitRedis("redis://[broken")
	assert.Nil(t, GetClient())
}
