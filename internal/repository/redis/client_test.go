package redis_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/address-navigator/internal/config"
	redisRepo "github.com/address-navigator/internal/repository/redis"
)

func TestNewClient(t *testing.T) {
	t.Run("connects and reports health", func(t *testing.T) {
		mr := miniredis.RunT(t)
		port, err := strconv.Atoi(mr.Port())
		require.NoError(t, err)

		client, err := redisRepo.NewClient(&config.RedisConfig{Host: mr.Host(), Port: port}, zap.NewNop())
		require.NoError(t, err)

		assert.NoError(t, client.Health(context.Background()))
		assert.NotNil(t, client.Redis())

		mr.Close()
		assert.Error(t, client.Health(context.Background()))
		assert.NoError(t, client.Close())
	})

	t.Run("connection refused", func(t *testing.T) {
		mr := miniredis.RunT(t)
		host := mr.Host()
		port, err := strconv.Atoi(mr.Port())
		require.NoError(t, err)
		mr.Close()

		client, err := redisRepo.NewClient(&config.RedisConfig{Host: host, Port: port}, zap.NewNop())
		assert.Error(t, err)
		assert.Nil(t, client)
	})
}
