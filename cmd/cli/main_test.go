package main

import (
	"mediconnect-portal/internal/app/config"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestCloseDrivers(t *testing.T) {
	newBootstrap := func(t *testing.T) *config.Bootstrap {
		server := miniredis.RunT(t)
		return &config.Bootstrap{
			Redis:          redis.NewClient(&redis.Options{Addr: server.Addr()}),
			Logger:         zap.NewNop(),
			InternalConfig: &config.InternalConfig{App: config.App{ShutdownTimeoutInSeconds: 1}},
		}
	}

	t.Run("Clean Close Logs Nothing", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		closeDrivers(newBootstrap(t), zap.New(core))
		assert.Zero(t, logs.Len())
	})

	t.Run("Close Failure Is Logged", func(t *testing.T) {
		bootstrap := newBootstrap(t)
		require.NoError(t, bootstrap.Redis.Close())

		core, logs := observer.New(zapcore.WarnLevel)
		closeDrivers(bootstrap, zap.New(core))

		entries := logs.FilterMessage("Error while closing drivers").All()
		require.Len(t, entries, 1)
		assert.Contains(t, entries[0].ContextMap(), "error")
	})
}
