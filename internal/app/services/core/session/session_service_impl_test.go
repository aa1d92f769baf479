package session

import (
	"context"
	"errors"
	"mediconnect-portal/internal/app/config"
	"mediconnect-portal/internal/app/services/shared/redis"
	"mediconnect-portal/internal/pkg/dto/responses"
	"mediconnect-portal/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v4"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2025, 1, 4, 8, 0, 0, 0, time.UTC)

func setupSessionService(t *testing.T) (*miniredis.Miniredis, *sessionService) {
	t.Helper()
	server := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.InternalConfig{Session: config.Session{LoginSessionExpiredTimeInHours: 2}}
	return server, &sessionService{
		RedisRepository: redis.NewRedisRepository(client),
		InternalConfig:  cfg,
		Log:             zap.NewNop(),
		Now:             func() time.Time { return fixedNow },
	}
}

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("remote-secret"))
	require.NoError(t, err)
	return token
}

func TestSessionService(t *testing.T) {
	ctx := context.Background()

	t.Run("Open Uses Token Expiry", func(t *testing.T) {
		server, svc := setupSessionService(t)
		token := signedToken(t, jwt.MapClaims{"sub": "pat@example.com", "exp": fixedNow.Add(30 * time.Minute).Unix()})

		session, err := svc.Open(ctx, &responses.Login{Token: token, Role: "Patient", Email: "pat@example.com", ID: "P1"})
		require.NoError(t, err)
		assert.NotEmpty(t, session.SessionID)
		assert.Equal(t, "P1", session.UserID)
		assert.True(t, session.ExpiresAt.Equal(fixedNow.Add(30*time.Minute)))
		assert.Equal(t, 30*time.Minute, server.TTL("session:"+session.SessionID))
	})

	t.Run("Open Falls Back To Configured Duration", func(t *testing.T) {
		server, svc := setupSessionService(t)
		session, err := svc.Open(ctx, &responses.Login{Token: "opaque-token", Role: "Doctor", Email: "doc@example.com"})
		require.NoError(t, err)
		assert.Equal(t, 2*time.Hour, server.TTL("session:"+session.SessionID))
	})

	t.Run("Open Rejects Expired Token", func(t *testing.T) {
		_, svc := setupSessionService(t)
		token := signedToken(t, jwt.MapClaims{"exp": fixedNow.Add(-time.Minute).Unix()})
		_, err := svc.Open(ctx, &responses.Login{Token: token})

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, 401, customErr.StatusCode)
	})

	t.Run("Get Round Trips And Close Clears", func(t *testing.T) {
		server, svc := setupSessionService(t)
		opened, err := svc.Open(ctx, &responses.Login{Token: "opaque-token", Role: "Receptionist", Email: "rec@example.com"})
		require.NoError(t, err)

		loaded, err := svc.Get(ctx, opened.SessionID)
		require.NoError(t, err)
		assert.Equal(t, "Receptionist", loaded.Role)
		assert.Equal(t, "opaque-token", loaded.Token)

		require.NoError(t, svc.Close(ctx, opened.SessionID))
		assert.False(t, server.Exists("session:"+opened.SessionID))

		_, err = svc.Get(ctx, opened.SessionID)
		assert.Error(t, err)
	})

	t.Run("Get Without Id", func(t *testing.T) {
		_, svc := setupSessionService(t)
		_, err := svc.Get(ctx, "")
		assert.Error(t, err)
	})
}
