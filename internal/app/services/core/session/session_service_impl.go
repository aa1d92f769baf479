package session

import (
	"context"
	"mediconnect-portal/internal/app/config"
	"mediconnect-portal/internal/app/contracts"
	"mediconnect-portal/internal/app/models"
	"mediconnect-portal/internal/pkg/constvars"
	"mediconnect-portal/internal/pkg/dto/responses"
	"mediconnect-portal/internal/pkg/exceptions"
	"mediconnect-portal/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
	Now             func() time.Time
}

func NewSessionService(redisRepository contracts.RedisRepository, internalConfig *config.InternalConfig, logger *zap.Logger) contracts.SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
		Log:             logger,
		Now:             time.Now,
	}
}

// Open stores a session for a successful remote login. The session lives as
// long as the token's exp claim, or the configured login duration when the
// token carries none.
func (svc *sessionService) Open(ctx context.Context, login *responses.Login) (*models.Session, error) {
	requestID := utils.GetRequestID(ctx)
	svc.Log.Info("sessionService.Open called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, login.Email),
		zap.String(constvars.LoggingRoleKey, login.Role),
	)

	if login.Token == "" {
		return nil, exceptions.ErrTokenMissing(nil)
	}

	now := svc.Now()
	expiresAt := svc.tokenExpiry(login.Token)
	if expiresAt.IsZero() {
		expiresAt = now.Add(time.Duration(svc.InternalConfig.Session.LoginSessionExpiredTimeInHours) * time.Hour)
	}
	ttl := expiresAt.Sub(now)
	if ttl <= 0 {
		return nil, exceptions.ErrTokenInvalidOrExpired(nil)
	}

	session := &models.Session{
		SessionID:       utils.GenerateSessionID(),
		Token:           login.Token,
		Role:            login.Role,
		Email:           login.Email,
		UserID:          login.ID,
		IsProfileFilled: login.IsProfileFilled,
		IssuedAt:        now,
		ExpiresAt:       expiresAt,
	}

	err := svc.RedisRepository.Set(ctx, sessionKey(session.SessionID), session, ttl)
	if err != nil {
		svc.Log.Error("sessionService.Open error storing session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	svc.Log.Info("sessionService.Open succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
		zap.Duration(constvars.LoggingDurationKey, ttl),
	)
	return session, nil
}

func (svc *sessionService) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	if sessionID == "" {
		return nil, exceptions.ErrTokenMissing(nil)
	}

	sessionData, err := svc.RedisRepository.Get(ctx, sessionKey(sessionID))
	if err != nil {
		return nil, err
	}
	if sessionData == "" {
		return nil, exceptions.ErrInvalidSession(nil)
	}

	session := new(models.Session)
	err = json.Unmarshal([]byte(sessionData), session)
	if err != nil {
		return nil, exceptions.ErrInvalidSession(err)
	}
	if session.IsExpired(svc.Now()) {
		return nil, exceptions.ErrTokenInvalidOrExpired(nil)
	}
	return session, nil
}

func (svc *sessionService) Close(ctx context.Context, sessionID string) error {
	svc.Log.Info("sessionService.Close called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)
	if sessionID == "" {
		return exceptions.ErrTokenMissing(nil)
	}
	return svc.RedisRepository.Delete(ctx, sessionKey(sessionID))
}

// tokenExpiry reads exp without verifying the signature; the hospital API
// remains the only authority on the token.
func (svc *sessionService) tokenExpiry(token string) time.Time {
	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(token, claims)
	if err != nil {
		return time.Time{}
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return time.Time{}
	}
	return time.Unix(int64(exp), 0)
}

func sessionKey(sessionID string) string {
	return constvars.RedisKeySessionPrefix + sessionID
}
