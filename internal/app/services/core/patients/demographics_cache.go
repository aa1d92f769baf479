package patients

import (
	"context"
	"mediconnect-portal/internal/app/contracts"
	"mediconnect-portal/internal/app/models"
	"mediconnect-portal/internal/pkg/constvars"
	"mediconnect-portal/internal/pkg/utils"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type demographicsCache struct {
	PatientClient   contracts.PatientClient
	RedisRepository contracts.RedisRepository
	TTL             time.Duration
	Log             *zap.Logger
}

// NewDemographicsCache reads demographics through Redis. Entries are kept per
// caller, so a hit never serves a record the caller's own token was not
// allowed to fetch. Cache failures are logged and fall through to the
// hospital API.
func NewDemographicsCache(patientClient contracts.PatientClient, redisRepository contracts.RedisRepository, ttl time.Duration, logger *zap.Logger) DemographicsReader {
	return &demographicsCache{
		PatientClient:   patientClient,
		RedisRepository: redisRepository,
		TTL:             ttl,
		Log:             logger,
	}
}

func (c *demographicsCache) GetDemographics(ctx context.Context, session *models.Session, email string) (*models.PatientDemographics, error) {
	requestID := utils.GetRequestID(ctx)
	key := demographicsKey(email, session)

	cached, err := c.RedisRepository.Get(ctx, key)
	if err != nil {
		c.Log.Warn("demographicsCache.GetDemographics cache read failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
	}
	if cached != "" {
		demographics := new(models.PatientDemographics)
		if json.Unmarshal([]byte(cached), demographics) == nil {
			c.Log.Debug("demographicsCache.GetDemographics cache hit",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, key),
			)
			return demographics, nil
		}
	}

	demographics, err := c.PatientClient.FindByEmail(ctx, session, email)
	if err != nil {
		return nil, err
	}
	if demographics == nil {
		return nil, nil
	}

	err = c.RedisRepository.Set(ctx, key, demographics, c.TTL)
	if err != nil {
		c.Log.Warn("demographicsCache.GetDemographics cache write failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
	}
	return demographics, nil
}

// Invalidate drops every caller's entry for the patient.
func (c *demographicsCache) Invalidate(ctx context.Context, email string) {
	err := c.RedisRepository.DeleteByPrefix(ctx, demographicsPatientPrefix(email))
	if err != nil {
		c.Log.Warn("demographicsCache.Invalidate failed",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingEmailKey, email),
			zap.Error(err),
		)
	}
}

func demographicsPatientPrefix(email string) string {
	return constvars.RedisKeyDemographicsPrefix + strings.ToLower(strings.TrimSpace(email)) + ":"
}

func demographicsKey(email string, session *models.Session) string {
	return demographicsPatientPrefix(email) + callerID(session)
}

func callerID(session *models.Session) string {
	switch {
	case session == nil:
		return ""
	case session.UserID != "":
		return session.UserID
	case session.Email != "":
		return strings.ToLower(session.Email)
	default:
		return session.SessionID
	}
}
