package auth

import (
	"context"
	"mediconnect-portal/internal/app/contracts"
	"mediconnect-portal/internal/app/models"
	"mediconnect-portal/internal/pkg/constvars"
	"mediconnect-portal/internal/pkg/dto/requests"
	"mediconnect-portal/internal/pkg/dto/responses"
	"mediconnect-portal/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

type authUsecase struct {
	AuthClient     contracts.AuthClient
	SessionService contracts.SessionService
	Log            *zap.Logger
}

var (
	authUsecaseInstance AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(authClient contracts.AuthClient, sessionService contracts.SessionService, logger *zap.Logger) AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			AuthClient:     authClient,
			SessionService: sessionService,
			Log:            logger,
		}
	})
	return authUsecaseInstance
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.PortalLogin, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	login, err := uc.AuthClient.Login(ctx, request)
	if err != nil {
		uc.Log.Error("authUsecase.Login error from hospital API",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	session, err := uc.SessionService.Open(ctx, login)
	if err != nil {
		uc.Log.Error("authUsecase.Login error opening session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
		zap.String(constvars.LoggingRoleKey, session.Role),
	)
	return &responses.PortalLogin{
		SessionID:       session.SessionID,
		Role:            session.Role,
		Email:           session.Email,
		IsProfileFilled: session.IsProfileFilled,
		Dashboard:       DashboardFor(session.Role),
		ExpiresAt:       session.ExpiresAt.Format(time.RFC3339),
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionID string) error {
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)
	return uc.SessionService.Close(ctx, sessionID)
}

func (uc *authUsecase) ResolveSession(ctx context.Context, sessionID string) (*models.Session, error) {
	return uc.SessionService.Get(ctx, sessionID)
}

// DashboardFor returns where a role lands after login; unknown roles go home.
func DashboardFor(role string) string {
	if dashboard, ok := constvars.RoleDashboards[role]; ok {
		return dashboard
	}
	return constvars.DefaultDashboard
}
