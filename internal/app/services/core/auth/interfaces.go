package auth

import (
	"context"
	"mediconnect-portal/internal/app/models"
	"mediconnect-portal/internal/pkg/dto/requests"
	"mediconnect-portal/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*responses.PortalLogin, error)
	Logout(ctx context.Context, sessionID string) error
	ResolveSession(ctx context.Context, sessionID string) (*models.Session, error)
}
