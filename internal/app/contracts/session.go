package contracts

import (
	"context"
	"mediconnect-portal/internal/app/models"
	"mediconnect-portal/internal/pkg/dto/responses"
)

type SessionService interface {
	Open(ctx context.Context, login *responses.Login) (*models.Session, error)
	Get(ctx context.Context, sessionID string) (*models.Session, error)
	Close(ctx context.Context, sessionID string) error
}
