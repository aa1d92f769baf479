package mocks

import (
	"context"
	"mediconnect-portal/internal/app/models"
	"mediconnect-portal/internal/pkg/dto/responses"
	"time"

	"github.com/stretchr/testify/mock"
)

type EventPublisher struct {
	mock.Mock
}

func (m *EventPublisher) PublishAppointmentEvent(ctx context.Context, event models.AppointmentEvent) error {
	return m.Called(ctx, event).Error(0)
}

type Storage struct {
	mock.Mock
}

func (m *Storage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error) {
	args := m.Called(ctx, bucketName, objectName, expiryTime)
	return args.String(0), args.Error(1)
}

type SessionService struct {
	mock.Mock
}

func (m *SessionService) Open(ctx context.Context, login *responses.Login) (*models.Session, error) {
	args := m.Called(ctx, login)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func (m *SessionService) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func (m *SessionService) Close(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}
