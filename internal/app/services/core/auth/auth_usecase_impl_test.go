package auth

import (
	"context"
	"errors"
	"mediconnect-portal/internal/app/contracts/mocks"
	"mediconnect-portal/internal/app/models"
	"mediconnect-portal/internal/pkg/dto/requests"
	"mediconnect-portal/internal/pkg/dto/responses"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDashboardFor(t *testing.T) {
	assert.Equal(t, "/patient-dashboard", DashboardFor("Patient"))
	assert.Equal(t, "/doctor-dashboard", DashboardFor("Doctor"))
	assert.Equal(t, "/receptionist-dashboard", DashboardFor("Receptionist"))
	assert.Equal(t, "/admin", DashboardFor("Admin"))
	assert.Equal(t, "/", DashboardFor("Janitor"))
}

func TestAuthUsecase_Login(t *testing.T) {
	request := &requests.Login{Email: "doc@example.com", Password: "secret"}

	t.Run("Opens Session And Routes By Role", func(t *testing.T) {
		client := new(mocks.AuthClient)
		sessions := new(mocks.SessionService)
		uc := &authUsecase{AuthClient: client, SessionService: sessions, Log: zap.NewNop()}

		login := &responses.Login{Token: "tok", Role: "Doctor", Email: "doc@example.com", ID: "U1"}
		expires := time.Date(2025, 1, 4, 10, 0, 0, 0, time.UTC)
		client.On("Login", mock.Anything, request).Return(login, nil)
		sessions.On("Open", mock.Anything, login).Return(&models.Session{
			SessionID: "S1", Token: "tok", Role: "Doctor", Email: "doc@example.com", ExpiresAt: expires,
		}, nil)

		response, err := uc.Login(context.Background(), request)
		require.NoError(t, err)
		assert.Equal(t, "S1", response.SessionID)
		assert.Equal(t, "/doctor-dashboard", response.Dashboard)
		assert.Equal(t, "2025-01-04T10:00:00Z", response.ExpiresAt)
	})

	t.Run("Remote Failure Opens No Session", func(t *testing.T) {
		client := new(mocks.AuthClient)
		sessions := new(mocks.SessionService)
		uc := &authUsecase{AuthClient: client, SessionService: sessions, Log: zap.NewNop()}
		client.On("Login", mock.Anything, request).Return(nil, errors.New("invalid credentials"))

		_, err := uc.Login(context.Background(), request)
		assert.Error(t, err)
		sessions.AssertNotCalled(t, "Open", mock.Anything, mock.Anything)
	})

	t.Run("Logout Closes Session", func(t *testing.T) {
		sessions := new(mocks.SessionService)
		uc := &authUsecase{AuthClient: new(mocks.AuthClient), SessionService: sessions, Log: zap.NewNop()}
		sessions.On("Close", mock.Anything, "S1").Return(nil)

		require.NoError(t, uc.Logout(context.Background(), "S1"))
		sessions.AssertExpectations(t)
	})
}
