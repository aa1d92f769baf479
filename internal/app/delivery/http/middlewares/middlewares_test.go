package middlewares

import (
	"context"
	"errors"
	"mediconnect-portal/internal/app/config"
	"mediconnect-portal/internal/app/models"
	"mediconnect-portal/internal/pkg/constvars"
	"mediconnect-portal/internal/pkg/dto/requests"
	"mediconnect-portal/internal/pkg/dto/responses"
	"mediconnect-portal/internal/pkg/exceptions"
	"mediconnect-portal/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Login(ctx context.Context, request *requests.Login) (*responses.PortalLogin, error) {
	args := m.Called(ctx, request)
	login, _ := args.Get(0).(*responses.PortalLogin)
	return login, args.Error(1)
}

func (m *MockAuthUsecase) Logout(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

func (m *MockAuthUsecase) ResolveSession(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func newTestMiddlewares(authUsecase *MockAuthUsecase) *Middlewares {
	return &Middlewares{
		Log:            zap.NewNop(),
		AuthUsecase:    authUsecase,
		InternalConfig: &config.InternalConfig{App: config.App{MaxRequests: 100, Timezone: "UTC"}},
	}
}

func okHandler(w http.ResponseWriter, r *http.Request) {
	session, _ := utils.GetSession(r.Context())
	if session != nil {
		w.Header().Set("X-Role", session.Role)
	}
	w.WriteHeader(http.StatusOK)
}

func TestAuthenticate(t *testing.T) {
	authUsecase := new(MockAuthUsecase)
	m := newTestMiddlewares(authUsecase)

	router := chi.NewRouter()
	router.Use(m.Authenticate)
	router.With(m.RequireRoles(constvars.RoleReceptionist)).Get("/board", okHandler)
	router.Get("/any", okHandler)

	authUsecase.On("ResolveSession", mock.Anything, "S-REC").
		Return(&models.Session{SessionID: "S-REC", Role: constvars.RoleReceptionist}, nil)
	authUsecase.On("ResolveSession", mock.Anything, "S-PAT").
		Return(&models.Session{SessionID: "S-PAT", Role: constvars.RolePatient}, nil)
	authUsecase.On("ResolveSession", mock.Anything, "S-GONE").
		Return(nil, exceptions.ErrInvalidSession(errors.New("not found")))

	t.Run("Valid Session Header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/board", nil)
		req.Header.Set(constvars.HeaderXSessionID, "S-REC")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, constvars.RoleReceptionist, rr.Header().Get("X-Role"))
	})

	t.Run("Session Cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/any", nil)
		req.AddCookie(&http.Cookie{Name: constvars.CookieSessionID, Value: "S-PAT"})
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, constvars.RolePatient, rr.Header().Get("X-Role"))
	})

	t.Run("Bearer Session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/any", nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.HeaderBearerPrefix+"S-PAT")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, constvars.RolePatient, rr.Header().Get("X-Role"))
	})

	t.Run("Missing Session", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/any", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Unknown Session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/any", nil)
		req.Header.Set(constvars.HeaderXSessionID, "S-GONE")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Wrong Role", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/board", nil)
		req.Header.Set(constvars.HeaderXSessionID, "S-PAT")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	m := newTestMiddlewares(new(MockAuthUsecase))
	var seen string
	handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = utils.GetRequestID(r.Context())
	}))

	t.Run("Keeps Client Id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderXRequestID, "req-1")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, "req-1", seen)
		assert.Equal(t, "req-1", rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("Generates Id", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rr.Header().Get(constvars.HeaderXRequestID))
	})
}

func TestErrorHandler(t *testing.T) {
	m := newTestMiddlewares(new(MockAuthUsecase))
	handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), `"success":false`)
}
