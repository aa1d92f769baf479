package middlewares

import (
	"mediconnect-portal/internal/pkg/constvars"
	"mediconnect-portal/internal/pkg/exceptions"
	"mediconnect-portal/internal/pkg/utils"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Authenticate resolves the caller's session id into a session and stores
// it in the request context.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := utils.GetRequestID(r.Context())
		sessionID := SessionIDFromRequest(r)
		if sessionID == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		session, err := m.AuthUsecase.ResolveSession(r.Context(), sessionID)
		if err != nil {
			m.Log.Warn("Middlewares.Authenticate session rejected",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := utils.ContextWithSession(r.Context(), session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRoles lets the request through only when the session role is one of roles.
func (m *Middlewares) RequireRoles(roles ...string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := utils.GetSession(r.Context())
			if !ok {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
				return
			}
			if !session.HasRole(roles...) {
				m.Log.Warn("Middlewares.RequireRoles role not allowed",
					zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
					zap.String(constvars.LoggingRoleKey, session.Role),
				)
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrRoleNotAllowed(nil, session.Role))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// SessionIDFromRequest prefers X-Session-ID, then a bearer Authorization
// header, then the session_id cookie.
func SessionIDFromRequest(r *http.Request) string {
	if sessionID := strings.TrimSpace(r.Header.Get(constvars.HeaderXSessionID)); sessionID != "" {
		return sessionID
	}
	if sessionID := utils.BearerToken(r.Header.Get(constvars.HeaderAuthorization)); sessionID != "" {
		return sessionID
	}
	cookie, err := r.Cookie(constvars.CookieSessionID)
	if err == nil {
		return strings.TrimSpace(cookie.Value)
	}
	return ""
}
