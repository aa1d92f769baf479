package controllers

import (
	"context"
	"errors"
	"mediconnect-portal/internal/app/models"
	"mediconnect-portal/internal/pkg/constvars"
	"mediconnect-portal/internal/pkg/exceptions"
	"mediconnect-portal/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

// requireSession fetches the authenticated session or writes a 401.
func requireSession(log *zap.Logger, w http.ResponseWriter, r *http.Request, caller string) (*models.Session, bool) {
	session, ok := utils.GetSession(r.Context())
	if !ok {
		log.Error(caller+" session not found in context",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
		)
		utils.BuildErrorResponse(log, w, exceptions.ErrTokenMissing(nil))
		return nil, false
	}
	return session, true
}

func writeUsecaseError(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}
