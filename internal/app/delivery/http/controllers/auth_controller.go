package controllers

import (
	"context"
	"mediconnect-portal/internal/app/services/core/auth"
	"mediconnect-portal/internal/pkg/constvars"
	"mediconnect-portal/internal/pkg/dto/requests"
	"mediconnect-portal/internal/pkg/exceptions"
	"mediconnect-portal/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AuthController struct {
	Log         *zap.Logger
	AuthUsecase auth.AuthUsecase
}

func NewAuthController(logger *zap.Logger, authUsecase auth.AuthUsecase) *AuthController {
	return &AuthController{
		Log:         logger,
		AuthUsecase: authUsecase,
	}
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AuthController.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.Login)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeLoginRequest(request)
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.ControllerTimeout)
	defer cancel()

	response, err := ctrl.AuthUsecase.Login(ctx, request)
	if err != nil {
		ctrl.Log.Error("AuthController.Login error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	expiresAt, _ := time.Parse(time.RFC3339, response.ExpiresAt)
	http.SetCookie(w, &http.Cookie{
		Name:     constvars.CookieSessionID,
		Value:    response.SessionID,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	ctrl.Log.Info("AuthController.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, response.Role),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseLoggedIn, response)
}

func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(ctrl.Log, w, r, "AuthController.Logout")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.ControllerTimeout)
	defer cancel()

	err := ctrl.AuthUsecase.Logout(ctx, session.SessionID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     constvars.CookieSessionID,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseLoggedOut, nil)
}
