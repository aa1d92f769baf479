package controllers

import (
	"context"
	"mediconnect-portal/internal/app/services/core/appointments"
	"mediconnect-portal/internal/pkg/constvars"
	"mediconnect-portal/internal/pkg/dto/requests"
	"mediconnect-portal/internal/pkg/exceptions"
	"mediconnect-portal/internal/pkg/utils"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase appointments.AppointmentUsecase
}

func NewAppointmentController(logger *zap.Logger, appointmentUsecase appointments.AppointmentUsecase) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		AppointmentUsecase: appointmentUsecase,
	}
}

func (ctrl *AppointmentController) UpcomingAppointments(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(ctrl.Log, w, r, "AppointmentController.UpcomingAppointments")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.ControllerTimeout)
	defer cancel()

	list, err := ctrl.AppointmentUsecase.GetUpcomingAppointments(ctx, session)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, list)
}

func (ctrl *AppointmentController) PastAppointments(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(ctrl.Log, w, r, "AppointmentController.PastAppointments")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.ControllerTimeout)
	defer cancel()

	list, err := ctrl.AppointmentUsecase.GetPastAppointments(ctx, session)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, list)
}

func (ctrl *AppointmentController) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(ctrl.Log, w, r, "AppointmentController.CancelAppointment")
	if !ok {
		return
	}
	appointmentID := strings.TrimSpace(chi.URLParam(r, constvars.URLParamAppointmentID))
	if appointmentID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamAppointmentID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.ControllerTimeout)
	defer cancel()

	remaining, err := ctrl.AppointmentUsecase.CancelAppointment(ctx, session, appointmentID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseAppointmentCancelled, remaining)
}

func (ctrl *AppointmentController) ReceptionistBoard(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(ctrl.Log, w, r, "AppointmentController.ReceptionistBoard")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.ControllerTimeout)
	defer cancel()

	board, err := ctrl.AppointmentUsecase.GetReceptionistBoard(ctx, session)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, board.View())
}

func (ctrl *AppointmentController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(ctrl.Log, w, r, "AppointmentController.UpdateStatus")
	if !ok {
		return
	}
	requestID := utils.GetRequestID(r.Context())
	appointmentID := strings.TrimSpace(chi.URLParam(r, constvars.URLParamAppointmentID))
	if appointmentID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamAppointmentID))
		return
	}

	request := new(requests.StatusAction)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.ControllerTimeout)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.UpdateStatus(ctx, session, appointmentID, request.Action)
	if err != nil {
		ctrl.Log.Error("AppointmentController.UpdateStatus error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	message := constvars.ResponseAppointmentApproved
	if request.Action == constvars.AppointmentActionReject {
		message = constvars.ResponseAppointmentRejected
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, result)
}
