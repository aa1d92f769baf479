package controllers

import (
	"context"
	"mediconnect-portal/internal/app/services/core/slot"
	"mediconnect-portal/internal/pkg/constvars"
	"mediconnect-portal/internal/pkg/dto/requests"
	"mediconnect-portal/internal/pkg/exceptions"
	"mediconnect-portal/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// ScheduleController serves the patient's view of a doctor's calendar.
type ScheduleController struct {
	Log         *zap.Logger
	SlotUsecase slot.SlotUsecase
}

func NewScheduleController(logger *zap.Logger, slotUsecase slot.SlotUsecase) *ScheduleController {
	return &ScheduleController{
		Log:         logger,
		SlotUsecase: slotUsecase,
	}
}

func (ctrl *ScheduleController) GetAvailableDates(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(ctrl.Log, w, r, "ScheduleController.GetAvailableDates")
	if !ok {
		return
	}
	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)

	ctx, cancel := context.WithTimeout(r.Context(), constvars.ControllerTimeout)
	defer cancel()

	view, err := ctrl.SlotUsecase.GetDoctorScheduleView(ctx, session, doctorID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, view)
}

func (ctrl *ScheduleController) GetSlots(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(ctrl.Log, w, r, "ScheduleController.GetSlots")
	if !ok {
		return
	}
	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)
	date := chi.URLParam(r, constvars.URLParamDate)

	ctx, cancel := context.WithTimeout(r.Context(), constvars.ControllerTimeout)
	defer cancel()

	view, err := ctrl.SlotUsecase.GetSlotsView(ctx, session, doctorID, date)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, view)
}

func (ctrl *ScheduleController) BookSlot(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(ctrl.Log, w, r, "ScheduleController.BookSlot")
	if !ok {
		return
	}
	requestID := utils.GetRequestID(r.Context())
	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)
	date := chi.URLParam(r, constvars.URLParamDate)

	request := new(requests.BookSlot)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.ControllerTimeout)
	defer cancel()

	result, err := ctrl.SlotUsecase.BookSlot(ctx, session, doctorID, date, request)
	if err != nil {
		ctrl.Log.Error("ScheduleController.BookSlot error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ResponseAppointmentBooked, result)
}
