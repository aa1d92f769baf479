package controllers

import (
	"context"
	"mediconnect-portal/internal/app/services/core/doctors"
	"mediconnect-portal/internal/pkg/constvars"
	"mediconnect-portal/internal/pkg/dto/requests"
	"mediconnect-portal/internal/pkg/exceptions"
	"mediconnect-portal/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type DoctorController struct {
	Log           *zap.Logger
	DoctorUsecase doctors.DoctorUsecase
}

func NewDoctorController(logger *zap.Logger, doctorUsecase doctors.DoctorUsecase) *DoctorController {
	return &DoctorController{
		Log:           logger,
		DoctorUsecase: doctorUsecase,
	}
}

func (ctrl *DoctorController) Dashboard(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(ctrl.Log, w, r, "DoctorController.Dashboard")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.ControllerTimeout)
	defer cancel()

	dashboard, err := ctrl.DoctorUsecase.GetDashboard(ctx, session)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, dashboard)
}

func (ctrl *DoctorController) SaveSchedule(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(ctrl.Log, w, r, "DoctorController.SaveSchedule")
	if !ok {
		return
	}

	request := new(requests.CreateSchedule)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.ControllerTimeout)
	defer cancel()

	dashboard, err := ctrl.DoctorUsecase.SaveSchedule(ctx, session, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ResponseScheduleSaved, dashboard)
}

func (ctrl *DoctorController) PatientDemographics(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(ctrl.Log, w, r, "DoctorController.PatientDemographics")
	if !ok {
		return
	}
	email := chi.URLParam(r, constvars.URLParamEmail)

	ctx, cancel := context.WithTimeout(r.Context(), constvars.ControllerTimeout)
	defer cancel()

	demographics, err := ctrl.DoctorUsecase.GetPatientDemographics(ctx, session, email)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, demographics)
}
