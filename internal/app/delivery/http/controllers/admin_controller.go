package controllers

import (
	"context"
	"mediconnect-portal/internal/app/services/core/admin"
	"mediconnect-portal/internal/pkg/constvars"
	"mediconnect-portal/internal/pkg/dto/requests"
	"mediconnect-portal/internal/pkg/exceptions"
	"mediconnect-portal/internal/pkg/utils"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AdminController struct {
	Log          *zap.Logger
	AdminUsecase admin.AdminUsecase
}

func NewAdminController(logger *zap.Logger, adminUsecase admin.AdminUsecase) *AdminController {
	return &AdminController{
		Log:          logger,
		AdminUsecase: adminUsecase,
	}
}

func (ctrl *AdminController) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(ctrl.Log, w, r, "AdminController.CreateDoctor")
	if !ok {
		return
	}

	request := new(requests.CreateDoctor)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.ControllerTimeout)
	defer cancel()

	err = ctrl.AdminUsecase.CreateDoctor(ctx, session, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ResponseDoctorCreated, nil)
}

func (ctrl *AdminController) CreateHospital(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(ctrl.Log, w, r, "AdminController.CreateHospital")
	if !ok {
		return
	}

	request := new(requests.CreateHospital)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.ControllerTimeout)
	defer cancel()

	err = ctrl.AdminUsecase.CreateHospital(ctx, session, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ResponseHospitalCreated, nil)
}

func (ctrl *AdminController) CreateReceptionist(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(ctrl.Log, w, r, "AdminController.CreateReceptionist")
	if !ok {
		return
	}

	request := new(requests.CreateReceptionist)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.ControllerTimeout)
	defer cancel()

	err = ctrl.AdminUsecase.CreateReceptionist(ctx, session, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ResponseReceptionistCreated, nil)
}

func (ctrl *AdminController) Analytics(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(ctrl.Log, w, r, "AdminController.Analytics")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.ControllerTimeout)
	defer cancel()

	analytics, err := ctrl.AdminUsecase.GetAnalytics(ctx, session)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, analytics)
}
