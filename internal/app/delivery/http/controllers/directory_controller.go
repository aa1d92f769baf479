package controllers

import (
	"context"
	"mediconnect-portal/internal/app/services/core/directory"
	"mediconnect-portal/internal/pkg/constvars"
	"mediconnect-portal/internal/pkg/dto/requests"
	"mediconnect-portal/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type DirectoryController struct {
	Log              *zap.Logger
	DirectoryUsecase directory.DirectoryUsecase
}

func NewDirectoryController(logger *zap.Logger, directoryUsecase directory.DirectoryUsecase) *DirectoryController {
	return &DirectoryController{
		Log:              logger,
		DirectoryUsecase: directoryUsecase,
	}
}

func (ctrl *DirectoryController) ListDoctors(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(ctrl.Log, w, r, "DirectoryController.ListDoctors")
	if !ok {
		return
	}
	query := buildDirectoryQuery(r)

	ctx, cancel := context.WithTimeout(r.Context(), constvars.ControllerTimeout)
	defer cancel()

	page, err := ctrl.DirectoryUsecase.ListDoctors(ctx, session, query)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}
	pagination := utils.BuildPaginationResponse(page.Total, page.Page, page.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.ResponseSuccess, pagination, page.Items)
}

func (ctrl *DirectoryController) ListHospitals(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(ctrl.Log, w, r, "DirectoryController.ListHospitals")
	if !ok {
		return
	}
	query := buildDirectoryQuery(r)

	ctx, cancel := context.WithTimeout(r.Context(), constvars.ControllerTimeout)
	defer cancel()

	page, err := ctrl.DirectoryUsecase.ListHospitals(ctx, session, query)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}
	pagination := utils.BuildPaginationResponse(page.Total, page.Page, page.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.ResponseSuccess, pagination, page.Items)
}

func buildDirectoryQuery(r *http.Request) *requests.DirectoryQuery {
	return &requests.DirectoryQuery{
		Search:     r.URL.Query().Get("search"),
		HospitalID: r.URL.Query().Get("hospital_id"),
		Pagination: *utils.BuildPaginationRequest(r),
	}
}
