package directory

import (
	"context"
	"mediconnect-portal/internal/app/contracts"
	"mediconnect-portal/internal/app/models"
	"mediconnect-portal/internal/pkg/constvars"
	"mediconnect-portal/internal/pkg/dto/requests"
	"mediconnect-portal/internal/pkg/exceptions"
	"mediconnect-portal/internal/pkg/utils"
	"strings"
	"sync"

	"go.uber.org/zap"
)

type directoryUsecase struct {
	DirectoryClient contracts.DirectoryClient
	Log             *zap.Logger
}

var (
	directoryUsecaseInstance DirectoryUsecase
	onceDirectoryUsecase     sync.Once
)

func NewDirectoryUsecase(directoryClient contracts.DirectoryClient, logger *zap.Logger) DirectoryUsecase {
	onceDirectoryUsecase.Do(func() {
		directoryUsecaseInstance = &directoryUsecase{
			DirectoryClient: directoryClient,
			Log:             logger,
		}
	})
	return directoryUsecaseInstance
}

func (uc *directoryUsecase) ListDoctors(ctx context.Context, session *models.Session, query *requests.DirectoryQuery) (*Page[models.Doctor], error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("directoryUsecase.ListDoctors called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, query.Search),
		zap.String("hospital_id", query.HospitalID),
	)

	hospitalID := strings.TrimSpace(query.HospitalID)
	if hospitalID != "" && !strings.HasPrefix(hospitalID, constvars.HospitalIDPrefix) {
		return nil, exceptions.ErrInvalidHospitalID(nil, hospitalID)
	}

	doctors, err := uc.DirectoryClient.FindDoctors(ctx, session, hospitalID)
	if err != nil {
		uc.Log.Error("directoryUsecase.ListDoctors error fetching doctors",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	page := Paginate(FilterDoctors(doctors, query.Search), query.Pagination)
	uc.Log.Info("directoryUsecase.ListDoctors succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(page.Items)),
	)
	return page, nil
}

func (uc *directoryUsecase) ListHospitals(ctx context.Context, session *models.Session, query *requests.DirectoryQuery) (*Page[models.Hospital], error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("directoryUsecase.ListHospitals called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, query.Search),
	)

	hospitals, err := uc.DirectoryClient.FindHospitals(ctx, session)
	if err != nil {
		uc.Log.Error("directoryUsecase.ListHospitals error fetching hospitals",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	page := Paginate(FilterHospitals(hospitals, query.Search), query.Pagination)
	uc.Log.Info("directoryUsecase.ListHospitals succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(page.Items)),
	)
	return page, nil
}
