package admin

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
	"golang.org/x/sync/errgroup"
)

type adminUsecase struct {
	AdminClient       contracts.AdminClient
	AuthClient        contracts.AuthClient
	AppointmentClient contracts.AppointmentClient
	DirectoryClient   contracts.DirectoryClient
	Log               *zap.Logger
}

var (
	adminUsecaseInstance AdminUsecase
	onceAdminUsecase     sync.Once
)

func NewAdminUsecase(
	adminClient contracts.AdminClient,
	authClient contracts.AuthClient,
	appointmentClient contracts.AppointmentClient,
	directoryClient contracts.DirectoryClient,
	logger *zap.Logger,
) AdminUsecase {
	onceAdminUsecase.Do(func() {
		adminUsecaseInstance = &adminUsecase{
			AdminClient:       adminClient,
			AuthClient:        authClient,
			AppointmentClient: appointmentClient,
			DirectoryClient:   directoryClient,
			Log:               logger,
		}
	})
	return adminUsecaseInstance
}

func (uc *adminUsecase) CreateDoctor(ctx context.Context, session *models.Session, request *requests.CreateDoctor) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("adminUsecase.CreateDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, request.ID),
	)

	request.ID = strings.TrimSpace(request.ID)
	request.HospitalID = strings.TrimSpace(request.HospitalID)
	request.Email = utils.SanitizeEmail(request.Email)
	if !strings.HasPrefix(request.HospitalID, constvars.HospitalIDPrefix) {
		return exceptions.ErrInvalidHospitalID(nil, request.HospitalID)
	}
	err := utils.ValidateStruct(request)
	if err != nil {
		return exceptions.ErrInputValidation(err)
	}

	err = uc.AdminClient.CreateDoctor(ctx, session, request)
	if err != nil {
		uc.Log.Error("adminUsecase.CreateDoctor error from hospital API",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	uc.Log.Info("adminUsecase.CreateDoctor succeeded", zap.String(constvars.LoggingRequestIDKey, requestID))
	return nil
}

func (uc *adminUsecase) CreateHospital(ctx context.Context, session *models.Session, request *requests.CreateHospital) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("adminUsecase.CreateHospital called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("hospital_id", request.ID),
	)

	request.ID = strings.TrimSpace(request.ID)
	if !strings.HasPrefix(request.ID, constvars.HospitalIDPrefix) {
		return exceptions.ErrInvalidHospitalID(nil, request.ID)
	}
	err := utils.ValidateStruct(request)
	if err != nil {
		return exceptions.ErrInputValidation(err)
	}

	err = uc.AdminClient.CreateHospital(ctx, session, request)
	if err != nil {
		uc.Log.Error("adminUsecase.CreateHospital error from hospital API",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	uc.Log.Info("adminUsecase.CreateHospital succeeded", zap.String(constvars.LoggingRequestIDKey, requestID))
	return nil
}

func (uc *adminUsecase) CreateReceptionist(ctx context.Context, session *models.Session, request *requests.CreateReceptionist) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("adminUsecase.CreateReceptionist called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request.HospitalID = strings.TrimSpace(request.HospitalID)
	request.Email = utils.SanitizeEmail(request.Email)
	if !strings.HasPrefix(request.HospitalID, constvars.HospitalIDPrefix) {
		return exceptions.ErrInvalidHospitalID(nil, request.HospitalID)
	}
	err := utils.ValidateStruct(request)
	if err != nil {
		return exceptions.ErrInputValidation(err)
	}

	err = uc.AdminClient.CreateReceptionist(ctx, session, request)
	if err != nil {
		uc.Log.Error("adminUsecase.CreateReceptionist error from hospital API",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	uc.Log.Info("adminUsecase.CreateReceptionist succeeded", zap.String(constvars.LoggingRequestIDKey, requestID))
	return nil
}

// GetAnalytics fetches the four listings concurrently. Any failure fails the
// whole view.
func (uc *adminUsecase) GetAnalytics(ctx context.Context, session *models.Session) (*Analytics, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("adminUsecase.GetAnalytics called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var (
		list      []models.Appointment
		doctors   []models.Doctor
		users     []models.User
		hospitals []models.Hospital
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return utils.LogOperation(uc.Log, "adminUsecase.GetAnalytics appointments", requestID, func() (err error) {
			list, err = uc.AppointmentClient.FindAll(groupCtx, session)
			return err
		})
	})
	group.Go(func() error {
		return utils.LogOperation(uc.Log, "adminUsecase.GetAnalytics doctors", requestID, func() (err error) {
			doctors, err = uc.DirectoryClient.FindDoctors(groupCtx, session, "")
			return err
		})
	})
	group.Go(func() error {
		return utils.LogOperation(uc.Log, "adminUsecase.GetAnalytics users", requestID, func() (err error) {
			users, err = uc.AuthClient.FindAllUsers(groupCtx, session)
			return err
		})
	})
	group.Go(func() error {
		return utils.LogOperation(uc.Log, "adminUsecase.GetAnalytics hospitals", requestID, func() (err error) {
			hospitals, err = uc.DirectoryClient.FindHospitals(groupCtx, session)
			return err
		})
	})

	err := group.Wait()
	if err != nil {
		uc.Log.Error("adminUsecase.GetAnalytics error fetching listings",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	analytics := BuildAnalytics(list, doctors, users, hospitals)
	uc.Log.Info("adminUsecase.GetAnalytics succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("total_appointments", analytics.TotalAppointments),
	)
	return analytics, nil
}
