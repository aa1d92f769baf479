package doctors

import (
	"context"
	"mediconnect-portal/internal/app/contracts"
	"mediconnect-portal/internal/app/models"
	"mediconnect-portal/internal/app/services/core/appointments"
	"mediconnect-portal/internal/app/services/core/patients"
	"mediconnect-portal/internal/app/services/core/slot"
	"mediconnect-portal/internal/pkg/constvars"
	"mediconnect-portal/internal/pkg/dto/requests"
	"mediconnect-portal/internal/pkg/exceptions"
	"mediconnect-portal/internal/pkg/utils"
	"strings"
	"sync"

	"go.uber.org/zap"
)

type doctorUsecase struct {
	AuthClient        contracts.AuthClient
	ScheduleClient    contracts.ScheduleClient
	AppointmentClient contracts.AppointmentClient
	Demographics      patients.DemographicsReader
	Log               *zap.Logger
}

var (
	doctorUsecaseInstance DoctorUsecase
	onceDoctorUsecase     sync.Once
)

func NewDoctorUsecase(
	authClient contracts.AuthClient,
	scheduleClient contracts.ScheduleClient,
	appointmentClient contracts.AppointmentClient,
	demographics patients.DemographicsReader,
	logger *zap.Logger,
) DoctorUsecase {
	onceDoctorUsecase.Do(func() {
		doctorUsecaseInstance = &doctorUsecase{
			AuthClient:        authClient,
			ScheduleClient:    scheduleClient,
			AppointmentClient: appointmentClient,
			Demographics:      demographics,
			Log:               logger,
		}
	})
	return doctorUsecaseInstance
}

// GetDashboard resolves the doctor id for the session email, checks that a
// schedule exists and lists the approved appointments.
func (uc *doctorUsecase) GetDashboard(ctx context.Context, session *models.Session) (*Dashboard, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("doctorUsecase.GetDashboard called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, session.Email),
	)

	doctorID, err := uc.AuthClient.GetUserID(ctx, session, session.Email)
	if err != nil {
		uc.Log.Error("doctorUsecase.GetDashboard error resolving user id",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	dashboard := &Dashboard{DoctorID: doctorID, Appointments: []models.Appointment{}}
	if !strings.HasPrefix(doctorID, constvars.DoctorIDPrefix) {
		dashboard.NeedsSchedule = true
		return dashboard, nil
	}

	exists, err := uc.ScheduleClient.CheckDoctor(ctx, session, doctorID)
	if err != nil {
		uc.Log.Error("doctorUsecase.GetDashboard error checking doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
		return nil, err
	}
	if !exists {
		dashboard.NeedsSchedule = true
		uc.Log.Info("doctorUsecase.GetDashboard doctor has no schedule yet",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
		)
		return dashboard, nil
	}

	list, err := uc.AppointmentClient.FindByDoctorID(ctx, session, doctorID)
	if err != nil {
		uc.Log.Error("doctorUsecase.GetDashboard error fetching appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
		return nil, err
	}
	dashboard.Appointments = appointments.FilterByStatus(list, constvars.AppointmentStatusApproved)

	uc.Log.Info("doctorUsecase.GetDashboard succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.Int(constvars.LoggingResponseLengthKey, len(dashboard.Appointments)),
	)
	return dashboard, nil
}

func (uc *doctorUsecase) SaveSchedule(ctx context.Context, session *models.Session, request *requests.CreateSchedule) (*Dashboard, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("doctorUsecase.SaveSchedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, session.Email),
	)

	utils.SanitizeCreateScheduleRequest(request)
	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	err = slot.ValidateSchedule(request)
	if err != nil {
		return nil, err
	}

	doctorID, err := uc.AuthClient.GetUserID(ctx, session, session.Email)
	if err != nil {
		return nil, err
	}
	request.DoctorID = doctorID

	err = uc.ScheduleClient.Create(ctx, session, request)
	if err != nil {
		uc.Log.Error("doctorUsecase.SaveSchedule error creating schedule",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("doctorUsecase.SaveSchedule succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)
	return uc.GetDashboard(ctx, session)
}

func (uc *doctorUsecase) GetPatientDemographics(ctx context.Context, session *models.Session, email string) (*models.PatientDemographics, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("doctorUsecase.GetPatientDemographics called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)

	email = utils.SanitizeEmail(email)
	demographics, err := uc.Demographics.GetDemographics(ctx, session, email)
	if err != nil {
		return nil, err
	}
	if demographics == nil {
		return nil, exceptions.ErrPatientNotFound(nil, email)
	}
	return demographics, nil
}
