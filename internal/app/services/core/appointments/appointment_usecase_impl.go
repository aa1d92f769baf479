package appointments

import (
	"context"
	"fmt"
	"mediconnect-portal/internal/app/contracts"
	"mediconnect-portal/internal/app/models"
	"mediconnect-portal/internal/pkg/constvars"
	"mediconnect-portal/internal/pkg/dto/requests"
	"mediconnect-portal/internal/pkg/exceptions"
	"mediconnect-portal/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentClient contracts.AppointmentClient
	EventPublisher    contracts.EventPublisher
	RecordLinker      RecordLinker
	InFlight          *InFlight
	Log               *zap.Logger
	Now               func() time.Time
}

var (
	appointmentUsecaseInstance AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

func NewAppointmentUsecase(
	appointmentClient contracts.AppointmentClient,
	eventPublisher contracts.EventPublisher,
	recordLinker RecordLinker,
	logger *zap.Logger,
) AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		appointmentUsecaseInstance = &appointmentUsecase{
			AppointmentClient: appointmentClient,
			EventPublisher:    eventPublisher,
			RecordLinker:      recordLinker,
			InFlight:          NewInFlight(),
			Log:               logger,
			Now:               time.Now,
		}
	})
	return appointmentUsecaseInstance
}

func (uc *appointmentUsecase) GetReceptionistBoard(ctx context.Context, session *models.Session) (*Board, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.GetReceptionistBoard called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, session.Email),
	)

	list, err := uc.AppointmentClient.FindByReceptionistEmail(ctx, session, session.Email)
	if err != nil {
		uc.Log.Error("appointmentUsecase.GetReceptionistBoard error fetching appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	board := NewBoard(list, uc.now())
	uc.Log.Info("appointmentUsecase.GetReceptionistBoard succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(board.Visible)),
	)
	return board, nil
}

// ApplyStatusAction approves or rejects one appointment and reconciles board
// with the status the server returned. A failed call leaves board unchanged.
func (uc *appointmentUsecase) ApplyStatusAction(ctx context.Context, session *models.Session, board *Board, appointmentID, action string) (*models.StatusUpdate, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.ApplyStatusAction called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingActionKey, action),
	)

	err := utils.ValidateStruct(requests.StatusAction{Action: action})
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	if uc.InFlight.Begin(action, appointmentID) {
		uc.Log.Warn("appointmentUsecase.ApplyStatusAction "+fmt.Sprintf(constvars.ErrDevDuplicateStatusRequest, appointmentID),
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.String(constvars.LoggingActionKey, action),
		)
	}
	defer uc.InFlight.End(action, appointmentID)

	response, err := uc.AppointmentClient.UpdateStatus(ctx, session, appointmentID, action)
	if err != nil {
		uc.Log.Error("appointmentUsecase.ApplyStatusAction error updating status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		return nil, err
	}

	update := models.StatusUpdate{AppointmentID: appointmentID, Status: response.Status}
	if board != nil {
		board.Apply(update)
	}

	uc.publish(ctx, models.AppointmentEvent{
		Type:          constvars.EventAppointmentStatusChanged,
		AppointmentID: appointmentID,
		Status:        update.Status,
		OccurredAt:    uc.now(),
	})

	uc.Log.Info("appointmentUsecase.ApplyStatusAction succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingStatusKey, update.Status),
	)
	return &update, nil
}

func (uc *appointmentUsecase) UpdateStatus(ctx context.Context, session *models.Session, appointmentID, action string) (*StatusActionResult, error) {
	board, err := uc.GetReceptionistBoard(ctx, session)
	if err != nil {
		return nil, err
	}

	update, err := uc.ApplyStatusAction(ctx, session, board, appointmentID, action)
	if err != nil {
		return nil, err
	}

	return &StatusActionResult{
		Update: *update,
		Board:  board.View(),
	}, nil
}

func (uc *appointmentUsecase) GetUpcomingAppointments(ctx context.Context, session *models.Session) ([]models.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.GetUpcomingAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, session.UserID),
	)

	if session.UserID == "" {
		return nil, exceptions.ErrPatientNotLoggedIn(nil)
	}

	list, err := uc.AppointmentClient.FindUpcomingByPatientID(ctx, session, session.UserID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.GetUpcomingAppointments error fetching appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.GetUpcomingAppointments succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(list)),
	)
	return list, nil
}

func (uc *appointmentUsecase) GetPastAppointments(ctx context.Context, session *models.Session) ([]models.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.GetPastAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, session.UserID),
	)

	if session.UserID == "" {
		return nil, exceptions.ErrPatientNotLoggedIn(nil)
	}

	list, err := uc.AppointmentClient.FindAllByPatientID(ctx, session, session.UserID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.GetPastAppointments error fetching appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	past := FilterPastWithRecords(list, uc.now())
	if uc.RecordLinker != nil {
		for i := range past {
			past[i].MedicalRecords = uc.RecordLinker.Resolve(ctx, past[i].MedicalRecords)
		}
	}

	uc.Log.Info("appointmentUsecase.GetPastAppointments succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(past)),
	)
	return past, nil
}

// CancelAppointment cancels on the server, then drops the entry from the
// patient's upcoming list.
func (uc *appointmentUsecase) CancelAppointment(ctx context.Context, session *models.Session, appointmentID string) ([]models.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.CancelAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	upcoming, err := uc.GetUpcomingAppointments(ctx, session)
	if err != nil {
		return nil, err
	}

	err = uc.AppointmentClient.CancelByPatient(ctx, session, appointmentID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.CancelAppointment error cancelling appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		return nil, err
	}

	remaining := RemoveAppointment(upcoming, appointmentID)
	uc.publish(ctx, models.AppointmentEvent{
		Type:          constvars.EventAppointmentCancelled,
		AppointmentID: appointmentID,
		PatientID:     session.UserID,
		OccurredAt:    uc.now(),
	})

	uc.Log.Info("appointmentUsecase.CancelAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(remaining)),
	)
	return remaining, nil
}

func (uc *appointmentUsecase) publish(ctx context.Context, event models.AppointmentEvent) {
	if uc.EventPublisher == nil {
		return
	}
	err := uc.EventPublisher.PublishAppointmentEvent(ctx, event)
	if err != nil {
		uc.Log.Warn("appointmentUsecase.publish appointment event dropped",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingEventTypeKey, event.Type),
			zap.Error(err),
		)
	}
}

func (uc *appointmentUsecase) now() time.Time {
	if uc.Now != nil {
		return uc.Now()
	}
	return time.Now()
}
