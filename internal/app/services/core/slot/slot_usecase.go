package slot

import (
	"context"
	"mediconnect-portal/internal/app/config"
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

type slotUsecase struct {
	ScheduleClient    contracts.ScheduleClient
	SlotClient        contracts.SlotClient
	AppointmentClient contracts.AppointmentClient
	EventPublisher    contracts.EventPublisher
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
	Location          *time.Location
	Now               func() time.Time
}

var (
	slotUsecaseInstance SlotUsecase
	onceSlotUsecase     sync.Once
)

func NewSlotUsecase(
	scheduleClient contracts.ScheduleClient,
	slotClient contracts.SlotClient,
	appointmentClient contracts.AppointmentClient,
	eventPublisher contracts.EventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) SlotUsecase {
	onceSlotUsecase.Do(func() {
		slotUsecaseInstance = &slotUsecase{
			ScheduleClient:    scheduleClient,
			SlotClient:        slotClient,
			AppointmentClient: appointmentClient,
			EventPublisher:    eventPublisher,
			InternalConfig:    internalConfig,
			Log:               logger,
			Now:               time.Now,
		}
	})
	return slotUsecaseInstance
}

func (uc *slotUsecase) GetDoctorScheduleView(ctx context.Context, session *models.Session, doctorID string) (*DoctorScheduleView, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("slotUsecase.GetDoctorScheduleView called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	// A failed schedule fetch shows every day rather than hiding the calendar.
	offDays := []string{}
	schedules, err := uc.ScheduleClient.FindByDoctorID(ctx, session, doctorID)
	if err != nil {
		uc.Log.Warn("slotUsecase.GetDoctorScheduleView schedules unavailable, showing all days",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
	} else {
		offDays = OffDaysFromSchedules(schedules)
	}

	view := &DoctorScheduleView{
		DoctorID:       doctorID,
		OffDays:        offDays,
		AvailableDates: ComputeAvailableDates(offDays, uc.now(), uc.lookahead()),
		Purposes:       Purposes(),
	}

	uc.Log.Info("slotUsecase.GetDoctorScheduleView succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(view.AvailableDates)),
	)
	return view, nil
}

func (uc *slotUsecase) GetSlotsView(ctx context.Context, session *models.Session, doctorID, date string) (*ScheduleView, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("slotUsecase.GetSlotsView called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.String(constvars.LoggingDateKey, date),
	)

	_, err := utils.ParseDate(date, uc.location())
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	apiSlots, err := uc.SlotClient.FindByDoctorAndDate(ctx, session, doctorID, date)
	if err != nil {
		uc.Log.Error("slotUsecase.GetSlotsView error fetching slots",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	view := &ScheduleView{
		DoctorID: doctorID,
		Date:     date,
		Slots:    FilterSlotsByDate(MapSlots(apiSlots), date),
		location: uc.location(),
	}

	uc.Log.Info("slotUsecase.GetSlotsView succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(view.Slots)),
	)
	return view, nil
}

func (uc *slotUsecase) BookSlot(ctx context.Context, session *models.Session, doctorID, date string, request *requests.BookSlot) (*BookingResult, error) {
	view, err := uc.GetSlotsView(ctx, session, doctorID, date)
	if err != nil {
		return nil, err
	}
	return uc.Book(ctx, session, view, request)
}

// Book sends the booking for one slot of view. The view's slots are reconciled
// only after the server confirms; on any error they are left as they were.
func (uc *slotUsecase) Book(ctx context.Context, session *models.Session, view *ScheduleView, request *requests.BookSlot) (*BookingResult, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("slotUsecase.Book called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, view.DoctorID),
		zap.String(constvars.LoggingPurposeKey, request.Purpose),
	)

	if request.Purpose == "" {
		return nil, exceptions.ErrUnknownPurpose(nil, request.Purpose)
	}
	if session == nil || session.UserID == "" {
		return nil, exceptions.ErrPatientNotLoggedIn(nil)
	}

	loc := view.loc(uc.location())
	slotStart, err := utils.ParseAPIDateTime(request.StartDateTime, loc)
	if err != nil {
		return nil, exceptions.ErrCannotParseTime(err)
	}

	picked, found := view.FindSlot(slotStart)
	if !found {
		return nil, exceptions.ErrSlotNotFound(nil, request.StartDateTime)
	}
	if picked.IsBooked {
		return nil, exceptions.ErrSlotAlreadyBooked(nil, request.StartDateTime)
	}

	start, end, err := BookingWindow(slotStart, request.Purpose)
	if err != nil {
		return nil, exceptions.ErrUnknownPurpose(err, request.Purpose)
	}

	payload := &requests.BookAppointment{
		PatientID:     session.UserID,
		StartDateTime: utils.FormatLocalISO(start, loc),
		EndDateTime:   utils.FormatLocalISO(end, loc),
		Purpose:       request.Purpose,
	}
	confirmation, err := uc.AppointmentClient.Book(ctx, session, view.DoctorID, payload)
	if err != nil {
		uc.Log.Error("slotUsecase.Book booking rejected, slots left unchanged",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, view.DoctorID),
			zap.Error(err),
		)
		return nil, err
	}

	booked := models.BookedInterval{Start: start, End: end, Status: confirmation.Status}
	if bookedStart, err := utils.ParseAPIDateTime(confirmation.Slot.StartDateTime, loc); err == nil {
		booked.Start = bookedStart
	}
	if bookedEnd, err := utils.ParseAPIDateTime(confirmation.Slot.EndDateTime, loc); err == nil {
		booked.End = bookedEnd
	}
	view.ApplyBooking(booked)

	uc.publish(ctx, models.AppointmentEvent{
		Type:          constvars.EventAppointmentBooked,
		AppointmentID: confirmation.AppointmentID,
		DoctorID:      view.DoctorID,
		PatientID:     session.UserID,
		Status:        confirmation.Status,
		OccurredAt:    uc.now(),
	})

	uc.Log.Info("slotUsecase.Book succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, confirmation.AppointmentID),
		zap.String(constvars.LoggingStatusKey, confirmation.Status),
	)

	return &BookingResult{
		AppointmentID: confirmation.AppointmentID,
		Status:        confirmation.Status,
		StartDateTime: utils.FormatLocalISO(booked.Start, loc),
		EndDateTime:   utils.FormatLocalISO(booked.End, loc),
		Purpose:       request.Purpose,
		Slots:         view.Slots,
	}, nil
}

// ApplyBooking reconciles the view with a server-confirmed booking.
func (v *ScheduleView) ApplyBooking(booked models.BookedInterval) {
	v.Slots = ReconcileSlots(v.Slots, booked)
}

// FindSlot returns the slot starting at start.
func (v *ScheduleView) FindSlot(start time.Time) (models.Slot, bool) {
	loc := v.loc(start.Location())
	for _, s := range v.Slots {
		slotStart, err := utils.ParseAPIDateTime(s.StartDateTime, loc)
		if err == nil && slotStart.Equal(start) {
			return s, true
		}
	}
	return models.Slot{}, false
}

// NewScheduleView builds a view over already fetched slots.
func NewScheduleView(doctorID, date string, slots []models.Slot, loc *time.Location) *ScheduleView {
	return &ScheduleView{DoctorID: doctorID, Date: date, Slots: slots, location: loc}
}

func (v *ScheduleView) loc(fallback *time.Location) *time.Location {
	if v.location != nil {
		return v.location
	}
	return fallback
}

func (uc *slotUsecase) publish(ctx context.Context, event models.AppointmentEvent) {
	if uc.EventPublisher == nil {
		return
	}
	err := uc.EventPublisher.PublishAppointmentEvent(ctx, event)
	if err != nil {
		uc.Log.Warn("slotUsecase.publish appointment event dropped",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingEventTypeKey, event.Type),
			zap.Error(err),
		)
	}
}

func (uc *slotUsecase) now() time.Time {
	if uc.Now != nil {
		return uc.Now().In(uc.location())
	}
	return time.Now().In(uc.location())
}

func (uc *slotUsecase) location() *time.Location {
	if uc.Location != nil {
		return uc.Location
	}
	return time.Local
}

func (uc *slotUsecase) lookahead() int {
	if uc.InternalConfig == nil {
		return constvars.DefaultLookaheadDay
	}
	return uc.InternalConfig.App.LookaheadDays
}
