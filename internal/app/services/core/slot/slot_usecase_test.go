package slot

import (
	"context"
	"errors"
	"mediconnect-portal/internal/app/config"
	"mediconnect-portal/internal/app/contracts/mocks"
	"mediconnect-portal/internal/app/models"
	"mediconnect-portal/internal/pkg/constvars"
	"mediconnect-portal/internal/pkg/dto/requests"
	"mediconnect-portal/internal/pkg/dto/responses"
	"mediconnect-portal/internal/pkg/exceptions"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type slotUsecaseFixture struct {
	usecase      *slotUsecase
	schedules    *mocks.ScheduleClient
	slots        *mocks.SlotClient
	appointments *mocks.AppointmentClient
	events       *mocks.EventPublisher
}

func newSlotUsecaseFixture() *slotUsecaseFixture {
	f := &slotUsecaseFixture{
		schedules:    new(mocks.ScheduleClient),
		slots:        new(mocks.SlotClient),
		appointments: new(mocks.AppointmentClient),
		events:       new(mocks.EventPublisher),
	}
	f.usecase = &slotUsecase{
		ScheduleClient:    f.schedules,
		SlotClient:        f.slots,
		AppointmentClient: f.appointments,
		EventPublisher:    f.events,
		InternalConfig:    &config.InternalConfig{App: config.App{LookaheadDays: 7}},
		Log:               zap.NewNop(),
		Location:          time.UTC,
		Now: func() time.Time {
			return time.Date(2025, 1, 4, 8, 0, 0, 0, time.UTC)
		},
	}
	return f
}

var patientSession = &models.Session{Token: "tok", Role: constvars.RolePatient, UserID: "P1"}

func TestSlotUsecase_GetDoctorScheduleView(t *testing.T) {
	t.Run("Off Days Come From Schedules", func(t *testing.T) {
		f := newSlotUsecaseFixture()
		f.schedules.On("FindByDoctorID", mock.Anything, patientSession, "DOC1").
			Return([]models.ScheduleConfig{{DayOff: "Sunday"}}, nil)

		view, err := f.usecase.GetDoctorScheduleView(context.Background(), patientSession, "DOC1")
		require.NoError(t, err)
		assert.Equal(t, []string{"Sunday"}, view.OffDays)
		assert.Len(t, view.AvailableDates, 6)
		assert.Len(t, view.Purposes, 4)
	})

	t.Run("Schedule Failure Shows Every Day", func(t *testing.T) {
		f := newSlotUsecaseFixture()
		f.schedules.On("FindByDoctorID", mock.Anything, patientSession, "DOC1").
			Return(nil, errors.New("boom"))

		view, err := f.usecase.GetDoctorScheduleView(context.Background(), patientSession, "DOC1")
		require.NoError(t, err)
		assert.Empty(t, view.OffDays)
		assert.Len(t, view.AvailableDates, 7)
	})
}

func TestSlotUsecase_GetSlotsView(t *testing.T) {
	t.Run("Maps And Numbers Slots", func(t *testing.T) {
		f := newSlotUsecaseFixture()
		f.slots.On("FindByDoctorAndDate", mock.Anything, patientSession, "DOC1", "2025-01-04").Return([]responses.Slot{
			{Date: "2025-01-04", StartDateTime: "2025-01-04T09:00:00", EndDateTime: "2025-01-04T09:15:00", Status: "available"},
			{Date: "2025-01-04", StartDateTime: "2025-01-04T09:15:00", EndDateTime: "2025-01-04T09:30:00", Status: "booked"},
		}, nil)

		view, err := f.usecase.GetSlotsView(context.Background(), patientSession, "DOC1", "2025-01-04")
		require.NoError(t, err)
		require.Len(t, view.Slots, 2)
		assert.Equal(t, 1, view.Slots[0].SlotID)
		assert.False(t, view.Slots[0].IsBooked)
		assert.True(t, view.Slots[1].IsBooked)
	})

	t.Run("Bad Date Is Rejected Before Calling API", func(t *testing.T) {
		f := newSlotUsecaseFixture()

		_, err := f.usecase.GetSlotsView(context.Background(), patientSession, "DOC1", "04/01/2025")
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, http.StatusBadRequest, customErr.StatusCode)
		f.slots.AssertNotCalled(t, "FindByDoctorAndDate")
	})
}

func newQuarterView() *ScheduleView {
	return NewScheduleView("DOC1", "2025-01-04", quarterSlots(), time.UTC)
}

func TestSlotUsecase_Book(t *testing.T) {
	t.Run("Confirmed Booking Reconciles Overlapping Slots", func(t *testing.T) {
		f := newSlotUsecaseFixture()
		view := newQuarterView()

		expectedPayload := &requests.BookAppointment{
			PatientID:     "P1",
			StartDateTime: "2025-01-04T09:00:00",
			EndDateTime:   "2025-01-04T09:30:00",
			Purpose:       "Follow-up",
		}
		f.appointments.On("Book", mock.Anything, patientSession, "DOC1", expectedPayload).Return(&responses.BookingConfirmation{
			AppointmentID: "A1",
			Slot:          responses.Slot{StartDateTime: "2025-01-04T09:00:00", EndDateTime: "2025-01-04T09:30:00"},
			Status:        "pending",
		}, nil)
		f.events.On("PublishAppointmentEvent", mock.Anything, mock.MatchedBy(func(e models.AppointmentEvent) bool {
			return e.Type == constvars.EventAppointmentBooked && e.AppointmentID == "A1"
		})).Return(nil)

		result, err := f.usecase.Book(context.Background(), patientSession, view, &requests.BookSlot{
			StartDateTime: "2025-01-04T09:00:00",
			Purpose:       "Follow-up",
		})
		require.NoError(t, err)
		assert.Equal(t, "A1", result.AppointmentID)
		assert.Equal(t, "pending", result.Status)
		assert.Equal(t, "2025-01-04T09:30:00", result.EndDateTime)

		assert.True(t, view.Slots[0].IsBooked)
		assert.True(t, view.Slots[1].IsBooked)
		assert.False(t, view.Slots[2].IsBooked)
		assert.Equal(t, view.Slots, result.Slots)
		f.appointments.AssertExpectations(t)
		f.events.AssertExpectations(t)
	})

	t.Run("Failed Booking Leaves Slots Untouched", func(t *testing.T) {
		f := newSlotUsecaseFixture()
		view := newQuarterView()
		upstreamErr := exceptions.ErrUpstreamResponse(http.StatusConflict, "Slot already booked", constvars.ErrClientBookingFailed, constvars.ResourceAppointments)
		f.appointments.On("Book", mock.Anything, patientSession, "DOC1", mock.Anything).Return(nil, upstreamErr)

		result, err := f.usecase.Book(context.Background(), patientSession, view, &requests.BookSlot{
			StartDateTime: "2025-01-04T09:00:00",
			Purpose:       "Consultation",
		})
		assert.Nil(t, result)
		assert.ErrorIs(t, err, upstreamErr)
		assert.Equal(t, quarterSlots(), view.Slots)
		f.events.AssertNotCalled(t, "PublishAppointmentEvent")
	})

	t.Run("Event Failure Does Not Fail Booking", func(t *testing.T) {
		f := newSlotUsecaseFixture()
		view := newQuarterView()
		f.appointments.On("Book", mock.Anything, patientSession, "DOC1", mock.Anything).
			Return(&responses.BookingConfirmation{AppointmentID: "A2", Status: "pending"}, nil)
		f.events.On("PublishAppointmentEvent", mock.Anything, mock.Anything).Return(errors.New("broker down"))

		result, err := f.usecase.Book(context.Background(), patientSession, view, &requests.BookSlot{
			StartDateTime: "2025-01-04T09:30:00",
			Purpose:       "Consultation",
		})
		require.NoError(t, err)
		assert.Equal(t, "2025-01-04T09:45:00", result.EndDateTime, "falls back to the requested window")
		assert.True(t, view.Slots[2].IsBooked)
		assert.False(t, view.Slots[1].IsBooked)
	})

	t.Run("Offset Slot Times Are Sent As Local Wall Clock", func(t *testing.T) {
		f := newSlotUsecaseFixture()
		ist := time.FixedZone("IST", 5*3600+1800)
		view := NewScheduleView("DOC1", "2025-01-04", []models.Slot{
			{SlotID: 1, Date: "2025-01-04", StartDateTime: "2025-01-04T03:30:00Z", EndDateTime: "2025-01-04T03:45:00Z", Status: "available"},
			{SlotID: 2, Date: "2025-01-04", StartDateTime: "2025-01-04T03:45:00Z", EndDateTime: "2025-01-04T04:00:00Z", Status: "available"},
		}, ist)

		expectedPayload := &requests.BookAppointment{
			PatientID:     "P1",
			StartDateTime: "2025-01-04T09:00:00",
			EndDateTime:   "2025-01-04T09:15:00",
			Purpose:       "Consultation",
		}
		f.appointments.On("Book", mock.Anything, patientSession, "DOC1", expectedPayload).
			Return(&responses.BookingConfirmation{AppointmentID: "A3", Status: "pending"}, nil)
		f.events.On("PublishAppointmentEvent", mock.Anything, mock.Anything).Return(nil)

		result, err := f.usecase.Book(context.Background(), patientSession, view, &requests.BookSlot{
			StartDateTime: "2025-01-04T03:30:00Z",
			Purpose:       "Consultation",
		})
		require.NoError(t, err)
		assert.Equal(t, "2025-01-04T09:00:00", result.StartDateTime)
		assert.Equal(t, "2025-01-04T09:15:00", result.EndDateTime)
		assert.True(t, view.Slots[0].IsBooked)
		assert.False(t, view.Slots[1].IsBooked)
		f.appointments.AssertExpectations(t)
	})

	t.Run("Missing Patient Id", func(t *testing.T) {
		f := newSlotUsecaseFixture()
		_, err := f.usecase.Book(context.Background(), &models.Session{Token: "tok"}, newQuarterView(), &requests.BookSlot{
			StartDateTime: "2025-01-04T09:00:00",
			Purpose:       "Consultation",
		})

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.ErrClientPatientNotLoggedIn, customErr.ClientMessage)
	})

	t.Run("Missing Purpose", func(t *testing.T) {
		f := newSlotUsecaseFixture()
		_, err := f.usecase.Book(context.Background(), patientSession, newQuarterView(), &requests.BookSlot{
			StartDateTime: "2025-01-04T09:00:00",
		})

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.ErrClientSelectPurpose, customErr.ClientMessage)
	})

	t.Run("Already Booked Slot", func(t *testing.T) {
		f := newSlotUsecaseFixture()
		_, err := f.usecase.Book(context.Background(), patientSession, newQuarterView(), &requests.BookSlot{
			StartDateTime: "2025-01-04T09:45:00",
			Purpose:       "Consultation",
		})

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, http.StatusConflict, customErr.StatusCode)
		f.appointments.AssertNotCalled(t, "Book")
	})

	t.Run("Unknown Slot Start", func(t *testing.T) {
		f := newSlotUsecaseFixture()
		_, err := f.usecase.Book(context.Background(), patientSession, newQuarterView(), &requests.BookSlot{
			StartDateTime: "2025-01-04T11:00:00",
			Purpose:       "Consultation",
		})

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, http.StatusNotFound, customErr.StatusCode)
	})
}
