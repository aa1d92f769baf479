package appointments

import (
	"context"
	"errors"
	"mediconnect-portal/internal/app/contracts/mocks"
	"mediconnect-portal/internal/app/models"
	"mediconnect-portal/internal/pkg/constvars"
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

type fakeLinker struct{}

func (fakeLinker) Resolve(ctx context.Context, records []models.MedicalRecord) []models.MedicalRecord {
	linked := make([]models.MedicalRecord, len(records))
	for i, record := range records {
		linked[i] = models.MedicalRecord{Filename: record.Filename, URL: "https://files.example.com/" + record.URL}
	}
	return linked
}

func newAppointmentUsecase(client *mocks.AppointmentClient, events *mocks.EventPublisher) *appointmentUsecase {
	return &appointmentUsecase{
		AppointmentClient: client,
		EventPublisher:    events,
		RecordLinker:      fakeLinker{},
		InFlight:          NewInFlight(),
		Log:               zap.NewNop(),
		Now: func() time.Time {
			return time.Date(2025, 1, 4, 12, 0, 0, 0, time.UTC)
		},
	}
}

var (
	receptionistSession = &models.Session{Token: "tok", Role: constvars.RoleReceptionist, Email: "rec@example.com"}
	patientSession      = &models.Session{Token: "tok", Role: constvars.RolePatient, Email: "pat@example.com", UserID: "P1"}
)

func TestAppointmentUsecase_UpdateStatus(t *testing.T) {
	t.Run("Approve Reconciles Board", func(t *testing.T) {
		client := new(mocks.AppointmentClient)
		events := new(mocks.EventPublisher)
		uc := newAppointmentUsecase(client, events)

		client.On("FindByReceptionistEmail", mock.Anything, receptionistSession, "rec@example.com").Return(sampleAppointments(), nil)
		client.On("UpdateStatus", mock.Anything, receptionistSession, "A1", "approve").
			Return(&responses.StatusUpdate{AppointmentID: "A1", Status: "approved"}, nil)
		events.On("PublishAppointmentEvent", mock.Anything, mock.MatchedBy(func(e models.AppointmentEvent) bool {
			return e.Type == constvars.EventAppointmentStatusChanged && e.Status == "approved"
		})).Return(nil)

		result, err := uc.UpdateStatus(context.Background(), receptionistSession, "A1", "approve")
		require.NoError(t, err)
		assert.Equal(t, models.StatusUpdate{AppointmentID: "A1", Status: "approved"}, result.Update)
		assert.Empty(t, result.Board.Pending)
		require.Len(t, result.Board.Approved, 1)
		assert.False(t, uc.InFlight.isInFlight("A1"))
		events.AssertExpectations(t)
	})

	t.Run("Invalid Action Is Rejected Locally", func(t *testing.T) {
		client := new(mocks.AppointmentClient)
		uc := newAppointmentUsecase(client, new(mocks.EventPublisher))
		board := NewBoard(sampleAppointments(), uc.now())

		_, err := uc.ApplyStatusAction(context.Background(), receptionistSession, board, "A1", "cancel")

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, http.StatusBadRequest, customErr.StatusCode)
		client.AssertNotCalled(t, "UpdateStatus")
	})

	t.Run("Failure Leaves Board Unchanged", func(t *testing.T) {
		client := new(mocks.AppointmentClient)
		events := new(mocks.EventPublisher)
		uc := newAppointmentUsecase(client, events)
		board := NewBoard(sampleAppointments(), uc.now())
		before := *board

		client.On("UpdateStatus", mock.Anything, receptionistSession, "A1", "reject").Return(nil, errors.New("network down"))

		_, err := uc.ApplyStatusAction(context.Background(), receptionistSession, board, "A1", "reject")
		assert.Error(t, err)
		assert.Equal(t, before.All, board.All)
		assert.Equal(t, before.Visible, board.Visible)
		assert.False(t, uc.InFlight.isInFlight("A1"))
		events.AssertNotCalled(t, "PublishAppointmentEvent")
	})
}

func TestAppointmentUsecase_PatientViews(t *testing.T) {
	t.Run("Past Appointments Carry Linked Records", func(t *testing.T) {
		client := new(mocks.AppointmentClient)
		uc := newAppointmentUsecase(client, new(mocks.EventPublisher))
		client.On("FindAllByPatientID", mock.Anything, patientSession, "P1").Return(sampleAppointments(), nil)

		past, err := uc.GetPastAppointments(context.Background(), patientSession)
		require.NoError(t, err)
		require.Len(t, past, 1)
		assert.Equal(t, "https://files.example.com/records/xray.png", past[0].MedicalRecords[0].URL)
	})

	t.Run("Cancel Removes Entry After Server Confirms", func(t *testing.T) {
		client := new(mocks.AppointmentClient)
		events := new(mocks.EventPublisher)
		uc := newAppointmentUsecase(client, events)
		client.On("FindUpcomingByPatientID", mock.Anything, patientSession, "P1").Return(sampleAppointments(), nil)
		client.On("CancelByPatient", mock.Anything, patientSession, "A1").Return(nil)
		events.On("PublishAppointmentEvent", mock.Anything, mock.Anything).Return(nil)

		remaining, err := uc.CancelAppointment(context.Background(), patientSession, "A1")
		require.NoError(t, err)
		assert.Len(t, remaining, 2)
		for _, appointment := range remaining {
			assert.NotEqual(t, "A1", appointment.Identifier())
		}
	})

	t.Run("Cancel Failure Surfaces Error", func(t *testing.T) {
		client := new(mocks.AppointmentClient)
		uc := newAppointmentUsecase(client, new(mocks.EventPublisher))
		client.On("FindUpcomingByPatientID", mock.Anything, patientSession, "P1").Return(sampleAppointments(), nil)
		client.On("CancelByPatient", mock.Anything, patientSession, "A1").Return(errors.New("denied"))

		remaining, err := uc.CancelAppointment(context.Background(), patientSession, "A1")
		assert.Error(t, err)
		assert.Nil(t, remaining)
	})

	t.Run("Missing Patient Id", func(t *testing.T) {
		uc := newAppointmentUsecase(new(mocks.AppointmentClient), new(mocks.EventPublisher))
		_, err := uc.GetUpcomingAppointments(context.Background(), &models.Session{Token: "tok"})
		assert.Error(t, err)
	})
}
