package appointments

import (
	"context"
	"mediconnect-portal/internal/app/models"
)

type AppointmentUsecase interface {
	GetReceptionistBoard(ctx context.Context, session *models.Session) (*Board, error)
	ApplyStatusAction(ctx context.Context, session *models.Session, board *Board, appointmentID, action string) (*models.StatusUpdate, error)
	UpdateStatus(ctx context.Context, session *models.Session, appointmentID, action string) (*StatusActionResult, error)
	GetUpcomingAppointments(ctx context.Context, session *models.Session) ([]models.Appointment, error)
	GetPastAppointments(ctx context.Context, session *models.Session) ([]models.Appointment, error)
	CancelAppointment(ctx context.Context, session *models.Session, appointmentID string) ([]models.Appointment, error)
}

// RecordLinker turns stored medical record references into downloadable links.
type RecordLinker interface {
	Resolve(ctx context.Context, records []models.MedicalRecord) []models.MedicalRecord
}

type StatusActionResult struct {
	Update models.StatusUpdate `json:"update"`
	Board  BoardView           `json:"board"`
}
