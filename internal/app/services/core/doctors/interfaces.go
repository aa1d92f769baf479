package doctors

import (
	"context"
	"mediconnect-portal/internal/app/models"
	"mediconnect-portal/internal/pkg/dto/requests"
)

type DoctorUsecase interface {
	GetDashboard(ctx context.Context, session *models.Session) (*Dashboard, error)
	SaveSchedule(ctx context.Context, session *models.Session, request *requests.CreateSchedule) (*Dashboard, error)
	GetPatientDemographics(ctx context.Context, session *models.Session, email string) (*models.PatientDemographics, error)
}

// Dashboard is the doctor landing page. NeedsSchedule is set while the
// doctor has not configured a weekly schedule yet; Appointments is then empty.
type Dashboard struct {
	DoctorID      string               `json:"doctor_id"`
	NeedsSchedule bool                 `json:"needs_schedule"`
	Appointments  []models.Appointment `json:"appointments"`
}
