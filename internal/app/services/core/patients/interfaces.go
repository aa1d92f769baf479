package patients

import (
	"context"
	"mediconnect-portal/internal/app/models"
	"mediconnect-portal/internal/pkg/dto/requests"
)

type PatientUsecase interface {
	GetProfile(ctx context.Context, session *models.Session) (*ProfileView, error)
	SaveProfile(ctx context.Context, session *models.Session, request *requests.UpsertPatient) (*ProfileView, error)
}

// DemographicsReader fetches patient demographics by email.
type DemographicsReader interface {
	GetDemographics(ctx context.Context, session *models.Session, email string) (*models.PatientDemographics, error)
	Invalidate(ctx context.Context, email string)
}

type RecordLinker interface {
	Resolve(ctx context.Context, records []models.MedicalRecord) []models.MedicalRecord
}

// ProfileView is the patient profile page. Demographics is nil until the
// patient saves a profile for the first time.
type ProfileView struct {
	Demographics      *models.PatientDemographics `json:"demographics"`
	CompletionPercent int                         `json:"completion_percent"`
	IsProfileFilled   bool                        `json:"is_profile_filled"`
}
