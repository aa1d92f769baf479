package contracts

import (
	"context"
	"mediconnect-portal/internal/app/models"
	"mediconnect-portal/internal/pkg/dto/requests"
	"mediconnect-portal/internal/pkg/dto/responses"
)

type AuthClient interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	GetUserID(ctx context.Context, session *models.Session, email string) (string, error)
	FindAllUsers(ctx context.Context, session *models.Session) ([]models.User, error)
}

type ScheduleClient interface {
	FindByDoctorID(ctx context.Context, session *models.Session, doctorID string) ([]models.ScheduleConfig, error)
	CheckDoctor(ctx context.Context, session *models.Session, userID string) (bool, error)
	Create(ctx context.Context, session *models.Session, request *requests.CreateSchedule) error
}

type SlotClient interface {
	FindByDoctorAndDate(ctx context.Context, session *models.Session, doctorID, date string) ([]responses.Slot, error)
}

type AppointmentClient interface {
	Book(ctx context.Context, session *models.Session, doctorID string, request *requests.BookAppointment) (*responses.BookingConfirmation, error)
	UpdateStatus(ctx context.Context, session *models.Session, appointmentID, action string) (*responses.StatusUpdate, error)
	FindByDoctorID(ctx context.Context, session *models.Session, doctorID string) ([]models.Appointment, error)
	FindByReceptionistEmail(ctx context.Context, session *models.Session, email string) ([]models.Appointment, error)
	FindUpcomingByPatientID(ctx context.Context, session *models.Session, patientID string) ([]models.Appointment, error)
	FindAllByPatientID(ctx context.Context, session *models.Session, patientID string) ([]models.Appointment, error)
	CancelByPatient(ctx context.Context, session *models.Session, appointmentID string) error
	FindAll(ctx context.Context, session *models.Session) ([]models.Appointment, error)
}

type PatientClient interface {
	FindByEmail(ctx context.Context, session *models.Session, email string) (*models.PatientDemographics, error)
	Upsert(ctx context.Context, session *models.Session, request *requests.UpsertPatient) (*models.PatientDemographics, error)
}

type DirectoryClient interface {
	FindDoctors(ctx context.Context, session *models.Session, hospitalID string) ([]models.Doctor, error)
	FindHospitals(ctx context.Context, session *models.Session) ([]models.Hospital, error)
}

type AdminClient interface {
	CreateDoctor(ctx context.Context, session *models.Session, request *requests.CreateDoctor) error
	CreateHospital(ctx context.Context, session *models.Session, request *requests.CreateHospital) error
	CreateReceptionist(ctx context.Context, session *models.Session, request *requests.CreateReceptionist) error
}
