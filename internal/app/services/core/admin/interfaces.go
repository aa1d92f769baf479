package admin

import (
	"context"
	"mediconnect-portal/internal/app/models"
	"mediconnect-portal/internal/pkg/dto/requests"
)

type AdminUsecase interface {
	CreateDoctor(ctx context.Context, session *models.Session, request *requests.CreateDoctor) error
	CreateHospital(ctx context.Context, session *models.Session, request *requests.CreateHospital) error
	CreateReceptionist(ctx context.Context, session *models.Session, request *requests.CreateReceptionist) error
	GetAnalytics(ctx context.Context, session *models.Session) (*Analytics, error)
}

type Analytics struct {
	TotalAppointments    int            `json:"total_appointments"`
	TotalDoctors         int            `json:"total_doctors"`
	RegisteredDoctors    int            `json:"registered_doctors"`
	TotalUsers           int            `json:"total_users"`
	TotalHospitals       int            `json:"total_hospitals"`
	AppointmentsByStatus map[string]int `json:"appointments_by_status"`
}
