package slot

import (
	"context"
	"mediconnect-portal/internal/app/models"
	"mediconnect-portal/internal/pkg/dto/requests"
)

type SlotUsecase interface {
	GetDoctorScheduleView(ctx context.Context, session *models.Session, doctorID string) (*DoctorScheduleView, error)
	GetSlotsView(ctx context.Context, session *models.Session, doctorID, date string) (*ScheduleView, error)
	Book(ctx context.Context, session *models.Session, view *ScheduleView, request *requests.BookSlot) (*BookingResult, error)
	BookSlot(ctx context.Context, session *models.Session, doctorID, date string, request *requests.BookSlot) (*BookingResult, error)
}
