package contracts

import (
	"context"
	"mediconnect-portal/internal/app/models"
)

type EventPublisher interface {
	PublishAppointmentEvent(ctx context.Context, event models.AppointmentEvent) error
}
