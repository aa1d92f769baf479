package events

import (
	"context"
	"mediconnect-portal/internal/app/contracts"
	"mediconnect-portal/internal/app/models"
	"mediconnect-portal/internal/pkg/constvars"
	"mediconnect-portal/internal/pkg/exceptions"
	"mediconnect-portal/internal/pkg/utils"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// channel is the part of *amqp091.Channel the publisher needs.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type eventPublisher struct {
	Channel channel
	Queue   string
	Log     *zap.Logger
}

var (
	eventPublisherInstance contracts.EventPublisher
	onceEventPublisher     sync.Once
	eventPublisherError    error
)

// NewEventPublisher declares the appointment events queue and returns a
// publisher bound to it. A nil connection yields a publisher that only logs.
func NewEventPublisher(rabbitMQConnection *amqp091.Connection, logger *zap.Logger, queue string) (contracts.EventPublisher, error) {
	onceEventPublisher.Do(func() {
		if rabbitMQConnection == nil {
			eventPublisherInstance = NewNoopPublisher(logger)
			return
		}

		ch, err := rabbitMQConnection.Channel()
		if err != nil {
			eventPublisherError = err
			return
		}
		_, err = ch.QueueDeclare(queue, true, false, false, false, nil)
		if err != nil {
			eventPublisherError = err
			return
		}

		eventPublisherInstance = &eventPublisher{
			Channel: ch,
			Queue:   queue,
			Log:     logger,
		}
	})
	return eventPublisherInstance, eventPublisherError
}

func (p *eventPublisher) PublishAppointmentEvent(ctx context.Context, event models.AppointmentEvent) error {
	requestID := utils.GetRequestID(ctx)
	p.Log.Info("eventPublisher.PublishAppointmentEvent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventTypeKey, event.Type),
		zap.String(constvars.LoggingAppointmentIDKey, event.AppointmentID),
	)

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		MessageId:    utils.GenerateRequestID(),
		Timestamp:    event.OccurredAt,
		Type:         event.Type,
		Headers: amqp091.Table{
			"request_id": requestID,
		},
	}

	err = p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, message)
	if err != nil {
		p.Log.Error("eventPublisher.PublishAppointmentEvent error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueKey, p.Queue),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, p.Queue)
	}

	p.Log.Info("eventPublisher.PublishAppointmentEvent succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, p.Queue),
	)
	return nil
}

type noopPublisher struct {
	Log *zap.Logger
}

// NewNoopPublisher records events in the application log only.
func NewNoopPublisher(logger *zap.Logger) contracts.EventPublisher {
	return &noopPublisher{Log: logger}
}

func (p *noopPublisher) PublishAppointmentEvent(ctx context.Context, event models.AppointmentEvent) error {
	p.Log.Debug("noopPublisher.PublishAppointmentEvent",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingEventTypeKey, event.Type),
		zap.String(constvars.LoggingAppointmentIDKey, event.AppointmentID),
	)
	return nil
}
