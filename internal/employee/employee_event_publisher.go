package employee

import (
	"context"
	"encoding/json"

	"github.com/SamiulIslamRamim/erp-backend-personal/internal/events"
	"github.com/SamiulIslamRamim/erp-backend-personal/internal/messaging/kafka"
)

type EventPublisher interface {
	PublishEmployeeCreated(ctx context.Context, event events.EmployeeCreatedEvent) error
}

type noopEventPublisher struct{}

func (noopEventPublisher) PublishEmployeeCreated(context.Context, events.EmployeeCreatedEvent) error {
	return nil
}

// NewNoopEventPublisher is used when no broker is configured.
func NewNoopEventPublisher() EventPublisher {
	return noopEventPublisher{}
}

type kafkaEventPublisher struct {
	publisher kafka.Publisher
}

func NewKafkaEventPublisher(publisher kafka.Publisher) EventPublisher {
	return &kafkaEventPublisher{publisher: publisher}
}

func (p *kafkaEventPublisher) PublishEmployeeCreated(
	ctx context.Context,
	event events.EmployeeCreatedEvent,
) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.publisher.Publish(ctx, kafka.Event{
		Topic:         events.EmployeeCreatedTopic,
		AggregateType: "employee",
		AggregateID:   event.EmployeeID,
		EventType:     event.EventType,
		Payload:       payload,
	})
}
