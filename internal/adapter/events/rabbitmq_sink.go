package events

import (
	"context"
	"encoding/json"

	"workshop_flow/internal/domain/entities"
	"workshop_flow/internal/infrastructure/messaging"
	"workshop_flow/internal/usecase/interfaces"
)

// RabbitMQSink publishes workflow events to the workflow topic exchange,
// using the event kind as the routing key. Delivery is at-least-once;
// consumers are expected to be idempotent on (entity_id, to_status).

type RabbitMQSink struct {
	client *messaging.Client
}

var _ interfaces.IEventSink = (*RabbitMQSink)(nil)

func NewRabbitMQSink(client *messaging.Client) *RabbitMQSink {
	return &RabbitMQSink{client: client}
}

func (s *RabbitMQSink) Publish(ctx context.Context, event entities.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return s.client.PublishPersistent(ctx, string(event.Kind), body)
}
