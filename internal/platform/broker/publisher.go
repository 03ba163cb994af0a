package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/segmentio/kafka-go"
)

// changeEvent is the envelope downstream consumers (realtime gateways) decode:
// entity/action/resourceId plus the mutated payload.
type changeEvent struct {
	Entity     string            `json:"entity"`
	Action     string            `json:"action"`
	ResourceID string            `json:"resourceId"`
	Topic      string            `json:"topic"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	Data       any               `json:"data,omitempty"`
}

// Publisher writes entity change events to a single Kafka topic. It satisfies
// the ChangePublisher ports of the restaurants and menus modules.
type Publisher struct {
	writer *kafka.Writer
}

func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (p *Publisher) Publish(ctx context.Context, entity, action, resourceID string, data any) error {
	event := changeEvent{
		Entity:     entity,
		Action:     action,
		ResourceID: resourceID,
		Topic:      entity + "." + action,
		Data:       data,
	}
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(resourceID),
		Value: value,
	}); err != nil {
		return fmt.Errorf("write event %s: %w", event.Topic, err)
	}

	slog.Debug("event published",
		slog.String("topic", event.Topic),
		slog.String("resourceId", resourceID))
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
