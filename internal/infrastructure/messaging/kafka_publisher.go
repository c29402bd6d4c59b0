package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"arena_payments/internal/domain/entities"
	"arena_payments/internal/usecase/interfaces"

	"github.com/segmentio/kafka-go"
)

const (
	TopicPaymentStateChanged = "payments.state.changed"
	TopicPayoutStateChanged  = "payouts.state.changed"
)

// messageWriter is satisfied by *kafka.Writer.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher publishes state change events keyed by payment or payout id, so every
// change of one entity lands on the same partition in order.
type KafkaPublisher struct {
	writer messageWriter
}

var _ interfaces.IEventPublisher = (*KafkaPublisher)(nil)

func NewKafkaPublisher(brokers []string) *KafkaPublisher {
	return &KafkaPublisher{writer: &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
		WriteTimeout:           10 * time.Second,
	}}
}

type eventEnvelope struct {
	Type       string         `json:"type"`
	Key        string         `json:"key"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}

func (p *KafkaPublisher) Publish(ctx context.Context, evt entities.Event) error {
	value, err := json.Marshal(eventEnvelope{
		Type:       evt.Type,
		Key:        evt.Key,
		OccurredAt: evt.OccurredAt.UTC(),
		Payload:    evt.Payload,
	})
	if err != nil {
		return fmt.Errorf("encode event %s: %w", evt.Type, err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topicFor(evt.Type),
		Key:   []byte(evt.Key),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(evt.Type)},
		},
	})
	if err != nil {
		return fmt.Errorf("publish event %s: %w", evt.Type, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

func topicFor(eventType string) string {
	if strings.HasPrefix(eventType, "payout.") {
		return TopicPayoutStateChanged
	}
	return TopicPaymentStateChanged
}

// NoopPublisher drops events. Used when no brokers are configured.
type NoopPublisher struct{}

var _ interfaces.IEventPublisher = NoopPublisher{}

func (NoopPublisher) Publish(context.Context, entities.Event) error { return nil }

func (NoopPublisher) Close() error { return nil }
