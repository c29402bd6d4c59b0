package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"arena_payments/internal/domain/entities"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type recordingWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.msgs = append(w.msgs, msgs...)
	return w.err
}

func (w *recordingWriter) Close() error { return nil }

func TestKafkaPublisher_Publish(t *testing.T) {
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		event entities.Event
		topic string
	}{
		{name: "payment event", event: entities.Event{Type: entities.EventPaymentPaid, Key: "pay-1", OccurredAt: at}, topic: TopicPaymentStateChanged},
		{name: "payout event", event: entities.Event{Type: entities.EventPayoutFailed, Key: "po-1", OccurredAt: at}, topic: TopicPayoutStateChanged},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &recordingWriter{}
			p := &KafkaPublisher{writer: w}

			if err := p.Publish(context.Background(), tt.event); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(w.msgs) != 1 {
				t.Fatalf("expected one message, got %d", len(w.msgs))
			}
			msg := w.msgs[0]
			if msg.Topic != tt.topic || string(msg.Key) != tt.event.Key {
				t.Fatalf("unexpected message routing: topic=%s key=%s", msg.Topic, msg.Key)
			}
			var env eventEnvelope
			if err := json.Unmarshal(msg.Value, &env); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if env.Type != tt.event.Type || !env.OccurredAt.Equal(at) {
				t.Fatalf("unexpected envelope: %+v", env)
			}
		})
	}

	t.Run("writer error is returned", func(t *testing.T) {
		p := &KafkaPublisher{writer: &recordingWriter{err: errors.New("leader not available")}}
		if err := p.Publish(context.Background(), entities.Event{Type: entities.EventPaymentCreated}); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestRetryTrigger_Coalesces(t *testing.T) {
	tr := &RetryTrigger{ch: make(chan struct{}, 1), log: zap.NewNop()}

	tr.notify("payouts.retry")
	tr.notify("payouts.retry")
	tr.notify("payouts.retry")

	select {
	case <-tr.C():
	default:
		t.Fatalf("expected a pending sweep request")
	}
	select {
	case <-tr.C():
		t.Fatalf("expected requests to be coalesced")
	default:
	}
}
