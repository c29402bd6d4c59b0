package usecase

import (
	"context"
	"time"

	"arena_payments/internal/domain/entities"
	"arena_payments/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const defaultProviderTimeout = 20 * time.Second

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, entities.Event) error { return nil }

type noopMetrics struct{}

func (noopMetrics) CheckoutCreated(entities.Provider, string)                        {}
func (noopMetrics) WebhookProcessed(string, string)                                  {}
func (noopMetrics) PayoutDispatched(entities.PayoutChannel, entities.DispatchOutcome) {}

func orNoopPublisher(p interfaces.IEventPublisher) interfaces.IEventPublisher {
	if p == nil {
		return noopPublisher{}
	}
	return p
}

func orNoopMetrics(m interfaces.IMetrics) interfaces.IMetrics {
	if m == nil {
		return noopMetrics{}
	}
	return m
}

func orNopLogger(log *zap.Logger) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}

func orDefaultTimeout(d time.Duration) time.Duration {
	if d <= 0 {
		return defaultProviderTimeout
	}
	return d
}

// publish logs publisher errors and never returns them.
func publish(ctx context.Context, pub interfaces.IEventPublisher, log *zap.Logger, eventType, key string, payload map[string]any) {
	ev := entities.Event{Type: eventType, Key: key, OccurredAt: time.Now().UTC(), Payload: payload}
	if err := pub.Publish(ctx, ev); err != nil {
		log.Warn("event publish failed", zap.String("event_type", eventType), zap.String("key", key), zap.Error(err))
	}
}
