package interfaces

import (
	"context"

	"arena_payments/internal/domain/entities"
)

type IEventPublisher interface {
	Publish(ctx context.Context, event entities.Event) error
}

// IMetrics records business counters. Implementations must be safe for concurrent use.
type IMetrics interface {
	CheckoutCreated(provider entities.Provider, outcome string)
	WebhookProcessed(provider string, outcome string)
	PayoutDispatched(channel entities.PayoutChannel, outcome entities.DispatchOutcome)
}

// IPayoutDispatcher is the part of the payout use case the webhook processor depends on.
type IPayoutDispatcher interface {
	Dispatch(ctx context.Context, payment entities.Payment) entities.DispatchResult
}
