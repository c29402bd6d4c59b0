package interfaces

import (
	"context"
	"time"

	"arena_payments/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment.
//
// Reads return a zero Payment and nil error when nothing matches.
// TransitionFromPending is the only way a payment leaves pending: it applies the
// transition only if the stored status is still pending and reports whether it did.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	GetByProviderToken(ctx context.Context, provider entities.Provider, token string) (entities.Payment, error)
	GetByClientReference(ctx context.Context, clientReference string) (entities.Payment, error)
	TransitionFromPending(ctx context.Context, id string, t entities.PaymentTransition) (entities.Payment, bool, error)
	ListPayoutPending(ctx context.Context, before time.Time, limit int) ([]entities.Payment, error)
	ClearPayoutPending(ctx context.Context, id string) error
}

// IPayoutRepository abstracts persistence for Payout attempts.
//
// ClaimAttempt atomically reserves the idempotency key for a new processing attempt.
// When an attempt for the same key is already processing or completed it returns that
// attempt and false, and nothing is written.
//
// RecordSubmission keeps an attempt processing while storing the provider reference.

type IPayoutRepository interface {
	ClaimAttempt(ctx context.Context, p entities.Payout, staleBefore time.Time) (entities.Payout, bool, error)
	MarkCompleted(ctx context.Context, p entities.Payout) error
	MarkFailed(ctx context.Context, p entities.Payout) error
	RecordSubmission(ctx context.Context, p entities.Payout) error
	GetByID(ctx context.Context, id string) (entities.Payout, error)
	ListByPaymentID(ctx context.Context, paymentID string) ([]entities.Payout, error)
	ListByStatus(ctx context.Context, status entities.PayoutStatus, limit int) ([]entities.Payout, error)
	ListDueForRetry(ctx context.Context, now time.Time, limit int) ([]entities.Payout, error)
	ListStaleProcessing(ctx context.Context, before time.Time, limit int) ([]entities.Payout, error)
}
