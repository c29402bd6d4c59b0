package entities

import "time"

type PayoutStatus string

const (
	PayoutStatusProcessing PayoutStatus = "processing"
	PayoutStatusCompleted  PayoutStatus = "completed"
	PayoutStatusFailed     PayoutStatus = "failed"
)

// IsActive reports whether the payout blocks a new attempt for the same idempotency key.
func (s PayoutStatus) IsActive() bool {
	return s == PayoutStatusProcessing || s == PayoutStatusCompleted
}

// PayoutChannel is the money-push rail configured by the field owner.
type PayoutChannel string

const (
	PayoutChannelWalletPushA  PayoutChannel = "wallet_push_a"
	PayoutChannelWalletPushB  PayoutChannel = "wallet_push_b"
	PayoutChannelBankTransfer PayoutChannel = "bank_transfer"
)

// Payout is one attempt to transfer NetToOwner to the field owner.
//
// Every attempt for the same payment and field shares IdempotencyKey. Retries create
// a new row and mark the previous failed row as superseded.

type Payout struct {
	ID             string        `json:"id"`
	PaymentID      string        `json:"payment_id"`
	FieldID        string        `json:"field_id"`
	Channel        PayoutChannel `json:"channel"`
	Amount         int64         `json:"amount"`
	Currency       string        `json:"currency"`
	Recipient      string        `json:"recipient"`
	IdempotencyKey string        `json:"idempotency_key"`
	Status         PayoutStatus  `json:"status"`

	ProviderID     string `json:"provider_id,omitempty"`
	ProviderStatus string `json:"provider_status,omitempty"`
	ProviderError  string `json:"provider_error,omitempty"`

	RetryCount   int        `json:"retry_count"`
	Retryable    bool       `json:"retryable"`
	NextRetryAt  *time.Time `json:"next_retry_at,omitempty"`
	SupersededBy string     `json:"superseded_by,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// DispatchOutcome is what one dispatch did. Submitted means the provider accepted the
// transfer but has not settled it; the payout stays processing until a sweep confirms it.
type DispatchOutcome string

const (
	DispatchOutcomeSkipped       DispatchOutcome = "skipped"
	DispatchOutcomeExisting      DispatchOutcome = "existing"
	DispatchOutcomeCompleted     DispatchOutcome = "completed"
	DispatchOutcomeSubmitted     DispatchOutcome = "submitted"
	DispatchOutcomeFailed        DispatchOutcome = "failed"
	DispatchOutcomeNotConfigured DispatchOutcome = "not_configured"
	DispatchOutcomeError         DispatchOutcome = "error"
)

// DispatchResult reports what a dispatch did. Err is informational; dispatch never fails its caller.
type DispatchResult struct {
	Outcome DispatchOutcome
	Payout  Payout
	Err     error
}
