package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the marketplace payment lifecycle.
//
// A payment is created as pending and moves exactly once to paid or failed.

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentStatusPaid || s == PaymentStatusFailed
}

// Provider identifies the hosted checkout provider that owns a payment.
type Provider string

const (
	ProviderHostedCheckout Provider = "hosted_checkout"
	ProviderMercadoPago    Provider = "mercadopago"
)

// Payment is the marketplace payment persisted by the payments service.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (provider_token-index): provider_token
//   - GSI (client_reference-index): client_reference
//   - GSI (payout_pending-index): payout_pending, payout_pending_since, sparse
//
// ProviderPayloadRaw keeps the confirmed provider body for audit.
// PayoutPendingSince is set when the payment becomes paid and cleared once its payout
// reaches a persisted outcome, so a sweep can find payments whose payout was lost.
// GrossAmount, PlatformFee and NetToOwner are minor currency units.

type Payment struct {
	ID              string `json:"id"`
	ReservationID   string `json:"reservation_id"`
	FieldID         string `json:"field_id"`
	UserID          string `json:"user_id"`
	SessionID       string `json:"session_id"`
	ClientReference string `json:"client_reference"`

	GrossAmount       int64  `json:"gross_amount"`
	PlatformFee       int64  `json:"platform_fee"`
	NetToOwner        int64  `json:"net_to_owner"`
	CommissionRateBps int    `json:"commission_rate_bps"`
	Currency          string `json:"currency"`

	Provider       Provider      `json:"provider"`
	ProviderToken  string        `json:"provider_token"`
	CheckoutURL    string        `json:"checkout_url"`
	Status         PaymentStatus `json:"status"`
	ProviderStatus string        `json:"provider_status,omitempty"`

	WebhookReceivedAt  *time.Time      `json:"webhook_received_at,omitempty"`
	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`
	PayoutPendingSince *time.Time      `json:"payout_pending_since,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PaymentTransition carries the fields written together with a pending -> terminal move.
type PaymentTransition struct {
	To                 PaymentStatus
	ProviderStatus     string
	WebhookReceivedAt  time.Time
	ProviderPayloadRaw json.RawMessage
}
