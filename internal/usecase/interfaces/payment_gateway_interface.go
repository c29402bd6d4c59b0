package interfaces

import (
	"context"
	"encoding/json"
	"net/http"

	"arena_payments/internal/domain/entities"
)

type InvoiceRequest struct {
	PaymentID       string
	ReservationID   string
	ClientReference string
	Amount          int64
	Currency        string
	Description     string
}

type Invoice struct {
	Token       string
	CheckoutURL string
	Raw         json.RawMessage
}

// Confirmation is the provider's answer to "what is the status of this token".
// Status is already normalized; ProviderStatus keeps the raw value for audit.
type Confirmation struct {
	Token           string
	ClientReference string
	Status          entities.ProviderStatus
	ProviderStatus  string
	Amount          int64
	Raw             json.RawMessage
}

// ICheckoutGateway abstracts a hosted checkout provider.
//
// VerifyWebhook returns entities.ErrWebhookSecretMissing when no secret is configured
// and entities.ErrInvalidSignature when the signature does not match.
type ICheckoutGateway interface {
	Provider() entities.Provider
	CreateInvoice(ctx context.Context, req InvoiceRequest) (Invoice, error)
	ExtractToken(payload []byte) (string, error)
	VerifyWebhook(payload []byte, headers http.Header) error
	ConfirmStatus(ctx context.Context, token string) (Confirmation, error)
}

type PayoutRequest struct {
	Amount         int64
	Currency       string
	Recipient      string
	Reason         string
	IdempotencyKey string
}

type PayoutResult struct {
	ProviderID     string
	Status         entities.ProviderStatus
	ProviderStatus string
	Raw            json.RawMessage
}

// IPayoutChannel pushes money to a field owner over one channel.
//
// Recipients are validated before any network call (entities.ErrInvalidRecipient).
type IPayoutChannel interface {
	Channel() entities.PayoutChannel
	CreatePayout(ctx context.Context, req PayoutRequest) (PayoutResult, error)
	GetStatus(ctx context.Context, providerID string) (PayoutResult, error)
}
