package response

import (
	"time"

	"arena_payments/internal/domain/entities"
	"arena_payments/internal/usecase"
)

type CheckoutResponse struct {
	PaymentID       string `json:"paymentId"`
	SessionID       string `json:"sessionId"`
	ClientReference string `json:"clientReference"`
	CheckoutURL     string `json:"checkoutUrl"`
	Provider        string `json:"provider"`
	GrossAmount     int64  `json:"grossAmount"`
	PlatformFee     int64  `json:"platformFee"`
	NetToOwner      int64  `json:"netToOwner"`
	Currency        string `json:"currency"`
}

func FromCheckoutSession(s usecase.CheckoutSession) CheckoutResponse {
	return CheckoutResponse{
		PaymentID:       s.PaymentID,
		SessionID:       s.SessionID,
		ClientReference: s.ClientReference,
		CheckoutURL:     s.CheckoutURL,
		Provider:        string(s.Provider),
		GrossAmount:     s.GrossAmount,
		PlatformFee:     s.PlatformFee,
		NetToOwner:      s.NetToOwner,
		Currency:        s.Currency,
	}
}

// PaymentStatusResponse omits the provider payload and token; they are operator data.
type PaymentStatusResponse struct {
	PaymentID     string     `json:"paymentId"`
	ReservationID string     `json:"reservationId"`
	Status        string     `json:"status"`
	Provider      string     `json:"provider"`
	GrossAmount   int64      `json:"grossAmount"`
	Currency      string     `json:"currency"`
	PaidAt        *time.Time `json:"paidAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

func FromPayment(p entities.Payment) PaymentStatusResponse {
	res := PaymentStatusResponse{
		PaymentID:     p.ID,
		ReservationID: p.ReservationID,
		Status:        string(p.Status),
		Provider:      string(p.Provider),
		GrossAmount:   p.GrossAmount,
		Currency:      p.Currency,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	if p.Status == entities.PaymentStatusPaid {
		res.PaidAt = p.WebhookReceivedAt
	}
	return res
}

type WebhookAckResponse struct {
	Received      bool   `json:"received"`
	Outcome       string `json:"outcome"`
	PaymentID     string `json:"paymentId,omitempty"`
	PaymentStatus string `json:"paymentStatus,omitempty"`
}

// FromWebhookAck leaves the payout outcome out of the provider-facing body.
func FromWebhookAck(a usecase.WebhookAck) WebhookAckResponse {
	return WebhookAckResponse{
		Received:      true,
		Outcome:       string(a.Outcome),
		PaymentID:     a.PaymentID,
		PaymentStatus: string(a.PaymentStatus),
	}
}
