package response

import (
	"time"

	"arena_payments/internal/domain/entities"
	"arena_payments/internal/usecase/interfaces"
)

type PayoutResponse struct {
	ID             string     `json:"id"`
	PaymentID      string     `json:"paymentId"`
	FieldID        string     `json:"fieldId"`
	Channel        string     `json:"channel"`
	Amount         int64      `json:"amount"`
	Currency       string     `json:"currency"`
	Recipient      string     `json:"recipient"`
	IdempotencyKey string     `json:"idempotencyKey"`
	Status         string     `json:"status"`
	ProviderID     string     `json:"providerId,omitempty"`
	ProviderStatus string     `json:"providerStatus,omitempty"`
	ProviderError  string     `json:"providerError,omitempty"`
	RetryCount     int        `json:"retryCount"`
	Retryable      bool       `json:"retryable"`
	NextRetryAt    *time.Time `json:"nextRetryAt,omitempty"`
	SupersededBy   string     `json:"supersededBy,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`

	Live *LiveStatusResponse `json:"live,omitempty"`
}

// LiveStatusResponse is the channel's current view of a payout, fetched on demand.
type LiveStatusResponse struct {
	Status         string `json:"status"`
	ProviderStatus string `json:"providerStatus"`
	Error          string `json:"error,omitempty"`
}

func FromPayout(p entities.Payout) PayoutResponse {
	return PayoutResponse{
		ID:             p.ID,
		PaymentID:      p.PaymentID,
		FieldID:        p.FieldID,
		Channel:        string(p.Channel),
		Amount:         p.Amount,
		Currency:       p.Currency,
		Recipient:      p.Recipient,
		IdempotencyKey: p.IdempotencyKey,
		Status:         string(p.Status),
		ProviderID:     p.ProviderID,
		ProviderStatus: p.ProviderStatus,
		ProviderError:  p.ProviderError,
		RetryCount:     p.RetryCount,
		Retryable:      p.Retryable,
		NextRetryAt:    p.NextRetryAt,
		SupersededBy:   p.SupersededBy,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
		CompletedAt:    p.CompletedAt,
	}
}

func FromPayouts(ps []entities.Payout) []PayoutResponse {
	out := make([]PayoutResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPayout(p))
	}
	return out
}

func FromLiveStatus(r interfaces.PayoutResult) *LiveStatusResponse {
	return &LiveStatusResponse{Status: string(r.Status), ProviderStatus: r.ProviderStatus}
}

type DispatchResponse struct {
	Outcome string          `json:"outcome"`
	Payout  *PayoutResponse `json:"payout,omitempty"`
	Error   string          `json:"error,omitempty"`
}

func FromDispatchResult(r entities.DispatchResult) DispatchResponse {
	res := DispatchResponse{Outcome: string(r.Outcome)}
	if r.Payout.ID != "" {
		p := FromPayout(r.Payout)
		res.Payout = &p
	}
	if r.Err != nil {
		res.Error = r.Err.Error()
	}
	return res
}
