package response

import (
	"errors"
	"testing"
	"time"

	"arena_payments/internal/domain/entities"
	"arena_payments/internal/usecase"
)

func TestFromPayment(t *testing.T) {
	now := time.Now().UTC()

	t.Run("paid exposes paid at", func(t *testing.T) {
		p := entities.Payment{
			ID:                "pay-1",
			ReservationID:     "res-1",
			Status:            entities.PaymentStatusPaid,
			Provider:          entities.ProviderHostedCheckout,
			ProviderToken:     "secret-token",
			GrossAmount:       10000,
			Currency:          "XOF",
			WebhookReceivedAt: &now,
		}
		res := FromPayment(p)
		if res.PaymentID != "pay-1" || res.ReservationID != "res-1" || res.Status != "paid" {
			t.Fatalf("unexpected fields: %+v", res)
		}
		if res.PaidAt == nil || !res.PaidAt.Equal(now) {
			t.Fatalf("expected paid at %v, got %v", now, res.PaidAt)
		}
	})

	t.Run("failed has no paid at", func(t *testing.T) {
		res := FromPayment(entities.Payment{ID: "pay-2", Status: entities.PaymentStatusFailed, WebhookReceivedAt: &now})
		if res.PaidAt != nil {
			t.Fatalf("expected nil paid at, got %v", res.PaidAt)
		}
	})
}

func TestFromCheckoutSession(t *testing.T) {
	res := FromCheckoutSession(usecase.CheckoutSession{
		PaymentID:   "pay-1",
		CheckoutURL: "https://pay.example/tok",
		Provider:    entities.ProviderMercadoPago,
		GrossAmount: 10000,
		PlatformFee: 1000,
		NetToOwner:  9000,
	})
	if res.PaymentID != "pay-1" || res.CheckoutURL != "https://pay.example/tok" || res.Provider != "mercadopago" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.PlatformFee+res.NetToOwner != res.GrossAmount {
		t.Fatalf("split does not add up: %+v", res)
	}
}

func TestFromWebhookAck(t *testing.T) {
	res := FromWebhookAck(usecase.WebhookAck{
		Outcome:       usecase.WebhookOutcomePaid,
		PaymentID:     "pay-1",
		PaymentStatus: entities.PaymentStatusPaid,
		Payout:        entities.DispatchOutcomeFailed,
	})
	if !res.Received || res.Outcome != "paid" || res.PaymentStatus != "paid" {
		t.Fatalf("unexpected ack: %+v", res)
	}
}

func TestFromDispatchResult(t *testing.T) {
	t.Run("with payout and error", func(t *testing.T) {
		res := FromDispatchResult(entities.DispatchResult{
			Outcome: entities.DispatchOutcomeFailed,
			Payout:  entities.Payout{ID: "po-1", Status: entities.PayoutStatusFailed, Retryable: true},
			Err:     errors.New("provider down"),
		})
		if res.Outcome != "failed" || res.Payout == nil || res.Payout.ID != "po-1" || res.Error != "provider down" {
			t.Fatalf("unexpected response: %+v", res)
		}
	})

	t.Run("skipped has no payout", func(t *testing.T) {
		res := FromDispatchResult(entities.DispatchResult{Outcome: entities.DispatchOutcomeSkipped})
		if res.Payout != nil || res.Error != "" {
			t.Fatalf("unexpected response: %+v", res)
		}
	})
}

func TestFromPayouts(t *testing.T) {
	res := FromPayouts(nil)
	if res == nil || len(res) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", res)
	}
	res = FromPayouts([]entities.Payout{{ID: "a"}, {ID: "b"}})
	if len(res) != 2 || res[1].ID != "b" {
		t.Fatalf("unexpected payouts: %+v", res)
	}
}
