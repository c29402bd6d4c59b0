package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"arena_payments/internal/domain/entities"
	"arena_payments/internal/usecase/interfaces"
)

func TestWalletPushChannel_CreatePayout(t *testing.T) {
	rule := MobileRule{CountryCode: "221", Prefixes: []string{"70", "77", "78"}, NationalLength: 9}

	t.Run("sends idempotency key and e164 recipient", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body walletPayoutRequest
			_ = json.NewDecoder(r.Body).Decode(&body)
			if r.URL.Path != "/v1/payout" || r.Header.Get("Authorization") != "Bearer sk" || r.Header.Get("Idempotency-Key") != "po_key" {
				t.Errorf("unexpected request %s %v", r.URL.Path, r.Header)
			}
			if body.Mobile != "+221771234567" || body.ReceiveAmount != "9000" || body.Currency != "XOF" {
				t.Errorf("unexpected body %+v", body)
			}
			_, _ = w.Write([]byte(`{"id":"pt-1","status":"succeeded"}`))
		}))
		defer srv.Close()
		ch, err := NewWalletPushChannel(WalletPushOptions{BaseURL: srv.URL, APIKey: "sk", Currency: "XOF"}, rule, srv.Client(), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		res, err := ch.CreatePayout(context.Background(), interfaces.PayoutRequest{Amount: 9000, Recipient: "77 123 45 67", IdempotencyKey: "po_key"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ProviderID != "pt-1" || res.Status != entities.ProviderStatusSucceeded {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("provider failure status is reported", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"id":"pt-2","status":"failed","payout_error":{"error_code":"recipient-limit-exceeded"}}`))
		}))
		defer srv.Close()
		ch, _ := NewWalletPushChannel(WalletPushOptions{BaseURL: srv.URL, APIKey: "sk"}, rule, nil, nil)

		res, err := ch.CreatePayout(context.Background(), interfaces.PayoutRequest{Amount: 9000, Recipient: "771234567", IdempotencyKey: "po_key"})
		if err != nil || res.Status != entities.ProviderStatusFailed {
			t.Fatalf("expected failed status, got %+v err=%v", res, err)
		}
	})

	t.Run("rate limit is unavailable", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()
		ch, _ := NewWalletPushChannel(WalletPushOptions{BaseURL: srv.URL, APIKey: "sk"}, rule, nil, nil)

		_, err := ch.CreatePayout(context.Background(), interfaces.PayoutRequest{Amount: 9000, Recipient: "771234567"})
		if !errors.Is(err, entities.ErrProviderUnavailable) || calls.Load() != 1 {
			t.Fatalf("expected one call and ErrProviderUnavailable, got %v", err)
		}
	})

	t.Run("cancelled context is unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		}))
		defer srv.Close()
		ch, _ := NewWalletPushChannel(WalletPushOptions{BaseURL: srv.URL, APIKey: "sk"}, rule, nil, nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := ch.CreatePayout(ctx, interfaces.PayoutRequest{Amount: 9000, Recipient: "771234567"}); !errors.Is(err, entities.ErrProviderUnavailable) {
			t.Fatalf("expected ErrProviderUnavailable, got %v", err)
		}
	})

	t.Run("missing key", func(t *testing.T) {
		if _, err := NewWalletPushChannel(WalletPushOptions{}, rule, nil, nil); !errors.Is(err, entities.ErrConfiguration) {
			t.Fatalf("expected ErrConfiguration, got %v", err)
		}
	})
}

func TestWalletPushChannel_GetStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/v1/payout/pt-1" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"id":"pt-1","status":"processing"}`))
	}))
	defer srv.Close()
	ch, _ := NewWalletPushChannel(WalletPushOptions{BaseURL: srv.URL, APIKey: "sk"}, MobileRule{}, nil, nil)

	res, err := ch.GetStatus(context.Background(), "pt-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != entities.ProviderStatusPending || res.ProviderStatus != "processing" {
		t.Fatalf("unexpected result: %+v", res)
	}
}
