package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"testing"

	"arena_payments/internal/domain/entities"
	"arena_payments/internal/usecase/interfaces"
)

func TestMercadoPagoGateway_ExtractToken(t *testing.T) {
	gw, err := NewMercadoPagoGateway(MercadoPagoOptions{Mock: true}, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "string id", body: `{"type":"payment","data":{"id":"123456"}}`, want: "123456"},
		{name: "numeric id", body: `{"type":"payment","data":{"id":123456}}`, want: "123456"},
		{name: "other topic", body: `{"type":"plan","data":{"id":"9"}}`, want: ""},
		{name: "no data", body: `{"action":"payment.updated"}`, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := gw.ExtractToken([]byte(tt.body))
			if err != nil || got != tt.want {
				t.Fatalf("got %q err=%v, want %q", got, err, tt.want)
			}
		})
	}
}

func TestMercadoPagoGateway_VerifyWebhook(t *testing.T) {
	gw, _ := NewMercadoPagoGateway(MercadoPagoOptions{Mock: true, WebhookSecret: "mpsec"}, nil, nil)
	body := []byte(`{"type":"payment","data":{"id":"123456"}}`)

	sign := func(manifest string) string {
		mac := hmac.New(sha256.New, []byte("mpsec"))
		mac.Write([]byte(manifest))
		return hex.EncodeToString(mac.Sum(nil))
	}
	headers := func(sig string) http.Header {
		h := http.Header{}
		h.Set("X-Signature", sig)
		h.Set("X-Request-Id", "req-1")
		return h
	}

	good := "ts=1704908010,v1=" + sign("id:123456;request-id:req-1;ts:1704908010;")
	if err := gw.VerifyWebhook(body, headers(good)); err != nil {
		t.Fatalf("expected valid signature, got %v", err)
	}

	wrongTS := "ts=1704908011,v1=" + sign("id:123456;request-id:req-1;ts:1704908010;")
	if err := gw.VerifyWebhook(body, headers(wrongTS)); !errors.Is(err, entities.ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
	if err := gw.VerifyWebhook(body, headers("garbage")); !errors.Is(err, entities.ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature for malformed header, got %v", err)
	}

	unsigned, _ := NewMercadoPagoGateway(MercadoPagoOptions{Mock: true}, nil, nil)
	if err := unsigned.VerifyWebhook(body, headers(good)); !errors.Is(err, entities.ErrWebhookSecretMissing) {
		t.Fatalf("expected ErrWebhookSecretMissing, got %v", err)
	}
}

func TestMercadoPagoGateway_Mock(t *testing.T) {
	gw, _ := NewMercadoPagoGateway(MercadoPagoOptions{Mock: true}, nil, nil)

	inv, err := gw.CreateInvoice(context.Background(), interfaces.InvoiceRequest{ClientReference: "cr_1", Amount: 10000})
	if err != nil || inv.Token == "" || inv.CheckoutURL == "" {
		t.Fatalf("unexpected invoice: %+v err=%v", inv, err)
	}
	conf, err := gw.ConfirmStatus(context.Background(), inv.Token)
	if err != nil || conf.Status != entities.ProviderStatusSucceeded || conf.Token != inv.Token {
		t.Fatalf("unexpected confirmation: %+v err=%v", conf, err)
	}
}

func TestNewMercadoPagoGateway_MissingToken(t *testing.T) {
	if _, err := NewMercadoPagoGateway(MercadoPagoOptions{}, nil, nil); !errors.Is(err, entities.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}
