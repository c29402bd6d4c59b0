package bootstrap

import (
	"testing"

	"arena_payments/internal/config"
	"arena_payments/internal/domain/entities"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func baseConfig() *config.Config {
	return &config.Config{
		Currency:         "XOF",
		CheckoutProvider: string(entities.ProviderHostedCheckout),
		Mobile:           config.MobileConfig{CountryCode: "221", Prefixes: []string{"77"}, NationalLength: 9},
	}
}

func TestBuildProviders(t *testing.T) {
	t.Run("nothing configured", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		p := BuildProviders(baseConfig(), nil, zap.New(core))

		if len(p.Gateways) != 0 || len(p.Channels) != 0 || p.Checkout != nil {
			t.Fatalf("expected no providers, got %+v", p)
		}
		if logs.FilterMessage("checkout provider unavailable, checkout requests will fail").Len() != 1 {
			t.Fatal("expected checkout provider error log")
		}
	})

	t.Run("hosted checkout covers checkout and wallet push B", func(t *testing.T) {
		cfg := baseConfig()
		cfg.HostedCheckout = config.HostedCheckoutConfig{BaseURL: "https://hosted.example", APIKey: "k", APIToken: "t"}

		p := BuildProviders(cfg, nil, zap.NewNop())

		if p.Checkout == nil || p.Checkout.Provider() != entities.ProviderHostedCheckout {
			t.Fatalf("expected hosted checkout gateway, got %+v", p.Checkout)
		}
		if len(p.Channels) != 1 || p.Channels[0].Channel() != entities.PayoutChannelWalletPushB {
			t.Fatalf("expected only wallet push B, got %+v", p.Channels)
		}
	})

	t.Run("checkout provider selects mercado pago", func(t *testing.T) {
		cfg := baseConfig()
		cfg.CheckoutProvider = string(entities.ProviderMercadoPago)
		cfg.HostedCheckout = config.HostedCheckoutConfig{APIKey: "k", APIToken: "t"}
		cfg.MercadoPago = config.MercadoPagoConfig{Mock: true}
		cfg.WalletPushA = config.WalletPushConfig{BaseURL: "https://wallet.example", APIKey: "w"}

		p := BuildProviders(cfg, nil, zap.NewNop())

		if len(p.Gateways) != 2 {
			t.Fatalf("expected both gateways for webhooks, got %d", len(p.Gateways))
		}
		if p.Checkout == nil || p.Checkout.Provider() != entities.ProviderMercadoPago {
			t.Fatalf("expected mercado pago checkout, got %+v", p.Checkout)
		}
		if len(p.Channels) != 2 {
			t.Fatalf("expected two payout channels, got %d", len(p.Channels))
		}
	})
}
