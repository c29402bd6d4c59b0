package bootstrap

import (
	"net/http"

	"arena_payments/internal/config"
	"arena_payments/internal/domain/entities"
	"arena_payments/internal/infrastructure/payments"
	"arena_payments/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Providers are the adapters that could be built from the current configuration.
// A provider with missing credentials is left out and logged, not fatal.
type Providers struct {
	Gateways []interfaces.ICheckoutGateway
	Checkout interfaces.ICheckoutGateway
	Channels []interfaces.IPayoutChannel
}

func BuildProviders(cfg *config.Config, httpClient *http.Client, log *zap.Logger) Providers {
	var out Providers

	hostedOpts := payments.HostedCheckoutOptions{
		BaseURL:       cfg.HostedCheckout.BaseURL,
		APIKey:        cfg.HostedCheckout.APIKey,
		APIToken:      cfg.HostedCheckout.APIToken,
		WebhookSecret: cfg.HostedCheckout.WebhookSecret,
		ReturnURL:     cfg.HostedCheckout.ReturnURL,
		CancelURL:     cfg.HostedCheckout.CancelURL,
		CallbackURL:   cfg.HostedCheckout.CallbackURL,
		StoreName:     cfg.HostedCheckout.StoreName,
		Currency:      cfg.Currency,
		Exponent:      cfg.CurrencyExponent,
	}
	rule := payments.MobileRule{
		CountryCode:    cfg.Mobile.CountryCode,
		Prefixes:       cfg.Mobile.Prefixes,
		NationalLength: cfg.Mobile.NationalLength,
	}

	if gw, err := payments.NewHostedCheckoutGateway(hostedOpts, httpClient, log); err != nil {
		log.Warn("hosted checkout gateway not configured", zap.Error(err))
	} else {
		out.Gateways = append(out.Gateways, gw)
	}

	mp, err := payments.NewMercadoPagoGateway(payments.MercadoPagoOptions{
		AccessToken:     cfg.MercadoPago.AccessToken,
		WebhookSecret:   cfg.MercadoPago.WebhookSecret,
		NotificationURL: cfg.MercadoPago.NotificationURL,
		BackURL:         cfg.MercadoPago.BackURL,
		Currency:        cfg.Currency,
		Exponent:        cfg.CurrencyExponent,
		Mock:            cfg.MercadoPago.Mock,
	}, httpClient, log)
	if err != nil {
		log.Warn("mercado pago gateway not configured", zap.Error(err))
	} else {
		out.Gateways = append(out.Gateways, mp)
	}

	for _, gw := range out.Gateways {
		if gw.Provider() == entities.Provider(cfg.CheckoutProvider) {
			out.Checkout = gw
		}
	}
	if out.Checkout == nil {
		log.Error("checkout provider unavailable, checkout requests will fail", zap.String("provider", cfg.CheckoutProvider))
	}

	if ch, err := payments.NewWalletPushChannel(payments.WalletPushOptions{
		BaseURL:  cfg.WalletPushA.BaseURL,
		APIKey:   cfg.WalletPushA.APIKey,
		Currency: cfg.Currency,
		Exponent: cfg.CurrencyExponent,
	}, rule, httpClient, log); err != nil {
		log.Warn("wallet push A channel not configured", zap.Error(err))
	} else {
		out.Channels = append(out.Channels, ch)
	}

	if ch, err := payments.NewHostedDisbursementChannel(hostedOpts, rule, httpClient, log); err != nil {
		log.Warn("wallet push B channel not configured", zap.Error(err))
	} else {
		out.Channels = append(out.Channels, ch)
	}

	return out
}
