package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"arena_payments/internal/domain/entities"
	"arena_payments/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const mercadoPagoName = "mercadopago"

type MercadoPagoOptions struct {
	AccessToken     string
	WebhookSecret   string
	NotificationURL string
	BackURL         string
	Currency        string
	Exponent        int32
	// Mock answers every call locally with an approved payment. Never enabled in production.
	Mock bool
}

// MercadoPagoGateway runs checkout through Mercado Pago preferences. Notifications carry the
// payment id, so confirmations report the preference's external reference for lookup.
type MercadoPagoGateway struct {
	opts        MercadoPagoOptions
	preferences preference.Client
	payments    payment.Client
	log         *zap.Logger
}

var _ interfaces.ICheckoutGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(opts MercadoPagoOptions, httpClient *http.Client, log *zap.Logger) (*MercadoPagoGateway, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("gateway.mercadopago")

	if opts.Mock {
		log.Warn("mock mode enabled, payments are approved without calling mercado pago")
		return &MercadoPagoGateway{opts: opts, log: log}, nil
	}
	if opts.AccessToken == "" {
		return nil, missingCredentials(mercadoPagoName)
	}

	var cfgOpts []config.Option
	if httpClient != nil {
		cfgOpts = append(cfgOpts, config.WithHTTPClient(httpClient))
	}
	cfg, err := config.New(opts.AccessToken, cfgOpts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", mercadoPagoName, entities.ErrConfiguration, err)
	}
	log.Info("mercado pago client initialized")

	return &MercadoPagoGateway{
		opts:        opts,
		preferences: preference.NewClient(cfg),
		payments:    payment.NewClient(cfg),
		log:         log,
	}, nil
}

func (g *MercadoPagoGateway) Provider() entities.Provider {
	return entities.ProviderMercadoPago
}

func (g *MercadoPagoGateway) CreateInvoice(ctx context.Context, req interfaces.InvoiceRequest) (interfaces.Invoice, error) {
	if g.opts.Mock {
		id := "mock-pref-" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		raw, _ := json.Marshal(map[string]any{"id": id, "external_reference": req.ClientReference})
		return interfaces.Invoice{Token: id, CheckoutURL: "https://www.mercadopago.com/checkout/v1/redirect?pref_id=" + id, Raw: raw}, nil
	}

	currency := req.Currency
	if currency == "" {
		currency = g.opts.Currency
	}
	request := preference.Request{
		Items: []preference.ItemRequest{{
			ID:          req.ReservationID,
			Title:       req.Description,
			Quantity:    1,
			CurrencyID:  currency,
			UnitPrice:   decimal.New(req.Amount, -g.opts.Exponent).InexactFloat64(),
			Description: req.Description,
		}},
		ExternalReference: req.ClientReference,
		NotificationURL:   g.opts.NotificationURL,
		Metadata: map[string]any{
			"payment_id":     req.PaymentID,
			"reservation_id": req.ReservationID,
		},
	}
	if g.opts.BackURL != "" {
		request.BackURLs = &preference.BackURLsRequest{
			Success: g.opts.BackURL,
			Pending: g.opts.BackURL,
			Failure: g.opts.BackURL,
		}
		request.AutoReturn = "approved"
	}

	resp, err := g.preferences.Create(ctx, request)
	if err != nil {
		g.log.Error("preference create failed", zap.String("client_reference", req.ClientReference), zap.Error(err))
		return interfaces.Invoice{}, fmt.Errorf("%s: %w: %v", mercadoPagoName, entities.ErrProviderUnavailable, err)
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return interfaces.Invoice{}, err
	}

	g.log.Info("preference created", zap.String("client_reference", req.ClientReference), zap.String("preference_id", resp.ID))
	return interfaces.Invoice{Token: resp.ID, CheckoutURL: resp.InitPoint, Raw: raw}, nil
}

type mercadoPagoNotification struct {
	Type   string `json:"type"`
	Action string `json:"action"`
	Data   struct {
		ID json.RawMessage `json:"id"`
	} `json:"data"`
}

// ExtractToken returns data.id of a payment notification. Other topics carry no token.
func (g *MercadoPagoGateway) ExtractToken(payload []byte) (string, error) {
	var n mercadoPagoNotification
	if err := json.Unmarshal(payload, &n); err != nil {
		return "", fmt.Errorf("%w: webhook body is not json", entities.ErrValidation)
	}
	if n.Type != "" && n.Type != "payment" {
		return "", nil
	}
	return rawID(n.Data.ID), nil
}

// VerifyWebhook checks the x-signature header ("ts=...,v1=...") against the manifest
// id:{data.id};request-id:{x-request-id};ts:{ts};
func (g *MercadoPagoGateway) VerifyWebhook(payload []byte, headers http.Header) error {
	if g.opts.WebhookSecret == "" {
		return entities.ErrWebhookSecretMissing
	}

	var ts, v1 string
	for _, part := range strings.Split(headers.Get("X-Signature"), ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch k {
		case "ts":
			ts = v
		case "v1":
			v1 = v
		}
	}
	if ts == "" || v1 == "" {
		return fmt.Errorf("%w: malformed x-signature header", entities.ErrInvalidSignature)
	}

	id, err := g.ExtractToken(payload)
	if err != nil {
		return err
	}
	manifest := "id:" + strings.ToLower(id) + ";request-id:" + headers.Get("X-Request-Id") + ";ts:" + ts + ";"

	got, err := hex.DecodeString(v1)
	if err != nil {
		return fmt.Errorf("%w: malformed v1 signature", entities.ErrInvalidSignature)
	}
	mac := hmac.New(sha256.New, []byte(g.opts.WebhookSecret))
	mac.Write([]byte(manifest))
	if !hmac.Equal(got, mac.Sum(nil)) {
		return entities.ErrInvalidSignature
	}
	return nil
}

func (g *MercadoPagoGateway) ConfirmStatus(ctx context.Context, token string) (interfaces.Confirmation, error) {
	if g.opts.Mock {
		raw, _ := json.Marshal(map[string]any{"id": token, "status": "approved"})
		return interfaces.Confirmation{Token: token, Status: entities.ProviderStatusSucceeded, ProviderStatus: "approved", Raw: raw}, nil
	}

	id, err := strconv.Atoi(token)
	if err != nil {
		return interfaces.Confirmation{}, fmt.Errorf("%w: mercado pago payment id %q is not numeric", entities.ErrValidation, token)
	}

	resp, err := g.payments.Get(ctx, id)
	if err != nil {
		return interfaces.Confirmation{}, fmt.Errorf("%s: %w: %v", mercadoPagoName, entities.ErrProviderUnavailable, err)
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return interfaces.Confirmation{}, err
	}

	return interfaces.Confirmation{
		Token:           strconv.Itoa(resp.ID),
		ClientReference: resp.ExternalReference,
		Status:          entities.NormalizeProviderStatus(resp.Status),
		ProviderStatus:  resp.Status,
		Amount:          toMinorUnits(decimal.NewFromFloat(resp.TransactionAmount), g.opts.Exponent),
		Raw:             raw,
	}, nil
}

// rawID reads an id that providers send either as a JSON string or a JSON number.
func rawID(raw json.RawMessage) string {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return ""
	}
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return strings.TrimSpace(str)
	}
	return s
}
