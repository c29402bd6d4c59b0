package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"arena_payments/internal/domain/entities"
	"arena_payments/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	hostedCheckoutName      = "hosted_checkout"
	hostedSignatureHeader   = "X-Signature"
	hostedResponseCodeOK    = "00"
	hostedDisburseWithdraw  = "wallet"
	hostedCheckoutPathNew   = "/checkout-invoice/create"
	hostedCheckoutPathCheck = "/checkout-invoice/confirm/"
	hostedDisbursePathNew   = "/disburse/submit"
	hostedDisbursePathCheck = "/disburse/status/"
)

type HostedCheckoutOptions struct {
	BaseURL       string
	APIKey        string
	APIToken      string
	WebhookSecret string
	ReturnURL     string
	CancelURL     string
	CallbackURL   string
	StoreName     string
	Currency      string
	Exponent      int32
}

// HostedCheckoutGateway talks to the hosted payment page provider: invoices for checkout
// and token confirmation for webhooks.
type HostedCheckoutGateway struct {
	opts   HostedCheckoutOptions
	client *providerClient
	log    *zap.Logger
}

var _ interfaces.ICheckoutGateway = (*HostedCheckoutGateway)(nil)

func NewHostedCheckoutGateway(opts HostedCheckoutOptions, httpClient *http.Client, log *zap.Logger) (*HostedCheckoutGateway, error) {
	if opts.APIKey == "" || opts.APIToken == "" {
		return nil, missingCredentials(hostedCheckoutName)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &HostedCheckoutGateway{
		opts:   opts,
		client: newHostedClient(opts, httpClient),
		log:    log.Named("gateway.hosted_checkout"),
	}, nil
}

func newHostedClient(opts HostedCheckoutOptions, httpClient *http.Client) *providerClient {
	return &providerClient{
		name:    hostedCheckoutName,
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		http:    defaultHTTPClient(httpClient),
		headers: func(h http.Header) {
			h.Set("X-Api-Key", opts.APIKey)
			h.Set("X-Api-Token", opts.APIToken)
		},
	}
}

func (g *HostedCheckoutGateway) Provider() entities.Provider {
	return entities.ProviderHostedCheckout
}

type hostedInvoiceRequest struct {
	Invoice struct {
		TotalAmount string `json:"total_amount"`
		Description string `json:"description"`
	} `json:"invoice"`
	Store struct {
		Name string `json:"name"`
	} `json:"store"`
	Actions struct {
		ReturnURL   string `json:"return_url,omitempty"`
		CancelURL   string `json:"cancel_url,omitempty"`
		CallbackURL string `json:"callback_url,omitempty"`
	} `json:"actions"`
	CustomData map[string]string `json:"custom_data"`
}

type hostedInvoiceResponse struct {
	ResponseCode string `json:"response_code"`
	ResponseText string `json:"response_text"`
	Description  string `json:"description"`
	Token        string `json:"token"`
}

func (g *HostedCheckoutGateway) CreateInvoice(ctx context.Context, req interfaces.InvoiceRequest) (interfaces.Invoice, error) {
	var body hostedInvoiceRequest
	body.Invoice.TotalAmount = toMajorUnits(req.Amount, g.opts.Exponent)
	body.Invoice.Description = req.Description
	body.Store.Name = g.opts.StoreName
	body.Actions.ReturnURL = g.opts.ReturnURL
	body.Actions.CancelURL = g.opts.CancelURL
	body.Actions.CallbackURL = g.opts.CallbackURL
	body.CustomData = map[string]string{
		"client_reference": req.ClientReference,
		"payment_id":       req.PaymentID,
		"reservation_id":   req.ReservationID,
	}

	var out hostedInvoiceResponse
	raw, err := g.client.do(ctx, http.MethodPost, hostedCheckoutPathNew, body, nil, &out)
	if err != nil {
		g.log.Error("create invoice failed", zap.String("client_reference", req.ClientReference), zap.Error(err))
		return interfaces.Invoice{}, err
	}
	if out.ResponseCode != hostedResponseCodeOK {
		return interfaces.Invoice{}, fmt.Errorf("%s: %w: response_code %q: %s", hostedCheckoutName, entities.ErrProviderRejected, out.ResponseCode, out.Description)
	}

	g.log.Info("invoice created", zap.String("client_reference", req.ClientReference), zap.String("token", out.Token))
	return interfaces.Invoice{Token: out.Token, CheckoutURL: out.ResponseText, Raw: raw}, nil
}

type hostedWebhookBody struct {
	Token string `json:"token"`
	Data  struct {
		Token string `json:"token"`
	} `json:"data"`
	Invoice struct {
		Token string `json:"token"`
	} `json:"invoice"`
}

// ExtractToken accepts the notification shapes the provider has used: data.token, token and invoice.token.
func (g *HostedCheckoutGateway) ExtractToken(payload []byte) (string, error) {
	var body hostedWebhookBody
	if err := json.Unmarshal(payload, &body); err != nil {
		return "", fmt.Errorf("%w: webhook body is not json", entities.ErrValidation)
	}
	for _, t := range []string{body.Data.Token, body.Token, body.Invoice.Token} {
		if t = strings.TrimSpace(t); t != "" {
			return t, nil
		}
	}
	return "", nil
}

func (g *HostedCheckoutGateway) VerifyWebhook(payload []byte, headers http.Header) error {
	return verifyHexHMAC(g.opts.WebhookSecret, payload, headers.Get(hostedSignatureHeader))
}

type hostedConfirmResponse struct {
	ResponseCode string `json:"response_code"`
	ResponseText string `json:"response_text"`
	Status       string `json:"status"`
	Invoice      struct {
		Token       string          `json:"token"`
		Status      string          `json:"status"`
		TotalAmount decimal.Decimal `json:"total_amount"`
	} `json:"invoice"`
	CustomData map[string]any `json:"custom_data"`
}

func (g *HostedCheckoutGateway) ConfirmStatus(ctx context.Context, token string) (interfaces.Confirmation, error) {
	var out hostedConfirmResponse
	raw, err := g.client.do(ctx, http.MethodGet, hostedCheckoutPathCheck+url.PathEscape(token), nil, nil, &out)
	if err != nil {
		return interfaces.Confirmation{}, err
	}
	if out.ResponseCode != "" && out.ResponseCode != hostedResponseCodeOK {
		return interfaces.Confirmation{}, fmt.Errorf("%s: %w: confirm response_code %q: %s", hostedCheckoutName, entities.ErrProviderRejected, out.ResponseCode, out.ResponseText)
	}

	status := out.Status
	if status == "" {
		status = out.Invoice.Status
	}
	ref, _ := out.CustomData["client_reference"].(string)
	confirmedToken := out.Invoice.Token
	if confirmedToken == "" {
		confirmedToken = token
	}

	return interfaces.Confirmation{
		Token:           confirmedToken,
		ClientReference: ref,
		Status:          entities.NormalizeProviderStatus(status),
		ProviderStatus:  status,
		Amount:          toMinorUnits(out.Invoice.TotalAmount, g.opts.Exponent),
		Raw:             raw,
	}, nil
}

// HostedDisbursementChannel pushes payouts to mobile wallets through the hosted checkout
// provider. The provider has no idempotency support; the key travels as client_reference
// for reconciliation only.
type HostedDisbursementChannel struct {
	rule     MobileRule
	exponent int32
	client   *providerClient
	log      *zap.Logger
}

var _ interfaces.IPayoutChannel = (*HostedDisbursementChannel)(nil)

func NewHostedDisbursementChannel(opts HostedCheckoutOptions, rule MobileRule, httpClient *http.Client, log *zap.Logger) (*HostedDisbursementChannel, error) {
	if opts.APIKey == "" || opts.APIToken == "" {
		return nil, missingCredentials(hostedCheckoutName)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &HostedDisbursementChannel{
		rule:     rule,
		exponent: opts.Exponent,
		client:   newHostedClient(opts, httpClient),
		log:      log.Named("channel.wallet_push_b"),
	}, nil
}

func (c *HostedDisbursementChannel) Channel() entities.PayoutChannel {
	return entities.PayoutChannelWalletPushB
}

type hostedDisburseRequest struct {
	AccountAlias    string `json:"account_alias"`
	Amount          string `json:"amount"`
	WithdrawMode    string `json:"withdraw_mode"`
	ClientReference string `json:"client_reference"`
	Description     string `json:"description,omitempty"`
}

type hostedDisburseResponse struct {
	ResponseCode  string `json:"response_code"`
	ResponseText  string `json:"response_text"`
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
}

func (c *HostedDisbursementChannel) CreatePayout(ctx context.Context, req interfaces.PayoutRequest) (interfaces.PayoutResult, error) {
	national, _, err := c.rule.Normalize(req.Recipient)
	if err != nil {
		return interfaces.PayoutResult{}, err
	}

	var out hostedDisburseResponse
	raw, err := c.client.do(ctx, http.MethodPost, hostedDisbursePathNew, hostedDisburseRequest{
		AccountAlias:    national,
		Amount:          toMajorUnits(req.Amount, c.exponent),
		WithdrawMode:    hostedDisburseWithdraw,
		ClientReference: req.IdempotencyKey,
		Description:     req.Reason,
	}, nil, &out)
	if err != nil {
		return interfaces.PayoutResult{}, err
	}
	if out.ResponseCode != hostedResponseCodeOK {
		return interfaces.PayoutResult{}, fmt.Errorf("%s: %w: disburse response_code %q: %s", hostedCheckoutName, entities.ErrProviderRejected, out.ResponseCode, out.ResponseText)
	}

	c.log.Info("disbursement submitted", zap.String("idempotency_key", req.IdempotencyKey), zap.String("transaction_id", out.TransactionID), zap.String("status", out.Status))
	return interfaces.PayoutResult{
		ProviderID:     out.TransactionID,
		Status:         entities.NormalizeProviderStatus(out.Status),
		ProviderStatus: out.Status,
		Raw:            raw,
	}, nil
}

func (c *HostedDisbursementChannel) GetStatus(ctx context.Context, providerID string) (interfaces.PayoutResult, error) {
	var out hostedDisburseResponse
	raw, err := c.client.do(ctx, http.MethodGet, hostedDisbursePathCheck+url.PathEscape(providerID), nil, nil, &out)
	if err != nil {
		return interfaces.PayoutResult{}, err
	}
	return interfaces.PayoutResult{
		ProviderID:     providerID,
		Status:         entities.NormalizeProviderStatus(out.Status),
		ProviderStatus: out.Status,
		Raw:            raw,
	}, nil
}

// verifyHexHMAC checks a hex encoded HMAC-SHA256 of the raw body.
func verifyHexHMAC(secret string, payload []byte, signature string) error {
	if secret == "" {
		return entities.ErrWebhookSecretMissing
	}
	got, err := hex.DecodeString(strings.TrimSpace(strings.TrimPrefix(signature, "sha256=")))
	if err != nil || len(got) == 0 {
		return fmt.Errorf("%w: malformed signature header", entities.ErrInvalidSignature)
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	if !hmac.Equal(got, mac.Sum(nil)) {
		return entities.ErrInvalidSignature
	}
	return nil
}
