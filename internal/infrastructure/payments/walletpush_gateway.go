package payments

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"arena_payments/internal/domain/entities"
	"arena_payments/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const walletPushName = "wallet_push_a"

type WalletPushOptions struct {
	BaseURL  string
	APIKey   string
	Currency string
	Exponent int32
}

// WalletPushChannel sends payouts through the wallet push API. The provider deduplicates
// on the Idempotency-Key header, so retries of the same payout are safe end to end.
type WalletPushChannel struct {
	opts   WalletPushOptions
	rule   MobileRule
	client *providerClient
	log    *zap.Logger
}

var _ interfaces.IPayoutChannel = (*WalletPushChannel)(nil)

func NewWalletPushChannel(opts WalletPushOptions, rule MobileRule, httpClient *http.Client, log *zap.Logger) (*WalletPushChannel, error) {
	if opts.APIKey == "" {
		return nil, missingCredentials(walletPushName)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &WalletPushChannel{
		opts: opts,
		rule: rule,
		client: &providerClient{
			name:    walletPushName,
			baseURL: strings.TrimRight(opts.BaseURL, "/"),
			http:    defaultHTTPClient(httpClient),
			headers: func(h http.Header) {
				h.Set("Authorization", "Bearer "+opts.APIKey)
			},
		},
		log: log.Named("channel.wallet_push_a"),
	}, nil
}

func (c *WalletPushChannel) Channel() entities.PayoutChannel {
	return entities.PayoutChannelWalletPushA
}

type walletPayoutRequest struct {
	Currency        string `json:"currency"`
	ReceiveAmount   string `json:"receive_amount"`
	Mobile          string `json:"mobile"`
	ClientReference string `json:"client_reference,omitempty"`
	PaymentReason   string `json:"payment_reason,omitempty"`
}

type walletPayoutResponse struct {
	ID              string `json:"id"`
	Status          string `json:"status"`
	Mobile          string `json:"mobile"`
	ClientReference string `json:"client_reference"`
	PayoutError     *struct {
		ErrorCode    string `json:"error_code"`
		ErrorMessage string `json:"error_message"`
	} `json:"payout_error,omitempty"`
}

func (c *WalletPushChannel) CreatePayout(ctx context.Context, req interfaces.PayoutRequest) (interfaces.PayoutResult, error) {
	_, e164, err := c.rule.Normalize(req.Recipient)
	if err != nil {
		return interfaces.PayoutResult{}, err
	}

	currency := req.Currency
	if currency == "" {
		currency = c.opts.Currency
	}

	var out walletPayoutResponse
	raw, err := c.client.do(ctx, http.MethodPost, "/v1/payout", walletPayoutRequest{
		Currency:        currency,
		ReceiveAmount:   toMajorUnits(req.Amount, c.opts.Exponent),
		Mobile:          e164,
		ClientReference: req.IdempotencyKey,
		PaymentReason:   req.Reason,
	}, http.Header{"Idempotency-Key": []string{req.IdempotencyKey}}, &out)
	if err != nil {
		return interfaces.PayoutResult{}, err
	}

	fields := []zap.Field{zap.String("idempotency_key", req.IdempotencyKey), zap.String("provider_id", out.ID), zap.String("status", out.Status)}
	if out.PayoutError != nil {
		fields = append(fields, zap.String("error_code", out.PayoutError.ErrorCode))
	}
	c.log.Info("payout submitted", fields...)

	return interfaces.PayoutResult{
		ProviderID:     out.ID,
		Status:         entities.NormalizeProviderStatus(out.Status),
		ProviderStatus: out.Status,
		Raw:            raw,
	}, nil
}

func (c *WalletPushChannel) GetStatus(ctx context.Context, providerID string) (interfaces.PayoutResult, error) {
	var out walletPayoutResponse
	raw, err := c.client.do(ctx, http.MethodGet, "/v1/payout/"+url.PathEscape(providerID), nil, nil, &out)
	if err != nil {
		return interfaces.PayoutResult{}, err
	}
	return interfaces.PayoutResult{
		ProviderID:     out.ID,
		Status:         entities.NormalizeProviderStatus(out.Status),
		ProviderStatus: out.Status,
		Raw:            raw,
	}, nil
}
