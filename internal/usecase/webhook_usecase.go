package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"arena_payments/internal/domain/entities"
	"arena_payments/internal/usecase/interfaces"

	"go.uber.org/zap"
)

type WebhookOutcome string

const (
	WebhookOutcomePaid           WebhookOutcome = "paid"
	WebhookOutcomeFailed         WebhookOutcome = "failed"
	WebhookOutcomePending        WebhookOutcome = "pending"
	WebhookOutcomeReplay         WebhookOutcome = "replay"
	WebhookOutcomeUnknownPayment WebhookOutcome = "unknown_payment"
)

// WebhookAck is returned to the HTTP layer once a notification has been handled.
type WebhookAck struct {
	Outcome       WebhookOutcome
	PaymentID     string
	PaymentStatus entities.PaymentStatus
	Payout        entities.DispatchOutcome
}

// IWebhookUseCase processes provider notifications.
//
// The notification body is never trusted for the payment outcome: the token it carries
// is re-confirmed with the provider before any state change.

type IWebhookUseCase interface {
	HandleWebhook(ctx context.Context, provider string, payload []byte, headers http.Header) (WebhookAck, error)
}

type WebhookConfig struct {
	AllowUnsigned   bool
	ProviderTimeout time.Duration
}

type WebhookUseCase struct {
	gateways     map[entities.Provider]interfaces.ICheckoutGateway
	payments     interfaces.IPaymentRepository
	reservations interfaces.IReservationRepository
	dispatcher   interfaces.IPayoutDispatcher
	publisher    interfaces.IEventPublisher
	metrics      interfaces.IMetrics
	cfg          WebhookConfig
	log          *zap.Logger
	now          func() time.Time
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

func NewWebhookUseCase(
	gateways []interfaces.ICheckoutGateway,
	payments interfaces.IPaymentRepository,
	reservations interfaces.IReservationRepository,
	dispatcher interfaces.IPayoutDispatcher,
	publisher interfaces.IEventPublisher,
	metrics interfaces.IMetrics,
	cfg WebhookConfig,
	log *zap.Logger,
) *WebhookUseCase {
	byProvider := make(map[entities.Provider]interfaces.ICheckoutGateway, len(gateways))
	for _, gw := range gateways {
		if gw != nil {
			byProvider[gw.Provider()] = gw
		}
	}
	cfg.ProviderTimeout = orDefaultTimeout(cfg.ProviderTimeout)
	return &WebhookUseCase{
		gateways:     byProvider,
		payments:     payments,
		reservations: reservations,
		dispatcher:   dispatcher,
		publisher:    orNoopPublisher(publisher),
		metrics:      orNoopMetrics(metrics),
		cfg:          cfg,
		log:          orNopLogger(log).Named("payment.webhook"),
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (u *WebhookUseCase) HandleWebhook(ctx context.Context, provider string, payload []byte, headers http.Header) (WebhookAck, error) {
	provider = strings.ToLower(strings.TrimSpace(provider))
	log := u.log.With(zap.String("provider", provider))

	gw, ok := u.gateways[entities.Provider(provider)]
	if !ok {
		log.Warn("webhook for unknown provider")
		u.metrics.WebhookProcessed(provider, "unknown_provider")
		return WebhookAck{}, ErrUnknownProvider
	}

	token, err := gw.ExtractToken(payload)
	token = strings.TrimSpace(token)
	if err != nil || token == "" {
		log.Warn("webhook without provider token", zap.Int("payload_len", len(payload)), zap.Error(err))
		u.metrics.WebhookProcessed(provider, "missing_token")
		return WebhookAck{}, ErrMissingProviderToken
	}
	log = log.With(zap.String("provider_token", token))

	if err := u.verifySignature(gw, payload, headers, log); err != nil {
		u.metrics.WebhookProcessed(provider, "rejected")
		return WebhookAck{}, err
	}

	callCtx, cancel := context.WithTimeout(ctx, u.cfg.ProviderTimeout)
	conf, err := gw.ConfirmStatus(callCtx, token)
	cancel()
	if errors.Is(err, entities.ErrProviderRejected) {
		// The provider does not know this token; redelivering the webhook cannot change that.
		log.Warn("provider rejected status confirmation", zap.Error(err))
		u.metrics.WebhookProcessed(provider, string(WebhookOutcomeUnknownPayment))
		return WebhookAck{Outcome: WebhookOutcomeUnknownPayment}, nil
	}
	if err != nil {
		log.Error("status confirmation failed", zap.Error(err))
		u.metrics.WebhookProcessed(provider, "confirm_failed")
		return WebhookAck{}, providerError("confirm status", err)
	}

	payment, err := u.findPayment(ctx, gw.Provider(), token, conf)
	if err != nil {
		log.Error("payment lookup failed", zap.Error(err))
		u.metrics.WebhookProcessed(provider, "error")
		return WebhookAck{}, err
	}
	if payment.ID == "" {
		log.Warn("webhook for unknown payment", zap.String("client_reference", conf.ClientReference))
		u.metrics.WebhookProcessed(provider, string(WebhookOutcomeUnknownPayment))
		return WebhookAck{Outcome: WebhookOutcomeUnknownPayment}, nil
	}
	log = log.With(zap.String("payment_id", payment.ID))

	if payment.Status.IsTerminal() {
		log.Info("webhook replay ignored", zap.String("status", string(payment.Status)))
		u.metrics.WebhookProcessed(provider, string(WebhookOutcomeReplay))
		return WebhookAck{Outcome: WebhookOutcomeReplay, PaymentID: payment.ID, PaymentStatus: payment.Status}, nil
	}

	if conf.Amount > 0 && conf.Amount != payment.GrossAmount {
		log.Warn("confirmed amount differs from payment amount", zap.Int64("confirmed", conf.Amount), zap.Int64("expected", payment.GrossAmount))
	}

	var ack WebhookAck
	switch conf.Status {
	case entities.ProviderStatusSucceeded:
		ack, err = u.settle(ctx, payment, conf, payload, entities.PaymentStatusPaid, log)
	case entities.ProviderStatusFailed:
		ack, err = u.settle(ctx, payment, conf, payload, entities.PaymentStatusFailed, log)
	default:
		log.Info("payment still pending at provider", zap.String("provider_status", conf.ProviderStatus))
		ack = WebhookAck{Outcome: WebhookOutcomePending, PaymentID: payment.ID, PaymentStatus: payment.Status}
	}
	if err != nil {
		u.metrics.WebhookProcessed(provider, "error")
		return WebhookAck{}, err
	}
	u.metrics.WebhookProcessed(provider, string(ack.Outcome))
	return ack, nil
}

func (u *WebhookUseCase) verifySignature(gw interfaces.ICheckoutGateway, payload []byte, headers http.Header, log *zap.Logger) error {
	err := gw.VerifyWebhook(payload, headers)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, entities.ErrWebhookSecretMissing):
		if u.cfg.AllowUnsigned {
			log.Warn("accepting unsigned webhook, no secret configured", zap.Bool("security_event", true))
			return nil
		}
		log.Error("rejecting webhook, no secret configured", zap.Bool("security_event", true))
		return err
	case errors.Is(err, entities.ErrInvalidSignature):
		log.Warn("webhook signature rejected", zap.Bool("security_event", true), zap.Error(err))
		return err
	default:
		log.Warn("webhook signature check errored", zap.Bool("security_event", true), zap.Error(err))
		return errors.Join(entities.ErrInvalidSignature, err)
	}
}

// findPayment looks a payment up by provider token, then by the client reference the
// provider echoed. Some providers notify with an id other than the one returned at checkout.
func (u *WebhookUseCase) findPayment(ctx context.Context, provider entities.Provider, token string, conf interfaces.Confirmation) (entities.Payment, error) {
	p, err := u.payments.GetByProviderToken(ctx, provider, token)
	if err != nil || p.ID != "" {
		return p, err
	}
	if conf.Token != "" && conf.Token != token {
		p, err = u.payments.GetByProviderToken(ctx, provider, conf.Token)
		if err != nil || p.ID != "" {
			return p, err
		}
	}
	if conf.ClientReference == "" {
		return entities.Payment{}, nil
	}
	p, err = u.payments.GetByClientReference(ctx, conf.ClientReference)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.Provider != provider {
		return entities.Payment{}, nil
	}
	return p, nil
}

func (u *WebhookUseCase) settle(ctx context.Context, payment entities.Payment, conf interfaces.Confirmation, payload []byte, to entities.PaymentStatus, log *zap.Logger) (WebhookAck, error) {
	updated, applied, err := u.payments.TransitionFromPending(ctx, payment.ID, entities.PaymentTransition{
		To:                 to,
		ProviderStatus:     conf.ProviderStatus,
		WebhookReceivedAt:  u.now(),
		ProviderPayloadRaw: auditPayload(conf.Raw, payload),
	})
	if err != nil {
		log.Error("payment transition failed", zap.String("to", string(to)), zap.Error(err))
		return WebhookAck{}, err
	}
	if !applied {
		log.Info("payment already left pending, treating as replay")
		return WebhookAck{Outcome: WebhookOutcomeReplay, PaymentID: payment.ID, PaymentStatus: updated.Status}, nil
	}
	log.Info("payment transitioned", zap.String("to", string(to)), zap.String("provider_status", conf.ProviderStatus))

	if to == entities.PaymentStatusFailed {
		publish(ctx, u.publisher, log, entities.EventPaymentFailed, updated.ID, paymentEventPayload(updated))
		return WebhookAck{Outcome: WebhookOutcomeFailed, PaymentID: updated.ID, PaymentStatus: updated.Status}, nil
	}

	if err := u.reservations.MarkPaid(ctx, updated.ReservationID); err != nil {
		log.Error("mark reservation paid failed, needs reconciliation", zap.String("reservation_id", updated.ReservationID), zap.Error(err))
	}
	publish(ctx, u.publisher, log, entities.EventPaymentPaid, updated.ID, paymentEventPayload(updated))

	ack := WebhookAck{Outcome: WebhookOutcomePaid, PaymentID: updated.ID, PaymentStatus: updated.Status}
	if u.dispatcher == nil {
		log.Error("payout dispatcher not configured")
		return ack, nil
	}
	// Detached from request cancellation so a dropped provider connection cannot abort a payout mid-call.
	result := u.dispatcher.Dispatch(context.WithoutCancel(ctx), updated)
	ack.Payout = result.Outcome
	return ack, nil
}

func paymentEventPayload(p entities.Payment) map[string]any {
	return map[string]any{
		"payment_id":     p.ID,
		"reservation_id": p.ReservationID,
		"field_id":       p.FieldID,
		"status":         p.Status,
		"gross_amount":   p.GrossAmount,
		"platform_fee":   p.PlatformFee,
		"net_to_owner":   p.NetToOwner,
		"currency":       p.Currency,
	}
}

// auditPayload prefers the confirmed provider body and falls back to the notification.
func auditPayload(confirmed json.RawMessage, notification []byte) json.RawMessage {
	if len(confirmed) > 0 && json.Valid(confirmed) {
		return confirmed
	}
	if len(notification) > 0 && json.Valid(notification) {
		return json.RawMessage(notification)
	}
	b, err := json.Marshal(map[string]string{"raw": string(notification)})
	if err != nil {
		return nil
	}
	return b
}
