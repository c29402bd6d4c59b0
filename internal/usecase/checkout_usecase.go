package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"arena_payments/internal/domain/commission"
	"arena_payments/internal/domain/entities"
	"arena_payments/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CheckoutSession is what the booking client needs to redirect the user to the provider.
type CheckoutSession struct {
	PaymentID       string
	SessionID       string
	ClientReference string
	CheckoutURL     string
	Provider        entities.Provider
	GrossAmount     int64
	PlatformFee     int64
	NetToOwner      int64
	Currency        string
}

// ICheckoutUseCase opens hosted checkout sessions for reservations.
//
// A Payment row is written only after the provider accepted the invoice, so a provider
// outage never leaves a pending payment without a checkout URL.

type ICheckoutUseCase interface {
	CreateCheckout(ctx context.Context, reservationID, userID string) (CheckoutSession, error)
	GetPaymentStatus(ctx context.Context, paymentID, userID string) (entities.Payment, error)
}

type CheckoutConfig struct {
	Currency        string
	ProviderTimeout time.Duration
}

type CheckoutUseCase struct {
	payments     interfaces.IPaymentRepository
	reservations interfaces.IReservationRepository
	fields       interfaces.IFieldRepository
	gateway      interfaces.ICheckoutGateway
	publisher    interfaces.IEventPublisher
	metrics      interfaces.IMetrics
	cfg          CheckoutConfig
	log          *zap.Logger
	now          func() time.Time
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(
	payments interfaces.IPaymentRepository,
	reservations interfaces.IReservationRepository,
	fields interfaces.IFieldRepository,
	gateway interfaces.ICheckoutGateway,
	publisher interfaces.IEventPublisher,
	metrics interfaces.IMetrics,
	cfg CheckoutConfig,
	log *zap.Logger,
) *CheckoutUseCase {
	cfg.ProviderTimeout = orDefaultTimeout(cfg.ProviderTimeout)
	return &CheckoutUseCase{
		payments:     payments,
		reservations: reservations,
		fields:       fields,
		gateway:      gateway,
		publisher:    orNoopPublisher(publisher),
		metrics:      orNoopMetrics(metrics),
		cfg:          cfg,
		log:          orNopLogger(log).Named("payment.checkout"),
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (u *CheckoutUseCase) CreateCheckout(ctx context.Context, reservationID, userID string) (CheckoutSession, error) {
	reservationID = strings.TrimSpace(reservationID)
	log := u.log.With(zap.String("reservation_id", reservationID), zap.String("user_id", userID))
	log.Info("checkout start")

	if reservationID == "" {
		return CheckoutSession{}, ErrInvalidReservationID
	}
	if u.gateway == nil {
		log.Error("checkout gateway not configured")
		return CheckoutSession{}, ErrGatewayNotConfigured
	}

	res, err := u.reservations.Get(ctx, reservationID)
	if err != nil {
		log.Error("failed loading reservation", zap.Error(err))
		return CheckoutSession{}, err
	}
	if res.ID == "" {
		log.Info("reservation not found")
		return CheckoutSession{}, ErrReservationNotFound
	}
	if res.UserID != userID {
		log.Warn("reservation owned by another user")
		return CheckoutSession{}, ErrReservationNotOwned
	}
	if res.IsPaid {
		log.Info("reservation already paid")
		return CheckoutSession{}, ErrReservationAlreadyPaid
	}

	field, err := u.fields.Get(ctx, res.FieldID)
	if err != nil {
		log.Error("failed loading field", zap.String("field_id", res.FieldID), zap.Error(err))
		return CheckoutSession{}, err
	}
	if field.ID == "" {
		log.Error("reservation points to a missing field", zap.String("field_id", res.FieldID))
		return CheckoutSession{}, ErrFieldNotFound
	}

	split, err := commission.Compute(res.Amount, field.CommissionRateBps)
	if err != nil {
		log.Warn("commission rejected", zap.Int64("gross", res.Amount), zap.Int("rate_bps", field.CommissionRateBps), zap.Error(err))
		return CheckoutSession{}, err
	}

	currency := res.Currency
	if currency == "" {
		currency = u.cfg.Currency
	}
	paymentID := uuid.NewString()
	sessionID := NewSessionID()
	clientRef := ClientReference(res.ID, sessionID)
	provider := u.gateway.Provider()
	log = log.With(zap.String("payment_id", paymentID), zap.String("client_reference", clientRef), zap.String("provider", string(provider)))

	callCtx, cancel := context.WithTimeout(ctx, u.cfg.ProviderTimeout)
	inv, err := u.gateway.CreateInvoice(callCtx, interfaces.InvoiceRequest{
		PaymentID:       paymentID,
		ReservationID:   res.ID,
		ClientReference: clientRef,
		Amount:          res.Amount,
		Currency:        currency,
		Description:     fmt.Sprintf("Reservation %s - %s", res.ID, field.Name),
	})
	cancel()
	if err != nil {
		log.Error("create invoice failed", zap.Error(err))
		u.metrics.CheckoutCreated(provider, "provider_error")
		return CheckoutSession{}, providerError("create invoice", err)
	}
	if inv.Token == "" || inv.CheckoutURL == "" {
		log.Error("provider returned an incomplete invoice", zap.String("provider_token", inv.Token))
		u.metrics.CheckoutCreated(provider, "provider_error")
		return CheckoutSession{}, fmt.Errorf("create invoice: %w: missing token or checkout url", entities.ErrProviderUnavailable)
	}

	now := u.now()
	p := entities.Payment{
		ID:                paymentID,
		ReservationID:     res.ID,
		FieldID:           field.ID,
		UserID:            userID,
		SessionID:         sessionID,
		ClientReference:   clientRef,
		GrossAmount:       res.Amount,
		PlatformFee:       split.PlatformFee,
		NetToOwner:        split.NetToOwner,
		CommissionRateBps: field.CommissionRateBps,
		Currency:          currency,
		Provider:          provider,
		ProviderToken:     inv.Token,
		CheckoutURL:       inv.CheckoutURL,
		Status:            entities.PaymentStatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	created, err := u.payments.Create(ctx, p)
	if err != nil {
		log.Error("payment repository create failed", zap.Error(err))
		u.metrics.CheckoutCreated(provider, "persist_error")
		return CheckoutSession{}, err
	}

	publish(ctx, u.publisher, log, entities.EventPaymentCreated, created.ID, map[string]any{
		"payment_id":     created.ID,
		"reservation_id": created.ReservationID,
		"gross_amount":   created.GrossAmount,
		"currency":       created.Currency,
		"provider":       created.Provider,
	})
	u.metrics.CheckoutCreated(provider, "created")
	log.Info("checkout success", zap.String("provider_token", created.ProviderToken), zap.Int64("gross", created.GrossAmount), zap.Int64("net", created.NetToOwner))

	return CheckoutSession{
		PaymentID:       created.ID,
		SessionID:       created.SessionID,
		ClientReference: created.ClientReference,
		CheckoutURL:     created.CheckoutURL,
		Provider:        created.Provider,
		GrossAmount:     created.GrossAmount,
		PlatformFee:     created.PlatformFee,
		NetToOwner:      created.NetToOwner,
		Currency:        created.Currency,
	}, nil
}

// GetPaymentStatus returns the payment when the caller owns its reservation.
func (u *CheckoutUseCase) GetPaymentStatus(ctx context.Context, paymentID, userID string) (entities.Payment, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}

	p, err := u.payments.GetByID(ctx, paymentID)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}

	res, err := u.reservations.Get(ctx, p.ReservationID)
	if err != nil {
		return entities.Payment{}, err
	}
	if res.ID == "" || res.UserID != userID {
		u.log.Warn("payment status requested by non-owner", zap.String("payment_id", p.ID), zap.String("user_id", userID))
		return entities.Payment{}, ErrReservationNotOwned
	}
	return p, nil
}
