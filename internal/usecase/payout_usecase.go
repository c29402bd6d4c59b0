package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"arena_payments/internal/domain/entities"
	"arena_payments/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultRetryDelay     = 5 * time.Minute
	defaultStaleAfter     = 10 * time.Minute
	defaultRetryBatchSize = 50
	defaultListLimit      = 50
	maxListLimit          = 200
)

// RetrySummary counts what a retry sweep did. Due, Stale and Reconciled count the
// candidates of each pass; the remaining fields count outcomes across all passes.
type RetrySummary struct {
	Due        int `json:"due"`
	Stale      int `json:"stale"`
	Reconciled int `json:"reconciled"`
	Completed  int `json:"completed"`
	Submitted  int `json:"submitted"`
	Failed     int `json:"failed"`
	Existing   int `json:"existing"`
	Skipped    int `json:"skipped"`
	Errors     int `json:"errors"`
}

func (s *RetrySummary) record(o entities.DispatchOutcome) {
	switch o {
	case entities.DispatchOutcomeCompleted:
		s.Completed++
	case entities.DispatchOutcomeSubmitted:
		s.Submitted++
	case entities.DispatchOutcomeFailed, entities.DispatchOutcomeNotConfigured:
		s.Failed++
	case entities.DispatchOutcomeExisting:
		s.Existing++
	case entities.DispatchOutcomeSkipped:
		s.Skipped++
	default:
		s.Errors++
	}
}

// IPayoutUseCase dispatches owner payouts and exposes them to operators.
//
// Dispatch is safe to call any number of times for the same payment: the idempotency key
// derived from (payment, field) is claimed atomically before any provider call.
type IPayoutUseCase interface {
	Dispatch(ctx context.Context, payment entities.Payment) entities.DispatchResult
	RetryDue(ctx context.Context, now time.Time) (RetrySummary, error)
	RetryPayout(ctx context.Context, payoutID string) (entities.DispatchResult, error)
	GetByID(ctx context.Context, id string) (entities.Payout, error)
	ListByPaymentID(ctx context.Context, paymentID string) ([]entities.Payout, error)
	ListByStatus(ctx context.Context, status string, limit int) ([]entities.Payout, error)
	ProviderStatus(ctx context.Context, payoutID string) (interfaces.PayoutResult, error)
}

type PayoutConfig struct {
	RetryDelay      time.Duration
	MaxRetries      int
	StaleAfter      time.Duration
	RetryBatchSize  int
	ProviderTimeout time.Duration
}

type PayoutUseCase struct {
	payouts   interfaces.IPayoutRepository
	payments  interfaces.IPaymentRepository
	fields    interfaces.IFieldRepository
	channels  map[entities.PayoutChannel]interfaces.IPayoutChannel
	publisher interfaces.IEventPublisher
	metrics   interfaces.IMetrics
	cfg       PayoutConfig
	log       *zap.Logger
	now       func() time.Time
}

var (
	_ IPayoutUseCase                = (*PayoutUseCase)(nil)
	_ interfaces.IPayoutDispatcher = (*PayoutUseCase)(nil)
)

func NewPayoutUseCase(
	payouts interfaces.IPayoutRepository,
	payments interfaces.IPaymentRepository,
	fields interfaces.IFieldRepository,
	channels []interfaces.IPayoutChannel,
	publisher interfaces.IEventPublisher,
	metrics interfaces.IMetrics,
	cfg PayoutConfig,
	log *zap.Logger,
) *PayoutUseCase {
	byChannel := make(map[entities.PayoutChannel]interfaces.IPayoutChannel, len(channels))
	for _, ch := range channels {
		if ch != nil {
			byChannel[ch.Channel()] = ch
		}
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = defaultRetryDelay
	}
	if cfg.StaleAfter <= 0 {
		cfg.StaleAfter = defaultStaleAfter
	}
	if cfg.RetryBatchSize <= 0 {
		cfg.RetryBatchSize = defaultRetryBatchSize
	}
	cfg.ProviderTimeout = orDefaultTimeout(cfg.ProviderTimeout)
	return &PayoutUseCase{
		payouts:   payouts,
		payments:  payments,
		fields:    fields,
		channels:  byChannel,
		publisher: orNoopPublisher(publisher),
		metrics:   orNoopMetrics(metrics),
		cfg:       cfg,
		log:       orNopLogger(log).Named("payout.dispatcher"),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Dispatch pays the field owner the net amount of a paid payment. It records every
// outcome on the payout row and never returns an error to the caller.
func (u *PayoutUseCase) Dispatch(ctx context.Context, payment entities.Payment) entities.DispatchResult {
	log := u.log.With(zap.String("payment_id", payment.ID), zap.String("field_id", payment.FieldID))

	if payment.NetToOwner <= 0 {
		log.Info("payout skipped, nothing owed", zap.Int64("net_to_owner", payment.NetToOwner))
		u.clearPayoutPending(ctx, payment, log)
		u.metrics.PayoutDispatched("", entities.DispatchOutcomeSkipped)
		return entities.DispatchResult{Outcome: entities.DispatchOutcomeSkipped}
	}

	key := PayoutIdempotencyKey(payment.ID, payment.FieldID)
	log = log.With(zap.String("idempotency_key", key))

	field, fieldErr := u.fields.Get(ctx, payment.FieldID)
	if fieldErr != nil {
		log.Error("failed loading field for payout", zap.Error(fieldErr))
	}

	now := u.now()
	attempt := entities.Payout{
		ID:             uuid.NewString(),
		PaymentID:      payment.ID,
		FieldID:        payment.FieldID,
		Channel:        field.OwnerPayoutChannel,
		Amount:         payment.NetToOwner,
		Currency:       payment.Currency,
		Recipient:      field.OwnerMobileNumber,
		IdempotencyKey: key,
		Status:         entities.PayoutStatusProcessing,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	claimed, ok, err := u.payouts.ClaimAttempt(ctx, attempt, now.Add(-u.cfg.StaleAfter))
	if err != nil {
		// Nothing was written; the payout pending marker keeps the payment visible to RetryDue.
		log.Error("payout claim failed", zap.Error(err))
		u.metrics.PayoutDispatched(attempt.Channel, entities.DispatchOutcomeError)
		return entities.DispatchResult{Outcome: entities.DispatchOutcomeError, Err: err}
	}
	if !ok {
		log.Info("payout already in flight or completed", zap.String("payout_id", claimed.ID), zap.String("status", string(claimed.Status)))
		if claimed.Status == entities.PayoutStatusCompleted {
			u.clearPayoutPending(ctx, payment, log)
		}
		u.metrics.PayoutDispatched(claimed.Channel, entities.DispatchOutcomeExisting)
		return entities.DispatchResult{Outcome: entities.DispatchOutcomeExisting, Payout: claimed}
	}
	log = log.With(zap.String("payout_id", claimed.ID), zap.Int("retry_count", claimed.RetryCount))

	switch {
	case fieldErr != nil:
		return u.fail(ctx, payment, claimed, fmt.Errorf("load field: %w", fieldErr), true, log)
	case field.ID == "":
		return u.fail(ctx, payment, claimed, ErrPayoutFieldMissing, false, log)
	}

	channel, ok := u.channels[claimed.Channel]
	if !ok {
		return u.fail(ctx, payment, claimed, fmt.Errorf("%w: %q", ErrChannelNotConfigured, claimed.Channel), false, log)
	}

	log.Info("payout provider call start", zap.String("channel", string(claimed.Channel)), zap.Int64("amount", claimed.Amount))
	callCtx, cancel := context.WithTimeout(ctx, u.cfg.ProviderTimeout)
	res, err := channel.CreatePayout(callCtx, interfaces.PayoutRequest{
		Amount:         claimed.Amount,
		Currency:       claimed.Currency,
		Recipient:      claimed.Recipient,
		Reason:         fmt.Sprintf("Payout for reservation payment %s", payment.ID),
		IdempotencyKey: claimed.IdempotencyKey,
	})
	cancel()
	if err != nil {
		retryable := !errors.Is(err, entities.ErrValidation) && !errors.Is(err, entities.ErrConfiguration)
		return u.fail(ctx, payment, claimed, err, retryable, log)
	}

	switch res.Status {
	case entities.ProviderStatusFailed:
		claimed.ProviderID = res.ProviderID
		claimed.ProviderStatus = res.ProviderStatus
		return u.fail(ctx, payment, claimed, fmt.Errorf("%w: status %q", ErrPayoutProviderFailure, res.ProviderStatus), true, log)
	case entities.ProviderStatusPending:
		return u.submitted(ctx, claimed, res, log)
	}
	return u.complete(ctx, payment, claimed, res, log)
}

// submitted keeps an accepted but unsettled transfer processing with its provider reference.
// RetryDue confirms it through the channel once it goes stale.
func (u *PayoutUseCase) submitted(ctx context.Context, p entities.Payout, res interfaces.PayoutResult, log *zap.Logger) entities.DispatchResult {
	p.ProviderID = res.ProviderID
	p.ProviderStatus = res.ProviderStatus
	p.UpdatedAt = u.now()

	if err := u.payouts.RecordSubmission(ctx, p); err != nil {
		log.Error("payout submission not persisted", zap.String("provider_id", p.ProviderID), zap.Error(err))
		u.metrics.PayoutDispatched(p.Channel, entities.DispatchOutcomeError)
		return entities.DispatchResult{Outcome: entities.DispatchOutcomeError, Payout: p, Err: err}
	}

	log.Warn("payout accepted but not settled by provider", zap.String("provider_id", p.ProviderID), zap.String("provider_status", p.ProviderStatus))
	u.metrics.PayoutDispatched(p.Channel, entities.DispatchOutcomeSubmitted)
	return entities.DispatchResult{Outcome: entities.DispatchOutcomeSubmitted, Payout: p}
}

func (u *PayoutUseCase) complete(ctx context.Context, payment entities.Payment, p entities.Payout, res interfaces.PayoutResult, log *zap.Logger) entities.DispatchResult {
	now := u.now()
	p.Status = entities.PayoutStatusCompleted
	p.ProviderID = res.ProviderID
	p.ProviderStatus = res.ProviderStatus
	p.ProviderError = ""
	p.Retryable = false
	p.NextRetryAt = nil
	p.CompletedAt = &now
	p.UpdatedAt = now

	if err := u.payouts.MarkCompleted(ctx, p); err != nil {
		// The provider accepted the transfer; the row stays processing and blocks duplicates.
		// Keeping the provider reference lets the stale sweep confirm it instead of paying again.
		log.Error("payout accepted by provider but completion not persisted", zap.String("provider_id", p.ProviderID), zap.Error(err))
		inFlight := p
		inFlight.Status = entities.PayoutStatusProcessing
		inFlight.CompletedAt = nil
		if recErr := u.payouts.RecordSubmission(ctx, inFlight); recErr != nil {
			log.Error("provider reference not persisted", zap.String("provider_id", p.ProviderID), zap.Error(recErr))
		}
		u.metrics.PayoutDispatched(p.Channel, entities.DispatchOutcomeError)
		return entities.DispatchResult{Outcome: entities.DispatchOutcomeError, Payout: p, Err: err}
	}

	log.Info("payout completed", zap.String("provider_id", p.ProviderID), zap.String("provider_status", p.ProviderStatus))
	u.clearPayoutPending(ctx, payment, log)
	publish(ctx, u.publisher, log, entities.EventPayoutCompleted, p.ID, payoutEventPayload(p))
	u.metrics.PayoutDispatched(p.Channel, entities.DispatchOutcomeCompleted)
	return entities.DispatchResult{Outcome: entities.DispatchOutcomeCompleted, Payout: p}
}

// fail records a failed attempt. Once the row is persisted the retry queue or an operator
// owns it, so the payment leaves the payout pending index.
func (u *PayoutUseCase) fail(ctx context.Context, payment entities.Payment, p entities.Payout, cause error, retryable bool, log *zap.Logger) entities.DispatchResult {
	now := u.now()
	p.Status = entities.PayoutStatusFailed
	p.ProviderError = cause.Error()
	p.Retryable = retryable && p.RetryCount < u.cfg.MaxRetries
	p.NextRetryAt = nil
	if p.Retryable {
		next := now.Add(u.cfg.RetryDelay)
		p.NextRetryAt = &next
	}
	p.UpdatedAt = now

	outcome := entities.DispatchOutcomeFailed
	if errors.Is(cause, entities.ErrConfiguration) {
		outcome = entities.DispatchOutcomeNotConfigured
	}

	if err := u.payouts.MarkFailed(ctx, p); err != nil {
		log.Error("payout failure not persisted", zap.NamedError("cause", cause), zap.Error(err))
		u.metrics.PayoutDispatched(p.Channel, entities.DispatchOutcomeError)
		return entities.DispatchResult{Outcome: entities.DispatchOutcomeError, Payout: p, Err: errors.Join(cause, err)}
	}

	fields := []zap.Field{zap.Bool("retryable", p.Retryable), zap.Error(cause)}
	if p.NextRetryAt != nil {
		fields = append(fields, zap.Time("next_retry_at", *p.NextRetryAt))
	}
	log.Warn("payout failed", fields...)
	u.clearPayoutPending(ctx, payment, log)
	publish(ctx, u.publisher, log, entities.EventPayoutFailed, p.ID, payoutEventPayload(p))
	u.metrics.PayoutDispatched(p.Channel, outcome)
	return entities.DispatchResult{Outcome: outcome, Payout: p, Err: cause}
}

// RetryDue re-dispatches failed payouts whose retry time has passed, then runs two
// reconciliation passes: processing attempts that went stale, and paid payments whose
// payout never reached a persisted outcome.
func (u *PayoutUseCase) RetryDue(ctx context.Context, now time.Time) (RetrySummary, error) {
	due, err := u.payouts.ListDueForRetry(ctx, now, u.cfg.RetryBatchSize)
	if err != nil {
		u.log.Error("listing due payouts failed", zap.Error(err))
		return RetrySummary{}, err
	}

	summary := RetrySummary{Due: len(due)}
	for _, p := range due {
		log := u.log.With(zap.String("payout_id", p.ID), zap.String("payment_id", p.PaymentID))
		if p.SupersededBy != "" || p.Status != entities.PayoutStatusFailed {
			summary.Skipped++
			continue
		}

		payment, ok := u.paidPayment(ctx, p.PaymentID, &summary, log)
		if !ok {
			continue
		}
		summary.record(u.Dispatch(ctx, payment).Outcome)
	}

	u.resolveStale(ctx, now, &summary)
	u.reconcilePending(ctx, now, &summary)

	u.log.Info("retry sweep finished",
		zap.Int("due", summary.Due),
		zap.Int("stale", summary.Stale),
		zap.Int("reconciled", summary.Reconciled),
		zap.Int("completed", summary.Completed),
		zap.Int("submitted", summary.Submitted),
		zap.Int("failed", summary.Failed),
		zap.Int("existing", summary.Existing),
		zap.Int("skipped", summary.Skipped),
		zap.Int("errors", summary.Errors),
	)
	return summary, nil
}

// resolveStale settles processing attempts nobody finished. An attempt with a provider
// reference is confirmed through the channel; one without is re-dispatched, which takes
// over its idempotency slot.
func (u *PayoutUseCase) resolveStale(ctx context.Context, now time.Time, summary *RetrySummary) {
	stale, err := u.payouts.ListStaleProcessing(ctx, now.Add(-u.cfg.StaleAfter), u.cfg.RetryBatchSize)
	if err != nil {
		u.log.Error("listing stale payouts failed", zap.Error(err))
		summary.Errors++
		return
	}
	summary.Stale = len(stale)

	for _, listed := range stale {
		log := u.log.With(zap.String("payout_id", listed.ID), zap.String("payment_id", listed.PaymentID), zap.Time("updated_at", listed.UpdatedAt))
		p, err := u.payouts.GetByID(ctx, listed.ID)
		if err != nil {
			log.Error("stale payout could not be reloaded", zap.Error(err))
			summary.Errors++
			continue
		}
		if p.Status != entities.PayoutStatusProcessing || p.SupersededBy != "" {
			summary.Skipped++
			continue
		}

		payment, ok := u.paidPayment(ctx, p.PaymentID, summary, log)
		if !ok {
			continue
		}

		if p.ProviderID == "" {
			log.Warn("stale payout attempt never reached the provider, re-dispatching")
			summary.record(u.Dispatch(ctx, payment).Outcome)
			continue
		}
		summary.record(u.confirmSubmitted(ctx, payment, p, log))
	}
}

// confirmSubmitted asks the channel what happened to a transfer it already accepted.
func (u *PayoutUseCase) confirmSubmitted(ctx context.Context, payment entities.Payment, p entities.Payout, log *zap.Logger) entities.DispatchOutcome {
	log = log.With(zap.String("provider_id", p.ProviderID))
	channel, ok := u.channels[p.Channel]
	if !ok {
		log.Error("stale payout channel not configured", zap.String("channel", string(p.Channel)))
		return entities.DispatchOutcomeError
	}

	callCtx, cancel := context.WithTimeout(ctx, u.cfg.ProviderTimeout)
	res, err := channel.GetStatus(callCtx, p.ProviderID)
	cancel()
	if err != nil {
		log.Warn("stale payout status lookup failed", zap.Error(err))
		return entities.DispatchOutcomeError
	}
	if res.ProviderID == "" {
		res.ProviderID = p.ProviderID
	}

	switch res.Status {
	case entities.ProviderStatusSucceeded:
		return u.complete(ctx, payment, p, res, log).Outcome
	case entities.ProviderStatusFailed:
		p.ProviderStatus = res.ProviderStatus
		return u.fail(ctx, payment, p, fmt.Errorf("%w: status %q", ErrPayoutProviderFailure, res.ProviderStatus), true, log).Outcome
	}

	p.ProviderStatus = res.ProviderStatus
	p.UpdatedAt = u.now()
	if err := u.payouts.RecordSubmission(ctx, p); err != nil {
		log.Warn("refreshing pending payout failed", zap.Error(err))
	}
	log.Info("payout still pending at provider", zap.String("provider_status", res.ProviderStatus))
	return entities.DispatchOutcomeSubmitted
}

// reconcilePending re-dispatches paid payments that still carry the payout pending marker
// and have no attempt at all. Processing attempts are left to resolveStale.
func (u *PayoutUseCase) reconcilePending(ctx context.Context, now time.Time, summary *RetrySummary) {
	pending, err := u.payments.ListPayoutPending(ctx, now.Add(-u.cfg.StaleAfter), u.cfg.RetryBatchSize)
	if err != nil {
		u.log.Error("listing payout pending payments failed", zap.Error(err))
		summary.Errors++
		return
	}
	summary.Reconciled = len(pending)

	for _, candidate := range pending {
		log := u.log.With(zap.String("payment_id", candidate.ID))
		// The index is eventually consistent; the base row decides.
		payment, ok := u.paidPayment(ctx, candidate.ID, summary, log)
		if !ok {
			continue
		}
		if payment.PayoutPendingSince == nil {
			summary.Skipped++
			continue
		}

		attempts, err := u.payouts.ListByPaymentID(ctx, payment.ID)
		if err != nil {
			log.Error("reconcile could not list payouts", zap.Error(err))
			summary.Errors++
			continue
		}

		current := currentAttempt(attempts)
		switch current.Status {
		case "":
			log.Warn("paid payment has no payout attempt, dispatching")
			summary.record(u.Dispatch(ctx, payment).Outcome)
		case entities.PayoutStatusProcessing:
			summary.Skipped++
		default:
			u.clearPayoutPending(ctx, payment, log)
			summary.Existing++
		}
	}
}

// paidPayment loads the payment of a payout and reports whether it may be paid out.
func (u *PayoutUseCase) paidPayment(ctx context.Context, id string, summary *RetrySummary, log *zap.Logger) (entities.Payment, bool) {
	payment, err := u.payments.GetByID(ctx, id)
	if err != nil {
		log.Error("retry could not load payment", zap.Error(err))
		summary.Errors++
		return entities.Payment{}, false
	}
	if payment.ID == "" || payment.Status != entities.PaymentStatusPaid {
		log.Warn("retry skipped, payment not paid", zap.String("status", string(payment.Status)))
		summary.Skipped++
		return entities.Payment{}, false
	}
	return payment, true
}

func (u *PayoutUseCase) clearPayoutPending(ctx context.Context, payment entities.Payment, log *zap.Logger) {
	if payment.PayoutPendingSince == nil {
		return
	}
	if err := u.payments.ClearPayoutPending(ctx, payment.ID); err != nil {
		log.Warn("clearing payout pending marker failed", zap.Error(err))
	}
}

// currentAttempt returns the newest attempt that was not superseded, or a zero Payout.
func currentAttempt(attempts []entities.Payout) entities.Payout {
	var current entities.Payout
	for _, p := range attempts {
		if p.SupersededBy != "" {
			continue
		}
		if current.ID == "" || p.CreatedAt.After(current.CreatedAt) {
			current = p
		}
	}
	return current
}

// RetryPayout lets an operator re-dispatch the latest failed attempt, including ones
// recorded as non-retryable after a configuration fix.
func (u *PayoutUseCase) RetryPayout(ctx context.Context, payoutID string) (entities.DispatchResult, error) {
	p, err := u.GetByID(ctx, payoutID)
	if err != nil {
		return entities.DispatchResult{}, err
	}
	if p.Status != entities.PayoutStatusFailed || p.SupersededBy != "" {
		return entities.DispatchResult{}, ErrPayoutNotRetryable
	}

	payment, err := u.payments.GetByID(ctx, p.PaymentID)
	if err != nil {
		return entities.DispatchResult{}, err
	}
	if payment.ID == "" {
		return entities.DispatchResult{}, ErrPaymentNotFound
	}
	if payment.Status != entities.PaymentStatusPaid {
		return entities.DispatchResult{}, ErrPayoutNotRetryable
	}

	u.log.Info("manual payout retry", zap.String("payout_id", p.ID), zap.String("payment_id", payment.ID))
	return u.Dispatch(ctx, payment), nil
}

func (u *PayoutUseCase) GetByID(ctx context.Context, id string) (entities.Payout, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payout{}, ErrInvalidPayoutID
	}

	p, err := u.payouts.GetByID(ctx, id)
	if err != nil {
		return entities.Payout{}, err
	}
	if p.ID == "" {
		return entities.Payout{}, ErrPayoutNotFound
	}
	return p, nil
}

func (u *PayoutUseCase) ListByPaymentID(ctx context.Context, paymentID string) ([]entities.Payout, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return nil, ErrInvalidPaymentID
	}
	return u.payouts.ListByPaymentID(ctx, paymentID)
}

func (u *PayoutUseCase) ListByStatus(ctx context.Context, status string, limit int) ([]entities.Payout, error) {
	s := entities.PayoutStatus(strings.ToLower(strings.TrimSpace(status)))
	switch s {
	case entities.PayoutStatusProcessing, entities.PayoutStatusCompleted, entities.PayoutStatusFailed:
	default:
		return nil, ErrInvalidPayoutStatus
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return u.payouts.ListByStatus(ctx, s, limit)
}

// ProviderStatus asks the channel for the live status of a submitted payout.
func (u *PayoutUseCase) ProviderStatus(ctx context.Context, payoutID string) (interfaces.PayoutResult, error) {
	p, err := u.GetByID(ctx, payoutID)
	if err != nil {
		return interfaces.PayoutResult{}, err
	}
	if p.ProviderID == "" {
		return interfaces.PayoutResult{}, ErrPayoutNotSubmitted
	}
	channel, ok := u.channels[p.Channel]
	if !ok {
		return interfaces.PayoutResult{}, fmt.Errorf("%w: %q", ErrChannelNotConfigured, p.Channel)
	}

	callCtx, cancel := context.WithTimeout(ctx, u.cfg.ProviderTimeout)
	defer cancel()
	res, err := channel.GetStatus(callCtx, p.ProviderID)
	if err != nil {
		return interfaces.PayoutResult{}, providerError("payout status", err)
	}
	return res, nil
}

func payoutEventPayload(p entities.Payout) map[string]any {
	return map[string]any{
		"payout_id":       p.ID,
		"payment_id":      p.PaymentID,
		"field_id":        p.FieldID,
		"channel":         p.Channel,
		"amount":          p.Amount,
		"currency":        p.Currency,
		"status":          p.Status,
		"retry_count":     p.RetryCount,
		"retryable":       p.Retryable,
		"provider_id":     p.ProviderID,
		"idempotency_key": p.IdempotencyKey,
	}
}
