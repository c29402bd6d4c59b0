package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"arena_payments/internal/domain/entities"
	"arena_payments/internal/usecase/interfaces"
	mock_interfaces "arena_payments/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var paidPayment = entities.Payment{
	ID:            "pay-1",
	ReservationID: "res-1",
	FieldID:       "field-1",
	GrossAmount:   10000,
	PlatformFee:   1000,
	NetToOwner:    9000,
	Currency:      "XOF",
	Provider:      entities.ProviderHostedCheckout,
	ProviderToken: "tok-1",
	Status:        entities.PaymentStatusPaid,
}

var walletField = entities.Field{
	ID:                 "field-1",
	OwnerPayoutChannel: entities.PayoutChannelWalletPushA,
	OwnerMobileNumber:  "+221770000000",
	CommissionRateBps:  1000,
}

type payoutHarness struct {
	uc       *PayoutUseCase
	payouts  *memPayoutRepo
	payments *memPaymentRepo
	channel  *fakeChannel
	clock    time.Time
	mu       sync.Mutex
}

func newPayoutHarness(field entities.Field, channel *fakeChannel, cfg PayoutConfig) *payoutHarness {
	h := &payoutHarness{
		payouts:  newMemPayoutRepo(),
		payments: newMemPaymentRepo(paidPayment),
		channel:  channel,
		clock:    time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	var channels []interfaces.IPayoutChannel
	if channel != nil {
		channels = append(channels, channel)
	}
	h.uc = NewPayoutUseCase(h.payouts, h.payments, memFieldRepo{field.ID: field}, channels, nil, nil, cfg, nil)
	h.uc.now = h.now
	return h
}

func (h *payoutHarness) now() time.Time {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.clock
}

func (h *payoutHarness) advance(d time.Duration) time.Time {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clock = h.clock.Add(d)
	return h.clock
}

func TestPayoutUseCase_Dispatch(t *testing.T) {
	t.Run("nothing owed is skipped", func(t *testing.T) {
		h := newPayoutHarness(walletField, &fakeChannel{channel: entities.PayoutChannelWalletPushA}, PayoutConfig{MaxRetries: 5})
		p := paidPayment
		p.NetToOwner = 0

		res := h.uc.Dispatch(context.Background(), p)
		if res.Outcome != entities.DispatchOutcomeSkipped {
			t.Fatalf("expected skipped, got %s", res.Outcome)
		}
		if len(h.payouts.rows) != 0 || h.channel.calls.Load() != 0 {
			t.Fatalf("expected no payout row and no provider call")
		}
	})

	t.Run("success records a completed payout", func(t *testing.T) {
		h := newPayoutHarness(walletField, &fakeChannel{channel: entities.PayoutChannelWalletPushA}, PayoutConfig{MaxRetries: 5})

		res := h.uc.Dispatch(context.Background(), paidPayment)
		if res.Outcome != entities.DispatchOutcomeCompleted {
			t.Fatalf("expected completed, got %s (%v)", res.Outcome, res.Err)
		}
		got := h.payouts.rows[res.Payout.ID]
		if got.Status != entities.PayoutStatusCompleted || got.ProviderID != "prov-1" || got.Amount != 9000 || got.CompletedAt == nil {
			t.Fatalf("unexpected payout row: %+v", got)
		}
		if got.IdempotencyKey != PayoutIdempotencyKey("pay-1", "field-1") {
			t.Fatalf("unexpected idempotency key: %s", got.IdempotencyKey)
		}
	})

	t.Run("already completed returns the existing payout", func(t *testing.T) {
		h := newPayoutHarness(walletField, &fakeChannel{channel: entities.PayoutChannelWalletPushA}, PayoutConfig{MaxRetries: 5})

		first := h.uc.Dispatch(context.Background(), paidPayment)
		second := h.uc.Dispatch(context.Background(), paidPayment)
		if second.Outcome != entities.DispatchOutcomeExisting || second.Payout.ID != first.Payout.ID {
			t.Fatalf("expected existing payout %s, got %+v", first.Payout.ID, second)
		}
		if h.channel.calls.Load() != 1 {
			t.Fatalf("expected one provider call, got %d", h.channel.calls.Load())
		}
	})

	t.Run("provider failure schedules a retry", func(t *testing.T) {
		channel := &fakeChannel{channel: entities.PayoutChannelWalletPushA, respond: func(int32) (interfaces.PayoutResult, error) {
			return interfaces.PayoutResult{}, entities.ErrProviderUnavailable
		}}
		h := newPayoutHarness(walletField, channel, PayoutConfig{MaxRetries: 5})

		res := h.uc.Dispatch(context.Background(), paidPayment)
		if res.Outcome != entities.DispatchOutcomeFailed {
			t.Fatalf("expected failed, got %s", res.Outcome)
		}
		got := h.payouts.rows[res.Payout.ID]
		if got.Status != entities.PayoutStatusFailed || !got.Retryable || got.RetryCount != 0 {
			t.Fatalf("unexpected payout row: %+v", got)
		}
		if got.NextRetryAt == nil || !got.NextRetryAt.Equal(h.now().Add(5*time.Minute)) {
			t.Fatalf("expected next retry in 5 minutes, got %v", got.NextRetryAt)
		}
	})

	t.Run("provider reported failure schedules a retry", func(t *testing.T) {
		channel := &fakeChannel{channel: entities.PayoutChannelWalletPushA, respond: func(int32) (interfaces.PayoutResult, error) {
			return interfaces.PayoutResult{ProviderID: "prov-9", Status: entities.ProviderStatusFailed, ProviderStatus: "failed"}, nil
		}}
		h := newPayoutHarness(walletField, channel, PayoutConfig{MaxRetries: 5})

		res := h.uc.Dispatch(context.Background(), paidPayment)
		if res.Outcome != entities.DispatchOutcomeFailed || !res.Payout.Retryable || res.Payout.ProviderID != "prov-9" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("unsupported channel is not retried", func(t *testing.T) {
		field := walletField
		field.OwnerPayoutChannel = entities.PayoutChannelBankTransfer
		h := newPayoutHarness(field, &fakeChannel{channel: entities.PayoutChannelWalletPushA}, PayoutConfig{MaxRetries: 5})

		res := h.uc.Dispatch(context.Background(), paidPayment)
		if res.Outcome != entities.DispatchOutcomeNotConfigured || !errors.Is(res.Err, entities.ErrConfiguration) {
			t.Fatalf("expected not_configured, got %+v", res)
		}
		got := h.payouts.rows[res.Payout.ID]
		if got.Status != entities.PayoutStatusFailed || got.Retryable || got.NextRetryAt != nil {
			t.Fatalf("unexpected payout row: %+v", got)
		}
		due, _ := h.payouts.ListDueForRetry(context.Background(), h.advance(time.Hour), 10)
		if len(due) != 0 {
			t.Fatalf("configuration failures must not be picked by retries, got %d", len(due))
		}
	})

	t.Run("invalid recipient is not retried", func(t *testing.T) {
		channel := &fakeChannel{channel: entities.PayoutChannelWalletPushA, respond: func(int32) (interfaces.PayoutResult, error) {
			return interfaces.PayoutResult{}, entities.ErrInvalidRecipient
		}}
		h := newPayoutHarness(walletField, channel, PayoutConfig{MaxRetries: 5})

		res := h.uc.Dispatch(context.Background(), paidPayment)
		if res.Outcome != entities.DispatchOutcomeFailed || res.Payout.Retryable {
			t.Fatalf("expected non retryable failure, got %+v", res)
		}
	})

	t.Run("claim error is reported without provider call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		payouts := mock_interfaces.NewMockIPayoutRepository(ctrl)
		fields := mock_interfaces.NewMockIFieldRepository(ctrl)
		channel := mock_interfaces.NewMockIPayoutChannel(ctrl)
		channel.EXPECT().Channel().Return(entities.PayoutChannelWalletPushA).AnyTimes()
		uc := NewPayoutUseCase(payouts, nil, fields, []interfaces.IPayoutChannel{channel}, nil, nil, PayoutConfig{}, nil)

		fields.EXPECT().Get(gomock.Any(), "field-1").Return(walletField, nil)
		payouts.EXPECT().ClaimAttempt(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Payout{}, false, errors.New("ddb down"))

		res := uc.Dispatch(context.Background(), paidPayment)
		if res.Outcome != entities.DispatchOutcomeError || res.Err == nil {
			t.Fatalf("expected error outcome, got %+v", res)
		}
	})
}

func TestPayoutUseCase_ConcurrentDispatch(t *testing.T) {
	channel := &fakeChannel{channel: entities.PayoutChannelWalletPushA, delay: 5 * time.Millisecond}
	h := newPayoutHarness(walletField, channel, PayoutConfig{MaxRetries: 5})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.uc.Dispatch(context.Background(), paidPayment)
		}()
	}
	wg.Wait()

	if got := channel.calls.Load(); got != 1 {
		t.Fatalf("expected one provider call, got %d", got)
	}
	if got := h.payouts.count(entities.PayoutStatusCompleted); got != 1 {
		t.Fatalf("expected one completed payout, got %d", got)
	}
}

func TestPayoutUseCase_RetryDue(t *testing.T) {
	t.Run("retry reuses the key and completes once", func(t *testing.T) {
		channel := &fakeChannel{channel: entities.PayoutChannelWalletPushA, respond: func(call int32) (interfaces.PayoutResult, error) {
			if call == 1 {
				return interfaces.PayoutResult{}, entities.ErrProviderUnavailable
			}
			return interfaces.PayoutResult{ProviderID: "prov-2", Status: entities.ProviderStatusSucceeded, ProviderStatus: "succeeded"}, nil
		}}
		h := newPayoutHarness(walletField, channel, PayoutConfig{MaxRetries: 5})
		ctx := context.Background()

		first := h.uc.Dispatch(ctx, paidPayment)
		if first.Outcome != entities.DispatchOutcomeFailed {
			t.Fatalf("expected first attempt to fail, got %s", first.Outcome)
		}

		summary, err := h.uc.RetryDue(ctx, h.advance(time.Minute))
		if err != nil || summary.Due != 0 {
			t.Fatalf("expected nothing due yet, got %+v err=%v", summary, err)
		}

		summary, err = h.uc.RetryDue(ctx, h.advance(5*time.Minute))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.Due != 1 || summary.Completed != 1 {
			t.Fatalf("unexpected summary: %+v", summary)
		}

		summary, err = h.uc.RetryDue(ctx, h.advance(time.Hour))
		if err != nil || summary.Due != 0 {
			t.Fatalf("expected nothing left to retry, got %+v err=%v", summary, err)
		}

		if got := h.payouts.count(entities.PayoutStatusCompleted); got != 1 {
			t.Fatalf("expected one completed payout, got %d", got)
		}
		prev := h.payouts.rows[first.Payout.ID]
		if prev.SupersededBy == "" {
			t.Fatalf("expected failed attempt to be superseded: %+v", prev)
		}
		retried := h.payouts.rows[prev.SupersededBy]
		if retried.RetryCount != 1 || retried.Status != entities.PayoutStatusCompleted {
			t.Fatalf("unexpected retried payout: %+v", retried)
		}
		if len(channel.keys) != 2 || channel.keys[0] != channel.keys[1] {
			t.Fatalf("expected both attempts to carry the same idempotency key, got %v", channel.keys)
		}
	})

	t.Run("concurrent sweeps never complete twice", func(t *testing.T) {
		channel := &fakeChannel{channel: entities.PayoutChannelWalletPushA, delay: 5 * time.Millisecond, respond: func(call int32) (interfaces.PayoutResult, error) {
			if call == 1 {
				return interfaces.PayoutResult{}, entities.ErrProviderUnavailable
			}
			return interfaces.PayoutResult{ProviderID: "prov-2", Status: entities.ProviderStatusSucceeded}, nil
		}}
		h := newPayoutHarness(walletField, channel, PayoutConfig{MaxRetries: 5})
		ctx := context.Background()
		h.uc.Dispatch(ctx, paidPayment)
		at := h.advance(10 * time.Minute)

		var wg sync.WaitGroup
		for i := 0; i < 6; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := h.uc.RetryDue(ctx, at); err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			}()
		}
		wg.Wait()

		if got := h.payouts.count(entities.PayoutStatusCompleted); got != 1 {
			t.Fatalf("expected one completed payout, got %d", got)
		}
		if got := channel.calls.Load(); got != 2 {
			t.Fatalf("expected two provider calls in total, got %d", got)
		}
	})

	t.Run("retries stop at the configured maximum", func(t *testing.T) {
		channel := &fakeChannel{channel: entities.PayoutChannelWalletPushA, respond: func(int32) (interfaces.PayoutResult, error) {
			return interfaces.PayoutResult{}, entities.ErrProviderUnavailable
		}}
		h := newPayoutHarness(walletField, channel, PayoutConfig{MaxRetries: 2})
		ctx := context.Background()

		h.uc.Dispatch(ctx, paidPayment)
		for i := 0; i < 5; i++ {
			if _, err := h.uc.RetryDue(ctx, h.advance(10*time.Minute)); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		if got := channel.calls.Load(); got != 3 {
			t.Fatalf("expected initial attempt plus two retries, got %d calls", got)
		}
	})

	t.Run("list error is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		payouts := mock_interfaces.NewMockIPayoutRepository(ctrl)
		uc := NewPayoutUseCase(payouts, nil, nil, nil, nil, nil, PayoutConfig{}, nil)
		payouts.EXPECT().ListDueForRetry(gomock.Any(), gomock.Any(), defaultRetryBatchSize).Return(nil, errors.New("ddb"))

		if _, err := uc.RetryDue(context.Background(), time.Now()); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestPayoutUseCase_RetryPayout(t *testing.T) {
	t.Run("manual retry after configuration fix", func(t *testing.T) {
		field := walletField
		field.OwnerPayoutChannel = entities.PayoutChannelWalletPushB
		channelA := &fakeChannel{channel: entities.PayoutChannelWalletPushA}
		h := newPayoutHarness(field, channelA, PayoutConfig{MaxRetries: 5})
		ctx := context.Background()

		first := h.uc.Dispatch(ctx, paidPayment)
		if first.Outcome != entities.DispatchOutcomeNotConfigured {
			t.Fatalf("expected not_configured, got %s", first.Outcome)
		}

		h.uc.fields = memFieldRepo{"field-1": walletField}
		res, err := h.uc.RetryPayout(ctx, first.Payout.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Outcome != entities.DispatchOutcomeCompleted {
			t.Fatalf("expected completed, got %+v", res)
		}

		if _, err := h.uc.RetryPayout(ctx, first.Payout.ID); !errors.Is(err, ErrPayoutNotRetryable) {
			t.Fatalf("expected superseded payout to be rejected, got %v", err)
		}
	})

	t.Run("unknown payout", func(t *testing.T) {
		h := newPayoutHarness(walletField, nil, PayoutConfig{})
		if _, err := h.uc.RetryPayout(context.Background(), "nope"); !errors.Is(err, ErrPayoutNotFound) {
			t.Fatalf("expected ErrPayoutNotFound, got %v", err)
		}
	})

	t.Run("completed payout is rejected", func(t *testing.T) {
		h := newPayoutHarness(walletField, &fakeChannel{channel: entities.PayoutChannelWalletPushA}, PayoutConfig{})
		done := h.uc.Dispatch(context.Background(), paidPayment)
		if _, err := h.uc.RetryPayout(context.Background(), done.Payout.ID); !errors.Is(err, ErrPayoutNotRetryable) {
			t.Fatalf("expected ErrPayoutNotRetryable, got %v", err)
		}
	})
}

func TestPayoutUseCase_Queries(t *testing.T) {
	h := newPayoutHarness(walletField, &fakeChannel{channel: entities.PayoutChannelWalletPushA}, PayoutConfig{})
	done := h.uc.Dispatch(context.Background(), paidPayment)

	t.Run("list by status validates input", func(t *testing.T) {
		if _, err := h.uc.ListByStatus(context.Background(), "lost", 10); !errors.Is(err, ErrInvalidPayoutStatus) {
			t.Fatalf("expected ErrInvalidPayoutStatus, got %v", err)
		}
		got, err := h.uc.ListByStatus(context.Background(), "COMPLETED", 0)
		if err != nil || len(got) != 1 {
			t.Fatalf("expected one completed payout, got %d err=%v", len(got), err)
		}
	})

	t.Run("list by payment", func(t *testing.T) {
		if _, err := h.uc.ListByPaymentID(context.Background(), " "); !errors.Is(err, ErrInvalidPaymentID) {
			t.Fatalf("expected ErrInvalidPaymentID, got %v", err)
		}
		got, err := h.uc.ListByPaymentID(context.Background(), "pay-1")
		if err != nil || len(got) != 1 || got[0].ID != done.Payout.ID {
			t.Fatalf("unexpected list: %+v err=%v", got, err)
		}
	})

	t.Run("provider status", func(t *testing.T) {
		res, err := h.uc.ProviderStatus(context.Background(), done.Payout.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ProviderID != "prov-1" || res.Status != entities.ProviderStatusSucceeded {
			t.Fatalf("unexpected provider status: %+v", res)
		}
	})
}

// markPaid stores paidPayment as pending and moves it to paid, the way a webhook does.
func (h *payoutHarness) markPaid(t *testing.T) entities.Payment {
	t.Helper()
	pending := paidPayment
	pending.Status = entities.PaymentStatusPending
	h.payments.rows[pending.ID] = pending

	paid, ok, err := h.payments.TransitionFromPending(context.Background(), pending.ID, entities.PaymentTransition{
		To:                entities.PaymentStatusPaid,
		WebhookReceivedAt: h.now(),
	})
	if err != nil || !ok || paid.PayoutPendingSince == nil {
		t.Fatalf("expected paid payment with payout pending marker, got %+v ok=%v err=%v", paid, ok, err)
	}
	return paid
}

func TestPayoutUseCase_Reconcile(t *testing.T) {
	walletFieldB := walletField
	walletFieldB.OwnerPayoutChannel = entities.PayoutChannelWalletPushB

	t.Run("payout lost to a failed claim is paid by a later sweep", func(t *testing.T) {
		channel := &fakeChannel{channel: entities.PayoutChannelWalletPushA}
		h := newPayoutHarness(walletField, channel, PayoutConfig{MaxRetries: 5})
		h.uc.payouts = &flakyPayoutRepo{memPayoutRepo: h.payouts, failClaims: 1}
		ctx := context.Background()
		payment := h.markPaid(t)

		first := h.uc.Dispatch(ctx, payment)
		if first.Outcome != entities.DispatchOutcomeError || len(h.payouts.rows) != 0 {
			t.Fatalf("expected claim error without a row, got %+v rows=%d", first, len(h.payouts.rows))
		}

		summary, err := h.uc.RetryDue(ctx, h.advance(time.Minute))
		if err != nil || summary.Reconciled != 0 || channel.calls.Load() != 0 {
			t.Fatalf("expected the grace period to hold the payment back, got %+v err=%v", summary, err)
		}

		summary, err = h.uc.RetryDue(ctx, h.advance(24*time.Hour))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.Due != 0 || summary.Reconciled != 1 || summary.Completed != 1 {
			t.Fatalf("unexpected summary: %+v", summary)
		}
		if got := h.payouts.count(entities.PayoutStatusCompleted); got != 1 || channel.calls.Load() != 1 {
			t.Fatalf("expected one completed payout from one provider call, got %d completed, %d calls", got, channel.calls.Load())
		}
		if h.payments.pendingSince(payment.ID) != nil {
			t.Fatalf("expected payout pending marker to be cleared")
		}

		summary, _ = h.uc.RetryDue(ctx, h.advance(24*time.Hour))
		if summary.Reconciled != 0 || channel.calls.Load() != 1 {
			t.Fatalf("expected nothing left to reconcile, got %+v", summary)
		}
	})

	t.Run("persisted failure hands the payment to the retry queue", func(t *testing.T) {
		channel := &fakeChannel{channel: entities.PayoutChannelWalletPushA, respond: func(int32) (interfaces.PayoutResult, error) {
			return interfaces.PayoutResult{}, entities.ErrProviderUnavailable
		}}
		h := newPayoutHarness(walletField, channel, PayoutConfig{MaxRetries: 5})
		payment := h.markPaid(t)

		if res := h.uc.Dispatch(context.Background(), payment); res.Outcome != entities.DispatchOutcomeFailed {
			t.Fatalf("expected failed, got %s", res.Outcome)
		}
		if h.payments.pendingSince(payment.ID) != nil {
			t.Fatalf("expected payout pending marker to be cleared once the failure is persisted")
		}
	})

	t.Run("stale attempt that never reached the provider is re-dispatched", func(t *testing.T) {
		channel := &fakeChannel{channel: entities.PayoutChannelWalletPushA}
		h := newPayoutHarness(walletField, channel, PayoutConfig{MaxRetries: 5, StaleAfter: 10 * time.Minute})
		ctx := context.Background()
		payment := h.markPaid(t)

		// A process that died right after claiming leaves this row behind.
		orphan, ok, err := h.payouts.ClaimAttempt(ctx, entities.Payout{
			ID:             "po-orphan",
			PaymentID:      payment.ID,
			FieldID:        payment.FieldID,
			Channel:        entities.PayoutChannelWalletPushA,
			Amount:         payment.NetToOwner,
			IdempotencyKey: PayoutIdempotencyKey(payment.ID, payment.FieldID),
			CreatedAt:      h.now(),
			UpdatedAt:      h.now(),
		}, h.now().Add(-10*time.Minute))
		if err != nil || !ok {
			t.Fatalf("claim: ok=%v err=%v", ok, err)
		}

		summary, err := h.uc.RetryDue(ctx, h.advance(11*time.Minute))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.Stale != 1 || summary.Completed != 1 {
			t.Fatalf("unexpected summary: %+v", summary)
		}
		prev := h.payouts.rows[orphan.ID]
		if prev.Status != entities.PayoutStatusFailed || prev.SupersededBy == "" {
			t.Fatalf("expected orphaned attempt to be abandoned, got %+v", prev)
		}
		next := h.payouts.rows[prev.SupersededBy]
		if next.Status != entities.PayoutStatusCompleted || next.RetryCount != 1 || next.IdempotencyKey != orphan.IdempotencyKey {
			t.Fatalf("unexpected takeover attempt: %+v", next)
		}
		if channel.calls.Load() != 1 || h.payments.pendingSince(payment.ID) != nil {
			t.Fatalf("expected one provider call and a cleared marker, got %d calls", channel.calls.Load())
		}
	})

	t.Run("accepted transfer whose completion was lost is confirmed and not paid again", func(t *testing.T) {
		channel := &fakeChannel{channel: entities.PayoutChannelWalletPushB}
		h := newPayoutHarness(walletFieldB, channel, PayoutConfig{MaxRetries: 5})
		h.uc.payouts = &flakyPayoutRepo{memPayoutRepo: h.payouts, failCompletes: 1}
		ctx := context.Background()
		payment := h.markPaid(t)

		first := h.uc.Dispatch(ctx, payment)
		if first.Outcome != entities.DispatchOutcomeError {
			t.Fatalf("expected error outcome, got %s", first.Outcome)
		}
		row := h.payouts.rows[first.Payout.ID]
		if row.Status != entities.PayoutStatusProcessing || row.ProviderID != "prov-1" || row.CompletedAt != nil {
			t.Fatalf("expected processing row with provider reference, got %+v", row)
		}

		summary, err := h.uc.RetryDue(ctx, h.advance(11*time.Minute))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.Stale != 1 || summary.Completed != 1 {
			t.Fatalf("unexpected summary: %+v", summary)
		}
		if channel.calls.Load() != 1 || channel.statusCalls.Load() != 1 {
			t.Fatalf("expected a status lookup instead of a second transfer, got %d transfers and %d lookups", channel.calls.Load(), channel.statusCalls.Load())
		}
		if got := h.payouts.rows[first.Payout.ID]; got.Status != entities.PayoutStatusCompleted || got.ProviderID != "prov-1" {
			t.Fatalf("unexpected payout: %+v", got)
		}
		if h.payments.pendingSince(payment.ID) != nil {
			t.Fatalf("expected payout pending marker to be cleared")
		}
	})

	t.Run("pending transfer stays processing until the provider settles it", func(t *testing.T) {
		var lookups int
		channel := &fakeChannel{
			channel: entities.PayoutChannelWalletPushB,
			respond: func(int32) (interfaces.PayoutResult, error) {
				return interfaces.PayoutResult{ProviderID: "prov-7", Status: entities.ProviderStatusPending, ProviderStatus: "processing"}, nil
			},
			status: func(id string) (interfaces.PayoutResult, error) {
				lookups++
				if lookups == 1 {
					return interfaces.PayoutResult{ProviderID: id, Status: entities.ProviderStatusPending, ProviderStatus: "processing"}, nil
				}
				return interfaces.PayoutResult{ProviderID: id, Status: entities.ProviderStatusSucceeded, ProviderStatus: "completed"}, nil
			},
		}
		h := newPayoutHarness(walletFieldB, channel, PayoutConfig{MaxRetries: 5})
		ctx := context.Background()
		payment := h.markPaid(t)

		res := h.uc.Dispatch(ctx, payment)
		if res.Outcome != entities.DispatchOutcomeSubmitted {
			t.Fatalf("expected submitted, got %s", res.Outcome)
		}
		row := h.payouts.rows[res.Payout.ID]
		if row.Status != entities.PayoutStatusProcessing || row.ProviderID != "prov-7" || row.ProviderStatus != "processing" {
			t.Fatalf("expected processing row with provider reference, got %+v", row)
		}
		if h.payments.pendingSince(payment.ID) == nil {
			t.Fatalf("unsettled transfer must keep the payout pending marker")
		}

		summary, _ := h.uc.RetryDue(ctx, h.advance(11*time.Minute))
		if summary.Submitted != 1 || h.payouts.rows[res.Payout.ID].Status != entities.PayoutStatusProcessing {
			t.Fatalf("expected transfer to stay processing, got %+v", summary)
		}

		summary, _ = h.uc.RetryDue(ctx, h.advance(11*time.Minute))
		if summary.Completed != 1 {
			t.Fatalf("expected transfer to complete, got %+v", summary)
		}
		if got := h.payouts.rows[res.Payout.ID]; got.Status != entities.PayoutStatusCompleted || got.ProviderStatus != "completed" {
			t.Fatalf("unexpected payout: %+v", got)
		}
		if channel.calls.Load() != 1 || h.payments.pendingSince(payment.ID) != nil {
			t.Fatalf("expected one transfer and a cleared marker, got %d transfers", channel.calls.Load())
		}
	})

	t.Run("transfer the provider reports failed is scheduled for retry", func(t *testing.T) {
		channel := &fakeChannel{
			channel: entities.PayoutChannelWalletPushB,
			respond: func(int32) (interfaces.PayoutResult, error) {
				return interfaces.PayoutResult{ProviderID: "prov-8", Status: entities.ProviderStatusPending, ProviderStatus: "queued"}, nil
			},
			status: func(id string) (interfaces.PayoutResult, error) {
				return interfaces.PayoutResult{ProviderID: id, Status: entities.ProviderStatusFailed, ProviderStatus: "rejected"}, nil
			},
		}
		h := newPayoutHarness(walletFieldB, channel, PayoutConfig{MaxRetries: 5})
		ctx := context.Background()
		res := h.uc.Dispatch(ctx, h.markPaid(t))

		summary, _ := h.uc.RetryDue(ctx, h.advance(11*time.Minute))
		if summary.Failed != 1 {
			t.Fatalf("expected a failed outcome, got %+v", summary)
		}
		got := h.payouts.rows[res.Payout.ID]
		if got.Status != entities.PayoutStatusFailed || !got.Retryable || got.NextRetryAt == nil || got.ProviderStatus != "rejected" {
			t.Fatalf("unexpected payout: %+v", got)
		}
	})

	t.Run("listing failures are counted without aborting the sweep", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		payouts := mock_interfaces.NewMockIPayoutRepository(ctrl)
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPayoutUseCase(payouts, payments, nil, nil, nil, nil, PayoutConfig{}, nil)

		payouts.EXPECT().ListDueForRetry(gomock.Any(), gomock.Any(), defaultRetryBatchSize).Return(nil, nil)
		payouts.EXPECT().ListStaleProcessing(gomock.Any(), gomock.Any(), defaultRetryBatchSize).Return(nil, errors.New("ddb"))
		payments.EXPECT().ListPayoutPending(gomock.Any(), gomock.Any(), defaultRetryBatchSize).Return(nil, errors.New("ddb"))

		summary, err := uc.RetryDue(context.Background(), time.Now())
		if err != nil || summary.Errors != 2 {
			t.Fatalf("expected two counted errors, got %+v err=%v", summary, err)
		}
	})
}
