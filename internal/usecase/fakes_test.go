package usecase

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"arena_payments/internal/domain/entities"
	"arena_payments/internal/usecase/interfaces"
)

// memPaymentRepo mirrors the conditional write semantics of the DynamoDB store.
type memPaymentRepo struct {
	mu          sync.Mutex
	rows        map[string]entities.Payment
	transitions int
}

func newMemPaymentRepo(ps ...entities.Payment) *memPaymentRepo {
	r := &memPaymentRepo{rows: map[string]entities.Payment{}}
	for _, p := range ps {
		r.rows[p.ID] = p
	}
	return r
}

func (r *memPaymentRepo) Create(_ context.Context, p entities.Payment) (entities.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[p.ID] = p
	return p, nil
}

func (r *memPaymentRepo) GetByID(_ context.Context, id string) (entities.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rows[id], nil
}

func (r *memPaymentRepo) GetByProviderToken(_ context.Context, provider entities.Provider, token string) (entities.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.rows {
		if p.Provider == provider && p.ProviderToken == token {
			return p, nil
		}
	}
	return entities.Payment{}, nil
}

func (r *memPaymentRepo) GetByClientReference(_ context.Context, ref string) (entities.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.rows {
		if p.ClientReference == ref {
			return p, nil
		}
	}
	return entities.Payment{}, nil
}

func (r *memPaymentRepo) TransitionFromPending(_ context.Context, id string, t entities.PaymentTransition) (entities.Payment, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.rows[id]
	if !ok || p.Status != entities.PaymentStatusPending {
		return p, false, nil
	}
	received := t.WebhookReceivedAt
	p.Status = t.To
	p.ProviderStatus = t.ProviderStatus
	p.WebhookReceivedAt = &received
	p.ProviderPayloadRaw = t.ProviderPayloadRaw
	p.UpdatedAt = received
	if t.To == entities.PaymentStatusPaid {
		p.PayoutPendingSince = &received
	}
	r.rows[id] = p
	r.transitions++
	return p, true, nil
}

func (r *memPaymentRepo) ListPayoutPending(_ context.Context, before time.Time, limit int) ([]entities.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.Payment, 0)
	for _, p := range r.rows {
		if p.PayoutPendingSince != nil && !p.PayoutPendingSince.After(before) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PayoutPendingSince.Before(*out[j].PayoutPendingSince) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memPaymentRepo) ClearPayoutPending(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.rows[id]; ok {
		p.PayoutPendingSince = nil
		r.rows[id] = p
	}
	return nil
}

func (r *memPaymentRepo) pendingSince(id string) *time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rows[id].PayoutPendingSince
}

type memSlot struct {
	payoutID   string
	status     entities.PayoutStatus
	retryCount int
	updatedAt  time.Time
}

// memPayoutRepo mirrors the slot claim of the DynamoDB payout store.
type memPayoutRepo struct {
	mu    sync.Mutex
	rows  map[string]entities.Payout
	slots map[string]memSlot
}

func newMemPayoutRepo() *memPayoutRepo {
	return &memPayoutRepo{rows: map[string]entities.Payout{}, slots: map[string]memSlot{}}
}

func (r *memPayoutRepo) ClaimAttempt(_ context.Context, p entities.Payout, staleBefore time.Time) (entities.Payout, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	slot, exists := r.slots[p.IdempotencyKey]
	if exists {
		stale := slot.status == entities.PayoutStatusProcessing && slot.updatedAt.Before(staleBefore)
		if slot.status.IsActive() && !stale {
			return r.rows[slot.payoutID], false, nil
		}
		prev := r.rows[slot.payoutID]
		prev.SupersededBy = p.ID
		prev.NextRetryAt = nil
		if stale {
			prev.Status = entities.PayoutStatusFailed
			prev.ProviderError = "abandoned"
		}
		r.rows[prev.ID] = prev
		p.RetryCount = slot.retryCount + 1
	}

	p.Status = entities.PayoutStatusProcessing
	r.rows[p.ID] = p
	r.slots[p.IdempotencyKey] = memSlot{payoutID: p.ID, status: p.Status, retryCount: p.RetryCount, updatedAt: p.UpdatedAt}
	return p, true, nil
}

var errSlotMoved = errors.New("payout slot moved to another attempt")

func (r *memPayoutRepo) MarkCompleted(_ context.Context, p entities.Payout) error {
	return r.settle(p, entities.PayoutStatusCompleted)
}

func (r *memPayoutRepo) MarkFailed(_ context.Context, p entities.Payout) error {
	return r.settle(p, entities.PayoutStatusFailed)
}

func (r *memPayoutRepo) RecordSubmission(_ context.Context, p entities.Payout) error {
	return r.settle(p, entities.PayoutStatusProcessing)
}

// settle applies the same guards as the DynamoDB transaction: the row must still be
// processing and own its slot.
func (r *memPayoutRepo) settle(p entities.Payout, status entities.PayoutStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.slots[p.IdempotencyKey]
	if s.payoutID != p.ID || r.rows[p.ID].Status != entities.PayoutStatusProcessing {
		return errSlotMoved
	}
	p.Status = status
	r.rows[p.ID] = p
	s.status = status
	s.updatedAt = p.UpdatedAt
	r.slots[p.IdempotencyKey] = s
	return nil
}

func (r *memPayoutRepo) GetByID(_ context.Context, id string) (entities.Payout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rows[id], nil
}

func (r *memPayoutRepo) ListByPaymentID(_ context.Context, paymentID string) ([]entities.Payout, error) {
	return r.filter(func(p entities.Payout) bool { return p.PaymentID == paymentID }), nil
}

func (r *memPayoutRepo) ListByStatus(_ context.Context, status entities.PayoutStatus, limit int) ([]entities.Payout, error) {
	out := r.filter(func(p entities.Payout) bool { return p.Status == status })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memPayoutRepo) ListDueForRetry(_ context.Context, now time.Time, limit int) ([]entities.Payout, error) {
	out := r.filter(func(p entities.Payout) bool {
		return p.Status == entities.PayoutStatusFailed && p.Retryable && p.SupersededBy == "" && p.NextRetryAt != nil && !p.NextRetryAt.After(now)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memPayoutRepo) ListStaleProcessing(_ context.Context, before time.Time, limit int) ([]entities.Payout, error) {
	out := r.filter(func(p entities.Payout) bool {
		return p.Status == entities.PayoutStatusProcessing && p.SupersededBy == "" && p.UpdatedAt.Before(before)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memPayoutRepo) filter(keep func(entities.Payout) bool) []entities.Payout {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.Payout, 0)
	for _, p := range r.rows {
		if keep(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

func (r *memPayoutRepo) count(status entities.PayoutStatus) int {
	return len(r.filter(func(p entities.Payout) bool { return p.Status == status }))
}

// flakyPayoutRepo fails the first failClaims claims and failCompletes completions.
type flakyPayoutRepo struct {
	*memPayoutRepo
	failMu        sync.Mutex
	failClaims    int
	failCompletes int
}

func (r *flakyPayoutRepo) ClaimAttempt(ctx context.Context, p entities.Payout, staleBefore time.Time) (entities.Payout, bool, error) {
	r.failMu.Lock()
	if r.failClaims > 0 {
		r.failClaims--
		r.failMu.Unlock()
		return entities.Payout{}, false, errors.New("ProvisionedThroughputExceededException")
	}
	r.failMu.Unlock()
	return r.memPayoutRepo.ClaimAttempt(ctx, p, staleBefore)
}

func (r *flakyPayoutRepo) MarkCompleted(ctx context.Context, p entities.Payout) error {
	r.failMu.Lock()
	if r.failCompletes > 0 {
		r.failCompletes--
		r.failMu.Unlock()
		return errors.New("ProvisionedThroughputExceededException")
	}
	r.failMu.Unlock()
	return r.memPayoutRepo.MarkCompleted(ctx, p)
}

type memReservationRepo struct {
	mu   sync.Mutex
	rows map[string]entities.Reservation
	paid int
}

func newMemReservationRepo(rs ...entities.Reservation) *memReservationRepo {
	r := &memReservationRepo{rows: map[string]entities.Reservation{}}
	for _, res := range rs {
		r.rows[res.ID] = res
	}
	return r
}

func (r *memReservationRepo) Get(_ context.Context, id string) (entities.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rows[id], nil
}

func (r *memReservationRepo) MarkPaid(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := r.rows[id]
	res.IsPaid = true
	r.rows[id] = res
	r.paid++
	return nil
}

type memFieldRepo map[string]entities.Field

func (r memFieldRepo) Get(_ context.Context, id string) (entities.Field, error) {
	return r[id], nil
}

// fakeChannel records every CreatePayout call. respond decides the outcome per call number
// and status answers GetStatus; both default to success.
type fakeChannel struct {
	channel     entities.PayoutChannel
	calls       atomic.Int32
	statusCalls atomic.Int32
	delay       time.Duration
	mu          sync.Mutex
	keys        []string
	respond     func(call int32) (interfaces.PayoutResult, error)
	status      func(providerID string) (interfaces.PayoutResult, error)
}

func (c *fakeChannel) Channel() entities.PayoutChannel { return c.channel }

func (c *fakeChannel) CreatePayout(_ context.Context, req interfaces.PayoutRequest) (interfaces.PayoutResult, error) {
	n := c.calls.Add(1)
	c.mu.Lock()
	c.keys = append(c.keys, req.IdempotencyKey)
	c.mu.Unlock()
	if c.delay > 0 {
		time.Sleep(c.delay)
	}
	if c.respond != nil {
		return c.respond(n)
	}
	return interfaces.PayoutResult{ProviderID: "prov-1", Status: entities.ProviderStatusSucceeded, ProviderStatus: "succeeded"}, nil
}

func (c *fakeChannel) GetStatus(_ context.Context, providerID string) (interfaces.PayoutResult, error) {
	c.statusCalls.Add(1)
	if c.status != nil {
		return c.status(providerID)
	}
	return interfaces.PayoutResult{ProviderID: providerID, Status: entities.ProviderStatusSucceeded, ProviderStatus: "succeeded"}, nil
}

// fakeGateway confirms every token with a fixed status.
type fakeGateway struct {
	provider entities.Provider
	status   string
	ref      string
}

func (g *fakeGateway) Provider() entities.Provider { return g.provider }

func (g *fakeGateway) CreateInvoice(context.Context, interfaces.InvoiceRequest) (interfaces.Invoice, error) {
	return interfaces.Invoice{Token: "tok", CheckoutURL: "https://pay.example/tok"}, nil
}

func (g *fakeGateway) ExtractToken(payload []byte) (string, error) { return string(payload), nil }

func (g *fakeGateway) VerifyWebhook([]byte, http.Header) error { return nil }

func (g *fakeGateway) ConfirmStatus(_ context.Context, token string) (interfaces.Confirmation, error) {
	return interfaces.Confirmation{
		Token:           token,
		ClientReference: g.ref,
		Status:          entities.NormalizeProviderStatus(g.status),
		ProviderStatus:  g.status,
		Raw:             []byte(`{"status":"` + g.status + `"}`),
	}, nil
}
