package scheduler

import (
	"context"
	"time"

	"arena_payments/internal/usecase"

	"go.uber.org/zap"
)

const retryLockKey = "arena:payouts:retry-sweep"

// ILocker grants a best-effort exclusive lease. ok=false means another holder owns it.
type ILocker interface {
	TryAcquire(ctx context.Context, key string, ttl time.Duration) (release func(context.Context) error, ok bool, err error)
}

// IRetrySweeper is the part of the payout use case the worker drives.
type IRetrySweeper interface {
	RetryDue(ctx context.Context, now time.Time) (usecase.RetrySummary, error)
}

type RetryWorkerConfig struct {
	Interval time.Duration
	LockTTL  time.Duration
}

// RetryWorker sweeps failed payouts on a ticker and whenever a trigger fires.
//
// The lock only keeps replicas from sweeping at the same time. Double dispatch is
// prevented by the payout slot claim, so a lost or expired lock is harmless.

type RetryWorker struct {
	sweeper IRetrySweeper
	locker  ILocker
	cfg     RetryWorkerConfig
	log     *zap.Logger
	now     func() time.Time
}

func NewRetryWorker(sweeper IRetrySweeper, locker ILocker, cfg RetryWorkerConfig, log *zap.Logger) *RetryWorker {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Minute
	}
	if cfg.LockTTL <= 0 {
		cfg.LockTTL = 2 * time.Minute
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &RetryWorker{
		sweeper: sweeper,
		locker:  locker,
		cfg:     cfg,
		log:     log.Named("payout.retry_worker"),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// RunOnce performs one sweep if the lock can be taken. ran reports whether it did.
func (w *RetryWorker) RunOnce(ctx context.Context) (summary usecase.RetrySummary, ran bool, err error) {
	if w.locker != nil {
		release, ok, err := w.locker.TryAcquire(ctx, retryLockKey, w.cfg.LockTTL)
		if err != nil {
			return usecase.RetrySummary{}, false, err
		}
		if !ok {
			w.log.Debug("retry sweep skipped, lock held elsewhere")
			return usecase.RetrySummary{}, false, nil
		}
		defer func() {
			if rerr := release(context.WithoutCancel(ctx)); rerr != nil {
				w.log.Warn("releasing retry lock failed", zap.Error(rerr))
			}
		}()
	}

	summary, err = w.sweeper.RetryDue(ctx, w.now())
	return summary, true, err
}

// RunForever sweeps every Interval and on each trigger until ctx is done.
// trigger may be nil.
func (w *RetryWorker) RunForever(ctx context.Context, trigger <-chan struct{}) {
	ticker := time.NewTicker(w.cfg.Interval)
	defer ticker.Stop()

	w.log.Info("retry worker started", zap.Duration("interval", w.cfg.Interval))
	for {
		select {
		case <-ctx.Done():
			w.log.Info("retry worker stopped")
			return
		case <-ticker.C:
			w.sweep(ctx, "tick")
		case <-trigger:
			w.sweep(ctx, "trigger")
		}
	}
}

func (w *RetryWorker) sweep(ctx context.Context, reason string) {
	summary, ran, err := w.RunOnce(ctx)
	if err != nil {
		w.log.Error("retry sweep failed", zap.String("reason", reason), zap.Error(err))
		return
	}
	if ran && summary.Due+summary.Stale+summary.Reconciled > 0 {
		w.log.Info("retry sweep done",
			zap.String("reason", reason),
			zap.Int("due", summary.Due),
			zap.Int("stale", summary.Stale),
			zap.Int("reconciled", summary.Reconciled),
			zap.Int("completed", summary.Completed),
		)
	}
}
