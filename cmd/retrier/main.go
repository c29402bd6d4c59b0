package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"arena_payments/internal/adapter/scheduler"
	"arena_payments/internal/bootstrap"
	"arena_payments/internal/config"
	"arena_payments/internal/infrastructure/lock"
	"arena_payments/internal/infrastructure/messaging"
	"arena_payments/internal/infrastructure/telemetry"

	_ "github.com/joho/godotenv/autoload"
	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// The retrier re-dispatches failed payouts whose next retry time has passed. It sweeps
// on a ticker and whenever a message arrives on PAYOUT_RETRY_SUBJECT.
func main() {
	if err := run(); err != nil {
		log.Fatalf("retrier: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, err := telemetry.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	logger = logger.With(zap.String("process", "retrier"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.InitTracing(ctx, telemetry.TracingConfig{
		Enabled:     cfg.TracingEnabled,
		ServiceName: cfg.ServiceName + "-retrier",
		Environment: cfg.Env,
		Endpoint:    cfg.OTLPEndpoint,
	}, logger)
	if err != nil {
		return err
	}
	defer func() { _ = shutdownTracing(context.Background()) }()

	container, err := bootstrap.NewContainer(ctx, cfg, prometheus.NewRegistry(), logger)
	if err != nil {
		return err
	}
	defer func() { _ = container.Close() }()

	var locker scheduler.ILocker
	if cfg.RedisURL != "" {
		opts, err := lock.ParseRedisURL(cfg.RedisURL)
		if err != nil {
			return err
		}
		rdb := redis.NewClient(opts)
		defer func() { _ = rdb.Close() }()
		if err := rdb.Ping(ctx).Err(); err != nil {
			return err
		}
		locker = lock.NewRedisLocker(rdb)
	} else {
		logger.Warn("REDIS_URL not set, sweeps are not coordinated across replicas")
	}

	var trigger <-chan struct{}
	if cfg.NATSURL != "" {
		nc, err := nats.Connect(cfg.NATSURL, nats.Name(cfg.ServiceName+"-retrier"))
		if err != nil {
			return err
		}
		defer nc.Close()
		t, err := messaging.SubscribeRetryTrigger(nc, cfg.PayoutRetrySubject, logger)
		if err != nil {
			return err
		}
		defer func() { _ = t.Close() }()
		trigger = t.C()
	}

	worker := scheduler.NewRetryWorker(container.Payouts, locker, scheduler.RetryWorkerConfig{
		Interval: cfg.PayoutRetryInterval,
		LockTTL:  cfg.PayoutLockTTL,
	}, logger)
	worker.RunForever(ctx, trigger)
	return nil
}
