package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"arena_payments/internal/adapter/persistence/repository"
	"arena_payments/internal/config"
	"arena_payments/internal/infrastructure/database"
	"arena_payments/internal/infrastructure/messaging"
	"arena_payments/internal/infrastructure/telemetry"
	"arena_payments/internal/usecase"
	"arena_payments/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

type eventPublisher interface {
	interfaces.IEventPublisher
	Close() error
}

// Container holds the use cases of one process and the resources they share.
type Container struct {
	Metrics  *telemetry.Metrics
	Checkout *usecase.CheckoutUseCase
	Webhooks *usecase.WebhookUseCase
	Payouts  *usecase.PayoutUseCase

	db        *sql.DB
	publisher eventPublisher
	log       *zap.Logger
}

// NewContainer connects DynamoDB and Postgres, builds the provider adapters and wires
// the use cases. Close releases what it opened.
func NewContainer(ctx context.Context, cfg *config.Config, reg prometheus.Registerer, log *zap.Logger) (*Container, error) {
	ddb, err := database.ConnectDynamoDB(ctx)
	if err != nil {
		return nil, fmt.Errorf("connect dynamodb: %w", err)
	}
	db, err := database.ConnectPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	var publisher eventPublisher = messaging.NoopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		publisher = messaging.NewKafkaPublisher(cfg.KafkaBrokers)
		log.Info("publishing state changes to kafka", zap.Strings("brokers", cfg.KafkaBrokers))
	} else {
		log.Warn("KAFKA_BROKERS not set, state change events are dropped")
	}

	metrics := telemetry.NewMetrics(reg)
	httpClient := telemetry.WrapHTTPClient(nil, cfg.ProviderTimeout)
	providers := BuildProviders(cfg, httpClient, log)

	paymentRepo := repository.NewPaymentDynamoRepository(ddb)
	payoutRepo := repository.NewPayoutDynamoRepository(ddb)
	reservationRepo := repository.NewReservationPostgresRepository(db)
	fieldRepo := repository.NewFieldPostgresRepository(db)

	payouts := usecase.NewPayoutUseCase(payoutRepo, paymentRepo, fieldRepo, providers.Channels, publisher, metrics, usecase.PayoutConfig{
		RetryDelay:      cfg.PayoutRetryDelay,
		MaxRetries:      cfg.PayoutMaxRetries,
		StaleAfter:      cfg.PayoutStaleAfter,
		RetryBatchSize:  cfg.PayoutRetryBatchSize,
		ProviderTimeout: cfg.ProviderTimeout,
	}, log)

	checkout := usecase.NewCheckoutUseCase(paymentRepo, reservationRepo, fieldRepo, providers.Checkout, publisher, metrics, usecase.CheckoutConfig{
		Currency:        cfg.Currency,
		ProviderTimeout: cfg.ProviderTimeout,
	}, log)

	webhooks := usecase.NewWebhookUseCase(providers.Gateways, paymentRepo, reservationRepo, payouts, publisher, metrics, usecase.WebhookConfig{
		AllowUnsigned:   cfg.WebhookAllowUnsigned,
		ProviderTimeout: cfg.ProviderTimeout,
	}, log)

	return &Container{
		Metrics:   metrics,
		Checkout:  checkout,
		Webhooks:  webhooks,
		Payouts:   payouts,
		db:        db,
		publisher: publisher,
		log:       log,
	}, nil
}

func (c *Container) Close() error {
	return errors.Join(c.publisher.Close(), c.db.Close())
}
