package telemetry

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"arena_payments/internal/domain/entities"
	"arena_payments/internal/usecase/interfaces"
)

var _ interfaces.IMetrics = (*Metrics)(nil)

// Metrics holds the Prometheus collectors of the service.
type Metrics struct {
	checkouts    *prometheus.CounterVec
	webhooks     *prometheus.CounterVec
	payouts      *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// NewMetrics registers the collectors on reg. It panics on duplicate registration.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		checkouts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "arena_checkout_sessions_total",
			Help: "Checkout sessions created, by provider and outcome.",
		}, []string{"provider", "outcome"}),
		webhooks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "arena_webhooks_total",
			Help: "Provider webhooks processed, by provider and outcome.",
		}, []string{"provider", "outcome"}),
		payouts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "arena_payouts_total",
			Help: "Payout dispatch attempts, by channel and outcome.",
		}, []string{"channel", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "arena_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),
	}
	reg.MustRegister(m.checkouts, m.webhooks, m.payouts, m.httpDuration)
	return m
}

func (m *Metrics) CheckoutCreated(provider entities.Provider, outcome string) {
	m.checkouts.WithLabelValues(string(provider), outcome).Inc()
}

func (m *Metrics) WebhookProcessed(provider string, outcome string) {
	m.webhooks.WithLabelValues(provider, outcome).Inc()
}

func (m *Metrics) PayoutDispatched(channel entities.PayoutChannel, outcome entities.DispatchOutcome) {
	m.payouts.WithLabelValues(string(channel), string(outcome)).Inc()
}

// HTTPMiddleware observes request latency labelled by the matched route template.
func (m *Metrics) HTTPMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.httpDuration.
			WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
