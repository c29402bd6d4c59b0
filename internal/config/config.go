package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port     string
	Env      string
	LogLevel string

	Currency         string
	CurrencyExponent int32
	CheckoutProvider string
	ProviderTimeout  time.Duration

	WebhookAllowUnsigned bool

	PayoutRetryDelay     time.Duration
	PayoutMaxRetries     int
	PayoutStaleAfter     time.Duration
	PayoutRetryInterval  time.Duration
	PayoutRetryBatchSize int
	PayoutRetrySubject   string
	PayoutLockTTL        time.Duration

	HostedCheckout HostedCheckoutConfig
	WalletPushA    WalletPushConfig
	MercadoPago    MercadoPagoConfig
	Mobile         MobileConfig

	DatabaseURL  string
	RedisURL     string
	KafkaBrokers []string
	NATSURL      string

	TracingEnabled bool
	OTLPEndpoint   string
	ServiceName    string

	JWTSecret string
}

// HostedCheckoutConfig covers the hosted checkout provider, which also runs the wallet-push-B disbursements.
type HostedCheckoutConfig struct {
	BaseURL       string
	APIKey        string
	APIToken      string
	WebhookSecret string
	ReturnURL     string
	CancelURL     string
	CallbackURL   string
	StoreName     string
}

type WalletPushConfig struct {
	BaseURL string
	APIKey  string
}

type MercadoPagoConfig struct {
	AccessToken     string
	WebhookSecret   string
	NotificationURL string
	BackURL         string
	Mock            bool
}

// MobileConfig is the national mobile numbering plan payout recipients must match.
type MobileConfig struct {
	CountryCode    string
	Prefixes       []string
	NationalLength int
}

// Load reads the configuration from the environment, applying defaults for anything unset.
func Load() (*Config, error) {
	p := &parser{}
	cfg := &Config{
		Port:     getenvDefault("PORT", "8080"),
		Env:      getenvDefault("APP_ENV", "development"),
		LogLevel: getenvDefault("LOG_LEVEL", "info"),

		Currency:         strings.ToUpper(getenvDefault("CURRENCY", "XOF")),
		CurrencyExponent: int32(p.getInt("CURRENCY_EXPONENT", 0)),
		CheckoutProvider: strings.ToLower(getenvDefault("CHECKOUT_PROVIDER", "hosted_checkout")),
		ProviderTimeout:  p.getDuration("PROVIDER_TIMEOUT", 20*time.Second),

		WebhookAllowUnsigned: p.getBool("WEBHOOK_ALLOW_UNSIGNED", false),

		PayoutRetryDelay:     p.getDuration("PAYOUT_RETRY_DELAY", 5*time.Minute),
		PayoutMaxRetries:     p.getInt("PAYOUT_MAX_RETRIES", 5),
		PayoutStaleAfter:     p.getDuration("PAYOUT_STALE_AFTER", 10*time.Minute),
		PayoutRetryInterval:  p.getDuration("PAYOUT_RETRY_INTERVAL", time.Minute),
		PayoutRetryBatchSize: p.getInt("PAYOUT_RETRY_BATCH_SIZE", 50),
		PayoutRetrySubject:   getenvDefault("PAYOUT_RETRY_SUBJECT", "payouts.retry"),
		PayoutLockTTL:        p.getDuration("PAYOUT_LOCK_TTL", 2*time.Minute),

		HostedCheckout: HostedCheckoutConfig{
			BaseURL:       strings.TrimRight(getenvDefault("HOSTED_CHECKOUT_BASE_URL", "https://app.paydunya.com/api/v1"), "/"),
			APIKey:        os.Getenv("HOSTED_CHECKOUT_API_KEY"),
			APIToken:      os.Getenv("HOSTED_CHECKOUT_API_TOKEN"),
			WebhookSecret: os.Getenv("HOSTED_CHECKOUT_WEBHOOK_SECRET"),
			ReturnURL:     os.Getenv("HOSTED_CHECKOUT_RETURN_URL"),
			CancelURL:     os.Getenv("HOSTED_CHECKOUT_CANCEL_URL"),
			CallbackURL:   os.Getenv("HOSTED_CHECKOUT_CALLBACK_URL"),
			StoreName:     getenvDefault("HOSTED_CHECKOUT_STORE_NAME", "Arena"),
		},
		WalletPushA: WalletPushConfig{
			BaseURL: strings.TrimRight(getenvDefault("WALLET_PUSH_A_BASE_URL", "https://api.wave.com"), "/"),
			APIKey:  os.Getenv("WALLET_PUSH_A_API_KEY"),
		},
		MercadoPago: MercadoPagoConfig{
			AccessToken:     os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
			WebhookSecret:   os.Getenv("MERCADOPAGO_WEBHOOK_SECRET"),
			NotificationURL: os.Getenv("MERCADOPAGO_NOTIFICATION_URL"),
			BackURL:         os.Getenv("MERCADOPAGO_BACK_URL"),
			Mock:            p.getBool("MERCADOPAGO_MOCK", false),
		},
		Mobile: MobileConfig{
			CountryCode:    strings.TrimPrefix(getenvDefault("PAYOUT_MOBILE_COUNTRY_CODE", "221"), "+"),
			Prefixes:       splitList(getenvDefault("PAYOUT_MOBILE_PREFIXES", "70,75,76,77,78")),
			NationalLength: p.getInt("PAYOUT_MOBILE_LENGTH", 9),
		},

		DatabaseURL:  os.Getenv("DATABASE_URL"),
		RedisURL:     os.Getenv("REDIS_URL"),
		KafkaBrokers: splitList(os.Getenv("KAFKA_BROKERS")),
		NATSURL:      os.Getenv("NATS_URL"),

		TracingEnabled: p.getBool("TRACING_ENABLED", false),
		OTLPEndpoint:   os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		ServiceName:    getenvDefault("OTEL_SERVICE_NAME", "arena-payments"),

		JWTSecret: os.Getenv("JWT_SECRET"),
	}

	if cfg.PayoutMaxRetries < 0 {
		p.errs = append(p.errs, fmt.Errorf("PAYOUT_MAX_RETRIES must not be negative"))
	}
	if cfg.CurrencyExponent < 0 {
		p.errs = append(p.errs, fmt.Errorf("CURRENCY_EXPONENT must not be negative"))
	}
	if cfg.MercadoPago.Mock && cfg.IsProduction() {
		p.errs = append(p.errs, fmt.Errorf("MERCADOPAGO_MOCK cannot be enabled in production"))
	}
	if err := errors.Join(p.errs...); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// parser collects every malformed variable so startup reports them together.
type parser struct {
	errs []error
}

func (p *parser) getDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		p.errs = append(p.errs, fmt.Errorf("%s: invalid duration %q", key, v))
		return def
	}
	return d
}

func (p *parser) getInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: invalid integer %q", key, v))
		return def
	}
	return n
}

func (p *parser) getBool(key string, def bool) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch v {
	case "":
		return def
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	p.errs = append(p.errs, fmt.Errorf("%s: invalid boolean %q", key, v))
	return def
}
