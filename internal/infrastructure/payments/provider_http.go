package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"arena_payments/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const (
	defaultHTTPTimeout = 30 * time.Second
	maxErrorBodyLen    = 512
)

func defaultHTTPClient(c *http.Client) *http.Client {
	if c != nil {
		return c
	}
	return &http.Client{Timeout: defaultHTTPTimeout}
}

// providerClient sends JSON requests to one provider and classifies failures into the
// entities error taxonomy: transport errors, timeouts, 429 and 5xx are ErrProviderUnavailable,
// other 4xx are ErrProviderRejected.
type providerClient struct {
	name    string
	baseURL string
	http    *http.Client
	headers func(h http.Header)
}

func (c *providerClient) do(ctx context.Context, method, path string, body any, extra http.Header, out any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%s: encode request: %w", c.name, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", c.name, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.headers != nil {
		c.headers(req.Header)
	}
	for k, vs := range extra {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w: %v", c.name, path, entities.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w: read body: %v", c.name, path, entities.ErrProviderUnavailable, err)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return raw, fmt.Errorf("%s %s: %w: status %d: %s", c.name, path, entities.ErrProviderUnavailable, resp.StatusCode, snippet(raw))
	case resp.StatusCode >= 400:
		return raw, fmt.Errorf("%s %s: %w: status %d: %s", c.name, path, entities.ErrProviderRejected, resp.StatusCode, snippet(raw))
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return raw, fmt.Errorf("%s %s: %w: decode response: %v", c.name, path, entities.ErrProviderUnavailable, err)
		}
	}
	return raw, nil
}

func snippet(b []byte) string {
	s := strings.TrimSpace(string(b))
	if len(s) > maxErrorBodyLen {
		return s[:maxErrorBodyLen] + "..."
	}
	return s
}

// toMajorUnits renders a minor-unit amount as the decimal string providers expect.
func toMajorUnits(amount int64, exponent int32) string {
	return decimal.New(amount, -exponent).StringFixed(exponent)
}

// toMinorUnits converts a provider major-unit amount back, rounding to the nearest unit.
func toMinorUnits(amount decimal.Decimal, exponent int32) int64 {
	return amount.Shift(exponent).Round(0).IntPart()
}

var errMissingCredentials = errors.New("missing provider credentials")

func missingCredentials(provider string) error {
	return fmt.Errorf("%s: %w: %w", provider, entities.ErrConfiguration, errMissingCredentials)
}
