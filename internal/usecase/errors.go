package usecase

import (
	"errors"
	"fmt"

	"arena_payments/internal/domain/entities"
)

var (
	ErrInvalidReservationID = fmt.Errorf("invalid reservation_id: %w", entities.ErrValidation)
	ErrInvalidPaymentID     = fmt.Errorf("invalid payment id: %w", entities.ErrValidation)
	ErrInvalidPayoutID      = fmt.Errorf("invalid payout id: %w", entities.ErrValidation)
	ErrInvalidPayoutStatus  = fmt.Errorf("invalid payout status: %w", entities.ErrValidation)
	ErrMissingProviderToken = fmt.Errorf("webhook payload has no provider token: %w", entities.ErrValidation)
	ErrPayoutNotRetryable   = fmt.Errorf("payout is not retryable: %w", entities.ErrValidation)
	ErrPayoutNotSubmitted   = fmt.Errorf("payout was never accepted by a provider: %w", entities.ErrValidation)

	ErrReservationNotFound = fmt.Errorf("reservation %w", entities.ErrNotFound)
	ErrFieldNotFound       = fmt.Errorf("field %w", entities.ErrNotFound)
	ErrPaymentNotFound     = fmt.Errorf("payment %w", entities.ErrNotFound)
	ErrPayoutNotFound      = fmt.Errorf("payout %w", entities.ErrNotFound)
	ErrUnknownProvider     = fmt.Errorf("webhook provider %w", entities.ErrNotFound)

	ErrReservationNotOwned    = fmt.Errorf("reservation belongs to another user: %w", entities.ErrForbidden)
	ErrReservationAlreadyPaid = fmt.Errorf("reservation %w", entities.ErrAlreadyPaid)

	ErrGatewayNotConfigured  = fmt.Errorf("checkout gateway not configured: %w", entities.ErrConfiguration)
	ErrChannelNotConfigured  = fmt.Errorf("payout channel not supported: %w", entities.ErrConfiguration)
	ErrPayoutFieldMissing    = fmt.Errorf("payout field missing: %w", entities.ErrConfiguration)
	ErrPayoutProviderFailure = fmt.Errorf("payout provider reported failure: %w", entities.ErrProviderRejected)
)

// providerError classifies a gateway error. Configuration, validation and provider
// rejections keep their identity; anything else is reported as the provider being unavailable.
func providerError(op string, err error) error {
	if errors.Is(err, entities.ErrConfiguration) ||
		errors.Is(err, entities.ErrValidation) ||
		errors.Is(err, entities.ErrProviderRejected) ||
		errors.Is(err, entities.ErrProviderUnavailable) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %v", op, entities.ErrProviderUnavailable, err)
}
