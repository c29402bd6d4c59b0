package entities

import (
	"errors"
	"fmt"
)

var (
	ErrValidation          = errors.New("validation error")
	ErrNotFound            = errors.New("not found")
	ErrForbidden           = errors.New("forbidden")
	ErrAlreadyPaid         = errors.New("already paid")
	ErrProviderUnavailable = errors.New("provider unavailable")
	ErrProviderRejected    = errors.New("provider rejected request")
	ErrInvalidSignature    = errors.New("invalid signature")
	ErrConfiguration       = errors.New("configuration error")

	ErrInvalidRecipient     = fmt.Errorf("invalid recipient: %w", ErrValidation)
	ErrWebhookSecretMissing = fmt.Errorf("webhook secret not configured: %w", ErrConfiguration)
)
