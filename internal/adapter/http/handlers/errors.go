package handlers

import (
	"errors"
	"net/http"

	"arena_payments/internal/domain/entities"
	"arena_payments/pkg"
)

var (
	errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_CHECKOUT_INPUT", "Invalid checkout payload", http.StatusBadRequest)
	errMissingReservationID   = pkg.NewDomainErrorSimple("INVALID_REQUEST", "reservationId is required", http.StatusBadRequest)
	errUnreadableBody         = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Unreadable request body", http.StatusBadRequest)
	errInvalidLimit           = pkg.NewDomainErrorSimple("INVALID_REQUEST", "limit must be a positive integer", http.StatusBadRequest)
)

// mapDomainError translates the shared error taxonomy. Handlers check their own
// sentinels first and fall back to this.
func mapDomainError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrValidation):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, entities.ErrNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Resource not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Resource belongs to another user", http.StatusForbidden)
	case errors.Is(err, entities.ErrAlreadyPaid):
		return pkg.NewDomainErrorSimple("ALREADY_PAID", "Reservation is already paid", http.StatusConflict)
	case errors.Is(err, entities.ErrProviderUnavailable):
		return pkg.NewDomainError("PROVIDER_UNAVAILABLE", "Payment provider unavailable, try again later", err, http.StatusServiceUnavailable)
	case errors.Is(err, entities.ErrProviderRejected):
		return pkg.NewDomainError("PROVIDER_REJECTED", "Payment provider rejected the request", err, http.StatusBadGateway)
	case errors.Is(err, entities.ErrConfiguration):
		return pkg.NewDomainError("CONFIGURATION_ERROR", "Payment provider is not configured", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
