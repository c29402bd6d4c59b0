package interfaces

import (
	"context"

	"arena_payments/internal/domain/entities"
)

// IReservationRepository reads reservations from the booking database.
//
// MarkPaid must be idempotent: marking an already paid reservation is not an error.

type IReservationRepository interface {
	Get(ctx context.Context, id string) (entities.Reservation, error)
	MarkPaid(ctx context.Context, id string) error
}

type IFieldRepository interface {
	Get(ctx context.Context, id string) (entities.Field, error)
}
