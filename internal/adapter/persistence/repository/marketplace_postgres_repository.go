package repository

import (
	"context"
	"database/sql"
	"errors"

	"arena_payments/internal/domain/entities"
	"arena_payments/internal/usecase/interfaces"
)

// ReservationPostgresRepository reads reservations owned by the booking service.
type ReservationPostgresRepository struct {
	db *sql.DB
}

var _ interfaces.IReservationRepository = (*ReservationPostgresRepository)(nil)

func NewReservationPostgresRepository(db *sql.DB) *ReservationPostgresRepository {
	return &ReservationPostgresRepository{db: db}
}

func (r *ReservationPostgresRepository) Get(ctx context.Context, id string) (entities.Reservation, error) {
	var res entities.Reservation
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, field_id, amount, currency, is_paid, status
		FROM reservations WHERE id = $1
	`, id).Scan(&res.ID, &res.UserID, &res.FieldID, &res.Amount, &res.Currency, &res.IsPaid, &res.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Reservation{}, nil
	}
	if err != nil {
		return entities.Reservation{}, err
	}
	return res, nil
}

// MarkPaid flips the reservation to paid and confirmed. Running it twice leaves the row unchanged.
func (r *ReservationPostgresRepository) MarkPaid(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE reservations SET is_paid = TRUE, status = 'confirmed', updated_at = NOW() WHERE id = $1 AND is_paid = FALSE`, id)
	return err
}

type FieldPostgresRepository struct {
	db *sql.DB
}

var _ interfaces.IFieldRepository = (*FieldPostgresRepository)(nil)

func NewFieldPostgresRepository(db *sql.DB) *FieldPostgresRepository {
	return &FieldPostgresRepository{db: db}
}

func (r *FieldPostgresRepository) Get(ctx context.Context, id string) (entities.Field, error) {
	var (
		f       entities.Field
		channel sql.NullString
		mobile  sql.NullString
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT id, owner_id, name, owner_payout_channel, owner_mobile_number, commission_rate_bps
		FROM fields WHERE id = $1
	`, id).Scan(&f.ID, &f.OwnerID, &f.Name, &channel, &mobile, &f.CommissionRateBps)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Field{}, nil
	}
	if err != nil {
		return entities.Field{}, err
	}
	f.OwnerPayoutChannel = entities.PayoutChannel(channel.String)
	f.OwnerMobileNumber = mobile.String
	return f, nil
}
