package request

import "strings"

// CheckoutRequest opens a checkout session for a reservation.
//
// Both reservationId and reservation_id are accepted; booking clients send either.

type CheckoutRequest struct {
	ReservationID      string `json:"reservationId"`
	ReservationIDSnake string `json:"reservation_id"`
}

func (r CheckoutRequest) ResolveReservationID() string {
	if v := strings.TrimSpace(r.ReservationID); v != "" {
		return v
	}
	return strings.TrimSpace(r.ReservationIDSnake)
}
