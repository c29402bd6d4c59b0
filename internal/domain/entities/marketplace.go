package entities

// Reservation and Field are owned by the booking side of the marketplace.
// The payments service only reads them and flips the reservation paid flag.

type Reservation struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	FieldID  string `json:"field_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	IsPaid   bool   `json:"is_paid"`
	Status   string `json:"status"`
}

type Field struct {
	ID                 string        `json:"id"`
	OwnerID            string        `json:"owner_id"`
	Name               string        `json:"name"`
	OwnerPayoutChannel PayoutChannel `json:"owner_payout_channel"`
	OwnerMobileNumber  string        `json:"owner_mobile_number"`
	CommissionRateBps  int           `json:"commission_rate_bps"`
}
