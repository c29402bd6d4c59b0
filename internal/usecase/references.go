package usecase

import "github.com/google/uuid"

var (
	clientReferenceNamespace = uuid.MustParse("5b0c1c8e-2f4d-4a39-9d7e-3a1f6c2b8e41")
	payoutKeyNamespace       = uuid.MustParse("c7e2a9d4-61b3-4f0e-8a55-0d9e4b7f2c16")
)

// NewSessionID returns a fresh random checkout session id.
func NewSessionID() string {
	return uuid.NewString()
}

// ClientReference is the reference echoed back by the checkout provider. It is stable
// for a (reservation, session) pair and differs across sessions of the same reservation.
func ClientReference(reservationID, sessionID string) string {
	return "cr_" + uuid.NewSHA1(clientReferenceNamespace, []byte(reservationID+":"+sessionID)).String()
}

// PayoutIdempotencyKey is shared by every payout attempt for the same payment and field.
func PayoutIdempotencyKey(paymentID, fieldID string) string {
	return "po_" + uuid.NewSHA1(payoutKeyNamespace, []byte(paymentID+":"+fieldID)).String()
}
