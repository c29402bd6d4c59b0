// Package commission splits a gross marketplace payment into the platform fee and
// the amount owed to the field owner.
package commission

import (
	"fmt"

	"arena_payments/internal/domain/entities"
)

// MaxRateBps is 100%.
const MaxRateBps = 10000

var (
	ErrInvalidGrossAmount = fmt.Errorf("gross amount must be positive: %w", entities.ErrValidation)
	ErrInvalidRate        = fmt.Errorf("commission rate must be between 0 and %d bps: %w", MaxRateBps, entities.ErrValidation)
)

// Split is the result of applying a commission rate to a gross amount.
// PlatformFee + NetToOwner always equals the gross amount.
type Split struct {
	PlatformFee int64
	NetToOwner  int64
}

// Compute returns floor(gross*rateBps/10000) as the fee and the remainder as the net.
func Compute(gross int64, rateBps int) (Split, error) {
	if gross <= 0 {
		return Split{}, ErrInvalidGrossAmount
	}
	if rateBps < 0 || rateBps > MaxRateBps {
		return Split{}, ErrInvalidRate
	}

	bps := int64(rateBps)
	// gross*bps may overflow int64 for large amounts; split the product instead.
	fee := (gross/MaxRateBps)*bps + (gross%MaxRateBps)*bps/MaxRateBps

	return Split{PlatformFee: fee, NetToOwner: gross - fee}, nil
}
