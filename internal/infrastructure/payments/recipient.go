package payments

import (
	"fmt"
	"strings"

	"arena_payments/internal/domain/entities"
)

// MobileRule describes the national mobile numbering plan a wallet channel accepts.
type MobileRule struct {
	CountryCode    string
	Prefixes       []string
	NationalLength int
}

// Normalize validates a recipient and returns its national and E.164 forms.
// Spaces, dashes, dots and a leading 00 or + are tolerated; the country code is optional.
func (r MobileRule) Normalize(recipient string) (national, e164 string, err error) {
	digits := strings.NewReplacer(" ", "", "-", "", ".", "", "(", "", ")", "").Replace(strings.TrimSpace(recipient))
	digits = strings.TrimPrefix(digits, "+")
	if strings.HasPrefix(digits, "00") {
		digits = digits[2:]
	}
	for _, ch := range digits {
		if ch < '0' || ch > '9' {
			return "", "", fmt.Errorf("%w: %q contains non digits", entities.ErrInvalidRecipient, recipient)
		}
	}

	national = digits
	if r.CountryCode != "" && len(digits) == len(r.CountryCode)+r.NationalLength && strings.HasPrefix(digits, r.CountryCode) {
		national = digits[len(r.CountryCode):]
	}
	if r.NationalLength > 0 && len(national) != r.NationalLength {
		return "", "", fmt.Errorf("%w: %q must have %d national digits", entities.ErrInvalidRecipient, recipient, r.NationalLength)
	}
	if len(r.Prefixes) > 0 && !hasAnyPrefix(national, r.Prefixes) {
		return "", "", fmt.Errorf("%w: %q is not a mobile number", entities.ErrInvalidRecipient, recipient)
	}
	return national, "+" + r.CountryCode + national, nil
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
