package payments

import (
	"errors"
	"testing"

	"arena_payments/internal/domain/entities"
)

func TestMobileRule_Normalize(t *testing.T) {
	rule := MobileRule{CountryCode: "221", Prefixes: []string{"70", "75", "76", "77", "78"}, NationalLength: 9}

	tests := []struct {
		name     string
		input    string
		national string
		e164     string
		wantErr  bool
	}{
		{name: "national", input: "77 123 45 67", national: "771234567", e164: "+221771234567"},
		{name: "e164", input: "+221771234567", national: "771234567", e164: "+221771234567"},
		{name: "international prefix", input: "00221-78-123-45-67", national: "781234567", e164: "+221781234567"},
		{name: "landline prefix", input: "338234567", wantErr: true},
		{name: "too short", input: "7712345", wantErr: true},
		{name: "letters", input: "77abc4567", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			national, e164, err := rule.Normalize(tt.input)
			if tt.wantErr {
				if !errors.Is(err, entities.ErrInvalidRecipient) || !errors.Is(err, entities.ErrValidation) {
					t.Fatalf("expected ErrInvalidRecipient, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if national != tt.national || e164 != tt.e164 {
				t.Fatalf("got %s/%s, want %s/%s", national, e164, tt.national, tt.e164)
			}
		})
	}
}

func TestUnitConversion(t *testing.T) {
	if got := toMajorUnits(10000, 0); got != "10000" {
		t.Fatalf("expected 10000, got %s", got)
	}
	if got := toMajorUnits(12345, 2); got != "123.45" {
		t.Fatalf("expected 123.45, got %s", got)
	}
}
