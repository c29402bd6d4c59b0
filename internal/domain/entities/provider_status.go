package entities

import "strings"

// ProviderStatus is the internal status every provider response is normalized to.
type ProviderStatus string

const (
	ProviderStatusSucceeded ProviderStatus = "succeeded"
	ProviderStatusFailed    ProviderStatus = "failed"
	ProviderStatusPending   ProviderStatus = "pending"
)

// NormalizeProviderStatus maps a raw provider status string to ProviderStatus.
// Anything unrecognized stays pending.
func NormalizeProviderStatus(raw string) ProviderStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "completed", "succeeded", "success", "paid", "approved":
		return ProviderStatusSucceeded
	case "cancelled", "canceled", "failed", "timeout", "expired", "rejected":
		return ProviderStatusFailed
	default:
		return ProviderStatusPending
	}
}
