package referral

import "strings"

// MaskField obscures a sensitive value for display, keeping only the last
// four characters and replacing the rest with 'X'. Inputs of length four or
// less are returned unchanged. Display-only: the unmasked value is what gets
// persisted and sent to the backend.
func MaskField(s string) string {
	if len(s) <= 4 {
		return s
	}
	return strings.Repeat("X", len(s)-4) + s[len(s)-4:]
}
