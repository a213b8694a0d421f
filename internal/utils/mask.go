package utils

import "strings"

// MaskEmail hides the local part of an address, keeping its first two
// characters: "alice@x.com" becomes "al***@x.com". At least one star is
// always shown. Values without "@" are masked entirely.
func MaskEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return "***"
	}
	local, domain := []rune(email[:at]), email[at:]

	visible := min(2, len(local))
	stars := max(1, len(local)-visible)

	return string(local[:visible]) + strings.Repeat("*", stars) + domain
}
