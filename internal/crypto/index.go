package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// NormalizeForIndex is the canonical form digested by [IndexOf]. Callers
// building a lookup query must pass values through the same function or
// equality lookups silently miss.
func NormalizeForIndex(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// IndexOf returns the hex-encoded HMAC-SHA256 of the normalized value under
// indexKey. The result is deterministic and cannot be inverted without the
// key.
//
// Returns [ErrMissingIndexKey] if indexKey is empty.
func IndexOf(value string, indexKey []byte) (string, error) {
	if len(indexKey) == 0 {
		return "", ErrMissingIndexKey
	}

	mac := hmac.New(sha256.New, indexKey)
	mac.Write([]byte(NormalizeForIndex(value)))
	return hex.EncodeToString(mac.Sum(nil)), nil
}
