package mfa

import "errors"

var (
	// ErrUnauthorized is returned by Guard for a privileged session that has
	// not passed verification.
	ErrUnauthorized = errors.New("mfa verification required")

	// ErrChallengeNotFound is returned by Verify when no challenge is pending.
	ErrChallengeNotFound = errors.New("no pending verification challenge")

	// ErrChallengeExpired is returned by Verify when the pending challenge has
	// passed its expiry. The challenge is deleted.
	ErrChallengeExpired = errors.New("verification challenge expired")

	// ErrIncorrectCode is returned by Verify on a code mismatch. The challenge
	// is kept so the caller may retry.
	ErrIncorrectCode = errors.New("incorrect verification code")

	// ErrDeliveryFailed is returned by Start when the code could not be sent.
	// No challenge is stored.
	ErrDeliveryFailed = errors.New("verification code delivery failed")

	// ErrStoreContention is returned when a shared store kept losing the race
	// for a challenge key.
	ErrStoreContention = errors.New("challenge store contention")
)
