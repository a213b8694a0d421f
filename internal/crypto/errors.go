// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// Sentinel errors returned by the envelope codec and the lookup index.
// All of them are safe to surface in logs: none carries key material or
// plaintext.
var (
	// ErrMissingKey is returned when the data-encryption key is absent or
	// does not decode to exactly [KeySize] bytes.
	ErrMissingKey = errors.New("data encryption key is missing")

	// ErrMissingIndexKey is returned by [IndexOf] when the index key is absent.
	ErrMissingIndexKey = errors.New("lookup index key is missing")

	// ErrEmptyInput is returned by [Encrypt] for an empty plaintext.
	ErrEmptyInput = errors.New("nothing to encrypt")

	// ErrMalformedEnvelope is returned when iv, ciphertext or tag is missing
	// or has an unexpected length.
	ErrMalformedEnvelope = errors.New("malformed envelope")

	// ErrAuthenticationFailed is returned when the GCM tag does not verify:
	// the ciphertext or tag was tampered with, or the wrong key was used.
	ErrAuthenticationFailed = errors.New("envelope authentication failed")

	// ErrInvalidKeyEncoding is returned by [NewKeyring] when a configured key
	// is not valid base64.
	ErrInvalidKeyEncoding = errors.New("key is not valid base64")
)
