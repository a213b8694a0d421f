// Package crypto implements field-level protection for sensitive columns:
// an AES-256-GCM envelope codec and a keyed lookup index for equality search
// over encrypted values.
//
// Two independent secrets are involved. The data key (32 bytes) seals
// envelopes; the index key (any length) feeds HMAC-SHA256 digests. Knowing
// one tells nothing about the other.
//
// Typical write path:
//
//	bundle, _ := cipher.Seal(email)   // stored in users.email_bundle
//	index, _ := cipher.Index(email)   // stored in users.email_index
//
// Typical read path:
//
//	email, err := cipher.Open(row.EmailBundle)
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/field_cipher_mock.go -package=mock

// FieldCipher seals, opens and indexes individual field values.
type FieldCipher interface {
	// Seal encrypts plaintext and returns the serialized envelope.
	Seal(plaintext string) (string, error)

	// Open deserializes and decrypts a bundle produced by Seal.
	// A bundle that does not parse yields [ErrMalformedEnvelope].
	Open(bundle string) (string, error)

	// Index returns the lookup index of value.
	Index(value string) (string, error)
}
