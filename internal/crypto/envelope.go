package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"
)

const (
	// KeySize is the required length of the data-encryption key (AES-256).
	KeySize = 32
	// NonceSize is the GCM nonce length stored in [Envelope.IV].
	NonceSize = 12
	// TagSize is the GCM authentication tag length stored in [Envelope.Tag].
	TagSize = 16
)

// randReader is the nonce source. Tests replace it to simulate entropy failure.
var randReader io.Reader = rand.Reader

// Envelope is a self-contained AES-256-GCM bundle protecting exactly one
// plaintext string. Composite values must be JSON-serialized first.
//
// The JSON form stores every field as standard base64, which is what
// encoding/json does for []byte:
//
//	{"iv":"...","ct":"...","tag":"..."}
type Envelope struct {
	IV         []byte `json:"iv"`
	Ciphertext []byte `json:"ct"`
	Tag        []byte `json:"tag"`
}

// Encrypt seals plaintext with key using AES-256-GCM and a fresh random
// 12-byte nonce.
//
// Returns [ErrMissingKey] if key is not exactly [KeySize] bytes and
// [ErrEmptyInput] if plaintext is empty.
func Encrypt(plaintext string, key []byte) (Envelope, error) {
	if len(key) != KeySize {
		return Envelope{}, ErrMissingKey
	}
	if plaintext == "" {
		return Envelope{}, ErrEmptyInput
	}

	gcm, err := newGCM(key)
	if err != nil {
		return Envelope{}, err
	}

	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(randReader, nonce); err != nil {
		return Envelope{}, fmt.Errorf("generate nonce: %w", err)
	}

	// Seal appends the tag to the ciphertext; split it out so each part can
	// be stored and validated independently.
	sealed := gcm.Seal(nil, nonce, []byte(plaintext), nil)
	split := len(sealed) - TagSize

	return Envelope{
		IV:         nonce,
		Ciphertext: sealed[:split],
		Tag:        sealed[split:],
	}, nil
}

// Decrypt opens env with key. It fails closed: on any error the returned
// string is empty.
//
// Errors: [ErrMissingKey], [ErrMalformedEnvelope], [ErrAuthenticationFailed].
func Decrypt(env Envelope, key []byte) (string, error) {
	if len(key) != KeySize {
		return "", ErrMissingKey
	}
	if len(env.IV) != NonceSize || len(env.Tag) != TagSize || env.Ciphertext == nil {
		return "", ErrMalformedEnvelope
	}

	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	sealed := make([]byte, 0, len(env.Ciphertext)+TagSize)
	sealed = append(sealed, env.Ciphertext...)
	sealed = append(sealed, env.Tag...)

	plaintext, err := gcm.Open(nil, env.IV, sealed, nil)
	if err != nil {
		return "", ErrAuthenticationFailed
	}

	return string(plaintext), nil
}

// Serialize renders env as the JSON string stored in *_bundle / *_payload
// columns.
func Serialize(env Envelope) (string, error) {
	data, err := json.Marshal(env)
	if err != nil {
		return "", fmt.Errorf("serialize envelope: %w", err)
	}
	return string(data), nil
}

// Deserialize parses a stored bundle. It reports false instead of an error
// so read paths can fall back to legacy plaintext columns.
func Deserialize(s string) (Envelope, bool) {
	if s == "" {
		return Envelope{}, false
	}

	var env Envelope
	if err := json.Unmarshal([]byte(s), &env); err != nil {
		return Envelope{}, false
	}
	if env.IV == nil || env.Ciphertext == nil || env.Tag == nil {
		return Envelope{}, false
	}

	return env, true
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
