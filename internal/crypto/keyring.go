// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

// keyring is the configuration-backed implementation of [FieldCipher].
// Keys are checked at the point of use, so a keyring built from an empty
// configuration still constructs and fails closed on every call.
type keyring struct {
	dataKey  []byte
	indexKey []byte
}

// NewKeyring decodes the base64 data key and index key. Empty strings are
// accepted and produce [ErrMissingKey] / [ErrMissingIndexKey] when used.
// A non-empty value that is not valid base64 is rejected with
// [ErrInvalidKeyEncoding].
func NewKeyring(dataKeyB64, indexKeyB64 string) (FieldCipher, error) {
	dataKey, err := DecodeKey(dataKeyB64)
	if err != nil {
		return nil, fmt.Errorf("data key: %w", err)
	}
	indexKey, err := DecodeKey(indexKeyB64)
	if err != nil {
		return nil, fmt.Errorf("index key: %w", err)
	}

	return &keyring{dataKey: dataKey, indexKey: indexKey}, nil
}

// Seal implements [FieldCipher].
func (k *keyring) Seal(plaintext string) (string, error) {
	env, err := Encrypt(plaintext, k.dataKey)
	if err != nil {
		return "", err
	}
	return Serialize(env)
}

// Open implements [FieldCipher].
func (k *keyring) Open(bundle string) (string, error) {
	if len(k.dataKey) != KeySize {
		return "", ErrMissingKey
	}
	env, ok := Deserialize(bundle)
	if !ok {
		return "", ErrMalformedEnvelope
	}
	return Decrypt(env, k.dataKey)
}

// Index implements [FieldCipher].
func (k *keyring) Index(value string) (string, error) {
	return IndexOf(value, k.indexKey)
}

// GenerateKey returns n random bytes encoded as standard base64, suitable for
// APP_DATA_KEY_B64 (n = [KeySize]) or APP_INDEX_KEY_B64.
func GenerateKey(n int) (string, error) {
	key := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(key), nil
}

// DecodeKey decodes a base64 key from configuration. The empty string
// decodes to a nil key.
func DecodeKey(b64 string) ([]byte, error) {
	if b64 == "" {
		return nil, nil
	}
	key, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, ErrInvalidKeyEncoding
	}
	return key, nil
}
