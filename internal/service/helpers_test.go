package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/smart-plant-guard/internal/crypto"
)

func newTestCipher(t *testing.T) crypto.FieldCipher {
	t.Helper()
	dataKey, err := crypto.GenerateKey(crypto.KeySize)
	require.NoError(t, err)
	indexKey, err := crypto.GenerateKey(32)
	require.NoError(t, err)

	c, err := crypto.NewKeyring(dataKey, indexKey)
	require.NoError(t, err)
	return c
}

func sealed(t *testing.T, c crypto.FieldCipher, plaintext string) string {
	t.Helper()
	bundle, err := c.Seal(plaintext)
	require.NoError(t, err)
	return bundle
}

func indexed(t *testing.T, c crypto.FieldCipher, value string) string {
	t.Helper()
	index, err := c.Index(value)
	require.NoError(t, err)
	return index
}

func strPtr(s string) *string { return &s }
