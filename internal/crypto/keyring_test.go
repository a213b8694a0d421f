package crypto

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKeyring(t *testing.T) FieldCipher {
	t.Helper()
	dataKey, err := GenerateKey(KeySize)
	require.NoError(t, err)
	indexKey, err := GenerateKey(24)
	require.NoError(t, err)

	k, err := NewKeyring(dataKey, indexKey)
	require.NoError(t, err)
	return k
}

func TestKeyring_SealOpen(t *testing.T) {
	k := newTestKeyring(t)

	bundle, err := k.Seal("researcher@plants.org")
	require.NoError(t, err)
	assert.NotContains(t, bundle, "researcher")

	got, err := k.Open(bundle)
	require.NoError(t, err)
	assert.Equal(t, "researcher@plants.org", got)
}

func TestKeyring_OpenMalformed(t *testing.T) {
	k := newTestKeyring(t)

	_, err := k.Open("{broken")
	assert.ErrorIs(t, err, ErrMalformedEnvelope)

	_, err = k.Open("")
	assert.ErrorIs(t, err, ErrMalformedEnvelope)
}

func TestKeyring_OpenWithOtherKeyring(t *testing.T) {
	k1 := newTestKeyring(t)
	k2 := newTestKeyring(t)

	bundle, err := k1.Seal("value")
	require.NoError(t, err)

	_, err = k2.Open(bundle)
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestKeyring_EmptyConfigFailsClosed(t *testing.T) {
	k, err := NewKeyring("", "")
	require.NoError(t, err)

	_, err = k.Seal("value")
	assert.ErrorIs(t, err, ErrMissingKey)

	_, err = k.Open(`{"iv":"AAAAAAAAAAAAAAAA","ct":"AA==","tag":"AAAAAAAAAAAAAAAAAAAAAA=="}`)
	assert.ErrorIs(t, err, ErrMissingKey)

	_, err = k.Index("value")
	assert.ErrorIs(t, err, ErrMissingIndexKey)
}

func TestKeyring_WrongDataKeyLength(t *testing.T) {
	short := base64.StdEncoding.EncodeToString(make([]byte, 16))
	k, err := NewKeyring(short, "aW5kZXg=")
	require.NoError(t, err)

	_, err = k.Seal("value")
	assert.ErrorIs(t, err, ErrMissingKey)
}

func TestNewKeyring_InvalidBase64(t *testing.T) {
	_, err := NewKeyring("***", "")
	assert.ErrorIs(t, err, ErrInvalidKeyEncoding)

	_, err = NewKeyring("", "***")
	assert.ErrorIs(t, err, ErrInvalidKeyEncoding)
}

func TestGenerateKey(t *testing.T) {
	a, err := GenerateKey(KeySize)
	require.NoError(t, err)
	b, err := GenerateKey(KeySize)
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(a)
	require.NoError(t, err)
	assert.Len(t, raw, KeySize)
	assert.NotEqual(t, a, b)
}
