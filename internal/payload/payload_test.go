package payload

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/smart-plant-guard/internal/crypto"
)

func TestProject(t *testing.T) {
	tests := []struct {
		name     string
		payload  map[string]any
		fallback map[string]any
		fields   []string
		want     map[string]any
	}{
		{
			name:     "payload wins, fallback fills gaps",
			payload:  map[string]any{"a": 1},
			fallback: map[string]any{"a": 2, "b": 3},
			fields:   []string{"a", "b"},
			want:     map[string]any{"a": 1, "b": 3},
		},
		{
			name:     "nil payload uses fallback",
			payload:  nil,
			fallback: map[string]any{"a": 2},
			fields:   []string{"a"},
			want:     map[string]any{"a": 2},
		},
		{
			name:     "explicit nil in payload is kept",
			payload:  map[string]any{"a": nil},
			fallback: map[string]any{"a": 2},
			fields:   []string{"a"},
			want:     map[string]any{"a": nil},
		},
		{
			name:     "missing everywhere is nil",
			payload:  map[string]any{},
			fallback: map[string]any{},
			fields:   []string{"x"},
			want:     map[string]any{"x": nil},
		},
		{
			name:     "only requested fields are returned",
			payload:  map[string]any{"a": 1, "secret": "s"},
			fallback: map[string]any{"b": 2, "other": "o"},
			fields:   []string{"a", "b"},
			want:     map[string]any{"a": 1, "b": 2},
		},
		{
			name:   "nil fallback",
			fields: []string{"a"},
			want:   map[string]any{"a": nil},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Project(tt.payload, tt.fallback, tt.fields))
		})
	}
}

func TestDecryptPayload(t *testing.T) {
	key := bytes.Repeat([]byte{7}, crypto.KeySize)

	env, err := crypto.Encrypt(`{"lat":1.5,"lng":110.25,"notes":"near river"}`, key)
	require.NoError(t, err)
	bundle, err := crypto.Serialize(env)
	require.NoError(t, err)

	got := DecryptPayload(bundle, key)
	assert.Equal(t, map[string]any{"lat": 1.5, "lng": 110.25, "notes": "near river"}, got)
}

func TestDecryptPayload_FailuresAreAbsent(t *testing.T) {
	key := bytes.Repeat([]byte{7}, crypto.KeySize)

	notObject, err := crypto.Encrypt(`["a","b"]`, key)
	require.NoError(t, err)
	notObjectBundle, err := crypto.Serialize(notObject)
	require.NoError(t, err)

	notJSON, err := crypto.Encrypt(`plain text`, key)
	require.NoError(t, err)
	notJSONBundle, err := crypto.Serialize(notJSON)
	require.NoError(t, err)

	tests := []struct {
		name   string
		bundle string
		key    []byte
	}{
		{name: "empty bundle", bundle: "", key: key},
		{name: "garbage bundle", bundle: "{{", key: key},
		{name: "missing key", bundle: notJSONBundle, key: nil},
		{name: "wrong key", bundle: notJSONBundle, key: bytes.Repeat([]byte{8}, crypto.KeySize)},
		{name: "plaintext not json", bundle: notJSONBundle, key: key},
		{name: "json array", bundle: notObjectBundle, key: key},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, DecryptPayload(tt.bundle, tt.key))
		})
	}
}

type fakeCipher struct {
	open func(string) (string, error)
	seal func(string) (string, error)
}

func (f fakeCipher) Open(b string) (string, error) { return f.open(b) }
func (f fakeCipher) Seal(p string) (string, error) { return f.seal(p) }

func TestOpen(t *testing.T) {
	ok := fakeCipher{open: func(string) (string, error) { return `{"description":"rare"}`, nil }}
	fail := fakeCipher{open: func(string) (string, error) { return "", errors.New("boom") }}

	assert.Equal(t, map[string]any{"description": "rare"}, Open("bundle", ok))
	assert.Nil(t, Open("bundle", fail))
	assert.Nil(t, Open("", ok))
	assert.Nil(t, Open("bundle", nil))
}

func TestSealThenOpen(t *testing.T) {
	dataKey, err := crypto.GenerateKey(crypto.KeySize)
	require.NoError(t, err)
	k, err := crypto.NewKeyring(dataKey, "")
	require.NoError(t, err)

	bundle, err := Seal(map[string]any{"description": "Found only in protected forest."}, k)
	require.NoError(t, err)
	require.NotEmpty(t, bundle)

	got := Open(bundle, k)
	merged := Project(got, map[string]any{"description": nil, "image_url": "legacy.png"},
		[]string{"description", "image_url"})
	assert.Equal(t, "Found only in protected forest.", merged["description"])
	assert.Equal(t, "legacy.png", merged["image_url"])
}

func TestSeal_EmptyAndErrors(t *testing.T) {
	never := fakeCipher{seal: func(string) (string, error) {
		t.Fatal("seal must not be called for empty payload")
		return "", nil
	}}
	bundle, err := Seal(nil, never)
	require.NoError(t, err)
	assert.Empty(t, bundle)

	failing := fakeCipher{seal: func(string) (string, error) { return "", crypto.ErrMissingKey }}
	_, err = Seal(map[string]any{"a": 1}, failing)
	assert.ErrorIs(t, err, crypto.ErrMissingKey)
}
