package mfa

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCode_Format(t *testing.T) {
	for range 200 {
		code, err := generateCode(rand.Reader)
		require.NoError(t, err)
		require.Len(t, code, CodeLength)
		for _, c := range code {
			assert.True(t, c >= '0' && c <= '9', "code %q", code)
		}
	}
}

func TestGenerateCode_AllDigitsAppear(t *testing.T) {
	seen := make(map[rune]bool)
	for range 500 {
		code, err := generateCode(rand.Reader)
		require.NoError(t, err)
		for _, c := range code {
			seen[c] = true
		}
	}
	assert.Len(t, seen, 10)
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("no entropy") }

func TestGenerateCode_EntropyFailure(t *testing.T) {
	_, err := generateCode(errReader{})
	assert.Error(t, err)

	_, err = generateCode(bytes.NewReader(nil))
	assert.Error(t, err)
}
