package mfa

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// CodeLength is the number of decimal digits in a verification code.
const CodeLength = 6

var ten = big.NewInt(10)

// generateCode draws CodeLength digits, each uniform over 0-9.
func generateCode(src io.Reader) (string, error) {
	digits := make([]byte, CodeLength)
	for i := range digits {
		n, err := rand.Int(src, ten)
		if err != nil {
			return "", fmt.Errorf("generate code: %w", err)
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}
