package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	codeMin = 100000
	codeMax = 999999
)

// Generator produces one-time codes.
type Generator interface {
	Generate() (string, error)
}

// Numeric generates uniformly distributed six-digit codes from a
// cryptographic source. Codes never carry a leading zero, so the
// string and numeric forms are interchangeable.
type Numeric struct{}

// NewNumeric creates a Numeric generator.
func NewNumeric() *Numeric {
	return &Numeric{}
}

// Generate returns a random code in [100000, 999999].
func (n *Numeric) Generate() (string, error) {
	r, err := rand.Int(rand.Reader, big.NewInt(codeMax-codeMin+1))
	if err != nil {
		return "", fmt.Errorf("failed to read random source: %w", err)
	}

	return fmt.Sprintf("%06d", r.Int64()+codeMin), nil
}
