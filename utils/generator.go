package utils

import (
	"crypto/rand"
	"math/big"
)

const resetTokenLength = 60
const letterBytes = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateResetToken returns the plain-text password reset token emailed to
// the user. Only its bcrypt hash is persisted.
func GenerateResetToken() (string, error) {
	b := make([]byte, resetTokenLength)
	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(letterBytes))))
		if err != nil {
			return "", err
		}
		b[i] = letterBytes[n.Int64()]
	}
	return string(b), nil
}
