// Package randid generates short random lowercase alphanumeric identifiers.
package randid

import (
	"crypto/rand"
	"math/big"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

var alphabetLen = big.NewInt(int64(len(alphabet)))

// Generate returns a random string of the given length drawn from [a-z0-9].
func Generate(length int) string {
	if length <= 0 {
		return ""
	}

	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			// crypto/rand failing means the platform has no entropy source.
			panic("randid: " + err.Error())
		}
		b[i] = alphabet[n.Int64()]
	}
	return string(b)
}
