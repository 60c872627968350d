package farmer

import (
	"crypto/rand"
	"math/big"
	"regexp"
)

// Lookalike characters (0/O, 1/I/L) are excluded so codes survive being read
// over the phone.
const (
	codePrefix   = "FSH-"
	codeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"
	codeLength   = 6
)

var codePattern = regexp.MustCompile(`^FSH-[A-HJ-NP-Z2-9]{6}$`)

// NewCode generates a random farmer short code. Uniqueness is the caller's
// problem: generate, check, retry.
func NewCode() (string, error) {
	buf := make([]byte, codeLength)
	max := big.NewInt(int64(len(codeAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = codeAlphabet[n.Int64()]
	}
	return codePrefix + string(buf), nil
}

// ValidCode reports whether s matches the generator's format.
func ValidCode(s string) bool {
	return codePattern.MatchString(s)
}
