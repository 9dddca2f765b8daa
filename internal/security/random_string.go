package security

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
)

// UnambiguousAlphabet omits 0/O/1/I so hand-copied codes stay unambiguous.
const UnambiguousAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

var (
	errNegativeLength = errors.New("length must be non-negative")
	errEmptyAlphabet  = errors.New("alphabet must not be empty")
	errInvalidGroups  = errors.New("groups and group size must be positive")
)

// RandomString returns a cryptographically secure, unbiased string of the requested length.
func RandomString(length int, alphabet string) (string, error) {
	if length < 0 {
		return "", errNegativeLength
	}
	if length == 0 {
		return "", nil
	}
	if len(alphabet) == 0 {
		return "", errEmptyAlphabet
	}

	limit := big.NewInt(int64(len(alphabet)))
	value := make([]byte, length)
	for index := range value {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[index] = alphabet[position.Int64()]
	}

	return string(value), nil
}

// GroupedCode generates a dash-separated code like PREFIX-XXXX-XXXX-XXXX from
// the unambiguous alphabet.
func GroupedCode(prefix string, groups int, groupSize int) (string, error) {
	if groups <= 0 || groupSize <= 0 {
		return "", errInvalidGroups
	}

	value, err := RandomString(groups*groupSize, UnambiguousAlphabet)
	if err != nil {
		return "", err
	}

	parts := make([]string, 0, groups+1)
	if prefix != "" {
		parts = append(parts, prefix)
	}
	for index := 0; index < groups; index++ {
		parts = append(parts, value[index*groupSize:(index+1)*groupSize])
	}
	return strings.Join(parts, "-"), nil
}
