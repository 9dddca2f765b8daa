package api

import (
	"fmt"
	"strings"

	"github.com/quellskin/quell/internal/security"
	"golang.org/x/crypto/bcrypt"
)

// normalizeRecoveryCode accepts user-typed variants (lowercase, spaces,
// missing dashes or prefix) and restores the canonical QLL-XXXX-XXXX-XXXX
// form. Unrecognizable input is returned upper-trimmed so validation can
// reject it with the original shape intact.
func normalizeRecoveryCode(raw string) string {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	normalized = strings.ReplaceAll(normalized, " ", "")
	normalized = strings.ReplaceAll(normalized, "-", "")
	normalized = strings.TrimPrefix(normalized, "QLL")
	if len(normalized) != 12 {
		return strings.ToUpper(strings.TrimSpace(raw))
	}
	return fmt.Sprintf("QLL-%s-%s-%s", normalized[:4], normalized[4:8], normalized[8:12])
}

func generateRecoveryCodeHash() (string, string, error) {
	code, err := generateRecoveryCode()
	if err != nil {
		return "", "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", "", err
	}
	return code, string(hash), nil
}

func generateRecoveryCode() (string, error) {
	return security.GroupedCode("QLL", 3, 4)
}
