package utils

import (
	"crypto/sha256"
	"encoding/hex"

	"sts-agendamento/pkg/mask"
)

// HashString returns the hex SHA-256 of the input
func HashString(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}

// HashPhone hashes only the digits so "(11) 3333-4444" and "1133334444"
// produce the same value in logs. The first 12 hex chars are enough to
// correlate log lines.
func HashPhone(phone string) string {
	digits := mask.Digits(phone)
	if digits == "" {
		return ""
	}
	return HashString(digits)[:12]
}
