package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashString creates a SHA-256 hash of the input string
func HashString(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}

// LeadKey identifies a lead in logs without exposing the address itself.
func LeadKey(email string) string {
	return HashString(strings.ToLower(strings.TrimSpace(email)))[:12]
}
