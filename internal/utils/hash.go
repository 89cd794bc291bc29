package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashIP returns the hex SHA-256 digest of a caller's network address.
// Only this one-way hash is ever persisted, never the raw address.
func HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip))
	return hex.EncodeToString(sum[:])
}
