package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"FindrHealth/config"
)

// HashEmail hashes an email for use in Redis keys, salted so raw addresses
// never appear in the keyspace.
func HashEmail(email string) string {
	key := config.Cfg.EmailHashSalt

	sum := sha256.Sum256([]byte(key + ":" + strings.ToLower(strings.TrimSpace(email))))

	return hex.EncodeToString(sum[:])
}
