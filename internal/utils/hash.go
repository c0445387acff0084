package utils

import (
	"crypto/sha256"
	"encoding/base64"
)

// HashToken is applied to refresh tokens before they touch the database;
// only the hash is ever stored.
func HashToken(raw string) string {
	hasher := sha256.New()
	hasher.Write([]byte(raw))
	return base64.URLEncoding.EncodeToString(hasher.Sum(nil))
}
