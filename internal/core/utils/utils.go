package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// HashJSON produces a stable fingerprint of a request payload, used to
// detect idempotency-key reuse with a different body.
func HashJSON(payload any) string {
	data, _ := json.Marshal(payload)
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}
