package pkg

import (
	"crypto/rand"
	"encoding/base64"
)

// NewRecordID - generates a random URL-safe identifier for an archived game
// result.
func NewRecordID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "error-generating-record-id"
	}

	return base64.RawURLEncoding.EncodeToString(b)
}
