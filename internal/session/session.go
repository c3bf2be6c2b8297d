package session

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// NewID returns an identifier for one sync run, sortable by start time.
// Tagged onto outbound wearable API requests so server logs can group a run.
func NewID() string {
	now := time.Now()
	timestamp := now.Format("20060102-150405")
	randomBytes := make([]byte, 4)
	if _, err := rand.Read(randomBytes); err != nil {
		// fallback to nanoseconds if random fails
		return timestamp + "-" + now.Format("000000000")
	}

	return timestamp + "-" + hex.EncodeToString(randomBytes)
}
