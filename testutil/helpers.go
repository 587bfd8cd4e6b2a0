package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"testing"
	"time"
)

func RandomString(length int) string {
	bytes := make([]byte, length/2+1)
	if _, err := rand.Read(bytes); err != nil {
		return ""
	}

	return hex.EncodeToString(bytes)[:length]
}

// RandomID returns an identifier shaped like the service's 24 character
// hex job and task IDs.
func RandomID() string {
	const idLength = 24

	return RandomString(idLength)
}

func Eventually(t *testing.T, condition func() bool, timeout time.Duration, interval time.Duration) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}

		time.Sleep(interval)
	}

	t.Fatal("Condition not met within timeout")
}
