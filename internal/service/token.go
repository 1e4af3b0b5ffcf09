package service

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// newAccessToken mints an opaque build access token. The token is the only
// way to address a build over the API; record IDs are never accepted there.
func newAccessToken() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}
	return hex.EncodeToString(raw), nil
}
