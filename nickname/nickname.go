// Package nickname generates the per-session identifier SAMv3 calls ID=.
// The router only uses it to tie later commands, on any connection, to a
// session, so collisions need to be vanishingly unlikely, not
// cryptographically unguessable; even so this draws from go-i2p/crypto's
// rand rather than math/rand, matching how the rest of the stack sources
// randomness (spec.md §4.4).
package nickname

import (
	rand "github.com/go-i2p/crypto/rand"
)

const (
	length  = 30
	charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// Generate returns a random 30-character alphanumeric nickname.
func Generate() (string, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	out := make([]byte, length)
	for i, b := range buf {
		out[i] = charset[int(b)%len(charset)]
	}
	return string(out), nil
}
