package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"strings"
	"sync"
)

// fingerprintLen is the number of hex characters kept from the digest.
const fingerprintLen = 12

// hasherPool is a package-level pool of reusable SHA-256 instances.
var hasherPool = sync.Pool{
	New: func() any {
		return sha256.New()
	},
}

// Fingerprint returns a short, stable, non-reversible tag for an account
// identifier so log lines can be correlated without writing the email.
//
// The identifier is trimmed and lower-cased first, so "U@Example.com " and
// "u@example.com" share a fingerprint.
//
// Example usage:
//
//	log.Info().Str("account", utils.Fingerprint(email)).Msg("login started")
func Fingerprint(identifier string) string {
	normalized := strings.ToLower(strings.TrimSpace(identifier))
	if normalized == "" {
		return ""
	}
	return hex.EncodeToString(digest([]byte(normalized)))[:fingerprintLen]
}

// digest computes SHA-256 over data using a hasher pulled from the pool.
func digest(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return sum
}
