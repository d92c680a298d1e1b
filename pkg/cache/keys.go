package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// Key joins a prefix and parameters into a colon separated cache key.
// Parameters are rendered with %v, so callers quote anything that may
// itself contain a colon.
func Key(prefix string, params ...any) string {
	var b strings.Builder
	b.WriteString(prefix)
	for _, p := range params {
		b.WriteByte(':')
		fmt.Fprintf(&b, "%v", p)
	}
	return b.String()
}

// Fingerprint returns a short stable digest of key for logs and metrics labels.
func Fingerprint(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:8])
}
