// Package cache memoizes category labels across pipeline runs so repeated
// classification of the same article text never hits the network twice.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key generates a cache key from article text. The text is hashed so keys
// stay short and filesystem-safe regardless of article length.
func Key(text string) string {
	hash := sha256.Sum256([]byte(text))
	return "neutralwire:v1:" + hex.EncodeToString(hash[:])
}
