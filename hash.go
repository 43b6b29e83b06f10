package diskcache

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// KeyHasher maps a cache key to a filename-safe digest.
// Hash must be deterministic and return only lowercase hex characters.
type KeyHasher interface {
	Name() string
	Hash(key string) string
}

// MD5Hasher renders the 128-bit MD5 of the key as 32 hex characters.
type MD5Hasher struct{}

func (MD5Hasher) Name() string { return "md5" }

func (MD5Hasher) Hash(key string) string {
	sum := md5.Sum([]byte(key))
	return hex.EncodeToString(sum[:])
}

// XXHasher renders xxhash64 of the key as 16 hex characters.
type XXHasher struct{}

func (XXHasher) Name() string { return "xxhash64" }

func (XXHasher) Hash(key string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(key))
}

// SHA256Hasher renders the first 16 bytes of SHA-256 as 32 hex characters.
type SHA256Hasher struct{}

func (SHA256Hasher) Name() string { return "sha256-128" }

func (SHA256Hasher) Hash(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:16])
}

// HasherByName returns the built-in hasher registered under name.
func HasherByName(name string) (KeyHasher, error) {
	switch name {
	case "", "md5":
		return MD5Hasher{}, nil
	case "xxhash64", "xxhash":
		return XXHasher{}, nil
	case "sha256-128", "sha256":
		return SHA256Hasher{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownHasher, name)
}
