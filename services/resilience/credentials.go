package resilience

import (
	"math/rand/v2"
	"strings"
)

// ShuffleFunc permutes n elements through swap, with the contract of rand.Shuffle
type ShuffleFunc func(n int, swap func(i, j int))

// CredentialPool holds the configured API credentials.
// The pool is immutable after construction and safe for concurrent use.
type CredentialPool struct {
	keys    []string
	shuffle ShuffleFunc
}

// PoolOption configures a CredentialPool
type PoolOption func(*CredentialPool)

// WithShuffle replaces the random permutation source
func WithShuffle(shuffle ShuffleFunc) PoolOption {
	return func(p *CredentialPool) {
		if shuffle != nil {
			p.shuffle = shuffle
		}
	}
}

// NewCredentialPool builds a pool from raw keys. Keys are trimmed, blanks are
// dropped and duplicates keep their first position.
func NewCredentialPool(keys []string, opts ...PoolOption) *CredentialPool {
	seen := make(map[string]struct{}, len(keys))
	unique := make([]string, 0, len(keys))
	for _, key := range keys {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, key)
	}

	pool := &CredentialPool{
		keys:    unique,
		shuffle: rand.Shuffle,
	}
	for _, opt := range opts {
		opt(pool)
	}
	return pool
}

// Credentials returns a fresh random permutation of the pool
func (p *CredentialPool) Credentials() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	p.shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// Len returns the number of unique credentials
func (p *CredentialPool) Len() int {
	return len(p.keys)
}

// IsEmpty reports whether no credential is configured
func (p *CredentialPool) IsEmpty() bool {
	return len(p.keys) == 0
}

// MaskCredential keeps only the last four characters of a credential for logs
func MaskCredential(credential string) string {
	const visible = 4
	if len(credential) <= visible {
		return "****"
	}
	return "..." + credential[len(credential)-visible:]
}
