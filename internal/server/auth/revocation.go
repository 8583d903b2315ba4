package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"
)

// Revocations remembers logged-out tokens until they would have expired
// anyway. Tokens are stored as SHA-256 digests.
type Revocations struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

func NewRevocations() *Revocations {
	return &Revocations{revoked: map[string]time.Time{}, now: time.Now}
}

// Revoke rejects token until the given time. Expired entries are dropped on
// every call.
func (r *Revocations) Revoke(token string, until time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for k, exp := range r.revoked {
		if !exp.After(now) {
			delete(r.revoked, k)
		}
	}
	if until.After(now) {
		r.revoked[digest(token)] = until
	}
}

func (r *Revocations) IsRevoked(token string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	exp, ok := r.revoked[digest(token)]
	return ok && exp.After(r.now())
}

func (r *Revocations) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.revoked)
}

func digest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
