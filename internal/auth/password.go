package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"
)

// Hasher computes bcrypt digests at a fixed cost. bcrypt salts every call,
// so hashing the same password twice yields different digests. A semaphore
// bounds in-flight hash computations so a burst of signups cannot occupy
// every scheduler thread at once.
type Hasher struct {
	cost int
	sem  chan struct{}
}

// NewHasher builds a Hasher. Costs outside bcrypt's supported range fall
// back to the bcrypt default.
func NewHasher(cost, maxConcurrency int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	if maxConcurrency <= 0 {
		maxConcurrency = 1
	}
	return &Hasher{cost: cost, sem: make(chan struct{}, maxConcurrency)}
}

// Hash returns a salted one-way digest of the plaintext.
func (h *Hasher) Hash(ctx context.Context, plaintext string) (string, error) {
	select {
	case h.sem <- struct{}{}:
	case <-ctx.Done():
		return "", ctx.Err()
	}
	defer func() { <-h.sem }()

	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches the digest. A malformed digest
// verifies as false rather than failing.
func (h *Hasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
