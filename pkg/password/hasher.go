// Package password hashes and verifies account passwords with bcrypt.
package password

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"
)

// maxInputBytes is the bcrypt input limit; longer passwords are truncated.
const maxInputBytes = 72

type Hasher struct {
	cost int
	sem  *semaphore.Weighted
}

// NewHasher returns a Hasher running at most concurrency bcrypt operations at once.
func NewHasher(cost, concurrency int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	if concurrency < 1 {
		concurrency = 1
	}
	return &Hasher{
		cost: cost,
		sem:  semaphore.NewWeighted(int64(concurrency)),
	}
}

func (h *Hasher) Hash(ctx context.Context, plaintext string) (string, error) {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer h.sem.Release(1)

	digest, err := bcrypt.GenerateFromPassword(truncate(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest. A mismatch is not an error;
// a malformed digest is.
func (h *Hasher) Verify(ctx context.Context, plaintext, digest string) (bool, error) {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return false, err
	}
	defer h.sem.Release(1)

	err := bcrypt.CompareHashAndPassword([]byte(digest), truncate(plaintext))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, err
}

func truncate(plaintext string) []byte {
	b := []byte(plaintext)
	if len(b) > maxInputBytes {
		b = b[:maxInputBytes]
	}
	return b
}
