package service

import (
	"context"
	"runtime"

	"golang.org/x/crypto/bcrypt"
)

// passwordHasher runs bcrypt work through a fixed pool of slots so a burst
// of register/login requests cannot occupy every scheduler thread with
// CPU-bound hashing.
type passwordHasher struct {
	cost int
	sem  chan struct{}
}

func newPasswordHasher(cost int) *passwordHasher {
	return &passwordHasher{
		cost: cost,
		sem:  make(chan struct{}, runtime.GOMAXPROCS(0)),
	}
}

func (h *passwordHasher) acquire(ctx context.Context) error {
	select {
	case h.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (h *passwordHasher) Hash(ctx context.Context, raw string) (string, error) {
	if err := h.acquire(ctx); err != nil {
		return "", err
	}
	defer func() { <-h.sem }()

	hashed, err := bcrypt.GenerateFromPassword([]byte(raw), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare reports a mismatch via bcrypt's own constant-time comparison.
func (h *passwordHasher) Compare(ctx context.Context, hash, raw string) error {
	if err := h.acquire(ctx); err != nil {
		return err
	}
	defer func() { <-h.sem }()

	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw))
}
