package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/rapidcourier/courier-backend/internal/config"
	"github.com/rapidcourier/courier-backend/internal/domain"
	"github.com/rapidcourier/courier-backend/internal/repository"
)

// PasswordResetService issues and consumes single-use, time-bounded reset
// tokens. A user has at most one active token; a new request overwrites the
// previous one.
type PasswordResetService struct {
	userRepo repository.UserRepository
	hasher   *passwordHasher
	cfg      *config.Config
}

func NewPasswordResetService(userRepo repository.UserRepository, cfg *config.Config) *PasswordResetService {
	return &PasswordResetService{
		userRepo: userRepo,
		hasher:   newPasswordHasher(cfg.BcryptCost),
		cfg:      cfg,
	}
}

type ResetRequestResult struct {
	Token     string
	ExpiresAt time.Time
}

func (s *PasswordResetService) Request(ctx context.Context, email string) (*ResetRequestResult, error) {
	token := generateResetToken()
	expiry := time.Now().Add(s.cfg.ResetTokenTTL)

	updated, err := s.userRepo.SetResetToken(ctx, email, token, expiry)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, domain.ErrUserNotFound
	}

	return &ResetRequestResult{Token: token, ExpiresAt: expiry}, nil
}

func (s *PasswordResetService) Consume(ctx context.Context, email, token, newPassword string) error {
	if newPassword == "" {
		return domain.NewValidationError([]string{"newPassword"})
	}

	hash, err := s.hasher.Hash(ctx, newPassword)
	if err != nil {
		return err
	}

	updated, err := s.userRepo.ConsumeResetToken(ctx, email, token, hash, time.Now())
	if err != nil {
		return err
	}
	if !updated {
		// Wrong email, wrong token and expired token all collapse into one
		// answer; the stored token is left untouched.
		return domain.ErrInvalidOrExpiredToken
	}

	return nil
}

// generateResetToken draws from crypto/rand: reset tokens prove control of
// the registered email and must not be guessable.
func generateResetToken() string {
	bytes := make([]byte, 16)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}
