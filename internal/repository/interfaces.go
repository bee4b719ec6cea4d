package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rapidcourier/courier-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error

	// SetResetToken stores a reset token and its expiry on the user owning
	// email, replacing any outstanding token. It reports whether a row was
	// updated so callers can distinguish an unknown email.
	SetResetToken(ctx context.Context, email, token string, expiry time.Time) (bool, error)

	// ConsumeResetToken atomically sets passwordHash and clears the reset
	// fields, but only when the stored token matches and has not expired.
	// It reports whether a row was updated.
	ConsumeResetToken(ctx context.Context, email, token, passwordHash string, now time.Time) (bool, error)
}

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByUserAndID(ctx context.Context, userID, id uuid.UUID) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Booking, error)
}

type Repositories struct {
	User    UserRepository
	Booking BookingRepository
}
