package service

import (
	"github.com/rapidcourier/courier-backend/internal/config"
	"github.com/rapidcourier/courier-backend/internal/repository"
)

type Services struct {
	Auth          *AuthService
	PasswordReset *PasswordResetService
	Profile       *ProfileService
	Booking       *BookingService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:          NewAuthService(repos.User, cfg),
		PasswordReset: NewPasswordResetService(repos.User, cfg),
		Profile:       NewProfileService(repos.User),
		Booking:       NewBookingService(repos.Booking),
	}
}
