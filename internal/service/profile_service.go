package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rapidcourier/courier-backend/internal/domain"
	"github.com/rapidcourier/courier-backend/internal/repository"
	"gorm.io/gorm"
)

type ProfileService struct {
	userRepo repository.UserRepository
}

func NewProfileService(userRepo repository.UserRepository) *ProfileService {
	return &ProfileService{userRepo: userRepo}
}

// UpdateProfileInput carries optional fields. A nil field means "do not
// change" that attribute. Credential and reset fields are not reachable
// from here.
type UpdateProfileInput struct {
	FullName     *string
	Phone        *string
	DoorNumber   *string
	BuildingName *string
	Street       *string
	City         *string
	State        *string
	Pincode      *string
}

func (s *ProfileService) Get(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *ProfileService) Update(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*domain.User, error) {
	user, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Required attributes may change but never become empty.
	var invalid []string
	for _, f := range []struct {
		name  string
		value *string
	}{
		{"fullName", input.FullName},
		{"doorNumber", input.DoorNumber},
		{"street", input.Street},
		{"city", input.City},
		{"state", input.State},
		{"pincode", input.Pincode},
	} {
		if f.value != nil && *f.value == "" {
			invalid = append(invalid, f.name)
		}
	}
	if err := domain.NewValidationError(invalid); err != nil {
		return nil, err
	}

	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.Phone != nil {
		user.Phone = optional(*input.Phone)
	}
	if input.DoorNumber != nil {
		user.DoorNumber = *input.DoorNumber
	}
	if input.BuildingName != nil {
		user.BuildingName = optional(*input.BuildingName)
	}
	if input.Street != nil {
		user.Street = *input.Street
	}
	if input.City != nil {
		user.City = *input.City
	}
	if input.State != nil {
		user.State = *input.State
	}
	if input.Pincode != nil {
		user.Pincode = *input.Pincode
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
