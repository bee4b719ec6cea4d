package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rapidcourier/courier-backend/internal/config"
	"github.com/rapidcourier/courier-backend/internal/domain"
	"github.com/rapidcourier/courier-backend/internal/repository"
	"gorm.io/gorm"
)

type AuthService struct {
	userRepo repository.UserRepository
	hasher   *passwordHasher
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   newPasswordHasher(cfg.BcryptCost),
		cfg:      cfg,
	}
}

type RegisterInput struct {
	Email        string
	Password     string
	FullName     string
	Phone        string
	DoorNumber   string
	BuildingName string
	Street       string
	City         string
	State        string
	Pincode      string
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthResult struct {
	User  *domain.User
	Token string
}

func (in *RegisterInput) validate() error {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"email", in.Email},
		{"password", in.Password},
		{"fullName", in.FullName},
		{"doorNumber", in.DoorNumber},
		{"street", in.Street},
		{"city", in.City},
		{"state", in.State},
		{"pincode", in.Pincode},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	return domain.NewValidationError(missing)
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(ctx, input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: hash,
		FullName:     input.FullName,
		Phone:        optional(input.Phone),
		DoorNumber:   input.DoorNumber,
		BuildingName: optional(input.BuildingName),
		Street:       input.Street,
		City:         input.City,
		State:        input.State,
		Pincode:      input.Pincode,
	}

	// The unique constraint on email is the authoritative duplicate check;
	// a pre-insert lookup would race with concurrent registrations.
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, err
	}

	token, err := s.MintToken(user)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: user, Token: token}, nil
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		// Unknown email and wrong password are indistinguishable to the
		// caller.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.hasher.Compare(ctx, user.PasswordHash, input.Password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.MintToken(user)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: user, Token: token}, nil
}

func (s *AuthService) MintToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// ValidateToken checks signature and expiry only; there is no server-side
// revocation list. Every failure mode is reported identically so callers
// cannot tell a forged token from an expired one.
func (s *AuthService) ValidateToken(tokenString string) (*jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, errors.New("invalid token")
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return &claims, nil
	}

	return nil, errors.New("invalid token")
}

func (s *AuthService) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// optional normalizes empty strings to null before storage.
func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
