package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rapidcourier/courier-backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	email    string
	password string
	fullName string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		email:    fmt.Sprintf("testuser_%s@example.com", uuid.New().String()[:8]),
		password: "testpassword123",
		fullName: "Test User",
	}
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// WithFullName sets the full name
func (b *UserBuilder) WithFullName(name string) *UserBuilder {
	b.fullName = name
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        b.email,
		PasswordHash: string(hashedPassword),
		FullName:     b.fullName,
		DoorNumber:   "12",
		Street:       "Main Street",
		City:         "Chennai",
		State:        "Tamil Nadu",
		Pincode:      "600001",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// AuthResponse matches the API auth response
type AuthResponse struct {
	Token string `json:"token"`
	User  struct {
		ID       string `json:"id"`
		Email    string `json:"email"`
		FullName string `json:"fullName"`
	} `json:"user"`
}

// BuildAndAuthenticate creates a user via API and returns the user and token
func (b *UserBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	reqBody := map[string]string{
		"email":      b.email,
		"password":   b.password,
		"fullName":   b.fullName,
		"doorNumber": "12",
		"street":     "Main Street",
		"city":       "Chennai",
		"state":      "Tamil Nadu",
		"pincode":    "600001",
	}
	body, _ := json.Marshal(reqBody)

	resp, err := http.Post(ts.APIURL("/auth/register"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to register user: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code: %d", resp.StatusCode)
	}

	var authResp AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&authResp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	userID, _ := uuid.Parse(authResp.User.ID)
	user := &domain.User{
		ID:       userID,
		Email:    authResp.User.Email,
		FullName: authResp.User.FullName,
	}

	return user, authResp.Token
}

// BookingPayload returns a complete booking request body. Callers delete
// keys to exercise validation.
func BookingPayload() map[string]interface{} {
	return map[string]interface{}{
		"senderName":         "Anand Kumar",
		"senderPhone":        "9876500001",
		"pickupDoorNumber":   "12",
		"pickupStreet":       "Anna Salai",
		"pickupCity":         "Chennai",
		"pickupState":        "Tamil Nadu",
		"pickupPincode":      "600002",
		"receiverName":       "Priya Raman",
		"receiverPhone":      "9876500002",
		"deliveryDoorNumber": "7",
		"deliveryStreet":     "Brigade Road",
		"deliveryCity":       "Bengaluru",
		"deliveryState":      "Karnataka",
		"deliveryPincode":    "560001",
		"packageType":        "Documents",
		"description":        "Contract papers",
		"fragile":            false,
		"vehicleType":        "Bike",
		"pickupDate":         "2026-09-15",
	}
}

// BookingBuilder inserts bookings directly for read-path tests
type BookingBuilder struct {
	userID       uuid.UUID
	trackingCode string
	createdAt    time.Time
}

// NewBookingBuilder creates a builder for the given owner
func NewBookingBuilder(userID uuid.UUID) *BookingBuilder {
	return &BookingBuilder{
		userID:       userID,
		trackingCode: fmt.Sprintf("RCTEST%s", uuid.New().String()[:8]),
		createdAt:    time.Now(),
	}
}

// WithTrackingCode sets the tracking code
func (b *BookingBuilder) WithTrackingCode(code string) *BookingBuilder {
	b.trackingCode = code
	return b
}

// WithCreatedAt sets the creation timestamp
func (b *BookingBuilder) WithCreatedAt(ts time.Time) *BookingBuilder {
	b.createdAt = ts
	return b
}

// Build inserts the booking
func (b *BookingBuilder) Build(t *testing.T, db *gorm.DB) *domain.Booking {
	t.Helper()

	booking := &domain.Booking{
		ID:                uuid.New(),
		UserID:            b.userID,
		TrackingCode:      b.trackingCode,
		Status:            domain.BookingStatusPending,
		PickupName:        "Anand Kumar",
		PickupPhone:       "9876500001",
		PickupDoorNumber:  "12",
		PickupStreet:      "Anna Salai",
		PickupCity:        "Chennai",
		PickupState:       "Tamil Nadu",
		PickupPincode:     "600002",
		DropoffName:       "Priya Raman",
		DropoffPhone:      "9876500002",
		DropoffDoorNumber: "7",
		DropoffStreet:     "Brigade Road",
		DropoffCity:       "Bengaluru",
		DropoffState:      "Karnataka",
		DropoffPincode:    "560001",
		PackageType:       "Documents",
		PackageContents:   "Contract papers",
		VehicleType:       "Bike",
		CreatedAt:         b.createdAt,
	}

	if err := db.Create(booking).Error; err != nil {
		t.Fatalf("failed to create booking: %v", err)
	}

	return booking
}
