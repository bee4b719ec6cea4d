package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	FullName     string    `json:"fullName" gorm:"not null"`
	Phone        *string   `json:"phone"`

	// Postal address
	DoorNumber   string  `json:"doorNumber" gorm:"not null"`
	BuildingName *string `json:"buildingName"`
	Street       string  `json:"street" gorm:"not null"`
	City         string  `json:"city" gorm:"not null"`
	State        string  `json:"state" gorm:"not null"`
	Pincode      string  `json:"pincode" gorm:"not null"`

	// Password reset. Both fields are null or both are set.
	ResetToken       *string    `json:"-"`
	ResetTokenExpiry *time.Time `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
