package domain

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "Pending"
	BookingStatusInTransit BookingStatus = "InTransit"
	BookingStatusDelivered BookingStatus = "Delivered"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

// Booking is immutable after creation as far as this service is concerned:
// status transitions belong to the operations tooling, and trackingCode and
// UserID are never rewritten.
type Booking struct {
	ID           uuid.UUID     `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID       uuid.UUID     `json:"userId" gorm:"type:uuid;not null;index"`
	TrackingCode string        `json:"trackingCode" gorm:"uniqueIndex;not null"`
	Status       BookingStatus `json:"status" gorm:"not null;default:'Pending'"`

	// Pickup (sender) block
	PickupName         string  `json:"pickupName" gorm:"not null"`
	PickupPhone        string  `json:"pickupPhone" gorm:"not null"`
	PickupDoorNumber   string  `json:"pickupDoorNumber" gorm:"not null"`
	PickupBuildingName *string `json:"pickupBuildingName"`
	PickupStreet       string  `json:"pickupStreet" gorm:"not null"`
	PickupCity         string  `json:"pickupCity" gorm:"not null"`
	PickupState        string  `json:"pickupState" gorm:"not null"`
	PickupPincode      string  `json:"pickupPincode" gorm:"not null"`

	// Dropoff (receiver) block
	DropoffName         string  `json:"dropoffName" gorm:"not null"`
	DropoffPhone        string  `json:"dropoffPhone" gorm:"not null"`
	DropoffDoorNumber   string  `json:"dropoffDoorNumber" gorm:"not null"`
	DropoffBuildingName *string `json:"dropoffBuildingName"`
	DropoffStreet       string  `json:"dropoffStreet" gorm:"not null"`
	DropoffCity         string  `json:"dropoffCity" gorm:"not null"`
	DropoffState        string  `json:"dropoffState" gorm:"not null"`
	DropoffPincode      string  `json:"dropoffPincode" gorm:"not null"`

	// Package
	PackageType     string `json:"packageType" gorm:"not null"`
	PackageContents string `json:"packageContents" gorm:"not null"`
	Fragile         bool   `json:"fragile" gorm:"not null;default:false"`

	VehicleType string     `json:"vehicleType" gorm:"not null"`
	PickupAt    *time.Time `json:"pickupAt"`

	CreatedAt time.Time `json:"createdAt"`

	// Relations
	Owner *User `json:"-" gorm:"foreignKey:UserID"`
}
