package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rapidcourier/courier-backend/internal/domain"
	"github.com/rapidcourier/courier-backend/internal/repository"
	"gorm.io/gorm"
)

// maxTrackingCodeAttempts bounds the collision retry loop on booking
// insert.
const maxTrackingCodeAttempts = 5

type BookingService struct {
	bookingRepo repository.BookingRepository
}

func NewBookingService(bookingRepo repository.BookingRepository) *BookingService {
	return &BookingService{bookingRepo: bookingRepo}
}

type CreateBookingInput struct {
	SenderName  string
	SenderPhone string

	PickupDoorNumber   string
	PickupBuildingName string
	PickupStreet       string
	PickupCity         string
	PickupState        string
	PickupPincode      string

	ReceiverName  string
	ReceiverPhone string

	DeliveryDoorNumber   string
	DeliveryBuildingName string
	DeliveryStreet       string
	DeliveryCity         string
	DeliveryState        string
	DeliveryPincode      string

	PackageType string
	Description string
	Fragile     bool

	VehicleType string
	PickupDate  string
}

var pickupDateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func (in *CreateBookingInput) validate() ([]string, error) {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"senderName", in.SenderName},
		{"senderPhone", in.SenderPhone},
		{"pickupDoorNumber", in.PickupDoorNumber},
		{"pickupStreet", in.PickupStreet},
		{"pickupCity", in.PickupCity},
		{"pickupState", in.PickupState},
		{"pickupPincode", in.PickupPincode},
		{"receiverName", in.ReceiverName},
		{"receiverPhone", in.ReceiverPhone},
		{"deliveryDoorNumber", in.DeliveryDoorNumber},
		{"deliveryStreet", in.DeliveryStreet},
		{"deliveryCity", in.DeliveryCity},
		{"deliveryState", in.DeliveryState},
		{"deliveryPincode", in.DeliveryPincode},
		{"vehicleType", in.VehicleType},
		{"packageType", in.PackageType},
		{"pickupDate", in.PickupDate},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	return missing, domain.NewValidationError(missing)
}

func parsePickupDate(raw string) (*time.Time, bool) {
	for _, layout := range pickupDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, true
		}
	}
	return nil, false
}

func (s *BookingService) Create(ctx context.Context, userID uuid.UUID, input CreateBookingInput) (*domain.Booking, error) {
	missing, verr := input.validate()

	var pickupAt *time.Time
	if input.PickupDate != "" {
		parsed, ok := parsePickupDate(input.PickupDate)
		if !ok {
			missing = append(missing, "pickupDate")
			verr = domain.NewValidationError(missing)
		}
		pickupAt = parsed
	}
	if verr != nil {
		return nil, verr
	}

	// Package contents default to the package type when no description is
	// supplied.
	contents := input.Description
	if contents == "" {
		contents = input.PackageType
	}

	booking := &domain.Booking{
		UserID: userID,
		Status: domain.BookingStatusPending,

		PickupName:         input.SenderName,
		PickupPhone:        input.SenderPhone,
		PickupDoorNumber:   input.PickupDoorNumber,
		PickupBuildingName: optional(input.PickupBuildingName),
		PickupStreet:       input.PickupStreet,
		PickupCity:         input.PickupCity,
		PickupState:        input.PickupState,
		PickupPincode:      input.PickupPincode,

		DropoffName:         input.ReceiverName,
		DropoffPhone:        input.ReceiverPhone,
		DropoffDoorNumber:   input.DeliveryDoorNumber,
		DropoffBuildingName: optional(input.DeliveryBuildingName),
		DropoffStreet:       input.DeliveryStreet,
		DropoffCity:         input.DeliveryCity,
		DropoffState:        input.DeliveryState,
		DropoffPincode:      input.DeliveryPincode,

		PackageType:     input.PackageType,
		PackageContents: contents,
		Fragile:         input.Fragile,
		VehicleType:     input.VehicleType,
		PickupAt:        pickupAt,
	}

	// The insert is the uniqueness check: on a tracking-code collision the
	// constraint fires and we retry with a fresh code.
	for attempt := 0; attempt < maxTrackingCodeAttempts; attempt++ {
		booking.ID = uuid.New()
		booking.TrackingCode = trackingCode(time.Now())

		err := s.bookingRepo.Create(ctx, booking)
		if err == nil {
			return booking, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
	}

	return nil, domain.ErrCodeGenerationExhausted
}

// Get hides bookings owned by other users behind the same not-found answer
// as truly absent ones.
func (s *BookingService) Get(ctx context.Context, userID, id uuid.UUID) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByUserAndID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}

func (s *BookingService) List(ctx context.Context, userID uuid.UUID) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByUser(ctx, userID)
}
