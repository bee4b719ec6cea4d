package postgres_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rapidcourier/courier-backend/internal/domain"
	"github.com/rapidcourier/courier-backend/internal/repository/postgres"
	"github.com/rapidcourier/courier-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestBookingRepository_TrackingCodeUniqueConstraint(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewBookingRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	first := testutil.NewBookingBuilder(user.ID).WithTrackingCode("RCUNIQUE1")
	first.Build(t, testDB.DB)

	clash := &domain.Booking{
		ID:                uuid.New(),
		UserID:            user.ID,
		TrackingCode:      "RCUNIQUE1",
		Status:            domain.BookingStatusPending,
		PickupName:        "A",
		PickupPhone:       "1",
		PickupDoorNumber:  "1",
		PickupStreet:      "S",
		PickupCity:        "C",
		PickupState:       "St",
		PickupPincode:     "600001",
		DropoffName:       "B",
		DropoffPhone:      "2",
		DropoffDoorNumber: "2",
		DropoffStreet:     "S2",
		DropoffCity:       "C2",
		DropoffState:      "St2",
		DropoffPincode:    "560001",
		PackageType:       "Documents",
		PackageContents:   "Documents",
		VehicleType:       "Bike",
	}

	err := repo.Create(ctx, clash)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestBookingRepository_ScopedReads(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewBookingRepository(testDB.DB)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	other, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	booking := testutil.NewBookingBuilder(owner.ID).Build(t, testDB.DB)

	got, err := repo.GetByUserAndID(ctx, owner.ID, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.TrackingCode, got.TrackingCode)

	_, err = repo.GetByUserAndID(ctx, other.ID, booking.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
