package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rapidcourier/courier-backend/internal/domain"
	"github.com/rapidcourier/courier-backend/internal/repository/postgres"
	"github.com/rapidcourier/courier-backend/internal/service"
	"github.com/rapidcourier/courier-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func validBookingInput() service.CreateBookingInput {
	return service.CreateBookingInput{
		SenderName:         "Anand Kumar",
		SenderPhone:        "9876500001",
		PickupDoorNumber:   "12",
		PickupStreet:       "Anna Salai",
		PickupCity:         "Chennai",
		PickupState:        "Tamil Nadu",
		PickupPincode:      "600002",
		ReceiverName:       "Priya Raman",
		ReceiverPhone:      "9876500002",
		DeliveryDoorNumber: "7",
		DeliveryStreet:     "Brigade Road",
		DeliveryCity:       "Bengaluru",
		DeliveryState:      "Karnataka",
		DeliveryPincode:    "560001",
		PackageType:        "Documents",
		Description:        "Contract papers",
		VehicleType:        "Bike",
		PickupDate:         "2026-09-15",
	}
}

func TestBookingService_Create(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	bookingService := service.NewBookingService(repos.Booking)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	t.Run("successful creation", func(t *testing.T) {
		booking, err := bookingService.Create(ctx, user.ID, validBookingInput())
		require.NoError(t, err)

		assert.Equal(t, domain.BookingStatusPending, booking.Status)
		assert.Equal(t, user.ID, booking.UserID)
		assert.Contains(t, booking.TrackingCode, "RC")
		assert.Equal(t, "Contract papers", booking.PackageContents)
		require.NotNil(t, booking.PickupAt)
		assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), booking.PickupAt.UTC())
	})

	t.Run("contents default to package type", func(t *testing.T) {
		input := validBookingInput()
		input.Description = ""

		booking, err := bookingService.Create(ctx, user.ID, input)
		require.NoError(t, err)
		assert.Equal(t, "Documents", booking.PackageContents)
	})

	t.Run("all missing fields reported at once", func(t *testing.T) {
		input := validBookingInput()
		input.SenderName = ""
		input.DeliveryPincode = ""
		input.VehicleType = ""

		_, err := bookingService.Create(ctx, user.ID, input)

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.ElementsMatch(t, []string{"senderName", "deliveryPincode", "vehicleType"}, verr.Fields)
	})

	t.Run("unparseable pickup date is a validation failure", func(t *testing.T) {
		input := validBookingInput()
		input.PickupDate = "next tuesday"

		_, err := bookingService.Create(ctx, user.ID, input)

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "pickupDate")
	})
}

func TestBookingService_OwnershipScoping(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	bookingService := service.NewBookingService(repos.Booking)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	stranger, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	booking := testutil.NewBookingBuilder(owner.ID).Build(t, testDB.DB)

	t.Run("owner can read", func(t *testing.T) {
		got, err := bookingService.Get(ctx, owner.ID, booking.ID)
		require.NoError(t, err)
		assert.Equal(t, booking.TrackingCode, got.TrackingCode)
	})

	t.Run("non-owner gets not found, never forbidden", func(t *testing.T) {
		_, err := bookingService.Get(ctx, stranger.ID, booking.ID)
		assert.ErrorIs(t, err, domain.ErrBookingNotFound)
	})

	t.Run("absent booking gets the same not found", func(t *testing.T) {
		_, err := bookingService.Get(ctx, owner.ID, uuid.New())
		assert.ErrorIs(t, err, domain.ErrBookingNotFound)
	})
}

func TestBookingService_ListOrdering(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	bookingService := service.NewBookingService(repos.Booking)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	other, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	oldest := testutil.NewBookingBuilder(user.ID).
		WithCreatedAt(time.Now().Add(-2 * time.Hour)).Build(t, testDB.DB)
	newest := testutil.NewBookingBuilder(user.ID).
		WithCreatedAt(time.Now()).Build(t, testDB.DB)
	middle := testutil.NewBookingBuilder(user.ID).
		WithCreatedAt(time.Now().Add(-time.Hour)).Build(t, testDB.DB)
	testutil.NewBookingBuilder(other.ID).Build(t, testDB.DB)

	bookings, err := bookingService.List(ctx, user.ID)
	require.NoError(t, err)

	require.Len(t, bookings, 3)
	assert.Equal(t, newest.ID, bookings[0].ID)
	assert.Equal(t, middle.ID, bookings[1].ID)
	assert.Equal(t, oldest.ID, bookings[2].ID)
}

// collisionRepo enforces tracking-code uniqueness in memory so the retry
// policy can be exercised at volume without a database.
type collisionRepo struct {
	mu      sync.Mutex
	codes   map[string]struct{}
	creates int
}

func newCollisionRepo() *collisionRepo {
	return &collisionRepo{codes: make(map[string]struct{})}
}

func (r *collisionRepo) Create(ctx context.Context, booking *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.creates++
	if _, exists := r.codes[booking.TrackingCode]; exists {
		return gorm.ErrDuplicatedKey
	}
	r.codes[booking.TrackingCode] = struct{}{}
	return nil
}

func (r *collisionRepo) GetByUserAndID(ctx context.Context, userID, id uuid.UUID) (*domain.Booking, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *collisionRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Booking, error) {
	return nil, nil
}

func TestBookingService_CollisionRetryAtVolume(t *testing.T) {
	repo := newCollisionRepo()
	bookingService := service.NewBookingService(repo)
	ctx := context.Background()
	userID := uuid.New()

	for i := 0; i < 10000; i++ {
		_, err := bookingService.Create(ctx, userID, validBookingInput())
		require.NoError(t, err)
	}

	assert.Len(t, repo.codes, 10000)
}

// exhaustedRepo reports a duplicate key on every insert.
type exhaustedRepo struct {
	collisionRepo
}

func (r *exhaustedRepo) Create(ctx context.Context, booking *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.creates++
	return gorm.ErrDuplicatedKey
}

func TestBookingService_CodeGenerationExhausted(t *testing.T) {
	repo := &exhaustedRepo{}
	bookingService := service.NewBookingService(repo)

	_, err := bookingService.Create(context.Background(), uuid.New(), validBookingInput())

	assert.ErrorIs(t, err, domain.ErrCodeGenerationExhausted)
	assert.Equal(t, 5, repo.creates)
}
