package postgres

import (
	"github.com/rapidcourier/courier-backend/internal/domain"
	"github.com/rapidcourier/courier-backend/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewConnection opens the database and migrates the schema. TranslateError
// is enabled so unique-constraint violations surface as
// gorm.ErrDuplicatedKey, which the services rely on as the authoritative
// uniqueness check for emails and tracking codes.
func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Info),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&domain.User{},
		&domain.Booking{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		User:    NewUserRepository(db),
		Booking: NewBookingRepository(db),
	}
}
