package database

import (
	"cineshow/internal/bookings"
	"cineshow/internal/casts"
	"cineshow/internal/movies"
	"cineshow/internal/shows"
	"cineshow/internal/slots"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	// uuid_generate_v4() defaults on the models need the extension
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&movies.Movie{},
		&casts.Cast{},
		&shows.Show{},
		&slots.DateTimeSlot{},
		&bookings.Booking{},
	)
}
