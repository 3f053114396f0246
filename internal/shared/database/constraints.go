package database

import (
	"gorm.io/gorm"
)

// MigrateIndexes adds indexes AutoMigrate cannot express.
func MigrateIndexes(db *gorm.DB) error {
	// Bookings are looked up by the denormalized external user id on every
	// find/delete request.
	err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_bookings_user_id
		ON bookings (user_id);
	`).Error
	if err != nil {
		return err
	}

	// Seat-map lookups during booking creation lock the show row; this index
	// keeps the listing join with movies cheap.
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_shows_movie_id
		ON shows (movie_id);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
