package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"cineshow/internal/casts"
	"cineshow/internal/movies"
	"cineshow/internal/shared/config"
	"cineshow/internal/shared/database"
	"cineshow/internal/shows"
	"cineshow/internal/slots"

	"github.com/google/uuid"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("Starting Cineshow Database Seeder...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	fmt.Println("\nCleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("Database cleaned successfully")

	fmt.Println("\nSeeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("Database seeded successfully")

	fmt.Println("\nSeeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in reverse dependency order.
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"bookings",
		"date_time_slots",
		"shows",
		"casts",
		"movies",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return tx.Commit().Error
}

// SeedAll seeds the movie catalog, shows and showtime slots.
func (s *Seeder) SeedAll() error {
	ctx := context.Background()

	movieIDs, err := s.SeedMovies(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed movies: %w", err)
	}

	if err := s.SeedCasts(ctx); err != nil {
		return fmt.Errorf("failed to seed casts: %w", err)
	}

	showIDs, err := s.SeedShows(ctx, movieIDs)
	if err != nil {
		return fmt.Errorf("failed to seed shows: %w", err)
	}

	if err := s.SeedSlots(ctx, showIDs); err != nil {
		return fmt.Errorf("failed to seed showtime slots: %w", err)
	}

	return nil
}

// SeedMovies inserts a small catalog and returns the created IDs.
func (s *Seeder) SeedMovies(ctx context.Context) ([]uuid.UUID, error) {
	fmt.Println("  Seeding movies...")

	catalog := []movies.Movie{
		{
			MovieID:          603692,
			Title:            "John Wick: Chapter 4",
			Overview:         "With the price on his head ever increasing, John Wick uncovers a path to defeating The High Table.",
			PosterPath:       "/vZloFAK7NmvMGKE7VkF5UHaz0I.jpg",
			BackdropPath:     "/7I6VUdPj6tQECNHdviJkUHD2u89.jpg",
			Genres:           movies.GenreList{{ID: 28, Name: "Action"}, {ID: 53, Name: "Thriller"}},
			Casts:            movies.CastCreditList{{Name: "Keanu Reeves", ProfilePath: "/4D0PpNI0kmP58hgrwGC3wCjxhnm.jpg"}},
			ReleaseDate:      "2023-03-22",
			OriginalLanguage: "en",
			Tagline:          "No way back, one way out.",
			VoteAverage:      7.8,
			VoteCount:        5921,
			Runtime:          170,
		},
		{
			MovieID:          693134,
			Title:            "Dune: Part Two",
			Overview:         "Paul Atreides unites with Chani and the Fremen while seeking revenge against the conspirators who destroyed his family.",
			PosterPath:       "/1pdfLvkbY9ohJlCjQH2CZjjYVvJ.jpg",
			BackdropPath:     "/xOMo8BRK7PfcJv9JCnx7s5hj0PX.jpg",
			Genres:           movies.GenreList{{ID: 878, Name: "Science Fiction"}, {ID: 12, Name: "Adventure"}},
			Casts:            movies.CastCreditList{{Name: "Timothee Chalamet", ProfilePath: "/BE2sdjpgsa2rNTFa66f7upkaOP.jpg"}},
			ReleaseDate:      "2024-02-27",
			OriginalLanguage: "en",
			Tagline:          "Long live the fighters.",
			VoteAverage:      8.2,
			VoteCount:        5543,
			Runtime:          167,
		},
		{
			MovieID:          787699,
			Title:            "Wonka",
			Overview:         "Willy Wonka, chock-full of ideas and determined to change the world one delectable bite at a time, proves that the best things in life begin with a dream.",
			PosterPath:       "/qhb1qOilapbapxWQn9jtRCMwXJF.jpg",
			BackdropPath:     "/yOm993lsJyPmBodlYjgpPwBjXP9.jpg",
			Genres:           movies.GenreList{{ID: 35, Name: "Comedy"}, {ID: 10751, Name: "Family"}},
			Casts:            movies.CastCreditList{{Name: "Timothee Chalamet", ProfilePath: "/BE2sdjpgsa2rNTFa66f7upkaOP.jpg"}},
			ReleaseDate:      "2023-12-06",
			OriginalLanguage: "en",
			Tagline:          "Every good thing in this world started with a dream.",
			VoteAverage:      7.2,
			VoteCount:        3412,
			Runtime:          117,
		},
	}

	ids := make([]uuid.UUID, 0, len(catalog))
	for i := range catalog {
		if err := s.db.PostgreSQL.WithContext(ctx).Create(&catalog[i]).Error; err != nil {
			return nil, err
		}
		ids = append(ids, catalog[i].ID)
		fmt.Printf("    Created movie: %s\n", catalog[i].Title)
	}
	return ids, nil
}

// SeedCasts inserts the standalone cast directory.
func (s *Seeder) SeedCasts(ctx context.Context) error {
	fmt.Println("  Seeding casts...")

	directory := []casts.Cast{
		{Name: "Keanu Reeves", ProfilePath: "/4D0PpNI0kmP58hgrwGC3wCjxhnm.jpg"},
		{Name: "Timothee Chalamet", ProfilePath: "/BE2sdjpgsa2rNTFa66f7upkaOP.jpg"},
		{Name: "Zendaya", ProfilePath: "/3WdOloHpjtjL96uVOhFRRCcYSwq.jpg"},
		{Name: "Donnie Yen", ProfilePath: "/hSm2gRiVXV6mA6PbSZHBixl0fIb.jpg"},
	}

	for i := range directory {
		if err := s.db.PostgreSQL.WithContext(ctx).Create(&directory[i]).Error; err != nil {
			return err
		}
		fmt.Printf("    Created cast member: %s\n", directory[i].Name)
	}
	return nil
}

// SeedShows creates a week of shows per movie, three screenings a day.
func (s *Seeder) SeedShows(ctx context.Context, movieIDs []uuid.UUID) ([]shows.Show, error) {
	fmt.Println("  Seeding shows...")

	screenings := []time.Duration{14 * time.Hour, 18 * time.Hour, 21*time.Hour + 30*time.Minute}
	prices := []float64{9.50, 12.00, 14.50}

	var created []shows.Show
	base := time.Now().UTC().Truncate(24 * time.Hour)

	for mi, movieID := range movieIDs {
		for day := 0; day < 7; day++ {
			for si, offset := range screenings {
				show := shows.Show{
					MovieID:       movieID,
					ShowDateTime:  base.AddDate(0, 0, day+1).Add(offset),
					ShowPrice:     prices[(mi+si)%len(prices)],
					OccupiedSeats: shows.SeatMap{},
				}
				if err := s.db.PostgreSQL.WithContext(ctx).Create(&show).Error; err != nil {
					return nil, err
				}
				created = append(created, show)
			}
		}
	}

	fmt.Printf("    Created %d shows\n", len(created))
	return created, nil
}

// SeedSlots groups the created shows by date into showtime slot records.
func (s *Seeder) SeedSlots(ctx context.Context, created []shows.Show) error {
	fmt.Println("  Seeding showtime slots...")

	byDate := make(map[string]slots.SlotEntryList)
	for i := range created {
		date := created[i].ShowDateTime.Format("2006-01-02")
		byDate[date] = append(byDate[date], slots.SlotEntry{
			Time:   created[i].ShowDateTime,
			ShowID: created[i].ID.String(),
		})
	}

	for date, entries := range byDate {
		slot := slots.DateTimeSlot{
			Date:  date,
			Slots: entries,
		}
		if err := s.db.PostgreSQL.WithContext(ctx).Create(&slot).Error; err != nil {
			return err
		}
	}

	fmt.Printf("    Created %d slot records\n", len(byDate))
	return nil
}
