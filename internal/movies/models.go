package movies

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Genre is a single genre entry embedded in a movie record
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CastCredit is a cast member embedded in a movie record
type CastCredit struct {
	Name        string `json:"name"`
	ProfilePath string `json:"profile_path"`
}

// GenreList stores embedded genres as a JSONB column
type GenreList []Genre

func (g GenreList) Value() (driver.Value, error) {
	return json.Marshal(g)
}

func (g *GenreList) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("failed to scan GenreList: expected []byte, got %T", value)
	}
	return json.Unmarshal(bytes, g)
}

// CastCreditList stores embedded cast credits as a JSONB column
type CastCreditList []CastCredit

func (c CastCreditList) Value() (driver.Value, error) {
	return json.Marshal(c)
}

func (c *CastCreditList) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("failed to scan CastCreditList: expected []byte, got %T", value)
	}
	return json.Unmarshal(bytes, c)
}

// Movie holds the catalog record for a single film
type Movie struct {
	ID               uuid.UUID      `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	MovieID          int            `json:"movieId" gorm:"not null;uniqueIndex"`
	Title            string         `json:"title" gorm:"not null;size:255"`
	Overview         string         `json:"overview" gorm:"type:text"`
	PosterPath       string         `json:"poster_path" gorm:"size:500"`
	BackdropPath     string         `json:"backdrop_path" gorm:"size:500"`
	Genres           GenreList      `json:"genres" gorm:"type:jsonb;default:'[]'"`
	Casts            CastCreditList `json:"casts" gorm:"type:jsonb;default:'[]'"`
	ReleaseDate      string         `json:"release_date" gorm:"size:20"`
	OriginalLanguage string         `json:"original_language" gorm:"size:10"`
	Tagline          string         `json:"tagline" gorm:"size:500"`
	VoteAverage      float64        `json:"vote_average"`
	VoteCount        int            `json:"vote_count"`
	Runtime          int            `json:"runtime"`
	CreatedAt        time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt        time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName sets the table name for Movie
func (Movie) TableName() string {
	return "movies"
}
