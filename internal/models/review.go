package models

import (
	"time"

	"github.com/google/uuid"
)

// ReviewDB represents a review row in the database
type ReviewDB struct {
	ReviewID     uuid.UUID `json:"id" db:"review_id"`                // Primary key
	CampgroundID uuid.UUID `json:"campground_id" db:"campground_id"` // Parent campground
	AuthorID     uuid.UUID `json:"author_id" db:"author_id"`         // Owning user
	Rating       int       `json:"rating" db:"rating"`               // Integer 1..5
	Body         string    `json:"body" db:"body"`                   // Escaped text body
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// ReviewRef is the lightweight parent-to-review reference used when
// assembling directory listings.
type ReviewRef struct {
	ReviewID     uuid.UUID `json:"review_id" db:"review_id"`
	CampgroundID uuid.UUID `json:"campground_id" db:"campground_id"`
}

