package models

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GeoPoint is the GeoJSON point resolved from a campground's location text.
type GeoPoint struct {
	Type        string     `json:"type"`        // Always "Point"
	Coordinates [2]float64 `json:"coordinates"` // Longitude first, latitude second
}

// NewGeoPoint builds a GeoJSON point from a longitude/latitude pair.
func NewGeoPoint(longitude, latitude float64) GeoPoint {
	return GeoPoint{
		Type:        "Point",
		Coordinates: [2]float64{longitude, latitude},
	}
}

// CampgroundDB represents a campground row in the database
type CampgroundDB struct {
	CampgroundID uuid.UUID `json:"id" db:"campground_id"`      // Primary key
	Title        string    `json:"title" db:"title"`           // Listing title
	Price        float64   `json:"price" db:"price"`           // Price per night
	Description  string    `json:"description" db:"description"`
	Location     string    `json:"location" db:"location"`     // Free-text location as entered
	Longitude    float64   `json:"-" db:"longitude"`           // Geocoded longitude
	Latitude     float64   `json:"-" db:"latitude"`            // Geocoded latitude
	AuthorID     uuid.UUID `json:"author_id" db:"author_id"`   // Owning user, set once at creation
	Version      int64     `json:"version" db:"version"`       // Optimistic concurrency counter
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Geometry returns the stored coordinates as a GeoJSON point.
func (c *CampgroundDB) Geometry() GeoPoint {
	return NewGeoPoint(c.Longitude, c.Latitude)
}

// PopupMarkup builds the map popup snippet for this campground.
// Derived on read, never persisted.
func (c *CampgroundDB) PopupMarkup() string {
	preview := c.Description
	if len(preview) > 30 {
		preview = preview[:30]
	}
	return fmt.Sprintf(
		`<strong><a href="/campgrounds/%s">%s</a></strong><p>%s...</p>`,
		c.CampgroundID, html.EscapeString(c.Title), html.EscapeString(preview),
	)
}

// ImageDB represents one entry of a campground's ordered image list
type ImageDB struct {
	ImageID      uuid.UUID `json:"id" db:"image_id"`
	CampgroundID uuid.UUID `json:"-" db:"campground_id"`
	URL          string    `json:"url" db:"url"`                 // Delivery URL at the image store
	StorageKey   string    `json:"storage_key" db:"storage_key"` // Key used to delete the file upstream
	Position     int       `json:"-" db:"position"`              // Order within the listing
}

// Thumbnail derives the 200px-wide variant URL from the stored URL.
// Derived on read, never persisted.
func (i ImageDB) Thumbnail() string {
	return strings.Replace(i.URL, "/upload", "/upload/w_200", 1)
}

// ImageUpload is the image store's answer to a file upload.
type ImageUpload struct {
	URL        string `json:"url"`
	StorageKey string `json:"storage_key"`
}

// Campground is the assembled directory record: the row plus its
// geometry, ordered images and review references.
type Campground struct {
	CampgroundDB
	Geometry  GeoPoint    `json:"geometry"`
	Images    []ImageDB   `json:"images"`
	ReviewIDs []uuid.UUID `json:"review_ids"`
}

// CampgroundDetail is the full detail-page record with resolved reviews.
type CampgroundDetail struct {
	Campground
	Reviews []ReviewDB `json:"reviews"`
}
