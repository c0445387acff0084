package models

import (
	"time"

	"github.com/google/uuid"
)

// ListingImage is an uploaded photo held inline; no external object storage
// is involved in this deployment.
type ListingImage struct {
	Name     string `json:"name"`
	MimeType string `json:"mime_type"`
	Data     []byte `json:"data"`
}

// Listing is a user-submitted property that came through the post-property
// wizard, as opposed to the read-only seed catalog.
type Listing struct {
	ID          uuid.UUID      `json:"id"`
	OwnerID     uuid.UUID      `json:"owner_id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Type        string         `json:"type"`
	Status      string         `json:"status"`
	Price       int            `json:"price"`
	Bedrooms    int            `json:"bedrooms"`
	Bathrooms   float64        `json:"bathrooms"`
	SquareFeet  int            `json:"square_feet"`
	Address     string         `json:"address"`
	City        string         `json:"city"`
	State       string         `json:"state"`
	ZipCode     string         `json:"zip_code"`
	Amenities   []string       `json:"amenities"`
	Images      []ListingImage `json:"images"`
	CreatedAt   time.Time      `json:"created_at"`
}
