package dtos

import (
	"github.com/jeebendu/glassy-property-hunter-97/internal/models"
)

// ----------------------
// Requests
// ----------------------

type ListingImageUpload struct {
	Name     string `json:"name" validate:"required,min=1,max=255"`
	MimeType string `json:"mime_type" validate:"required,oneof=image/jpeg image/png image/webp"`
	Data     []byte `json:"data" validate:"required"`
}

type CreateListingRequest struct {
	Title          string               `json:"title" validate:"required,min=1,max=255"`
	Description    string               `json:"description" validate:"required,min=1,max=5000"`
	Type           string               `json:"type" validate:"required,oneof=house apartment condo townhouse"`
	Status         string               `json:"status" validate:"required,oneof=for-sale for-rent sold pending"`
	Price          int                  `json:"price" validate:"required,gt=0"`
	Bedrooms       int                  `json:"bedrooms" validate:"gte=0"`
	Bathrooms      float64              `json:"bathrooms" validate:"gte=0"`
	SquareFeet     int                  `json:"square_feet" validate:"gt=0"`
	Address        string               `json:"address" validate:"required,min=1,max=255"`
	City           string               `json:"city" validate:"required,min=1,max=100"`
	State          string               `json:"state" validate:"required,min=1,max=50"`
	ZipCode        string               `json:"zip_code" validate:"required,min=1,max=20"`
	Amenities      []string             `json:"amenities" validate:"dive,min=1,max=100"`
	Images         []ListingImageUpload `json:"images" validate:"required,min=1,dive"`
	TermsAccepted  bool                 `json:"terms_accepted" validate:"required,eq=true"`
}

// ----------------------
// Responses
// ----------------------

type CreateListingResponse struct {
	Listing models.Listing `json:"listing"`
}

type ListListingsResponse struct {
	Listings []*models.Listing `json:"listings"`
}
