package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jeebendu/glassy-property-hunter-97/internal/dtos"
	"github.com/jeebendu/glassy-property-hunter-97/internal/middleware"
	"github.com/jeebendu/glassy-property-hunter-97/internal/services"
	"github.com/jeebendu/glassy-property-hunter-97/internal/utils"
)

type ListingController struct {
	listingService services.ListingService
}

func NewListingController(listingService services.ListingService) *ListingController {
	return &ListingController{listingService: listingService}
}

var listingValidate = validator.New()

// CreateListing stores a wizard submission for the authenticated user.
func (c *ListingController) CreateListing(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondErrorWithCode(
			w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Not authenticated", nil,
		)
		return
	}

	var req dtos.CreateListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid payload", nil, err,
		)
		return
	}
	if err := listingValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "Invalid listing payload", nil, err,
		)
		return
	}

	listing, err := c.listingService.Create(r.Context(), ownerID, &req)
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to create listing", nil, err,
		)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dtos.CreateListingResponse{Listing: *listing})
}

// ListMyListings returns the authenticated user's submissions.
func (c *ListingController) ListMyListings(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondErrorWithCode(
			w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Not authenticated", nil,
		)
		return
	}

	listings, err := c.listingService.ListByOwner(r.Context(), ownerID)
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to fetch listings", nil, err,
		)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.ListListingsResponse{Listings: listings})
}
