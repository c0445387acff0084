package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jeebendu/glassy-property-hunter-97/internal/dtos"
	"github.com/jeebendu/glassy-property-hunter-97/internal/models"
	"github.com/jeebendu/glassy-property-hunter-97/internal/repositories"
)

// ListingService persists properties submitted through the post-property flow.
type ListingService interface {
	Create(ctx context.Context, ownerID uuid.UUID, req *dtos.CreateListingRequest) (*models.Listing, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Listing, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Listing, error)
}

type listingService struct {
	repo repositories.ListingRepository
}

func NewListingService(repo repositories.ListingRepository) ListingService {
	return &listingService{repo: repo}
}

func (s *listingService) Create(ctx context.Context, ownerID uuid.UUID, req *dtos.CreateListingRequest) (*models.Listing, error) {
	images := make([]models.ListingImage, 0, len(req.Images))
	for _, img := range req.Images {
		images = append(images, models.ListingImage{
			Name:     img.Name,
			MimeType: img.MimeType,
			Data:     img.Data,
		})
	}

	listing := &models.Listing{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Status:      req.Status,
		Price:       req.Price,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		SquareFeet:  req.SquareFeet,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		ZipCode:     req.ZipCode,
		Amenities:   req.Amenities,
		Images:      images,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Create(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

func (s *listingService) GetByID(ctx context.Context, id uuid.UUID) (*models.Listing, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *listingService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Listing, error) {
	return s.repo.ListByOwnerID(ctx, ownerID)
}
