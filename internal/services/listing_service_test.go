package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/jeebendu/glassy-property-hunter-97/internal/dtos"
	"github.com/jeebendu/glassy-property-hunter-97/internal/models"
)

type fakeListingRepo struct {
	listings  map[uuid.UUID]*models.Listing
	createErr error
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{listings: map[uuid.UUID]*models.Listing{}}
}

func (r *fakeListingRepo) Create(_ context.Context, l *models.Listing) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.listings[l.ID] = l
	return nil
}

func (r *fakeListingRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Listing, error) {
	return r.listings[id], nil
}

func (r *fakeListingRepo) ListByOwnerID(_ context.Context, ownerID uuid.UUID) ([]*models.Listing, error) {
	var out []*models.Listing
	for _, l := range r.listings {
		if l.OwnerID == ownerID {
			out = append(out, l)
		}
	}
	return out, nil
}

func validListingRequest() *dtos.CreateListingRequest {
	return &dtos.CreateListingRequest{
		Title:       "Sunny two bedroom",
		Description: "Bright apartment close to the park.",
		Type:        "apartment",
		Status:      "for-sale",
		Price:       425000,
		Bedrooms:    2,
		Bathrooms:   1.5,
		SquareFeet:  880,
		Address:     "12 Laurel Ave",
		City:        "Portland",
		State:       "OR",
		ZipCode:     "97201",
		Amenities:   []string{"parking", "laundry"},
		Images: []dtos.ListingImageUpload{
			{Name: "front.jpg", MimeType: "image/jpeg", Data: []byte{0xff, 0xd8}},
		},
		TermsAccepted: true,
	}
}

func TestListingCreatePersistsForOwner(t *testing.T) {
	repo := newFakeListingRepo()
	svc := NewListingService(repo)
	ownerID := uuid.New()

	listing, err := svc.Create(context.Background(), ownerID, validListingRequest())
	require.NoError(t, err)
	require.Equal(t, ownerID, listing.OwnerID)
	require.Equal(t, "Sunny two bedroom", listing.Title)
	require.Len(t, listing.Images, 1)
	require.Equal(t, "image/jpeg", listing.Images[0].MimeType)

	stored, err := svc.GetByID(context.Background(), listing.ID)
	require.NoError(t, err)
	require.Equal(t, listing.ID, stored.ID)
}

func TestListingCreateSurfacesRepoError(t *testing.T) {
	repo := newFakeListingRepo()
	repo.createErr = errors.New("insert failed")
	svc := NewListingService(repo)

	_, err := svc.Create(context.Background(), uuid.New(), validListingRequest())
	require.Error(t, err)
}

func TestListingListByOwnerReturnsOnlyOwn(t *testing.T) {
	repo := newFakeListingRepo()
	svc := NewListingService(repo)
	alice := uuid.New()
	bob := uuid.New()

	_, err := svc.Create(context.Background(), alice, validListingRequest())
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), alice, validListingRequest())
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), bob, validListingRequest())
	require.NoError(t, err)

	mine, err := svc.ListByOwner(context.Background(), alice)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	for _, l := range mine {
		require.Equal(t, alice, l.OwnerID)
	}
}
