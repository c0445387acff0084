package repositories

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/jeebendu/glassy-property-hunter-97/internal/models"
)

type ListingRepository interface {
	Create(ctx context.Context, l *models.Listing) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Listing, error)
	ListByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*models.Listing, error)
}

type listingRepository struct {
	db DB
}

func NewListingRepository(db DB) ListingRepository {
	return &listingRepository{db: db}
}

func (r *listingRepository) Create(ctx context.Context, l *models.Listing) error {
	images, err := json.Marshal(l.Images)
	if err != nil {
		return err
	}
	q := `
        INSERT INTO listings (
            id, owner_id, title, description, type, status, price,
            bedrooms, bathrooms, square_feet, address, city, state, zip_code,
            amenities, images, created_at
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16, NOW())
    `
	_, err = r.db.Exec(ctx, q,
		l.ID, l.OwnerID, l.Title, l.Description, l.Type, l.Status, l.Price,
		l.Bedrooms, l.Bathrooms, l.SquareFeet, l.Address, l.City, l.State, l.ZipCode,
		l.Amenities, images,
	)
	return err
}

func (r *listingRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Listing, error) {
	row := r.db.QueryRow(ctx, baseSelectListing()+` WHERE id = $1`, id)
	l, err := scanListing(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return l, err
}

func (r *listingRepository) ListByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*models.Listing, error) {
	rows, err := r.db.Query(ctx, baseSelectListing()+` WHERE owner_id = $1 ORDER BY created_at`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func baseSelectListing() string {
	return `
        SELECT id, owner_id, title, description, type, status, price,
               bedrooms, bathrooms, square_feet, address, city, state, zip_code,
               amenities, images, created_at
        FROM listings
    `
}

func scanListing(row pgx.Row) (*models.Listing, error) {
	var l models.Listing
	var images []byte
	err := row.Scan(
		&l.ID, &l.OwnerID, &l.Title, &l.Description, &l.Type, &l.Status, &l.Price,
		&l.Bedrooms, &l.Bathrooms, &l.SquareFeet, &l.Address, &l.City, &l.State, &l.ZipCode,
		&l.Amenities, &images, &l.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(images) > 0 {
		if err := json.Unmarshal(images, &l.Images); err != nil {
			return nil, err
		}
	}
	return &l, nil
}
