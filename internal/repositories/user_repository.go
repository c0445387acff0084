package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/jeebendu/glassy-property-hunter-97/internal/models"
)

type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	// GetByEmail returns nil without error when no user exists.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, u *models.User) error
}

type userRepository struct {
	db DB
}

func NewUserRepository(db DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *models.User) error {
	q := `
        INSERT INTO users (id, name, email, phone_number, password_hash, avatar_url, provider, roles, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
    `
	_, err := r.db.Exec(ctx, q,
		u.ID,
		u.Name,
		u.Email,
		u.PhoneNumber,
		u.PasswordHash,
		u.AvatarURL,
		u.Provider,
		u.Roles,
	)
	return err
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	row := r.db.QueryRow(ctx, baseSelectUser()+` WHERE id = $1`, id)
	return scanUser(row)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.db.QueryRow(ctx, baseSelectUser()+` WHERE email = $1`, email)
	u, err := scanUser(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return u, err
}

func (r *userRepository) Update(ctx context.Context, u *models.User) error {
	q := `
        UPDATE users SET
            name=$1, phone_number=$2, password_hash=$3, avatar_url=$4, provider=$5, roles=$6
        WHERE id=$7
    `
	_, err := r.db.Exec(ctx, q,
		u.Name,
		u.PhoneNumber,
		u.PasswordHash,
		u.AvatarURL,
		u.Provider,
		u.Roles,
		u.ID,
	)
	return err
}

func baseSelectUser() string {
	return `
        SELECT id, name, email, phone_number, password_hash, avatar_url, provider, roles, created_at
        FROM users
    `
}

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PhoneNumber,
		&u.PasswordHash,
		&u.AvatarURL,
		&u.Provider,
		&u.Roles,
		&u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
