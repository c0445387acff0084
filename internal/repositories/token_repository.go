package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/jeebendu/glassy-property-hunter-97/internal/models"
	"github.com/jeebendu/glassy-property-hunter-97/internal/utils"
)

// TokenRepository manages refresh tokens. Only hashes of raw tokens ever
// reach the database.
type TokenRepository interface {
	CreateRefreshToken(ctx context.Context, token *models.RefreshToken) error
	// GetRefreshToken fetches by raw token value; returns nil if not found.
	GetRefreshToken(ctx context.Context, rawToken string) (*models.RefreshToken, error)
	RemoveRefreshToken(ctx context.Context, id uuid.UUID) error
	RemoveAllRefreshTokensByUserID(ctx context.Context, userID uuid.UUID) error
	CleanupExpiredRefreshTokens(ctx context.Context) error
}

type tokenRepository struct {
	db DB
}

func NewTokenRepository(db DB) TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) CreateRefreshToken(ctx context.Context, token *models.RefreshToken) error {
	q := `
        INSERT INTO refresh_tokens (id, user_id, refresh_token, expires_at, created_at, revoked, ip_address)
        VALUES ($1, $2, $3, $4, NOW(), $5, $6)
    `
	_, err := r.db.Exec(ctx, q,
		token.ID,
		token.UserID,
		utils.HashToken(token.Token),
		token.ExpiresAt,
		token.Revoked,
		token.IPAddress,
	)
	return err
}

func (r *tokenRepository) GetRefreshToken(ctx context.Context, rawToken string) (*models.RefreshToken, error) {
	hashed := utils.HashToken(rawToken)
	q := `
        SELECT id, user_id, refresh_token, expires_at, created_at, revoked, ip_address
        FROM refresh_tokens
        WHERE refresh_token = $1
    `
	row := r.db.QueryRow(ctx, q, hashed)

	var rt models.RefreshToken
	err := row.Scan(
		&rt.ID,
		&rt.UserID,
		&rt.Token,
		&rt.ExpiresAt,
		&rt.CreatedAt,
		&rt.Revoked,
		&rt.IPAddress,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &rt, nil
}

func (r *tokenRepository) RemoveRefreshToken(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM refresh_tokens WHERE id = $1`, id)
	return err
}

func (r *tokenRepository) RemoveAllRefreshTokensByUserID(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM refresh_tokens WHERE user_id = $1`, userID)
	return err
}

func (r *tokenRepository) CleanupExpiredRefreshTokens(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `DELETE FROM refresh_tokens WHERE expires_at < NOW()`)
	return err
}
