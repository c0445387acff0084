package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/jeebendu/glassy-property-hunter-97/internal/models"
)

type OtpChallengeRepository interface {
	Create(ctx context.Context, challenge *models.OtpChallenge) error
	// GetByID returns nil without error when no challenge exists.
	GetByID(ctx context.Context, id uuid.UUID) (*models.OtpChallenge, error)
	// GetByEmail returns the newest challenge for the email, nil when absent.
	GetByEmail(ctx context.Context, email string) (*models.OtpChallenge, error)
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementAttempts(ctx context.Context, id uuid.UUID) error
	CleanupExpired(ctx context.Context) error
}

type otpChallengeRepository struct {
	db DB
}

func NewOtpChallengeRepository(db DB) OtpChallengeRepository {
	return &otpChallengeRepository{db: db}
}

func (r *otpChallengeRepository) Create(ctx context.Context, c *models.OtpChallenge) error {
	q := `
        INSERT INTO otp_challenges (id, email, verification_code, expires_at, attempts, created_at)
        VALUES ($1, $2, $3, $4, 0, NOW())
    `
	_, err := r.db.Exec(ctx, q, c.ID, c.Email, c.Code, c.ExpiresAt)
	return err
}

func (r *otpChallengeRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.OtpChallenge, error) {
	row := r.db.QueryRow(ctx, baseSelectChallenge()+` WHERE id = $1`, id)
	return scanChallenge(row)
}

func (r *otpChallengeRepository) GetByEmail(ctx context.Context, email string) (*models.OtpChallenge, error) {
	q := baseSelectChallenge() + `
        WHERE email = $1
        ORDER BY created_at DESC
        LIMIT 1
    `
	row := r.db.QueryRow(ctx, q, email)
	return scanChallenge(row)
}

func (r *otpChallengeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM otp_challenges WHERE id = $1`, id)
	return err
}

func (r *otpChallengeRepository) IncrementAttempts(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `UPDATE otp_challenges SET attempts = attempts + 1 WHERE id = $1`, id)
	return err
}

func (r *otpChallengeRepository) CleanupExpired(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `DELETE FROM otp_challenges WHERE expires_at < NOW()`)
	return err
}

func baseSelectChallenge() string {
	return `
        SELECT id, email, verification_code, expires_at, attempts, created_at
        FROM otp_challenges
    `
}

func scanChallenge(row pgx.Row) (*models.OtpChallenge, error) {
	var c models.OtpChallenge
	var expiresAt, createdAt time.Time
	err := row.Scan(&c.ID, &c.Email, &c.Code, &expiresAt, &c.Attempts, &createdAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	c.ExpiresAt = expiresAt
	c.CreatedAt = createdAt
	return &c, nil
}
