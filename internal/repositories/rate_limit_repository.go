package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v4"
)

// Counter key namespace for verification-email sends. The repository owns the
// naming so every consumer of rate_limit_attempts builds keys the same way.
const EmailGlobalKey = "email:global"

// EmailIPKey scopes a counter to the requesting client address.
func EmailIPKey(ip string) string { return "email:ip:" + ip }

// EmailAddressKey scopes a counter to the destination mailbox.
func EmailAddressKey(addr string) string { return "email:address:" + addr }

// RateLimitRepository provides an atomic way to check and increment rate limit counters.
type RateLimitRepository interface {
	// IncrementAndCheck atomically increments a counter for the given key and
	// reports whether the request is still within the limit.
	IncrementAndCheck(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
	CleanupExpired(ctx context.Context) error
}

type rateLimitRepository struct {
	db DB
}

func NewRateLimitRepository(db DB) RateLimitRepository {
	return &rateLimitRepository{db: db}
}

// IncrementAndCheck bumps the counter in a single upsert. A counter whose
// window has lapsed restarts at one with a fresh expiry.
func (r *rateLimitRepository) IncrementAndCheck(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	q := `
        INSERT INTO rate_limit_attempts (key, attempt_count, expires_at)
        VALUES ($1, 1, NOW() + $2::interval)
        ON CONFLICT (key) DO UPDATE
        SET attempt_count = CASE
            WHEN rate_limit_attempts.expires_at < NOW() THEN 1
            ELSE rate_limit_attempts.attempt_count + 1
        END,
        expires_at = CASE
            WHEN rate_limit_attempts.expires_at < NOW() THEN NOW() + $2::interval
            ELSE rate_limit_attempts.expires_at
        END
        RETURNING attempt_count;
    `

	var count int
	if err := r.db.QueryRow(ctx, q, key, window).Scan(&count); err != nil && err != pgx.ErrNoRows {
		return false, err
	}
	return count <= limit, nil
}

func (r *rateLimitRepository) CleanupExpired(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `DELETE FROM rate_limit_attempts WHERE expires_at < NOW()`)
	return err
}
