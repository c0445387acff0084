package models

import (
	"time"

	"github.com/google/uuid"
)

// OtpChallenge is the server-side record behind a pending one-time-password
// login. Its ID doubles as the opaque authToken handed back by sendOtp, which
// the client must echo on verification. At most one live challenge exists per
// email; a new sendOtp replaces the previous one.
type OtpChallenge struct {
	ID        uuid.UUID
	Email     string
	Code      string
	ExpiresAt time.Time
	Attempts  int
	CreatedAt time.Time
}

func (c *OtpChallenge) IsExpired() bool {
	return time.Now().After(c.ExpiresAt)
}
