package models

import (
	"time"

	"github.com/google/uuid"
)

// Identity providers.
const (
	ProviderEmail  = "EMAIL"
	ProviderGoogle = "GOOGLE"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PhoneNumber  *string   `json:"phone,omitempty"`
	PasswordHash *string   `json:"-"`
	AvatarURL    string    `json:"avatar,omitempty"`
	Provider     string    `json:"provider,omitempty"`
	Roles        []string  `json:"roles,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
