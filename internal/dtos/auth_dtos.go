package dtos

import (
	"github.com/jeebendu/glassy-property-hunter-97/internal/models"
)

// ----------------------
// OTP Challenge
// ----------------------

type SendOtpRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Reason string `json:"reason" validate:"omitempty,oneof=LOGIN REGISTER"`
}

type SendOtpResponse struct {
	AuthToken string `json:"authToken"`
}

// ----------------------
// Login / Register
// ----------------------

type LoginRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"omitempty,e164"`
	Otp       string `json:"otp" validate:"required,len=6,numeric"`
	AuthToken string `json:"authToken" validate:"required,uuid4"`
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Phone    string `json:"phone" validate:"omitempty,e164"`
}

type PasswordLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type GoogleLoginRequest struct {
	Credential string `json:"credential" validate:"required"`
}

type SessionResponse struct {
	User         models.User `json:"user"`
	IDToken      string      `json:"id_token"`
	RefreshToken string      `json:"refresh_token,omitempty"`
}

// ----------------------
// Refresh / Logout
// ----------------------

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshResponse struct {
	IDToken      string `json:"id_token"`
	RefreshToken string `json:"refresh_token"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"omitempty"`
}

type LogoutResponse struct {
	Message string `json:"message"`
}
