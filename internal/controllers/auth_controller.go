package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jeebendu/glassy-property-hunter-97/internal/config"
	"github.com/jeebendu/glassy-property-hunter-97/internal/dtos"
	"github.com/jeebendu/glassy-property-hunter-97/internal/services"
	"github.com/jeebendu/glassy-property-hunter-97/internal/utils"
)

type AuthController struct {
	authService services.AuthService
	cfg         *config.Config
}

func NewAuthController(authService services.AuthService, cfg *config.Config) *AuthController {
	return &AuthController{authService: authService, cfg: cfg}
}

var authValidate = validator.New()

// ---------------------------------------------------------------------
// SendOtp
// ---------------------------------------------------------------------

func (c *AuthController) SendOtp(w http.ResponseWriter, r *http.Request) {
	var req dtos.SendOtpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid payload", nil, err,
		)
		return
	}
	if err := authValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "Invalid email format", nil, err,
		)
		return
	}

	authToken, err := c.authService.SendOtp(r.Context(), req.Email, utils.ClientIP(r))
	if err != nil {
		respondAuthError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dtos.SendOtpResponse{AuthToken: authToken})
}

// ---------------------------------------------------------------------
// Login / Register
// ---------------------------------------------------------------------

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dtos.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid payload", nil, err,
		)
		return
	}
	if err := authValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "Invalid login payload", nil, err,
		)
		return
	}

	user, idToken, refreshToken, err := c.authService.Login(r.Context(), &req, utils.ClientIP(r))
	if err != nil {
		respondAuthError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.SessionResponse{
		User:         *user,
		IDToken:      idToken,
		RefreshToken: refreshToken,
	})
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req dtos.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid payload", nil, err,
		)
		return
	}
	if err := authValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "Invalid registration payload", nil, err,
		)
		return
	}

	user, idToken, refreshToken, err := c.authService.Register(r.Context(), &req, utils.ClientIP(r))
	if err != nil {
		respondAuthError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dtos.SessionResponse{
		User:         *user,
		IDToken:      idToken,
		RefreshToken: refreshToken,
	})
}

// PasswordLogin is the legacy email+password sign in for accounts created
// via Register.
func (c *AuthController) PasswordLogin(w http.ResponseWriter, r *http.Request) {
	var req dtos.PasswordLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid payload", nil, err,
		)
		return
	}
	if err := authValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "Invalid login payload", nil, err,
		)
		return
	}

	user, idToken, refreshToken, err := c.authService.PasswordLogin(r.Context(), &req, utils.ClientIP(r))
	if err != nil {
		respondAuthError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.SessionResponse{
		User:         *user,
		IDToken:      idToken,
		RefreshToken: refreshToken,
	})
}

// ---------------------------------------------------------------------
// GoogleLogin
// ---------------------------------------------------------------------

func (c *AuthController) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	var req dtos.GoogleLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid payload", nil, err,
		)
		return
	}
	if err := authValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "Missing credential", nil, err,
		)
		return
	}

	user, idToken, refreshToken, err := c.authService.GoogleLogin(r.Context(), req.Credential, utils.ClientIP(r))
	if err != nil {
		respondAuthError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.SessionResponse{
		User:         *user,
		IDToken:      idToken,
		RefreshToken: refreshToken,
	})
}

// ---------------------------------------------------------------------
// Refresh / Logout
// ---------------------------------------------------------------------

func (c *AuthController) Refresh(w http.ResponseWriter, r *http.Request) {
	var req dtos.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid payload", nil, err,
		)
		return
	}
	if err := authValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "Missing refresh token", nil, err,
		)
		return
	}

	idToken, refreshToken, err := c.authService.Refresh(r.Context(), req.RefreshToken, utils.ClientIP(r))
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Could not refresh session", nil, err,
		)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.RefreshResponse{
		IDToken:      idToken,
		RefreshToken: refreshToken,
	})
}

func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	var req dtos.LogoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid payload", nil, err,
		)
		return
	}

	if err := c.authService.Logout(r.Context(), req.RefreshToken); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusInternalServerError, utils.ErrCodeInternal, "Logout failed", nil, err,
		)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.LogoutResponse{Message: "Logged out"})
}

// respondAuthError maps service-layer sentinels onto HTTP responses.
func respondAuthError(w http.ResponseWriter, err error) {
	utils.HandleAppError(w, authAppError(err))
}

// authAppError wraps a service sentinel in an AppError carrying its status
// and public message. Unknown errors pass through and fall back to a 500.
func authAppError(err error) error {
	switch {
	case errors.Is(err, utils.ErrInvalidEmail):
		return &utils.AppError{
			StatusCode: http.StatusBadRequest,
			Code:       utils.ErrCodeValidation,
			Message:    "Invalid email address",
			Err:        err,
		}
	case errors.Is(err, utils.ErrRateLimitExceeded):
		return &utils.AppError{
			StatusCode: http.StatusTooManyRequests,
			Code:       utils.ErrCodeRateLimitExceeded,
			Message:    "Too many requests. Please try again later.",
			Err:        err,
		}
	case errors.Is(err, utils.ErrMissingChallenge):
		return &utils.AppError{
			StatusCode: http.StatusUnauthorized,
			Code:       utils.ErrCodeMissingChallenge,
			Message:    "No active verification challenge. Request a new code.",
			Err:        err,
		}
	case errors.Is(err, utils.ErrChallengeExpired):
		return &utils.AppError{
			StatusCode: http.StatusUnauthorized,
			Code:       utils.ErrCodeMissingChallenge,
			Message:    "Verification code expired. Request a new code.",
			Err:        err,
		}
	case errors.Is(err, utils.ErrInvalidCredentials):
		return &utils.AppError{
			StatusCode: http.StatusUnauthorized,
			Code:       utils.ErrCodeInvalidCredentials,
			Message:    "Invalid email or verification code",
			Err:        err,
		}
	case errors.Is(err, utils.ErrEmailExists):
		return &utils.AppError{
			StatusCode: http.StatusConflict,
			Code:       utils.ErrCodeConflict,
			Message:    "An account with this email already exists",
			Err:        err,
		}
	case errors.Is(err, utils.ErrExternalServiceFailure):
		return &utils.AppError{
			StatusCode: http.StatusBadGateway,
			Code:       utils.ErrCodeExternalServiceFailure,
			Message:    "Could not deliver verification code",
			Err:        err,
		}
	default:
		return err
	}
}
