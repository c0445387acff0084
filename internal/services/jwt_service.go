package services

import (
	"context"
	"crypto/rsa"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/jeebendu/glassy-property-hunter-97/internal/config"
	"github.com/jeebendu/glassy-property-hunter-97/internal/models"
	"github.com/jeebendu/glassy-property-hunter-97/internal/repositories"
	"github.com/jeebendu/glassy-property-hunter-97/internal/utils"
)

const TokenIssuer = "GlassyPropertyHunter"

const refreshTokenLength = 64

// ---------------------------------------------------------------------
// JWTService interface
// ---------------------------------------------------------------------

type JWTService interface {
	GenerateIDToken(ctx context.Context, subjectID uuid.UUID, clientIP string, tokenExpiry time.Duration) (string, error)

	GenerateRefreshToken(ctx context.Context, subjectID uuid.UUID, clientIP string, refreshExpiry time.Duration) (*models.RefreshToken, error)

	// RefreshToken rotates a valid refresh token, returning a new ID token
	// and a new raw refresh token.
	RefreshToken(ctx context.Context, refreshTokenString, clientIP string, tokenExpiry, refreshExpiry time.Duration) (string, string, error)

	// ValidateIDToken checks the RS256 signature and expiry, returning the
	// subject user ID on success.
	ValidateIDToken(tokenString string) (uuid.UUID, error)

	Logout(ctx context.Context, refreshTokenString string) error
}

// ---------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------

type jwtService struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	tokenRepo  repositories.TokenRepository
}

func NewJWTService(cfg *config.Config, tokenRepo repositories.TokenRepository) JWTService {
	return &jwtService{
		privateKey: cfg.RSAPrivateKey,
		publicKey:  cfg.RSAPublicKey,
		tokenRepo:  tokenRepo,
	}
}

func (j *jwtService) GenerateIDToken(
	ctx context.Context,
	subjectID uuid.UUID,
	clientIP string,
	tokenExpiry time.Duration,
) (string, error) {

	claims := jwt.MapClaims{
		"iss": TokenIssuer,
		"sub": subjectID.String(),
		"exp": time.Now().Add(tokenExpiry).Unix(),
		"iat": time.Now().Unix(),
		"jti": uuid.NewString(),
	}
	if clientIP != "" {
		claims["ip"] = clientIP
	}

	return j.signClaims(claims)
}

func (j *jwtService) GenerateRefreshToken(
	ctx context.Context,
	subjectID uuid.UUID,
	clientIP string,
	refreshExpiry time.Duration,
) (*models.RefreshToken, error) {

	if j.tokenRepo == nil {
		return nil, errors.New("jwtService has nil tokenRepo")
	}

	rt := &models.RefreshToken{
		ID:        uuid.New(),
		UserID:    subjectID,
		Token:     generateSecureToken(refreshTokenLength),
		ExpiresAt: time.Now().Add(refreshExpiry),
		CreatedAt: time.Now(),
		Revoked:   false,
		IPAddress: clientIP,
	}

	if err := j.tokenRepo.CreateRefreshToken(ctx, rt); err != nil {
		return nil, err
	}

	return rt, nil
}

func (j *jwtService) RefreshToken(
	ctx context.Context,
	refreshTokenString string,
	clientIP string,
	tokenExpiry time.Duration,
	refreshExpiry time.Duration,
) (string, string, error) {

	if j.tokenRepo == nil {
		return "", "", errors.New("jwtService has nil tokenRepo")
	}

	oldToken, err := j.tokenRepo.GetRefreshToken(ctx, refreshTokenString)
	if err != nil || oldToken == nil || oldToken.Revoked {
		utils.Logger.WithError(err).Error("invalid or missing refresh token in jwtService.RefreshToken")
		return "", "", errors.New("invalid refresh token")
	}

	if oldToken.IsExpired() {
		utils.Logger.Error("refresh token expired in jwtService.RefreshToken")
		return "", "", errors.New("refresh token expired")
	}

	if oldToken.IPAddress != "" && oldToken.IPAddress != clientIP {
		utils.Logger.Error("IP mismatch in jwtService.RefreshToken")
		return "", "", errors.New("ip mismatch")
	}

	if err := j.tokenRepo.RemoveRefreshToken(ctx, oldToken.ID); err != nil {
		utils.Logger.WithError(err).Error("failed to remove old refresh token in jwtService.RefreshToken")
		return "", "", errors.New("failed to remove old token")
	}

	newAccess, aErr := j.GenerateIDToken(ctx, oldToken.UserID, clientIP, tokenExpiry)
	if aErr != nil {
		return "", "", aErr
	}

	newRT, rErr := j.GenerateRefreshToken(ctx, oldToken.UserID, clientIP, refreshExpiry)
	if rErr != nil {
		return "", "", rErr
	}

	return newAccess, newRT.Token, nil
}

func (j *jwtService) ValidateIDToken(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return j.publicKey, nil
	}, jwt.WithIssuer(TokenIssuer), jwt.WithExpirationRequired())
	if err != nil {
		return uuid.Nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return uuid.Nil, errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(sub)
}

func (j *jwtService) Logout(ctx context.Context, refreshTokenString string) error {
	if j.tokenRepo == nil {
		return errors.New("jwtService has nil tokenRepo")
	}

	oldToken, err := j.tokenRepo.GetRefreshToken(ctx, refreshTokenString)
	if err != nil {
		utils.Logger.WithError(err).Error("logout fetch refresh token error in jwtService")
		return errors.New("logout server error")
	}
	if oldToken == nil {
		// already not found => no-op
		return nil
	}

	if err := j.tokenRepo.RemoveRefreshToken(ctx, oldToken.ID); err != nil {
		utils.Logger.WithError(err).Error("failed to remove token in jwtService.Logout")
		return errors.New("logout server error")
	}
	return nil
}

func (j *jwtService) signClaims(claims jwt.MapClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	return token.SignedString(j.privateKey)
}
