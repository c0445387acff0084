package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestIDTokenRoundTrip(t *testing.T) {
	cfg := newTestConfig(t)
	svc := NewJWTService(cfg, newFakeTokenRepo())
	userID := uuid.New()

	token, err := svc.GenerateIDToken(context.Background(), userID, "1.2.3.4", time.Minute)
	require.NoError(t, err)

	got, err := svc.ValidateIDToken(token)
	require.NoError(t, err)
	require.Equal(t, userID, got)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	cfg := newTestConfig(t)
	svc := NewJWTService(cfg, newFakeTokenRepo())

	token, err := svc.GenerateIDToken(context.Background(), uuid.New(), "", -time.Minute)
	require.NoError(t, err)

	_, err = svc.ValidateIDToken(token)
	require.Error(t, err)
}

func TestValidateRejectsForeignSignature(t *testing.T) {
	cfgA := newTestConfig(t)
	cfgB := newTestConfig(t)
	signer := NewJWTService(cfgA, newFakeTokenRepo())
	verifier := NewJWTService(cfgB, newFakeTokenRepo())

	token, err := signer.GenerateIDToken(context.Background(), uuid.New(), "", time.Minute)
	require.NoError(t, err)

	_, err = verifier.ValidateIDToken(token)
	require.Error(t, err)
}

func TestRefreshTokenRotation(t *testing.T) {
	cfg := newTestConfig(t)
	repo := newFakeTokenRepo()
	svc := NewJWTService(cfg, repo)
	userID := uuid.New()

	rt, err := svc.GenerateRefreshToken(context.Background(), userID, "1.2.3.4", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, rt.Token)

	idToken, newRaw, err := svc.RefreshToken(context.Background(), rt.Token, "1.2.3.4", time.Minute, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, idToken)
	require.NotEqual(t, rt.Token, newRaw)

	// Old token is single use.
	_, _, err = svc.RefreshToken(context.Background(), rt.Token, "1.2.3.4", time.Minute, time.Hour)
	require.Error(t, err)
}

func TestRefreshTokenIPMismatch(t *testing.T) {
	cfg := newTestConfig(t)
	svc := NewJWTService(cfg, newFakeTokenRepo())

	rt, err := svc.GenerateRefreshToken(context.Background(), uuid.New(), "1.2.3.4", time.Hour)
	require.NoError(t, err)

	_, _, err = svc.RefreshToken(context.Background(), rt.Token, "9.9.9.9", time.Minute, time.Hour)
	require.Error(t, err)
}

func TestJWTLogoutIdempotent(t *testing.T) {
	cfg := newTestConfig(t)
	svc := NewJWTService(cfg, newFakeTokenRepo())

	rt, err := svc.GenerateRefreshToken(context.Background(), uuid.New(), "", time.Hour)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), rt.Token))
	require.NoError(t, svc.Logout(context.Background(), rt.Token))
	require.NoError(t, svc.Logout(context.Background(), "never-issued"))
}
