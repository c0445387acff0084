package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/jackc/pgconn"

	"github.com/jeebendu/glassy-property-hunter-97/internal/repositories"
	"github.com/jeebendu/glassy-property-hunter-97/internal/utils"
)

const cleanupRetryDelay = 3 * time.Second

// CleanupService removes expired refresh tokens, OTP challenges and
// rate limit counters each night.
type CleanupService interface {
	CleanupDaily(ctx context.Context) error
}

type cleanupService struct {
	tokenRepo     repositories.TokenRepository
	challengeRepo repositories.OtpChallengeRepository
	rateLimitRepo repositories.RateLimitRepository
}

func NewCleanupService(
	tokenRepo repositories.TokenRepository,
	challengeRepo repositories.OtpChallengeRepository,
	rateLimitRepo repositories.RateLimitRepository,
) CleanupService {
	return &cleanupService{
		tokenRepo:     tokenRepo,
		challengeRepo: challengeRepo,
		rateLimitRepo: rateLimitRepo,
	}
}

// runWithRetry executes op(ctx) and, if it returns a transient network
// error (EOF, pgconn safe-to-retry, or the common closed-connection
// message), waits a moment then retries once.
func (s *cleanupService) runWithRetry(
	ctx context.Context,
	op func(context.Context) error,
) error {
	if err := op(ctx); err != nil {
		if errors.Is(err, io.EOF) || pgconn.SafeToRetry(err) ||
			strings.Contains(err.Error(), "connection was closed") {
			utils.Logger.WithError(err).Warn("cleanup hit transient DB error; retrying once")
			time.Sleep(cleanupRetryDelay)
			return op(ctx)
		}
		return err
	}
	return nil
}

func (s *cleanupService) CleanupDaily(ctx context.Context) error {
	logger := utils.Logger

	if err := s.runWithRetry(ctx, s.tokenRepo.CleanupExpiredRefreshTokens); err != nil {
		logger.WithError(err).Error("Failed to cleanup expired refresh_tokens")
		return err
	}

	if err := s.runWithRetry(ctx, s.challengeRepo.CleanupExpired); err != nil {
		logger.WithError(err).Error("Failed to cleanup expired otp_challenges")
		return err
	}

	if err := s.runWithRetry(ctx, s.rateLimitRepo.CleanupExpired); err != nil {
		logger.WithError(err).Error("Failed to cleanup expired rate_limit_attempts")
		return err
	}

	logger.Info("Daily cleanup (expired only) completed successfully.")
	return nil
}
