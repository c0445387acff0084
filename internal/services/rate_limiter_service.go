package services

import (
	"context"

	"github.com/jeebendu/glassy-property-hunter-97/internal/config"
	"github.com/jeebendu/glassy-property-hunter-97/internal/repositories"
	"github.com/jeebendu/glassy-property-hunter-97/internal/utils"
)

// RateLimiterService provides a high-level interface for checking OTP send limits.
type RateLimiterService interface {
	CheckEmailRateLimits(ctx context.Context, ip, emailAddress string) error
}

type rateLimiterService struct {
	repo repositories.RateLimitRepository
	cfg  *config.Config
}

func NewRateLimiterService(repo repositories.RateLimitRepository, cfg *config.Config) RateLimiterService {
	return &rateLimiterService{repo: repo, cfg: cfg}
}

// CheckEmailRateLimits checks global, per-IP, and per-email limits for email requests.
func (s *rateLimiterService) CheckEmailRateLimits(ctx context.Context, ip, emailAddress string) error {
	// 1. Global limit
	allowed, err := s.repo.IncrementAndCheck(ctx, repositories.EmailGlobalKey, s.cfg.GlobalEmailLimitPerHour, s.cfg.RateLimitWindow)
	if err != nil {
		return err
	}
	if !allowed {
		utils.Logger.Warnf("Global email rate limit exceeded (key: %s)", repositories.EmailGlobalKey)
		return utils.ErrRateLimitExceeded
	}

	// 2. Per-IP limit
	ipKey := repositories.EmailIPKey(ip)
	allowed, err = s.repo.IncrementAndCheck(ctx, ipKey, s.cfg.EmailLimitPerIPPerHour, s.cfg.RateLimitWindow)
	if err != nil {
		return err
	}
	if !allowed {
		utils.Logger.Warnf("Per-IP email rate limit exceeded (key: %s)", ipKey)
		return utils.ErrRateLimitExceeded
	}

	// 3. Per-destination limit
	emailKey := repositories.EmailAddressKey(emailAddress)
	allowed, err = s.repo.IncrementAndCheck(ctx, emailKey, s.cfg.EmailLimitPerEmailPerHour, s.cfg.RateLimitWindow)
	if err != nil {
		return err
	}
	if !allowed {
		utils.Logger.Warnf("Per-email rate limit exceeded (key: %s)", emailKey)
		return utils.ErrRateLimitExceeded
	}

	return nil
}
