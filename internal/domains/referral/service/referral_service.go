package service

import (
	"context"
	"regexp"
	"time"

	"dadadu-backend/internal/config"
	"dadadu-backend/internal/domains/referral/model"
	"dadadu-backend/internal/domains/referral/repository"
	"dadadu-backend/pkg/logger"
)

var (
	androidPattern = regexp.MustCompile(`(?i)android`)
	iosPattern     = regexp.MustCompile(`iPad|iPhone|iPod`)
)

// ServiceInterface is the referral domain's business logic surface.
type ServiceInterface interface {
	// LogClick records the click attribution. Best effort: failures
	// are logged and absorbed so the redirect is never blocked.
	LogClick(ctx context.Context, referralID, ipAddress, userAgent string)

	// Destination picks the redirect target from the User-Agent.
	Destination(userAgent string) string
}

// =====================================================
// SERVICE IMPLEMENTATION
// =====================================================

type referralService struct {
	clickRepo repository.ClickRepository
	urls      config.ReferralConfig
}

func NewReferralService(clickRepo repository.ClickRepository, urls config.ReferralConfig) ServiceInterface {
	return &referralService{
		clickRepo: clickRepo,
		urls:      urls,
	}
}

func (s *referralService) LogClick(ctx context.Context, referralID, ipAddress, userAgent string) {
	click := &model.ReferralClick{
		ReferralID: referralID,
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		CreatedAt:  time.Now(),
	}

	if err := s.clickRepo.InsertClick(ctx, click); err != nil {
		// Attribution is nice to have; the redirect is the product.
		logger.Error("Error logging referral click", err)
	}
}

// Destination maps the User-Agent onto an app store. The iOS match is
// intentionally case-sensitive (iPad/iPhone/iPod as the devices spell
// themselves); everything unrecognized lands on the marketing page.
func (s *referralService) Destination(userAgent string) string {
	switch {
	case androidPattern.MatchString(userAgent):
		return s.urls.PlayStoreURL
	case iosPattern.MatchString(userAgent):
		return s.urls.AppStoreURL
	default:
		return s.urls.FallbackURL
	}
}
