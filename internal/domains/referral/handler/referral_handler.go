package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dadadu-backend/internal/domains/referral/service"
	"dadadu-backend/internal/shared/utils"
)

// =====================================================
// REFERRAL HANDLER
// =====================================================

type ReferralHandler struct {
	referralService service.ServiceInterface
}

func NewReferralHandler(referralService service.ServiceInterface) *ReferralHandler {
	return &ReferralHandler{
		referralService: referralService,
	}
}

// Invite logs the referral click (if any) and redirects to the right
// app store. Public marketing link: no auth, and never a JSON error —
// a malformed or missing User-Agent still gets the fallback redirect.
// GET /invite?referred_by=<id>
func (h *ReferralHandler) Invite(c *gin.Context) {
	userAgent := c.GetHeader("User-Agent")

	// Best-effort click logging; must never block the redirect.
	if referredBy := c.Query("referred_by"); referredBy != "" {
		h.referralService.LogClick(
			c.Request.Context(),
			referredBy,
			utils.ExtractClientIP(c),
			userAgent,
		)
	}

	c.Redirect(http.StatusFound, h.referralService.Destination(userAgent))
}
