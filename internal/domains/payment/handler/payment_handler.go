package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dadadu-backend/internal/domains/payment/gateway"
	"dadadu-backend/internal/domains/payment/model"
	"dadadu-backend/internal/shared/response"
	"dadadu-backend/pkg/logger"
)

// =====================================================
// PAYMENT HANDLER
// =====================================================

type PaymentHandler struct {
	gateway gateway.PaymentGateway
}

func NewPaymentHandler(gw gateway.PaymentGateway) *PaymentHandler {
	return &PaymentHandler{
		gateway: gw,
	}
}

// CreatePaymentIntent creates a payment authorization for a badge
// purchase. Called directly from client apps, so the route carries
// permissive CORS and no auth.
// POST /api/v1/payments/intent
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	// Step 1: Bind request body
	var req model.CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Missing required fields")
		return
	}

	// Step 2: Validate — all five fields mandatory, checked before
	// any upstream call
	if err := req.Validate(); err != nil {
		response.BadRequest(c, "Missing required fields")
		return
	}

	// Step 3: Create the intent upstream
	clientSecret, err := h.gateway.CreatePaymentIntent(c.Request.Context(), req)
	if err != nil {
		logger.Error("Stripe error", err)
		response.InternalServerError(c, err.Error())
		return
	}

	// Step 4: Only the client secret leaves the backend
	response.JSON(c, http.StatusOK, model.CreateIntentResponse{
		ClientSecret: clientSecret,
	})
}
