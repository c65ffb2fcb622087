package gateway

import (
	"context"

	"dadadu-backend/internal/domains/payment/model"
)

// =====================================================
// GATEWAY INTERFACE
// =====================================================

// PaymentGateway creates payment authorizations with the processor.
type PaymentGateway interface {
	// CreatePaymentIntent creates one payment intent tagged with the
	// badge/buyer/seller identifiers and returns its client secret.
	CreatePaymentIntent(ctx context.Context, req model.CreateIntentRequest) (string, error)
}
