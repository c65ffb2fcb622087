package stripe

import (
	"context"
	"errors"
	"fmt"

	stripelib "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"

	"dadadu-backend/internal/domains/payment/gateway"
	"dadadu-backend/internal/domains/payment/model"
)

// =====================================================
// STRIPE CLIENT IMPLEMENTATION
// =====================================================

type Client struct {
	api *client.API
}

// NewClient creates a Stripe-backed payment gateway.
func NewClient(secretKey string) (gateway.PaymentGateway, error) {
	if secretKey == "" {
		return nil, fmt.Errorf("STRIPE_SECRET_KEY is not set")
	}

	api := &client.API{}
	api.Init(secretKey, nil)

	return &Client{api: api}, nil
}

// CreatePaymentIntent creates the intent with the badge, buyer and
// seller identifiers
// folded into metadata. The intent is never read back by this system.
func (c *Client) CreatePaymentIntent(ctx context.Context, req model.CreateIntentRequest) (string, error) {
	params := &stripelib.PaymentIntentParams{
		Amount:   stripelib.Int64(req.Amount),
		Currency: stripelib.String(req.Currency),
	}
	params.Context = ctx
	params.AddMetadata("badge_id", req.BadgeID)
	params.AddMetadata("buyer_id", req.BuyerID)
	params.AddMetadata("seller_id", req.SellerID)

	intent, err := c.api.PaymentIntents.New(params)
	if err != nil {
		// Surface Stripe's own message, not the wrapped error dump.
		var stripeErr *stripelib.Error
		if errors.As(err, &stripeErr) {
			return "", fmt.Errorf("%s", stripeErr.Msg)
		}
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}

	return intent.ClientSecret, nil
}
