package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ========================================
// PAYMENT DTOs
// ========================================

// CreateIntentRequest authorizes a virtual-good (badge) purchase.
// Amount is in the currency's minor units (cents).
type CreateIntentRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	BadgeID  string `json:"badgeId"`
	BuyerID  string `json:"buyerId"`
	SellerID string `json:"sellerId"`
}

// Validate requires all five fields; a request missing any of them is
// rejected before any upstream call is made.
func (r CreateIntentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Amount,
			validation.Required.Error("amount is required"),
			validation.Min(int64(1)).Error("amount must be positive"),
		),
		validation.Field(&r.Currency,
			validation.Required.Error("currency is required"),
			validation.Length(3, 3).Error("currency must be a 3-letter code"),
		),
		validation.Field(&r.BadgeID, validation.Required.Error("badgeId is required")),
		validation.Field(&r.BuyerID, validation.Required.Error("buyerId is required")),
		validation.Field(&r.SellerID, validation.Required.Error("sellerId is required")),
	)
}

// CreateIntentResponse exposes only the client-side secret needed to
// complete the payment; no other intent fields leave the backend.
type CreateIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
