package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateVideoRequest creates a video record and queues its caption
// for moderation. An empty caption is allowed; it short-circuits to
// "safe" without a model call.
type CreateVideoRequest struct {
	Caption string `json:"caption"`
}

func (r CreateVideoRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Caption,
			validation.Length(0, 2200).Error("caption must be at most 2200 characters"),
		),
	)
}
