package gateway

import (
	"context"

	"dadadu-backend/internal/domains/payment/model"
)

type unconfigured struct {
	err error
}

// Unconfigured returns a PaymentGateway whose calls all fail with the
// given configuration error. Missing credentials are a server fault
// surfaced per request, not a reason to refuse to boot.
func Unconfigured(err error) PaymentGateway {
	return unconfigured{err: err}
}

func (u unconfigured) CreatePaymentIntent(ctx context.Context, req model.CreateIntentRequest) (string, error) {
	return "", u.err
}
