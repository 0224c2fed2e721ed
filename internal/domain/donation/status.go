package donation

import (
	"strings"

	"github.com/tasmimahana/cse470/internal/httperr"
)

type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentSuccessful PaymentStatus = "successful"
	PaymentFailed     PaymentStatus = "failed"
)

func ParsePaymentStatus(v string) (PaymentStatus, error) {
	switch s := PaymentStatus(strings.ToLower(strings.TrimSpace(v))); s {
	case PaymentPending, PaymentSuccessful, PaymentFailed:
		return s, nil
	default:
		return "", httperr.ErrBadRequest("invalid_payment_status", "Payment status must be one of: pending, successful, failed")
	}
}

func InitialStatus() PaymentStatus {
	return PaymentPending
}
