package booking

import (
	"strings"

	"github.com/tasmimahana/cse470/internal/httperr"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func ParseStatus(v string) (Status, error) {
	switch s := Status(strings.ToLower(strings.TrimSpace(v))); s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return s, nil
	default:
		return "", httperr.ErrBadRequest("invalid_booking_status", "Status must be one of: pending, confirmed, cancelled, completed")
	}
}

// CanOwnerSet: owners may only withdraw their own booking.
func CanOwnerSet(next Status) error {
	if next != StatusCancelled {
		return httperr.ErrUnauthorized("forbidden", "Only admins can change a booking to "+string(next))
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}

type ServiceType string

const (
	ServiceVeterinary ServiceType = "veterinary"
	ServiceDaycare    ServiceType = "daycare"
	ServiceGrooming   ServiceType = "grooming"
	ServiceTraining   ServiceType = "training"
)

func ParseServiceType(v string) (ServiceType, error) {
	switch s := ServiceType(strings.ToLower(strings.TrimSpace(v))); s {
	case ServiceVeterinary, ServiceDaycare, ServiceGrooming, ServiceTraining:
		return s, nil
	default:
		return "", httperr.ErrBadRequest("invalid_service_type", "Service type must be one of: veterinary, daycare, grooming, training")
	}
}
