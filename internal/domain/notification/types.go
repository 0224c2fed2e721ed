package notification

import (
	"strings"

	"github.com/tasmimahana/cse470/internal/httperr"
)

// Type is the category shown to the recipient.
type Type string

const (
	TypeBooking  Type = "booking"
	TypePet      Type = "pet"
	TypeDonation Type = "donation"
	TypeSystem   Type = "system"
	TypeAdmin    Type = "admin"
)

func ParseType(v string) (Type, error) {
	switch t := Type(strings.ToLower(strings.TrimSpace(v))); t {
	case TypeBooking, TypePet, TypeDonation, TypeSystem, TypeAdmin:
		return t, nil
	case "":
		return TypeSystem, nil
	default:
		return "", httperr.ErrBadRequest("invalid_notification_type", "Type must be one of: booking, pet, donation, system, admin")
	}
}

type ResourceType string

const (
	ResourcePet      ResourceType = "pet"
	ResourceBooking  ResourceType = "booking"
	ResourceDonation ResourceType = "donation"
	ResourceUser     ResourceType = "user"
	ResourceSystem   ResourceType = "system"
)

type Action string

const (
	ActionApproved      Action = "approved"
	ActionRejected      Action = "rejected"
	ActionPending       Action = "pending"
	ActionConfirmed     Action = "confirmed"
	ActionCancelled     Action = "cancelled"
	ActionCompleted     Action = "completed"
	ActionStatusUpdated Action = "status_updated"
	ActionRoleChanged   Action = "role_changed"
	ActionSystemUpdate  Action = "system_update"
	ActionBroadcast     Action = "broadcast"
)
