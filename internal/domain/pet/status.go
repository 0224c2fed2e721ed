package pet

import (
	"strings"

	"github.com/tasmimahana/cse470/internal/httperr"
)

type Status string

const (
	StatusAvailable Status = "available"
	StatusAdopted   Status = "adopted"
)

func ParseStatus(v string) (Status, error) {
	switch s := Status(strings.ToLower(strings.TrimSpace(v))); s {
	case StatusAvailable, StatusAdopted:
		return s, nil
	default:
		return "", httperr.ErrBadRequest("invalid_pet_status", "Status must be one of: available, adopted")
	}
}

func InitialStatus() Status {
	return StatusAvailable
}

// NormalizeGender accepts any casing of Male/Female; empty stays empty.
func NormalizeGender(v string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "":
		return "", nil
	case "male":
		return "Male", nil
	case "female":
		return "Female", nil
	default:
		return "", httperr.ErrBadRequest("invalid_gender", "Gender must be Male or Female")
	}
}
