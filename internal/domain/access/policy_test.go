package access_test

import (
	"testing"

	"github.com/tasmimahana/cse470/internal/domain/access"
	"github.com/tasmimahana/cse470/internal/httperr"
	"github.com/tasmimahana/cse470/internal/models"
)

func TestCanMutate(t *testing.T) {
	pet := &models.Pet{AddedByID: "owner"}
	orphan := &models.HealthLog{}

	tests := []struct {
		name string
		p    access.Principal
		r    access.Owned
		want bool
	}{
		{"owner", access.Principal{UserID: "owner", Role: models.RoleUser}, pet, true},
		{"stranger", access.Principal{UserID: "other", Role: models.RoleUser}, pet, false},
		{"admin", access.Principal{UserID: "root", Role: models.RoleAdmin}, pet, true},
		{"unresolved owner", access.Principal{UserID: "", Role: models.RoleUser}, orphan, false},
		{"admin on unresolved owner", access.Principal{UserID: "root", Role: models.RoleAdmin}, orphan, true},
	}

	for _, tt := range tests {
		if got := access.CanMutate(tt.p, tt.r); got != tt.want {
			t.Fatalf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestAuthorize_ReturnsForbiddenKind(t *testing.T) {
	err := access.Authorize(access.Principal{UserID: "x", Role: models.RoleUser}, &models.Booking{UserID: "y"}, "update this booking")
	if httperr.KindOf(err) != httperr.KindUnauthorized {
		t.Fatalf("expected unauthorized kind, got %v", err)
	}
}
