package booking

import (
	"github.com/tasmimahana/cse470/internal/domain/access"
	"github.com/tasmimahana/cse470/internal/models"
)

// ApplyStatus moves the booking to next on behalf of actor. It returns the
// previous status; callers compare it with next to detect a real change.
func ApplyStatus(b *models.Booking, actor access.Principal, next Status) (Status, error) {
	if err := access.Authorize(actor, b, "update this booking"); err != nil {
		return "", err
	}
	if !actor.IsAdmin() {
		if err := CanOwnerSet(next); err != nil {
			return "", err
		}
	}

	old := Status(b.Status)
	b.Status = string(next)
	return old, nil
}
