package access

import "github.com/tasmimahana/cse470/internal/httperr"

// Owned is any record with a single owning user.
type Owned interface {
	OwnerID() string
}

// CanMutate is the ownership-or-admin rule shared by every owned resource.
func CanMutate(p Principal, r Owned) bool {
	if p.IsAdmin() {
		return true
	}
	owner := r.OwnerID()
	return owner != "" && owner == p.UserID
}

// Authorize returns a 403 error naming the action when CanMutate fails.
func Authorize(p Principal, r Owned, action string) error {
	if CanMutate(p, r) {
		return nil
	}
	return httperr.ErrUnauthorized("forbidden", "Not authorized to "+action)
}

func RequireAdmin(p Principal) error {
	if p.IsAdmin() {
		return nil
	}
	return httperr.ErrUnauthorized("forbidden", "Admin access required")
}
