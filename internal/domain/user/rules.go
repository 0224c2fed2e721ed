package user

import (
	"github.com/tasmimahana/cse470/internal/httperr"
	"github.com/tasmimahana/cse470/internal/models"
)

func ParseRole(v string) (models.Role, error) {
	r := models.Role(v)
	if !r.Valid() {
		return "", httperr.ErrBadRequest("invalid_role", "Role must be one of: user, admin")
	}
	return r, nil
}

// CanDelete refuses removal of any admin account.
func CanDelete(u *models.User) error {
	if u.Role == models.RoleAdmin {
		return httperr.ErrBadRequest("cannot_delete_admin", "Cannot delete admin users")
	}
	return nil
}

// CanDemote refuses to leave the system without an admin.
func CanDemote(u *models.User, next models.Role, adminCount int64) error {
	if u.Role == models.RoleAdmin && next != models.RoleAdmin && adminCount <= 1 {
		return httperr.ErrBadRequest("last_admin", "Cannot demote the last admin")
	}
	return nil
}
