package access

import "github.com/tasmimahana/cse470/internal/models"

// Principal is the authenticated caller attached to a request.
type Principal struct {
	UserID string      `json:"userId"`
	Name   string      `json:"name"`
	Email  string      `json:"email"`
	Role   models.Role `json:"role"`
}

func PrincipalFromUser(u *models.User) Principal {
	return Principal{
		UserID: u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role,
	}
}

func (p Principal) IsAdmin() bool {
	return p.Role == models.RoleAdmin
}

func (p Principal) HasRole(roles ...models.Role) bool {
	for _, r := range roles {
		if p.Role == r {
			return true
		}
	}
	return false
}
