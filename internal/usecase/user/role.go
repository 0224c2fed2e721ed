package user

import (
	"context"

	"github.com/tasmimahana/cse470/internal/domain/access"
	"github.com/tasmimahana/cse470/internal/domain/notification"
	domain "github.com/tasmimahana/cse470/internal/domain/user"
	"github.com/tasmimahana/cse470/internal/httperr"
	"github.com/tasmimahana/cse470/internal/models"
	"github.com/tasmimahana/cse470/internal/notify"
)

func loadUser(ctx context.Context, repo domain.Repository, id string) (*models.User, error) {
	u, err := repo.GetUser(ctx, id)
	if err != nil {
		if httperr.IsRecordNotFound(err) {
			return nil, httperr.ErrNotFound("user_not_found", "No user with id: "+id)
		}
		return nil, err
	}
	return u, nil
}

type UpdateRole struct {
	repo   domain.Repository
	notify *notify.Dispatcher
}

func NewUpdateRole(repo domain.Repository, notifier *notify.Dispatcher) *UpdateRole {
	return &UpdateRole{repo: repo, notify: notifier}
}

func (uc *UpdateRole) Execute(
	ctx context.Context,
	actor access.Principal,
	id string,
	role string,
) (*models.User, error) {

	if err := access.RequireAdmin(actor); err != nil {
		return nil, err
	}

	next, err := domain.ParseRole(role)
	if err != nil {
		return nil, err
	}

	u, err := loadUser(ctx, uc.repo, id)
	if err != nil {
		return nil, err
	}
	if u.Role == next {
		return u, nil
	}

	if u.Role == models.RoleAdmin {
		admins, err := uc.repo.CountByRole(ctx, models.RoleAdmin)
		if err != nil {
			return nil, err
		}
		if err := domain.CanDemote(u, next, admins); err != nil {
			return nil, err
		}
	}

	u.Role = next
	if err := uc.repo.UpdateUser(ctx, u); err != nil {
		return nil, err
	}

	uc.notify.Dispatch(ctx, notify.Event{
		UserID:     u.ID,
		Resource:   notification.ResourceUser,
		Action:     notification.ActionRoleChanged,
		ResourceID: u.ID,
		Actor:      &actor,
		Args:       map[string]string{"role": string(next)},
	})

	return u, nil
}

type DeleteUser struct {
	repo domain.Repository
}

func NewDeleteUser(repo domain.Repository) *DeleteUser {
	return &DeleteUser{repo: repo}
}

// Execute removes a non-admin account. Records owned by the user are left
// in place.
func (uc *DeleteUser) Execute(ctx context.Context, actor access.Principal, id string) error {
	if err := access.RequireAdmin(actor); err != nil {
		return err
	}

	u, err := loadUser(ctx, uc.repo, id)
	if err != nil {
		return err
	}
	if err := domain.CanDelete(u); err != nil {
		return err
	}

	return uc.repo.DeleteUser(ctx, u.ID)
}
