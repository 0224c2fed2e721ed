package user

import (
	"context"
	"strings"

	"github.com/tasmimahana/cse470/internal/auth"
	"github.com/tasmimahana/cse470/internal/domain/access"
	domain "github.com/tasmimahana/cse470/internal/domain/user"
	"github.com/tasmimahana/cse470/internal/httperr"
	"github.com/tasmimahana/cse470/internal/models"
	"github.com/tasmimahana/cse470/internal/validators"
)

type UpdateProfile struct {
	repo domain.Repository
}

func NewUpdateProfile(repo domain.Repository) *UpdateProfile {
	return &UpdateProfile{repo: repo}
}

func (uc *UpdateProfile) Execute(
	ctx context.Context,
	actor access.Principal,
	name, email string,
) (*models.User, error) {

	name = strings.TrimSpace(name)
	email = validators.NormalizeEmail(email)
	if name == "" || email == "" {
		return nil, httperr.ErrBadRequest("invalid_profile", "Please provide name and email")
	}
	if !validators.IsEmailFormatValid(email) {
		return nil, httperr.ErrBadRequest("invalid_email", "Please provide a valid email")
	}

	if other, err := uc.repo.GetUserByEmail(ctx, email); err == nil && other.ID != actor.UserID {
		return nil, emailInUse()
	} else if err != nil && !httperr.IsRecordNotFound(err) {
		return nil, err
	}

	u, err := loadUser(ctx, uc.repo, actor.UserID)
	if err != nil {
		return nil, err
	}

	u.Name = name
	u.Email = email
	if err := uc.repo.UpdateUser(ctx, u); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, emailInUse()
		}
		return nil, err
	}
	return u, nil
}

func emailInUse() error {
	return httperr.ErrBadRequest("email_in_use", "Email already in use")
}

type ChangePassword struct {
	repo domain.Repository
}

func NewChangePassword(repo domain.Repository) *ChangePassword {
	return &ChangePassword{repo: repo}
}

func (uc *ChangePassword) Execute(
	ctx context.Context,
	actor access.Principal,
	oldPassword, newPassword string,
) error {

	if oldPassword == "" || newPassword == "" {
		return httperr.ErrBadRequest("password_required", "Please provide old and new password")
	}
	if len(newPassword) < 6 {
		return httperr.ErrBadRequest("weak_password", "Password must be at least 6 characters")
	}

	u, err := loadUser(ctx, uc.repo, actor.UserID)
	if err != nil {
		return err
	}
	if !auth.CheckPassword(u.PasswordHash, oldPassword) {
		return httperr.ErrUnauthenticated("invalid_credentials", "Invalid credentials")
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return uc.repo.UpdateUser(ctx, u)
}
