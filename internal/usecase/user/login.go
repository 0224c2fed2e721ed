package user

import (
	"context"

	"github.com/tasmimahana/cse470/internal/auth"
	"github.com/tasmimahana/cse470/internal/domain/access"
	domain "github.com/tasmimahana/cse470/internal/domain/user"
	"github.com/tasmimahana/cse470/internal/httperr"
	"github.com/tasmimahana/cse470/internal/models"
	"github.com/tasmimahana/cse470/internal/validators"
)

const refreshTokenBytes = 40

type LoginInput struct {
	Email     string
	Password  string
	IP        string
	UserAgent string
}

type LoginResult struct {
	User         *models.User
	Principal    access.Principal
	RefreshToken string
}

type Login struct {
	users  domain.Repository
	tokens domain.TokenRepository
}

func NewLogin(users domain.Repository, tokens domain.TokenRepository) *Login {
	return &Login{users: users, tokens: tokens}
}

// Execute checks credentials and returns the refresh token to attach. An
// existing token row is reused; a revoked one blocks the login.
func (uc *Login) Execute(ctx context.Context, in LoginInput) (*LoginResult, error) {
	email := validators.NormalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return nil, httperr.ErrBadRequest("credentials_required", "Please provide email and password")
	}

	u, err := uc.users.GetUserByEmail(ctx, email)
	if err != nil {
		if httperr.IsRecordNotFound(err) {
			return nil, invalidCredentials()
		}
		return nil, err
	}
	if !auth.CheckPassword(u.PasswordHash, in.Password) {
		return nil, invalidCredentials()
	}
	if !u.IsVerified {
		return nil, httperr.ErrUnauthenticated("email_not_verified", "Please verify your email")
	}

	res := &LoginResult{
		User:      u,
		Principal: access.PrincipalFromUser(u),
	}

	existing, err := uc.tokens.FindToken(ctx, u.ID)
	switch {
	case err == nil:
		if !existing.IsValid {
			return nil, invalidCredentials()
		}
		res.RefreshToken = existing.RefreshToken
		return res, nil
	case !httperr.IsRecordNotFound(err):
		return nil, err
	}

	refresh, err := auth.RandomToken(refreshTokenBytes)
	if err != nil {
		return nil, err
	}
	if err := uc.tokens.CreateToken(ctx, &models.Token{
		UserID:       u.ID,
		RefreshToken: refresh,
		IP:           in.IP,
		UserAgent:    in.UserAgent,
		IsValid:      true,
	}); err != nil {
		return nil, err
	}

	res.RefreshToken = refresh
	return res, nil
}

func invalidCredentials() error {
	return httperr.ErrUnauthenticated("invalid_credentials", "Invalid Credentials")
}

type Logout struct {
	tokens domain.TokenRepository
}

func NewLogout(tokens domain.TokenRepository) *Logout {
	return &Logout{tokens: tokens}
}

func (uc *Logout) Execute(ctx context.Context, actor access.Principal) error {
	return uc.tokens.DeleteTokens(ctx, actor.UserID)
}
