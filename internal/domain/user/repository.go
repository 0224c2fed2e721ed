package user

import (
	"context"

	"github.com/tasmimahana/cse470/internal/models"
)

type Repository interface {
	CreateUser(ctx context.Context, u *models.User) error
	// CreateFirstUser assigns the admin role when the store holds no users.
	CreateFirstUser(ctx context.Context, u *models.User) error
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByVerificationToken(ctx context.Context, token string) (*models.User, error)
	UpdateUser(ctx context.Context, u *models.User) error
	DeleteUser(ctx context.Context, id string) error
	CountByRole(ctx context.Context, role models.Role) (int64, error)
	ListUserIDs(ctx context.Context) ([]string, error)
}

// TokenRepository stores refresh credentials, one per user.
type TokenRepository interface {
	FindToken(ctx context.Context, userID string) (*models.Token, error)
	CreateToken(ctx context.Context, t *models.Token) error
	DeleteTokens(ctx context.Context, userID string) error
}
