package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/tasmimahana/cse470/internal/domain/user"
	"github.com/tasmimahana/cse470/internal/models"
	"github.com/tasmimahana/cse470/internal/query"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) CreateUser(ctx context.Context, u *models.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

// firstUserLockKey names the postgres advisory lock taken by CreateFirstUser.
const firstUserLockKey = 470_0001

// CreateFirstUser makes the very first account admin. On postgres the count
// and insert run under a transaction-scoped advisory lock, so concurrent
// registrations are serialized; sqlite has a single connection already.
func (r *UserGormRepository) CreateFirstUser(ctx context.Context, u *models.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if tx.Dialector.Name() == "postgres" {
			if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", firstUserLockKey).Error; err != nil {
				return err
			}
		}

		var count int64
		if err := tx.Model(&models.User{}).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			u.Role = models.RoleAdmin
		}
		return tx.Create(u).Error
	})
}

func (r *UserGormRepository) GetUser(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserGormRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserGormRepository) GetUserByVerificationToken(ctx context.Context, token string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).
		Where("verification_token = ? AND verification_token <> ''", token).
		First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserGormRepository) UpdateUser(ctx context.Context, u *models.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *UserGormRepository) DeleteUser(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.User{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *UserGormRepository) CountByRole(ctx context.Context, role models.Role) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("role = ?", role).
		Count(&n).Error
	return n, err
}

func (r *UserGormRepository) ListUserIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Order("created_at ASC").
		Pluck("id", &ids).Error
	return ids, err
}

// ListUsers applies spec and an optional row limit (0 means no limit).
func (r *UserGormRepository) ListUsers(ctx context.Context, spec query.FilterSpec, limit int) ([]models.User, error) {
	var users []models.User
	q := ApplyFilter(r.db.WithContext(ctx).Model(&models.User{}), "users", spec).
		Order("users.created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// --------------------------------------------------
// Refresh tokens
// --------------------------------------------------

func (r *UserGormRepository) FindToken(ctx context.Context, userID string) (*models.Token, error) {
	var t models.Token
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *UserGormRepository) CreateToken(ctx context.Context, t *models.Token) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *UserGormRepository) DeleteTokens(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Token{}).Error
}

var _ domain.Repository = (*UserGormRepository)(nil)

var _ domain.TokenRepository = (*UserGormRepository)(nil)
