package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/tasmimahana/cse470/internal/domain/notification"
	"github.com/tasmimahana/cse470/internal/models"
	"github.com/tasmimahana/cse470/internal/query"
)

type NotificationGormRepository struct {
	db *gorm.DB
}

func NewNotificationGormRepository(db *gorm.DB) *NotificationGormRepository {
	return &NotificationGormRepository{db: db}
}

func (r *NotificationGormRepository) CreateNotification(ctx context.Context, n *models.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

// ListForUser returns the user's notifications, newest first.
func (r *NotificationGormRepository) ListForUser(ctx context.Context, userID string, spec query.FilterSpec) ([]models.Notification, error) {
	var out []models.Notification
	q := ApplyFilter(r.db.WithContext(ctx).Model(&models.Notification{}), "notifications", spec)
	if err := q.
		Where("notifications.user_id = ?", userID).
		Order("notifications.created_at DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// GetForUser only finds notifications addressed to userID.
func (r *NotificationGormRepository) GetForUser(ctx context.Context, id, userID string) (*models.Notification, error) {
	var n models.Notification
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&n).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *NotificationGormRepository) MarkRead(ctx context.Context, id, userID string) (*models.Notification, error) {
	n, err := r.GetForUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).
		Model(n).
		Update("read", true).Error; err != nil {
		return nil, err
	}
	n.Read = true
	return n, nil
}

func (r *NotificationGormRepository) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true)
	return res.RowsAffected, res.Error
}

func (r *NotificationGormRepository) CountUnread(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Count(&n).Error
	return n, err
}

func (r *NotificationGormRepository) DeleteForUser(ctx context.Context, id, userID string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Notification{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

var _ domain.Repository = (*NotificationGormRepository)(nil)
