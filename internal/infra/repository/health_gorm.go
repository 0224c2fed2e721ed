package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/tasmimahana/cse470/internal/domain/health"
	"github.com/tasmimahana/cse470/internal/models"
)

type HealthLogGormRepository struct {
	db *gorm.DB
}

func NewHealthLogGormRepository(db *gorm.DB) *HealthLogGormRepository {
	return &HealthLogGormRepository{db: db}
}

func (r *HealthLogGormRepository) ListByPet(ctx context.Context, petID string) ([]models.HealthLog, error) {
	var logs []models.HealthLog
	if err := r.db.WithContext(ctx).
		Where("pet_id = ?", petID).
		Order("date DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// Get loads the log with its pet so ownership can be checked.
func (r *HealthLogGormRepository) Get(ctx context.Context, id string) (*models.HealthLog, error) {
	var h models.HealthLog
	if err := r.db.WithContext(ctx).
		Preload("Pet").
		Where("id = ?", id).
		First(&h).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *HealthLogGormRepository) Create(ctx context.Context, h *models.HealthLog) error {
	return r.db.WithContext(ctx).Omit("Pet").Create(h).Error
}

func (r *HealthLogGormRepository) Update(ctx context.Context, h *models.HealthLog) error {
	return r.db.WithContext(ctx).Omit("Pet").Save(h).Error
}

func (r *HealthLogGormRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.HealthLog{}).Error
}

func (r *HealthLogGormRepository) GetPet(ctx context.Context, id string) (*models.Pet, error) {
	var p models.Pet
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

var _ domain.Repository = (*HealthLogGormRepository)(nil)
