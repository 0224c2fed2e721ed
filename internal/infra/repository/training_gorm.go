package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/tasmimahana/cse470/internal/models"
	"github.com/tasmimahana/cse470/internal/query"
)

type TrainingGormRepository struct {
	db *gorm.DB
}

func NewTrainingGormRepository(db *gorm.DB) *TrainingGormRepository {
	return &TrainingGormRepository{db: db}
}

func (r *TrainingGormRepository) List(ctx context.Context, spec query.FilterSpec) ([]models.TrainingResource, error) {
	var out []models.TrainingResource
	q := ApplyFilter(r.db.WithContext(ctx).Model(&models.TrainingResource{}), "training_resources", spec)
	if err := q.Order("training_resources.created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *TrainingGormRepository) Categories(ctx context.Context) ([]string, error) {
	var cats []string
	err := r.db.WithContext(ctx).
		Model(&models.TrainingResource{}).
		Where("category <> ''").
		Distinct().
		Order("category ASC").
		Pluck("category", &cats).Error
	return cats, err
}

func (r *TrainingGormRepository) Get(ctx context.Context, id string) (*models.TrainingResource, error) {
	var t models.TrainingResource
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TrainingGormRepository) Create(ctx context.Context, t *models.TrainingResource) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TrainingGormRepository) Update(ctx context.Context, t *models.TrainingResource) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *TrainingGormRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.TrainingResource{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
