package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/tasmimahana/cse470/internal/domain/donation"
	"github.com/tasmimahana/cse470/internal/models"
	"github.com/tasmimahana/cse470/internal/query"
)

type DonationGormRepository struct {
	db *gorm.DB
}

func NewDonationGormRepository(db *gorm.DB) *DonationGormRepository {
	return &DonationGormRepository{db: db}
}

func (r *DonationGormRepository) CreateDonation(ctx context.Context, d *models.Donation) error {
	return r.db.WithContext(ctx).Omit("User").Create(d).Error
}

func (r *DonationGormRepository) GetDonation(ctx context.Context, id string) (*models.Donation, error) {
	var d models.Donation
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ?", id).
		First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DonationGormRepository) UpdateDonation(ctx context.Context, d *models.Donation) error {
	return r.db.WithContext(ctx).Omit("User").Save(d).Error
}

func (r *DonationGormRepository) ListDonations(ctx context.Context, spec query.FilterSpec) ([]models.Donation, error) {
	var donations []models.Donation
	q := ApplyFilter(r.db.WithContext(ctx).Model(&models.Donation{}), "donations", spec)
	if err := q.
		Preload("User").
		Order("donations.created_at DESC").
		Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *DonationGormRepository) ListDonationsByUser(ctx context.Context, userID string) ([]models.Donation, error) {
	var donations []models.Donation
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

var _ domain.Repository = (*DonationGormRepository)(nil)
