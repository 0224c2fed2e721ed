package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/tasmimahana/cse470/internal/domain/pet"
	"github.com/tasmimahana/cse470/internal/models"
	"github.com/tasmimahana/cse470/internal/query"
)

type PetGormRepository struct {
	db *gorm.DB
}

func NewPetGormRepository(db *gorm.DB) *PetGormRepository {
	return &PetGormRepository{db: db}
}

func (r *PetGormRepository) CreatePet(ctx context.Context, p *models.Pet) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PetGormRepository) GetPet(ctx context.Context, id string) (*models.Pet, error) {
	var p models.Pet
	if err := r.db.WithContext(ctx).
		Preload("AddedBy").
		Where("id = ?", id).
		First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PetGormRepository) ListPetsByIDs(ctx context.Context, ids []string) ([]models.Pet, error) {
	ids = validIDs(ids)
	if len(ids) == 0 {
		return nil, nil
	}

	var pets []models.Pet
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&pets).Error; err != nil {
		return nil, err
	}
	return pets, nil
}

// ListPets returns pets matching spec, newest first, with owners loaded.
func (r *PetGormRepository) ListPets(ctx context.Context, spec query.FilterSpec) ([]models.Pet, error) {
	var pets []models.Pet
	q := ApplyFilter(r.db.WithContext(ctx).Model(&models.Pet{}), "pets", spec)
	if err := q.
		Preload("AddedBy").
		Order("pets.created_at DESC").
		Find(&pets).Error; err != nil {
		return nil, err
	}
	return pets, nil
}

func (r *PetGormRepository) ListPetsByOwner(ctx context.Context, ownerID string) ([]models.Pet, error) {
	var pets []models.Pet
	if err := r.db.WithContext(ctx).
		Where("added_by_id = ?", ownerID).
		Order("created_at DESC").
		Find(&pets).Error; err != nil {
		return nil, err
	}
	return pets, nil
}

func (r *PetGormRepository) ListPendingPets(ctx context.Context) ([]models.Pet, error) {
	var pets []models.Pet
	if err := r.db.WithContext(ctx).
		Preload("AddedBy").
		Where("approved = ?", false).
		Order("created_at DESC").
		Find(&pets).Error; err != nil {
		return nil, err
	}
	return pets, nil
}

func (r *PetGormRepository) UpdatePet(ctx context.Context, p *models.Pet) error {
	return r.db.WithContext(ctx).
		Omit("AddedBy").
		Save(p).Error
}

func (r *PetGormRepository) DeletePet(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Pet{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ApprovePets sets approved on every listed pet and returns how many rows
// actually changed.
func (r *PetGormRepository) ApprovePets(ctx context.Context, ids []string) (int64, error) {
	ids = validIDs(ids)
	if len(ids) == 0 {
		return 0, nil
	}

	res := r.db.WithContext(ctx).
		Model(&models.Pet{}).
		Where("id IN ? AND approved = ?", ids, false).
		Update("approved", true)
	return res.RowsAffected, res.Error
}

// validIDs drops strings that are not uuids; postgres would fail the whole
// IN list on one of them.
func validIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, err := uuid.Parse(id); err == nil {
			out = append(out, id)
		}
	}
	return out
}

var _ domain.Repository = (*PetGormRepository)(nil)
