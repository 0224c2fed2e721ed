package health

import (
	"context"

	"github.com/tasmimahana/cse470/internal/models"
)

type Repository interface {
	ListByPet(ctx context.Context, petID string) ([]models.HealthLog, error)
	// Get must load the pet so the owner can be resolved.
	Get(ctx context.Context, id string) (*models.HealthLog, error)
	Create(ctx context.Context, h *models.HealthLog) error
	Update(ctx context.Context, h *models.HealthLog) error
	Delete(ctx context.Context, id string) error
	GetPet(ctx context.Context, id string) (*models.Pet, error)
}
