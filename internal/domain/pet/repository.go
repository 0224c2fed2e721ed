package pet

import (
	"context"

	"github.com/tasmimahana/cse470/internal/models"
)

type Repository interface {
	CreatePet(ctx context.Context, p *models.Pet) error
	GetPet(ctx context.Context, id string) (*models.Pet, error)
	ListPetsByIDs(ctx context.Context, ids []string) ([]models.Pet, error)
	UpdatePet(ctx context.Context, p *models.Pet) error
	DeletePet(ctx context.Context, id string) error
	ApprovePets(ctx context.Context, ids []string) (int64, error)
}
