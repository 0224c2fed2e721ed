package pet

import (
	"context"

	"github.com/tasmimahana/cse470/internal/domain/access"
	domain "github.com/tasmimahana/cse470/internal/domain/pet"
)

type DeletePet struct {
	repo domain.Repository
}

func NewDeletePet(repo domain.Repository) *DeletePet {
	return &DeletePet{repo: repo}
}

// Execute removes the listing. Bookings and health logs that reference it
// are left in place.
func (uc *DeletePet) Execute(ctx context.Context, actor access.Principal, id string) error {
	p, err := loadPet(ctx, uc.repo, id)
	if err != nil {
		return err
	}
	if err := access.Authorize(actor, p, "delete this pet"); err != nil {
		return err
	}
	return uc.repo.DeletePet(ctx, p.ID)
}
