package pet

import (
	"context"
	"strings"

	"github.com/tasmimahana/cse470/internal/domain/access"
	domain "github.com/tasmimahana/cse470/internal/domain/pet"
	"github.com/tasmimahana/cse470/internal/httperr"
	"github.com/tasmimahana/cse470/internal/models"
)

type UpdatePetInput struct {
	Name        *string
	Species     *string
	Breed       *string
	Age         *int
	Gender      *string
	Description *string
	ImageURL    *string
	Status      *string
}

type UpdatePet struct {
	repo domain.Repository
}

func NewUpdatePet(repo domain.Repository) *UpdatePet {
	return &UpdatePet{repo: repo}
}

// Execute edits listing fields. Approval is not editable here.
func (uc *UpdatePet) Execute(
	ctx context.Context,
	actor access.Principal,
	id string,
	in UpdatePetInput,
) (*models.Pet, error) {

	p, err := loadPet(ctx, uc.repo, id)
	if err != nil {
		return nil, err
	}
	if err := access.Authorize(actor, p, "update this pet"); err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, httperr.ErrBadRequest("invalid_pet", "Name cannot be empty")
		}
		p.Name = name
	}
	if in.Species != nil {
		species := strings.TrimSpace(*in.Species)
		if species == "" {
			return nil, httperr.ErrBadRequest("invalid_pet", "Species cannot be empty")
		}
		p.Species = species
	}
	if in.Breed != nil {
		p.Breed = strings.TrimSpace(*in.Breed)
	}
	if in.Age != nil {
		if *in.Age < 0 {
			return nil, httperr.ErrBadRequest("invalid_pet", "Age cannot be negative")
		}
		p.Age = in.Age
	}
	if in.Gender != nil {
		g, err := domain.NormalizeGender(*in.Gender)
		if err != nil {
			return nil, err
		}
		p.Gender = g
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.ImageURL != nil {
		p.ImageURL = *in.ImageURL
	}
	if in.Status != nil {
		s, err := domain.ParseStatus(*in.Status)
		if err != nil {
			return nil, err
		}
		p.Status = string(s)
	}

	if err := uc.repo.UpdatePet(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func loadPet(ctx context.Context, repo domain.Repository, id string) (*models.Pet, error) {
	p, err := repo.GetPet(ctx, id)
	if err != nil {
		if httperr.IsRecordNotFound(err) {
			return nil, httperr.ErrNotFound("pet_not_found", "No pet with id: "+id)
		}
		return nil, err
	}
	return p, nil
}
