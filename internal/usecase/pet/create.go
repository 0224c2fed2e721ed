package pet

import (
	"context"
	"strings"

	"github.com/tasmimahana/cse470/internal/domain/access"
	domain "github.com/tasmimahana/cse470/internal/domain/pet"
	"github.com/tasmimahana/cse470/internal/httperr"
	"github.com/tasmimahana/cse470/internal/models"
)

type CreatePetInput struct {
	Name        string
	Species     string
	Breed       string
	Age         *int
	Gender      string
	Description string
	ImageURL    string
	Status      string
}

type CreatePet struct {
	repo domain.Repository
}

func NewCreatePet(repo domain.Repository) *CreatePet {
	return &CreatePet{repo: repo}
}

// Execute stores a new listing owned by the caller. New pets always start
// unapproved; an admin approves them separately.
func (uc *CreatePet) Execute(
	ctx context.Context,
	actor access.Principal,
	in CreatePetInput,
) (*models.Pet, error) {

	name := strings.TrimSpace(in.Name)
	species := strings.TrimSpace(in.Species)
	if name == "" || species == "" {
		return nil, httperr.ErrBadRequest("invalid_pet", "Please provide name and species")
	}
	if in.Age != nil && *in.Age < 0 {
		return nil, httperr.ErrBadRequest("invalid_pet", "Age cannot be negative")
	}

	status := domain.InitialStatus()
	if in.Status != "" {
		s, err := domain.ParseStatus(in.Status)
		if err != nil {
			return nil, err
		}
		status = s
	}

	gender, err := domain.NormalizeGender(in.Gender)
	if err != nil {
		return nil, err
	}

	p := &models.Pet{
		Name:        name,
		Species:     species,
		Breed:       strings.TrimSpace(in.Breed),
		Age:         in.Age,
		Gender:      gender,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Status:      string(status),
		Approved:    false,
		AddedByID:   actor.UserID,
	}

	if err := uc.repo.CreatePet(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
