package booking

import (
	"context"
	"strings"
	"time"

	"github.com/tasmimahana/cse470/internal/domain/access"
	domain "github.com/tasmimahana/cse470/internal/domain/booking"
	"github.com/tasmimahana/cse470/internal/httperr"
	"github.com/tasmimahana/cse470/internal/models"
)

type CreateBookingInput struct {
	PetID        string
	ServiceType  string
	ProviderName string
	Date         time.Time
	Notes        string
}

type CreateBooking struct {
	repo domain.Repository
}

func NewCreateBooking(repo domain.Repository) *CreateBooking {
	return &CreateBooking{repo: repo}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	actor access.Principal,
	in CreateBookingInput,
) (*models.Booking, error) {

	if in.PetID == "" || in.ServiceType == "" || in.Date.IsZero() {
		return nil, httperr.ErrBadRequest("invalid_booking", "Please provide pet, serviceType and date")
	}

	service, err := domain.ParseServiceType(in.ServiceType)
	if err != nil {
		return nil, err
	}

	pet, err := uc.repo.GetPet(ctx, in.PetID)
	if err != nil {
		if httperr.IsRecordNotFound(err) {
			return nil, httperr.ErrNotFound("pet_not_found", "No pet with id: "+in.PetID)
		}
		return nil, err
	}

	b := &models.Booking{
		UserID:       actor.UserID,
		PetID:        pet.ID,
		ServiceType:  string(service),
		ProviderName: strings.TrimSpace(in.ProviderName),
		Date:         in.Date,
		Notes:        in.Notes,
		Status:       string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	b.Pet = pet
	return b, nil
}
