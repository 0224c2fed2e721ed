package donation

import (
	"context"
	"strings"

	"github.com/tasmimahana/cse470/internal/domain/access"
	domain "github.com/tasmimahana/cse470/internal/domain/donation"
	"github.com/tasmimahana/cse470/internal/httperr"
	"github.com/tasmimahana/cse470/internal/models"
)

type CreateDonation struct {
	repo domain.Repository
}

func NewCreateDonation(repo domain.Repository) *CreateDonation {
	return &CreateDonation{repo: repo}
}

// Execute records a pledge. The payment status starts pending and is
// settled later by an admin.
func (uc *CreateDonation) Execute(
	ctx context.Context,
	actor access.Principal,
	amount float64,
	cause string,
) (*models.Donation, error) {

	cause = strings.TrimSpace(cause)
	if cause == "" {
		return nil, httperr.ErrBadRequest("invalid_donation", "Please provide amount and cause")
	}
	if amount <= 0 {
		return nil, httperr.ErrBadRequest("invalid_donation", "Amount must be greater than zero")
	}

	d := &models.Donation{
		UserID:        actor.UserID,
		Amount:        amount,
		Cause:         cause,
		PaymentStatus: string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateDonation(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}
