package donation

import (
	"context"

	"github.com/tasmimahana/cse470/internal/models"
)

type Repository interface {
	CreateDonation(ctx context.Context, d *models.Donation) error
	GetDonation(ctx context.Context, id string) (*models.Donation, error)
	UpdateDonation(ctx context.Context, d *models.Donation) error
}
