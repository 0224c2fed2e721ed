package booking

import (
	"context"

	"github.com/tasmimahana/cse470/internal/models"
)

type Repository interface {
	CreateBooking(ctx context.Context, b *models.Booking) error
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	UpdateBooking(ctx context.Context, b *models.Booking) error
	GetPet(ctx context.Context, id string) (*models.Pet, error)
}
