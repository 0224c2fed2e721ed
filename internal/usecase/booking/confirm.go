package booking

import (
	"context"

	"github.com/tasmimahana/cse470/internal/domain/access"
	domain "github.com/tasmimahana/cse470/internal/domain/booking"
	"github.com/tasmimahana/cse470/internal/models"
	"github.com/tasmimahana/cse470/internal/notify"
)

type ConfirmBooking struct {
	repo   domain.Repository
	notify *notify.Dispatcher
}

func NewConfirmBooking(repo domain.Repository, notifier *notify.Dispatcher) *ConfirmBooking {
	return &ConfirmBooking{repo: repo, notify: notifier}
}

func (uc *ConfirmBooking) Execute(
	ctx context.Context,
	actor access.Principal,
	id string,
) (*models.Booking, error) {

	if err := access.RequireAdmin(actor); err != nil {
		return nil, err
	}

	b, err := loadBooking(ctx, uc.repo, id)
	if err != nil {
		return nil, err
	}

	if err := transition(ctx, uc.repo, uc.notify, actor, b, domain.StatusConfirmed, ""); err != nil {
		return nil, err
	}
	return b, nil
}
