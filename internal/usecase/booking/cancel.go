package booking

import (
	"context"

	"github.com/tasmimahana/cse470/internal/domain/access"
	domain "github.com/tasmimahana/cse470/internal/domain/booking"
	"github.com/tasmimahana/cse470/internal/models"
	"github.com/tasmimahana/cse470/internal/notify"
)

type CancelBooking struct {
	repo   domain.Repository
	notify *notify.Dispatcher
}

func NewCancelBooking(repo domain.Repository, notifier *notify.Dispatcher) *CancelBooking {
	return &CancelBooking{repo: repo, notify: notifier}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	actor access.Principal,
	id string,
	reason string,
) (*models.Booking, error) {

	b, err := loadBooking(ctx, uc.repo, id)
	if err != nil {
		return nil, err
	}
	if err := access.Authorize(actor, b, "cancel this booking"); err != nil {
		return nil, err
	}

	if err := transition(ctx, uc.repo, uc.notify, actor, b, domain.StatusCancelled, reason); err != nil {
		return nil, err
	}
	return b, nil
}
