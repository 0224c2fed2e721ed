package booking

import (
	"context"

	"github.com/tasmimahana/cse470/internal/domain/access"
	domain "github.com/tasmimahana/cse470/internal/domain/booking"
	"github.com/tasmimahana/cse470/internal/domain/notification"
	"github.com/tasmimahana/cse470/internal/httperr"
	"github.com/tasmimahana/cse470/internal/models"
	"github.com/tasmimahana/cse470/internal/notify"
)

func loadBooking(ctx context.Context, repo domain.Repository, id string) (*models.Booking, error) {
	b, err := repo.GetBooking(ctx, id)
	if err != nil {
		if httperr.IsRecordNotFound(err) {
			return nil, httperr.ErrNotFound("booking_not_found", "No booking with id: "+id)
		}
		return nil, err
	}
	return b, nil
}

// transition applies next, persists it and tells the booking's user when an
// admin actually changed the status.
func transition(
	ctx context.Context,
	repo domain.Repository,
	notifier *notify.Dispatcher,
	actor access.Principal,
	b *models.Booking,
	next domain.Status,
	reason string,
) error {

	old, err := domain.ApplyStatus(b, actor, next)
	if err != nil {
		return err
	}

	if err := repo.UpdateBooking(ctx, b); err != nil {
		return err
	}

	if actor.IsAdmin() && old != next {
		notifier.Dispatch(ctx, statusEvent(ctx, repo, actor, b, next, reason))
	}
	return nil
}

func statusEvent(
	ctx context.Context,
	repo domain.Repository,
	actor access.Principal,
	b *models.Booking,
	next domain.Status,
	reason string,
) notify.Event {

	return notify.Event{
		UserID:     b.UserID,
		Resource:   notification.ResourceBooking,
		Action:     notification.Action(next),
		ResourceID: b.ID,
		Actor:      &actor,
		Args: map[string]string{
			"serviceType": b.ServiceType,
			"petName":     petName(ctx, repo, b),
			"reason":      reason,
		},
	}
}

func petName(ctx context.Context, repo domain.Repository, b *models.Booking) string {
	if b.Pet != nil {
		return b.Pet.Name
	}
	p, err := repo.GetPet(ctx, b.PetID)
	if err != nil {
		return "your pet"
	}
	return p.Name
}
