package booking

import (
	"context"
	"strings"
	"time"

	"github.com/tasmimahana/cse470/internal/domain/access"
	domain "github.com/tasmimahana/cse470/internal/domain/booking"
	"github.com/tasmimahana/cse470/internal/models"
	"github.com/tasmimahana/cse470/internal/notify"
)

type UpdateBookingInput struct {
	ServiceType  *string
	ProviderName *string
	Date         *time.Time
	Notes        *string
	Status       *string
	Reason       string
}

type UpdateBooking struct {
	repo   domain.Repository
	notify *notify.Dispatcher
}

func NewUpdateBooking(repo domain.Repository, notifier *notify.Dispatcher) *UpdateBooking {
	return &UpdateBooking{repo: repo, notify: notifier}
}

// Execute edits a booking. Owners may change its details and cancel it;
// any other status requires an admin.
func (uc *UpdateBooking) Execute(
	ctx context.Context,
	actor access.Principal,
	id string,
	in UpdateBookingInput,
) (*models.Booking, error) {

	b, err := loadBooking(ctx, uc.repo, id)
	if err != nil {
		return nil, err
	}
	if err := access.Authorize(actor, b, "update this booking"); err != nil {
		return nil, err
	}

	var next domain.Status
	if in.Status != nil {
		next, err = domain.ParseStatus(*in.Status)
		if err != nil {
			return nil, err
		}
	}

	if in.ServiceType != nil {
		s, err := domain.ParseServiceType(*in.ServiceType)
		if err != nil {
			return nil, err
		}
		b.ServiceType = string(s)
	}
	if in.ProviderName != nil {
		b.ProviderName = strings.TrimSpace(*in.ProviderName)
	}
	if in.Date != nil && !in.Date.IsZero() {
		b.Date = *in.Date
	}
	if in.Notes != nil {
		b.Notes = *in.Notes
	}

	if next == "" {
		if err := uc.repo.UpdateBooking(ctx, b); err != nil {
			return nil, err
		}
		return b, nil
	}

	if err := transition(ctx, uc.repo, uc.notify, actor, b, next, in.Reason); err != nil {
		return nil, err
	}
	return b, nil
}
