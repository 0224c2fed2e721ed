package donation

import (
	"context"
	"strconv"

	"github.com/tasmimahana/cse470/internal/domain/access"
	domain "github.com/tasmimahana/cse470/internal/domain/donation"
	"github.com/tasmimahana/cse470/internal/domain/notification"
	"github.com/tasmimahana/cse470/internal/httperr"
	"github.com/tasmimahana/cse470/internal/models"
	"github.com/tasmimahana/cse470/internal/notify"
)

type UpdateDonationStatus struct {
	repo   domain.Repository
	notify *notify.Dispatcher
}

func NewUpdateDonationStatus(repo domain.Repository, notifier *notify.Dispatcher) *UpdateDonationStatus {
	return &UpdateDonationStatus{repo: repo, notify: notifier}
}

func (uc *UpdateDonationStatus) Execute(
	ctx context.Context,
	actor access.Principal,
	id string,
	status string,
) (*models.Donation, error) {

	if err := access.RequireAdmin(actor); err != nil {
		return nil, err
	}

	next, err := domain.ParsePaymentStatus(status)
	if err != nil {
		return nil, err
	}

	d, err := uc.repo.GetDonation(ctx, id)
	if err != nil {
		if httperr.IsRecordNotFound(err) {
			return nil, httperr.ErrNotFound("donation_not_found", "No donation with id: "+id)
		}
		return nil, err
	}

	old := domain.PaymentStatus(d.PaymentStatus)
	if old == next {
		return d, nil
	}

	d.PaymentStatus = string(next)
	if err := uc.repo.UpdateDonation(ctx, d); err != nil {
		return nil, err
	}

	uc.notify.Dispatch(ctx, notify.Event{
		UserID:     d.UserID,
		Resource:   notification.ResourceDonation,
		Action:     notification.ActionStatusUpdated,
		Variant:    string(next),
		ResourceID: d.ID,
		Actor:      &actor,
		Args: map[string]string{
			"amount": strconv.FormatFloat(d.Amount, 'f', -1, 64),
			"status": string(next),
		},
	})

	return d, nil
}
