package pet

import (
	"context"

	"github.com/tasmimahana/cse470/internal/domain/access"
	"github.com/tasmimahana/cse470/internal/domain/notification"
	domain "github.com/tasmimahana/cse470/internal/domain/pet"
	"github.com/tasmimahana/cse470/internal/models"
	"github.com/tasmimahana/cse470/internal/notify"
)

type RejectPet struct {
	repo   domain.Repository
	notify *notify.Dispatcher
}

func NewRejectPet(repo domain.Repository, notifier *notify.Dispatcher) *RejectPet {
	return &RejectPet{repo: repo, notify: notifier}
}

// Execute records a negative review: the listing is hidden again if it was
// approved and the owner always hears about the outcome.
func (uc *RejectPet) Execute(
	ctx context.Context,
	actor access.Principal,
	id string,
	reason string,
) (*models.Pet, error) {

	if err := access.RequireAdmin(actor); err != nil {
		return nil, err
	}

	p, err := loadPet(ctx, uc.repo, id)
	if err != nil {
		return nil, err
	}

	if domain.Unapprove(p) {
		if err := uc.repo.UpdatePet(ctx, p); err != nil {
			return nil, err
		}
	}

	uc.notify.Dispatch(ctx, notify.Event{
		UserID:     p.AddedByID,
		Resource:   notification.ResourcePet,
		Action:     notification.ActionRejected,
		ResourceID: p.ID,
		Actor:      &actor,
		Args:       map[string]string{"petName": p.Name, "reason": reason},
	})

	return p, nil
}
