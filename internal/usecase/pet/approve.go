package pet

import (
	"context"

	"github.com/tasmimahana/cse470/internal/domain/access"
	"github.com/tasmimahana/cse470/internal/domain/notification"
	domain "github.com/tasmimahana/cse470/internal/domain/pet"
	"github.com/tasmimahana/cse470/internal/models"
	"github.com/tasmimahana/cse470/internal/notify"
)

type ApprovePet struct {
	repo   domain.Repository
	notify *notify.Dispatcher
}

func NewApprovePet(repo domain.Repository, notifier *notify.Dispatcher) *ApprovePet {
	return &ApprovePet{repo: repo, notify: notifier}
}

// Execute approves one pet. The owner is notified only when the flag
// actually flips.
func (uc *ApprovePet) Execute(ctx context.Context, actor access.Principal, id string) (*models.Pet, error) {
	if err := access.RequireAdmin(actor); err != nil {
		return nil, err
	}

	p, err := loadPet(ctx, uc.repo, id)
	if err != nil {
		return nil, err
	}

	if !domain.Approve(p) {
		return p, nil
	}

	if err := uc.repo.UpdatePet(ctx, p); err != nil {
		return nil, err
	}

	uc.notify.Dispatch(ctx, approvedEvent(actor, p))

	return p, nil
}

func approvedEvent(actor access.Principal, p *models.Pet) notify.Event {
	return notify.Event{
		UserID:     p.AddedByID,
		Resource:   notification.ResourcePet,
		Action:     notification.ActionApproved,
		ResourceID: p.ID,
		Actor:      &actor,
		Args:       map[string]string{"petName": p.Name},
	}
}
