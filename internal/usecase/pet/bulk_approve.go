package pet

import (
	"context"

	"github.com/tasmimahana/cse470/internal/domain/access"
	domain "github.com/tasmimahana/cse470/internal/domain/pet"
	"github.com/tasmimahana/cse470/internal/httperr"
	"github.com/tasmimahana/cse470/internal/notify"
)

type BulkApproveResult struct {
	Modified int64
	Notified int
}

type BulkApprovePets struct {
	repo   domain.Repository
	notify *notify.Dispatcher
}

func NewBulkApprovePets(repo domain.Repository, notifier *notify.Dispatcher) *BulkApprovePets {
	return &BulkApprovePets{repo: repo, notify: notifier}
}

// Execute approves every listed pet. Unknown ids are ignored and pets that
// were already approved stay approved without a new notification. Owners
// of the others are notified concurrently, one notification per pet.
func (uc *BulkApprovePets) Execute(
	ctx context.Context,
	actor access.Principal,
	ids []string,
) (*BulkApproveResult, error) {

	if err := access.RequireAdmin(actor); err != nil {
		return nil, err
	}
	ids = dedupe(ids)
	if len(ids) == 0 {
		return nil, httperr.ErrBadRequest("pet_ids_required", "Pet IDs array is required")
	}

	pets, err := uc.repo.ListPetsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	modified, err := uc.repo.ApprovePets(ctx, ids)
	if err != nil {
		return nil, err
	}

	var events []notify.Event
	for i := range pets {
		p := &pets[i]
		if domain.Approve(p) {
			events = append(events, approvedEvent(actor, p))
		}
	}

	results := uc.notify.DispatchAll(ctx, events)

	return &BulkApproveResult{
		Modified: modified,
		Notified: notify.Delivered(results),
	}, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
