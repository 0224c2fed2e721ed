package health

import (
	"context"
	"time"

	"github.com/tasmimahana/cse470/internal/domain/access"
	domain "github.com/tasmimahana/cse470/internal/domain/health"
	"github.com/tasmimahana/cse470/internal/httperr"
	"github.com/tasmimahana/cse470/internal/models"
)

// LogInput carries the editable fields; nil leaves a field untouched on
// update.
type LogInput struct {
	PetID       string
	Vaccination *string
	Weight      *float64
	Notes       *string
	Date        *time.Time
}

// Logs groups the health log operations. Every one of them is gated on
// the pet's owner or an admin.
type Logs struct {
	repo domain.Repository
	now  func() time.Time
}

func NewLogs(repo domain.Repository) *Logs {
	return &Logs{repo: repo, now: time.Now}
}

func (uc *Logs) ListForPet(ctx context.Context, actor access.Principal, petID string) ([]models.HealthLog, error) {
	p, err := uc.loadPet(ctx, petID)
	if err != nil {
		return nil, err
	}
	if err := access.Authorize(actor, p, "view health logs for this pet"); err != nil {
		return nil, err
	}

	logs, err := uc.repo.ListByPet(ctx, petID)
	if err != nil {
		return nil, err
	}
	for i := range logs {
		logs[i].Pet = p
	}
	return logs, nil
}

func (uc *Logs) Get(ctx context.Context, actor access.Principal, id string) (*models.HealthLog, error) {
	h, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := access.Authorize(actor, h, "view this health log"); err != nil {
		return nil, err
	}
	return h, nil
}

func (uc *Logs) Create(ctx context.Context, actor access.Principal, in LogInput) (*models.HealthLog, error) {
	if in.PetID == "" {
		return nil, httperr.ErrBadRequest("pet_required", "Please provide pet")
	}
	p, err := uc.loadPet(ctx, in.PetID)
	if err != nil {
		return nil, err
	}
	if err := access.Authorize(actor, p, "create health logs for this pet"); err != nil {
		return nil, err
	}

	h := &models.HealthLog{PetID: p.ID, Date: uc.now()}
	if err := apply(h, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, h); err != nil {
		return nil, err
	}
	h.Pet = p
	return h, nil
}

func (uc *Logs) Update(ctx context.Context, actor access.Principal, id string, in LogInput) (*models.HealthLog, error) {
	h, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := access.Authorize(actor, h, "update this health log"); err != nil {
		return nil, err
	}

	if err := apply(h, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (uc *Logs) Delete(ctx context.Context, actor access.Principal, id string) error {
	h, err := uc.load(ctx, id)
	if err != nil {
		return err
	}
	if err := access.Authorize(actor, h, "delete this health log"); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, h.ID)
}

func apply(h *models.HealthLog, in LogInput) error {
	if in.Vaccination != nil {
		h.Vaccination = *in.Vaccination
	}
	if in.Weight != nil {
		if *in.Weight < 0 {
			return httperr.ErrBadRequest("invalid_weight", "Weight cannot be negative")
		}
		h.Weight = in.Weight
	}
	if in.Notes != nil {
		h.Notes = *in.Notes
	}
	if in.Date != nil && !in.Date.IsZero() {
		h.Date = *in.Date
	}
	return nil
}

func (uc *Logs) load(ctx context.Context, id string) (*models.HealthLog, error) {
	h, err := uc.repo.Get(ctx, id)
	if err != nil {
		if httperr.IsRecordNotFound(err) {
			return nil, httperr.ErrNotFound("health_log_not_found", "No health log with id: "+id)
		}
		return nil, err
	}
	return h, nil
}

func (uc *Logs) loadPet(ctx context.Context, id string) (*models.Pet, error) {
	p, err := uc.repo.GetPet(ctx, id)
	if err != nil {
		if httperr.IsRecordNotFound(err) {
			return nil, httperr.ErrNotFound("pet_not_found", "No pet with id: "+id)
		}
		return nil, err
	}
	return p, nil
}
