package notification

import (
	"context"
	"strings"

	"github.com/tasmimahana/cse470/internal/domain/access"
	domain "github.com/tasmimahana/cse470/internal/domain/notification"
	"github.com/tasmimahana/cse470/internal/httperr"
	"github.com/tasmimahana/cse470/internal/models"
	"github.com/tasmimahana/cse470/internal/notify"
)

// Recipients resolves who an admin message goes to.
type Recipients interface {
	GetUser(ctx context.Context, id string) (*models.User, error)
	ListUserIDs(ctx context.Context) ([]string, error)
}

type ComposeInput struct {
	UserID    string
	Message   string
	Type      string
	Broadcast bool
}

type ComposeResult struct {
	Notification *models.Notification
	// Count is the number of stored notifications.
	Count int
}

type Compose struct {
	users  Recipients
	notify *notify.Dispatcher
}

func NewCompose(users Recipients, notifier *notify.Dispatcher) *Compose {
	return &Compose{users: users, notify: notifier}
}

// Execute stores an admin-written notification for one user or, with
// Broadcast, one per registered user. Unlike transition notifications the
// write is the operation itself, so a single-target failure is returned.
func (uc *Compose) Execute(ctx context.Context, actor access.Principal, in ComposeInput) (*ComposeResult, error) {
	if err := access.RequireAdmin(actor); err != nil {
		return nil, err
	}

	msg := strings.TrimSpace(in.Message)
	if msg == "" {
		return nil, httperr.ErrBadRequest("message_required", "Please provide message")
	}
	typ, err := domain.ParseType(in.Type)
	if err != nil {
		return nil, err
	}

	if in.Broadcast {
		return uc.broadcast(ctx, actor, msg, typ)
	}

	if in.UserID == "" {
		return nil, httperr.ErrBadRequest("user_required", "Please provide user or set broadcast")
	}
	if _, err := uc.users.GetUser(ctx, in.UserID); err != nil {
		if httperr.IsRecordNotFound(err) {
			return nil, httperr.ErrNotFound("user_not_found", "No user with id: "+in.UserID)
		}
		return nil, err
	}

	ev := notify.Event{
		UserID:   in.UserID,
		Resource: domain.ResourceSystem,
		Actor:    &actor,
		Message:  msg,
		Type:     typ,
	}
	// system messages to a single user use the system update wording
	if typ == domain.TypeSystem {
		ev.Action = domain.ActionSystemUpdate
		ev.Message = ""
		ev.Args = map[string]string{"message": msg}
	}

	n, err := uc.notify.Send(ctx, ev)
	if err != nil {
		return nil, err
	}
	return &ComposeResult{Notification: n, Count: 1}, nil
}

func (uc *Compose) broadcast(
	ctx context.Context,
	actor access.Principal,
	msg string,
	typ domain.Type,
) (*ComposeResult, error) {

	ids, err := uc.users.ListUserIDs(ctx)
	if err != nil {
		return nil, err
	}

	results := uc.notify.Broadcast(ctx, ids, notify.Event{
		Resource: domain.ResourceSystem,
		Action:   domain.ActionBroadcast,
		Actor:    &actor,
		Message:  msg,
		Type:     typ,
	})

	return &ComposeResult{Count: notify.Delivered(results)}, nil
}
