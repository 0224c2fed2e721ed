package notify

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/tasmimahana/cse470/internal/domain/access"
	"github.com/tasmimahana/cse470/internal/domain/notification"
	"github.com/tasmimahana/cse470/internal/metrics"
	"github.com/tasmimahana/cse470/internal/models"
)

var ErrNoTemplate = errors.New("notify: no template for event")

// Sink persists a rendered notification for its recipient.
type Sink interface {
	Deliver(ctx context.Context, n *models.Notification) error
}

type SinkFunc func(ctx context.Context, n *models.Notification) error

func (f SinkFunc) Deliver(ctx context.Context, n *models.Notification) error {
	return f(ctx, n)
}

func RepositorySink(repo notification.Repository) Sink {
	return SinkFunc(repo.CreateNotification)
}

type Event struct {
	UserID     string
	Resource   notification.ResourceType
	Action     notification.Action
	Variant    string
	ResourceID string
	Actor      *access.Principal
	Args       map[string]string

	// Message and Type bypass the template table for admin-written text.
	Message string
	Type    notification.Type
}

type Result struct {
	UserID       string
	Notification *models.Notification
	Err          error
}

const defaultFanoutLimit = 8

type Dispatcher struct {
	sink   Sink
	logger *slog.Logger
	limit  int
}

func NewDispatcher(sink Sink, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		sink:   sink,
		logger: logger,
		limit:  defaultFanoutLimit,
	}
}

// Build renders the event into an unsaved notification.
func (d *Dispatcher) Build(ev Event) (*models.Notification, error) {
	args := make(map[string]string, len(ev.Args)+1)
	for k, v := range ev.Args {
		args[k] = v
	}

	meta := models.NotificationMetadata{
		ActionType:   string(ev.Action),
		ResourceType: string(ev.Resource),
	}
	if ev.ResourceID != "" {
		id := ev.ResourceID
		meta.ResourceID = &id
	}
	if ev.Actor != nil {
		adminID := ev.Actor.UserID
		meta.AdminID = &adminID
		meta.AdminName = ev.Actor.Name
		args["adminName"] = ev.Actor.Name
	}

	n := &models.Notification{
		UserID:   ev.UserID,
		Metadata: meta,
	}

	if ev.Message != "" {
		n.Message = ev.Message
		n.Type = string(ev.Type)
		if n.Type == "" {
			n.Type = string(notification.TypeSystem)
		}
		return n, nil
	}

	tmpl, ok := notification.Lookup(notification.Key{
		Resource: ev.Resource,
		Action:   ev.Action,
		Variant:  ev.Variant,
	})
	if !ok {
		return nil, ErrNoTemplate
	}

	n.Message = notification.Render(tmpl.Text, args)
	n.Type = string(tmpl.Type)
	return n, nil
}

// Send renders and delivers one notification, returning any failure.
func (d *Dispatcher) Send(ctx context.Context, ev Event) (*models.Notification, error) {
	n, err := d.Build(ev)
	if err != nil {
		d.count(ev, err)
		return nil, err
	}
	err = d.sink.Deliver(ctx, n)
	d.count(ev, err)
	if err != nil {
		return nil, err
	}
	return n, nil
}

// Dispatch is the best-effort path used after a state change has been
// stored. Failures are logged and never returned.
func (d *Dispatcher) Dispatch(ctx context.Context, ev Event) {
	if _, err := d.Send(context.WithoutCancel(ctx), ev); err != nil {
		d.logFailure(ev, err)
	}
}

// DispatchAll delivers every event concurrently and waits for all of them.
// One failure does not stop the others.
func (d *Dispatcher) DispatchAll(ctx context.Context, evs []Event) []Result {
	results := make([]Result, len(evs))
	ctx = context.WithoutCancel(ctx)

	var g errgroup.Group
	g.SetLimit(d.limit)
	for i, ev := range evs {
		i, ev := i, ev
		g.Go(func() error {
			n, err := d.Send(ctx, ev)
			if err != nil {
				d.logFailure(ev, err)
			}
			results[i] = Result{UserID: ev.UserID, Notification: n, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// Broadcast sends the same event to each user.
func (d *Dispatcher) Broadcast(ctx context.Context, userIDs []string, ev Event) []Result {
	evs := make([]Event, 0, len(userIDs))
	for _, id := range userIDs {
		e := ev
		e.UserID = id
		evs = append(evs, e)
	}
	return d.DispatchAll(ctx, evs)
}

func (d *Dispatcher) logFailure(ev Event, err error) {
	d.logger.Error("notification dispatch failed",
		slog.String("user_id", ev.UserID),
		slog.String("resource_type", string(ev.Resource)),
		slog.String("resource_id", ev.ResourceID),
		slog.String("action", string(ev.Action)),
		slog.Any("error", err),
	)
}

func (d *Dispatcher) count(ev Event, err error) {
	result := "delivered"
	if err != nil {
		result = "failed"
	}
	metrics.NotificationsDispatchedTotal.WithLabelValues(string(ev.Resource), result).Inc()
}

// Delivered counts the successful results.
func Delivered(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Err == nil {
			n++
		}
	}
	return n
}
