package booking_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/tasmimahana/cse470/internal/domain/access"
	"github.com/tasmimahana/cse470/internal/httperr"
	"github.com/tasmimahana/cse470/internal/logger"
	"github.com/tasmimahana/cse470/internal/models"
	"github.com/tasmimahana/cse470/internal/notify"
	ucBooking "github.com/tasmimahana/cse470/internal/usecase/booking"
)

type fakeRepo struct {
	mu       sync.Mutex
	bookings map[string]models.Booking
	pets     map[string]models.Pet
}

func newFakeRepo() *fakeRepo {
	r := &fakeRepo{
		bookings: map[string]models.Booking{},
		pets:     map[string]models.Pet{},
	}
	p := models.Pet{Name: "Buddy", Species: "dog", AddedByID: "someone"}
	p.ID = "pet-1"
	r.pets[p.ID] = p

	b := models.Booking{UserID: "owner", PetID: "pet-1", ServiceType: "veterinary", Date: time.Now(), Status: "pending"}
	b.ID = "b-1"
	r.bookings[b.ID] = b
	return r
}

func (r *fakeRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b.ID = "b-new"
	r.bookings[b.ID] = *b
	return nil
}

func (r *fakeRepo) GetBooking(_ context.Context, id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &b, nil
}

func (r *fakeRepo) UpdateBooking(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings[b.ID] = *b
	return nil
}

func (r *fakeRepo) GetPet(_ context.Context, id string) (*models.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.pets[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (r *fakeRepo) status(id string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.bookings[id].Status
}

type recordingSink struct {
	mu   sync.Mutex
	sent []*models.Notification
	err  error
}

func (s *recordingSink) Deliver(_ context.Context, n *models.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, n)
	return nil
}

var (
	admin = access.Principal{UserID: "admin", Name: "Ana", Role: models.RoleAdmin}
	owner = access.Principal{UserID: "owner", Name: "Olga", Role: models.RoleUser}
	other = access.Principal{UserID: "other", Name: "Otto", Role: models.RoleUser}
)

func strPtr(s string) *string { return &s }

func TestCreateBooking(t *testing.T) {
	uc := ucBooking.NewCreateBooking(newFakeRepo())
	ctx := context.Background()

	tests := []struct {
		name string
		in   ucBooking.CreateBookingInput
		kind httperr.Kind
	}{
		{"missing date", ucBooking.CreateBookingInput{PetID: "pet-1", ServiceType: "grooming"}, httperr.KindBadRequest},
		{"unknown service", ucBooking.CreateBookingInput{PetID: "pet-1", ServiceType: "spa", Date: time.Now()}, httperr.KindBadRequest},
		{"unknown pet", ucBooking.CreateBookingInput{PetID: "ghost", ServiceType: "grooming", Date: time.Now()}, httperr.KindNotFound},
	}
	for _, tt := range tests {
		if _, err := uc.Execute(ctx, owner, tt.in); httperr.KindOf(err) != tt.kind {
			t.Fatalf("%s: expected kind %v, got %v", tt.name, tt.kind, err)
		}
	}

	b, err := uc.Execute(ctx, owner, ucBooking.CreateBookingInput{PetID: "pet-1", ServiceType: "Daycare", Date: time.Now()})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if b.Status != "pending" || b.UserID != "owner" || b.ServiceType != "daycare" {
		t.Fatalf("unexpected booking: %+v", b)
	}
}

func TestUpdateBooking_OwnerMayOnlyCancel(t *testing.T) {
	repo := newFakeRepo()
	sink := &recordingSink{}
	uc := ucBooking.NewUpdateBooking(repo, notify.NewDispatcher(sink, logger.Discard()))
	ctx := context.Background()

	if _, err := uc.Execute(ctx, owner, "b-1", ucBooking.UpdateBookingInput{Status: strPtr("confirmed")}); httperr.KindOf(err) != httperr.KindUnauthorized {
		t.Fatalf("expected forbidden for owner confirm, got %v", err)
	}
	if got := repo.status("b-1"); got != "pending" {
		t.Fatalf("expected pending after rejected confirm, got %s", got)
	}

	if _, err := uc.Execute(ctx, other, "b-1", ucBooking.UpdateBookingInput{Status: strPtr("cancelled")}); httperr.KindOf(err) != httperr.KindUnauthorized {
		t.Fatalf("expected forbidden for stranger, got %v", err)
	}

	if _, err := uc.Execute(ctx, owner, "b-1", ucBooking.UpdateBookingInput{Status: strPtr("cancelled")}); err != nil {
		t.Fatalf("owner cancel: %v", err)
	}
	if got := repo.status("b-1"); got != "cancelled" {
		t.Fatalf("expected cancelled, got %s", got)
	}
	if len(sink.sent) != 0 {
		t.Fatalf("expected no notification for owner-initiated change, got %d", len(sink.sent))
	}
}

func TestUpdateBooking_OwnerMayEditDetails(t *testing.T) {
	repo := newFakeRepo()
	uc := ucBooking.NewUpdateBooking(repo, notify.NewDispatcher(&recordingSink{}, logger.Discard()))

	b, err := uc.Execute(context.Background(), owner, "b-1", ucBooking.UpdateBookingInput{Notes: strPtr("bring leash")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if b.Notes != "bring leash" || b.Status != "pending" {
		t.Fatalf("unexpected booking: %+v", b)
	}
}

func TestUpdateBooking_AdminChangeNotifiesOnce(t *testing.T) {
	repo := newFakeRepo()
	sink := &recordingSink{}
	uc := ucBooking.NewUpdateBooking(repo, notify.NewDispatcher(sink, logger.Discard()))
	ctx := context.Background()

	if _, err := uc.Execute(ctx, admin, "b-1", ucBooking.UpdateBookingInput{Status: strPtr("completed")}); err != nil {
		t.Fatalf("admin complete: %v", err)
	}
	// same value again: no new notification
	if _, err := uc.Execute(ctx, admin, "b-1", ucBooking.UpdateBookingInput{Status: strPtr("completed")}); err != nil {
		t.Fatalf("admin complete again: %v", err)
	}

	if len(sink.sent) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(sink.sent))
	}
	n := sink.sent[0]
	if n.UserID != "owner" || n.Metadata.ActionType != "completed" || n.Type != "booking" {
		t.Fatalf("unexpected notification: %+v", n)
	}
	if !strings.Contains(n.Message, `"Buddy"`) || !strings.Contains(n.Message, "veterinary") {
		t.Fatalf("expected pet and service in message, got %q", n.Message)
	}
}

func TestUpdateBooking_InvalidStatus(t *testing.T) {
	uc := ucBooking.NewUpdateBooking(newFakeRepo(), notify.NewDispatcher(&recordingSink{}, logger.Discard()))
	if _, err := uc.Execute(context.Background(), admin, "b-1", ucBooking.UpdateBookingInput{Status: strPtr("archived")}); httperr.KindOf(err) != httperr.KindBadRequest {
		t.Fatalf("expected bad request, got %v", err)
	}
}

func TestConfirmBooking(t *testing.T) {
	repo := newFakeRepo()
	sink := &recordingSink{}
	uc := ucBooking.NewConfirmBooking(repo, notify.NewDispatcher(sink, logger.Discard()))
	ctx := context.Background()

	if _, err := uc.Execute(ctx, owner, "b-1"); httperr.KindOf(err) != httperr.KindUnauthorized {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if _, err := uc.Execute(ctx, admin, "missing"); httperr.KindOf(err) != httperr.KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}

	b, err := uc.Execute(ctx, admin, "b-1")
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if b.Status != "confirmed" {
		t.Fatalf("expected confirmed, got %s", b.Status)
	}
	if len(sink.sent) != 1 || sink.sent[0].Metadata.ActionType != "confirmed" {
		t.Fatalf("expected one confirmed notification, got %+v", sink.sent)
	}
	if *sink.sent[0].Metadata.AdminID != "admin" || sink.sent[0].Metadata.AdminName != "Ana" {
		t.Fatalf("expected admin attribution, got %+v", sink.sent[0].Metadata)
	}
}

func TestConfirmBooking_NotificationFailureIsNotFatal(t *testing.T) {
	repo := newFakeRepo()
	sink := &recordingSink{err: errors.New("write failed")}
	uc := ucBooking.NewConfirmBooking(repo, notify.NewDispatcher(sink, logger.Discard()))

	if _, err := uc.Execute(context.Background(), admin, "b-1"); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if got := repo.status("b-1"); got != "confirmed" {
		t.Fatalf("expected confirmed persisted, got %s", got)
	}
}

func TestCancelBooking_AdminReasonInMessage(t *testing.T) {
	repo := newFakeRepo()
	sink := &recordingSink{}
	uc := ucBooking.NewCancelBooking(repo, notify.NewDispatcher(sink, logger.Discard()))

	if _, err := uc.Execute(context.Background(), admin, "b-1", "clinic closed"); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if len(sink.sent) != 1 || !strings.Contains(sink.sent[0].Message, "Reason: clinic closed") {
		t.Fatalf("expected cancellation with reason, got %+v", sink.sent)
	}
}
