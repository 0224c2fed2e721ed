package pet_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"strings"
	"sync"
	"testing"

	"gorm.io/gorm"

	"github.com/tasmimahana/cse470/internal/domain/access"
	"github.com/tasmimahana/cse470/internal/httperr"
	"github.com/tasmimahana/cse470/internal/logger"
	"github.com/tasmimahana/cse470/internal/models"
	"github.com/tasmimahana/cse470/internal/notify"
	ucPet "github.com/tasmimahana/cse470/internal/usecase/pet"
)

type fakeRepo struct {
	mu   sync.Mutex
	pets map[string]*models.Pet
	seq  int
}

func newFakeRepo(pets ...*models.Pet) *fakeRepo {
	r := &fakeRepo{pets: map[string]*models.Pet{}}
	for _, p := range pets {
		r.pets[p.ID] = p
	}
	return r
}

func (r *fakeRepo) CreatePet(_ context.Context, p *models.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	p.ID = "pet-new"
	r.pets[p.ID] = p
	return nil
}

func (r *fakeRepo) GetPet(_ context.Context, id string) (*models.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.pets[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeRepo) ListPetsByIDs(_ context.Context, ids []string) ([]models.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Pet
	for _, id := range ids {
		if p, ok := r.pets[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeRepo) UpdatePet(_ context.Context, p *models.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.pets[p.ID] = &cp
	return nil
}

func (r *fakeRepo) DeletePet(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.pets, id)
	return nil
}

func (r *fakeRepo) ApprovePets(_ context.Context, ids []string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, id := range ids {
		if p, ok := r.pets[id]; ok && !p.Approved {
			p.Approved = true
			n++
		}
	}
	return n, nil
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

func pet(id string, approved bool) *models.Pet {
	p := &models.Pet{Name: "Pet " + id, Species: "dog", Status: "available", Approved: approved, AddedByID: "owner"}
	p.ID = id
	return p
}

func TestCreatePet_StartsUnapprovedAndOwned(t *testing.T) {
	repo := newFakeRepo()
	uc := ucPet.NewCreatePet(repo)

	p, err := uc.Execute(context.Background(), owner, ucPet.CreatePetInput{Name: "Buddy", Species: "dog", Gender: "male"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.Approved || p.AddedByID != "owner" || p.Status != "available" || p.Gender != "Male" {
		t.Fatalf("unexpected pet: %+v", p)
	}
}

func TestCreatePet_RejectsPendingStatus(t *testing.T) {
	uc := ucPet.NewCreatePet(newFakeRepo())
	_, err := uc.Execute(context.Background(), owner, ucPet.CreatePetInput{Name: "Buddy", Species: "dog", Status: "pending"})
	if httperr.KindOf(err) != httperr.KindBadRequest {
		t.Fatalf("expected bad request, got %v", err)
	}
}

func TestUpdatePet_OwnershipGate(t *testing.T) {
	repo := newFakeRepo(pet("p1", false))
	uc := ucPet.NewUpdatePet(repo)
	name := "Renamed"

	_, err := uc.Execute(context.Background(), other, "p1", ucPet.UpdatePetInput{Name: &name})
	if httperr.KindOf(err) != httperr.KindUnauthorized {
		t.Fatalf("expected forbidden for non-owner, got %v", err)
	}
	stored, _ := repo.GetPet(context.Background(), "p1")
	if stored.Name != "Pet p1" {
		t.Fatalf("expected pet unchanged after rejected update, got %q", stored.Name)
	}

	for _, actor := range []access.Principal{owner, admin} {
		if _, err := uc.Execute(context.Background(), actor, "p1", ucPet.UpdatePetInput{Name: &name}); err != nil {
			t.Fatalf("%s: expected update allowed, got %v", actor.UserID, err)
		}
	}
}

func TestDeletePet_NotFoundAndForbidden(t *testing.T) {
	repo := newFakeRepo(pet("p1", false))
	uc := ucPet.NewDeletePet(repo)

	if err := uc.Execute(context.Background(), owner, "missing"); httperr.KindOf(err) != httperr.KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := uc.Execute(context.Background(), other, "p1"); httperr.KindOf(err) != httperr.KindUnauthorized {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if err := uc.Execute(context.Background(), owner, "p1"); err != nil {
		t.Fatalf("expected owner delete, got %v", err)
	}
}

func TestApprovePet_NotifiesOnceOnChange(t *testing.T) {
	repo := newFakeRepo(pet("p1", false))
	sink := &recordingSink{}
	uc := ucPet.NewApprovePet(repo, notify.NewDispatcher(sink, logger.Discard()))

	p, err := uc.Execute(context.Background(), admin, "p1")
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if !p.Approved {
		t.Fatal("expected approved")
	}

	// approving again changes nothing and sends nothing
	if _, err := uc.Execute(context.Background(), admin, "p1"); err != nil {
		t.Fatalf("second approve: %v", err)
	}

	if len(sink.sent) != 1 {
		t.Fatalf("expected exactly 1 notification, got %d", len(sink.sent))
	}
	n := sink.sent[0]
	if n.UserID != "owner" || n.Metadata.ActionType != "approved" || *n.Metadata.ResourceID != "p1" {
		t.Fatalf("unexpected notification: %+v", n)
	}
}

func TestApprovePet_AdminOnly(t *testing.T) {
	repo := newFakeRepo(pet("p1", false))
	uc := ucPet.NewApprovePet(repo, notify.NewDispatcher(&recordingSink{}, logger.Discard()))

	if _, err := uc.Execute(context.Background(), owner, "p1"); httperr.KindOf(err) != httperr.KindUnauthorized {
		t.Fatalf("expected forbidden for owner, got %v", err)
	}
}

func TestApprovePet_NotificationFailureIsNotFatal(t *testing.T) {
	repo := newFakeRepo(pet("p1", false))
	sink := &recordingSink{err: errors.New("notifications table locked")}
	uc := ucPet.NewApprovePet(repo, notify.NewDispatcher(sink, logger.Discard()))

	p, err := uc.Execute(context.Background(), admin, "p1")
	if err != nil {
		t.Fatalf("expected success despite notification failure, got %v", err)
	}
	stored, _ := repo.GetPet(context.Background(), "p1")
	if !p.Approved || !stored.Approved {
		t.Fatal("expected approval persisted")
	}
}

func TestBulkApprove_SkipsAlreadyApprovedButNotifiesOthers(t *testing.T) {
	repo := newFakeRepo(pet("p1", true), pet("p2", false), pet("p3", false))
	sink := &recordingSink{}
	uc := ucPet.NewBulkApprovePets(repo, notify.NewDispatcher(sink, logger.Discard()))

	res, err := uc.Execute(context.Background(), admin, []string{"p1", "p2", "p3", "p2", "ghost"})
	if err != nil {
		t.Fatalf("bulk approve: %v", err)
	}
	if res.Modified != 2 || res.Notified != 2 {
		t.Fatalf("expected 2 modified and 2 notified, got %+v", res)
	}

	for _, id := range []string{"p1", "p2", "p3"} {
		p, _ := repo.GetPet(context.Background(), id)
		if !p.Approved {
			t.Fatalf("expected %s approved", id)
		}
	}

	got := map[string]bool{}
	for _, n := range sink.sent {
		got[*n.Metadata.ResourceID] = true
	}
	if !got["p2"] || !got["p3"] || got["p1"] {
		t.Fatalf("unexpected notified pets: %v", got)
	}
}

func TestBulkApprove_RequiresIDs(t *testing.T) {
	uc := ucPet.NewBulkApprovePets(newFakeRepo(), notify.NewDispatcher(&recordingSink{}, logger.Discard()))
	if _, err := uc.Execute(context.Background(), admin, nil); httperr.KindOf(err) != httperr.KindBadRequest {
		t.Fatalf("expected bad request, got %v", err)
	}
}

func TestRejectPet_HidesAndAlwaysNotifies(t *testing.T) {
	repo := newFakeRepo(pet("p1", true))
	sink := &recordingSink{}
	uc := ucPet.NewRejectPet(repo, notify.NewDispatcher(sink, logger.Discard()))

	p, err := uc.Execute(context.Background(), admin, "p1", "photos missing")
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if p.Approved {
		t.Fatal("expected pet hidden after rejection")
	}
	if len(sink.sent) != 1 || sink.sent[0].Metadata.ActionType != "rejected" {
		t.Fatalf("expected one rejection notification, got %+v", sink.sent)
	}
	if want := "Reason: photos missing"; !strings.Contains(sink.sent[0].Message, want) {
		t.Fatalf("expected %q in %q", want, sink.sent[0].Message)
	}
}

type memoryStore struct {
	objects map[string][]byte
}

func (m *memoryStore) Put(_ context.Context, key string, body []byte, _ string) (string, error) {
	m.objects[key] = body
	return "https://cdn.example.com/" + key, nil
}

func TestUploadPetImage(t *testing.T) {
	repo := newFakeRepo(pet("p1", true))
	store := &memoryStore{objects: map[string][]byte{}}
	uc := ucPet.NewUploadPetImage(repo, store)
	ctx := context.Background()

	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 8))); err != nil {
		t.Fatalf("encode: %v", err)
	}

	if _, err := uc.Execute(ctx, other, "p1", bytes.NewReader(buf.Bytes())); httperr.KindOf(err) != httperr.KindUnauthorized {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if _, err := uc.Execute(ctx, owner, "p1", strings.NewReader("plain text")); httperr.KindOf(err) != httperr.KindBadRequest {
		t.Fatalf("expected bad request for non-image, got %v", err)
	}

	p, err := uc.Execute(ctx, owner, "p1", bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if !strings.HasPrefix(p.ImageURL, "https://cdn.example.com/pets/p1/") || !strings.HasSuffix(p.ImageURL, ".webp") {
		t.Fatalf("unexpected image url %q", p.ImageURL)
	}
	if len(store.objects) != 1 {
		t.Fatalf("expected one stored object, got %d", len(store.objects))
	}
}
