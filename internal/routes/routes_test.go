package routes_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tasmimahana/cse470/internal/config"
	dbpkg "github.com/tasmimahana/cse470/internal/db"
	"github.com/tasmimahana/cse470/internal/logger"
	"github.com/tasmimahana/cse470/internal/mailer"
	"github.com/tasmimahana/cse470/internal/models"
	"github.com/tasmimahana/cse470/internal/routes"
)

type testApp struct {
	t  *testing.T
	r  *gin.Engine
	db *gorm.DB
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := dbpkg.Open("sqlite:file:" + uuid.NewString() + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	cfg := &config.Config{
		JWTSecret:       "test-secret",
		AccessTokenTTL:  time.Hour,
		RefreshTokenTTL: 24 * time.Hour,
		ClientOrigin:    "http://localhost:3000",
	}

	r := gin.New()
	routes.RegisterRoutes(r, routes.Deps{
		DB:     db,
		Config: cfg,
		Logger: logger.Discard(),
		Mailer: mailer.NewLogMailer(logger.Discard()),
	})

	return &testApp{t: t, r: r, db: db}
}

func (a *testApp) do(method, path, token string, body any) *httptest.ResponseRecorder {
	a.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			a.t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.r.ServeHTTP(w, req)
	return w
}

func (a *testApp) expect(w *httptest.ResponseRecorder, status int) map[string]any {
	a.t.Helper()
	if w.Code != status {
		a.t.Fatalf("expected status %d, got %d: %s", status, w.Code, w.Body.String())
	}
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		a.t.Fatalf("decode response: %v", err)
	}
	return out
}

// signup registers, verifies through the stored token and logs in.
func (a *testApp) signup(name, email string) (token, id string) {
	a.t.Helper()

	a.expect(a.do(http.MethodPost, "/api/auth/register", "", gin.H{
		"name": name, "email": email, "password": "secret123",
	}), http.StatusCreated)

	var u models.User
	if err := a.db.Where("email = ?", email).First(&u).Error; err != nil {
		a.t.Fatalf("load user: %v", err)
	}

	a.expect(a.do(http.MethodPost, "/api/auth/verify-email", "", gin.H{
		"email": email, "verificationToken": u.VerificationToken,
	}), http.StatusOK)

	out := a.expect(a.do(http.MethodPost, "/api/auth/login", "", gin.H{
		"email": email, "password": "secret123",
	}), http.StatusOK)

	return out["token"].(string), u.ID
}

func object(t *testing.T, v any) map[string]any {
	t.Helper()
	m, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("expected object, got %T", v)
	}
	return m
}

func TestAdminConfirmNotifiesBookingOwner(t *testing.T) {
	app := newTestApp(t)

	adminToken, _ := app.signup("Ana", "ana@example.com")
	userToken, _ := app.signup("Uma", "uma@example.com")

	me := app.expect(app.do(http.MethodGet, "/api/auth/me", adminToken, nil), http.StatusOK)
	if object(t, me["user"])["role"] != "admin" {
		t.Fatalf("expected first user admin, got %v", me["user"])
	}

	created := app.expect(app.do(http.MethodPost, "/api/pets", userToken, gin.H{
		"name": "Buddy", "species": "dog",
	}), http.StatusCreated)
	petID := object(t, created["pet"])["id"].(string)

	catalogue := app.expect(app.do(http.MethodGet, "/api/pets?approved=true", "", nil), http.StatusOK)
	if catalogue["count"].(float64) != 0 {
		t.Fatalf("expected unapproved pet hidden from catalogue, got %v", catalogue)
	}

	app.expect(app.do(http.MethodGet, "/api/pets/not-a-uuid", "", nil), http.StatusNotFound)
	app.expect(app.do(http.MethodPost, "/api/pets/not-a-uuid/approve", adminToken, nil), http.StatusNotFound)
	app.expect(app.do(http.MethodPost, "/api/pets/"+petID+"/approve", userToken, nil), http.StatusForbidden)
	app.expect(app.do(http.MethodPost, "/api/pets/"+petID+"/approve", adminToken, nil), http.StatusOK)

	booked := app.expect(app.do(http.MethodPost, "/api/bookings", userToken, gin.H{
		"pet": petID, "serviceType": "veterinary", "date": "2026-11-01",
	}), http.StatusCreated)
	bookingID := object(t, booked["booking"])["id"].(string)

	confirmed := app.expect(app.do(http.MethodPatch, "/api/admin/bookings/"+bookingID+"/confirm", adminToken, nil), http.StatusOK)
	if object(t, confirmed["booking"])["status"] != "confirmed" {
		t.Fatalf("expected confirmed booking, got %v", confirmed)
	}

	unread := app.expect(app.do(http.MethodGet, "/api/notifications?read=false", userToken, nil), http.StatusOK)
	if unread["count"].(float64) != 2 {
		t.Fatalf("expected approval and confirmation notifications, got %v", unread)
	}

	var found bool
	for _, raw := range unread["data"].([]any) {
		n := object(t, raw)
		meta := object(t, n["metadata"])
		if meta["actionType"] != "confirmed" {
			continue
		}
		found = true
		msg := n["message"].(string)
		if !strings.Contains(msg, "Buddy") || !strings.Contains(msg, "confirmed") {
			t.Fatalf("unexpected message %q", msg)
		}
		if meta["resourceId"] != bookingID || meta["adminName"] != "Ana" {
			t.Fatalf("unexpected metadata %v", meta)
		}
	}
	if !found {
		t.Fatal("no confirmation notification")
	}

	// admin's own mark-all-read leaves the user's inbox alone
	app.expect(app.do(http.MethodPatch, "/api/notifications/mark-all-read", adminToken, nil), http.StatusOK)
	count := app.expect(app.do(http.MethodGet, "/api/notifications/unread-count", userToken, nil), http.StatusOK)
	if count["unreadCount"].(float64) != 2 {
		t.Fatalf("expected user unread untouched, got %v", count)
	}

	app.expect(app.do(http.MethodPatch, "/api/notifications/mark-all-read", userToken, nil), http.StatusOK)
	count = app.expect(app.do(http.MethodGet, "/api/notifications/unread-count", userToken, nil), http.StatusOK)
	if count["unreadCount"].(float64) != 0 {
		t.Fatalf("expected no unread after mark-all-read, got %v", count)
	}
}

func TestOwnerMayOnlyCancelBooking(t *testing.T) {
	app := newTestApp(t)

	_, _ = app.signup("Ana", "ana@example.com")
	userToken, _ := app.signup("Uma", "uma@example.com")
	otherToken, _ := app.signup("Otto", "otto@example.com")

	created := app.expect(app.do(http.MethodPost, "/api/pets", userToken, gin.H{
		"name": "Rex", "species": "dog",
	}), http.StatusCreated)
	petID := object(t, created["pet"])["id"].(string)

	booked := app.expect(app.do(http.MethodPost, "/api/bookings", userToken, gin.H{
		"pet": petID, "serviceType": "grooming", "date": "2026-11-01T10:00",
	}), http.StatusCreated)
	bookingID := object(t, booked["booking"])["id"].(string)

	app.expect(app.do(http.MethodGet, "/api/bookings/"+bookingID, otherToken, nil), http.StatusForbidden)
	app.expect(app.do(http.MethodPatch, "/api/bookings/"+bookingID, userToken, gin.H{"status": "confirmed"}), http.StatusForbidden)

	cancelled := app.expect(app.do(http.MethodPatch, "/api/bookings/"+bookingID+"/cancel", userToken, nil), http.StatusOK)
	if object(t, cancelled["booking"])["status"] != "cancelled" {
		t.Fatalf("expected cancelled, got %v", cancelled)
	}

	// owner-initiated changes produce no notification
	unread := app.expect(app.do(http.MethodGet, "/api/notifications/unread-count", userToken, nil), http.StatusOK)
	if unread["unreadCount"].(float64) != 0 {
		t.Fatalf("expected no notifications, got %v", unread)
	}
}

func TestBulkApproveSkipsApprovedPets(t *testing.T) {
	app := newTestApp(t)

	adminToken, _ := app.signup("Ana", "ana@example.com")
	userToken, _ := app.signup("Uma", "uma@example.com")

	var ids []string
	for _, name := range []string{"Buddy", "Max"} {
		out := app.expect(app.do(http.MethodPost, "/api/pets", userToken, gin.H{
			"name": name, "species": "dog",
		}), http.StatusCreated)
		ids = append(ids, object(t, out["pet"])["id"].(string))
	}

	app.expect(app.do(http.MethodPost, "/api/pets/"+ids[0]+"/approve", adminToken, nil), http.StatusOK)

	pending := app.expect(app.do(http.MethodGet, "/api/admin/pets/pending", adminToken, nil), http.StatusOK)
	if pending["count"].(float64) != 1 {
		t.Fatalf("expected one pending pet, got %v", pending)
	}

	app.expect(app.do(http.MethodPatch, "/api/admin/pets/bulk-approve", adminToken, gin.H{"petIds": []string{}}), http.StatusBadRequest)

	// a malformed id is ignored like an unknown one
	res := app.expect(app.do(http.MethodPatch, "/api/admin/pets/bulk-approve", adminToken, gin.H{
		"petIds": append([]string{"not-a-uuid"}, ids...),
	}), http.StatusOK)
	if res["modifiedCount"].(float64) != 1 || res["notified"].(float64) != 1 {
		t.Fatalf("unexpected bulk result %v", res)
	}

	catalogue := app.expect(app.do(http.MethodGet, "/api/pets?approved=true", "", nil), http.StatusOK)
	if catalogue["count"].(float64) != 2 {
		t.Fatalf("expected both pets listed, got %v", catalogue)
	}

	unread := app.expect(app.do(http.MethodGet, "/api/notifications/unread-count", userToken, nil), http.StatusOK)
	if unread["unreadCount"].(float64) != 2 {
		t.Fatalf("expected one notification per approved pet, got %v", unread)
	}
}

func TestAdminRoutesAndUserManagement(t *testing.T) {
	app := newTestApp(t)

	adminToken, adminID := app.signup("Ana", "ana@example.com")
	userToken, userID := app.signup("Uma", "uma@example.com")

	app.expect(app.do(http.MethodGet, "/api/admin/dashboard", "", nil), http.StatusUnauthorized)
	app.expect(app.do(http.MethodGet, "/api/admin/dashboard", userToken, nil), http.StatusForbidden)

	dash := app.expect(app.do(http.MethodGet, "/api/admin/dashboard", adminToken, nil), http.StatusOK)
	if object(t, dash["stats"])["totalUsers"].(float64) != 2 {
		t.Fatalf("unexpected dashboard %v", dash)
	}

	app.expect(app.do(http.MethodDelete, "/api/admin/users/"+adminID, adminToken, nil), http.StatusBadRequest)
	app.expect(app.do(http.MethodPatch, "/api/admin/users/"+userID+"/role", adminToken, gin.H{"role": "owner"}), http.StatusBadRequest)

	promoted := app.expect(app.do(http.MethodPatch, "/api/admin/users/"+userID+"/role", adminToken, gin.H{"role": "admin"}), http.StatusOK)
	if object(t, promoted["user"])["role"] != "admin" {
		t.Fatalf("expected promotion, got %v", promoted)
	}

	admins := app.expect(app.do(http.MethodGet, "/api/admin/users?role=admin", adminToken, nil), http.StatusOK)
	if admins["count"].(float64) != 2 {
		t.Fatalf("expected two admins, got %v", admins)
	}

	sent := app.expect(app.do(http.MethodPost, "/api/notifications", adminToken, gin.H{
		"message": "Maintenance tonight", "type": "system", "broadcast": true,
	}), http.StatusCreated)
	if sent["count"].(float64) != 2 {
		t.Fatalf("expected broadcast to both users, got %v", sent)
	}
}

func TestLoginRequiresVerifiedEmail(t *testing.T) {
	app := newTestApp(t)

	app.expect(app.do(http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Ana", "email": "ana@example.com", "password": "secret123",
	}), http.StatusCreated)

	out := app.expect(app.do(http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "ana@example.com", "password": "secret123",
	}), http.StatusUnauthorized)
	if out["error"] != "email_not_verified" {
		t.Fatalf("unexpected error %v", out)
	}

	app.expect(app.do(http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Ana", "email": "ANA@example.com", "password": "secret123",
	}), http.StatusBadRequest)
}

func TestTrainingResources(t *testing.T) {
	app := newTestApp(t)

	adminToken, _ := app.signup("Ana", "ana@example.com")
	userToken, _ := app.signup("Uma", "uma@example.com")

	app.expect(app.do(http.MethodPost, "/api/training", userToken, gin.H{"title": "Leash basics"}), http.StatusForbidden)
	app.expect(app.do(http.MethodPost, "/api/training", adminToken, gin.H{"category": "walking"}), http.StatusBadRequest)

	for _, body := range []gin.H{
		{"title": "Leash basics", "category": "walking", "description": "First steps"},
		{"title": "Crate training", "category": "home"},
	} {
		app.expect(app.do(http.MethodPost, "/api/training", adminToken, body), http.StatusCreated)
	}

	found := app.expect(app.do(http.MethodGet, "/api/training?search=LEASH", "", nil), http.StatusOK)
	if found["count"].(float64) != 1 {
		t.Fatalf("expected one match, got %v", found)
	}
	id := object(t, found["data"].([]any)[0])["id"].(string)

	cats := app.expect(app.do(http.MethodGet, "/api/training/categories", "", nil), http.StatusOK)
	if len(cats["categories"].([]any)) != 2 {
		t.Fatalf("expected two categories, got %v", cats)
	}

	updated := app.expect(app.do(http.MethodPatch, "/api/training/"+id, adminToken, gin.H{"title": "Leash 101"}), http.StatusOK)
	if object(t, updated["resource"])["title"] != "Leash 101" {
		t.Fatalf("unexpected update %v", updated)
	}

	app.expect(app.do(http.MethodDelete, "/api/training/"+id, adminToken, nil), http.StatusOK)
	app.expect(app.do(http.MethodGet, "/api/training/"+id, "", nil), http.StatusNotFound)
}
