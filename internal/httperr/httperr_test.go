package httperr_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/tasmimahana/cse470/internal/httperr"
)

func respond(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	httperr.Respond(c, err)
	return w
}

func TestRespond_StatusByKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"bad request", httperr.ErrBadRequest("x", "x"), http.StatusBadRequest},
		{"not found", httperr.ErrNotFound("x", "x"), http.StatusNotFound},
		{"unauthenticated", httperr.ErrUnauthenticated("x", "x"), http.StatusUnauthorized},
		{"forbidden", httperr.ErrUnauthorized("x", "x"), http.StatusForbidden},
		{"missing row", fmt.Errorf("load: %w", gorm.ErrRecordNotFound), http.StatusNotFound},
		{"malformed uuid", fmt.Errorf("load: %w", &pgconn.PgError{Code: "22P02"}), http.StatusNotFound},
		{"other postgres error", &pgconn.PgError{Code: "57014"}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := respond(tt.err).Code; got != tt.want {
			t.Fatalf("%s: expected %d, got %d", tt.name, tt.want, got)
		}
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if !httperr.IsUniqueViolation(&pgconn.PgError{Code: "23505"}) || !httperr.IsUniqueViolation(gorm.ErrDuplicatedKey) {
		t.Fatal("expected unique violation")
	}
	if httperr.IsUniqueViolation(&pgconn.PgError{Code: "22P02"}) {
		t.Fatal("malformed uuid is not a unique violation")
	}
}
