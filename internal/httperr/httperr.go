package httperr

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type HTTPError struct {
	Code    string `json:"error"`
	Message string `json:"msg"`
	Details string `json:"details,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

// InvalidRequest answers a failed body/query bind.
func InvalidRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, HTTPError{
		Code:    "invalid_request",
		Message: "Invalid request payload",
		Details: err.Error(),
	})
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthenticated(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// Respond maps any error returned by a use case or store to its HTTP answer.
// Errors outside the taxonomy become a generic 500.
func Respond(c *gin.Context, err error) {
	var be BusinessError
	if errors.As(err, &be) {
		msg := be.Message
		if msg == "" {
			msg = be.Code
		}
		Write(c, be.Kind.Status(), be.Code, msg)
		return
	}

	if IsRecordNotFound(err) {
		NotFound(c, "not_found", "Resource not found")
		return
	}

	slog.Error("unhandled request error",
		slog.String("method", c.Request.Method),
		slog.String("path", c.FullPath()),
		slog.Any("error", err),
	)
	Internal(c, "internal_error", "Something went wrong, try again later")
}

// IsRecordNotFound also covers postgres rejecting a malformed uuid
// (22P02): such an id cannot name any row.
func IsRecordNotFound(err error) bool {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "22P02"
	}
	return false
}

// IsUniqueViolation detects a duplicate key from either the translated gorm
// error or the raw postgres error code.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
