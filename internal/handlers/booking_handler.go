package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/tasmimahana/cse470/internal/domain/access"
	"github.com/tasmimahana/cse470/internal/httperr"
	"github.com/tasmimahana/cse470/internal/httpresp"
	"github.com/tasmimahana/cse470/internal/infra/repository"
	"github.com/tasmimahana/cse470/internal/middleware"
	"github.com/tasmimahana/cse470/internal/query"
	ucBooking "github.com/tasmimahana/cse470/internal/usecase/booking"
)

type BookingHandler struct {
	bookings *repository.BookingGormRepository
	create   *ucBooking.CreateBooking
	update   *ucBooking.UpdateBooking
	cancel   *ucBooking.CancelBooking
	confirm  *ucBooking.ConfirmBooking
}

func NewBookingHandler(
	bookings *repository.BookingGormRepository,
	create *ucBooking.CreateBooking,
	update *ucBooking.UpdateBooking,
	cancel *ucBooking.CancelBooking,
	confirm *ucBooking.ConfirmBooking,
) *BookingHandler {
	return &BookingHandler{
		bookings: bookings,
		create:   create,
		update:   update,
		cancel:   cancel,
		confirm:  confirm,
	}
}

type CreateBookingRequest struct {
	Pet          string `json:"pet"`
	PetID        string `json:"petId"`
	ServiceType  string `json:"serviceType"`
	ProviderName string `json:"providerName"`
	Date         string `json:"date"`
	Notes        string `json:"notes"`
}

type UpdateBookingRequest struct {
	ServiceType  *string `json:"serviceType"`
	ProviderName *string `json:"providerName"`
	Date         *string `json:"date"`
	Notes        *string `json:"notes"`
	Status       *string `json:"status"`
	Reason       string  `json:"reason"`
}

type ReasonRequest struct {
	Reason string `json:"reason"`
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	petID := req.Pet
	if petID == "" {
		petID = req.PetID
	}

	in := ucBooking.CreateBookingInput{
		PetID:        petID,
		ServiceType:  req.ServiceType,
		ProviderName: req.ProviderName,
		Notes:        req.Notes,
	}
	if req.Date != "" {
		d, err := parseClientDate(req.Date)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Invalid date: "+req.Date)
			return
		}
		in.Date = d
	}

	b, err := h.create.Execute(c.Request.Context(), middleware.MustPrincipal(c), in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, gin.H{"booking": b})
}

func (h *BookingHandler) Mine(c *gin.Context) {
	bookings, err := h.bookings.ListBookingsByUser(c.Request.Context(), middleware.MustPrincipal(c).UserID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, bookings)
}

func (h *BookingHandler) Get(c *gin.Context) {
	id := c.Param("id")
	b, err := h.bookings.GetBooking(c.Request.Context(), id)
	if err != nil {
		if httperr.IsRecordNotFound(err) {
			httperr.NotFound(c, "booking_not_found", "No booking with id: "+id)
			return
		}
		httperr.Respond(c, err)
		return
	}
	if err := access.Authorize(middleware.MustPrincipal(c), b, "view this booking"); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"booking": b})
}

func (h *BookingHandler) Update(c *gin.Context) {
	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	date, err := optionalDate(req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date: "+*req.Date)
		return
	}

	b, err := h.update.Execute(c.Request.Context(), middleware.MustPrincipal(c), c.Param("id"), ucBooking.UpdateBookingInput{
		ServiceType:  req.ServiceType,
		ProviderName: req.ProviderName,
		Date:         date,
		Notes:        req.Notes,
		Status:       req.Status,
		Reason:       req.Reason,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"booking": b})
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	var req ReasonRequest
	_ = c.ShouldBindJSON(&req)

	b, err := h.cancel.Execute(c.Request.Context(), middleware.MustPrincipal(c), c.Param("id"), req.Reason)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"booking": b})
}

// ======================================================
// ADMIN
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	spec := query.Build(c.Request.URL.Query(), query.BookingRules)

	bookings, err := h.bookings.ListBookings(c.Request.Context(), spec)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, bookings)
}

func (h *BookingHandler) Confirm(c *gin.Context) {
	b, err := h.confirm.Execute(c.Request.Context(), middleware.MustPrincipal(c), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"booking": b})
}
