package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/tasmimahana/cse470/internal/domain/access"
	"github.com/tasmimahana/cse470/internal/httperr"
	"github.com/tasmimahana/cse470/internal/httpresp"
	"github.com/tasmimahana/cse470/internal/infra/repository"
	"github.com/tasmimahana/cse470/internal/middleware"
	"github.com/tasmimahana/cse470/internal/query"
	ucDonation "github.com/tasmimahana/cse470/internal/usecase/donation"
)

type DonationHandler struct {
	donations *repository.DonationGormRepository
	stats     *repository.StatsGormRepository
	create    *ucDonation.CreateDonation
	status    *ucDonation.UpdateDonationStatus
}

func NewDonationHandler(
	donations *repository.DonationGormRepository,
	stats *repository.StatsGormRepository,
	create *ucDonation.CreateDonation,
	status *ucDonation.UpdateDonationStatus,
) *DonationHandler {
	return &DonationHandler{donations: donations, stats: stats, create: create, status: status}
}

type CreateDonationRequest struct {
	Amount float64 `json:"amount"`
	Cause  string  `json:"cause"`
}

type DonationStatusRequest struct {
	PaymentStatus string `json:"paymentStatus"`
}

func (h *DonationHandler) Create(c *gin.Context) {
	var req CreateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	d, err := h.create.Execute(c.Request.Context(), middleware.MustPrincipal(c), req.Amount, req.Cause)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, gin.H{"donation": d})
}

func (h *DonationHandler) Mine(c *gin.Context) {
	donations, err := h.donations.ListDonationsByUser(c.Request.Context(), middleware.MustPrincipal(c).UserID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, donations)
}

func (h *DonationHandler) Get(c *gin.Context) {
	id := c.Param("id")
	d, err := h.donations.GetDonation(c.Request.Context(), id)
	if err != nil {
		if httperr.IsRecordNotFound(err) {
			httperr.NotFound(c, "donation_not_found", "No donation with id: "+id)
			return
		}
		httperr.Respond(c, err)
		return
	}
	if err := access.Authorize(middleware.MustPrincipal(c), d, "view this donation"); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"donation": d})
}

// ======================================================
// ADMIN
// ======================================================

func (h *DonationHandler) List(c *gin.Context) {
	spec := query.Build(c.Request.URL.Query(), query.DonationRules)

	donations, err := h.donations.ListDonations(c.Request.Context(), spec)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, donations)
}

func (h *DonationHandler) Stats(c *gin.Context) {
	stats, err := h.stats.DonationStats(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, stats)
}

func (h *DonationHandler) UpdateStatus(c *gin.Context) {
	var req DonationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	d, err := h.status.Execute(c.Request.Context(), middleware.MustPrincipal(c), c.Param("id"), req.PaymentStatus)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"donation": d})
}
