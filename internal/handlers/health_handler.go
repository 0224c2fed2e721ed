package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/tasmimahana/cse470/internal/httperr"
	"github.com/tasmimahana/cse470/internal/httpresp"
	"github.com/tasmimahana/cse470/internal/middleware"
	ucHealth "github.com/tasmimahana/cse470/internal/usecase/health"
)

type HealthLogHandler struct {
	logs *ucHealth.Logs
}

func NewHealthLogHandler(logs *ucHealth.Logs) *HealthLogHandler {
	return &HealthLogHandler{logs: logs}
}

type HealthLogRequest struct {
	Pet         string   `json:"pet"`
	Vaccination *string  `json:"vaccination"`
	Weight      *float64 `json:"weight"`
	Notes       *string  `json:"notes"`
	Date        *string  `json:"date"`
}

func (r HealthLogRequest) input() (ucHealth.LogInput, error) {
	date, err := optionalDate(r.Date)
	if err != nil {
		return ucHealth.LogInput{}, err
	}
	return ucHealth.LogInput{
		PetID:       r.Pet,
		Vaccination: r.Vaccination,
		Weight:      r.Weight,
		Notes:       r.Notes,
		Date:        date,
	}, nil
}

func (h *HealthLogHandler) ListForPet(c *gin.Context) {
	logs, err := h.logs.ListForPet(c.Request.Context(), middleware.MustPrincipal(c), c.Param("petId"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, logs)
}

func (h *HealthLogHandler) Get(c *gin.Context) {
	log, err := h.logs.Get(c.Request.Context(), middleware.MustPrincipal(c), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"healthLog": log})
}

func (h *HealthLogHandler) Create(c *gin.Context) {
	var req HealthLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}
	in, err := req.input()
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date")
		return
	}

	log, err := h.logs.Create(c.Request.Context(), middleware.MustPrincipal(c), in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, gin.H{"healthLog": log})
}

func (h *HealthLogHandler) Update(c *gin.Context) {
	var req HealthLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}
	in, err := req.input()
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date")
		return
	}

	log, err := h.logs.Update(c.Request.Context(), middleware.MustPrincipal(c), c.Param("id"), in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"healthLog": log})
}

func (h *HealthLogHandler) Delete(c *gin.Context) {
	if err := h.logs.Delete(c.Request.Context(), middleware.MustPrincipal(c), c.Param("id")); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, "Health log removed successfully")
}
