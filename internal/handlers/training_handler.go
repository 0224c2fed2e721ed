package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tasmimahana/cse470/internal/httperr"
	"github.com/tasmimahana/cse470/internal/httpresp"
	"github.com/tasmimahana/cse470/internal/infra/repository"
	"github.com/tasmimahana/cse470/internal/models"
	"github.com/tasmimahana/cse470/internal/query"
)

// TrainingHandler has no use case layer: resources carry no ownership and
// no state, and writes are gated by the admin route group.
type TrainingHandler struct {
	repo *repository.TrainingGormRepository
}

func NewTrainingHandler(repo *repository.TrainingGormRepository) *TrainingHandler {
	return &TrainingHandler{repo: repo}
}

type CreateTrainingRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	VideoURL    string `json:"videoUrl" binding:"omitempty,url"`
}

type UpdateTrainingRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	VideoURL    *string `json:"videoUrl" binding:"omitempty,url"`
}

func (h *TrainingHandler) List(c *gin.Context) {
	spec := query.Build(c.Request.URL.Query(), query.TrainingRules)

	list, err := h.repo.List(c.Request.Context(), spec)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, list)
}

func (h *TrainingHandler) Categories(c *gin.Context) {
	cats, err := h.repo.Categories(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"categories": cats})
}

func (h *TrainingHandler) Get(c *gin.Context) {
	t, ok := h.load(c)
	if !ok {
		return
	}

	httpresp.OK(c, gin.H{"resource": t})
}

func (h *TrainingHandler) Create(c *gin.Context) {
	var req CreateTrainingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	t := &models.TrainingResource{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Category:    strings.TrimSpace(req.Category),
		VideoURL:    req.VideoURL,
	}
	if t.Title == "" {
		httperr.BadRequest(c, "title_required", "Please provide title")
		return
	}
	if err := h.repo.Create(c.Request.Context(), t); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, gin.H{"resource": t})
}

func (h *TrainingHandler) Update(c *gin.Context) {
	var req UpdateTrainingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	t, ok := h.load(c)
	if !ok {
		return
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			httperr.BadRequest(c, "title_required", "Please provide title")
			return
		}
		t.Title = title
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.Category != nil {
		t.Category = strings.TrimSpace(*req.Category)
	}
	if req.VideoURL != nil {
		t.VideoURL = *req.VideoURL
	}

	if err := h.repo.Update(c.Request.Context(), t); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"resource": t})
}

func (h *TrainingHandler) Delete(c *gin.Context) {
	if _, ok := h.load(c); !ok {
		return
	}
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, "Training resource removed successfully")
}

func (h *TrainingHandler) load(c *gin.Context) (*models.TrainingResource, bool) {
	id := c.Param("id")
	t, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		if httperr.IsRecordNotFound(err) {
			httperr.NotFound(c, "training_not_found", "No training resource with id: "+id)
			return nil, false
		}
		httperr.Respond(c, err)
		return nil, false
	}
	return t, true
}
