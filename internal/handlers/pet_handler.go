package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tasmimahana/cse470/internal/httperr"
	"github.com/tasmimahana/cse470/internal/httpresp"
	"github.com/tasmimahana/cse470/internal/infra/repository"
	"github.com/tasmimahana/cse470/internal/middleware"
	"github.com/tasmimahana/cse470/internal/models"
	"github.com/tasmimahana/cse470/internal/query"
	ucPet "github.com/tasmimahana/cse470/internal/usecase/pet"
)

const maxImageBytes = 10 << 20

// ======================================================
// HANDLER
// ======================================================

type PetHandler struct {
	pets    *repository.PetGormRepository
	create  *ucPet.CreatePet
	update  *ucPet.UpdatePet
	remove  *ucPet.DeletePet
	approve *ucPet.ApprovePet
	reject  *ucPet.RejectPet
	bulk    *ucPet.BulkApprovePets
	// upload is nil when object storage is not configured.
	upload *ucPet.UploadPetImage
}

type PetUseCases struct {
	Create      *ucPet.CreatePet
	Update      *ucPet.UpdatePet
	Delete      *ucPet.DeletePet
	Approve     *ucPet.ApprovePet
	Reject      *ucPet.RejectPet
	BulkApprove *ucPet.BulkApprovePets
	Upload      *ucPet.UploadPetImage
}

func NewPetHandler(pets *repository.PetGormRepository, uc PetUseCases) *PetHandler {
	return &PetHandler{
		pets:    pets,
		create:  uc.Create,
		update:  uc.Update,
		remove:  uc.Delete,
		approve: uc.Approve,
		reject:  uc.Reject,
		bulk:    uc.BulkApprove,
		upload:  uc.Upload,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreatePetRequest struct {
	Name        string `json:"name"`
	Species     string `json:"species"`
	Breed       string `json:"breed"`
	Age         *int   `json:"age"`
	Gender      string `json:"gender"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Status      string `json:"status"`
}

type UpdatePetRequest struct {
	Name        *string `json:"name"`
	Species     *string `json:"species"`
	Breed       *string `json:"breed"`
	Age         *int    `json:"age"`
	Gender      *string `json:"gender"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	Status      *string `json:"status"`
}

type RejectPetRequest struct {
	Reason string `json:"reason"`
}

type BulkApproveRequest struct {
	PetIDs []string `json:"petIds"`
}

// ======================================================
// READ
// ======================================================

// List is public. Filters apply as given; the adoption catalogue passes
// approved=true.
func (h *PetHandler) List(c *gin.Context) {
	spec := query.Build(c.Request.URL.Query(), query.PetRules)

	pets, err := h.pets.ListPets(c.Request.Context(), spec)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, models.PetViews(pets))
}

func (h *PetHandler) Mine(c *gin.Context) {
	pets, err := h.pets.ListPetsByOwner(c.Request.Context(), middleware.MustPrincipal(c).UserID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, models.PetViews(pets))
}

func (h *PetHandler) Get(c *gin.Context) {
	id := c.Param("id")
	p, err := h.pets.GetPet(c.Request.Context(), id)
	if err != nil {
		if httperr.IsRecordNotFound(err) {
			httperr.NotFound(c, "pet_not_found", "No pet with id: "+id)
			return
		}
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"pet": p.View()})
}

func (h *PetHandler) Pending(c *gin.Context) {
	pets, err := h.pets.ListPendingPets(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, models.PetViews(pets))
}

// ======================================================
// WRITE
// ======================================================

func (h *PetHandler) Create(c *gin.Context) {
	var req CreatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	p, err := h.create.Execute(c.Request.Context(), middleware.MustPrincipal(c), ucPet.CreatePetInput{
		Name:        req.Name,
		Species:     req.Species,
		Breed:       req.Breed,
		Age:         req.Age,
		Gender:      req.Gender,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Status:      req.Status,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, gin.H{"pet": p.View()})
}

func (h *PetHandler) Update(c *gin.Context) {
	var req UpdatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	p, err := h.update.Execute(c.Request.Context(), middleware.MustPrincipal(c), c.Param("id"), ucPet.UpdatePetInput{
		Name:        req.Name,
		Species:     req.Species,
		Breed:       req.Breed,
		Age:         req.Age,
		Gender:      req.Gender,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Status:      req.Status,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"pet": p.View()})
}

func (h *PetHandler) Delete(c *gin.Context) {
	if err := h.remove.Execute(c.Request.Context(), middleware.MustPrincipal(c), c.Param("id")); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, "Pet removed successfully")
}

func (h *PetHandler) UploadImage(c *gin.Context) {
	if h.upload == nil {
		httperr.Write(c, http.StatusServiceUnavailable, "storage_unavailable", "Image uploads are not configured")
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImageBytes)
	file, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "image_required", "Please upload an image file in field \"image\"")
		return
	}
	f, err := file.Open()
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	defer f.Close()

	p, err := h.upload.Execute(c.Request.Context(), middleware.MustPrincipal(c), c.Param("id"), f)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"pet": p.View()})
}

// ======================================================
// MODERATION
// ======================================================

func (h *PetHandler) Approve(c *gin.Context) {
	p, err := h.approve.Execute(c.Request.Context(), middleware.MustPrincipal(c), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"pet": p.View()})
}

func (h *PetHandler) Reject(c *gin.Context) {
	var req RejectPetRequest
	// the reason is optional, an empty body is fine
	_ = c.ShouldBindJSON(&req)

	p, err := h.reject.Execute(c.Request.Context(), middleware.MustPrincipal(c), c.Param("id"), req.Reason)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"pet": p.View()})
}

func (h *PetHandler) BulkApprove(c *gin.Context) {
	var req BulkApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	res, err := h.bulk.Execute(c.Request.Context(), middleware.MustPrincipal(c), req.PetIDs)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"msg":           "Pets approved successfully",
		"modifiedCount": res.Modified,
		"notified":      res.Notified,
	})
}
