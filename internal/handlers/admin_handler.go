package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tasmimahana/cse470/internal/httperr"
	"github.com/tasmimahana/cse470/internal/httpresp"
	"github.com/tasmimahana/cse470/internal/infra/repository"
	"github.com/tasmimahana/cse470/internal/middleware"
	"github.com/tasmimahana/cse470/internal/query"
	ucUser "github.com/tasmimahana/cse470/internal/usecase/user"
)

// AdminHandler covers the user management and dashboard routes. Pet
// moderation and booking/donation administration live on their own
// handlers and are mounted under /admin as well.
type AdminHandler struct {
	users  *repository.UserGormRepository
	stats  *repository.StatsGormRepository
	role   *ucUser.UpdateRole
	remove *ucUser.DeleteUser
	now    func() time.Time
}

func NewAdminHandler(
	users *repository.UserGormRepository,
	stats *repository.StatsGormRepository,
	role *ucUser.UpdateRole,
	remove *ucUser.DeleteUser,
) *AdminHandler {
	return &AdminHandler{users: users, stats: stats, role: role, remove: remove, now: time.Now}
}

type UpdateRoleRequest struct {
	Role string `json:"role"`
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.stats.Dashboard(c.Request.Context(), h.now())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"stats": stats})
}

func (h *AdminHandler) Users(c *gin.Context) {
	spec := query.Build(c.Request.URL.Query(), query.UserRules)

	users, err := h.users.ListUsers(c.Request.Context(), spec, 0)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, users)
}

func (h *AdminHandler) User(c *gin.Context) {
	id := c.Param("id")
	u, err := h.users.GetUser(c.Request.Context(), id)
	if err != nil {
		if httperr.IsRecordNotFound(err) {
			httperr.NotFound(c, "user_not_found", "No user with id: "+id)
			return
		}
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"user": u})
}

func (h *AdminHandler) UpdateRole(c *gin.Context) {
	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	u, err := h.role.Execute(c.Request.Context(), middleware.MustPrincipal(c), c.Param("id"), req.Role)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"user": u})
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	if err := h.remove.Execute(c.Request.Context(), middleware.MustPrincipal(c), c.Param("id")); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, "User removed successfully")
}
