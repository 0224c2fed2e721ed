package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/tasmimahana/cse470/internal/auth"
	"github.com/tasmimahana/cse470/internal/domain/access"
	"github.com/tasmimahana/cse470/internal/httperr"
	"github.com/tasmimahana/cse470/internal/httpresp"
	"github.com/tasmimahana/cse470/internal/infra/repository"
	"github.com/tasmimahana/cse470/internal/middleware"
	ucUser "github.com/tasmimahana/cse470/internal/usecase/user"
)

// UserHandler serves the caller's own account.
type UserHandler struct {
	users    *repository.UserGormRepository
	stats    *repository.StatsGormRepository
	profile  *ucUser.UpdateProfile
	password *ucUser.ChangePassword
	tokens   *auth.TokenService
}

func NewUserHandler(
	users *repository.UserGormRepository,
	stats *repository.StatsGormRepository,
	profile *ucUser.UpdateProfile,
	password *ucUser.ChangePassword,
	tokens *auth.TokenService,
) *UserHandler {
	return &UserHandler{
		users:    users,
		stats:    stats,
		profile:  profile,
		password: password,
		tokens:   tokens,
	}
}

type UpdateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

func (h *UserHandler) Profile(c *gin.Context) {
	u, err := h.users.GetUser(c.Request.Context(), middleware.MustPrincipal(c).UserID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, gin.H{"user": u})
}

// UpdateProfile answers with a fresh access token since name and email are
// part of its claims.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	u, err := h.profile.Execute(c.Request.Context(), middleware.MustPrincipal(c), req.Name, req.Email)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	p := access.PrincipalFromUser(u)
	token, err := h.tokens.IssueAccess(p)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"user": p, "token": token})
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	if err := h.password.Execute(c.Request.Context(), middleware.MustPrincipal(c), req.OldPassword, req.NewPassword); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, "Password updated successfully")
}

func (h *UserHandler) Dashboard(c *gin.Context) {
	d, err := h.stats.UserDashboard(c.Request.Context(), middleware.MustPrincipal(c).UserID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, d)
}
