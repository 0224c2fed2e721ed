package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tasmimahana/cse470/internal/auth"
	"github.com/tasmimahana/cse470/internal/httperr"
	"github.com/tasmimahana/cse470/internal/httpresp"
	"github.com/tasmimahana/cse470/internal/middleware"
	ucUser "github.com/tasmimahana/cse470/internal/usecase/user"
)

type AuthHandler struct {
	register *ucUser.Register
	verify   *ucUser.VerifyEmail
	resend   *ucUser.ResendVerification
	login    *ucUser.Login
	logout   *ucUser.Logout
	cookies  *auth.CookieWriter
}

func NewAuthHandler(
	register *ucUser.Register,
	verify *ucUser.VerifyEmail,
	resend *ucUser.ResendVerification,
	login *ucUser.Login,
	logout *ucUser.Logout,
	cookies *auth.CookieWriter,
) *AuthHandler {
	return &AuthHandler{
		register: register,
		verify:   verify,
		resend:   resend,
		login:    login,
		logout:   logout,
		cookies:  cookies,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type VerifyEmailRequest struct {
	Email             string `json:"email"`
	VerificationToken string `json:"verificationToken"`
}

type ResendVerificationRequest struct {
	Email string `json:"email"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	if _, err := h.register.Execute(c.Request.Context(), ucUser.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}); err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, httpresp.MessageResponse{
		Msg: "Success! Please check your email to verify account",
	})
}

func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	if err := h.verify.Execute(c.Request.Context(), req.Email, req.VerificationToken); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, "Email Verified")
}

func (h *AuthHandler) ResendVerification(c *gin.Context) {
	var req ResendVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	if err := h.resend.Execute(c.Request.Context(), req.Email); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, "Verification email sent successfully")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	res, err := h.login.Execute(c.Request.Context(), ucUser.LoginInput{
		Email:     req.Email,
		Password:  req.Password,
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	token, err := h.cookies.Attach(c, res.Principal, res.RefreshToken)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"user":  res.Principal,
		"token": token,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.logout.Execute(c.Request.Context(), middleware.MustPrincipal(c)); err != nil {
		httperr.Respond(c, err)
		return
	}

	h.cookies.Clear(c)
	httpresp.Message(c, "user logged out!")
}

func (h *AuthHandler) Me(c *gin.Context) {
	httpresp.OK(c, gin.H{"user": middleware.MustPrincipal(c)})
}
