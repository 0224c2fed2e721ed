package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tasmimahana/cse470/internal/domain/access"
)

const (
	AccessCookie  = "accessToken"
	RefreshCookie = "refreshToken"
)

type CookieWriter struct {
	tokens *TokenService
	secure bool
}

func NewCookieWriter(tokens *TokenService, secure bool) *CookieWriter {
	return &CookieWriter{tokens: tokens, secure: secure}
}

// Attach issues a fresh credential pair and sets both cookies. It returns
// the access token so handlers can also send it in the body.
func (w *CookieWriter) Attach(c *gin.Context, p access.Principal, refreshToken string) (string, error) {
	accessToken, err := w.tokens.IssueAccess(p)
	if err != nil {
		return "", err
	}
	refreshJWT, err := w.tokens.IssueRefresh(p, refreshToken)
	if err != nil {
		return "", err
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(AccessCookie, accessToken, int(w.tokens.AccessTTL().Seconds()), "/", "", w.secure, true)
	c.SetCookie(RefreshCookie, refreshJWT, int(w.tokens.RefreshTTL().Seconds()), "/", "", w.secure, true)
	return accessToken, nil
}

func (w *CookieWriter) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(AccessCookie, "", -1, "/", "", w.secure, true)
	c.SetCookie(RefreshCookie, "", -1, "/", "", w.secure, true)
}
