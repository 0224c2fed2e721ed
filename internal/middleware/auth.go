package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tasmimahana/cse470/internal/auth"
	"github.com/tasmimahana/cse470/internal/domain/access"
	"github.com/tasmimahana/cse470/internal/httperr"
	"github.com/tasmimahana/cse470/internal/models"
)

const ContextPrincipal = "principal"

// TokenStore looks up the stored refresh credential of a user.
type TokenStore interface {
	FindToken(ctx context.Context, userID string) (*models.Token, error)
}

// Authenticate resolves the caller from, in order: the bearer header, the
// access cookie, the refresh cookie. The refresh path checks the stored
// token and re-issues both cookies.
func Authenticate(tokens *auth.TokenService, cookies *auth.CookieWriter, store TokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if header := c.GetHeader("Authorization"); header != "" {
			parts := strings.SplitN(header, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				p, err := tokens.ParseAccess(strings.TrimSpace(parts[1]))
				if err != nil {
					abortUnauthenticated(c, "invalid_token")
					return
				}
				c.Set(ContextPrincipal, p)
				c.Next()
				return
			}
		}

		if raw, err := c.Cookie(auth.AccessCookie); err == nil && raw != "" {
			if p, err := tokens.ParseAccess(raw); err == nil {
				c.Set(ContextPrincipal, p)
				c.Next()
				return
			}
		}

		raw, err := c.Cookie(auth.RefreshCookie)
		if err != nil || raw == "" {
			abortUnauthenticated(c, "authentication_required")
			return
		}

		p, refresh, err := tokens.ParseRefresh(raw)
		if err != nil {
			abortUnauthenticated(c, "invalid_token")
			return
		}

		stored, err := store.FindToken(c.Request.Context(), p.UserID)
		if err != nil || !stored.IsValid || stored.RefreshToken != refresh {
			abortUnauthenticated(c, "invalid_token")
			return
		}

		if _, err := cookies.Attach(c, p, refresh); err != nil {
			abortUnauthenticated(c, "invalid_token")
			return
		}

		c.Set(ContextPrincipal, p)
		c.Next()
	}
}

// AuthorizeRoles must run after Authenticate.
func AuthorizeRoles(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := PrincipalFrom(c)
		if !ok {
			abortUnauthenticated(c, "authentication_required")
			return
		}
		if !p.HasRole(roles...) {
			httperr.Forbidden(c, "forbidden", "Unauthorized to access this route")
			c.Abort()
			return
		}
		c.Next()
	}
}

func PrincipalFrom(c *gin.Context) (access.Principal, bool) {
	v, ok := c.Get(ContextPrincipal)
	if !ok {
		return access.Principal{}, false
	}
	p, ok := v.(access.Principal)
	return p, ok
}

// MustPrincipal is for handlers mounted behind Authenticate.
func MustPrincipal(c *gin.Context) access.Principal {
	p, _ := PrincipalFrom(c)
	return p
}

func abortUnauthenticated(c *gin.Context, code string) {
	httperr.Unauthenticated(c, code, "Authentication invalid")
	c.Abort()
}
