package httpserver

import (
	"kabirclub/internal/domain"

	"github.com/gin-gonic/gin"
)

const contextUserKey = "currentUser"

// requireAuth resolves the session cookie into a user and aborts with 401
// when that fails. Handlers behind it read the user via currentUser and
// pass its id down as the explicit owner key.
func (h handlers) requireAuth(c *gin.Context) {
	token, err := c.Cookie(h.deps.SessionCookie)
	if err != nil {
		writeError(c, domain.ErrNotAuthenticated)
		c.Abort()
		return
	}
	u, err := h.deps.Auth.ResolveOwner(c.Request.Context(), token)
	if err != nil {
		writeError(c, err)
		c.Abort()
		return
	}
	c.Set(contextUserKey, u)
	c.Next()
}

// requireAdmin must run after requireAuth.
func (h handlers) requireAdmin(c *gin.Context) {
	u := currentUser(c)
	if u == nil || u.Role != domain.RoleAdmin {
		writeError(c, domain.ErrNotAuthorized)
		c.Abort()
		return
	}
	c.Next()
}

func currentUser(c *gin.Context) *domain.User {
	v, ok := c.Get(contextUserKey)
	if !ok {
		return nil
	}
	u, ok := v.(*domain.User)
	if !ok {
		return nil
	}
	return u
}

func (h handlers) setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(h.deps.SessionCookie, token, h.deps.Auth.SessionTTLSeconds(), "/", "", false, true)
}

func (h handlers) clearSessionCookie(c *gin.Context) {
	c.SetCookie(h.deps.SessionCookie, "", -1, "/", "", false, true)
}
