package httpserver

import (
	"net/http"

	"kabirclub/internal/service/auth"

	"github.com/gin-gonic/gin"
)

func (h handlers) register(c *gin.Context) {
	var in auth.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeValidationError(c, err)
		return
	}
	u, token, err := h.deps.Auth.Register(c.Request.Context(), in)
	if err != nil {
		if isDomainError(err) {
			writeError(c, err)
		} else {
			writeValidationError(c, err)
		}
		return
	}
	h.setSessionCookie(c, token)
	c.JSON(http.StatusCreated, gin.H{"user": u})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h handlers) login(c *gin.Context) {
	var in loginRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		writeValidationError(c, err)
		return
	}
	u, token, err := h.deps.Auth.Login(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	h.setSessionCookie(c, token)
	c.JSON(http.StatusOK, gin.H{"user": u})
}

func (h handlers) logout(c *gin.Context) {
	token, err := c.Cookie(h.deps.SessionCookie)
	if err == nil && token != "" {
		if err := h.deps.Auth.Logout(c.Request.Context(), token); err != nil {
			writeError(c, err)
			return
		}
	}
	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

func (h handlers) me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": currentUser(c)})
}
