package httpserver

import (
	"net/http"

	"kabirclub/internal/service/engagement"

	"github.com/gin-gonic/gin"
)

func (h handlers) joinWaitlist(c *gin.Context) {
	var in engagement.JoinWaitlistInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeValidationError(c, err)
		return
	}
	entry, err := h.deps.Engagement.JoinWaitlist(c.Request.Context(), in)
	if err != nil {
		if isDomainError(err) {
			writeError(c, err)
		} else {
			writeValidationError(c, err)
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"entry": entry})
}

func (h handlers) submitContact(c *gin.Context) {
	var in engagement.ContactInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeValidationError(c, err)
		return
	}
	msg, err := h.deps.Engagement.SubmitContact(c.Request.Context(), in)
	if err != nil {
		if isDomainError(err) {
			writeError(c, err)
		} else {
			writeValidationError(c, err)
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": msg})
}
