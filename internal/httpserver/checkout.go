package httpserver

import (
	"net/http"

	"kabirclub/internal/service/cart"

	"github.com/gin-gonic/gin"
)

// checkout assembles the cart, derives totals and returns the WhatsApp
// handoff. The cart is left untouched so an abandoned draft can be resumed.
func (h handlers) checkout(c *gin.Context) {
	owner := currentUser(c)
	rows, err := h.deps.Cart.Assemble(c.Request.Context(), owner.ID)
	if err != nil {
		writeError(c, err)
		return
	}
	totals := cart.ComputeTotals(rows)
	handoff, err := h.deps.Checkout.BuildHandoff(rows, totals)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": handoff.Message,
		"url":     handoff.URL,
		"totals":  toTotalsResponse(totals),
	})
}
