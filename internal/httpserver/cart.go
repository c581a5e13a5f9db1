package httpserver

import (
	"net/http"
	"strconv"

	"kabirclub/internal/service/cart"

	"github.com/gin-gonic/gin"
)

// getCart assembles the cart against the live catalog and derives totals in
// the same request, so the response is always internally consistent.
func (h handlers) getCart(c *gin.Context) {
	owner := currentUser(c)
	rows, err := h.deps.Cart.Assemble(c.Request.Context(), owner.ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"items":  rows,
		"totals": toTotalsResponse(cart.ComputeTotals(rows)),
	})
}

func (h handlers) addToCart(c *gin.Context) {
	owner := currentUser(c)
	var cmd cart.AddLineItemCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		writeValidationError(c, err)
		return
	}
	item, err := h.deps.Cart.Add(c.Request.Context(), owner.ID, cmd)
	if err != nil {
		if isDomainError(err) {
			writeError(c, err)
		} else {
			writeValidationError(c, err)
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"item": item})
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h handlers) updateCartItem(c *gin.Context) {
	owner := currentUser(c)
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid line item id"})
		return
	}
	var in updateQuantityRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		writeValidationError(c, err)
		return
	}
	item, err := h.deps.Cart.SetQuantity(c.Request.Context(), owner.ID, id, in.Quantity)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

func (h handlers) removeCartItem(c *gin.Context) {
	owner := currentUser(c)
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid line item id"})
		return
	}
	if err := h.deps.Cart.Remove(c.Request.Context(), owner.ID, id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h handlers) clearCart(c *gin.Context) {
	owner := currentUser(c)
	if err := h.deps.Cart.Clear(c.Request.Context(), owner.ID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
