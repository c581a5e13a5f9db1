package httpserver

import (
	"errors"
	"net/http"

	"kabirclub/internal/domain"
	"kabirclub/internal/service/auth"

	"github.com/gin-gonic/gin"
)

// writeError maps service errors onto HTTP statuses. Anything unmapped is
// a 500 with a generic body so internals never leak to clients.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, domain.ErrNotAuthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "not authorized"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "already exists"})
	case errors.Is(err, domain.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be at least 1"})
	case errors.Is(err, domain.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// isDomainError reports whether writeError has a specific status for err;
// validation errors from services fall through to a 400 with the message.
func isDomainError(err error) bool {
	return errors.Is(err, domain.ErrNotAuthenticated) ||
		errors.Is(err, auth.ErrInvalidCredentials) ||
		errors.Is(err, domain.ErrNotAuthorized) ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrAlreadyExists) ||
		errors.Is(err, domain.ErrInvalidQuantity) ||
		errors.Is(err, domain.ErrEmptyCart)
}

func writeValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// totalsResponse renders exact decimal totals as fixed two-decimal strings.
type totalsResponse struct {
	Subtotal   string `json:"subtotal"`
	Shipping   string `json:"shipping"`
	Tax        string `json:"tax"`
	GrandTotal string `json:"grandTotal"`
}

func toTotalsResponse(t domain.OrderTotals) totalsResponse {
	return totalsResponse{
		Subtotal:   t.Subtotal.StringFixed(2),
		Shipping:   t.Shipping.StringFixed(2),
		Tax:        t.Tax.StringFixed(2),
		GrandTotal: t.GrandTotal.StringFixed(2),
	}
}
