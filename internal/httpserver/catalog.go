package httpserver

import (
	"net/http"
	"strconv"

	"kabirclub/internal/service/catalog"

	"github.com/gin-gonic/gin"
)

func (h handlers) listCategories(c *gin.Context) {
	categories, err := h.deps.Catalog.ListCategories(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h handlers) getCategory(c *gin.Context) {
	category, err := h.deps.Catalog.GetCategory(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": category})
}

func (h handlers) listProductsByCategory(c *gin.Context) {
	products, err := h.deps.Catalog.ListProductsByCategory(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h handlers) getProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}
	p, category, err := h.deps.Catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": p, "category": category})
}

func (h handlers) createCategory(c *gin.Context) {
	var cmd catalog.CreateCategoryCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		writeValidationError(c, err)
		return
	}
	category, err := h.deps.Catalog.CreateCategory(c.Request.Context(), cmd)
	if err != nil {
		if isDomainError(err) {
			writeError(c, err)
		} else {
			writeValidationError(c, err)
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"category": category})
}

func (h handlers) listFeatured(c *gin.Context) {
	products, err := h.deps.Catalog.ListFeatured(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h handlers) listTrending(c *gin.Context) {
	products, err := h.deps.Catalog.ListTrending(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h handlers) createProduct(c *gin.Context) {
	var cmd catalog.CreateProductCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		writeValidationError(c, err)
		return
	}
	p, err := h.deps.Catalog.CreateProduct(c.Request.Context(), cmd)
	if err != nil {
		if isDomainError(err) {
			writeError(c, err)
		} else {
			writeValidationError(c, err)
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"product": p})
}

func (h handlers) updateProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}
	var cmd catalog.UpdateProductCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		writeValidationError(c, err)
		return
	}
	p, err := h.deps.Catalog.UpdateProduct(c.Request.Context(), id, cmd)
	if err != nil {
		if isDomainError(err) {
			writeError(c, err)
		} else {
			writeValidationError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": p})
}

func (h handlers) deleteProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}
	if err := h.deps.Catalog.DeleteProduct(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
