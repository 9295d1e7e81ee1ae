package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/servis-mreza/directory/app/models"
	"github.com/servis-mreza/directory/app/responses"
)

// CatalogController serves the static category catalog.
type CatalogController struct{}

// NewCatalogController creates the controller.
func NewCatalogController() *CatalogController {
	return &CatalogController{}
}

// ListCategories returns all service categories with their display fields.
func (cc *CatalogController) ListCategories(c *gin.Context) {
	cats := models.Catalog()
	c.JSON(http.StatusOK, responses.CatalogResponse{
		Categories: cats,
		Total:      len(cats),
	})
}

// GetCategory returns one category by key.
func (cc *CatalogController) GetCategory(c *gin.Context) {
	key := c.Param("key")
	cat, ok := models.CategoryByKey(key)
	if !ok {
		c.JSON(http.StatusNotFound, responses.ErrorResponse{
			Error:   "CATEGORY_NOT_FOUND",
			Message: "no category with key " + key,
		})
		return
	}
	c.JSON(http.StatusOK, cat)
}
