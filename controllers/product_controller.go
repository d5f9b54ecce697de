package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MK-1512/gadget-galaxy/apperrors"
	"github.com/MK-1512/gadget-galaxy/models"
	"github.com/MK-1512/gadget-galaxy/services"
)

type ProductController struct {
	Catalog *services.CatalogService
	Filters *services.FilterService
}

func NewProductController(catalog *services.CatalogService, filters *services.FilterService) *ProductController {
	return &ProductController{Catalog: catalog, Filters: filters}
}

// GetProducts returns the catalog. With ?filtered=true the persisted
// filters are applied server-side.
func (pc *ProductController) GetProducts(c *gin.Context) {
	products := pc.Catalog.FetchAll(c.Request.Context())

	if filtered, _ := strconv.ParseBool(c.Query("filtered")); filtered {
		products = services.ApplyFilters(products, pc.Filters.Filters(c.Request.Context()))
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GetProduct returns one product by id, 404 when absent
func (pc *ProductController) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Error(apperrors.New(http.StatusBadRequest, "invalid product id", err))
		return
	}

	product, err := pc.Catalog.FetchByID(c.Request.Context(), id)
	if errors.Is(err, services.ErrProductNotFound) {
		c.Error(apperrors.New(http.StatusNotFound, err.Error(), err))
		return
	}
	c.JSON(http.StatusOK, product)
}

// GetCategories returns the distinct category list
func (pc *ProductController) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": pc.Catalog.Categories(c.Request.Context())})
}

// GetFilters returns the persisted listing filters
func (pc *ProductController) GetFilters(c *gin.Context) {
	c.JSON(http.StatusOK, pc.Filters.Filters(c.Request.Context()))
}

// SaveFilters persists the posted listing filters
func (pc *ProductController) SaveFilters(c *gin.Context) {
	var filters models.Filters
	if err := c.ShouldBindJSON(&filters); err != nil {
		c.Error(apperrors.New(http.StatusBadRequest, "invalid payload", err))
		return
	}

	if err := pc.Filters.Save(c.Request.Context(), filters); err != nil {
		c.Error(apperrors.New(http.StatusInternalServerError, "failed to save filters", err))
		return
	}
	c.JSON(http.StatusOK, filters)
}
