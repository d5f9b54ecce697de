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

type CompareController struct {
	Compare *services.CompareService
}

func NewCompareController(compare *services.CompareService) *CompareController {
	return &CompareController{Compare: compare}
}

func (cc *CompareController) GetCompare(c *gin.Context) {
	c.JSON(http.StatusOK, cc.Compare.State())
}

// ToggleItem adds the posted product, or removes it when already listed.
// A full comparison set rejects the add with 409.
func (cc *CompareController) ToggleItem(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.Error(apperrors.New(http.StatusBadRequest, "invalid payload", err))
		return
	}
	if product.ID <= 0 {
		c.Error(apperrors.New(http.StatusBadRequest, "product id is required", nil))
		return
	}

	state, err := cc.Compare.Toggle(c.Request.Context(), product)
	if errors.Is(err, services.ErrCompareFull) {
		c.Error(apperrors.New(http.StatusConflict, err.Error(), err))
		return
	}
	c.JSON(http.StatusOK, state)
}

func (cc *CompareController) RemoveItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Error(apperrors.New(http.StatusBadRequest, "invalid product id", err))
		return
	}

	c.JSON(http.StatusOK, cc.Compare.Remove(c.Request.Context(), id))
}

func (cc *CompareController) ClearCompare(c *gin.Context) {
	c.JSON(http.StatusOK, cc.Compare.Clear(c.Request.Context()))
}
