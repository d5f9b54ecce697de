package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MK-1512/gadget-galaxy/apperrors"
	"github.com/MK-1512/gadget-galaxy/logger"
	"github.com/MK-1512/gadget-galaxy/models"
	"github.com/MK-1512/gadget-galaxy/services"
)

type CartController struct {
	Cart *services.CartService
}

func NewCartController(cart *services.CartService) *CartController {
	return &CartController{Cart: cart}
}

// GetCart returns the current cart snapshot
func (cc *CartController) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, cc.Cart.State())
}

// AddItem adds one unit of the posted product to the cart
func (cc *CartController) AddItem(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.Error(apperrors.New(http.StatusBadRequest, "invalid payload", err))
		return
	}
	if product.ID <= 0 {
		c.Error(apperrors.New(http.StatusBadRequest, "product id is required", nil))
		return
	}

	state := cc.Cart.AddItem(c.Request.Context(), product)
	c.JSON(http.StatusOK, state)
}

// RemoveItem removes one unit of the line with the given id
func (cc *CartController) RemoveItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Error(apperrors.New(http.StatusBadRequest, "invalid product id", err))
		return
	}

	state, err := cc.Cart.RemoveItem(c.Request.Context(), id)
	if errors.Is(err, services.ErrItemNotFound) {
		c.Error(apperrors.New(http.StatusNotFound, err.Error(), err))
		return
	}
	c.JSON(http.StatusOK, state)
}

// DeleteItem removes the whole line with the given id
func (cc *CartController) DeleteItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Error(apperrors.New(http.StatusBadRequest, "invalid product id", err))
		return
	}

	state, err := cc.Cart.DeleteItem(c.Request.Context(), id)
	if errors.Is(err, services.ErrItemNotFound) {
		c.Error(apperrors.New(http.StatusNotFound, err.Error(), err))
		return
	}
	c.JSON(http.StatusOK, state)
}

// ClearCart empties the cart
func (cc *CartController) ClearCart(c *gin.Context) {
	state := cc.Cart.Clear(c.Request.Context())
	logger.Log.Debug("cart cleared", zap.Int("items", len(state.Items)))
	c.JSON(http.StatusOK, state)
}
