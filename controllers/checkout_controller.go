package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MK-1512/gadget-galaxy/apperrors"
	"github.com/MK-1512/gadget-galaxy/models"
	"github.com/MK-1512/gadget-galaxy/services"
)

type CheckoutController struct {
	Checkout *services.CheckoutService
}

func NewCheckoutController(checkout *services.CheckoutService) *CheckoutController {
	return &CheckoutController{Checkout: checkout}
}

// PlaceOrder runs the mock checkout against the current cart
func (cc *CheckoutController) PlaceOrder(c *gin.Context) {
	var req services.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.New(http.StatusBadRequest, "invalid payload", err))
		return
	}

	order, err := cc.Checkout.PlaceOrder(c.Request.Context(), req)
	if err != nil {
		c.Error(apperrors.New(http.StatusBadRequest, err.Error(), err))
		return
	}

	c.JSON(http.StatusCreated, order)
}

// ListOrders returns the order history
func (cc *CheckoutController) ListOrders(c *gin.Context) {
	orders := cc.Checkout.Orders(c.Request.Context())
	if orders == nil {
		orders = []models.Order{}
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}
