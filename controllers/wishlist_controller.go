package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MK-1512/gadget-galaxy/apperrors"
	"github.com/MK-1512/gadget-galaxy/models"
	"github.com/MK-1512/gadget-galaxy/services"
)

type WishlistController struct {
	Wishlist *services.WishlistService
}

func NewWishlistController(wishlist *services.WishlistService) *WishlistController {
	return &WishlistController{Wishlist: wishlist}
}

func (wc *WishlistController) GetWishlist(c *gin.Context) {
	c.JSON(http.StatusOK, wc.Wishlist.State())
}

// ToggleItem adds the posted product, or removes it when already saved
func (wc *WishlistController) ToggleItem(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.Error(apperrors.New(http.StatusBadRequest, "invalid payload", err))
		return
	}
	if product.ID <= 0 {
		c.Error(apperrors.New(http.StatusBadRequest, "product id is required", nil))
		return
	}

	c.JSON(http.StatusOK, wc.Wishlist.Toggle(c.Request.Context(), product))
}

func (wc *WishlistController) RemoveItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Error(apperrors.New(http.StatusBadRequest, "invalid product id", err))
		return
	}

	c.JSON(http.StatusOK, wc.Wishlist.Remove(c.Request.Context(), id))
}

func (wc *WishlistController) ClearWishlist(c *gin.Context) {
	c.JSON(http.StatusOK, wc.Wishlist.Clear(c.Request.Context()))
}
