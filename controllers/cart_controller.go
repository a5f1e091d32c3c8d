package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/petbloom/backend/pkg/errors"
	"github.com/petbloom/backend/services"
)

type CartController struct {
	cart *services.CartService
}

func NewCartController(cart *services.CartService) *CartController {
	return &CartController{cart: cart}
}

func (ctl *CartController) GetCart(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}

	items, err := ctl.cart.List(c, userID)
	if err != nil {
		apperrors.HandleGin(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (ctl *CartController) AddItem(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}

	var input services.AddToCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apperrors.HandleGin(c, apperrors.Wrap(apperrors.ErrBadRequest, err))
		return
	}

	item, err := ctl.cart.Add(c, userID, input)
	if err != nil {
		apperrors.HandleGin(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

func (ctl *CartController) UpdateItem(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleGin(c, apperrors.Wrap(apperrors.ErrBadRequest, err))
		return
	}

	item, err := ctl.cart.UpdateQuantity(c, userID, itemID, req.Quantity)
	if err != nil {
		apperrors.HandleGin(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (ctl *CartController) RemoveItem(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := ctl.cart.Remove(c, userID, itemID); err != nil {
		apperrors.HandleGin(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
}

func (ctl *CartController) ClearCart(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}

	if err := ctl.cart.Clear(c, userID); err != nil {
		apperrors.HandleGin(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}
