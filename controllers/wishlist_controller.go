package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/petbloom/backend/pkg/errors"
	"github.com/petbloom/backend/services"
)

type WishlistController struct {
	wishlist *services.WishlistService
}

func NewWishlistController(wishlist *services.WishlistService) *WishlistController {
	return &WishlistController{wishlist: wishlist}
}

func (ctl *WishlistController) GetWishlist(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}

	items, err := ctl.wishlist.List(c, userID)
	if err != nil {
		apperrors.HandleGin(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (ctl *WishlistController) AddItem(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}

	var input services.WishlistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apperrors.HandleGin(c, apperrors.Wrap(apperrors.ErrBadRequest, err))
		return
	}

	item, err := ctl.wishlist.Add(c, userID, input)
	if err != nil {
		apperrors.HandleGin(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (ctl *WishlistController) RemoveItem(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := ctl.wishlist.Remove(c, userID, itemID); err != nil {
		apperrors.HandleGin(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item removed from wishlist"})
}
