package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/petbloom/backend/pkg/errors"
	"github.com/petbloom/backend/services"
)

type AddressController struct {
	addresses *services.AddressService
}

func NewAddressController(addresses *services.AddressService) *AddressController {
	return &AddressController{addresses: addresses}
}

func (ctl *AddressController) GetAddresses(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}

	addresses, err := ctl.addresses.List(c, userID)
	if err != nil {
		apperrors.HandleGin(c, err)
		return
	}
	c.JSON(http.StatusOK, addresses)
}

func (ctl *AddressController) GetAddress(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}
	addressID, ok := pathID(c, "id")
	if !ok {
		return
	}

	address, err := ctl.addresses.Get(c, userID, addressID)
	if err != nil {
		apperrors.HandleGin(c, err)
		return
	}
	c.JSON(http.StatusOK, address)
}

func (ctl *AddressController) CreateAddress(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}

	var input services.AddressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apperrors.HandleGin(c, apperrors.Wrap(apperrors.ErrBadRequest, err))
		return
	}

	address, err := ctl.addresses.Create(c, userID, input)
	if err != nil {
		apperrors.HandleGin(c, err)
		return
	}
	c.JSON(http.StatusCreated, address)
}

func (ctl *AddressController) UpdateAddress(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}
	addressID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input services.AddressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apperrors.HandleGin(c, apperrors.Wrap(apperrors.ErrBadRequest, err))
		return
	}

	address, err := ctl.addresses.Update(c, userID, addressID, input)
	if err != nil {
		apperrors.HandleGin(c, err)
		return
	}
	c.JSON(http.StatusOK, address)
}

func (ctl *AddressController) DeleteAddress(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}
	addressID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := ctl.addresses.Delete(c, userID, addressID); err != nil {
		apperrors.HandleGin(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Address deleted successfully"})
}
