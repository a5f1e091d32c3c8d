package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/petbloom/backend/models"
	apperrors "github.com/petbloom/backend/pkg/errors"
	"github.com/petbloom/backend/services"
)

type OrderController struct {
	orders   *services.OrderService
	checkout *services.CheckoutService
}

func NewOrderController(orders *services.OrderService, checkout *services.CheckoutService) *OrderController {
	return &OrderController{orders: orders, checkout: checkout}
}

func (ctl *OrderController) GetOrders(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}

	status := models.OrderStatus(c.Query("status"))
	orders, err := ctl.orders.List(c, userID, status)
	if err != nil {
		apperrors.HandleGin(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (ctl *OrderController) GetOrder(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	order, err := ctl.orders.Get(c, userID, orderID)
	if err != nil {
		apperrors.HandleGin(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// Checkout converts the caller's cart into an order.
func (ctl *OrderController) Checkout(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}

	var req services.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleGin(c, apperrors.Wrap(apperrors.ErrBadRequest, err))
		return
	}

	order, err := ctl.checkout.Checkout(c, userID, req)
	if err != nil {
		apperrors.HandleGin(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

type updateStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

func (ctl *OrderController) UpdateStatus(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleGin(c, apperrors.Wrap(apperrors.ErrBadRequest, err))
		return
	}

	order, err := ctl.orders.UpdateStatus(c, userID, orderID, req.Status)
	if err != nil {
		apperrors.HandleGin(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

type updateTrackingRequest struct {
	TrackingNumber string `json:"tracking_number" binding:"required"`
}

func (ctl *OrderController) UpdateTracking(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req updateTrackingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleGin(c, apperrors.Wrap(apperrors.ErrBadRequest, err))
		return
	}

	order, err := ctl.orders.UpdateTracking(c, userID, orderID, req.TrackingNumber)
	if err != nil {
		apperrors.HandleGin(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
