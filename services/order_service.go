package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/petbloom/backend/models"
	apperrors "github.com/petbloom/backend/pkg/errors"
	repositories "github.com/petbloom/backend/repository"
)

// OrderService exposes reads and the guarded status/tracking mutations on
// existing orders. Order creation happens only in CheckoutService.
type OrderService struct {
	orders repositories.OrderRepository
}

func NewOrderService(orders repositories.OrderRepository) *OrderService {
	return &OrderService{orders: orders}
}

func (s *OrderService) List(ctx context.Context, userID uuid.UUID, status models.OrderStatus) ([]models.Order, error) {
	if status != "" && !models.ValidStatus(status) {
		return nil, apperrors.Wrap(apperrors.ErrBadRequest, fmt.Errorf("unknown status %q", status))
	}
	orders, err := s.orders.FindByUserID(ctx, userID, status)
	if err != nil {
		return nil, storageErr(err)
	}
	return orders, nil
}

func (s *OrderService) Get(ctx context.Context, userID, orderID uuid.UUID) (*models.Order, error) {
	return Authorize(ctx, userID,
		func(ctx context.Context) (*models.Order, error) {
			return s.orders.FindByID(ctx, orderID)
		},
		func(o *models.Order) uuid.UUID { return o.UserID },
	)
}

// UpdateStatus advances an owned order along the pending -> processing ->
// shipped -> delivered chain; cancelled is reachable from any non-terminal
// state. Anything else is rejected.
func (s *OrderService) UpdateStatus(ctx context.Context, userID, orderID uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	if !models.ValidStatus(status) {
		return nil, apperrors.Wrap(apperrors.ErrBadRequest, fmt.Errorf("unknown status %q", status))
	}

	order, err := s.Get(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	if !models.ValidTransition(order.Status, status) {
		return nil, apperrors.Wrap(apperrors.ErrBadRequest,
			errors.New("invalid status transition "+string(order.Status)+" -> "+string(status)))
	}

	if err := s.orders.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, storageErr(err)
	}
	order.Status = status
	return order, nil
}

func (s *OrderService) UpdateTracking(ctx context.Context, userID, orderID uuid.UUID, trackingNumber string) (*models.Order, error) {
	order, err := s.Get(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	if err := s.orders.UpdateTracking(ctx, orderID, trackingNumber); err != nil {
		return nil, storageErr(err)
	}
	order.TrackingNumber = trackingNumber
	return order, nil
}
