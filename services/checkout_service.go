package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/petbloom/backend/kafka"
	"github.com/petbloom/backend/models"
	awspkg "github.com/petbloom/backend/pkg/aws"
	apperrors "github.com/petbloom/backend/pkg/errors"
	"github.com/petbloom/backend/pkg/logger"
	repositories "github.com/petbloom/backend/repository"
	"go.uber.org/zap"
)

// CheckoutRequest carries the shipping metadata supplied by the caller.
type CheckoutRequest struct {
	ShippingAddress string `json:"shipping_address"`
	DeliveryOption  string `json:"delivery_option"`
	PickupLocation  string `json:"pickup_location"`
}

// OrderCreatedEvent is published after a checkout commits. Delivery is
// best-effort; the order exists regardless.
type OrderCreatedEvent struct {
	OrderID    uuid.UUID          `json:"order_id"`
	UserID     uuid.UUID          `json:"user_id"`
	TotalCents int64              `json:"total_cents"`
	Items      []models.OrderItem `json:"items"`
	Timestamp  time.Time          `json:"timestamp"`
}

// CheckoutService converts a user's cart into a persisted order. The whole
// conversion runs in one database transaction: order row, order item
// snapshots and cart deletion are durably visible together or not at all.
type CheckoutService struct {
	store       repositories.CheckoutStore
	producer    kafka.ProducerAPI
	snsClient   awspkg.SNSPublisher
	snsTopicArn string
}

func NewCheckoutService(store repositories.CheckoutStore, producer kafka.ProducerAPI, snsClient awspkg.SNSPublisher, snsTopicArn string) *CheckoutService {
	return &CheckoutService{
		store:       store,
		producer:    producer,
		snsClient:   snsClient,
		snsTopicArn: snsTopicArn,
	}
}

// Checkout loads the user's cart under row locks, totals the frozen line
// prices and creates the order with its item snapshots before clearing the
// cart. Prices are never re-read from the catalog here: the unit price
// captured at add-to-cart time is what the buyer pays.
//
// A concurrent checkout for the same user blocks on the row locks, then
// observes an empty cart and fails with ErrEmptyCart, so a double submit
// never produces two orders. A serialization failure surfaces as the
// retryable ErrSerializationConflict.
func (s *CheckoutService) Checkout(ctx context.Context, userID uuid.UUID, req CheckoutRequest) (*models.Order, error) {
	var order *models.Order

	err := s.store.InTx(ctx, func(tx repositories.CheckoutTx) error {
		items, err := tx.LockCartItems(userID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return apperrors.ErrEmptyCart
		}

		var total int64
		for _, item := range items {
			total += item.PriceCents * int64(item.Quantity)
		}

		o := &models.Order{
			UserID:          userID,
			Status:          models.OrderStatusPending,
			TotalCents:      total,
			ShippingAddress: req.ShippingAddress,
			DeliveryOption:  req.DeliveryOption,
			PickupLocation:  req.PickupLocation,
		}
		if err := tx.CreateOrder(o); err != nil {
			return err
		}

		lines := make([]models.OrderItem, 0, len(items))
		for _, item := range items {
			lines = append(lines, models.OrderItem{
				OrderID:    o.ID,
				ProductID:  item.ProductID,
				PetID:      item.PetID,
				Quantity:   item.Quantity,
				PriceCents: item.PriceCents,
			})
		}
		if err := tx.CreateOrderItems(lines); err != nil {
			return err
		}

		if err := tx.ClearCart(userID); err != nil {
			return err
		}

		o.OrderItems = lines
		order = o
		return nil
	})
	if err != nil {
		var appErr *apperrors.Error
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, storageErr(err)
	}

	s.publishOrderCreated(ctx, order)
	return order, nil
}

// publishOrderCreated pushes the event to Kafka and SNS. Failures are
// logged and swallowed; the committed order is the source of truth.
func (s *CheckoutService) publishOrderCreated(ctx context.Context, order *models.Order) {
	event := OrderCreatedEvent{
		OrderID:    order.ID,
		UserID:     order.UserID,
		TotalCents: order.TotalCents,
		Items:      order.OrderItems,
		Timestamp:  time.Now(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		logger.Error(ctx, "Failed to marshal order event", err)
		return
	}

	if s.producer != nil {
		if err := s.producer.Publish(ctx, []byte(order.UserID.String()), payload); err != nil {
			logger.Warn(ctx, "Kafka publish failed", zap.Error(err), zap.String("order_id", order.ID.String()))
		}
	}
	if s.snsClient != nil && s.snsTopicArn != "" {
		if err := s.snsClient.Publish(ctx, s.snsTopicArn, payload); err != nil {
			logger.Warn(ctx, "SNS publish failed", zap.Error(err), zap.String("order_id", order.ID.String()))
		}
	}
}
