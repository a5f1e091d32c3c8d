package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/petbloom/backend/models"
	apperrors "github.com/petbloom/backend/pkg/errors"
	repositories "github.com/petbloom/backend/repository"
	"github.com/stretchr/testify/assert"
)

// memCheckoutStore is an in-memory CheckoutStore with transactional
// semantics: writes staged inside InTx become visible only when the
// function returns nil.
type memCheckoutStore struct {
	cart       []models.CartItem
	orders     []models.Order
	orderItems []models.OrderItem

	lockErr  error
	failItem bool
}

func (s *memCheckoutStore) InTx(ctx context.Context, fn func(tx repositories.CheckoutTx) error) error {
	tx := &memCheckoutTx{store: s, cart: append([]models.CartItem(nil), s.cart...)}
	if err := fn(tx); err != nil {
		return err
	}
	s.cart = tx.cart
	s.orders = append(s.orders, tx.orders...)
	s.orderItems = append(s.orderItems, tx.items...)
	return nil
}

type memCheckoutTx struct {
	store  *memCheckoutStore
	cart   []models.CartItem
	orders []models.Order
	items  []models.OrderItem
}

func (t *memCheckoutTx) LockCartItems(userID uuid.UUID) ([]models.CartItem, error) {
	if t.store.lockErr != nil {
		return nil, t.store.lockErr
	}
	var items []models.CartItem
	for _, item := range t.cart {
		if item.UserID == userID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (t *memCheckoutTx) CreateOrder(order *models.Order) error {
	order.ID = uuid.New()
	t.orders = append(t.orders, *order)
	return nil
}

func (t *memCheckoutTx) CreateOrderItems(items []models.OrderItem) error {
	if t.store.failItem {
		return errors.New("write failed")
	}
	t.items = append(t.items, items...)
	return nil
}

func (t *memCheckoutTx) ClearCart(userID uuid.UUID) error {
	var kept []models.CartItem
	for _, item := range t.cart {
		if item.UserID != userID {
			kept = append(kept, item)
		}
	}
	t.cart = kept
	return nil
}

type recordingProducer struct {
	key   []byte
	value []byte
}

func (p *recordingProducer) Publish(ctx context.Context, key, value []byte) error {
	p.key = append([]byte(nil), key...)
	p.value = append([]byte(nil), value...)
	return nil
}

func (p *recordingProducer) Close() error { return nil }

func cartOf(userID uuid.UUID) []models.CartItem {
	productA := uuid.New()
	productB := uuid.New()
	return []models.CartItem{
		{ID: uuid.New(), UserID: userID, ProductID: &productA, Quantity: 2, PriceCents: 1000},
		{ID: uuid.New(), UserID: userID, ProductID: &productB, Quantity: 1, PriceCents: 500},
	}
}

func TestCheckout_TotalsFrozenPrices(t *testing.T) {
	userID := uuid.New()
	store := &memCheckoutStore{cart: cartOf(userID)}
	svc := NewCheckoutService(store, nil, nil, "")

	order, err := svc.Checkout(context.Background(), userID, CheckoutRequest{
		ShippingAddress: "1 Main St",
		DeliveryOption:  "standard",
	})
	assert.NoError(t, err)

	// 10.00 x 2 + 5.00 x 1 = 25.00
	assert.Equal(t, int64(2500), order.TotalCents)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Len(t, order.OrderItems, 2)
	assert.Len(t, store.orders, 1)
	assert.Len(t, store.orderItems, 2)
	assert.Empty(t, store.cart)

	for _, line := range store.orderItems {
		assert.Equal(t, order.ID, line.OrderID)
	}
}

func TestCheckout_EmptyCart(t *testing.T) {
	userID := uuid.New()
	store := &memCheckoutStore{}
	svc := NewCheckoutService(store, nil, nil, "")

	_, err := svc.Checkout(context.Background(), userID, CheckoutRequest{})
	assert.ErrorIs(t, err, apperrors.ErrEmptyCart)
	assert.Empty(t, store.orders)
	assert.Empty(t, store.orderItems)
}

func TestCheckout_AtomicOnFailure(t *testing.T) {
	userID := uuid.New()
	store := &memCheckoutStore{cart: cartOf(userID), failItem: true}
	svc := NewCheckoutService(store, nil, nil, "")

	_, err := svc.Checkout(context.Background(), userID, CheckoutRequest{})
	assert.ErrorIs(t, err, apperrors.ErrStorageFailure)

	// nothing committed: no order, no lines, cart intact
	assert.Empty(t, store.orders)
	assert.Empty(t, store.orderItems)
	assert.Len(t, store.cart, 2)
}

func TestCheckout_SecondCallFailsCleanly(t *testing.T) {
	userID := uuid.New()
	store := &memCheckoutStore{cart: cartOf(userID)}
	svc := NewCheckoutService(store, nil, nil, "")

	_, err := svc.Checkout(context.Background(), userID, CheckoutRequest{})
	assert.NoError(t, err)

	_, err = svc.Checkout(context.Background(), userID, CheckoutRequest{})
	assert.ErrorIs(t, err, apperrors.ErrEmptyCart)
	assert.Len(t, store.orders, 1)
}

func TestCheckout_SerializationConflictIsRetryable(t *testing.T) {
	userID := uuid.New()
	store := &memCheckoutStore{
		cart:    cartOf(userID),
		lockErr: &pgconn.PgError{Code: "40001"},
	}
	svc := NewCheckoutService(store, nil, nil, "")

	_, err := svc.Checkout(context.Background(), userID, CheckoutRequest{})
	assert.ErrorIs(t, err, apperrors.ErrSerializationConflict)
	assert.True(t, apperrors.Retryable(err))
}

func TestCheckout_PublishesOrderEvent(t *testing.T) {
	userID := uuid.New()
	store := &memCheckoutStore{cart: cartOf(userID)}
	producer := &recordingProducer{}
	svc := NewCheckoutService(store, producer, nil, "")

	order, err := svc.Checkout(context.Background(), userID, CheckoutRequest{})
	assert.NoError(t, err)

	assert.Equal(t, userID.String(), string(producer.key))

	var event OrderCreatedEvent
	assert.NoError(t, json.Unmarshal(producer.value, &event))
	assert.Equal(t, order.ID, event.OrderID)
	assert.Equal(t, int64(2500), event.TotalCents)
	assert.Len(t, event.Items, 2)
}
