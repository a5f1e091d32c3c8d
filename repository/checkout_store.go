package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/petbloom/backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CheckoutTx is the unit of work available inside a checkout transaction.
// Every write made through it commits or rolls back as one.
type CheckoutTx interface {
	// LockCartItems loads the user's cart rows under FOR UPDATE so a
	// concurrent checkout for the same user blocks until this transaction
	// finishes.
	LockCartItems(userID uuid.UUID) ([]models.CartItem, error)
	CreateOrder(order *models.Order) error
	CreateOrderItems(items []models.OrderItem) error
	ClearCart(userID uuid.UUID) error
}

// CheckoutStore runs a function inside a single database transaction.
type CheckoutStore interface {
	InTx(ctx context.Context, fn func(tx CheckoutTx) error) error
}

// GormCheckoutStore implements CheckoutStore on a GORM transaction.
type GormCheckoutStore struct {
	db *gorm.DB
}

func NewGormCheckoutStore(db *gorm.DB) CheckoutStore {
	return &GormCheckoutStore{db: db}
}

func (s *GormCheckoutStore) InTx(ctx context.Context, fn func(tx CheckoutTx) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormCheckoutTx{tx: tx})
	})
}

type gormCheckoutTx struct {
	tx *gorm.DB
}

func (t *gormCheckoutTx) LockCartItems(userID uuid.UUID) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := t.tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (t *gormCheckoutTx) CreateOrder(order *models.Order) error {
	return t.tx.Create(order).Error
}

func (t *gormCheckoutTx) CreateOrderItems(items []models.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return t.tx.Create(&items).Error
}

func (t *gormCheckoutTx) ClearCart(userID uuid.UUID) error {
	return t.tx.Delete(&models.CartItem{}, "user_id = ?", userID).Error
}
