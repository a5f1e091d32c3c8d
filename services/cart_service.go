package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/petbloom/backend/models"
	apperrors "github.com/petbloom/backend/pkg/errors"
	repositories "github.com/petbloom/backend/repository"
	"gorm.io/gorm"
)

// AddToCartInput references exactly one of a product or a pet.
type AddToCartInput struct {
	ProductID *uuid.UUID `json:"product_id"`
	PetID     *uuid.UUID `json:"pet_id"`
	Quantity  int        `json:"quantity" binding:"required,min=1"`
}

// CartService manages cart lines. The unit price is resolved from the
// catalog once, when the line is added, and frozen on the row; later
// catalog price changes never touch existing lines.
type CartService struct {
	cart     repositories.CartRepository
	products repositories.ProductRepository
	pets     repositories.PetRepository
}

func NewCartService(cart repositories.CartRepository, products repositories.ProductRepository, pets repositories.PetRepository) *CartService {
	return &CartService{cart: cart, products: products, pets: pets}
}

func (s *CartService) List(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error) {
	items, err := s.cart.FindByUserID(ctx, userID)
	if err != nil {
		return nil, storageErr(err)
	}
	return items, nil
}

// Add creates a cart line with the current catalog price frozen on it.
func (s *CartService) Add(ctx context.Context, userID uuid.UUID, input AddToCartInput) (*models.CartItem, error) {
	if (input.ProductID == nil) == (input.PetID == nil) {
		return nil, apperrors.Wrap(apperrors.ErrBadRequest, errors.New("exactly one of product_id or pet_id is required"))
	}
	if input.Quantity < 1 {
		return nil, apperrors.Wrap(apperrors.ErrBadRequest, errors.New("quantity must be positive"))
	}

	var priceCents int64
	switch {
	case input.ProductID != nil:
		product, err := s.products.FindByID(ctx, *input.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrNotFound
			}
			return nil, storageErr(err)
		}
		priceCents = product.PriceCents
	case input.PetID != nil:
		pet, err := s.pets.FindByID(ctx, *input.PetID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrNotFound
			}
			return nil, storageErr(err)
		}
		priceCents = pet.PriceCents
	}

	item := &models.CartItem{
		UserID:     userID,
		ProductID:  input.ProductID,
		PetID:      input.PetID,
		Quantity:   input.Quantity,
		PriceCents: priceCents,
	}
	if err := s.cart.Create(ctx, item); err != nil {
		return nil, storageErr(err)
	}
	return item, nil
}

// UpdateQuantity changes the quantity of an owned cart line. The frozen
// price is not writable through any path.
func (s *CartService) UpdateQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, apperrors.Wrap(apperrors.ErrBadRequest, errors.New("quantity must be positive"))
	}

	item, err := Authorize(ctx, userID,
		func(ctx context.Context) (*models.CartItem, error) {
			return s.cart.FindByID(ctx, itemID)
		},
		func(i *models.CartItem) uuid.UUID { return i.UserID },
	)
	if err != nil {
		return nil, err
	}

	if err := s.cart.UpdateQuantity(ctx, itemID, quantity); err != nil {
		return nil, storageErr(err)
	}
	item.Quantity = quantity
	return item, nil
}

func (s *CartService) Remove(ctx context.Context, userID, itemID uuid.UUID) error {
	if _, err := Authorize(ctx, userID,
		func(ctx context.Context) (*models.CartItem, error) {
			return s.cart.FindByID(ctx, itemID)
		},
		func(i *models.CartItem) uuid.UUID { return i.UserID },
	); err != nil {
		return err
	}

	if err := s.cart.Delete(ctx, itemID); err != nil {
		return storageErr(err)
	}
	return nil
}

func (s *CartService) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := s.cart.ClearForUser(ctx, userID); err != nil {
		return storageErr(err)
	}
	return nil
}
