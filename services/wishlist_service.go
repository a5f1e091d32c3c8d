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

type WishlistInput struct {
	ProductID *uuid.UUID `json:"product_id"`
	PetID     *uuid.UUID `json:"pet_id"`
}

type WishlistService struct {
	wishlist repositories.WishlistRepository
}

func NewWishlistService(wishlist repositories.WishlistRepository) *WishlistService {
	return &WishlistService{wishlist: wishlist}
}

func (s *WishlistService) List(ctx context.Context, userID uuid.UUID) ([]models.WishlistItem, error) {
	items, err := s.wishlist.FindByUserID(ctx, userID)
	if err != nil {
		return nil, storageErr(err)
	}
	return items, nil
}

func (s *WishlistService) Add(ctx context.Context, userID uuid.UUID, input WishlistInput) (*models.WishlistItem, error) {
	if (input.ProductID == nil) == (input.PetID == nil) {
		return nil, apperrors.Wrap(apperrors.ErrBadRequest, errors.New("exactly one of product_id or pet_id is required"))
	}

	existing, err := s.wishlist.FindByUserAndItem(ctx, userID, input.ProductID, input.PetID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storageErr(err)
	}
	if existing != nil {
		return nil, apperrors.Wrap(apperrors.ErrBadRequest, errors.New("item already in wishlist"))
	}

	item := &models.WishlistItem{
		UserID:    userID,
		ProductID: input.ProductID,
		PetID:     input.PetID,
	}
	if err := s.wishlist.Create(ctx, item); err != nil {
		return nil, storageErr(err)
	}
	return item, nil
}

func (s *WishlistService) Remove(ctx context.Context, userID, itemID uuid.UUID) error {
	if _, err := Authorize(ctx, userID,
		func(ctx context.Context) (*models.WishlistItem, error) {
			return s.wishlist.FindByID(ctx, itemID)
		},
		func(i *models.WishlistItem) uuid.UUID { return i.UserID },
	); err != nil {
		return err
	}

	if err := s.wishlist.Delete(ctx, itemID); err != nil {
		return storageErr(err)
	}
	return nil
}
