package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/petbloom/backend/models"
	"gorm.io/gorm"
)

// ReviewRepository defines the interface for review data access
type ReviewRepository interface {
	FindByProductID(ctx context.Context, productID uuid.UUID) ([]models.Review, error)
	FindByPetID(ctx context.Context, petID uuid.UUID) ([]models.Review, error)
	FindByUserAndItem(ctx context.Context, userID uuid.UUID, productID, petID *uuid.UUID) (*models.Review, error)
	Create(ctx context.Context, review *models.Review) error
}

// GormReviewRepository implements ReviewRepository using GORM
type GormReviewRepository struct {
	db *gorm.DB
}

func NewGormReviewRepository(db *gorm.DB) ReviewRepository {
	return &GormReviewRepository{db: db}
}

func (r *GormReviewRepository) FindByProductID(ctx context.Context, productID uuid.UUID) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *GormReviewRepository) FindByPetID(ctx context.Context, petID uuid.UUID) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.WithContext(ctx).
		Where("pet_id = ?", petID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *GormReviewRepository) FindByUserAndItem(ctx context.Context, userID uuid.UUID, productID, petID *uuid.UUID) (*models.Review, error) {
	var review models.Review
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if productID != nil {
		query = query.Where("product_id = ?", *productID)
	}
	if petID != nil {
		query = query.Where("pet_id = ?", *petID)
	}
	if err := query.First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *GormReviewRepository) Create(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}
