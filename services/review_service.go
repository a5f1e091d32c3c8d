package services

import (
	"context"
	"errors"
	"math"

	"github.com/google/uuid"
	"github.com/petbloom/backend/models"
	apperrors "github.com/petbloom/backend/pkg/errors"
	repositories "github.com/petbloom/backend/repository"
	"gorm.io/gorm"
)

type ReviewInput struct {
	ProductID *uuid.UUID `json:"product_id"`
	PetID     *uuid.UUID `json:"pet_id"`
	Rating    int        `json:"rating" binding:"required,min=1,max=5"`
	Comment   string     `json:"comment"`
}

// ReviewSummary bundles an item's reviews with their average rating.
type ReviewSummary struct {
	Reviews       []models.Review `json:"reviews"`
	Count         int             `json:"count"`
	AverageRating float64         `json:"average_rating"`
}

type ReviewService struct {
	reviews repositories.ReviewRepository
}

func NewReviewService(reviews repositories.ReviewRepository) *ReviewService {
	return &ReviewService{reviews: reviews}
}

// Create adds a review for a product or a pet. A user may review a given
// item only once.
func (s *ReviewService) Create(ctx context.Context, userID uuid.UUID, input ReviewInput) (*models.Review, error) {
	if (input.ProductID == nil) == (input.PetID == nil) {
		return nil, apperrors.Wrap(apperrors.ErrBadRequest, errors.New("exactly one of product_id or pet_id is required"))
	}

	existing, err := s.reviews.FindByUserAndItem(ctx, userID, input.ProductID, input.PetID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storageErr(err)
	}
	if existing != nil {
		return nil, apperrors.Wrap(apperrors.ErrBadRequest, errors.New("you have already reviewed this item"))
	}

	review := &models.Review{
		UserID:    userID,
		ProductID: input.ProductID,
		PetID:     input.PetID,
		Rating:    input.Rating,
		Comment:   input.Comment,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, storageErr(err)
	}
	return review, nil
}

func (s *ReviewService) ForProduct(ctx context.Context, productID uuid.UUID) (*ReviewSummary, error) {
	reviews, err := s.reviews.FindByProductID(ctx, productID)
	if err != nil {
		return nil, storageErr(err)
	}
	return summarize(reviews), nil
}

func (s *ReviewService) ForPet(ctx context.Context, petID uuid.UUID) (*ReviewSummary, error) {
	reviews, err := s.reviews.FindByPetID(ctx, petID)
	if err != nil {
		return nil, storageErr(err)
	}
	return summarize(reviews), nil
}

func summarize(reviews []models.Review) *ReviewSummary {
	summary := &ReviewSummary{Reviews: reviews, Count: len(reviews)}
	if len(reviews) == 0 {
		return summary
	}
	var total int
	for _, r := range reviews {
		total += r.Rating
	}
	avg := float64(total) / float64(len(reviews))
	summary.AverageRating = math.Round(avg*10) / 10
	return summary
}
