package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/petbloom/backend/pkg/errors"
	"github.com/petbloom/backend/services"
)

type ReviewController struct {
	reviews *services.ReviewService
}

func NewReviewController(reviews *services.ReviewService) *ReviewController {
	return &ReviewController{reviews: reviews}
}

func (ctl *ReviewController) CreateReview(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}

	var input services.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apperrors.HandleGin(c, apperrors.Wrap(apperrors.ErrBadRequest, err))
		return
	}

	review, err := ctl.reviews.Create(c, userID, input)
	if err != nil {
		apperrors.HandleGin(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (ctl *ReviewController) GetProductReviews(c *gin.Context) {
	productID, ok := pathID(c, "product_id")
	if !ok {
		return
	}

	summary, err := ctl.reviews.ForProduct(c, productID)
	if err != nil {
		apperrors.HandleGin(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (ctl *ReviewController) GetPetReviews(c *gin.Context) {
	petID, ok := pathID(c, "pet_id")
	if !ok {
		return
	}

	summary, err := ctl.reviews.ForPet(c, petID)
	if err != nil {
		apperrors.HandleGin(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
