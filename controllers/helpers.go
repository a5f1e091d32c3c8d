package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/petbloom/backend/middleware"
	apperrors "github.com/petbloom/backend/pkg/errors"
)

// principal returns the authenticated user id or writes a 401 and reports
// false.
func principal(c *gin.Context) (uuid.UUID, bool) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		apperrors.HandleGin(c, apperrors.Wrap(apperrors.ErrUnauthorized, err))
		return uuid.Nil, false
	}
	return userID, true
}

// pathID parses a uuid path parameter or writes a 400 and reports false.
func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		apperrors.HandleGin(c, apperrors.Wrap(apperrors.ErrBadRequest, err))
		return uuid.Nil, false
	}
	return id, true
}
