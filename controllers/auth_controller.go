package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/petbloom/backend/pkg/errors"
	"github.com/petbloom/backend/services"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

type loginRequest struct {
	Token string `json:"token" binding:"required"`
}

type registerRequest struct {
	Token string `json:"token" binding:"required"`
	Name  string `json:"name" binding:"required"`
}

// Login exchanges a Firebase ID token for a backend access token.
func (ctl *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleGin(c, apperrors.Wrap(apperrors.ErrBadRequest, err))
		return
	}

	result, err := ctl.auth.Login(c, req.Token)
	if err != nil {
		apperrors.HandleGin(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Register creates a user from a verified Firebase token.
func (ctl *AuthController) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleGin(c, apperrors.Wrap(apperrors.ErrBadRequest, err))
		return
	}

	result, err := ctl.auth.Register(c, req.Token, req.Name)
	if err != nil {
		apperrors.HandleGin(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}
