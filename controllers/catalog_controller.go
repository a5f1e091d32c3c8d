package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/petbloom/backend/models"
	apperrors "github.com/petbloom/backend/pkg/errors"
	"github.com/petbloom/backend/services"
)

type CatalogController struct {
	catalog *services.CatalogService
}

func NewCatalogController(catalog *services.CatalogService) *CatalogController {
	return &CatalogController{catalog: catalog}
}

func (ctl *CatalogController) GetProducts(c *gin.Context) {
	products, err := ctl.catalog.ListProducts(c, c.Query("category"))
	if err != nil {
		apperrors.HandleGin(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (ctl *CatalogController) GetProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	product, err := ctl.catalog.GetProduct(c, id)
	if err != nil {
		apperrors.HandleGin(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (ctl *CatalogController) CreateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		apperrors.HandleGin(c, apperrors.Wrap(apperrors.ErrBadRequest, err))
		return
	}

	if err := ctl.catalog.CreateProduct(c, &product); err != nil {
		apperrors.HandleGin(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (ctl *CatalogController) UpdateProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	product, err := ctl.catalog.GetProduct(c, id)
	if err != nil {
		apperrors.HandleGin(c, err)
		return
	}

	if err := c.ShouldBindJSON(product); err != nil {
		apperrors.HandleGin(c, apperrors.Wrap(apperrors.ErrBadRequest, err))
		return
	}
	product.ID = id

	if err := ctl.catalog.UpdateProduct(c, product); err != nil {
		apperrors.HandleGin(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (ctl *CatalogController) GetPets(c *gin.Context) {
	pets, err := ctl.catalog.ListPets(c, c.Query("species"))
	if err != nil {
		apperrors.HandleGin(c, err)
		return
	}
	c.JSON(http.StatusOK, pets)
}

func (ctl *CatalogController) GetPet(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	pet, err := ctl.catalog.GetPet(c, id)
	if err != nil {
		apperrors.HandleGin(c, err)
		return
	}
	c.JSON(http.StatusOK, pet)
}

func (ctl *CatalogController) CreatePet(c *gin.Context) {
	var pet models.Pet
	if err := c.ShouldBindJSON(&pet); err != nil {
		apperrors.HandleGin(c, apperrors.Wrap(apperrors.ErrBadRequest, err))
		return
	}

	if err := ctl.catalog.CreatePet(c, &pet); err != nil {
		apperrors.HandleGin(c, err)
		return
	}
	c.JSON(http.StatusCreated, pet)
}

func (ctl *CatalogController) UpdatePet(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	pet, err := ctl.catalog.GetPet(c, id)
	if err != nil {
		apperrors.HandleGin(c, err)
		return
	}

	if err := c.ShouldBindJSON(pet); err != nil {
		apperrors.HandleGin(c, apperrors.Wrap(apperrors.ErrBadRequest, err))
		return
	}
	pet.ID = id

	if err := ctl.catalog.UpdatePet(c, pet); err != nil {
		apperrors.HandleGin(c, err)
		return
	}
	c.JSON(http.StatusOK, pet)
}
