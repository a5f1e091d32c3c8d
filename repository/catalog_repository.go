package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/petbloom/backend/models"
	"gorm.io/gorm"
)

// ProductRepository defines the interface for product catalog access
type ProductRepository interface {
	FindAll(ctx context.Context, category string) ([]models.Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
}

// PetRepository defines the interface for pet listing access
type PetRepository interface {
	FindAll(ctx context.Context, species string) ([]models.Pet, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Pet, error)
	Create(ctx context.Context, pet *models.Pet) error
	Update(ctx context.Context, pet *models.Pet) error
}

type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) ProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) FindAll(ctx context.Context, category string) ([]models.Product, error) {
	var products []models.Product
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormProductRepository) Create(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *GormProductRepository) Update(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

type GormPetRepository struct {
	db *gorm.DB
}

func NewGormPetRepository(db *gorm.DB) PetRepository {
	return &GormPetRepository{db: db}
}

func (r *GormPetRepository) FindAll(ctx context.Context, species string) ([]models.Pet, error) {
	var pets []models.Pet
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if species != "" {
		query = query.Where("species = ?", species)
	}
	if err := query.Find(&pets).Error; err != nil {
		return nil, err
	}
	return pets, nil
}

func (r *GormPetRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Pet, error) {
	var pet models.Pet
	if err := r.db.WithContext(ctx).First(&pet, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &pet, nil
}

func (r *GormPetRepository) Create(ctx context.Context, pet *models.Pet) error {
	return r.db.WithContext(ctx).Create(pet).Error
}

func (r *GormPetRepository) Update(ctx context.Context, pet *models.Pet) error {
	return r.db.WithContext(ctx).Save(pet).Error
}
