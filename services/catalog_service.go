package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/petbloom/backend/models"
	apperrors "github.com/petbloom/backend/pkg/errors"
	"github.com/petbloom/backend/pkg/logger"
	repositories "github.com/petbloom/backend/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CatalogService serves product and pet reads with a redis read-through
// cache. Writes go straight to postgres and drop the cached entry; cart
// lines are unaffected because their price was frozen at add time.
type CatalogService struct {
	products repositories.ProductRepository
	pets     repositories.PetRepository
	cache    *redis.Client
	cacheTTL time.Duration
}

func NewCatalogService(products repositories.ProductRepository, pets repositories.PetRepository, cache *redis.Client, cacheTTL time.Duration) *CatalogService {
	return &CatalogService{products: products, pets: pets, cache: cache, cacheTTL: cacheTTL}
}

func productKey(id uuid.UUID) string { return "catalog:product:" + id.String() }
func petKey(id uuid.UUID) string     { return "catalog:pet:" + id.String() }

func (s *CatalogService) ListProducts(ctx context.Context, category string) ([]models.Product, error) {
	products, err := s.products.FindAll(ctx, category)
	if err != nil {
		return nil, storageErr(err)
	}
	return products, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if cached, ok := cacheGet[models.Product](ctx, s.cache, productKey(id)); ok {
		return cached, nil
	}

	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, storageErr(err)
	}

	cacheSet(ctx, s.cache, productKey(id), product, s.cacheTTL)
	return product, nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, product *models.Product) error {
	if err := s.products.Create(ctx, product); err != nil {
		return storageErr(err)
	}
	return nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, product *models.Product) error {
	if err := s.products.Update(ctx, product); err != nil {
		return storageErr(err)
	}
	cacheDel(ctx, s.cache, productKey(product.ID))
	return nil
}

func (s *CatalogService) ListPets(ctx context.Context, species string) ([]models.Pet, error) {
	pets, err := s.pets.FindAll(ctx, species)
	if err != nil {
		return nil, storageErr(err)
	}
	return pets, nil
}

func (s *CatalogService) GetPet(ctx context.Context, id uuid.UUID) (*models.Pet, error) {
	if cached, ok := cacheGet[models.Pet](ctx, s.cache, petKey(id)); ok {
		return cached, nil
	}

	pet, err := s.pets.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, storageErr(err)
	}

	cacheSet(ctx, s.cache, petKey(id), pet, s.cacheTTL)
	return pet, nil
}

func (s *CatalogService) CreatePet(ctx context.Context, pet *models.Pet) error {
	if err := s.pets.Create(ctx, pet); err != nil {
		return storageErr(err)
	}
	return nil
}

func (s *CatalogService) UpdatePet(ctx context.Context, pet *models.Pet) error {
	if err := s.pets.Update(ctx, pet); err != nil {
		return storageErr(err)
	}
	cacheDel(ctx, s.cache, petKey(pet.ID))
	return nil
}

// Cache helpers. A nil client or any redis error degrades to the database
// read; the cache is never load-bearing.

func cacheGet[T any](ctx context.Context, client *redis.Client, key string) (*T, bool) {
	if client == nil {
		return nil, false
	}
	data, err := client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			logger.Warn(ctx, "Cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	var value T
	if err := json.Unmarshal([]byte(data), &value); err != nil {
		return nil, false
	}
	return &value, true
}

func cacheSet(ctx context.Context, client *redis.Client, key string, value interface{}, ttl time.Duration) {
	if client == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := client.Set(ctx, key, data, ttl).Err(); err != nil {
		logger.Warn(ctx, "Cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func cacheDel(ctx context.Context, client *redis.Client, key string) {
	if client == nil {
		return
	}
	if err := client.Del(ctx, key).Err(); err != nil {
		logger.Warn(ctx, "Cache invalidation failed", zap.String("key", key), zap.Error(err))
	}
}
