package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/petbloom/backend/models"
	"gorm.io/gorm"
)

// AddressRepository defines the interface for user address data access.
// CreateWithDefault and SaveWithDefault run the clear-then-set sequence for
// the single-default invariant inside one transaction.
type AddressRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]models.UserAddress, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.UserAddress, error)
	Create(ctx context.Context, address *models.UserAddress) error
	CreateWithDefault(ctx context.Context, address *models.UserAddress) error
	Save(ctx context.Context, address *models.UserAddress) error
	SaveWithDefault(ctx context.Context, address *models.UserAddress) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// GormAddressRepository implements AddressRepository using GORM
type GormAddressRepository struct {
	db *gorm.DB
}

func NewGormAddressRepository(db *gorm.DB) AddressRepository {
	return &GormAddressRepository{db: db}
}

func (r *GormAddressRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]models.UserAddress, error) {
	var addresses []models.UserAddress
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&addresses).Error; err != nil {
		return nil, err
	}
	return addresses, nil
}

func (r *GormAddressRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.UserAddress, error) {
	var address models.UserAddress
	if err := r.db.WithContext(ctx).First(&address, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &address, nil
}

func (r *GormAddressRepository) Create(ctx context.Context, address *models.UserAddress) error {
	return r.db.WithContext(ctx).Create(address).Error
}

// CreateWithDefault inserts the address and clears the default flag on the
// owner's other rows in the same transaction.
func (r *GormAddressRepository) CreateWithDefault(ctx context.Context, address *models.UserAddress) error {
	address.IsDefault = true
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(address).Error; err != nil {
			return err
		}
		return applyDefaultFlag(tx, &models.UserAddress{}, address.UserID, address.ID)
	})
}

func (r *GormAddressRepository) Save(ctx context.Context, address *models.UserAddress) error {
	return r.db.WithContext(ctx).Save(address).Error
}

// SaveWithDefault persists the address as the owner's default, unsetting
// every other default in the same transaction.
func (r *GormAddressRepository) SaveWithDefault(ctx context.Context, address *models.UserAddress) error {
	address.IsDefault = true
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(address).Error; err != nil {
			return err
		}
		return applyDefaultFlag(tx, &models.UserAddress{}, address.UserID, address.ID)
	})
}

func (r *GormAddressRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.UserAddress{}, "id = ?", id).Error
}
