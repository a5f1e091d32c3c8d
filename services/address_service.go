package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/petbloom/backend/models"
	repositories "github.com/petbloom/backend/repository"
)

// AddressInput is the caller-supplied address payload.
type AddressInput struct {
	Street    string `json:"street" binding:"required"`
	City      string `json:"city" binding:"required"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code"`
	Country   string `json:"country" binding:"required"`
	IsDefault bool   `json:"is_default"`
}

// AddressService owns the single-default invariant: at most one address per
// user carries the default flag at any observable time. Setting a new
// default clears the others inside the same transaction.
type AddressService struct {
	addresses repositories.AddressRepository
}

func NewAddressService(addresses repositories.AddressRepository) *AddressService {
	return &AddressService{addresses: addresses}
}

func (s *AddressService) List(ctx context.Context, userID uuid.UUID) ([]models.UserAddress, error) {
	addresses, err := s.addresses.FindByUserID(ctx, userID)
	if err != nil {
		return nil, storageErr(err)
	}
	return addresses, nil
}

func (s *AddressService) Get(ctx context.Context, userID, addressID uuid.UUID) (*models.UserAddress, error) {
	return Authorize(ctx, userID,
		func(ctx context.Context) (*models.UserAddress, error) {
			return s.addresses.FindByID(ctx, addressID)
		},
		func(a *models.UserAddress) uuid.UUID { return a.UserID },
	)
}

// Create persists a new address. With IsDefault set the insert and the
// clearing of the owner's other defaults commit together or not at all.
func (s *AddressService) Create(ctx context.Context, userID uuid.UUID, input AddressInput) (*models.UserAddress, error) {
	address := &models.UserAddress{
		UserID:    userID,
		Street:    input.Street,
		City:      input.City,
		State:     input.State,
		ZipCode:   input.ZipCode,
		Country:   input.Country,
		IsDefault: input.IsDefault,
	}

	var err error
	if input.IsDefault {
		err = s.addresses.CreateWithDefault(ctx, address)
	} else {
		err = s.addresses.Create(ctx, address)
	}
	if err != nil {
		return nil, storageErr(err)
	}
	return address, nil
}

// Update rewrites an owned address. Promoting it to default runs under the
// same transactional clear-then-set as Create; demoting or leaving the flag
// alone touches no other row.
func (s *AddressService) Update(ctx context.Context, userID, addressID uuid.UUID, input AddressInput) (*models.UserAddress, error) {
	address, err := s.Get(ctx, userID, addressID)
	if err != nil {
		return nil, err
	}

	address.Street = input.Street
	address.City = input.City
	address.State = input.State
	address.ZipCode = input.ZipCode
	address.Country = input.Country
	address.IsDefault = input.IsDefault

	if input.IsDefault {
		err = s.addresses.SaveWithDefault(ctx, address)
	} else {
		err = s.addresses.Save(ctx, address)
	}
	if err != nil {
		return nil, storageErr(err)
	}
	return address, nil
}

func (s *AddressService) Delete(ctx context.Context, userID, addressID uuid.UUID) error {
	if _, err := s.Get(ctx, userID, addressID); err != nil {
		return err
	}
	if err := s.addresses.Delete(ctx, addressID); err != nil {
		return storageErr(err)
	}
	return nil
}
