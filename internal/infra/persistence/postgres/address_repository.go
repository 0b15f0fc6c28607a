// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"
	"crm/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// addressRepository implements the domain.AddressRepository interface using GORM.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

// Create persists a new address for a customer.
func (repo *addressRepository) Create(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		// The service checks customer existence inside the same transaction,
		// so this only fires if the constraint catches something it missed.
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCustomerNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required address information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create address")
	}

	address.ID = addressM.ID
	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// FindByID retrieves an address by its unique ID.
func (repo *addressRepository) FindByID(ctx context.Context, id int64) (*entity.Address, error) {
	var addressM model.AddressModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&addressM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by id")
	}

	return toAddressDomain(&addressM), nil
}

// FindByCustomerID retrieves all addresses owned by a customer, most recently created first.
func (repo *addressRepository) FindByCustomerID(ctx context.Context, customerID int64) ([]*entity.Address, error) {
	var addressModels []*model.AddressModel
	err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&addressModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to find addresses by customer id")
	}

	addresses := make([]*entity.Address, 0, len(addressModels))
	for _, addressM := range addressModels {
		addresses = append(addresses, toAddressDomain(addressM))
	}

	return addresses, nil
}

// Update saves the full address row; GORM refreshes updated_at.
func (repo *addressRepository) Update(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Save(addressM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCustomerNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required address information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update address")
	}

	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toAddressDomain converts a GORM AddressModel to a domain Address entity.
func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	return &entity.Address{
		ID:          data.ID,
		CustomerID:  data.CustomerID,
		AddressLine: data.AddressLine,
		City:        data.City,
		State:       data.State,
		PinCode:     data.PinCode,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromAddressDomain converts a domain Address entity to a GORM AddressModel.
func fromAddressDomain(data *entity.Address) *model.AddressModel {
	if data == nil {
		return nil
	}

	return &model.AddressModel{
		ID:          data.ID,
		CustomerID:  data.CustomerID,
		AddressLine: data.AddressLine,
		City:        data.City,
		State:       data.State,
		PinCode:     data.PinCode,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
