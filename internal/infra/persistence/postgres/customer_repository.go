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

// customerRepository implements the domain.CustomerRepository interface using GORM.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
// It returns the repository as a domain.CustomerRepository interface, adhering to dependency inversion.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

// Create persists a new customer entity to the database.
func (repo *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)

	if err := repo.db.WithContext(ctx).Create(customerM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required customer information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create customer")
	}

	// Carry the generated values back onto the entity.
	customer.ID = customerM.ID
	customer.CreatedAt = customerM.CreatedAt
	customer.UpdatedAt = customerM.UpdatedAt

	return nil
}

// FindByID retrieves a single customer by ID, without addresses.
func (repo *customerRepository) FindByID(ctx context.Context, id int64) (*entity.Customer, error) {
	var customerM model.CustomerModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&customerM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by id")
	}

	return toCustomerDomain(&customerM), nil
}

// FindByIDWithAddresses retrieves a customer and preloads its addresses,
// most recently created first.
func (repo *customerRepository) FindByIDWithAddresses(ctx context.Context, id int64) (*entity.Customer, error) {
	var customerM model.CustomerModel
	err := repo.db.WithContext(ctx).
		Preload("Addresses", func(db *gorm.DB) *gorm.DB {
			return db.Order("addresses.created_at DESC")
		}).
		Where("id = ?", id).
		First(&customerM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer with addresses")
	}

	return toCustomerDomain(&customerM), nil
}

// List returns a page of customers matching the filter, most recently created first.
func (repo *customerRepository) List(ctx context.Context, filter repository.CustomerFilter, limit, offset int) ([]*entity.Customer, error) {
	var customerModels []*model.CustomerModel
	err := applyCustomerFilter(repo.db.WithContext(ctx), filter).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&customerModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	customers := make([]*entity.Customer, 0, len(customerModels))
	for _, customerM := range customerModels {
		customers = append(customers, toCustomerDomain(customerM))
	}

	return customers, nil
}

// Count returns the number of customers matching the filter, ignoring pagination.
func (repo *customerRepository) Count(ctx context.Context, filter repository.CustomerFilter) (int64, error) {
	var total int64
	err := applyCustomerFilter(repo.db.WithContext(ctx).Model(&model.CustomerModel{}), filter).
		Count(&total).Error

	if err != nil {
		return 0, errors.Wrap(err, "failed to count customers")
	}

	return total, nil
}

// Update saves the full customer row; GORM refreshes updated_at.
func (repo *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)

	if err := repo.db.WithContext(ctx).Save(customerM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required customer information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update customer")
	}

	customer.UpdatedAt = customerM.UpdatedAt

	return nil
}

// Delete removes a customer; the addresses go with it via the FK cascade.
func (repo *customerRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.CustomerModel{}, id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete customer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

// applyCustomerFilter adds the listing filter conditions: case-insensitive
// substring matches on city and state, plain substring on pin_code.
func applyCustomerFilter(db *gorm.DB, filter repository.CustomerFilter) *gorm.DB {
	if filter.City != "" {
		db = db.Where("city ILIKE ?", "%"+filter.City+"%")
	}
	if filter.State != "" {
		db = db.Where("state ILIKE ?", "%"+filter.State+"%")
	}
	if filter.PinCode != "" {
		db = db.Where("pin_code LIKE ?", "%"+filter.PinCode+"%")
	}

	return db
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toCustomerDomain converts a GORM CustomerModel to a domain Customer entity.
func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	if data == nil {
		return nil
	}

	customer := &entity.Customer{
		ID:          data.ID,
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		PhoneNumber: data.PhoneNumber,
		City:        data.City,
		State:       data.State,
		PinCode:     data.PinCode,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}

	if data.Addresses != nil {
		addresses := make([]*entity.Address, 0, len(data.Addresses))
		for _, addressM := range data.Addresses {
			addresses = append(addresses, toAddressDomain(addressM))
		}
		customer.Addresses = addresses
	}

	return customer
}

// fromCustomerDomain converts a domain Customer entity to a GORM CustomerModel for persistence.
// Addresses are managed through their own repository and deliberately not mapped.
func fromCustomerDomain(data *entity.Customer) *model.CustomerModel {
	if data == nil {
		return nil
	}

	return &model.CustomerModel{
		ID:          data.ID,
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		PhoneNumber: data.PhoneNumber,
		City:        data.City,
		State:       data.State,
		PinCode:     data.PinCode,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
