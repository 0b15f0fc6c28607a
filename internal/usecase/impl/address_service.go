// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"
	"crm/internal/usecase"

	"github.com/pkg/errors"
)

// addressService implements the AddressUsecase interface.
type addressService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.AddressUsecase {
	return &addressService{
		txManager: txManager,
		logger:    logger,
	}
}

// Create attaches a new address to an existing customer. The existence check
// and the insert run in the same transaction, so the customer cannot vanish
// between the two.
func (srv *addressService) Create(ctx context.Context, input *usecase.CreateAddressInput) (*usecase.AddressOutput, error) {
	srv.logger.Debug("Creating address", "customerID", input.CustomerID)

	address := addressFromCreateInput(input)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.CustomerRepo().FindByID(ctx, input.CustomerID); err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return errors.Wrap(domainerrors.ErrCustomerNotFound, "customer not found")
			}

			return errors.Wrap(err, "failed to find customer")
		}

		if err := repoFactory.AddressRepo().Create(ctx, address); err != nil {
			return errors.Wrap(err, "failed to create address")
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to create address")
	}

	return toAddressOutput(address), nil
}

// Update applies the supplied subset of addressLine/city/state/pinCode and
// refreshes the updated timestamp. The owning customer never changes.
func (srv *addressService) Update(ctx context.Context, id int64, input *usecase.UpdateAddressInput) (*usecase.AddressOutput, error) {
	if !input.HasFields() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("at least one field must be provided")
	}

	srv.logger.Debug("Updating address", "addressID", id)

	var output *usecase.AddressOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		address, err := addressRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return errors.Wrap(domainerrors.ErrAddressNotFound, "address not found")
			}

			return errors.Wrap(err, "failed to find address")
		}

		if input.AddressLine != nil {
			address.AddressLine = *input.AddressLine
		}
		if input.City != nil {
			address.City = *input.City
		}
		if input.State != nil {
			address.State = *input.State
		}
		if input.PinCode != nil {
			address.PinCode = *input.PinCode
		}

		if err := addressRepo.Update(ctx, address); err != nil {
			return errors.Wrap(err, "failed to update address")
		}
		output = toAddressOutput(address)

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to update address")
	}

	return output, nil
}
