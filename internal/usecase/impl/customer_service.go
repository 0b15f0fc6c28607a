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

// customerService implements the CustomerUsecase interface.
type customerService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewCustomerService is the constructor for customerService.
func NewCustomerService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.CustomerUsecase {
	return &customerService{
		txManager: txManager,
		logger:    logger,
	}
}

// Create inserts a new customer with server-assigned timestamps and returns
// the fully materialized record. Duplicates are permitted; there is no
// uniqueness constraint on any field combination.
func (srv *customerService) Create(ctx context.Context, input *usecase.CreateCustomerInput) (*usecase.CustomerOutput, error) {
	srv.logger.Debug("Creating customer", "city", input.City, "state", input.State)

	customer := customerFromCreateInput(input)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.CustomerRepo().Create(ctx, customer)
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to create customer")
	}

	return toCustomerOutput(customer), nil
}

// List returns one page of customers matching the filters, most recent first,
// plus the pagination envelope computed over the unpaginated match count.
func (srv *customerService) List(ctx context.Context, input *usecase.ListCustomersInput) (*usecase.ListCustomersOutput, error) {
	input.Normalize()

	filter := repository.CustomerFilter{
		City:    input.City,
		State:   input.State,
		PinCode: input.PinCode,
	}
	offset := (input.Page - 1) * input.Limit

	output := &usecase.ListCustomersOutput{
		Data: []*usecase.CustomerOutput{},
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.CustomerRepo()

		total, err := customerRepo.Count(ctx, filter)
		if err != nil {
			return errors.Wrap(err, "failed to count customers")
		}

		customers, err := customerRepo.List(ctx, filter, input.Limit, offset)
		if err != nil {
			return errors.Wrap(err, "failed to list customers")
		}

		for _, customer := range customers {
			output.Data = append(output.Data, toCustomerOutput(customer))
		}
		output.Pagination = usecase.Pagination{
			Page:       input.Page,
			Limit:      input.Limit,
			Total:      total,
			TotalPages: totalPages(total, input.Limit),
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	return output, nil
}

// GetWithAddresses returns the customer plus all owned addresses, most recent first.
func (srv *customerService) GetWithAddresses(ctx context.Context, id int64) (*usecase.CustomerDetailOutput, error) {
	var output *usecase.CustomerDetailOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customer, err := repoFactory.CustomerRepo().FindByIDWithAddresses(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return errors.Wrap(domainerrors.ErrCustomerNotFound, "customer not found")
			}

			return errors.Wrap(err, "failed to find customer")
		}
		output = toCustomerDetailOutput(customer)

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get customer")
	}

	return output, nil
}

// Update applies the supplied subset of firstName/lastName/phoneNumber and
// refreshes the updated timestamp. Supplying no recognized field is a
// validation error, not a no-op success.
func (srv *customerService) Update(ctx context.Context, id int64, input *usecase.UpdateCustomerInput) (*usecase.CustomerOutput, error) {
	if !input.HasFields() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("at least one field must be provided")
	}

	srv.logger.Debug("Updating customer", "customerID", id)

	var output *usecase.CustomerOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.CustomerRepo()

		customer, err := customerRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return errors.Wrap(domainerrors.ErrCustomerNotFound, "customer not found")
			}

			return errors.Wrap(err, "failed to find customer")
		}

		if input.FirstName != nil {
			customer.FirstName = *input.FirstName
		}
		if input.LastName != nil {
			customer.LastName = *input.LastName
		}
		if input.PhoneNumber != nil {
			customer.PhoneNumber = *input.PhoneNumber
		}

		if err := customerRepo.Update(ctx, customer); err != nil {
			return errors.Wrap(err, "failed to update customer")
		}
		output = toCustomerOutput(customer)

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to update customer")
	}

	return output, nil
}

// Delete removes the customer; the store cascades the delete to all owned addresses.
func (srv *customerService) Delete(ctx context.Context, id int64) error {
	srv.logger.Info("Deleting customer", "customerID", id)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.CustomerRepo().Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return errors.Wrap(domainerrors.ErrCustomerNotFound, "customer not found")
			}

			return errors.Wrap(err, "failed to delete customer")
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to delete customer")
	}

	return nil
}

// totalPages is ceil(total/limit), floored at 1 so an empty result still
// reports a single page.
func totalPages(total int64, limit int) int {
	pages := int((total + int64(limit) - 1) / int64(limit))
	if pages < 1 {
		pages = 1
	}

	return pages
}
