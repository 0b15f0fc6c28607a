package impl

import (
	"context"
	"testing"

	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"
	mockRepo "crm/internal/mocks/repository"
	"crm/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAddressService_Create_CustomerNotFound(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	input := &usecase.CreateAddressInput{
		CustomerID:  99,
		AddressLine: "14 MG Road",
		City:        "Pune",
		State:       "Maharashtra",
		PinCode:     "411001",
	}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrCustomerNotFound, "customer not found"), func(factory *mockRepo.MockRepositoryFactory) {
		mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)
		factory.EXPECT().CustomerRepo().Return(mockCustomerRepo)
		mockCustomerRepo.EXPECT().FindByID(ctx, int64(99)).Return(nil, repository.ErrCustomerNotFound)
	})

	output, err := fx.service.Create(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrCustomerNotFound))
}

func TestAddressService_Create_InsertError(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	input := &usecase.CreateAddressInput{
		CustomerID:  7,
		AddressLine: "14 MG Road",
		City:        "Pune",
		State:       "Maharashtra",
		PinCode:     "411001",
	}

	fx.onExecute(ctx, errors.Wrap(errors.New("db error"), "failed to create address"), func(factory *mockRepo.MockRepositoryFactory) {
		mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)
		mockAddressRepo := mockRepo.NewMockAddressRepository(t)

		factory.EXPECT().CustomerRepo().Return(mockCustomerRepo)
		factory.EXPECT().AddressRepo().Return(mockAddressRepo)

		mockCustomerRepo.EXPECT().FindByID(ctx, int64(7)).Return(&entity.Customer{ID: 7}, nil)
		mockAddressRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Address")).Return(errors.New("db error"))
	})

	output, err := fx.service.Create(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.Contains(t, err.Error(), "failed to create address")
}

func TestAddressService_Update_NoFields(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	input := &usecase.UpdateAddressInput{}

	output, err := fx.service.Update(ctx, 3, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestAddressService_Update_NotFound(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	city := "Mumbai"
	input := &usecase.UpdateAddressInput{City: &city}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrAddressNotFound, "address not found"), func(factory *mockRepo.MockRepositoryFactory) {
		mockAddressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().AddressRepo().Return(mockAddressRepo)
		mockAddressRepo.EXPECT().FindByID(ctx, int64(99)).Return(nil, repository.ErrAddressNotFound)
	})

	output, err := fx.service.Update(ctx, 99, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAddressNotFound))
}
