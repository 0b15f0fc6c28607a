package impl

import (
	"context"
	"testing"

	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"
	mockRepo "crm/internal/mocks/repository"
	"crm/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCustomerService_GetWithAddresses_NotFound(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrCustomerNotFound, "customer not found"), func(factory *mockRepo.MockRepositoryFactory) {
		mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)
		factory.EXPECT().CustomerRepo().Return(mockCustomerRepo)
		mockCustomerRepo.EXPECT().FindByIDWithAddresses(ctx, int64(99)).Return(nil, repository.ErrCustomerNotFound)
	})

	output, err := fx.service.GetWithAddresses(ctx, 99)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrCustomerNotFound))
}

func TestCustomerService_GetWithAddresses_FindError(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()

	fx.onExecute(ctx, errors.Wrap(errors.New("db error"), "failed to find customer"), func(factory *mockRepo.MockRepositoryFactory) {
		mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)
		factory.EXPECT().CustomerRepo().Return(mockCustomerRepo)
		mockCustomerRepo.EXPECT().FindByIDWithAddresses(ctx, int64(7)).Return(nil, errors.New("db error"))
	})

	output, err := fx.service.GetWithAddresses(ctx, 7)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.Contains(t, err.Error(), "failed to find customer")
}

func TestCustomerService_Update_NoFields(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	input := &usecase.UpdateCustomerInput{}

	output, err := fx.service.Update(ctx, 7, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestCustomerService_Update_NotFound(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	firstName := "Aisha"
	input := &usecase.UpdateCustomerInput{FirstName: &firstName}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrCustomerNotFound, "customer not found"), func(factory *mockRepo.MockRepositoryFactory) {
		mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)
		factory.EXPECT().CustomerRepo().Return(mockCustomerRepo)
		mockCustomerRepo.EXPECT().FindByID(ctx, int64(99)).Return(nil, repository.ErrCustomerNotFound)
	})

	output, err := fx.service.Update(ctx, 99, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrCustomerNotFound))
}

func TestCustomerService_Delete_NotFound(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrCustomerNotFound, "customer not found"), func(factory *mockRepo.MockRepositoryFactory) {
		mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)
		factory.EXPECT().CustomerRepo().Return(mockCustomerRepo)
		mockCustomerRepo.EXPECT().Delete(ctx, int64(99)).Return(repository.ErrCustomerNotFound)
	})

	err := fx.service.Delete(ctx, 99)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCustomerNotFound))
}

func TestCustomerService_List_CountError(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	input := &usecase.ListCustomersInput{}

	fx.onExecute(ctx, errors.Wrap(errors.New("db error"), "failed to count customers"), func(factory *mockRepo.MockRepositoryFactory) {
		mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)
		factory.EXPECT().CustomerRepo().Return(mockCustomerRepo)
		mockCustomerRepo.EXPECT().Count(ctx, repository.CustomerFilter{}).Return(0, errors.New("db error"))
	})

	output, err := fx.service.List(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.Contains(t, err.Error(), "failed to count customers")
}
