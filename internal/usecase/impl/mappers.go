package impl

import (
	"crm/internal/domain/entity"
	"crm/internal/usecase"
)

// Helpers converting between input DTOs, domain entities and output DTOs.

func customerFromCreateInput(input *usecase.CreateCustomerInput) *entity.Customer {
	return &entity.Customer{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		PhoneNumber: input.PhoneNumber,
		City:        input.City,
		State:       input.State,
		PinCode:     input.PinCode,
	}
}

func addressFromCreateInput(input *usecase.CreateAddressInput) *entity.Address {
	return &entity.Address{
		CustomerID:  input.CustomerID,
		AddressLine: input.AddressLine,
		City:        input.City,
		State:       input.State,
		PinCode:     input.PinCode,
	}
}

func toCustomerOutput(customer *entity.Customer) *usecase.CustomerOutput {
	if customer == nil {
		return nil
	}

	return &usecase.CustomerOutput{
		ID:          customer.ID,
		FirstName:   customer.FirstName,
		LastName:    customer.LastName,
		PhoneNumber: customer.PhoneNumber,
		City:        customer.City,
		State:       customer.State,
		PinCode:     customer.PinCode,
		CreatedAt:   customer.CreatedAt,
		UpdatedAt:   customer.UpdatedAt,
	}
}

func toCustomerDetailOutput(customer *entity.Customer) *usecase.CustomerDetailOutput {
	if customer == nil {
		return nil
	}

	// Addresses must serialize as an array even when the customer has none.
	addresses := make([]*usecase.AddressOutput, 0, len(customer.Addresses))
	for _, address := range customer.Addresses {
		addresses = append(addresses, toAddressOutput(address))
	}

	return &usecase.CustomerDetailOutput{
		CustomerOutput: *toCustomerOutput(customer),
		Addresses:      addresses,
	}
}

func toAddressOutput(address *entity.Address) *usecase.AddressOutput {
	if address == nil {
		return nil
	}

	return &usecase.AddressOutput{
		ID:          address.ID,
		CustomerID:  address.CustomerID,
		AddressLine: address.AddressLine,
		City:        address.City,
		State:       address.State,
		PinCode:     address.PinCode,
		CreatedAt:   address.CreatedAt,
		UpdatedAt:   address.UpdatedAt,
	}
}
