package customers

import (
	"context"
	"errors"

	glassesapp "github.com/Anugrah-Lens/backend-anugrah-lens/internal/application/glasses"
	"github.com/Anugrah-Lens/backend-anugrah-lens/internal/domain/customer"
	"github.com/Anugrah-Lens/backend-anugrah-lens/internal/domain/shared"
	"github.com/google/uuid"
)

// CustomerService serves the customer read paths and cascading deletion
type CustomerService struct {
	customerRepo customer.Repository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo customer.Repository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// List returns all customers with their orders and ledgers nested
func (s *CustomerService) List(ctx context.Context) ([]glassesapp.CustomerResponse, error) {
	all, err := s.customerRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]glassesapp.CustomerResponse, 0, len(all))
	for _, c := range all {
		responses = append(responses, glassesapp.ToCustomerResponse(c))
	}
	return responses, nil
}

// Get returns one customer with nested orders and ledgers
func (s *CustomerService) Get(ctx context.Context, id uuid.UUID) (*glassesapp.CustomerResponse, error) {
	c, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFoundError("Customer not found")
		}
		return nil, err
	}
	resp := glassesapp.ToCustomerResponse(c)
	return &resp, nil
}

// Delete removes a customer, cascading through orders and installments
func (s *CustomerService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.customerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewNotFoundError("Customer not found")
		}
		return err
	}
	return nil
}

// DeleteAll wipes every customer, order and installment
func (s *CustomerService) DeleteAll(ctx context.Context) error {
	return s.customerRepo.DeleteAll(ctx)
}
