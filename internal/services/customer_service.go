package services

import (
	"context"

	"techgear/internal/models"
	"techgear/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// CustomerService handles customer lookups and contact updates.
type CustomerService struct {
	repo     repositories.CustomerRepository
	validate *validator.Validate
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(repo repositories.CustomerRepository) *CustomerService {
	return &CustomerService{
		repo:     repo,
		validate: NewValidator(),
	}
}

// GetCustomer returns the customer's contact data joined with each of
// their orders.
func (s *CustomerService) GetCustomer(ctx context.Context, id uint) ([]models.CustomerOrderRow, error) {
	rows, err := s.repo.GetCustomer(ctx, id)
	if err != nil {
		return nil, storageError(err)
	}
	return rows, nil
}

// GetOrders returns every order line of the customer.
func (s *CustomerService) GetOrders(ctx context.Context, id uint) ([]models.OrderLineRow, error) {
	rows, err := s.repo.GetOrders(ctx, id)
	if err != nil {
		return nil, storageError(err)
	}
	return rows, nil
}

// UpdateCustomer validates in and overwrites the customer's email, phone and
// address. ErrNotFound means no row was changed.
func (s *CustomerService) UpdateCustomer(ctx context.Context, id uint, in models.CustomerUpdate) error {
	if err := validate(s.validate, in); err != nil {
		return err
	}

	changed, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return storageError(err)
	}
	if changed == 0 {
		return ErrNotFound
	}
	return nil
}
