package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/storekit/commerce-api/internal/models"
	"github.com/storekit/commerce-api/internal/repository"
)

var ErrEmailAlreadyUsed = errors.New("e-mail address already used")

// CustomerService handles customer registration and lookup
type CustomerService struct {
	repo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(repo repository.CustomerRepository) *CustomerService {
	return &CustomerService{
		repo: repo,
	}
}

// CreateCustomer registers a new customer, enforcing email uniqueness
func (s *CustomerService) CreateCustomer(ctx context.Context, name, email string) (*models.Customer, error) {
	_, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailAlreadyUsed
	}
	if !errors.Is(err, repository.ErrCustomerNotFound) {
		return nil, fmt.Errorf("check email uniqueness: %w", err)
	}

	customer := models.Customer{
		ID:    uuid.NewString(),
		Name:  name,
		Email: email,
	}
	if err := s.repo.Create(ctx, customer); err != nil {
		// a concurrent registration may win between the uniqueness
		// check and the write
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailAlreadyUsed
		}
		return nil, fmt.Errorf("persist customer: %w", err)
	}
	return &customer, nil
}

// GetCustomer returns a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id string) (*models.Customer, error) {
	return s.repo.FindByID(ctx, id)
}
