package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/storekit/commerce-api/internal/models"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrDuplicateEmail reports a write that lost the race against a
	// concurrent registration of the same email
	ErrDuplicateEmail = errors.New("email already registered")
)

// CustomerRepository defines the interface for customer data access
type CustomerRepository interface {
	FindByID(ctx context.Context, id string) (*models.Customer, error)
	FindByEmail(ctx context.Context, email string) (*models.Customer, error)
	Create(ctx context.Context, customer models.Customer) error
}

// expected customer volume for sizing the email filter
const expectedCustomers = 100_000

// InMemoryCustomerRepository implements CustomerRepository with in-memory
// storage. A Bloom filter over registered emails lets the common
// "email never seen" registration path answer without touching the
// index; a positive filter hit still falls through to the exact map.
type InMemoryCustomerRepository struct {
	mu      sync.RWMutex
	byID    map[string]models.Customer
	byEmail map[string]string // email -> customer id
	emails  *bloom.BloomFilter
}

// NewInMemoryCustomerRepository creates a new in-memory customer repository
func NewInMemoryCustomerRepository() *InMemoryCustomerRepository {
	return &InMemoryCustomerRepository{
		byID:    make(map[string]models.Customer),
		byEmail: make(map[string]string),
		emails:  bloom.NewWithEstimates(expectedCustomers, 0.01),
	}
}

// FindByID returns a customer by its ID
func (r *InMemoryCustomerRepository) FindByID(ctx context.Context, id string) (*models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customer, exists := r.byID[id]
	if !exists {
		return nil, ErrCustomerNotFound
	}
	return &customer, nil
}

// FindByEmail returns the customer registered under the given email
func (r *InMemoryCustomerRepository) FindByEmail(ctx context.Context, email string) (*models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// definite miss, no need to consult the index
	if !r.emails.TestString(email) {
		return nil, ErrCustomerNotFound
	}

	id, exists := r.byEmail[email]
	if !exists {
		// false positive from the filter
		return nil, ErrCustomerNotFound
	}
	customer := r.byID[id]
	return &customer, nil
}

// Create adds a new customer
func (r *InMemoryCustomerRepository) Create(ctx context.Context, customer models.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[customer.Email]; exists {
		return ErrDuplicateEmail
	}

	r.byID[customer.ID] = customer
	r.byEmail[customer.Email] = customer.ID
	r.emails.AddString(customer.Email)
	return nil
}
