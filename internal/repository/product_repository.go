package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/storekit/commerce-api/internal/models"
)

var (
	ErrProductNotFound      = errors.New("product not found")
	ErrProductAlreadyExists = errors.New("product already exists")
)

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	FindByName(ctx context.Context, name string) (*models.Product, error)

	// FindAllByID resolves a batch of product ids in one call and
	// returns the subset that exists, in no guaranteed order. Missing
	// ids are simply absent from the result; callers reconcile.
	FindAllByID(ctx context.Context, ids []string) ([]models.Product, error)

	// UpdateQuantity persists already-adjusted quantity values for the
	// whole batch. It performs no validation; the caller is trusted to
	// have computed non-negative results.
	UpdateQuantity(ctx context.Context, products []models.Product) error

	Create(ctx context.Context, product models.Product) error
}

// InMemoryProductRepository implements ProductRepository with in-memory storage
type InMemoryProductRepository struct {
	mu       sync.RWMutex
	products map[string]models.Product
}

// NewInMemoryProductRepository creates a new in-memory product repository,
// optionally seeded with an initial catalog
func NewInMemoryProductRepository(seed ...models.Product) *InMemoryProductRepository {
	products := make(map[string]models.Product, len(seed))
	for _, p := range seed {
		products[p.ID] = p
	}
	return &InMemoryProductRepository{products: products}
}

// GetAll returns all products
func (r *InMemoryProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]models.Product, 0, len(r.products))
	for _, product := range r.products {
		products = append(products, product)
	}
	return products, nil
}

// GetByID returns a product by its ID
func (r *InMemoryProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, exists := r.products[id]
	if !exists {
		return nil, ErrProductNotFound
	}
	return &product, nil
}

// FindByName returns a product by its exact name
func (r *InMemoryProductRepository) FindByName(ctx context.Context, name string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, product := range r.products {
		if product.Name == name {
			p := product
			return &p, nil
		}
	}
	return nil, ErrProductNotFound
}

// FindAllByID returns the matching subset of the requested ids
func (r *InMemoryProductRepository) FindAllByID(ctx context.Context, ids []string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool, len(ids))
	products := make([]models.Product, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true

		if product, exists := r.products[id]; exists {
			products = append(products, product)
		}
	}
	return products, nil
}

// UpdateQuantity stores the adjusted quantities for the given batch
func (r *InMemoryProductRepository) UpdateQuantity(ctx context.Context, products []models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, product := range products {
		stored, exists := r.products[product.ID]
		if !exists {
			return ErrProductNotFound
		}
		stored.Quantity = product.Quantity
		r.products[product.ID] = stored
	}
	return nil
}

// Create adds a new product
func (r *InMemoryProductRepository) Create(ctx context.Context, product models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.products[product.ID]; exists {
		return ErrProductAlreadyExists
	}
	r.products[product.ID] = product
	return nil
}
