package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/storekit/commerce-api/internal/models"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the interface for order persistence.
// Create assigns the order's identity; orders are never mutated after
// creation.
type OrderRepository interface {
	Create(ctx context.Context, customer *models.Customer, items []models.LineItem) (*models.Order, error)
	GetByID(ctx context.Context, id string) (*models.Order, error)
}

// InMemoryOrderRepository implements OrderRepository with in-memory storage
type InMemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[string]models.Order
}

// NewInMemoryOrderRepository creates a new in-memory order repository
func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{
		orders: make(map[string]models.Order),
	}
}

// Create persists a new order for the given customer and line items
func (r *InMemoryOrderRepository) Create(ctx context.Context, customer *models.Customer, items []models.LineItem) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order := models.Order{
		ID:         uuid.NewString(),
		CustomerID: customer.ID,
		Items:      items,
		CreatedAt:  time.Now().UTC(),
	}
	r.orders[order.ID] = order
	return &order, nil
}

// GetByID returns an order by its ID
func (r *InMemoryOrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, exists := r.orders[id]
	if !exists {
		return nil, ErrOrderNotFound
	}
	return &order, nil
}
