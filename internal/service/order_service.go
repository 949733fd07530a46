package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/storekit/commerce-api/internal/models"
	"github.com/storekit/commerce-api/internal/repository"
)

var (
	ErrEmptyOrder       = errors.New("order must contain at least one item")
	ErrInvalidQuantity  = errors.New("quantity must be positive")
	ErrCustomerNotFound = errors.New("customer not found")
)

// ProductNotFoundError reports a requested product id that is absent
// from the catalog
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %s does not exist", e.ProductID)
}

// InsufficientStockError reports a requested quantity exceeding the
// product's available stock
type InsufficientStockError struct {
	ProductID string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("product %s does not have enough stock", e.ProductID)
}

// CustomerFinder resolves a customer id to its record
type CustomerFinder interface {
	FindByID(ctx context.Context, id string) (*models.Customer, error)
}

// StockLedger resolves product batches and commits quantity adjustments
type StockLedger interface {
	FindAllByID(ctx context.Context, ids []string) ([]models.Product, error)
	UpdateQuantity(ctx context.Context, products []models.Product) error
}

// OrderStore persists validated orders
type OrderStore interface {
	Create(ctx context.Context, customer *models.Customer, items []models.LineItem) (*models.Order, error)
	GetByID(ctx context.Context, id string) (*models.Order, error)
}

// OrderService handles order creation business logic
type OrderService struct {
	customers CustomerFinder
	products  StockLedger
	orders    OrderStore
}

// NewOrderService creates a new order service
func NewOrderService(customers CustomerFinder, products StockLedger, orders OrderStore) *OrderService {
	return &OrderService{
		customers: customers,
		products:  products,
		orders:    orders,
	}
}

// CreateOrder validates the requested items against the customer and
// the current stock, persists the order, and commits the decremented
// quantities. Validation fully precedes persistence, so any failure
// leaves no order row and no stock change.
//
// All items are resolved through a single batch lookup; a per-product
// remaining-quantity map tracks decrements across the pass so a basket
// listing the same product twice cannot over-allocate its stock.
//
// The stock check spans a read followed by a later write with no lock
// or version guard, so concurrent invocations racing on one product
// can both pass validation. Callers needing that guarantee must
// serialize at the store.
func (s *OrderService) CreateOrder(ctx context.Context, customerID string, items []models.OrderItem) (*models.Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
	}

	customer, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("resolve customer: %w", err)
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}

	// one round trip for the whole basket, anchoring every item
	// against the same stock snapshot
	resolved, err := s.products.FindAllByID(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve products: %w", err)
	}

	byID := make(map[string]models.Product, len(resolved))
	remaining := make(map[string]int, len(resolved))
	for _, product := range resolved {
		byID[product.ID] = product
		remaining[product.ID] = product.Quantity
	}

	lineItems := make([]models.LineItem, 0, len(items))
	for _, item := range items {
		product, ok := byID[item.ProductID]
		if !ok {
			return nil, &ProductNotFoundError{ProductID: item.ProductID}
		}
		// checked against the running total, not the original stock,
		// so a repeated product id sees earlier decrements
		if remaining[item.ProductID] < item.Quantity {
			return nil, &InsufficientStockError{ProductID: item.ProductID}
		}

		lineItems = append(lineItems, models.LineItem{
			ProductID: product.ID,
			UnitPrice: product.Price,
			Quantity:  item.Quantity,
		})
		remaining[item.ProductID] -= item.Quantity
	}

	order, err := s.orders.Create(ctx, customer, lineItems)
	if err != nil {
		return nil, fmt.Errorf("persist order: %w", err)
	}

	adjusted := make([]models.Product, 0, len(resolved))
	for _, product := range resolved {
		product.Quantity = remaining[product.ID]
		adjusted = append(adjusted, product)
	}
	if err := s.products.UpdateQuantity(ctx, adjusted); err != nil {
		return nil, fmt.Errorf("commit stock adjustment: %w", err)
	}

	return order, nil
}

// GetOrder returns a previously created order by its ID
func (s *OrderService) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	return s.orders.GetByID(ctx, id)
}
