package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/storekit/commerce-api/internal/models"
	"github.com/storekit/commerce-api/internal/repository"
)

var ErrProductNameTaken = errors.New("a product with this name already exists")

// ProductService handles business logic for products
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// ListProducts returns all available products
func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.repo.GetAll(ctx)
}

// GetProduct returns a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateProduct registers a new catalog item, enforcing name uniqueness
func (s *ProductService) CreateProduct(ctx context.Context, name string, price float64, quantity int) (*models.Product, error) {
	_, err := s.repo.FindByName(ctx, name)
	if err == nil {
		return nil, ErrProductNameTaken
	}
	if !errors.Is(err, repository.ErrProductNotFound) {
		return nil, fmt.Errorf("check name uniqueness: %w", err)
	}

	product := models.Product{
		ID:       uuid.NewString(),
		Name:     name,
		Price:    price,
		Quantity: quantity,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("persist product: %w", err)
	}
	return &product, nil
}
