package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/storekit/commerce-api/internal/models"
)

func seedProducts() []models.Product {
	return []models.Product{
		{ID: "p1", Name: "Chicken Waffle", Price: 12.99, Quantity: 10},
		{ID: "p2", Name: "Caesar Salad", Price: 8.99, Quantity: 3},
		{ID: "p3", Name: "Margherita Pizza", Price: 14.99, Quantity: 0},
	}
}

func TestInMemoryProductRepository_FindAllByID(t *testing.T) {
	repo := NewInMemoryProductRepository(seedProducts()...)

	tests := []struct {
		name      string
		ids       []string
		wantCount int
	}{
		{name: "all present", ids: []string{"p1", "p2", "p3"}, wantCount: 3},
		{name: "subset with missing ids", ids: []string{"p1", "p9"}, wantCount: 1},
		{name: "all missing", ids: []string{"p8", "p9"}, wantCount: 0},
		{name: "duplicate ids collapse", ids: []string{"p1", "p1", "p2"}, wantCount: 2},
		{name: "empty input", ids: nil, wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := repo.FindAllByID(context.Background(), tt.ids)
			if err != nil {
				t.Fatalf("FindAllByID() error = %v", err)
			}
			if len(products) != tt.wantCount {
				t.Errorf("FindAllByID() = %d products, want %d", len(products), tt.wantCount)
			}
		})
	}
}

func TestInMemoryProductRepository_FindAllByID_DoesNotMutate(t *testing.T) {
	repo := NewInMemoryProductRepository(seedProducts()...)
	ids := []string{"p1", "p2"}

	first, err := repo.FindAllByID(context.Background(), ids)
	if err != nil {
		t.Fatalf("FindAllByID() error = %v", err)
	}
	second, err := repo.FindAllByID(context.Background(), ids)
	if err != nil {
		t.Fatalf("FindAllByID() error = %v", err)
	}

	quantities := func(products []models.Product) map[string]int {
		out := make(map[string]int, len(products))
		for _, p := range products {
			out[p.ID] = p.Quantity
		}
		return out
	}

	got, want := quantities(second), quantities(first)
	for id, q := range want {
		if got[id] != q {
			t.Errorf("repeated read changed quantity for %s: %d -> %d", id, q, got[id])
		}
	}
}

func TestInMemoryProductRepository_UpdateQuantity(t *testing.T) {
	repo := NewInMemoryProductRepository(seedProducts()...)

	adjusted := []models.Product{
		{ID: "p1", Name: "Chicken Waffle", Price: 12.99, Quantity: 7},
		{ID: "p2", Name: "Caesar Salad", Price: 8.99, Quantity: 0},
	}
	if err := repo.UpdateQuantity(context.Background(), adjusted); err != nil {
		t.Fatalf("UpdateQuantity() error = %v", err)
	}

	p1, err := repo.GetByID(context.Background(), "p1")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if p1.Quantity != 7 {
		t.Errorf("p1 quantity = %d, want 7", p1.Quantity)
	}

	p2, err := repo.GetByID(context.Background(), "p2")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if p2.Quantity != 0 {
		t.Errorf("p2 quantity = %d, want 0", p2.Quantity)
	}

	// untouched products keep their stock
	p3, err := repo.GetByID(context.Background(), "p3")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if p3.Quantity != 0 {
		t.Errorf("p3 quantity = %d, want 0", p3.Quantity)
	}
}

func TestInMemoryProductRepository_Create(t *testing.T) {
	repo := NewInMemoryProductRepository()

	product := models.Product{ID: "p1", Name: "Greek Salad", Price: 9.49, Quantity: 4}
	if err := repo.Create(context.Background(), product); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := repo.Create(context.Background(), product); !errors.Is(err, ErrProductAlreadyExists) {
		t.Errorf("Create() duplicate error = %v, want ErrProductAlreadyExists", err)
	}

	byName, err := repo.FindByName(context.Background(), "Greek Salad")
	if err != nil {
		t.Fatalf("FindByName() error = %v", err)
	}
	if byName.ID != "p1" {
		t.Errorf("FindByName() id = %s, want p1", byName.ID)
	}

	if _, err := repo.FindByName(context.Background(), "Garden Salad"); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("FindByName() missing error = %v, want ErrProductNotFound", err)
	}
}
