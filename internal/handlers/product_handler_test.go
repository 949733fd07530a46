package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/storekit/commerce-api/internal/models"
	"github.com/storekit/commerce-api/internal/repository"
	"github.com/storekit/commerce-api/internal/service"
	"github.com/storekit/commerce-api/internal/validation"
	"github.com/storekit/commerce-api/pkg/logger"
)

func newProductRouter(t *testing.T, seed ...models.Product) *chi.Mux {
	t.Helper()

	productService := service.NewProductService(repository.NewInMemoryProductRepository(seed...))
	handler := NewProductHandler(productService, validation.New(), logger.New("error"))

	r := chi.NewRouter()
	r.Get("/api/product", handler.ListProducts)
	r.Get("/api/product/{productId}", handler.GetProduct)
	r.Post("/api/product", handler.CreateProduct)
	return r
}

func TestProductHandler_ListProducts(t *testing.T) {
	r := newProductRouter(t,
		models.Product{ID: "p1", Name: "Chicken Waffle", Price: 12.99, Quantity: 10},
		models.Product{ID: "p2", Name: "Caesar Salad", Price: 8.99, Quantity: 3},
	)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/product", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	var products []models.Product
	if err := json.NewDecoder(w.Body).Decode(&products); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(products) != 2 {
		t.Errorf("products = %d, want 2", len(products))
	}
}

func TestProductHandler_GetProduct(t *testing.T) {
	r := newProductRouter(t,
		models.Product{ID: "p1", Name: "Chicken Waffle", Price: 12.99, Quantity: 10},
	)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/product/p1", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	var product models.Product
	if err := json.NewDecoder(w.Body).Decode(&product); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if product.Name != "Chicken Waffle" {
		t.Errorf("name = %s, want Chicken Waffle", product.Name)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/product/p9", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("missing product status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestProductHandler_CreateProduct(t *testing.T) {
	r := newProductRouter(t)

	post := func(body []byte) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/product", bytes.NewReader(body)))
		return w
	}

	body, _ := json.Marshal(validation.CreateProductRequest{Name: "Belgian Waffle", Price: 10.99, Quantity: 25})
	w := post(body)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusCreated)
	}

	if w := post(body); w.Code != http.StatusConflict {
		t.Errorf("duplicate name status = %d, want %d", w.Code, http.StatusConflict)
	}

	bad, _ := json.Marshal(validation.CreateProductRequest{Name: "Bad", Price: -1, Quantity: 1})
	if w := post(bad); w.Code != http.StatusBadRequest {
		t.Errorf("negative price status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}
