package handlers

import (
	"bytes"
	"context"
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

func newOrderHandler(t *testing.T) *OrderHandler {
	t.Helper()

	customerRepo := repository.NewInMemoryCustomerRepository()
	if err := customerRepo.Create(context.Background(), models.Customer{
		ID: "c1", Name: "Alice", Email: "alice@example.com",
	}); err != nil {
		t.Fatalf("seed customer: %v", err)
	}

	productRepo := repository.NewInMemoryProductRepository(
		models.Product{ID: "p1", Name: "Chicken Waffle", Price: 12.99, Quantity: 10},
		models.Product{ID: "p2", Name: "Caesar Salad", Price: 8.99, Quantity: 1},
	)
	orderRepo := repository.NewInMemoryOrderRepository()

	orderService := service.NewOrderService(customerRepo, productRepo, orderRepo)
	return NewOrderHandler(orderService, validation.New(), logger.New("error"))
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
		checkResponse  func(*testing.T, *models.Order)
	}{
		{
			name: "successful order",
			requestBody: validation.CreateOrderRequest{
				CustomerID: "c1",
				Items: []validation.OrderItemPayload{
					{ProductID: "p1", Quantity: 2},
				},
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, order *models.Order) {
				if order.ID == "" {
					t.Error("order ID is empty")
				}
				if len(order.Items) != 1 {
					t.Fatalf("expected 1 line item, got %d", len(order.Items))
				}
				if order.Items[0].UnitPrice != 12.99 {
					t.Errorf("unit price = %f, want 12.99", order.Items[0].UnitPrice)
				}
			},
		},
		{
			name: "multiple items order",
			requestBody: validation.CreateOrderRequest{
				CustomerID: "c1",
				Items: []validation.OrderItemPayload{
					{ProductID: "p1", Quantity: 1},
					{ProductID: "p2", Quantity: 1},
				},
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, order *models.Order) {
				if len(order.Items) != 2 {
					t.Errorf("expected 2 line items, got %d", len(order.Items))
				}
			},
		},
		{
			name: "empty order",
			requestBody: validation.CreateOrderRequest{
				CustomerID: "c1",
				Items:      []validation.OrderItemPayload{},
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "zero quantity",
			requestBody: validation.CreateOrderRequest{
				CustomerID: "c1",
				Items: []validation.OrderItemPayload{
					{ProductID: "p1", Quantity: 0},
				},
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown customer",
			requestBody: validation.CreateOrderRequest{
				CustomerID: "nobody",
				Items: []validation.OrderItemPayload{
					{ProductID: "p1", Quantity: 1},
				},
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "unknown product",
			requestBody: validation.CreateOrderRequest{
				CustomerID: "c1",
				Items: []validation.OrderItemPayload{
					{ProductID: "p9", Quantity: 1},
				},
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "insufficient stock",
			requestBody: validation.CreateOrderRequest{
				CustomerID: "c1",
				Items: []validation.OrderItemPayload{
					{ProductID: "p2", Quantity: 5},
				},
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "invalid JSON",
			requestBody:    "invalid json",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newOrderHandler(t)

			var body []byte
			var err error
			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, err = json.Marshal(tt.requestBody)
				if err != nil {
					t.Fatalf("failed to marshal request: %v", err)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/api/order", bytes.NewReader(body))
			w := httptest.NewRecorder()

			handler.CreateOrder(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.expectedStatus)
			}

			if tt.expectedStatus == http.StatusCreated && tt.checkResponse != nil {
				var order models.Order
				if err := json.NewDecoder(w.Body).Decode(&order); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				tt.checkResponse(t, &order)
			}
		})
	}
}

func TestOrderHandler_GetOrder(t *testing.T) {
	handler := newOrderHandler(t)

	r := chi.NewRouter()
	r.Post("/api/order", handler.CreateOrder)
	r.Get("/api/order/{orderId}", handler.GetOrder)

	// create an order first
	body, _ := json.Marshal(validation.CreateOrderRequest{
		CustomerID: "c1",
		Items:      []validation.OrderItemPayload{{ProductID: "p1", Quantity: 1}},
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/order", bytes.NewReader(body)))
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want %d", w.Code, http.StatusCreated)
	}
	var created models.Order
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("failed to decode created order: %v", err)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/order/"+created.ID, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d, want %d", w.Code, http.StatusOK)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/order/missing", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("get missing status = %d, want %d", w.Code, http.StatusNotFound)
	}
}
