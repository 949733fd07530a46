package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/storekit/commerce-api/internal/models"
	"github.com/storekit/commerce-api/internal/repository"
	"github.com/storekit/commerce-api/internal/service"
	"github.com/storekit/commerce-api/internal/validation"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
	validate     *validatorv10.Validate
	log          *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, validate *validatorv10.Validate, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		validate:     validate,
		log:          log,
	}
}

// CreateOrder handles POST /api/order
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req validation.CreateOrderRequest
	if err := validation.DecodeAndValidate(r, &req, h.validate); err != nil {
		h.log.Warn("rejected order request", "error", err)
		WriteRequestError(w, err, h.log)
		return
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order, err := h.orderService.CreateOrder(r.Context(), req.CustomerID, items)
	if err != nil {
		h.writeOrderError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, order, h.log)
	h.log.Info("order created",
		"order_id", order.ID,
		"customer_id", order.CustomerID,
		"items_count", len(order.Items),
	)
}

// GetOrder handles GET /api/order/{orderId}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")
	if orderID == "" {
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.log)
		return
	}

	order, err := h.orderService.GetOrder(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			WriteError(w, http.StatusNotFound, "Order not found", h.log)
			return
		}
		h.log.Error("failed to get order", "order_id", orderID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, order, h.log)
}

// writeOrderError maps order creation failures to HTTP statuses
func (h *OrderHandler) writeOrderError(w http.ResponseWriter, err error) {
	var notFound *service.ProductNotFoundError
	var noStock *service.InsufficientStockError

	switch {
	case errors.Is(err, service.ErrEmptyOrder):
		WriteError(w, http.StatusBadRequest, "Order must contain at least one item", h.log)
	case errors.Is(err, service.ErrInvalidQuantity):
		WriteError(w, http.StatusBadRequest, "Quantity must be positive", h.log)
	case errors.Is(err, service.ErrCustomerNotFound):
		WriteError(w, http.StatusNotFound, "Customer not found", h.log)
	case errors.As(err, &notFound):
		WriteError(w, http.StatusNotFound, notFound.Error(), h.log)
	case errors.As(err, &noStock):
		WriteError(w, http.StatusConflict, noStock.Error(), h.log)
	default:
		h.log.Error("failed to create order", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
	}
}
