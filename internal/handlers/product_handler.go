package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/storekit/commerce-api/internal/repository"
	"github.com/storekit/commerce-api/internal/service"
	"github.com/storekit/commerce-api/internal/validation"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	productService *service.ProductService
	validate       *validatorv10.Validate
	log            *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService, validate *validatorv10.Validate, log *slog.Logger) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		validate:       validate,
		log:            log,
	}
}

// ListProducts handles GET /api/product
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.productService.ListProducts(r.Context())
	if err != nil {
		h.log.Error("failed to list products", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, products, h.log)
}

// GetProduct handles GET /api/product/{productId}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")
	if productID == "" {
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.log)
		return
	}

	product, err := h.productService.GetProduct(r.Context(), productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			WriteError(w, http.StatusNotFound, "Product not found", h.log)
			return
		}
		h.log.Error("failed to get product", "product_id", productID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, product, h.log)
}

// CreateProduct handles POST /api/product
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req validation.CreateProductRequest
	if err := validation.DecodeAndValidate(r, &req, h.validate); err != nil {
		h.log.Warn("rejected product request", "error", err)
		WriteRequestError(w, err, h.log)
		return
	}

	product, err := h.productService.CreateProduct(r.Context(), req.Name, req.Price, req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrProductNameTaken) {
			WriteError(w, http.StatusConflict, "A product with this name already exists", h.log)
			return
		}
		h.log.Error("failed to create product", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusCreated, product, h.log)
	h.log.Info("product registered", "product_id", product.ID, "quantity", product.Quantity)
}
