package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/storekit/commerce-api/internal/service"
	"github.com/storekit/commerce-api/internal/validation"
)

// CustomerHandler handles customer-related HTTP requests
type CustomerHandler struct {
	customerService *service.CustomerService
	validate        *validatorv10.Validate
	log             *slog.Logger
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService, validate *validatorv10.Validate, log *slog.Logger) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		validate:        validate,
		log:             log,
	}
}

// CreateCustomer handles POST /api/customer
func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req validation.CreateCustomerRequest
	if err := validation.DecodeAndValidate(r, &req, h.validate); err != nil {
		h.log.Warn("rejected customer request", "error", err)
		WriteRequestError(w, err, h.log)
		return
	}

	customer, err := h.customerService.CreateCustomer(r.Context(), req.Name, req.Email)
	if err != nil {
		if errors.Is(err, service.ErrEmailAlreadyUsed) {
			WriteError(w, http.StatusConflict, "E-mail address already used", h.log)
			return
		}
		h.log.Error("failed to create customer", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusCreated, customer, h.log)
	h.log.Info("customer registered", "customer_id", customer.ID)
}
