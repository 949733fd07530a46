package validation

// OrderItemPayload is a single requested product/quantity pair
type OrderItemPayload struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// CreateOrderRequest is the payload for POST /api/order
type CreateOrderRequest struct {
	CustomerID string             `json:"customerId" validate:"required"`
	Items      []OrderItemPayload `json:"items" validate:"required,min=1,dive"`
}

// CreateCustomerRequest is the payload for POST /api/customer
type CreateCustomerRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// CreateProductRequest is the payload for POST /api/product
type CreateProductRequest struct {
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"gte=0"`
	Quantity int     `json:"quantity" validate:"gte=0"`
}
