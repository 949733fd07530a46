package models

// Product represents a catalog item with its current stock level
// Quantity is decremented by order creation and otherwise owned by
// inventory management
type Product struct {
	ID       string  `json:"id" bson:"_id"`
	Name     string  `json:"name" bson:"name"`
	Price    float64 `json:"price" bson:"price"`
	Quantity int     `json:"quantity" bson:"quantity"`
}
