package models

import "time"

// OrderItem represents a requested product/quantity pair in an
// incoming order
type OrderItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// LineItem is a confirmed order line. UnitPrice is the product's price
// captured at order time, so historical orders keep the price paid
// regardless of later catalog changes.
type LineItem struct {
	ProductID string  `json:"productId" bson:"product_id"`
	UnitPrice float64 `json:"unitPrice" bson:"unit_price"`
	Quantity  int     `json:"quantity" bson:"quantity"`
}

// Order represents a confirmed order. Immutable once created.
type Order struct {
	ID         string     `json:"id" bson:"_id"`
	CustomerID string     `json:"customerId" bson:"customer_id"`
	Items      []LineItem `json:"items" bson:"items"`
	CreatedAt  time.Time  `json:"createdAt" bson:"created_at"`
}
