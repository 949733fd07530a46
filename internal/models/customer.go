package models

// Customer represents a registered customer
// Email is unique across all customers; enforced at registration
type Customer struct {
	ID    string `json:"id" bson:"_id"`
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
}
