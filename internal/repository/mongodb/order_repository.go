package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/storekit/commerce-api/internal/models"
	"github.com/storekit/commerce-api/internal/repository"
)

// OrderRepository implements repository.OrderRepository backed by a
// MongoDB collection
type OrderRepository struct {
	collection *mongo.Collection
}

// NewOrderRepository creates an order repository over the "orders"
// collection
func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{
		collection: db.Collection("orders"),
	}
}

// Create assigns the order id and inserts the order document
func (r *OrderRepository) Create(ctx context.Context, customer *models.Customer, items []models.LineItem) (*models.Order, error) {
	order := models.Order{
		ID:         uuid.NewString(),
		CustomerID: customer.ID,
		Items:      items,
		CreatedAt:  time.Now().UTC(),
	}

	if _, err := r.collection.InsertOne(ctx, order); err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}
	return &order, nil
}

// GetByID returns an order by its ID
func (r *OrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order %s: %w", id, err)
	}
	return &order, nil
}
