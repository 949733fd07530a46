package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/storekit/commerce-api/internal/models"
	"github.com/storekit/commerce-api/internal/repository"
)

// CustomerRepository implements repository.CustomerRepository backed by
// a MongoDB collection
type CustomerRepository struct {
	collection *mongo.Collection
}

// NewCustomerRepository creates a customer repository over the
// "customers" collection
func NewCustomerRepository(db *mongo.Database) *CustomerRepository {
	return &CustomerRepository{
		collection: db.Collection("customers"),
	}
}

// EnsureIndexes creates the unique email index. Call once at startup.
func (r *CustomerRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create email index: %w", err)
	}
	return nil
}

// FindByID returns a customer by its ID
func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*models.Customer, error) {
	var customer models.Customer
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&customer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("find customer %s: %w", id, err)
	}
	return &customer, nil
}

// FindByEmail returns the customer registered under the given email
func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (*models.Customer, error) {
	var customer models.Customer
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&customer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("find customer by email: %w", err)
	}
	return &customer, nil
}

// Create inserts a new customer document. A concurrent registration
// that won the race surfaces here through the unique email index.
func (r *CustomerRepository) Create(ctx context.Context, customer models.Customer) error {
	if _, err := r.collection.InsertOne(ctx, customer); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateEmail
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}
