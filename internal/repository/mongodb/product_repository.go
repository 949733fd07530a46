package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/storekit/commerce-api/internal/models"
	"github.com/storekit/commerce-api/internal/repository"
)

// ProductRepository implements repository.ProductRepository backed by
// a MongoDB collection
type ProductRepository struct {
	collection *mongo.Collection
}

// NewProductRepository creates a product repository over the
// "products" collection
func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{
		collection: db.Collection("products"),
	}
}

// GetAll returns all products
func (r *ProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

// GetByID returns a product by its ID
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product %s: %w", id, err)
	}
	return &product, nil
}

// FindByName returns a product by its exact name
func (r *ProductRepository) FindByName(ctx context.Context, name string) (*models.Product, error) {
	var product models.Product
	err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product by name: %w", err)
	}
	return &product, nil
}

// FindAllByID resolves the batch of ids with a single $in query and
// returns whatever subset exists
func (r *ProductRepository) FindAllByID(ctx context.Context, ids []string) ([]models.Product, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("find products by id: %w", err)
	}

	products := make([]models.Product, 0, len(ids))
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

// UpdateQuantity writes the adjusted quantities for the whole batch in
// a single bulk call. Values are trusted as-is.
func (r *ProductRepository) UpdateQuantity(ctx context.Context, products []models.Product) error {
	if len(products) == 0 {
		return nil
	}

	writes := make([]mongo.WriteModel, 0, len(products))
	for _, product := range products {
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": product.ID}).
			SetUpdate(bson.M{"$set": bson.M{"quantity": product.Quantity}}))
	}

	if _, err := r.collection.BulkWrite(ctx, writes); err != nil {
		return fmt.Errorf("update product quantities: %w", err)
	}
	return nil
}

// Create inserts a new product document
func (r *ProductRepository) Create(ctx context.Context, product models.Product) error {
	if _, err := r.collection.InsertOne(ctx, product); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}
