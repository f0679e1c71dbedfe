package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"ecommerce-backend/internal/models"
)

// Collection is the single collection holding product documents.
const Collection = "product"

var (
	ErrInvalidID = errors.New("invalid product id")
	ErrNotFound  = errors.New("product not found")
)

// Store is the document-store surface the repository needs. Implemented
// by database.Store.
type Store interface {
	InsertOne(ctx context.Context, collection string, doc interface{}) (string, error)
	Find(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error)
	FindOneByID(ctx context.Context, collection string, id primitive.ObjectID) (bson.M, error)
	Count(ctx context.Context, collection string, filter bson.M) (int64, error)
}

type ProductRepository struct {
	store Store
}

func NewProductRepository(store Store) *ProductRepository {
	return &ProductRepository{store: store}
}

// Create inserts a new product and returns the generated id.
func (r *ProductRepository) Create(ctx context.Context, product models.ProductIn) (string, error) {
	return r.store.InsertOne(ctx, Collection, product.Document())
}

// List returns up to limit products, optionally filtered by exact
// category match.
func (r *ProductRepository) List(ctx context.Context, category string, limit int64) ([]models.ProductOut, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	docs, err := r.store.Find(ctx, Collection, filter, limit)
	if err != nil {
		return nil, err
	}

	products := make([]models.ProductOut, 0, len(docs))
	for _, doc := range docs {
		products = append(products, models.FromDocument(doc))
	}
	return products, nil
}

// FindByID fetches one product by its hex id, validating the id before
// querying.
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*models.ProductOut, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	doc, err := r.store.FindOneByID(ctx, Collection, oid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	product := models.FromDocument(doc)
	return &product, nil
}

// CountAll counts every product in the collection.
func (r *ProductRepository) CountAll(ctx context.Context) (int64, error) {
	return r.store.Count(ctx, Collection, bson.M{})
}
