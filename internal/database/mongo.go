package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ecommerce-backend/internal/config"
)

// Connect opens the Mongo connection described by the config and returns
// the database handle. It returns nil when DATABASE_URL is unset or the
// server is unreachable; the caller is expected to keep running and report
// the unavailable state per request.
func Connect(cfg *config.Config) *mongo.Database {
	if cfg.DatabaseURL == "" {
		log.Println("⚠️ DATABASE_URL not set, starting without database")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.DatabaseURL))
	if err != nil {
		log.Println("⚠️ Could not connect to MongoDB:", err)
		return nil
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Println("⚠️ MongoDB unreachable:", err)
		return nil
	}

	name := cfg.DatabaseName
	if name == "" {
		name = "ecommerce"
	}
	log.Println("✅ Connected to MongoDB database", name)
	return client.Database(name)
}

// Store wraps a mongo database with the small set of document operations
// the service needs.
type Store struct {
	db *mongo.Database
}

func NewStore(db *mongo.Database) *Store {
	return &Store{db: db}
}

// InsertOne inserts a single document and returns the generated id as a
// hex string.
func (s *Store) InsertOne(ctx context.Context, collection string, doc interface{}) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// Find returns up to limit documents matching the filter, in whatever
// order the store yields them. The cursor is fully materialized before
// returning.
func (s *Store) Find(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	findOptions := options.Find().SetLimit(limit)
	cursor, err := s.db.Collection(collection).Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := []bson.M{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// FindOneByID fetches the document with the given object id, or
// mongo.ErrNoDocuments when none matches.
func (s *Store) FindOneByID(ctx context.Context, collection string, id primitive.ObjectID) (bson.M, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var doc bson.M
	if err := s.db.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Count counts the documents matching the filter.
func (s *Store) Count(ctx context.Context, collection string, filter bson.M) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return s.db.Collection(collection).CountDocuments(ctx, filter)
}

// CollectionNames lists the collection names in the database. Diagnostic
// use only.
func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return s.db.ListCollectionNames(ctx, bson.M{})
}
