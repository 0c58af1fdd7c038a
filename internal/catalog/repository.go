package catalog

import (
	"context"
	"fmt"

	"github.com/modacart/modacart-backend/pkg/db"
	"github.com/modacart/modacart-backend/pkg/db/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository exposes product persistence operations.
type Repository struct {
	products *mongo.Collection
	counters *mongo.Collection
}

// NewRepository constructs a catalog repo bound to the provided DB client.
func NewRepository(client *db.Client) *Repository {
	return &Repository{
		products: client.Products(),
		counters: client.Counters(),
	}
}

// NextID atomically allocates the next product id. The counter document is
// upserted on first use and only ever incremented, so ids stay monotone and
// are never reused after a delete.
func (r *Repository) NextID(ctx context.Context) (int64, error) {
	filter := bson.M{"_id": models.ProductIDSequence}
	update := bson.M{"$inc": bson.M{"seq": int64(1)}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter models.Counter
	if err := r.counters.FindOneAndUpdate(ctx, filter, update, opts).Decode(&counter); err != nil {
		return 0, fmt.Errorf("allocating product id: %w", err)
	}
	return counter.Seq, nil
}

// Insert persists a new product document.
func (r *Repository) Insert(ctx context.Context, product *models.Product) error {
	if _, err := r.products.InsertOne(ctx, product); err != nil {
		return fmt.Errorf("inserting product: %w", err)
	}
	return nil
}

// DeleteByID removes the product with the given public id. Deleting an
// absent id is not an error; delete is idempotent.
func (r *Repository) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.products.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return fmt.Errorf("deleting product %d: %w", id, err)
	}
	return nil
}

// ListQuery narrows a product listing. Zero values mean "no constraint".
type ListQuery struct {
	Category string
	Skip     int64
	Limit    int64
}

// List returns products in insertion order (ascending public id).
func (r *Repository) List(ctx context.Context, q ListQuery) ([]models.Product, error) {
	filter := bson.M{}
	if q.Category != "" {
		filter["category"] = q.Category
	}

	opts := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})
	if q.Skip > 0 {
		opts.SetSkip(q.Skip)
	}
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}

	cursor, err := r.products.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decoding products: %w", err)
	}
	return products, nil
}
