package cart

import (
	"context"
	"fmt"

	"github.com/modacart/modacart-backend/pkg/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Repository performs cart reads and atomic slot updates against the account
// collection. Updates are single-document `$inc` operations, so concurrent
// requests for the same user cannot lose increments.
type Repository struct {
	users *mongo.Collection
}

// NewRepository constructs a cart repo bound to the provided DB client.
func NewRepository(client *db.Client) *Repository {
	return &Repository{users: client.Users()}
}

// Get returns the full cart map for the given user.
func (r *Repository) Get(ctx context.Context, userID string) (map[string]int, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("parsing user id %q: %w", userID, err)
	}

	var doc struct {
		CartData map[string]int `bson:"cartData"`
	}
	if err := r.users.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, fmt.Errorf("loading cart: %w", err)
	}
	if doc.CartData == nil {
		doc.CartData = map[string]int{}
	}
	return doc.CartData, nil
}

// Increment bumps the slot by one, creating it when absent.
func (r *Repository) Increment(ctx context.Context, userID, slot string) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return fmt.Errorf("parsing user id %q: %w", userID, err)
	}

	field := "cartData." + slot
	result, err := r.users.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$inc": bson.M{field: 1}})
	if err != nil {
		return fmt.Errorf("incrementing cart slot: %w", err)
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DecrementIfPositive lowers the slot by one only when it is currently above
// zero; decrementing an empty slot is a no-op, never a negative quantity.
func (r *Repository) DecrementIfPositive(ctx context.Context, userID, slot string) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return fmt.Errorf("parsing user id %q: %w", userID, err)
	}

	field := "cartData." + slot
	filter := bson.M{"_id": oid, field: bson.M{"$gt": 0}}
	if _, err := r.users.UpdateOne(ctx, filter, bson.M{"$inc": bson.M{field: -1}}); err != nil {
		return fmt.Errorf("decrementing cart slot: %w", err)
	}
	return nil
}
