package accounts

import (
	"context"
	"fmt"
	"strings"

	"github.com/modacart/modacart-backend/pkg/db"
	"github.com/modacart/modacart-backend/pkg/db/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when no account matches the lookup.
var ErrNotFound = mongo.ErrNoDocuments

// Repository exposes account persistence operations.
type Repository struct {
	users *mongo.Collection
}

// NewRepository constructs an accounts repo bound to the provided DB client.
func NewRepository(client *db.Client) *Repository {
	return &Repository{users: client.Users()}
}

// Create inserts a new account and fills in the generated ObjectID.
func (r *Repository) Create(ctx context.Context, user *models.User) error {
	result, err := r.users.InsertOne(ctx, user)
	if err != nil {
		return fmt.Errorf("inserting user: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

// FindByEmail retrieves the account matching the provided email.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.users.FindOne(ctx, bson.M{"email": normalizeEmail(email)}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID loads an account by its ObjectID hex string.
func (r *Repository) FindByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("parsing user id %q: %w", id, err)
	}
	var user models.User
	if err := r.users.FindOne(ctx, bson.M{"_id": oid}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
