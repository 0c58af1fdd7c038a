package db

import (
	"context"
	"fmt"

	"github.com/modacart/modacart-backend/pkg/config"
	"github.com/modacart/modacart-backend/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	ProductsCollection = "products"
	UsersCollection    = "users"
	CountersCollection = "counters"
)

// Client wraps the shared mongo connection. The driver manages its own
// connection pool behind the single client handle.
type Client struct {
	client   *mongo.Client
	database *mongo.Database
	cfg      config.MongoConfig
}

// Pinger exposes the health check surface.
type Pinger interface {
	Ping(ctx context.Context) error
}

// New boots a mongo client using the provided configuration and verifies the
// deployment is reachable before returning.
func New(ctx context.Context, cfg config.MongoConfig, logg *logger.Logger) (*Client, error) {
	if cfg.URI == "" {
		return nil, fmt.Errorf("mongo URI is required")
	}
	if cfg.Database == "" {
		return nil, fmt.Errorf("mongo database name is required")
	}

	connectCtx := ctx
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		connectCtx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongo: %w", err)
	}

	c := &Client{
		client:   client,
		database: client.Database(cfg.Database),
		cfg:      cfg,
	}

	if err := c.Ping(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("pinging mongo: %w", err)
	}

	if logg != nil {
		logg.Info(ctx, "database connection established")
	}

	return c, nil
}

// Database returns the configured database handle.
func (c *Client) Database() *mongo.Database {
	return c.database
}

// Products returns the product catalog collection.
func (c *Client) Products() *mongo.Collection {
	return c.database.Collection(ProductsCollection)
}

// Users returns the account collection.
func (c *Client) Users() *mongo.Collection {
	return c.database.Collection(UsersCollection)
}

// Counters returns the id sequence collection.
func (c *Client) Counters() *mongo.Collection {
	return c.database.Collection(CountersCollection)
}

// Ping verifies the datasource is reachable.
func (c *Client) Ping(ctx context.Context) error {
	if cfg := c.cfg; cfg.PingTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.PingTimeout)
		defer cancel()
	}
	return c.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the underlying client.
func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}

// EnsureIndexes creates the indexes the stores rely on: a unique index on
// user email and a unique index on the public product id.
func (c *Client) EnsureIndexes(ctx context.Context) error {
	userModels := []mongo.IndexModel{{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}}
	if _, err := c.Users().Indexes().CreateMany(ctx, userModels); err != nil {
		return fmt.Errorf("ensuring user indexes: %w", err)
	}

	productModels := []mongo.IndexModel{{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}}
	if _, err := c.Products().Indexes().CreateMany(ctx, productModels); err != nil {
		return fmt.Errorf("ensuring product indexes: %w", err)
	}

	return nil
}
