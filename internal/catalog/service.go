package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/modacart/modacart-backend/pkg/db/models"
	pkgerrors "github.com/modacart/modacart-backend/pkg/errors"
)

// The storefront views are fixed windows over the insertion-ordered catalog.
const (
	newCollectionSkip  = 1
	newCollectionLimit = 8
	popularCategory    = "women"
	popularLimit       = 4
)

// Service exposes catalog management and storefront views.
type Service interface {
	Create(ctx context.Context, input CreateProductInput) (*models.Product, error)
	Delete(ctx context.Context, id int64) error
	ListAll(ctx context.Context) ([]models.Product, error)
	NewCollection(ctx context.Context) ([]models.Product, error)
	PopularInWomen(ctx context.Context) ([]models.Product, error)
}

// CreateProductInput holds the validated payload to create a product.
type CreateProductInput struct {
	Name     string
	Image    string
	Category string
	NewPrice float64
	OldPrice float64
}

type productRepository interface {
	NextID(ctx context.Context) (int64, error)
	Insert(ctx context.Context, product *models.Product) error
	DeleteByID(ctx context.Context, id int64) error
	List(ctx context.Context, q ListQuery) ([]models.Product, error)
}

type service struct {
	repo productRepository
	now  func() time.Time
}

// ServiceParams bundles the dependencies required to build a catalog service.
type ServiceParams struct {
	Repo productRepository
	Now  func() time.Time
}

// NewService constructs a catalog service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("product repository is required")
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &service{repo: params.Repo, now: now}, nil
}

func (s *service) Create(ctx context.Context, input CreateProductInput) (*models.Product, error) {
	id, err := s.repo.NextID(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "allocate product id")
	}

	product := &models.Product{
		PublicID:  id,
		Name:      input.Name,
		Image:     input.Image,
		Category:  input.Category,
		NewPrice:  input.NewPrice,
		OldPrice:  input.OldPrice,
		Date:      s.now().UTC(),
		Available: true,
	}

	if err := s.repo.Insert(ctx, product); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persist product")
	}
	return product, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete product")
	}
	return nil
}

func (s *service) ListAll(ctx context.Context) ([]models.Product, error) {
	products, err := s.repo.List(ctx, ListQuery{})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list products")
	}
	return products, nil
}

// NewCollection skips the first product and returns the next eight.
func (s *service) NewCollection(ctx context.Context) ([]models.Product, error) {
	products, err := s.repo.List(ctx, ListQuery{Skip: newCollectionSkip, Limit: newCollectionLimit})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list new collection")
	}
	return products, nil
}

// PopularInWomen returns the first four products in the women category.
func (s *service) PopularInWomen(ctx context.Context) ([]models.Product, error) {
	products, err := s.repo.List(ctx, ListQuery{Category: popularCategory, Limit: popularLimit})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list popular in women")
	}
	return products, nil
}
