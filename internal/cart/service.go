package cart

import (
	"context"
	"fmt"
	"strconv"

	pkgerrors "github.com/modacart/modacart-backend/pkg/errors"
)

// Service exposes the per-user cart operations behind the auth gate.
type Service interface {
	Get(ctx context.Context, userID string) (map[string]int, error)
	Add(ctx context.Context, userID string, itemID int) error
	Remove(ctx context.Context, userID string, itemID int) error
}

type cartRepository interface {
	Get(ctx context.Context, userID string) (map[string]int, error)
	Increment(ctx context.Context, userID, slot string) error
	DecrementIfPositive(ctx context.Context, userID, slot string) error
}

type service struct {
	repo cartRepository
}

// NewService constructs a cart service with the provided repository.
func NewService(repo cartRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("cart repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Get(ctx context.Context, userID string) (map[string]int, error) {
	cart, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "fetch cart")
	}
	return cart, nil
}

// Add increments the slot for itemID. Item ids above the seeded 0..299 range
// are accepted and create their slot implicitly, matching the permissive
// storefront contract.
func (s *service) Add(ctx context.Context, userID string, itemID int) error {
	if err := s.repo.Increment(ctx, userID, strconv.Itoa(itemID)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "add to cart")
	}
	return nil
}

// Remove decrements the slot for itemID, flooring at zero.
func (s *service) Remove(ctx context.Context, userID string, itemID int) error {
	if err := s.repo.DecrementIfPositive(ctx, userID, strconv.Itoa(itemID)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "remove from cart")
	}
	return nil
}
