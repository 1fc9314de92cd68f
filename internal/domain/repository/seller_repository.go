package repository

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"

	"github.com/google/uuid"
)

// ErrSellerNotFound is returned when a seller is not found.
var ErrSellerNotFound = errors.New("seller not found")

// SellerRepository defines the interface for seller-related database operations.
type SellerRepository interface {
	// FindSellerByID retrieves a seller by its unique ID.
	FindSellerByID(ctx context.Context, id uuid.UUID) (*entity.Seller, error)

	// FindSellersByIDs retrieves sellers for the given IDs in one query,
	// keyed by seller ID. IDs without a matching seller are simply absent
	// from the result. Used by nearby search to avoid N+1 lookups.
	FindSellersByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Seller, error)
}
