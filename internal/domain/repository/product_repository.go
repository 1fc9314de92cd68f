// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrInsufficientStock is returned when a conditional stock decrement
	// finds less stock than requested. It marks a lost race or an oversized
	// order, not a validation failure.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ProductRepository defines the interface for product-related database operations.
type ProductRepository interface {
	// FindProductByID retrieves a product by its unique ID.
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindProductByIDForUpdate retrieves a product and takes its row lock
	// for the rest of the surrounding transaction. Writers that derive new
	// product state from other rows (the review rating recompute) fetch
	// through this so concurrent recomputes for the same product serialize
	// instead of overwriting each other.
	FindProductByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// ListVisibleProducts retrieves visible products, optionally narrowed by a
	// case-insensitive name substring and/or an exact category match. Empty
	// filter values are no-ops.
	ListVisibleProducts(ctx context.Context, nameSubstring, category string) ([]*entity.Product, error)

	// DecrementStock atomically verifies and subtracts quantity from the
	// product's stock pools in a single conditional update. When fromOnline is
	// true both OnlineStock and Stock are reduced (a delivery sale consumes
	// from the shared physical pool too) and the precondition is checked
	// against OnlineStock; otherwise only Stock is reduced and checked.
	// Returns ErrInsufficientStock without mutating anything when the
	// precondition fails.
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int, fromOnline bool) error

	// UpdateInventory resets both stock pools. Callers must clamp
	// onlineStock to totalStock beforehand.
	UpdateInventory(ctx context.Context, id uuid.UUID, totalStock, onlineStock int) error

	// UpdateRating overwrites the derived rating fields of a product.
	UpdateRating(ctx context.Context, id uuid.UUID, rating float64, ratingCount int) error
}
