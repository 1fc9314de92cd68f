package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// Availability is the outcome of a stock availability check.
type Availability struct {
	OK     bool   `json:"ok"`
	Reason string `json:"reason"`
}

// InventoryUsecase defines the interface for stock management use cases
type InventoryUsecase interface {
	// CheckAvailability reports whether quantity units can be obtained via
	// the given purchase mode. Fails closed: unknown products and invalid
	// modes report unavailable rather than erroring.
	CheckAvailability(ctx context.Context, productID uuid.UUID, quantity int, mode entity.PurchaseMode) (*Availability, error)

	// DecrementStock atomically consumes quantity units from the stock
	// pool(s) backing the purchase mode. All-or-nothing; concurrent calls
	// against the same product never drive a pool negative.
	DecrementStock(ctx context.Context, productID uuid.UUID, quantity int, mode entity.PurchaseMode) error

	// UpdateInventory administratively resets both stock pools, clamping
	// onlineStock to totalStock.
	UpdateInventory(ctx context.Context, productID uuid.UUID, totalStock, onlineStock int) (*entity.Product, error)
}
