package impl

import (
	"context"
	"fmt"
	"log/slog"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/errors"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type inventoryService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// InventoryServiceParams holds dependencies for InventoryService, injected by Fx.
type InventoryServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewInventoryService creates a new inventory service instance
func NewInventoryService(params InventoryServiceParams) usecase.InventoryUsecase {
	return &inventoryService{
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

// CheckAvailability reports whether the requested quantity can be served
// from the stock pool backing the purchase mode. Availability answers are
// carried in the result, not as errors; only infrastructure failures error.
func (s *inventoryService) CheckAvailability(ctx context.Context, productID uuid.UUID, quantity int, mode entity.PurchaseMode) (*usecase.Availability, error) {
	if !mode.IsValid() {
		return &usecase.Availability{OK: false, Reason: "invalid purchase option"}, nil
	}
	if quantity <= 0 {
		return &usecase.Availability{OK: false, Reason: "quantity must be positive"}, nil
	}

	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			// Unknown products fail closed rather than erroring so the
			// caller can surface the answer alongside valid items.
			return &usecase.Availability{OK: false, Reason: "product not found"}, nil
		}
		return nil, errors.Wrap(err, "failed to find product")
	}

	available := product.StockFor(mode)
	if available < quantity {
		if mode == entity.PurchaseModeDelivery {
			return &usecase.Availability{OK: false, Reason: fmt.Sprintf("only %d available for delivery", available)}, nil
		}
		return &usecase.Availability{OK: false, Reason: fmt.Sprintf("only %d available in store", available)}, nil
	}

	return &usecase.Availability{OK: true, Reason: fmt.Sprintf("available for %s", mode)}, nil
}

// DecrementStock atomically takes quantity units from the pool backing the
// purchase mode. The conditional update in the repository guarantees the
// stock never goes negative under concurrent decrements.
func (s *inventoryService) DecrementStock(ctx context.Context, productID uuid.UUID, quantity int, mode entity.PurchaseMode) error {
	if !mode.IsValid() {
		return domainerrors.ErrInvalidPurchaseMode
	}
	if quantity <= 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("quantity must be positive")
	}

	fromOnline := mode == entity.PurchaseModeDelivery
	if err := s.productRepo.DecrementStock(ctx, productID, quantity, fromOnline); err != nil {
		switch {
		case errors.Is(err, repository.ErrProductNotFound):
			return domainerrors.ErrProductNotFound
		case errors.Is(err, repository.ErrInsufficientStock):
			return domainerrors.ErrInsufficientStock
		default:
			return domainerrors.NewDatabaseExecuteError(err, "扣減庫存失敗")
		}
	}

	s.logger.Debug("stock decremented",
		slog.String("productID", productID.String()),
		slog.Int("quantity", quantity),
		slog.String("mode", mode.String()))

	return nil
}

// UpdateInventory replaces both stock pools for a product. The online pool
// is clamped so it never exceeds total stock.
func (s *inventoryService) UpdateInventory(ctx context.Context, productID uuid.UUID, totalStock int, onlineStock int) (*entity.Product, error) {
	if totalStock < 0 || onlineStock < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("stock counts cannot be negative")
	}
	if onlineStock > totalStock {
		onlineStock = totalStock
	}

	if err := s.productRepo.UpdateInventory(ctx, productID, totalStock, onlineStock); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}
		return nil, domainerrors.NewDatabaseExecuteError(err, "更新庫存失敗")
	}

	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "更新庫存失敗")
	}

	return product, nil
}
