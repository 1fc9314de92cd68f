package impl

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	mockrepo "bazaar/internal/mocks/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type inventoryServiceFixtures struct {
	productRepo *mockrepo.MockProductRepository
	service     usecase.InventoryUsecase
}

func newInventoryServiceFixtures(t *testing.T) *inventoryServiceFixtures {
	t.Helper()

	productRepo := mockrepo.NewMockProductRepository(t)
	svc := NewInventoryService(InventoryServiceParams{
		ProductRepo: productRepo,
		Logger:      newDiscardLogger(),
	})

	return &inventoryServiceFixtures{
		productRepo: productRepo,
		service:     svc,
	}
}

func TestInventoryService_CheckAvailability(t *testing.T) {
	t.Parallel()

	productID := uuid.New()
	product := &entity.Product{
		ID:          productID,
		Name:        "rice",
		Stock:       10,
		OnlineStock: 3,
	}

	t.Run("delivery checks the online pool", func(t *testing.T) {
		t.Parallel()

		f := newInventoryServiceFixtures(t)
		f.productRepo.EXPECT().
			FindProductByID(mock.Anything, productID).
			Return(product, nil)

		avail, err := f.service.CheckAvailability(context.Background(), productID, 5, entity.PurchaseModeDelivery)

		require.NoError(t, err)
		assert.False(t, avail.OK)
		assert.Equal(t, "only 3 available for delivery", avail.Reason)
	})

	t.Run("pickup checks the store pool", func(t *testing.T) {
		t.Parallel()

		f := newInventoryServiceFixtures(t)
		f.productRepo.EXPECT().
			FindProductByID(mock.Anything, productID).
			Return(product, nil)

		avail, err := f.service.CheckAvailability(context.Background(), productID, 5, entity.PurchaseModePickup)

		require.NoError(t, err)
		assert.True(t, avail.OK)
	})

	t.Run("in-store shortfall reports the store count", func(t *testing.T) {
		t.Parallel()

		f := newInventoryServiceFixtures(t)
		f.productRepo.EXPECT().
			FindProductByID(mock.Anything, productID).
			Return(product, nil)

		avail, err := f.service.CheckAvailability(context.Background(), productID, 11, entity.PurchaseModeInStore)

		require.NoError(t, err)
		assert.False(t, avail.OK)
		assert.Equal(t, "only 10 available in store", avail.Reason)
	})

	t.Run("invalid mode fails closed without touching storage", func(t *testing.T) {
		t.Parallel()

		f := newInventoryServiceFixtures(t)

		avail, err := f.service.CheckAvailability(context.Background(), productID, 1, entity.PurchaseMode("teleport"))

		require.NoError(t, err)
		assert.False(t, avail.OK)
	})

	t.Run("unknown product fails closed", func(t *testing.T) {
		t.Parallel()

		f := newInventoryServiceFixtures(t)
		f.productRepo.EXPECT().
			FindProductByID(mock.Anything, productID).
			Return(nil, repository.ErrProductNotFound)

		avail, err := f.service.CheckAvailability(context.Background(), productID, 1, entity.PurchaseModePickup)

		require.NoError(t, err)
		assert.False(t, avail.OK)
		assert.Equal(t, "product not found", avail.Reason)
	})

	t.Run("non-positive quantity fails closed", func(t *testing.T) {
		t.Parallel()

		f := newInventoryServiceFixtures(t)

		avail, err := f.service.CheckAvailability(context.Background(), productID, 0, entity.PurchaseModePickup)

		require.NoError(t, err)
		assert.False(t, avail.OK)
	})
}

func TestInventoryService_DecrementStock(t *testing.T) {
	t.Parallel()

	productID := uuid.New()

	t.Run("delivery consumes from the online pool", func(t *testing.T) {
		t.Parallel()

		f := newInventoryServiceFixtures(t)
		f.productRepo.EXPECT().
			DecrementStock(mock.Anything, productID, 2, true).
			Return(nil)

		err := f.service.DecrementStock(context.Background(), productID, 2, entity.PurchaseModeDelivery)

		require.NoError(t, err)
	})

	t.Run("pickup consumes from the store pool", func(t *testing.T) {
		t.Parallel()

		f := newInventoryServiceFixtures(t)
		f.productRepo.EXPECT().
			DecrementStock(mock.Anything, productID, 2, false).
			Return(nil)

		err := f.service.DecrementStock(context.Background(), productID, 2, entity.PurchaseModePickup)

		require.NoError(t, err)
	})

	t.Run("insufficient stock surfaces a conflict", func(t *testing.T) {
		t.Parallel()

		f := newInventoryServiceFixtures(t)
		f.productRepo.EXPECT().
			DecrementStock(mock.Anything, productID, 99, false).
			Return(repository.ErrInsufficientStock)

		err := f.service.DecrementStock(context.Background(), productID, 99, entity.PurchaseModeInStore)

		require.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
	})

	t.Run("invalid mode is rejected without touching storage", func(t *testing.T) {
		t.Parallel()

		f := newInventoryServiceFixtures(t)

		err := f.service.DecrementStock(context.Background(), productID, 1, entity.PurchaseMode("teleport"))

		require.ErrorIs(t, err, domainerrors.ErrInvalidPurchaseMode)
	})

	t.Run("non-positive quantity is rejected", func(t *testing.T) {
		t.Parallel()

		f := newInventoryServiceFixtures(t)

		err := f.service.DecrementStock(context.Background(), productID, 0, entity.PurchaseModePickup)

		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestInventoryService_UpdateInventory(t *testing.T) {
	t.Parallel()

	productID := uuid.New()

	t.Run("clamps the online pool to total stock", func(t *testing.T) {
		t.Parallel()

		f := newInventoryServiceFixtures(t)
		f.productRepo.EXPECT().
			UpdateInventory(mock.Anything, productID, 10, 10).
			Return(nil)
		f.productRepo.EXPECT().
			FindProductByID(mock.Anything, productID).
			Return(&entity.Product{ID: productID, Stock: 10, OnlineStock: 10}, nil)

		product, err := f.service.UpdateInventory(context.Background(), productID, 10, 25)

		require.NoError(t, err)
		assert.Equal(t, 10, product.OnlineStock)
	})

	t.Run("rejects negative stock counts", func(t *testing.T) {
		t.Parallel()

		f := newInventoryServiceFixtures(t)

		_, err := f.service.UpdateInventory(context.Background(), productID, -1, 0)

		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("maps a missing product", func(t *testing.T) {
		t.Parallel()

		f := newInventoryServiceFixtures(t)
		f.productRepo.EXPECT().
			UpdateInventory(mock.Anything, productID, 5, 2).
			Return(repository.ErrProductNotFound)

		_, err := f.service.UpdateInventory(context.Background(), productID, 5, 2)

		require.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	})
}
