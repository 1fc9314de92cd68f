package impl

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/geo"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	mockrepo "bazaar/internal/mocks/repository"
	mocksvc "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type routeServiceFixtures struct {
	txManager     *mockrepo.MockTransactionManager
	factory       *mockrepo.MockRepositoryFactory
	routePlanRepo *mockrepo.MockRoutePlanRepository
	optimizer     *mocksvc.MockRouteOptimizer
	publisher     *mocksvc.MockEventPublisher
	service       usecase.RoutePlanUsecase
}

func newRouteServiceFixtures(t *testing.T) *routeServiceFixtures {
	t.Helper()

	txManager := mockrepo.NewMockTransactionManager(t)
	factory := mockrepo.NewMockRepositoryFactory(t)
	routePlanRepo := mockrepo.NewMockRoutePlanRepository(t)
	optimizer := mocksvc.NewMockRouteOptimizer(t)
	publisher := mocksvc.NewMockEventPublisher(t)

	svc := NewRouteService(RouteServiceParams{
		TxManager: txManager,
		Optimizer: optimizer,
		Publisher: publisher,
		Logger:    newDiscardLogger(),
	})

	return &routeServiceFixtures{
		txManager:     txManager,
		factory:       factory,
		routePlanRepo: routePlanRepo,
		optimizer:     optimizer,
		publisher:     publisher,
		service:       svc,
	}
}

// expectTransaction wires the transaction manager to run the closure
// against the fixture factory, the way the real manager would inside a
// database transaction.
func (f *routeServiceFixtures) expectTransaction() {
	f.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		})
	f.factory.EXPECT().NewRoutePlanRepository().Return(f.routePlanRepo)
}

// shoppingItems builds items whose sellers sit at increasing offsets
// north of the origin, so item 0 is always the closest.
func shoppingItems(origin geo.Coordinate, offsetsKm ...float64) []entity.ShoppingItem {
	items := make([]entity.ShoppingItem, 0, len(offsetsKm))
	for i, offset := range offsetsKm {
		seller := sellerAt(origin, offset)
		items = append(items, entity.ShoppingItem{
			Seller:     *seller,
			Product:    *productOf(seller, "item", float64(10+i)),
			DistanceKm: offset,
		})
	}

	return items
}

func TestRouteService_OptimizeRoute(t *testing.T) {
	t.Parallel()

	origin := geo.Coordinate{Lat: 12.9716, Lng: 77.5946}
	buyerID := uuid.New()

	t.Run("persists the optimizer order as a plan", func(t *testing.T) {
		t.Parallel()

		f := newRouteServiceFixtures(t)
		items := shoppingItems(origin, 1, 2, 3)

		f.optimizer.EXPECT().
			Optimize(mock.Anything, mock.Anything).
			Return(&service.OptimizeResult{
				Order:       []int{2, 0, 1},
				RawRequest:  []byte(`{"stops":3}`),
				RawResponse: []byte(`[2,0,1]`),
			}, nil)

		f.expectTransaction()
		var persistedStops []*entity.RoutePlanStop
		f.routePlanRepo.EXPECT().
			CreateRoutePlan(mock.Anything, mock.Anything, mock.Anything).
			Run(func(_ context.Context, plan *entity.RoutePlan, stops []*entity.RoutePlanStop) {
				assert.Equal(t, buyerID, plan.BuyerID)
				assert.Equal(t, entity.RouteStatusActive, plan.Status)
				assert.Equal(t, `{"stops":3}`, plan.OptimizerRequest)
				assert.Equal(t, `[2,0,1]`, plan.OptimizerResponse)
				persistedStops = stops
			}).
			Return(nil)

		f.publisher.EXPECT().
			PublishRoutePlanEvent(mock.Anything, mock.Anything).
			Run(func(_ context.Context, event *service.RoutePlanEvent) {
				assert.Equal(t, buyerID.String(), event.BuyerID)
				assert.Equal(t, 3, event.StopCount)
			}).
			Return(nil)

		result, err := f.service.OptimizeRoute(context.Background(), buyerID, origin, items, nil)

		require.NoError(t, err)
		assert.Equal(t, usecase.PlanOutcomeOptimized, result.Outcome)
		require.NotNil(t, result.Plan)
		require.Len(t, result.Stops, 3)
		// Optimizer said visit index 2 first, then 0, then 1.
		assert.Equal(t, items[2].Seller.ID, persistedStops[0].SellerID)
		assert.Equal(t, items[0].Seller.ID, persistedStops[1].SellerID)
		assert.Equal(t, items[1].Seller.ID, persistedStops[2].SellerID)
		for i, stop := range persistedStops {
			assert.Equal(t, i+1, stop.StopOrder)
			assert.Equal(t, result.Plan.ID, stop.PlanID)
		}
	})

	t.Run("sends the search-time distance snapshot to the optimizer", func(t *testing.T) {
		t.Parallel()

		f := newRouteServiceFixtures(t)
		items := shoppingItems(origin, 1, 2)
		// Distances the search measured, deliberately different from what
		// the coordinates would yield, so a recompute would be visible.
		items[0].DistanceKm = 7.77
		items[1].DistanceKm = 4.44

		var sentReq *service.OptimizeRequest
		f.optimizer.EXPECT().
			Optimize(mock.Anything, mock.Anything).
			Run(func(_ context.Context, req *service.OptimizeRequest) {
				sentReq = req
			}).
			Return(nil, assert.AnError)

		_, err := f.service.OptimizeRoute(context.Background(), buyerID, origin, items, nil)

		require.NoError(t, err)
		require.NotNil(t, sentReq)
		require.Len(t, sentReq.Stops, 2)
		assert.Equal(t, 7.77, sentReq.Stops[0].DistanceFromOrigin)
		assert.Equal(t, 4.44, sentReq.Stops[1].DistanceFromOrigin)
	})

	t.Run("drops out-of-range indices and keeps the rest", func(t *testing.T) {
		t.Parallel()

		f := newRouteServiceFixtures(t)
		items := shoppingItems(origin, 1, 2)

		f.optimizer.EXPECT().
			Optimize(mock.Anything, mock.Anything).
			Return(&service.OptimizeResult{
				Order:       []int{5, 1},
				RawResponse: []byte(`[5,"x",1]`),
			}, nil)

		f.expectTransaction()
		f.routePlanRepo.EXPECT().
			CreateRoutePlan(mock.Anything, mock.Anything, mock.Anything).
			Return(nil)
		f.publisher.EXPECT().
			PublishRoutePlanEvent(mock.Anything, mock.Anything).
			Return(nil)

		result, err := f.service.OptimizeRoute(context.Background(), buyerID, origin, items, nil)

		require.NoError(t, err)
		assert.Equal(t, usecase.PlanOutcomeOptimized, result.Outcome)
		require.Len(t, result.Stops, 1)
		assert.Equal(t, items[1].Seller.ID, result.Stops[0].SellerID)
		assert.Equal(t, 1, result.Stops[0].StopOrder)
	})

	t.Run("optimizer failure degrades to nearest-neighbor without persisting", func(t *testing.T) {
		t.Parallel()

		f := newRouteServiceFixtures(t)
		// Offsets out of order so the heuristic has to re-sort them.
		items := shoppingItems(origin, 8, 2, 5)

		f.optimizer.EXPECT().
			Optimize(mock.Anything, mock.Anything).
			Return(nil, errors.New("optimizer timeout"))

		result, err := f.service.OptimizeRoute(context.Background(), buyerID, origin, items, nil)

		require.NoError(t, err)
		assert.Equal(t, usecase.PlanOutcomeFallback, result.Outcome)
		assert.Nil(t, result.Plan)
		require.Len(t, result.Stops, 3)
		// Greedy from origin: offsets 2, 5, 8.
		assert.Equal(t, items[1].Seller.ID, result.Stops[0].SellerID)
		assert.Equal(t, items[2].Seller.ID, result.Stops[1].SellerID)
		assert.Equal(t, items[0].Seller.ID, result.Stops[2].SellerID)
	})

	t.Run("an order with no usable indices also degrades", func(t *testing.T) {
		t.Parallel()

		f := newRouteServiceFixtures(t)
		items := shoppingItems(origin, 1, 2)

		f.optimizer.EXPECT().
			Optimize(mock.Anything, mock.Anything).
			Return(&service.OptimizeResult{Order: []int{7, -1}}, nil)

		result, err := f.service.OptimizeRoute(context.Background(), buyerID, origin, items, nil)

		require.NoError(t, err)
		assert.Equal(t, usecase.PlanOutcomeFallback, result.Outcome)
		assert.Len(t, result.Stops, 2)
	})

	t.Run("empty shopping list is a no-op", func(t *testing.T) {
		t.Parallel()

		f := newRouteServiceFixtures(t)

		result, err := f.service.OptimizeRoute(context.Background(), buyerID, origin, nil, nil)

		require.NoError(t, err)
		assert.Equal(t, usecase.PlanOutcomeEmpty, result.Outcome)
		assert.Nil(t, result.Plan)
		assert.Empty(t, result.Stops)
	})

	t.Run("a failed publish does not fail the plan", func(t *testing.T) {
		t.Parallel()

		f := newRouteServiceFixtures(t)
		items := shoppingItems(origin, 1)

		f.optimizer.EXPECT().
			Optimize(mock.Anything, mock.Anything).
			Return(&service.OptimizeResult{Order: []int{0}}, nil)

		f.expectTransaction()
		f.routePlanRepo.EXPECT().
			CreateRoutePlan(mock.Anything, mock.Anything, mock.Anything).
			Return(nil)
		f.publisher.EXPECT().
			PublishRoutePlanEvent(mock.Anything, mock.Anything).
			Return(errors.New("broker unavailable"))

		result, err := f.service.OptimizeRoute(context.Background(), buyerID, origin, items, nil)

		require.NoError(t, err)
		assert.Equal(t, usecase.PlanOutcomeOptimized, result.Outcome)
	})

	t.Run("a persistence failure surfaces as an error", func(t *testing.T) {
		t.Parallel()

		f := newRouteServiceFixtures(t)
		items := shoppingItems(origin, 1)

		f.optimizer.EXPECT().
			Optimize(mock.Anything, mock.Anything).
			Return(&service.OptimizeResult{Order: []int{0}}, nil)

		f.expectTransaction()
		f.routePlanRepo.EXPECT().
			CreateRoutePlan(mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("insert failed"))

		_, err := f.service.OptimizeRoute(context.Background(), buyerID, origin, items, nil)

		require.Error(t, err)
	})
}

func TestRouteService_GetRoutePlan(t *testing.T) {
	t.Parallel()

	planID := uuid.New()

	t.Run("returns the plan with its stops", func(t *testing.T) {
		t.Parallel()

		f := newRouteServiceFixtures(t)
		plan := &entity.RoutePlan{ID: planID, Status: entity.RouteStatusActive}
		stops := []*entity.RoutePlanStop{
			{ID: uuid.New(), PlanID: planID, StopOrder: 1},
			{ID: uuid.New(), PlanID: planID, StopOrder: 2},
		}

		f.expectTransaction()
		f.routePlanRepo.EXPECT().
			FindRoutePlanByID(mock.Anything, planID).
			Return(plan, nil)
		f.routePlanRepo.EXPECT().
			ListStopsByPlan(mock.Anything, planID).
			Return(stops, nil)

		gotPlan, gotStops, err := f.service.GetRoutePlan(context.Background(), planID)

		require.NoError(t, err)
		assert.Equal(t, plan, gotPlan)
		assert.Equal(t, stops, gotStops)
	})

	t.Run("maps a missing plan", func(t *testing.T) {
		t.Parallel()

		f := newRouteServiceFixtures(t)
		f.expectTransaction()
		f.routePlanRepo.EXPECT().
			FindRoutePlanByID(mock.Anything, planID).
			Return(nil, repository.ErrRoutePlanNotFound)

		_, _, err := f.service.GetRoutePlan(context.Background(), planID)

		require.ErrorIs(t, err, domainerrors.ErrRoutePlanNotFound)
	})
}

func TestRouteService_CancelRoutePlan(t *testing.T) {
	t.Parallel()

	planID := uuid.New()
	buyerID := uuid.New()

	t.Run("cancels an active plan", func(t *testing.T) {
		t.Parallel()

		f := newRouteServiceFixtures(t)
		f.expectTransaction()
		f.routePlanRepo.EXPECT().
			FindRoutePlanByID(mock.Anything, planID).
			Return(&entity.RoutePlan{ID: planID, BuyerID: buyerID, Status: entity.RouteStatusActive}, nil)
		f.routePlanRepo.EXPECT().
			UpdateRoutePlanStatus(mock.Anything, planID, entity.RouteStatusCancelled).
			Return(nil)

		err := f.service.CancelRoutePlan(context.Background(), buyerID, planID)

		require.NoError(t, err)
	})

	t.Run("someone else's plan reads as absent", func(t *testing.T) {
		t.Parallel()

		f := newRouteServiceFixtures(t)
		f.expectTransaction()
		f.routePlanRepo.EXPECT().
			FindRoutePlanByID(mock.Anything, planID).
			Return(&entity.RoutePlan{ID: planID, BuyerID: uuid.New(), Status: entity.RouteStatusActive}, nil)

		err := f.service.CancelRoutePlan(context.Background(), buyerID, planID)

		require.ErrorIs(t, err, domainerrors.ErrRoutePlanNotFound)
	})

	t.Run("a finished plan cannot be cancelled again", func(t *testing.T) {
		t.Parallel()

		f := newRouteServiceFixtures(t)
		f.expectTransaction()
		f.routePlanRepo.EXPECT().
			FindRoutePlanByID(mock.Anything, planID).
			Return(&entity.RoutePlan{ID: planID, BuyerID: buyerID, Status: entity.RouteStatusCompleted}, nil)

		err := f.service.CancelRoutePlan(context.Background(), buyerID, planID)

		require.ErrorIs(t, err, domainerrors.ErrRoutePlanFinalized)
	})
}
