package impl

import (
	"context"
	"log/slog"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/geo"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/errors"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type routeService struct {
	txManager repository.TransactionManager
	optimizer service.RouteOptimizer
	publisher service.EventPublisher
	logger    *slog.Logger
}

// RouteServiceParams holds dependencies for RouteService, injected by Fx.
type RouteServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Optimizer service.RouteOptimizer
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewRouteService creates a new route planning service instance
func NewRouteService(params RouteServiceParams) usecase.RoutePlanUsecase {
	return &routeService{
		txManager: params.TxManager,
		optimizer: params.Optimizer,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

// OptimizeRoute sequences the shopping list into a visiting order. The
// external optimizer is consulted first; any failure there degrades to
// the local nearest-neighbor heuristic without surfacing an error. Only
// optimizer-backed plans are persisted.
func (s *routeService) OptimizeRoute(ctx context.Context, buyerID uuid.UUID, origin geo.Coordinate, items []entity.ShoppingItem, destination *geo.Coordinate) (*usecase.PlanResult, error) {
	if len(items) == 0 {
		return &usecase.PlanResult{Outcome: usecase.PlanOutcomeEmpty}, nil
	}

	for _, item := range items {
		if !item.Seller.HasLocation() {
			return nil, domainerrors.ErrInvalidCoordinates.WrapMessage("shopping list item has no seller location")
		}
	}

	req := buildOptimizeRequest(origin, destination, items)

	result, err := s.optimizer.Optimize(ctx, req)
	if err != nil {
		s.logger.Warn("route optimizer unavailable, using nearest-neighbor fallback",
			slog.String("buyerID", buyerID.String()),
			slog.Any("error", err))
		return s.fallbackPlan(origin, items), nil
	}

	order := filterStopIndices(result.Order, len(items))
	if len(order) == 0 {
		// An order with nothing usable in it is as good as no answer.
		s.logger.Warn("route optimizer returned no usable stop indices",
			slog.String("buyerID", buyerID.String()),
			slog.Int("rawEntries", len(result.Order)))
		return s.fallbackPlan(origin, items), nil
	}

	plan := &entity.RoutePlan{
		ID:                uuid.New(),
		BuyerID:           buyerID,
		Origin:            origin,
		Destination:       destination,
		OptimizerRequest:  string(result.RawRequest),
		OptimizerResponse: string(result.RawResponse),
		Status:            entity.RouteStatusActive,
		CreatedAt:         time.Now(),
	}
	stops := buildStops(plan.ID, items, order)

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.NewRoutePlanRepository().CreateRoutePlan(ctx, plan, stops)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to persist route plan")
	}

	s.publishPlanCreated(ctx, plan, len(stops))

	return &usecase.PlanResult{
		Outcome: usecase.PlanOutcomeOptimized,
		Plan:    plan,
		Stops:   stops,
	}, nil
}

// GetRoutePlan returns a plan and its stops ordered by stop order.
func (s *routeService) GetRoutePlan(ctx context.Context, planID uuid.UUID) (*entity.RoutePlan, []*entity.RoutePlanStop, error) {
	var (
		plan  *entity.RoutePlan
		stops []*entity.RoutePlanStop
	)

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		routePlanRepo := factory.NewRoutePlanRepository()

		found, err := routePlanRepo.FindRoutePlanByID(ctx, planID)
		if err != nil {
			if errors.Is(err, repository.ErrRoutePlanNotFound) {
				return domainerrors.ErrRoutePlanNotFound
			}
			return errors.Wrap(err, "failed to find route plan")
		}

		planStops, err := routePlanRepo.ListStopsByPlan(ctx, planID)
		if err != nil {
			return errors.Wrap(err, "failed to list route plan stops")
		}

		plan = found
		stops = planStops

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return plan, stops, nil
}

// CancelRoutePlan transitions the buyer's plan from active to cancelled.
// Plans already in a terminal state stay untouched.
func (s *routeService) CancelRoutePlan(ctx context.Context, buyerID, planID uuid.UUID) error {
	return s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		routePlanRepo := factory.NewRoutePlanRepository()

		plan, err := routePlanRepo.FindRoutePlanByID(ctx, planID)
		if err != nil {
			if errors.Is(err, repository.ErrRoutePlanNotFound) {
				return domainerrors.ErrRoutePlanNotFound
			}
			return errors.Wrap(err, "failed to find route plan")
		}

		if plan.BuyerID != buyerID {
			// Foreign plans read as absent rather than forbidden.
			return domainerrors.ErrRoutePlanNotFound
		}
		if plan.Status.IsTerminal() {
			return domainerrors.ErrRoutePlanFinalized
		}

		if err := routePlanRepo.UpdateRoutePlanStatus(ctx, planID, entity.RouteStatusCancelled); err != nil {
			return errors.Wrap(err, "failed to update route plan status")
		}

		return nil
	})
}

// fallbackPlan orders the stops with the deterministic nearest-neighbor
// heuristic. Fallback results are advisory and never persisted.
func (s *routeService) fallbackPlan(origin geo.Coordinate, items []entity.ShoppingItem) *usecase.PlanResult {
	order := nearestNeighborOrder(origin, items)
	return &usecase.PlanResult{
		Outcome: usecase.PlanOutcomeFallback,
		Stops:   buildStops(uuid.Nil, items, order),
	}
}

func (s *routeService) publishPlanCreated(ctx context.Context, plan *entity.RoutePlan, stopCount int) {
	event := &service.RoutePlanEvent{
		PlanID:    plan.ID.String(),
		BuyerID:   plan.BuyerID.String(),
		StopCount: stopCount,
		CreatedAt: plan.CreatedAt.Format(time.RFC3339),
	}

	// Publishing is best effort; the plan is already committed.
	if err := s.publisher.PublishRoutePlanEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish route plan event",
			slog.String("planID", plan.ID.String()),
			slog.Any("error", err))
	}
}

func buildOptimizeRequest(origin geo.Coordinate, destination *geo.Coordinate, items []entity.ShoppingItem) *service.OptimizeRequest {
	stops := make([]service.OptimizeStop, 0, len(items))
	for _, item := range items {
		stops = append(stops, service.OptimizeStop{
			SellerID:           item.Seller.ID,
			SellerName:         item.Seller.DisplayName(),
			ProductID:          item.Product.ID,
			ProductName:        item.Product.Name,
			Location:           *item.Seller.Location,
			// The shopping item already carries the distance measured by
			// the search that produced it; reuse that snapshot instead of
			// re-deriving it from the coordinates.
			DistanceFromOrigin: geo.RoundKm(item.DistanceKm),
		})
	}

	return &service.OptimizeRequest{
		Origin:      origin,
		Destination: destination,
		Stops:       stops,
	}
}

// filterStopIndices keeps the entries that address a real stop, in the
// order the optimizer proposed them.
func filterStopIndices(order []int, stopCount int) []int {
	valid := make([]int, 0, len(order))
	for _, idx := range order {
		if idx < 0 || idx >= stopCount {
			continue
		}
		valid = append(valid, idx)
	}

	return valid
}

// buildStops materializes the visiting sequence as stop entities with a
// dense 1-based stop order.
func buildStops(planID uuid.UUID, items []entity.ShoppingItem, order []int) []*entity.RoutePlanStop {
	stops := make([]*entity.RoutePlanStop, 0, len(order))
	for i, idx := range order {
		item := items[idx]
		stops = append(stops, &entity.RoutePlanStop{
			ID:        uuid.New(),
			PlanID:    planID,
			SellerID:  item.Seller.ID,
			ProductID: item.Product.ID,
			StopOrder: i + 1,
			Location:  *item.Seller.Location,
		})
	}

	return stops
}

// nearestNeighborOrder greedily visits the closest unvisited stop next,
// starting from the origin. Ties keep the earlier list position, so the
// result is deterministic for a given input.
func nearestNeighborOrder(origin geo.Coordinate, items []entity.ShoppingItem) []int {
	remaining := make([]int, len(items))
	for i := range items {
		remaining[i] = i
	}

	order := make([]int, 0, len(items))
	current := origin
	for len(remaining) > 0 {
		best := 0
		bestDist := geo.Distance(current, *items[remaining[0]].Seller.Location)
		for i := 1; i < len(remaining); i++ {
			dist := geo.Distance(current, *items[remaining[i]].Seller.Location)
			if dist < bestDist {
				best = i
				bestDist = dist
			}
		}

		chosen := remaining[best]
		order = append(order, chosen)
		current = *items[chosen].Seller.Location
		remaining = append(remaining[:best], remaining[best+1:]...)
	}

	return order
}
