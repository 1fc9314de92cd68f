package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/geo"

	"github.com/google/uuid"
)

// PlanOutcome tells the caller how a route-plan request resolved.
type PlanOutcome string

const (
	// PlanOutcomeOptimized means the external optimizer produced the order
	// and the plan was persisted.
	PlanOutcomeOptimized PlanOutcome = "optimized"
	// PlanOutcomeFallback means the local nearest-neighbor heuristic
	// produced the order; the result is in-memory only.
	PlanOutcomeFallback PlanOutcome = "fallback"
	// PlanOutcomeEmpty means the shopping list was empty, so there is no
	// plan at all. This is a no-op, not an error.
	PlanOutcomeEmpty PlanOutcome = "empty"
)

// PlanResult is the best-effort result of a route-plan request.
type PlanResult struct {
	Outcome PlanOutcome `json:"outcome"`

	// Plan is the persisted plan for the optimized outcome, nil otherwise.
	Plan *entity.RoutePlan `json:"plan,omitempty"`

	// Stops is the visiting sequence in order. For the optimized outcome
	// these are the persisted stops; for the fallback outcome they are
	// unsaved snapshots with StopOrder assigned but no plan reference.
	Stops []*entity.RoutePlanStop `json:"stops,omitempty"`
}

// RoutePlanUsecase defines the interface for multi-stop route planning
type RoutePlanUsecase interface {
	// OptimizeRoute sequences a shopping list into a visiting order,
	// preferring the external optimizer and degrading to the deterministic
	// nearest-neighbor heuristic on any optimizer failure. Only optimizer
	// successes persist a plan.
	OptimizeRoute(ctx context.Context, buyerID uuid.UUID, origin geo.Coordinate, items []entity.ShoppingItem, destination *geo.Coordinate) (*PlanResult, error)

	// GetRoutePlan returns a plan and its stops ordered by stop order.
	GetRoutePlan(ctx context.Context, planID uuid.UUID) (*entity.RoutePlan, []*entity.RoutePlanStop, error)

	// CancelRoutePlan transitions the buyer's plan from active to cancelled.
	CancelRoutePlan(ctx context.Context, buyerID, planID uuid.UUID) error
}
