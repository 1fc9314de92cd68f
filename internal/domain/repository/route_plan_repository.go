package repository

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"

	"github.com/google/uuid"
)

// ErrRoutePlanNotFound is returned when a route plan is not found.
var ErrRoutePlanNotFound = errors.New("route plan not found")

// RoutePlanRepository defines the interface for route-plan database operations.
// Plans and their stops are written once and read many times; creation is the
// only write path besides status transitions.
type RoutePlanRepository interface {
	// CreateRoutePlan persists a plan together with its ordered stops.
	// Callers that need all-or-nothing semantics run this inside a
	// TransactionManager.Execute scope so a stop-insert failure rolls
	// back the plan as well.
	CreateRoutePlan(ctx context.Context, plan *entity.RoutePlan, stops []*entity.RoutePlanStop) error

	// FindRoutePlanByID retrieves a plan by its unique ID.
	FindRoutePlanByID(ctx context.Context, id uuid.UUID) (*entity.RoutePlan, error)

	// ListStopsByPlan retrieves the stops of a plan ordered by StopOrder ascending.
	ListStopsByPlan(ctx context.Context, planID uuid.UUID) ([]*entity.RoutePlanStop, error)

	// UpdateRoutePlanStatus transitions a plan's status.
	UpdateRoutePlanStatus(ctx context.Context, id uuid.UUID, status entity.RouteStatus) error
}
