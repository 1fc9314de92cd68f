package entity

import (
	"time"

	"bazaar/internal/domain/geo"

	"github.com/google/uuid"
)

// RouteStatus represents the lifecycle state of a route plan.
type RouteStatus string

const (
	// RouteStatusActive is the state of a freshly persisted plan.
	RouteStatusActive RouteStatus = "active"
	// RouteStatusCompleted marks a plan whose trip has been finished.
	RouteStatusCompleted RouteStatus = "completed"
	// RouteStatusCancelled marks a plan abandoned by the buyer.
	RouteStatusCancelled RouteStatus = "cancelled"
)

// String returns the string representation of the RouteStatus.
func (s RouteStatus) String() string {
	return string(s)
}

// IsValid checks if the RouteStatus is a valid value.
func (s RouteStatus) IsValid() bool {
	switch s {
	case RouteStatusActive, RouteStatusCompleted, RouteStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further status transitions are allowed.
func (s RouteStatus) IsTerminal() bool {
	return s == RouteStatusCompleted || s == RouteStatusCancelled
}

// RoutePlan is a persisted multi-shop trip for a buyer. A plan owns its
// ordered stops; it is written once, atomically with the stops, and
// only its status may change afterwards. The raw optimizer request and
// response payloads are kept verbatim for auditing.
type RoutePlan struct {
	ID                uuid.UUID
	BuyerID           uuid.UUID
	Origin            geo.Coordinate
	Destination       *geo.Coordinate // nil means the trip returns to the origin.
	OptimizerRequest  string
	OptimizerResponse string
	Status            RouteStatus
	CreatedAt         time.Time
}

// RoutePlanStop is one seller visit inside a route plan. StopOrder is
// 1-based, dense, and unique within a plan. The shop location is a
// snapshot taken at planning time.
type RoutePlanStop struct {
	ID         uuid.UUID
	PlanID     uuid.UUID
	SellerID   uuid.UUID
	ProductID  uuid.UUID
	StopOrder  int
	Location   geo.Coordinate
	ArrivalETA *time.Time // Optional estimated-arrival annotation.
}
