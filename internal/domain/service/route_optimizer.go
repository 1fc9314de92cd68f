// Package service defines the interfaces for external collaborators the
// core depends on.
package service

import (
	"context"

	"bazaar/internal/domain/geo"

	"github.com/google/uuid"
)

// OptimizeStop is one candidate stop handed to the route optimizer.
type OptimizeStop struct {
	SellerID           uuid.UUID      `json:"seller_id"`
	SellerName         string         `json:"seller_name"`
	ProductID          uuid.UUID      `json:"product_id"`
	ProductName        string         `json:"product_name"`
	Location           geo.Coordinate `json:"location"`
	DistanceFromOrigin float64        `json:"distance_from_origin"`
}

// OptimizeRequest is the payload sent to the route optimization service.
type OptimizeRequest struct {
	Origin      geo.Coordinate  `json:"origin"`
	Destination *geo.Coordinate `json:"destination"`
	Stops       []OptimizeStop  `json:"stops"`
}

// OptimizeResult carries the proposed visiting order plus the raw wire
// payloads, which are persisted verbatim on the plan for auditing.
type OptimizeResult struct {
	// Order holds the integer entries of the optimizer's response array,
	// as indices into the request's stop list. Non-integer entries have
	// already been dropped; range validation is the caller's concern
	// since only it knows the stop count it will accept.
	Order []int

	RawRequest  []byte
	RawResponse []byte
}

// RouteOptimizer defines the interface for the external route
// optimization service. The call is advisory only: it returns a proposed
// order and mutates nothing. Implementations must bound the round-trip
// with a timeout so a stuck optimizer degrades into the local fallback
// instead of hanging the caller.
type RouteOptimizer interface {
	Optimize(ctx context.Context, req *OptimizeRequest) (*OptimizeResult, error)
}
