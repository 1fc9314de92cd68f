package service

import (
	"context"
)

// RoutePlanEvent announces a freshly persisted route plan for downstream
// consumers (audit trail, analytics).
type RoutePlanEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	PlanID    string `json:"plan_id"`
	BuyerID   string `json:"buyer_id"`
	StopCount int    `json:"stop_count"`
	CreatedAt string `json:"created_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishRoutePlanEvent publishes a route-plan event for async processing
	PublishRoutePlanEvent(ctx context.Context, event *RoutePlanEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
