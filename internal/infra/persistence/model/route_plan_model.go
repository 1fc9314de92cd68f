package model

import (
	"time"

	"github.com/google/uuid"
)

// RoutePlanModel is the GORM-specific struct for the 'route_plans' table.
// The raw optimizer request/response payloads are stored verbatim for
// auditing. Destination coordinates are nullable: NULL means the trip
// returns to its origin.
type RoutePlanModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	BuyerID           uuid.UUID `gorm:"type:uuid;not null;index:idx_route_plans_on_buyer"`
	OriginLat         float64   `gorm:"type:decimal(10,8);not null"`
	OriginLng         float64   `gorm:"type:decimal(11,8);not null"`
	DestinationLat    *float64  `gorm:"type:decimal(10,8)"`
	DestinationLng    *float64  `gorm:"type:decimal(11,8)"`
	OptimizerRequest  string    `gorm:"type:text"`
	OptimizerResponse string    `gorm:"type:text"`
	Status            string    `gorm:"type:varchar(20);not null;default:'active'"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// A plan owns its stops: deleting the plan row removes them with it.
	Stops []RoutePlanStopModel `gorm:"foreignKey:PlanID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (RoutePlanModel) TableName() string {
	return "route_plans"
}

// RoutePlanStopModel is the GORM-specific struct for the 'route_plan_stops' table.
// StopOrder is 1-based and unique within a plan. The shop coordinates are a
// planning-time snapshot, deliberately denormalized from the seller record.
type RoutePlanStopModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	PlanID     uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_route_plan_stops_order"`
	SellerID   uuid.UUID  `gorm:"type:uuid;not null"`
	ProductID  uuid.UUID  `gorm:"type:uuid;not null"`
	StopOrder  int        `gorm:"not null;uniqueIndex:idx_route_plan_stops_order"`
	ShopLat    float64    `gorm:"type:decimal(10,8);not null"`
	ShopLng    float64    `gorm:"type:decimal(11,8);not null"`
	ArrivalETA *time.Time `gorm:"type:timestamptz"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (RoutePlanStopModel) TableName() string {
	return "route_plan_stops"
}
