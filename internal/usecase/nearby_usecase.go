package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/geo"

	"github.com/google/uuid"
)

// SearchInput represents the parameters of a nearby product search
type SearchInput struct {
	// Name optionally narrows results to products whose name contains
	// this substring, case-insensitively.
	Name string `json:"name"`

	// Category optionally narrows results to an exact category.
	Category string `json:"category"`

	// Origin is the buyer's position the radius is measured from.
	Origin geo.Coordinate `json:"origin"`

	// MaxKm is the search radius in kilometers.
	MaxKm float64 `json:"max_km"`
}

// SearchResult is one product+seller candidate within the radius. The
// embedded snapshot carries the distance rounded to two decimals for
// display; the radius check itself happens at full precision before
// rounding.
type SearchResult struct {
	entity.ShoppingItem
	DistanceDisplay string `json:"distance_display"`
}

// ResultFilter represents the secondary filters applied to search results.
// Nil pointer fields are no-ops; all present filters compose as AND.
type ResultFilter struct {
	MinPrice    *float64            `json:"min_price,omitempty"`
	MaxPrice    *float64            `json:"max_price,omitempty"`
	MinRating   *float64            `json:"min_rating,omitempty"`
	InStockOnly bool                `json:"in_stock_only"`
	Mode        entity.PurchaseMode `json:"mode"`
}

// NearbyUsecase defines the interface for proximity-aware catalog search
type NearbyUsecase interface {
	// FindNearby scans visible products, joins them to their sellers,
	// drops sellers without a usable location, and returns candidates
	// within MaxKm sorted ascending by distance (stable ties).
	FindNearby(ctx context.Context, input *SearchInput) ([]SearchResult, error)

	// FilterResults applies the secondary filters to an existing result
	// list. Pure function: it never re-queries storage.
	FilterResults(results []SearchResult, filter *ResultFilter) []SearchResult

	// GetSeller returns the shop detail behind a search result.
	GetSeller(ctx context.Context, sellerID uuid.UUID) (*entity.Seller, error)
}
