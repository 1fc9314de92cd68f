// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"bazaar/internal/domain/geo"

	"github.com/google/uuid"
)

// Seller is the core entity for a small-shop seller on the marketplace.
type Seller struct {
	ID          uuid.UUID       // The Global Unique Identifier (GUID) for the seller.
	Name        string          // The seller's own name.
	ShopName    string          // The public shop name; may be empty for individual sellers.
	ShopAddress string          // The full, human-readable shop address.
	City        string          // The city the shop is located in.
	Pincode     string          // The postal code of the shop.
	Location    *geo.Coordinate // The shop coordinates; nil when the seller has not set a location.
	CreatedAt   time.Time       // Timestamp of when this seller was created.
}

// DisplayName returns the shop name when set, falling back to the
// seller's own name.
func (s *Seller) DisplayName() string {
	if s.ShopName != "" {
		return s.ShopName
	}

	return s.Name
}

// HasLocation reports whether the seller has a usable shop location.
// Sellers without one are excluded from distance computations and
// nearby listings.
func (s *Seller) HasLocation() bool {
	return s.Location != nil
}
