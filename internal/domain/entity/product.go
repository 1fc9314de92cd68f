package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is the core entity for a seller's product listing.
// Stock is the total in-store pool; OnlineStock is the portion of it
// reservable for delivery orders, so OnlineStock <= Stock always holds.
// Rating and RatingCount are derived from reviews and never set directly.
type Product struct {
	ID          uuid.UUID
	SellerID    uuid.UUID
	Name        string
	Description string
	Category    string
	Price       float64
	Stock       int
	OnlineStock int
	IsVisible   bool
	Rating      float64
	RatingCount int
	CreatedAt   time.Time
}

// StockFor returns the stock pool that backs the given purchase mode.
func (p *Product) StockFor(mode PurchaseMode) int {
	if mode == PurchaseModeDelivery {
		return p.OnlineStock
	}

	return p.Stock
}
