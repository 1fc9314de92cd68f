package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a buyer's rating and comment on a product. A buyer holds at
// most one review per product; a repeated submission overwrites the
// previous rating and comment.
type Review struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	UserID    uuid.UUID
	Rating    int // Integer rating in [1,5].
	Comment   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
