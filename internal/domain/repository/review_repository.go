package repository

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewRepository defines the interface for review-related database operations.
type ReviewRepository interface {
	// UpsertReview inserts a review or, when the (product, user) pair
	// already has one, overwrites its rating and comment in place.
	UpsertReview(ctx context.Context, review *entity.Review) error

	// AggregateProductRating returns the arithmetic mean rating and the
	// review count for a product. A product with no reviews yields (0, 0).
	AggregateProductRating(ctx context.Context, productID uuid.UUID) (avg float64, count int, err error)

	// ListProductReviews retrieves up to limit reviews for a product,
	// newest first.
	ListProductReviews(ctx context.Context, productID uuid.UUID, limit int) ([]*entity.Review, error)
}
