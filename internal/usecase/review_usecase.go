package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// AddReviewInput represents the input for submitting a product review
type AddReviewInput struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// ReviewUsecase defines the interface for review and rating use cases
type ReviewUsecase interface {
	// AddReview upserts the user's review of a product and recomputes the
	// product's derived rating fields in the same transaction. Returns
	// the product with its refreshed rating.
	AddReview(ctx context.Context, productID, userID uuid.UUID, input *AddReviewInput) (*entity.Product, error)

	// GetProductReviews returns up to limit reviews for a product, newest first.
	GetProductReviews(ctx context.Context, productID uuid.UUID, limit int) ([]*entity.Review, error)
}
