package impl

import (
	"context"
	"log/slog"
	"math"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/errors"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultReviewListLimit = 10

type reviewService struct {
	txManager  repository.TransactionManager
	reviewRepo repository.ReviewRepository
	logger     *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	ReviewRepo repository.ReviewRepository
	Logger     *slog.Logger
}

// NewReviewService creates a new review service instance
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager:  params.TxManager,
		reviewRepo: params.ReviewRepo,
		logger:     params.Logger,
	}
}

// AddReview upserts the user's review and recomputes the product's rating
// summary from all stored reviews inside one transaction, so the stored
// average never drifts from the review rows.
func (s *reviewService) AddReview(ctx context.Context, productID, userID uuid.UUID, input *usecase.AddReviewInput) (*entity.Product, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domainerrors.ErrInvalidRating
	}

	var updated *entity.Product
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		productRepo := factory.NewProductRepository()
		reviewRepo := factory.NewReviewRepository()

		// Take the product row lock first so concurrent recomputes for the
		// same product run one after another; without it two transactions
		// can each aggregate before the other commits and the later commit
		// stores a rating that misses the earlier review.
		product, err := productRepo.FindProductByIDForUpdate(ctx, productID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}
			return errors.Wrap(err, "failed to find product")
		}

		now := time.Now()
		review := &entity.Review{
			ID:        uuid.New(),
			ProductID: productID,
			UserID:    userID,
			Rating:    input.Rating,
			Comment:   input.Comment,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := reviewRepo.UpsertReview(ctx, review); err != nil {
			return errors.Wrap(err, "failed to upsert review")
		}

		avg, count, err := reviewRepo.AggregateProductRating(ctx, productID)
		if err != nil {
			return errors.Wrap(err, "failed to aggregate product rating")
		}

		// One decimal place, matching what listings display.
		rounded := math.Round(avg*10) / 10
		if err := productRepo.UpdateRating(ctx, productID, rounded, count); err != nil {
			return errors.Wrap(err, "failed to update product rating")
		}

		product.Rating = rounded
		product.RatingCount = count
		updated = product

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("review recorded",
		slog.String("productID", productID.String()),
		slog.String("userID", userID.String()),
		slog.Int("rating", input.Rating))

	return updated, nil
}

// GetProductReviews lists a product's reviews, newest first.
func (s *reviewService) GetProductReviews(ctx context.Context, productID uuid.UUID, limit int) ([]*entity.Review, error) {
	if limit <= 0 {
		limit = defaultReviewListLimit
	}

	reviews, err := s.reviewRepo.ListProductReviews(ctx, productID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list product reviews")
	}

	return reviews, nil
}
