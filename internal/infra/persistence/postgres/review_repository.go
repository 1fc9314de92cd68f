package postgres

import (
	"context"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// reviewRepository implements the domain.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

// UpsertReview inserts a review, or overwrites the rating and comment when
// the (product, user) pair already has one. The conflict target is the
// composite unique index on the reviews table.
func (repo *reviewRepository) UpsertReview(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "product_id"}, {Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"rating":     reviewM.Rating,
				"comment":    reviewM.Comment,
				"updated_at": time.Now(),
			}),
		}).
		Create(reviewM).Error

	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidRating
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt
	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

// ratingAggregate receives the AVG/COUNT scan of a product's reviews.
type ratingAggregate struct {
	Avg   float64
	Count int
}

// AggregateProductRating computes the arithmetic mean rating and review
// count in the database, so the recompute sees exactly the committed rows
// of the surrounding transaction.
func (repo *reviewRepository) AggregateProductRating(ctx context.Context, productID uuid.UUID) (float64, int, error) {
	var agg ratingAggregate
	err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("product_id = ?", productID).
		Scan(&agg).Error

	if err != nil {
		return 0, 0, errors.Wrap(err, "failed to aggregate product rating")
	}

	return agg.Avg, agg.Count, nil
}

// ListProductReviews retrieves up to limit reviews for a product, newest first.
func (repo *reviewRepository) ListProductReviews(ctx context.Context, productID uuid.UUID, limit int) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel
	err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Limit(limit).
		Find(&reviewModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list product reviews")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, nil
}

// --- Mapper Functions ---

// toReviewDomain converts a GORM ReviewModel to a domain Review entity.
func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:        data.ID,
		ProductID: data.ProductID,
		UserID:    data.UserID,
		Rating:    data.Rating,
		Comment:   data.Comment,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromReviewDomain converts a domain Review entity to a GORM ReviewModel.
func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:        data.ID,
		ProductID: data.ProductID,
		UserID:    data.UserID,
		Rating:    data.Rating,
		Comment:   data.Comment,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
