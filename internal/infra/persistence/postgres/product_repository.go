package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// productRepository implements the domain.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// FindProductByID retrieves a product by its unique ID.
func (repo *productRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// FindProductByIDForUpdate retrieves a product under SELECT ... FOR UPDATE.
// Only meaningful inside a transaction; the lock is held until it ends.
func (repo *productRepository) FindProductByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&productM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID for update")
	}

	return toProductDomain(&productM), nil
}

// ListVisibleProducts retrieves visible products, optionally narrowed by a
// case-insensitive name substring and an exact category.
func (repo *productRepository) ListVisibleProducts(ctx context.Context, nameSubstring, category string) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).
		Where("is_visible = ?", true)
	if nameSubstring != "" {
		query = query.Where("name ILIKE ?", "%"+nameSubstring+"%")
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var productModels []*model.ProductModel
	if err := query.Order("created_at ASC").Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list visible products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// DecrementStock atomically verifies and subtracts quantity from the stock
// pools in one conditional UPDATE, so concurrent decrements can never drive
// a pool negative. A delivery sale consumes from the shared physical pool
// too, so fromOnline reduces both counters.
func (repo *productRepository) DecrementStock(ctx context.Context, id uuid.UUID, quantity int, fromOnline bool) error {
	var result *gorm.DB
	if fromOnline {
		result = repo.db.WithContext(ctx).
			Model(&model.ProductModel{}).
			Where("id = ? AND online_stock >= ?", id, quantity).
			Updates(map[string]any{
				"online_stock": gorm.Expr("online_stock - ?", quantity),
				"stock":        gorm.Expr("stock - ?", quantity),
			})
	} else {
		result = repo.db.WithContext(ctx).
			Model(&model.ProductModel{}).
			Where("id = ? AND stock >= ?", id, quantity).
			Update("stock", gorm.Expr("stock - ?", quantity))
	}

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return repository.ErrInsufficientStock
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to decrement stock")
	}

	// Zero affected rows means the precondition failed: either the product
	// does not exist or it holds less stock than requested.
	if result.RowsAffected == 0 {
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.ProductModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check product existence")
		}
		if count == 0 {
			return repository.ErrProductNotFound
		}

		return repository.ErrInsufficientStock
	}

	return nil
}

// UpdateInventory resets both stock pools of a product.
func (repo *productRepository) UpdateInventory(ctx context.Context, id uuid.UUID, totalStock, onlineStock int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"stock":        totalStock,
			"online_stock": onlineStock,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update inventory")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// UpdateRating overwrites the derived rating fields of a product.
func (repo *productRepository) UpdateRating(ctx context.Context, id uuid.UUID, rating float64, ratingCount int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"rating":       rating,
			"rating_count": ratingCount,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update rating")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:          data.ID,
		SellerID:    data.SellerID,
		Name:        data.Name,
		Description: data.Description,
		Category:    data.Category,
		Price:       data.Price,
		Stock:       data.Stock,
		OnlineStock: data.OnlineStock,
		IsVisible:   data.IsVisible,
		Rating:      data.Rating,
		RatingCount: data.RatingCount,
		CreatedAt:   data.CreatedAt,
	}
}
