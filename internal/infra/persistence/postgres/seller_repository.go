package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/geo"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sellerRepository implements the domain.SellerRepository interface.
type sellerRepository struct {
	db *gorm.DB
}

// NewSellerRepository is the constructor for sellerRepository.
func NewSellerRepository(db *gorm.DB) repository.SellerRepository {
	return &sellerRepository{db: db}
}

// FindSellerByID retrieves a seller by its unique ID.
func (repo *sellerRepository) FindSellerByID(ctx context.Context, id uuid.UUID) (*entity.Seller, error) {
	var sellerM model.SellerModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&sellerM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSellerNotFound
		}

		return nil, errors.Wrap(err, "failed to find seller by ID")
	}

	return toSellerDomain(&sellerM), nil
}

// FindSellersByIDs retrieves sellers for the given IDs in one query.
func (repo *sellerRepository) FindSellersByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Seller, error) {
	sellers := make(map[uuid.UUID]*entity.Seller, len(ids))
	if len(ids) == 0 {
		return sellers, nil
	}

	var sellerModels []*model.SellerModel
	err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&sellerModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find sellers by IDs")
	}

	for _, sellerM := range sellerModels {
		sellers[sellerM.ID] = toSellerDomain(sellerM)
	}

	return sellers, nil
}

// --- Mapper Functions ---

// toSellerDomain converts a GORM SellerModel to a domain Seller entity.
// NULL coordinates map to a nil Location. Legacy rows that stored the
// (0, 0) placeholder instead of NULL map to nil as well, so the sentinel
// never leaks past this boundary.
func toSellerDomain(data *model.SellerModel) *entity.Seller {
	if data == nil {
		return nil
	}

	var location *geo.Coordinate
	if data.Latitude != nil && data.Longitude != nil {
		if *data.Latitude != 0 || *data.Longitude != 0 {
			location = &geo.Coordinate{Lat: *data.Latitude, Lng: *data.Longitude}
		}
	}

	return &entity.Seller{
		ID:          data.ID,
		Name:        data.Name,
		ShopName:    data.ShopName,
		ShopAddress: data.ShopAddress,
		City:        data.City,
		Pincode:     data.Pincode,
		Location:    location,
		CreatedAt:   data.CreatedAt,
	}
}
