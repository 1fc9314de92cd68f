package impl

import (
	"context"
	"sort"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/geo"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type nearbyService struct {
	productRepo repository.ProductRepository
	sellerRepo  repository.SellerRepository
	config      *config.Config
}

// NearbyServiceParams holds dependencies for NearbyService, injected by Fx.
type NearbyServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	SellerRepo  repository.SellerRepository
	Config      *config.Config
}

// NewNearbyService creates a new nearby search service instance
func NewNearbyService(params NearbyServiceParams) usecase.NearbyUsecase {
	// If Search is not configured, provide a default configuration
	if params.Config.Search == nil {
		params.Config.Search = &config.SearchConfig{
			DefaultRadiusKm: 10, // Default to 10km
			MaxRadiusKm:     50, // Default to 50km
		}
	}

	return &nearbyService{
		productRepo: params.ProductRepo,
		sellerRepo:  params.SellerRepo,
		config:      params.Config,
	}
}

// candidate keeps the full-precision distance next to the result so the
// radius check and the sort never depend on the rounded display value.
type candidate struct {
	result  usecase.SearchResult
	fullKm  float64
	scanIdx int
}

// FindNearby scans visible products, joins each to its seller and keeps
// those within the radius, sorted ascending by distance.
func (s *nearbyService) FindNearby(ctx context.Context, input *usecase.SearchInput) ([]usecase.SearchResult, error) {
	radius := input.MaxKm
	if radius <= 0 {
		radius = s.config.Search.DefaultRadiusKm
	}
	if max := s.config.Search.MaxRadiusKm; max > 0 && radius > max {
		radius = max
	}

	products, err := s.productRepo.ListVisibleProducts(ctx, input.Name, input.Category)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list visible products")
	}

	sellers, err := s.fetchSellers(ctx, products)
	if err != nil {
		return nil, err
	}

	candidates := make([]candidate, 0, len(products))
	for i, product := range products {
		seller, ok := sellers[product.SellerID]
		if !ok || !seller.HasLocation() {
			// Sellers without a usable shop location never appear in
			// nearby listings, regardless of the requested radius.
			continue
		}

		dist := geo.Distance(input.Origin, *seller.Location)
		if dist > radius {
			continue
		}

		candidates = append(candidates, candidate{
			result: usecase.SearchResult{
				ShoppingItem: entity.ShoppingItem{
					Seller:     *seller,
					Product:    *product,
					DistanceKm: geo.RoundKm(dist),
				},
				DistanceDisplay: geo.FormatDistance(dist),
			},
			fullKm:  dist,
			scanIdx: i,
		})
	}

	// Ascending by distance; ties keep the original scan order.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].fullKm < candidates[j].fullKm
	})

	results := make([]usecase.SearchResult, 0, len(candidates))
	for _, c := range candidates {
		results = append(results, c.result)
	}

	return results, nil
}

// fetchSellers batch-loads the sellers referenced by the product list.
func (s *nearbyService) fetchSellers(ctx context.Context, products []*entity.Product) (map[uuid.UUID]*entity.Seller, error) {
	seen := make(map[uuid.UUID]struct{}, len(products))
	ids := make([]uuid.UUID, 0, len(products))
	for _, product := range products {
		if _, ok := seen[product.SellerID]; ok {
			continue
		}
		seen[product.SellerID] = struct{}{}
		ids = append(ids, product.SellerID)
	}

	if len(ids) == 0 {
		return map[uuid.UUID]*entity.Seller{}, nil
	}

	sellers, err := s.sellerRepo.FindSellersByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find sellers by IDs")
	}

	return sellers, nil
}

// FilterResults applies price, rating, and stock filters to a result list.
// Omitted filters are no-ops; present filters compose as AND.
func (s *nearbyService) FilterResults(results []usecase.SearchResult, filter *usecase.ResultFilter) []usecase.SearchResult {
	if filter == nil {
		return results
	}

	filtered := make([]usecase.SearchResult, 0, len(results))
	for _, r := range results {
		if filter.MinPrice != nil && r.Product.Price < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && r.Product.Price > *filter.MaxPrice {
			continue
		}
		if filter.MinRating != nil && r.Product.Rating < *filter.MinRating {
			continue
		}
		if filter.InStockOnly && r.Product.StockFor(filter.Mode) <= 0 {
			continue
		}

		filtered = append(filtered, r)
	}

	return filtered
}

// GetSeller returns the shop detail behind a search result.
func (s *nearbyService) GetSeller(ctx context.Context, sellerID uuid.UUID) (*entity.Seller, error) {
	seller, err := s.sellerRepo.FindSellerByID(ctx, sellerID)
	if err != nil {
		if errors.Is(err, repository.ErrSellerNotFound) {
			return nil, domainerrors.ErrSellerNotFound
		}

		return nil, errors.Wrap(err, "failed to find seller")
	}

	return seller, nil
}
