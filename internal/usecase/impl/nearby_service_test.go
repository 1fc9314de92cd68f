package impl

import (
	"context"
	"testing"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/geo"
	"bazaar/internal/domain/repository"
	mockrepo "bazaar/internal/mocks/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type nearbyServiceFixtures struct {
	productRepo *mockrepo.MockProductRepository
	sellerRepo  *mockrepo.MockSellerRepository
	service     usecase.NearbyUsecase
}

func newNearbyServiceFixtures(t *testing.T) *nearbyServiceFixtures {
	t.Helper()

	productRepo := mockrepo.NewMockProductRepository(t)
	sellerRepo := mockrepo.NewMockSellerRepository(t)
	cfg := &config.Config{
		Search: &config.SearchConfig{
			DefaultRadiusKm: 10,
			MaxRadiusKm:     50,
		},
	}

	svc := NewNearbyService(NearbyServiceParams{
		ProductRepo: productRepo,
		SellerRepo:  sellerRepo,
		Config:      cfg,
	})

	return &nearbyServiceFixtures{
		productRepo: productRepo,
		sellerRepo:  sellerRepo,
		service:     svc,
	}
}

// sellerAt builds a seller offset north of the origin by roughly
// offsetKm (1 degree of latitude is about 111.2 km).
func sellerAt(origin geo.Coordinate, offsetKm float64) *entity.Seller {
	return &entity.Seller{
		ID:       uuid.New(),
		Name:     "seller",
		ShopName: "shop",
		Location: &geo.Coordinate{
			Lat: origin.Lat + offsetKm/111.2,
			Lng: origin.Lng,
		},
	}
}

func productOf(seller *entity.Seller, name string, price float64) *entity.Product {
	return &entity.Product{
		ID:        uuid.New(),
		SellerID:  seller.ID,
		Name:      name,
		Category:  "grocery",
		Price:     price,
		Stock:     5,
		IsVisible: true,
	}
}

func TestNearbyService_FindNearby(t *testing.T) {
	t.Parallel()

	origin := geo.Coordinate{Lat: 12.9716, Lng: 77.5946}

	t.Run("sorts results ascending by distance within the radius", func(t *testing.T) {
		t.Parallel()

		f := newNearbyServiceFixtures(t)

		near := sellerAt(origin, 0.5)
		mid := sellerAt(origin, 5)
		far := sellerAt(origin, 25)

		// Listed far-to-near to prove the sort does the work.
		products := []*entity.Product{
			productOf(far, "rice", 60),
			productOf(mid, "rice", 55),
			productOf(near, "rice", 50),
		}

		f.productRepo.EXPECT().
			ListVisibleProducts(mock.Anything, "rice", "").
			Return(products, nil)
		f.sellerRepo.EXPECT().
			FindSellersByIDs(mock.Anything, mock.Anything).
			Return(map[uuid.UUID]*entity.Seller{
				near.ID: near,
				mid.ID:  mid,
				far.ID:  far,
			}, nil)

		results, err := f.service.FindNearby(context.Background(), &usecase.SearchInput{
			Name:   "rice",
			Origin: origin,
			MaxKm:  10,
		})

		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, near.ID, results[0].Seller.ID)
		assert.Equal(t, mid.ID, results[1].Seller.ID)
		assert.Less(t, results[0].DistanceKm, results[1].DistanceKm)
		assert.Contains(t, results[0].DistanceDisplay, "m")
		assert.Contains(t, results[1].DistanceDisplay, "km")
	})

	t.Run("excludes sellers without a location", func(t *testing.T) {
		t.Parallel()

		f := newNearbyServiceFixtures(t)

		located := sellerAt(origin, 1)
		unlocated := &entity.Seller{ID: uuid.New(), Name: "no-location"}

		products := []*entity.Product{
			productOf(located, "milk", 30),
			productOf(unlocated, "milk", 25),
		}

		f.productRepo.EXPECT().
			ListVisibleProducts(mock.Anything, "", "").
			Return(products, nil)
		f.sellerRepo.EXPECT().
			FindSellersByIDs(mock.Anything, mock.Anything).
			Return(map[uuid.UUID]*entity.Seller{
				located.ID:   located,
				unlocated.ID: unlocated,
			}, nil)

		results, err := f.service.FindNearby(context.Background(), &usecase.SearchInput{
			Origin: origin,
			MaxKm:  10,
		})

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, located.ID, results[0].Seller.ID)
	})

	t.Run("applies the configured default radius when none is given", func(t *testing.T) {
		t.Parallel()

		f := newNearbyServiceFixtures(t)

		inside := sellerAt(origin, 5)
		outside := sellerAt(origin, 15)

		products := []*entity.Product{
			productOf(inside, "eggs", 10),
			productOf(outside, "eggs", 9),
		}

		f.productRepo.EXPECT().
			ListVisibleProducts(mock.Anything, "", "").
			Return(products, nil)
		f.sellerRepo.EXPECT().
			FindSellersByIDs(mock.Anything, mock.Anything).
			Return(map[uuid.UUID]*entity.Seller{
				inside.ID:  inside,
				outside.ID: outside,
			}, nil)

		results, err := f.service.FindNearby(context.Background(), &usecase.SearchInput{
			Origin: origin,
		})

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, inside.ID, results[0].Seller.ID)
	})

	t.Run("caps an oversized radius at the configured maximum", func(t *testing.T) {
		t.Parallel()

		f := newNearbyServiceFixtures(t)

		beyondMax := sellerAt(origin, 60)

		f.productRepo.EXPECT().
			ListVisibleProducts(mock.Anything, "", "").
			Return([]*entity.Product{productOf(beyondMax, "flour", 40)}, nil)
		f.sellerRepo.EXPECT().
			FindSellersByIDs(mock.Anything, mock.Anything).
			Return(map[uuid.UUID]*entity.Seller{beyondMax.ID: beyondMax}, nil)

		results, err := f.service.FindNearby(context.Background(), &usecase.SearchInput{
			Origin: origin,
			MaxKm:  500,
		})

		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("batches seller lookups without duplicate IDs", func(t *testing.T) {
		t.Parallel()

		f := newNearbyServiceFixtures(t)

		seller := sellerAt(origin, 1)
		products := []*entity.Product{
			productOf(seller, "bread", 20),
			productOf(seller, "butter", 45),
		}

		f.productRepo.EXPECT().
			ListVisibleProducts(mock.Anything, "", "").
			Return(products, nil)
		f.sellerRepo.EXPECT().
			FindSellersByIDs(mock.Anything, mock.Anything).
			Run(func(_ context.Context, ids []uuid.UUID) {
				assert.Len(t, ids, 1)
			}).
			Return(map[uuid.UUID]*entity.Seller{seller.ID: seller}, nil)

		results, err := f.service.FindNearby(context.Background(), &usecase.SearchInput{
			Origin: origin,
			MaxKm:  10,
		})

		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("returns empty when no products match", func(t *testing.T) {
		t.Parallel()

		f := newNearbyServiceFixtures(t)

		f.productRepo.EXPECT().
			ListVisibleProducts(mock.Anything, "nothing", "").
			Return([]*entity.Product{}, nil)

		results, err := f.service.FindNearby(context.Background(), &usecase.SearchInput{
			Name:   "nothing",
			Origin: origin,
			MaxKm:  10,
		})

		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestNearbyService_FilterResults(t *testing.T) {
	t.Parallel()

	f := newNearbyServiceFixtures(t)

	results := []usecase.SearchResult{
		{ShoppingItem: entity.ShoppingItem{Product: entity.Product{Name: "cheap", Price: 20, Rating: 4.5, Stock: 3, OnlineStock: 0}}},
		{ShoppingItem: entity.ShoppingItem{Product: entity.Product{Name: "pricey", Price: 80, Rating: 3.0, Stock: 0, OnlineStock: 0}}},
		{ShoppingItem: entity.ShoppingItem{Product: entity.Product{Name: "mid", Price: 50, Rating: 4.0, Stock: 5, OnlineStock: 5}}},
	}

	floatPtr := func(v float64) *float64 { return &v }

	tests := []struct {
		name      string
		filter    *usecase.ResultFilter
		wantNames []string
	}{
		{
			name:      "nil filter keeps everything",
			filter:    nil,
			wantNames: []string{"cheap", "pricey", "mid"},
		},
		{
			name:      "price band",
			filter:    &usecase.ResultFilter{MinPrice: floatPtr(30), MaxPrice: floatPtr(60)},
			wantNames: []string{"mid"},
		},
		{
			name:      "minimum rating",
			filter:    &usecase.ResultFilter{MinRating: floatPtr(4.0)},
			wantNames: []string{"cheap", "mid"},
		},
		{
			name:      "in stock for pickup",
			filter:    &usecase.ResultFilter{InStockOnly: true, Mode: entity.PurchaseModePickup},
			wantNames: []string{"cheap", "mid"},
		},
		{
			name:      "in stock for delivery uses the online pool",
			filter:    &usecase.ResultFilter{InStockOnly: true, Mode: entity.PurchaseModeDelivery},
			wantNames: []string{"mid"},
		},
		{
			name:      "filters compose as AND",
			filter:    &usecase.ResultFilter{MinPrice: floatPtr(30), MinRating: floatPtr(4.0), InStockOnly: true, Mode: entity.PurchaseModePickup},
			wantNames: []string{"mid"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := f.service.FilterResults(results, tt.filter)

			names := make([]string, 0, len(filtered))
			for _, r := range filtered {
				names = append(names, r.Product.Name)
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestNearbyService_GetSeller(t *testing.T) {
	t.Parallel()

	t.Run("returns the seller", func(t *testing.T) {
		t.Parallel()

		f := newNearbyServiceFixtures(t)
		seller := sellerAt(geo.Coordinate{Lat: 12.9716, Lng: 77.5946}, 1)
		f.sellerRepo.EXPECT().
			FindSellerByID(mock.Anything, seller.ID).
			Return(seller, nil)

		got, err := f.service.GetSeller(context.Background(), seller.ID)

		require.NoError(t, err)
		assert.Equal(t, seller, got)
	})

	t.Run("maps a missing seller", func(t *testing.T) {
		t.Parallel()

		f := newNearbyServiceFixtures(t)
		sellerID := uuid.New()
		f.sellerRepo.EXPECT().
			FindSellerByID(mock.Anything, sellerID).
			Return(nil, repository.ErrSellerNotFound)

		_, err := f.service.GetSeller(context.Background(), sellerID)

		require.ErrorIs(t, err, domainerrors.ErrSellerNotFound)
	})
}
