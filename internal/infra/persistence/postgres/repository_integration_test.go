package postgres

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/geo"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"
	"bazaar/internal/usecase"
	"bazaar/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupTestDB starts a throwaway PostgreSQL container and migrates the
// schema into it. Tests that need real statement-level concurrency
// semantics (row locks, conditional updates) run against this instead of
// mocks.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test: requires Docker")
	}

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("bazaar_test"),
		tcpostgres.WithUsername("bazaar"),
		tcpostgres.WithPassword("bazaar"),
		tcpostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error)
	require.NoError(t, db.AutoMigrate(
		&model.SellerModel{},
		&model.ProductModel{},
		&model.ReviewModel{},
		&model.RoutePlanModel{},
		&model.RoutePlanStopModel{},
	))

	return db
}

func seedProduct(t *testing.T, db *gorm.DB, stock, onlineStock int) uuid.UUID {
	t.Helper()

	lat, lng := 12.9716, 77.5946
	seller := model.SellerModel{ID: uuid.New(), Name: "seller", ShopName: "shop", Latitude: &lat, Longitude: &lng}
	require.NoError(t, db.Create(&seller).Error)

	product := model.ProductModel{
		ID:          uuid.New(),
		SellerID:    seller.ID,
		Name:        "rice",
		Price:       42,
		Stock:       stock,
		OnlineStock: onlineStock,
		IsVisible:   true,
	}
	require.NoError(t, db.Create(&product).Error)

	return product.ID
}

func TestProductRepository_DecrementStock_Concurrency(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)

	t.Run("exactly one of two concurrent decrements wins", func(t *testing.T) {
		productID := seedProduct(t, db, 5, 5)

		start := make(chan struct{})
		results := make(chan error, 2)
		for i := 0; i < 2; i++ {
			go func() {
				<-start
				results <- repo.DecrementStock(context.Background(), productID, 3, true)
			}()
		}
		close(start)

		var wins, insufficient int
		for i := 0; i < 2; i++ {
			err := <-results
			switch {
			case err == nil:
				wins++
			case errors.Is(err, repository.ErrInsufficientStock):
				insufficient++
			default:
				t.Fatalf("unexpected decrement error: %v", err)
			}
		}
		assert.Equal(t, 1, wins)
		assert.Equal(t, 1, insufficient)

		product, err := repo.FindProductByID(context.Background(), productID)
		require.NoError(t, err)
		assert.Equal(t, 2, product.OnlineStock)
		assert.Equal(t, 2, product.Stock)
	})

	t.Run("concurrent decrements never drive stock negative", func(t *testing.T) {
		productID := seedProduct(t, db, 10, 0)

		const attempts = 20
		start := make(chan struct{})
		results := make(chan error, attempts)
		for i := 0; i < attempts; i++ {
			go func() {
				<-start
				results <- repo.DecrementStock(context.Background(), productID, 1, false)
			}()
		}
		close(start)

		var wins int
		for i := 0; i < attempts; i++ {
			if err := <-results; err == nil {
				wins++
			} else {
				require.ErrorIs(t, err, repository.ErrInsufficientStock)
			}
		}
		assert.Equal(t, 10, wins)

		product, err := repo.FindProductByID(context.Background(), productID)
		require.NoError(t, err)
		assert.Equal(t, 0, product.Stock)
	})
}

// Two buyers reviewing the same product at the same time must both end up
// in the stored rating: the recompute takes the product row lock, so the
// later transaction aggregates after the earlier one committed.
func TestReviewService_AddReview_ConcurrentRecompute(t *testing.T) {
	db := setupTestDB(t)
	productID := seedProduct(t, db, 5, 5)

	svc := impl.NewReviewService(impl.ReviewServiceParams{
		TxManager:  NewTransactionManager(db),
		ReviewRepo: NewReviewRepository(db),
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	var wg sync.WaitGroup
	for _, rating := range []int{5, 3} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.AddReview(context.Background(), productID, uuid.New(), &usecase.AddReviewInput{
				Rating:  rating,
				Comment: "fresh",
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	product, err := NewProductRepository(db).FindProductByID(context.Background(), productID)
	require.NoError(t, err)
	assert.Equal(t, 2, product.RatingCount)
	assert.InDelta(t, 4.0, product.Rating, 1e-9)
}

func TestRoutePlanRepository_DeletingPlanRemovesStops(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRoutePlanRepository(db)

	plan := &entity.RoutePlan{
		ID:                uuid.New(),
		BuyerID:           uuid.New(),
		Origin:            geo.Coordinate{Lat: 12.9716, Lng: 77.5946},
		OptimizerRequest:  "{}",
		OptimizerResponse: "[0,1]",
		Status:            entity.RouteStatusActive,
		CreatedAt:         time.Now(),
	}
	stops := []*entity.RoutePlanStop{
		{ID: uuid.New(), PlanID: plan.ID, SellerID: uuid.New(), ProductID: uuid.New(), StopOrder: 1, Location: plan.Origin},
		{ID: uuid.New(), PlanID: plan.ID, SellerID: uuid.New(), ProductID: uuid.New(), StopOrder: 2, Location: plan.Origin},
	}
	require.NoError(t, repo.CreateRoutePlan(context.Background(), plan, stops))

	require.NoError(t, db.Delete(&model.RoutePlanModel{}, "id = ?", plan.ID).Error)

	var count int64
	require.NoError(t, db.Model(&model.RoutePlanStopModel{}).Where("plan_id = ?", plan.ID).Count(&count).Error)
	assert.Zero(t, count)
}
