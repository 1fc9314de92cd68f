package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/geo"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// routePlanRepository implements the domain.RoutePlanRepository interface.
type routePlanRepository struct {
	db *gorm.DB
}

// NewRoutePlanRepository is the constructor for routePlanRepository.
func NewRoutePlanRepository(db *gorm.DB) repository.RoutePlanRepository {
	return &routePlanRepository{db: db}
}

// CreateRoutePlan persists a plan together with its ordered stops. Run
// inside TransactionManager.Execute when the write must be atomic.
func (repo *routePlanRepository) CreateRoutePlan(ctx context.Context, plan *entity.RoutePlan, stops []*entity.RoutePlanStop) error {
	planM := fromRoutePlanDomain(plan)

	if err := repo.db.WithContext(ctx).Create(planM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid buyer reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create route plan")
	}

	plan.ID = planM.ID
	plan.CreatedAt = planM.CreatedAt

	if len(stops) == 0 {
		return nil
	}

	stopModels := make([]*model.RoutePlanStopModel, 0, len(stops))
	for _, stop := range stops {
		stopM := fromRoutePlanStopDomain(stop)
		stopM.PlanID = planM.ID
		stopModels = append(stopModels, stopM)
	}

	if err := repo.db.WithContext(ctx).Create(&stopModels).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create route plan stops")
	}

	for i, stopM := range stopModels {
		stops[i].ID = stopM.ID
		stops[i].PlanID = stopM.PlanID
	}

	return nil
}

// FindRoutePlanByID retrieves a route plan by its unique ID.
func (repo *routePlanRepository) FindRoutePlanByID(ctx context.Context, id uuid.UUID) (*entity.RoutePlan, error) {
	var planM model.RoutePlanModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&planM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoutePlanNotFound
		}

		return nil, errors.Wrap(err, "failed to find route plan by ID")
	}

	return toRoutePlanDomain(&planM), nil
}

// ListStopsByPlan retrieves the stops of a plan ordered by stop order.
func (repo *routePlanRepository) ListStopsByPlan(ctx context.Context, planID uuid.UUID) ([]*entity.RoutePlanStop, error) {
	var stopModels []*model.RoutePlanStopModel
	err := repo.db.WithContext(ctx).
		Where("plan_id = ?", planID).
		Order("stop_order ASC").
		Find(&stopModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list route plan stops")
	}

	stops := make([]*entity.RoutePlanStop, 0, len(stopModels))
	for _, stopM := range stopModels {
		stops = append(stops, toRoutePlanStopDomain(stopM))
	}

	return stops, nil
}

// UpdateRoutePlanStatus transitions a plan's status.
func (repo *routePlanRepository) UpdateRoutePlanStatus(ctx context.Context, id uuid.UUID, status entity.RouteStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RoutePlanModel{}).
		Where("id = ?", id).
		Update("status", status.String())

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update route plan status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRoutePlanNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toRoutePlanDomain converts a GORM RoutePlanModel to a domain RoutePlan entity.
func toRoutePlanDomain(data *model.RoutePlanModel) *entity.RoutePlan {
	if data == nil {
		return nil
	}

	var destination *geo.Coordinate
	if data.DestinationLat != nil && data.DestinationLng != nil {
		destination = &geo.Coordinate{Lat: *data.DestinationLat, Lng: *data.DestinationLng}
	}

	return &entity.RoutePlan{
		ID:                data.ID,
		BuyerID:           data.BuyerID,
		Origin:            geo.Coordinate{Lat: data.OriginLat, Lng: data.OriginLng},
		Destination:       destination,
		OptimizerRequest:  data.OptimizerRequest,
		OptimizerResponse: data.OptimizerResponse,
		Status:            entity.RouteStatus(data.Status),
		CreatedAt:         data.CreatedAt,
	}
}

// fromRoutePlanDomain converts a domain RoutePlan entity to a GORM RoutePlanModel.
func fromRoutePlanDomain(data *entity.RoutePlan) *model.RoutePlanModel {
	if data == nil {
		return nil
	}

	planM := &model.RoutePlanModel{
		ID:                data.ID,
		BuyerID:           data.BuyerID,
		OriginLat:         data.Origin.Lat,
		OriginLng:         data.Origin.Lng,
		OptimizerRequest:  data.OptimizerRequest,
		OptimizerResponse: data.OptimizerResponse,
		Status:            data.Status.String(),
		CreatedAt:         data.CreatedAt,
	}
	if data.Destination != nil {
		planM.DestinationLat = &data.Destination.Lat
		planM.DestinationLng = &data.Destination.Lng
	}

	return planM
}

// toRoutePlanStopDomain converts a GORM RoutePlanStopModel to a domain RoutePlanStop entity.
func toRoutePlanStopDomain(data *model.RoutePlanStopModel) *entity.RoutePlanStop {
	if data == nil {
		return nil
	}

	return &entity.RoutePlanStop{
		ID:         data.ID,
		PlanID:     data.PlanID,
		SellerID:   data.SellerID,
		ProductID:  data.ProductID,
		StopOrder:  data.StopOrder,
		Location:   geo.Coordinate{Lat: data.ShopLat, Lng: data.ShopLng},
		ArrivalETA: data.ArrivalETA,
	}
}

// fromRoutePlanStopDomain converts a domain RoutePlanStop entity to a GORM RoutePlanStopModel.
func fromRoutePlanStopDomain(data *entity.RoutePlanStop) *model.RoutePlanStopModel {
	if data == nil {
		return nil
	}

	return &model.RoutePlanStopModel{
		ID:         data.ID,
		PlanID:     data.PlanID,
		SellerID:   data.SellerID,
		ProductID:  data.ProductID,
		StopOrder:  data.StopOrder,
		ShopLat:    data.Location.Lat,
		ShopLng:    data.Location.Lng,
		ArrivalETA: data.ArrivalETA,
	}
}
