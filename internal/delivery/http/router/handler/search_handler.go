package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/geo"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SearchHandlerParams holds dependencies for SearchHandler, injected by Fx.
type SearchHandlerParams struct {
	fx.In

	NearbyUC usecase.NearbyUsecase
	Logger   *slog.Logger
}

// SearchHandler holds dependencies for nearby-search handlers
type SearchHandler struct {
	nearbyUC usecase.NearbyUsecase
	logger   *slog.Logger
}

// NewSearchHandler is the constructor for SearchHandler
func NewSearchHandler(params SearchHandlerParams) *SearchHandler {
	return &SearchHandler{
		nearbyUC: params.NearbyUC,
		logger:   params.Logger,
	}
}

// SearchFilterRequest represents the optional secondary filters of a search
type SearchFilterRequest struct {
	MinPrice    *float64 `json:"min_price,omitempty" validate:"omitempty,min=0"`
	MaxPrice    *float64 `json:"max_price,omitempty" validate:"omitempty,min=0"`
	MinRating   *float64 `json:"min_rating,omitempty" validate:"omitempty,min=0,max=5"`
	InStockOnly bool     `json:"in_stock_only"`
	Mode        string   `json:"mode,omitempty" validate:"omitempty,oneof=delivery pickup in_store"`
}

// SearchNearbyRequest represents the request body for a nearby product search
type SearchNearbyRequest struct {
	Latitude  float64              `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64              `json:"longitude" validate:"min=-180,max=180"`
	RadiusKm  float64              `json:"radius_km" validate:"omitempty,min=0"`
	Name      string               `json:"name,omitempty"`
	Category  string               `json:"category,omitempty"`
	Filter    *SearchFilterRequest `json:"filter,omitempty"`
}

// SearchNearby handles the nearby product search, applying the optional
// secondary filters to the radius-sorted results.
func (h *SearchHandler) SearchNearby(c echo.Context) error {
	var req SearchNearbyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.SearchInput{
		Name:     req.Name,
		Category: req.Category,
		Origin:   geo.Coordinate{Lat: req.Latitude, Lng: req.Longitude},
		MaxKm:    req.RadiusKm,
	}

	results, err := h.nearbyUC.FindNearby(c.Request().Context(), input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	if req.Filter != nil {
		results = h.nearbyUC.FilterResults(results, &usecase.ResultFilter{
			MinPrice:    req.Filter.MinPrice,
			MaxPrice:    req.Filter.MaxPrice,
			MinRating:   req.Filter.MinRating,
			InStockOnly: req.Filter.InStockOnly,
			Mode:        entity.PurchaseMode(req.Filter.Mode),
		})
	}

	return response.Success(c, http.StatusOK, results, "Nearby products retrieved successfully")
}

// GetSeller returns the shop detail behind a search result.
func (h *SearchHandler) GetSeller(c echo.Context) error {
	sellerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid seller ID")
	}

	seller, err := h.nearbyUC.GetSeller(c.Request().Context(), sellerID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, seller, "Seller retrieved successfully")
}

// handleAppError handles application errors
func (h *SearchHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
