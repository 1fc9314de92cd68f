package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/geo"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// RouteHandlerParams holds dependencies for RouteHandler, injected by Fx.
type RouteHandlerParams struct {
	fx.In

	RouteUC   usecase.RoutePlanUsecase
	QRCodeSvc service.QRCodeService
	Logger    *slog.Logger
}

// RouteHandler holds dependencies for route-planning handlers
type RouteHandler struct {
	routeUC   usecase.RoutePlanUsecase
	qrCodeSvc service.QRCodeService
	logger    *slog.Logger
}

// NewRouteHandler is the constructor for RouteHandler
func NewRouteHandler(params RouteHandlerParams) *RouteHandler {
	return &RouteHandler{
		routeUC:   params.RouteUC,
		qrCodeSvc: params.QRCodeSvc,
		logger:    params.Logger,
	}
}

// CoordinateRequest represents a latitude/longitude pair in a request body
type CoordinateRequest struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// RouteItemRequest represents one shopping-list entry to be sequenced.
// It carries the seller and product snapshot produced by a nearby search.
type RouteItemRequest struct {
	SellerID    uuid.UUID `json:"seller_id" validate:"required"`
	ShopName    string    `json:"shop_name"`
	Latitude    float64   `json:"latitude" validate:"min=-90,max=90"`
	Longitude   float64   `json:"longitude" validate:"min=-180,max=180"`
	ProductID   uuid.UUID `json:"product_id" validate:"required"`
	ProductName string    `json:"product_name"`
	DistanceKm  float64   `json:"distance_km" validate:"min=0"`
}

// OptimizeRouteRequest represents the request body for creating a route plan.
// An empty item list is a no-op, not an error.
type OptimizeRouteRequest struct {
	Origin      CoordinateRequest  `json:"origin" validate:"required"`
	Destination *CoordinateRequest `json:"destination,omitempty"`
	Items       []RouteItemRequest `json:"items" validate:"dive"`
}

// ResolveQRRequest represents the request body for opening a shared plan
type ResolveQRRequest struct {
	QRData string `json:"qr_data" validate:"required"`
}

// OptimizeRoute sequences a shopping list into a visiting order and, when
// the external optimizer succeeded, persists the resulting plan.
func (h *RouteHandler) OptimizeRoute(c echo.Context) error {
	buyerID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	var req OptimizeRouteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid route input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	origin := geo.Coordinate{Lat: req.Origin.Latitude, Lng: req.Origin.Longitude}

	var destination *geo.Coordinate
	if req.Destination != nil {
		destination = &geo.Coordinate{Lat: req.Destination.Latitude, Lng: req.Destination.Longitude}
	}

	items := make([]entity.ShoppingItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, entity.ShoppingItem{
			Seller: entity.Seller{
				ID:       item.SellerID,
				ShopName: item.ShopName,
				Location: &geo.Coordinate{Lat: item.Latitude, Lng: item.Longitude},
			},
			Product: entity.Product{
				ID:       item.ProductID,
				SellerID: item.SellerID,
				Name:     item.ProductName,
			},
			DistanceKm: item.DistanceKm,
		})
	}

	result, err := h.routeUC.OptimizeRoute(c.Request().Context(), buyerID, origin, items, destination)
	if err != nil {
		return h.handleAppError(c, err)
	}

	statusCode := http.StatusOK
	if result.Outcome == usecase.PlanOutcomeOptimized {
		statusCode = http.StatusCreated
	}

	return response.Success(c, statusCode, result, "Route plan created successfully")
}

// GetRoutePlan returns a plan and its ordered stops.
func (h *RouteHandler) GetRoutePlan(c echo.Context) error {
	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid plan ID")
	}

	plan, stops, err := h.routeUC.GetRoutePlan(c.Request().Context(), planID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"plan":  plan,
		"stops": stops,
	}, "Route plan retrieved successfully")
}

// CancelRoutePlan transitions the caller's plan from active to cancelled.
func (h *RouteHandler) CancelRoutePlan(c echo.Context) error {
	buyerID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid plan ID")
	}

	if err := h.routeUC.CancelRoutePlan(c.Request().Context(), buyerID, planID); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Route plan cancelled successfully"}, "Route plan cancelled successfully")
}

// ShareRoutePlanQR renders a PNG QR code that opens the plan on another device.
func (h *RouteHandler) ShareRoutePlanQR(c echo.Context) error {
	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid plan ID")
	}

	// Confirm the plan exists before handing out a code for it.
	if _, _, err := h.routeUC.GetRoutePlan(c.Request().Context(), planID); err != nil {
		return h.handleAppError(c, err)
	}

	png, err := h.qrCodeSvc.GenerateRoutePlanQR(planID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ResolveRoutePlanQR opens a plan from scanned QR payload data.
func (h *RouteHandler) ResolveRoutePlanQR(c echo.Context) error {
	var req ResolveQRRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid QR input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	planID, err := h.qrCodeSvc.ParseRoutePlanQR(req.QRData)
	if err != nil {
		return response.BadRequest(c, "INVALID_QR_CODE", "Invalid route plan QR code")
	}

	plan, stops, err := h.routeUC.GetRoutePlan(c.Request().Context(), planID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"plan":  plan,
		"stops": stops,
	}, "Route plan resolved successfully")
}

// getUserID extracts the user ID from the context
func (h *RouteHandler) getUserID(c echo.Context) (uuid.UUID, error) {
	userIDVal := c.Get("userID")
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return userID, nil
}

// handleAppError handles application errors
func (h *RouteHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
