package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// InventoryHandlerParams holds dependencies for InventoryHandler, injected by Fx.
type InventoryHandlerParams struct {
	fx.In

	InventoryUC usecase.InventoryUsecase
	Logger      *slog.Logger
}

// InventoryHandler holds dependencies for stock-management handlers
type InventoryHandler struct {
	inventoryUC usecase.InventoryUsecase
	logger      *slog.Logger
}

// NewInventoryHandler is the constructor for InventoryHandler
func NewInventoryHandler(params InventoryHandlerParams) *InventoryHandler {
	return &InventoryHandler{
		inventoryUC: params.InventoryUC,
		logger:      params.Logger,
	}
}

// CheckAvailabilityRequest represents the request body for an availability check
type CheckAvailabilityRequest struct {
	Quantity int    `json:"quantity" validate:"required,min=1"`
	Mode     string `json:"mode" validate:"required,oneof=delivery pickup in_store"`
}

// DecrementStockRequest represents the request body for a checkout stock decrement
type DecrementStockRequest struct {
	Quantity int    `json:"quantity" validate:"required,min=1"`
	Mode     string `json:"mode" validate:"required,oneof=delivery pickup in_store"`
}

// UpdateInventoryRequest represents the request body for an inventory reset
type UpdateInventoryRequest struct {
	Stock       int `json:"stock" validate:"min=0"`
	OnlineStock int `json:"online_stock" validate:"min=0"`
}

// CheckAvailability reports whether the requested quantity can be obtained
// via the given purchase mode.
func (h *InventoryHandler) CheckAvailability(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var req CheckAvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid availability input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	availability, err := h.inventoryUC.CheckAvailability(c.Request().Context(), productID, req.Quantity, entity.PurchaseMode(req.Mode))
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, availability, "Availability checked successfully")
}

// DecrementStock consumes stock for a checkout. All-or-nothing.
func (h *InventoryHandler) DecrementStock(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var req DecrementStockRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid decrement input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.inventoryUC.DecrementStock(c.Request().Context(), productID, req.Quantity, entity.PurchaseMode(req.Mode)); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Stock decremented successfully"}, "Stock decremented successfully")
}

// UpdateInventory administratively resets both stock pools of a product.
func (h *InventoryHandler) UpdateInventory(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var req UpdateInventoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid inventory input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	product, err := h.inventoryUC.UpdateInventory(c.Request().Context(), productID, req.Stock, req.OnlineStock)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product, "Inventory updated successfully")
}

// handleAppError handles application errors
func (h *InventoryHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
