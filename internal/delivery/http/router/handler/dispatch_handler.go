// Package handler contains the HTTP handlers for the dispatch API.
package handler

import (
	"log/slog"
	"net/http"

	"dispatch/internal/delivery/http/response"
	"dispatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DispatchHandlerParams holds dependencies for DispatchHandler, injected by Fx.
type DispatchHandlerParams struct {
	fx.In

	DispatchUC usecase.DispatchUsecase
	Logger     *slog.Logger
}

// DispatchHandler holds dependencies for dispatch-related handlers
type DispatchHandler struct {
	dispatchUC usecase.DispatchUsecase
	logger     *slog.Logger
}

// NewDispatchHandler is the constructor for DispatchHandler
func NewDispatchHandler(params DispatchHandlerParams) *DispatchHandler {
	return &DispatchHandler{
		dispatchUC: params.DispatchUC,
		logger:     params.Logger,
	}
}

// BroadcastRequest represents the request body for broadcasting an order
type BroadcastRequest struct {
	StoreID uuid.UUID `json:"store_id" validate:"required"`
}

// BroadcastResponse is the contract of the broadcast endpoint. A broadcast
// that found no eligible drivers still succeeds with zero offers.
type BroadcastResponse struct {
	Success       bool     `json:"success"`
	OffersCreated int      `json:"offersCreated"`
	DriverNames   []string `json:"driverNames"`
}

// Broadcast handles offering an order to every eligible driver of its store
func (h *DispatchHandler) Broadcast(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req BroadcastRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid broadcast input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.dispatchUC.Broadcast(c.Request().Context(), orderID, req.StoreID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	driverNames := result.DriverNames
	if driverNames == nil {
		driverNames = []string{}
	}

	return c.JSON(http.StatusOK, BroadcastResponse{
		Success:       true,
		OffersCreated: result.OffersCreated,
		DriverNames:   driverNames,
	})
}

// ListOffers returns the order's offer history, newest first, so a store
// dashboard can follow the race across supersessions
func (h *DispatchHandler) ListOffers(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	offers, err := h.dispatchUC.OrderOffers(c.Request().Context(), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, offers, "")
}
