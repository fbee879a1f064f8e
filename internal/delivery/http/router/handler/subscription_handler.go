package handler

import (
	"log/slog"
	"net/http"

	"dispatch/internal/delivery/http/response"
	"dispatch/internal/domain/entity"
	"dispatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SubscriptionHandlerParams holds dependencies for SubscriptionHandler, injected by Fx.
type SubscriptionHandlerParams struct {
	fx.In

	SubscriptionUC usecase.SubscriptionUsecase
	Logger         *slog.Logger
}

// SubscriptionHandler holds dependencies for subscription-related handlers
type SubscriptionHandler struct {
	subscriptionUC usecase.SubscriptionUsecase
	logger         *slog.Logger
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler
func NewSubscriptionHandler(params SubscriptionHandlerParams) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUC: params.SubscriptionUC,
		logger:         params.Logger,
	}
}

// SubscribeRequest represents the request body for registering a push subscription
type SubscribeRequest struct {
	UserID    uuid.UUID  `json:"user_id" validate:"required"`
	UserType  string     `json:"user_type" validate:"required"`
	StoreID   *uuid.UUID `json:"store_id,omitempty"`
	OrderID   *uuid.UUID `json:"order_id,omitempty"`
	Endpoint  string     `json:"endpoint" validate:"required"`
	P256dhKey string     `json:"p256dh_key,omitempty"`
	AuthKey   string     `json:"auth_key,omitempty"`
}

// UnsubscribeRequest represents the request body for removing a push subscription
type UnsubscribeRequest struct {
	Endpoint string `json:"endpoint" validate:"required"`
}

// Subscribe handles registering a push subscription, replacing any prior
// record with the same endpoint
func (h *SubscriptionHandler) Subscribe(c echo.Context) error {
	var req SubscribeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subscription input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	subscription, err := h.subscriptionUC.RegisterSubscription(c.Request().Context(), &usecase.SubscriptionInput{
		UserID:    req.UserID,
		Role:      entity.Role(req.UserType),
		StoreID:   req.StoreID,
		OrderID:   req.OrderID,
		Endpoint:  req.Endpoint,
		P256dhKey: req.P256dhKey,
		AuthKey:   req.AuthKey,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, subscription, "Subscription registered successfully")
}

// Unsubscribe handles removing a push subscription by endpoint
func (h *SubscriptionHandler) Unsubscribe(c echo.Context) error {
	var req UnsubscribeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid unsubscribe input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.subscriptionUC.RemoveSubscription(c.Request().Context(), req.Endpoint); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Unsubscribed"}, "Subscription removed successfully")
}
