package handler

import (
	"log/slog"
	"net/http"

	"dispatch/internal/delivery/http/response"
	"dispatch/internal/domain/entity"
	"dispatch/internal/domain/service"
	"dispatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PushHandlerParams holds dependencies for PushHandler, injected by Fx.
type PushHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// PushHandler holds dependencies for push-related handlers
type PushHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewPushHandler is the constructor for PushHandler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	return &PushHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// PushPayloadRequest mirrors the push payload carried in send requests
type PushPayloadRequest struct {
	Title string            `json:"title" validate:"required"`
	Body  string            `json:"body" validate:"required"`
	Tag   string            `json:"tag,omitempty"`
	Data  map[string]string `json:"data,omitempty"`
}

// SendPushRequest selects a target scope and the payload to deliver. Exactly
// one scope is honored: order, then user, then store(+user_type).
type SendPushRequest struct {
	OrderID  *uuid.UUID         `json:"order_id,omitempty"`
	UserID   *uuid.UUID         `json:"user_id,omitempty"`
	StoreID  *uuid.UUID         `json:"store_id,omitempty"`
	UserType string             `json:"user_type,omitempty"`
	Payload  PushPayloadRequest `json:"payload" validate:"required"`
}

// SendPushResponse reports the aggregate outcome of one send
type SendPushResponse struct {
	Success bool `json:"success"`
	Sent    int  `json:"sent"`
	Total   int  `json:"total"`
}

// Send resolves the target scope and attempts one delivery per subscription
func (h *PushHandler) Send(c echo.Context) error {
	var req SendPushRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid push input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if req.OrderID == nil && req.UserID == nil && req.StoreID == nil {
		return response.BadRequest(c, "INVALID_INPUT", "A target scope is required")
	}

	target := usecase.PushTarget{
		OrderID: req.OrderID,
		UserID:  req.UserID,
		StoreID: req.StoreID,
	}
	if req.UserType != "" {
		role := entity.Role(req.UserType)
		if !role.IsValid() {
			return response.BadRequest(c, "INVALID_INPUT", "Unknown user type")
		}
		target.Role = &role
	}

	result, err := h.notificationUC.SendPush(c.Request().Context(), target, &service.PushPayload{
		Title: req.Payload.Title,
		Body:  req.Payload.Body,
		Tag:   req.Payload.Tag,
		Data:  req.Payload.Data,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusOK, SendPushResponse{
		Success: true,
		Sent:    result.Sent,
		Total:   result.Total,
	})
}
