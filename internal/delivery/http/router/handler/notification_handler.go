package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"dispatch/internal/delivery/http/response"
	"dispatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler holds dependencies for in-app notification handlers
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// ListByDriver returns a driver's in-app notification feed, newest first.
// Pagination via limit/offset query parameters; out-of-range values are
// clamped by the use case.
func (h *NotificationHandler) ListByDriver(c echo.Context) error {
	driverID, err := uuid.Parse(c.Param("driverId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid driver ID")
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	notifications, err := h.notificationUC.DriverNotifications(c.Request().Context(), driverID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notifications, "")
}
