// Package handler contains the Pub/Sub push consumers of the worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"dispatch/config"
	deliverycontext "dispatch/internal/delivery/context"
	"dispatch/internal/domain/constants"
	"dispatch/internal/domain/entity"
	"dispatch/internal/domain/service"
	"dispatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler consumes dispatch events pushed by Pub/Sub and relays them to
// the interested push subscribers.
type PushHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	notificationUC usecase.NotificationUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config         *config.Config
	Logger         *slog.Logger
	NotificationUC usecase.NotificationUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Determine if we need to verify push auth based on config
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		notificationUC: params.NotificationUC,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Parse dispatch event
	var event service.DispatchEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse dispatch event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &event)

	// Create request-scoped logger with request_id
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	// Update context with request_id and logger
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing dispatch event",
		slog.String("event_type", event.Type),
		slog.String("order_id", event.OrderID),
		slog.String("store_id", event.StoreID),
	)

	// Relay the event to push subscribers
	if err := h.processEvent(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process dispatch event",
			slog.String("event_type", event.Type),
			slog.String("order_id", event.OrderID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Dispatch event processed successfully",
		slog.String("event_type", event.Type),
		slog.String("order_id", event.OrderID),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.DispatchEvent) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	// 2. Try event field (from JSON payload)
	if event.RequestID != "" {
		return event.RequestID
	}

	// 3. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	// 4. Generate new UUID as fallback
	return uuid.New().String()
}

// processEvent relays one dispatch event to its interested audiences: the
// order's own subscribers (the customer watching the order) and the store's
// owner dashboard.
func (h *PushHandler) processEvent(ctx context.Context, event *service.DispatchEvent) error {
	orderID, err := uuid.Parse(event.OrderID)
	if err != nil {
		return errors.Wrap(err, "invalid order ID in event")
	}

	storeID, err := uuid.Parse(event.StoreID)
	if err != nil {
		return errors.Wrap(err, "invalid store ID in event")
	}

	payload := h.buildPayload(event)

	// Order-scoped subscriptions first
	orderResult, err := h.notificationUC.SendPush(ctx, usecase.PushTarget{OrderID: &orderID}, payload)
	if err != nil {
		return newRetryableError(errors.Wrap(err, "failed to push to order subscribers"))
	}

	// Then the store owner's dashboard
	ownerRole := entity.RoleStoreOwner
	storeResult, err := h.notificationUC.SendPush(ctx, usecase.PushTarget{StoreID: &storeID, Role: &ownerRole}, payload)
	if err != nil {
		return newRetryableError(errors.Wrap(err, "failed to push to store owner"))
	}

	h.logger.Info("[Worker] Event relay completed",
		slog.String("order_id", event.OrderID),
		slog.Int("order_scope_sent", orderResult.Sent),
		slog.Int("order_scope_total", orderResult.Total),
		slog.Int("store_scope_sent", storeResult.Sent),
		slog.Int("store_scope_total", storeResult.Total),
	)

	return nil
}

// buildPayload renders a human-readable push payload for a dispatch event.
func (h *PushHandler) buildPayload(event *service.DispatchEvent) *service.PushPayload {
	title := "Order update"
	body := fmt.Sprintf("Order %s changed", event.OrderID)

	switch event.Type {
	case service.EventOffersCreated:
		title = "Looking for a driver"
		body = fmt.Sprintf("Your order is being offered to %d drivers", len(event.DriverIDs))
	case service.EventOrderStatusChanged:
		title = "Order status changed"
		if event.OrderStatus != "" {
			body = fmt.Sprintf("Your order is now %s", event.OrderStatus)
		}
	}

	data := map[string]string{
		"event_type": event.Type,
		"order_id":   event.OrderID,
		"store_id":   event.StoreID,
	}
	if event.OrderStatus != "" {
		data["order_status"] = event.OrderStatus
	}

	return &service.PushPayload{
		Title: title,
		Body:  body,
		Tag:   event.OrderID,
		Data:  data,
	}
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	// Get the Authorization header
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	// Extract Bearer token
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Construct the expected audience (the push endpoint URL)
	// The audience should be the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	// Validate the token using Google's ID token validator
	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// Verify the token is from Google Pub/Sub
	// The issuer should be accounts.google.com
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	// Verify email is verified (if email claim exists)
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
