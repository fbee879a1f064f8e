package push

import (
	"context"
	"log/slog"

	"dispatch/config"
	"dispatch/internal/domain/constants"
	"dispatch/internal/domain/entity"
	"dispatch/internal/domain/service"
)

// New selects the configured push provider. An empty or unknown provider
// falls back to a logging no-op so the service can run without push
// credentials in local development.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.PushSender, error) {
	switch cfg.Push.Provider {
	case constants.PushProviderWebPush:
		return NewWebPushSender(cfg)
	case constants.PushProviderFirebase:
		return NewFirebaseSender(ctx, cfg)
	default:
		logger.Warn("push provider not configured, deliveries are dropped",
			slog.String("provider", cfg.Push.Provider))

		return &noopSender{logger: logger}, nil
	}
}

// noopSender reports every attempt as delivered without contacting any push
// service.
type noopSender struct {
	logger *slog.Logger
}

func (s *noopSender) Send(ctx context.Context, subscription *entity.PushSubscription, payload *service.PushPayload) (service.Outcome, error) {
	s.logger.DebugContext(ctx, "noop push delivery",
		slog.String("endpoint", subscription.Endpoint),
		slog.String("title", payload.Title))

	return service.Delivered, nil
}
