// Package push contains the concrete push delivery implementations behind the
// domain's PushSender interface.
package push

import (
	"context"
	"encoding/json"
	"net/http"

	"dispatch/config"
	"dispatch/internal/domain/entity"
	"dispatch/internal/domain/service"
	"dispatch/internal/errors"

	webpush "github.com/SherClockHolmes/webpush-go"
)

type webPushSender struct {
	subscriber      string
	vapidPublicKey  string
	vapidPrivateKey string
	ttl             int
}

// NewWebPushSender creates a VAPID-authenticated Web Push sender.
func NewWebPushSender(cfg *config.Config) (service.PushSender, error) {
	if cfg.WebPush.VAPIDPublicKey == "" || cfg.WebPush.VAPIDPrivateKey == "" {
		return nil, errors.New("web push requires a VAPID key pair")
	}

	return &webPushSender{
		subscriber:      cfg.WebPush.Subscriber,
		vapidPublicKey:  cfg.WebPush.VAPIDPublicKey,
		vapidPrivateKey: cfg.WebPush.VAPIDPrivateKey,
		ttl:             cfg.WebPush.TTL,
	}, nil
}

// Send delivers one payload to one subscription endpoint and classifies the
// result. 404 and 410 mean the endpoint is permanently gone.
func (s *webPushSender) Send(ctx context.Context, subscription *entity.PushSubscription, payload *service.PushPayload) (service.Outcome, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return service.TransientFailure, errors.Wrap(err, "failed to encode push payload")
	}

	target := &webpush.Subscription{
		Endpoint: subscription.Endpoint,
		Keys: webpush.Keys{
			P256dh: subscription.P256dhKey,
			Auth:   subscription.AuthKey,
		},
	}

	resp, err := webpush.SendNotificationWithContext(ctx, body, target, &webpush.Options{
		Subscriber:      s.subscriber,
		VAPIDPublicKey:  s.vapidPublicKey,
		VAPIDPrivateKey: s.vapidPrivateKey,
		TTL:             s.ttl,
		Urgency:         webpush.UrgencyHigh,
	})
	if err != nil {
		return service.TransientFailure, errors.Wrap(err, "failed to send web push")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return service.RecipientGone, errors.Errorf("push endpoint gone: status %d", resp.StatusCode)
	case resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices:
		return service.Delivered, nil
	default:
		return service.TransientFailure, errors.Errorf("push service rejected delivery: status %d", resp.StatusCode)
	}
}
