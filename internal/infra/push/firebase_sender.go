package push

import (
	"context"

	"dispatch/config"
	"dispatch/internal/domain/entity"
	"dispatch/internal/domain/service"
	"dispatch/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// firebaseSender delivers through Firebase Cloud Messaging. Subscriptions
// registered for this provider store the FCM device token in the endpoint
// column; the Web Push key columns stay empty.
type firebaseSender struct {
	client *messaging.Client
}

// NewFirebaseSender creates an FCM-backed push sender.
func NewFirebaseSender(ctx context.Context, cfg *config.Config) (service.PushSender, error) {
	opt := option.WithCredentialsFile(cfg.Firebase.CredentialsPath)
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, opt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseSender{
		client: client,
	}, nil
}

// Send delivers one payload to one device token and classifies the result.
// Unregistered and malformed tokens are reported as permanently gone so the
// caller prunes the subscription.
func (s *firebaseSender) Send(ctx context.Context, subscription *entity.PushSubscription, payload *service.PushPayload) (service.Outcome, error) {
	data := make(map[string]string, len(payload.Data)+1)
	for key, value := range payload.Data {
		data[key] = value
	}
	if payload.Tag != "" {
		data["tag"] = payload.Tag
	}

	message := &messaging.Message{
		Token: subscription.Endpoint,
		Notification: &messaging.Notification{
			Title: payload.Title,
			Body:  payload.Body,
		},
		Data: data,
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		if messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err) {
			return service.RecipientGone, errors.Wrap(err, "device token no longer valid")
		}

		return service.TransientFailure, errors.Wrap(err, "failed to send FCM message")
	}

	return service.Delivered, nil
}
