package service

import (
	"context"

	"dispatch/internal/domain/entity"
)

// Outcome classifies a single push delivery attempt.
type Outcome int

const (
	// Delivered means the push service accepted the message.
	Delivered Outcome = iota
	// RecipientGone means the endpoint will never accept deliveries again;
	// the subscription must be pruned.
	RecipientGone
	// TransientFailure means the attempt failed but the subscription stays
	// registered for a future attempt.
	TransientFailure
)

// String returns the string representation of the Outcome.
func (o Outcome) String() string {
	switch o {
	case Delivered:
		return "delivered"
	case RecipientGone:
		return "recipient_gone"
	default:
		return "transient_failure"
	}
}

// PushPayload is the message delivered to a push subscription. Tag carries a
// stable idempotency key (the order ID) so receiving clients can de-duplicate;
// the engine itself performs no deduplication.
type PushPayload struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Tag   string            `json:"tag,omitempty"`
	Data  map[string]string `json:"data,omitempty"`
}

// PushSender performs one authenticated push delivery attempt and classifies
// the result. The error return carries diagnostic detail for non-Delivered
// outcomes; callers branch on the Outcome, not the error.
type PushSender interface {
	Send(ctx context.Context, subscription *entity.PushSubscription, payload *PushPayload) (Outcome, error)
}
