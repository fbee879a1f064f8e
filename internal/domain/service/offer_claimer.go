package service

import (
	"context"

	"dispatch/internal/errors"

	"github.com/google/uuid"
)

// ErrOfferAlreadyClaimed is reported when another driver's claim already won.
var ErrOfferAlreadyClaimed = errors.New("offer already claimed")

// ClaimResult describes the outcome of a claim attempt.
type ClaimResult struct {
	OfferID  uuid.UUID
	OrderID  uuid.UUID
	DriverID uuid.UUID
}

// OfferClaimer is the acceptance-resolver boundary. The dispatch core creates
// the race between drivers; the claimer decides the winner. Implementations
// must transition exactly one pending offer per order to accepted via an
// atomic conditional update (set status = accepted where status = pending),
// cancel the sibling offers in the same step, and return
// ErrOfferAlreadyClaimed when a concurrent claim already succeeded. The core
// consumes this contract; it does not implement it.
type OfferClaimer interface {
	ClaimOffer(ctx context.Context, offerID, driverID uuid.UUID) (*ClaimResult, error)
}
