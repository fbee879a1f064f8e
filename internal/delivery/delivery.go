// Package delivery defines the entry points that expose the application to
// the outside world.
package delivery

import "context"

// Delivery is a long-running server. Serve blocks until the server stops or
// the context is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}
