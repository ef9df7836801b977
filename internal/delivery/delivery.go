// Package delivery defines the inbound transport abstraction.
package delivery

import "context"

// Delivery is a long-running inbound server started at application boot.
type Delivery interface {
	Serve(ctx context.Context) error
}
