// Package delivery holds the transports that expose the service.
package delivery

import "context"

// Delivery is a long-running entrypoint started by the binaries.
type Delivery interface {
	Serve(ctx context.Context) error
}
