// Package delivery defines the contract implemented by every transport server
// of the application (HTTP API, Pub/Sub worker).
package delivery

import "context"

// Delivery is a long-running transport server started by the application entrypoint.
type Delivery interface {
	// Serve blocks, serving requests until the server is shut down.
	Serve(ctx context.Context) error
}
