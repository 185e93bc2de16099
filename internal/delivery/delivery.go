// Package delivery defines the contract every transport surface implements.
package delivery

import "context"

// Delivery is a long-running transport surface (HTTP API, worker endpoint).
// Implementations are collected in the fx "deliveries" group and started
// together by the entrypoint.
type Delivery interface {
	// Serve blocks until the surface stops or fails.
	Serve(ctx context.Context) error
}
