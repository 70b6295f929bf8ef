// Package delivery defines the contract every transport entry point
// implements so main can start them uniformly.
package delivery

import "context"

// Delivery is a serving transport, e.g. the local HTTP API.
type Delivery interface {
	Serve(ctx context.Context) error
}
