// Package delivery declares the long-running entry points started by cmd.
package delivery

import "context"

// Delivery is a blocking entry point. Serve returns when the delivery stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
