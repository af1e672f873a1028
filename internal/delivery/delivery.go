// Package delivery defines the transport-facing contracts of the application.
package delivery

import "context"

// Delivery is a serving surface (HTTP today) started by the application entry
// point and stopped through its fx lifecycle hook.
type Delivery interface {
	Serve(ctx context.Context) error
}
