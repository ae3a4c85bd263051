// Package authz provides the authorization capability required by
// administrative operations.
//
// Usecases depend on the Authorizer interface only; the concrete policy
// engine is injected at wiring time so it can be swapped without touching
// business logic.
package authz

import "context"

// Authorizer answers whether a subject may perform an action on an object.
type Authorizer interface {
	// Authorize returns true when subject is allowed to perform act on obj.
	Authorize(ctx context.Context, subject, obj, act string) (bool, error)
}
