package authz

import (
	"context"

	"github.com/MarksSoftwareGmbH/cakephp-tinyauth/pkg/acl"
)

// rolesCtxKey is the context key for storing the user's role set.
type rolesCtxKey struct{}

// WithRoles stores the user's role set in the context.
func WithRoles(ctx context.Context, ids []acl.RoleID) context.Context {
	return context.WithValue(ctx, rolesCtxKey{}, ids)
}

// RolesFromContext retrieves the user's role set from the context.
func RolesFromContext(ctx context.Context) ([]acl.RoleID, bool) {
	ids, ok := ctx.Value(rolesCtxKey{}).([]acl.RoleID)
	return ids, ok
}

// AuthorizeFromContext runs Authorize with the role set carried in the
// context, falling back to the roles already on the request when the context
// carries none.
func (e *Engine) AuthorizeFromContext(ctx context.Context, req Request) (bool, error) {
	if ids, ok := RolesFromContext(ctx); ok {
		req.Roles = ids
	}
	return e.Authorize(ctx, req)
}
