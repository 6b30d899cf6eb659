package roles

import "errors"

// Domain errors for role resolution.
var (
	// ErrNoRoles is returned when the configured source yields no roles.
	ErrNoRoles = errors.New("roles.no_roles_found")

	// ErrReadFailed is returned when the role source cannot be read.
	ErrReadFailed = errors.New("roles.read_failed")
)
