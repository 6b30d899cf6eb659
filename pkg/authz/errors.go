package authz

import "errors"

// Configuration errors. All of them indicate deployment misconfiguration and
// are surfaced to the caller; an ordinary denial is (false, nil), never an
// error.
var (
	// ErrNoRuleSource is returned when the engine is built without a rule source.
	ErrNoRuleSource = errors.New("authz.missing_rule_source")

	// ErrNoRoleSource is returned when the engine is built without a role source.
	ErrNoRoleSource = errors.New("authz.missing_role_source")

	// ErrNoCacheStore is returned when the engine is built without a cache store.
	ErrNoCacheStore = errors.New("authz.missing_cache_store")

	// ErrNoUserRoleRepo is returned in multi-role mode when no user-role
	// repository was injected.
	ErrNoUserRoleRepo = errors.New("authz.missing_user_role_repository")

	// ErrMissingRole is returned in single-role mode when the session carries
	// no role id under the configured column.
	ErrMissingRole = errors.New("authz.missing_role_in_session")

	// ErrInvalidConfig is returned when environment variables cannot be
	// parsed into the Config struct.
	ErrInvalidConfig = errors.New("authz.invalid_config")
)
