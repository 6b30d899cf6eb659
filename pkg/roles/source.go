package roles

import (
	"context"
	"strings"

	"github.com/MarksSoftwareGmbH/cakephp-tinyauth/pkg/acl"
)

// Source provides the full role name to role id mapping. Resolve is called
// on every access-table compile cycle; implementations should not cache
// independently.
type Source interface {
	// Resolve returns the mapping with lowercased role names as keys.
	Resolve(ctx context.Context) (map[string]acl.RoleID, error)
}

// StaticSource serves a fixed name-to-id table, the configuration-backed
// mode for deployments without a role store.
type StaticSource struct {
	roles map[string]acl.RoleID
}

// NewStaticSource copies the given table, lowercasing names for
// case-insensitive matching.
func NewStaticSource(roles map[string]acl.RoleID) *StaticSource {
	copied := make(map[string]acl.RoleID, len(roles))
	for name, id := range roles {
		copied[strings.ToLower(name)] = id
	}
	return &StaticSource{roles: copied}
}

// Resolve returns the table. An empty table is a configuration error.
func (s *StaticSource) Resolve(ctx context.Context) (map[string]acl.RoleID, error) {
	if len(s.roles) == 0 {
		return nil, ErrNoRoles
	}
	return s.roles, nil
}
