package aclcache

import (
	"context"

	"github.com/MarksSoftwareGmbH/cakephp-tinyauth/pkg/acl"
)

// Store persists a single compiled access table. Backends must make Get, Set
// and Clear individually atomic; callers tolerate lost races between them
// because recompilation is deterministic and idempotent.
type Store interface {
	// Get returns the cached table, or found=false on a miss.
	Get(ctx context.Context) (table acl.AccessTable, found bool, err error)

	// Set stores the table, replacing any previous value.
	Set(ctx context.Context, table acl.AccessTable) error

	// Clear removes the stored table.
	Clear(ctx context.Context) error
}
