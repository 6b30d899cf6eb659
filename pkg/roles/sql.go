package roles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/MarksSoftwareGmbH/cakephp-tinyauth/pkg/acl"
)

// Default relation and column names for SQL-backed role storage.
const (
	DefaultRolesTable     = "roles"
	DefaultUserRolesTable = "roles_users"
	DefaultUserColumn     = "user_id"
	DefaultRoleColumn     = "role_id"
)

// SQLSource resolves roles from a database relation with name and id
// columns. Integer ids scan into their decimal string form.
type SQLSource struct {
	db    *sql.DB
	table string
}

// NewSQLSource creates a source querying the given roles table. An empty
// table name falls back to DefaultRolesTable. The table name comes from
// deployment configuration, never from request input.
func NewSQLSource(db *sql.DB, table string) *SQLSource {
	if table == "" {
		table = DefaultRolesTable
	}
	return &SQLSource{db: db, table: table}
}

// Resolve queries all roles and builds the lowercased name-to-id map. Zero
// rows is a configuration error.
func (s *SQLSource) Resolve(ctx context.Context) (map[string]acl.RoleID, error) {
	query := fmt.Sprintf("SELECT name, id FROM %s", s.table)
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.Join(ErrReadFailed, err)
	}
	defer rows.Close()

	roles := make(map[string]acl.RoleID)
	for rows.Next() {
		var name, id string
		if err := rows.Scan(&name, &id); err != nil {
			return nil, errors.Join(ErrReadFailed, err)
		}
		roles[strings.ToLower(name)] = acl.RoleID(id)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrReadFailed, err)
	}

	if len(roles) == 0 {
		return nil, ErrNoRoles
	}
	return roles, nil
}

// UserRoleRepository fetches all role ids a user holds, the multi-role
// counterpart of the single role id stored in the session.
type UserRoleRepository interface {
	RolesForUser(ctx context.Context, userID string) ([]acl.RoleID, error)
}

// SQLUserRoles reads the user-to-role join relation.
type SQLUserRoles struct {
	db         *sql.DB
	table      string
	userColumn string
	roleColumn string
}

// NewSQLUserRoles creates a repository over the join table. Empty names fall
// back to the conventional defaults.
func NewSQLUserRoles(db *sql.DB, table, userColumn, roleColumn string) *SQLUserRoles {
	if table == "" {
		table = DefaultUserRolesTable
	}
	if userColumn == "" {
		userColumn = DefaultUserColumn
	}
	if roleColumn == "" {
		roleColumn = DefaultRoleColumn
	}
	return &SQLUserRoles{db: db, table: table, userColumn: userColumn, roleColumn: roleColumn}
}

// RolesForUser returns every role id associated with the user. No rows means
// no roles; that is an empty result, not an error.
func (r *SQLUserRoles) RolesForUser(ctx context.Context, userID string) ([]acl.RoleID, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", r.roleColumn, r.table, r.userColumn)
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, errors.Join(ErrReadFailed, err)
	}
	defer rows.Close()

	var ids []acl.RoleID
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, errors.Join(ErrReadFailed, err)
		}
		ids = append(ids, acl.RoleID(id))
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrReadFailed, err)
	}
	return ids, nil
}
