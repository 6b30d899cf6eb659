package authz

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/MarksSoftwareGmbH/cakephp-tinyauth/pkg/acl"
	"github.com/MarksSoftwareGmbH/cakephp-tinyauth/pkg/aclcache"
	"github.com/MarksSoftwareGmbH/cakephp-tinyauth/pkg/roles"
)

// Request describes a single authorization check: the requesting user's role
// set plus the resource descriptor and action being accessed. Duplicate role
// ids are tolerated; an empty role set denies everything except bypasses
// that do not depend on role membership.
type Request struct {
	Roles      []acl.RoleID
	Plugin     string
	Prefix     string
	Controller string
	Action     string
}

// Authorizer is the narrow contract request-handling layers depend on.
type Authorizer interface {
	Authorize(ctx context.Context, req Request) (bool, error)
}

// Engine implements Authorizer over a rule source, a role source and a cache
// store. It memoizes the compiled table for its own lifetime; construct a
// new engine to observe external cache invalidations.
type Engine struct {
	cfg       Config
	rules     RuleSource
	roleSrc   roles.Source
	cache     aclcache.Store
	userRoles roles.UserRoleRepository
	log       *slog.Logger

	mu    sync.Mutex
	table acl.AccessTable
}

// Option configures engine construction.
type Option func(*Engine)

// WithRuleSource sets the rule source. Required.
func WithRuleSource(s RuleSource) Option {
	return func(e *Engine) { e.rules = s }
}

// WithRoleSource sets the role name to id source. Required.
func WithRoleSource(s roles.Source) Option {
	return func(e *Engine) { e.roleSrc = s }
}

// WithCacheStore sets the compiled-table cache. Required.
func WithCacheStore(s aclcache.Store) Option {
	return func(e *Engine) { e.cache = s }
}

// WithUserRoles sets the repository consulted in multi-role mode.
func WithUserRoles(r roles.UserRoleRepository) Option {
	return func(e *Engine) { e.userRoles = r }
}

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// New creates an engine. Construction fails fast when a required
// collaborator is missing, matching the fail-on-misconfiguration semantics
// of the rule pipeline itself.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if cfg.AdminPrefix == "" {
		cfg.AdminPrefix = "admin"
	}

	e := &Engine{cfg: cfg, log: slog.Default()}
	for _, opt := range opts {
		opt(e)
	}

	switch {
	case e.rules == nil:
		return nil, ErrNoRuleSource
	case e.roleSrc == nil:
		return nil, ErrNoRoleSource
	case e.cache == nil:
		return nil, ErrNoCacheStore
	}
	return e, nil
}

// Authorize decides the request. The precedence steps short-circuit in
// order: logged-in-user bypass outside the admin prefix, admin-role shortcut
// on the admin prefix, super-admin override, then the compiled table with
// its wildcard-action fallback. A plain deny is (false, nil).
func (e *Engine) Authorize(ctx context.Context, req Request) (bool, error) {
	if e.cfg.AllowUser {
		if req.Prefix == "" || req.Prefix != e.cfg.AdminPrefix {
			return true, nil
		}
	}

	if e.cfg.AllowAdmin && e.cfg.AdminRole != "" {
		if req.Prefix == e.cfg.AdminPrefix && slices.Contains(req.Roles, e.cfg.AdminRole) {
			return true, nil
		}
	}

	if e.cfg.SuperAdminRole != "" && slices.Contains(req.Roles, e.cfg.SuperAdminRole) {
		return true, nil
	}

	table, err := e.accessTable(ctx)
	if err != nil {
		return false, err
	}

	key := acl.EncodeResource(acl.ResourceDescriptor{
		Plugin:     req.Plugin,
		Prefix:     req.Prefix,
		Controller: req.Controller,
	})
	return table.Allowed(key, req.Action, req.Roles), nil
}

// accessTable returns the compiled table, building it at most once per
// engine lifetime outside of debug auto-clear. In debug auto-clear mode the
// cache is dropped and the table rebuilt on every call.
func (e *Engine) accessTable(ctx context.Context) (acl.AccessTable, error) {
	if e.cfg.AutoClearCache && e.cfg.Debug {
		if err := e.cache.Clear(ctx); err != nil {
			e.log.WarnContext(ctx, "acl cache clear failed", "error", err)
		}
		return e.rebuild(ctx)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.table != nil {
		return e.table, nil
	}

	table, found, err := e.cache.Get(ctx)
	if err != nil {
		e.log.WarnContext(ctx, "acl cache read failed", "error", err)
	} else if found {
		e.table = table
		return table, nil
	}

	table, err = e.rebuild(ctx)
	if err != nil {
		return nil, err
	}
	e.table = table
	return table, nil
}

// rebuild compiles the table from the rule and role sources and writes it
// through to the cache. A cache write failure is logged, not fatal; the
// fresh table is still valid for this check.
func (e *Engine) rebuild(ctx context.Context) (acl.AccessTable, error) {
	raw, err := e.rules.Load(ctx)
	if err != nil {
		return nil, err
	}

	roleMap, err := e.roleSrc.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	table, err := acl.Compile(raw, roleMap)
	if err != nil {
		return nil, err
	}

	if err := e.cache.Set(ctx, table); err != nil {
		e.log.WarnContext(ctx, "acl cache write failed", "error", err)
	}

	e.log.DebugContext(ctx, "compiled access table",
		"resources", len(table), "roles", len(roleMap))
	return table, nil
}

// SessionRoles extracts the requesting user's role set. In single-role mode
// the configured session column must hold the role id; its absence is a
// caller misconfiguration, not a deny. In multi-role mode the injected
// repository is queried with the user key.
func (e *Engine) SessionRoles(ctx context.Context, session map[string]any, userID string) ([]acl.RoleID, error) {
	if e.cfg.MultiRole {
		if e.userRoles == nil {
			return nil, ErrNoUserRoleRepo
		}
		return e.userRoles.RolesForUser(ctx, userID)
	}

	id := sessionRoleID(session[e.cfg.RoleColumn])
	if id == "" {
		return nil, ErrMissingRole
	}
	return []acl.RoleID{id}, nil
}

func sessionRoleID(v any) acl.RoleID {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		return acl.RoleID(id)
	case acl.RoleID:
		return id
	default:
		return acl.RoleID(fmt.Sprint(id))
	}
}
