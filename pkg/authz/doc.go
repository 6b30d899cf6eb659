// Package authz is the authorization decision engine: given a user's role
// set and a requested resource, it decides whether access is permitted.
//
// Rules come from a section-based rule file compiled into an access table
// (see pkg/acl), role names are resolved through a roles.Source, and the
// compiled table is kept in an aclcache.Store between requests. The engine
// applies precedence rules before consulting the table: a blanket allow for
// logged-in users outside the admin prefix, an admin-role shortcut for the
// admin prefix, and a super-admin override.
//
// Basic usage:
//
//	cfg := authz.DefaultConfig()
//	cfg.SuperAdminRole = "1"
//
//	engine, err := authz.New(cfg,
//		authz.WithRuleSource(authz.RuleFile("config/acl.ini")),
//		authz.WithRoleSource(roles.NewStaticSource(map[string]acl.RoleID{
//			"admin":  "1",
//			"editor": "2",
//		})),
//		authz.WithCacheStore(aclcache.NewMemoryStore()),
//	)
//	if err != nil {
//		// Handle misconfiguration
//	}
//
//	ok, err := engine.Authorize(ctx, authz.Request{
//		Roles:      []acl.RoleID{"2"},
//		Controller: "Posts",
//		Action:     "view",
//	})
//
// A denied request is the ordinary (false, nil) result; errors are reserved
// for deployment misconfiguration such as a missing rule file or an empty
// role source.
package authz
