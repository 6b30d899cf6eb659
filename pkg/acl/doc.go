// Package acl compiles section-based access rule files into a normalized,
// cache-friendly access table.
//
// Rule files map resource keys to comma-separated action and role lists:
//
//	[Blog.admin/Posts]
//	view,index = editor, author
//	* = admin
//
// A section header is a resource key in the form "[plugin.][prefix/]controller".
// The left-hand side of each entry lists actions ("*" means all actions), the
// right-hand side lists role names ("*" means all known roles).
//
// Parse produces the raw, unvalidated sections; Compile resolves role names
// against a name-to-id map, expands wildcard roles, silently drops unknown or
// empty tokens, and returns an AccessTable keyed by encoded resource key. The
// wildcard action "*" stays a literal key in the table and is matched as a
// fallback during lookups.
//
// The compiled table is immutable, JSON-serializable, and safe to share across
// concurrent authorization checks.
package acl
