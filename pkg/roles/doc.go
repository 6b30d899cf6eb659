// Package roles supplies the canonical role name to role id mapping consumed
// by the rule compiler, plus the user-to-roles lookup used in multi-role
// deployments.
//
// A Source produces the full lowercased name-to-id map and is queried anew on
// every compile cycle, so role changes are picked up whenever the access
// table is rebuilt. Three sources are provided: StaticSource for a literal
// map, FileSource for a YAML table on disk, and SQLSource for a roles
// relation in a database.
package roles
