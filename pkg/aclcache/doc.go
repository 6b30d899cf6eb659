// Package aclcache persists the compiled access table between authorization
// checks so rule files are not re-parsed on every request.
//
// The Store contract is deliberately small: one whole-table value under one
// configured key, with explicit invalidation. Eviction policy and TTLs belong
// to the backend, not to this layer. MemoryStore serves single-process hosts
// and tests; RedisStore shares the table across processes.
package aclcache
