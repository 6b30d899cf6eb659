package acl

// Wildcard tokens recognized in rule files. The role wildcard is expanded to
// all known roles at compile time; the action wildcard is preserved as a
// literal table key and matched as a fallback during lookups.
const (
	WildcardAction = "*"
	WildcardRole   = "*"
)

// RoleID is an opaque role identifier. Deployments using integer role ids
// carry them in decimal string form; a single deployment never mixes both.
type RoleID string

// RoleSet holds the role ids granted by a compiled rule entry.
type RoleSet map[RoleID]struct{}

// NewRoleSet builds a set from the given ids.
func NewRoleSet(ids ...RoleID) RoleSet {
	s := make(RoleSet, len(ids))
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add inserts an id into the set.
func (s RoleSet) Add(id RoleID) {
	s[id] = struct{}{}
}

// Contains reports whether the set holds the given id.
func (s RoleSet) Contains(id RoleID) bool {
	_, ok := s[id]
	return ok
}

// ContainsAny reports whether the set intersects the given role ids.
func (s RoleSet) ContainsAny(ids []RoleID) bool {
	for _, id := range ids {
		if s.Contains(id) {
			return true
		}
	}
	return false
}

// ActionRules maps an action name to the roles allowed to perform it. The
// wildcard action is stored under its literal "*" key.
type ActionRules map[string]RoleSet

// Entry is a single compiled resource: its decoded descriptor plus the action
// rules declared for it.
type Entry struct {
	Descriptor ResourceDescriptor `json:"descriptor"`
	Actions    ActionRules        `json:"actions"`
}

// AccessTable is the compiled rule artifact, keyed by encoded resource key.
// It is immutable once built and safe to share across concurrent checks.
type AccessTable map[string]Entry

// Allowed reports whether any of the given roles may perform the action on
// the resource identified by key. The wildcard-action entry is consulted
// first, then the exact action name. Unknown keys and actions deny.
func (t AccessTable) Allowed(key, action string, roles []RoleID) bool {
	entry, ok := t[key]
	if !ok {
		return false
	}
	if set, ok := entry.Actions[WildcardAction]; ok && set.ContainsAny(roles) {
		return true
	}
	if set, ok := entry.Actions[action]; ok && set.ContainsAny(roles) {
		return true
	}
	return false
}
