package acl

import "strings"

// Compile normalizes parsed rule sections into an AccessTable using the
// resolved role map. Role map keys must be lowercased role names; lookups are
// case-insensitive. The wildcard role expands to every id in roleMap,
// independent of where it appears in the list. Unknown role names and empty
// tokens are silently dropped so that a rule-file typo reduces effective
// access instead of failing the whole table.
func Compile(raw RawRules, roleMap map[string]RoleID) (AccessTable, error) {
	if len(raw) == 0 {
		return nil, ErrNoRules
	}

	table := make(AccessTable, len(raw))
	for key, entries := range raw {
		entry := Entry{
			Descriptor: DecodeResource(key),
			Actions:    make(ActionRules, len(entries)),
		}
		for actionList, roleList := range entries {
			granted := resolveRoleList(roleList, roleMap)
			for _, action := range splitList(actionList) {
				set, ok := entry.Actions[action]
				if !ok {
					set = make(RoleSet, len(granted))
					entry.Actions[action] = set
				}
				for id := range granted {
					set.Add(id)
				}
			}
		}
		table[key] = entry
	}
	return table, nil
}

func resolveRoleList(list string, roleMap map[string]RoleID) RoleSet {
	set := make(RoleSet)
	for _, name := range splitList(list) {
		if name == WildcardRole {
			for _, id := range roleMap {
				set.Add(id)
			}
			continue
		}
		if id, ok := roleMap[strings.ToLower(name)]; ok {
			set.Add(id)
		}
	}
	return set
}

// splitList splits a comma-separated token list, trimming whitespace and
// dropping empty tokens.
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
