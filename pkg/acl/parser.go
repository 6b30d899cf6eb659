package acl

import (
	"errors"
	"io"
	"os"

	"gopkg.in/ini.v1"
)

// RawRules is the unvalidated parser output: resource key to raw
// action-list/role-list pairs, exactly as written in the source. Token
// splitting, trimming, and role resolution happen in Compile.
type RawRules map[string]map[string]string

// ParseFile reads and parses a rule file from disk. A missing or unreadable
// file is a configuration error, not a deny.
func ParseFile(path string) (RawRules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrRuleFileNotFound, err)
	}
	return parse(data)
}

// Parse parses rule sections from the given reader.
func Parse(r io.Reader) (RawRules, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Join(ErrInvalidRuleSource, err)
	}
	return parse(data)
}

func parse(data []byte) (RawRules, error) {
	f, err := ini.Load(data)
	if err != nil {
		return nil, errors.Join(ErrInvalidRuleSource, err)
	}

	rules := make(RawRules)
	for _, section := range f.Sections() {
		// Keys outside any section carry no resource key and are ignored.
		if section.Name() == ini.DefaultSection {
			continue
		}
		entries := make(map[string]string, len(section.Keys()))
		for _, key := range section.Keys() {
			entries[key.Name()] = key.Value()
		}
		rules[section.Name()] = entries
	}

	if len(rules) == 0 {
		return nil, ErrNoRules
	}
	return rules, nil
}
