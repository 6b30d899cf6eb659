package authz

import (
	"context"

	"github.com/MarksSoftwareGmbH/cakephp-tinyauth/pkg/acl"
)

// RuleSource provides the raw rule sections for compilation. Load is called
// on every rebuild, so file-backed sources pick up edits whenever the cache
// is invalidated.
type RuleSource interface {
	Load(ctx context.Context) (acl.RawRules, error)
}

type fileRuleSource struct {
	path string
}

// RuleFile returns a RuleSource that parses the rule file at path on every
// load.
func RuleFile(path string) RuleSource {
	return fileRuleSource{path: path}
}

func (s fileRuleSource) Load(ctx context.Context) (acl.RawRules, error) {
	return acl.ParseFile(s.path)
}

type staticRuleSource struct {
	raw acl.RawRules
}

// StaticRules returns a RuleSource serving a fixed set of raw sections,
// mainly useful in tests and embedded configurations.
func StaticRules(raw acl.RawRules) RuleSource {
	return staticRuleSource{raw: raw}
}

func (s staticRuleSource) Load(ctx context.Context) (acl.RawRules, error) {
	if len(s.raw) == 0 {
		return nil, acl.ErrNoRules
	}
	return s.raw, nil
}
