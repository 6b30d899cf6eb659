package acl

import "errors"

// Domain errors for rule parsing and compilation.
var (
	// ErrRuleFileNotFound is returned when the rule file cannot be read.
	ErrRuleFileNotFound = errors.New("acl.rule_file_not_found")

	// ErrInvalidRuleSource is returned when the rule source cannot be parsed.
	ErrInvalidRuleSource = errors.New("acl.invalid_rule_source")

	// ErrNoRules is returned when the rule source yields zero sections.
	ErrNoRules = errors.New("acl.no_rules")
)
