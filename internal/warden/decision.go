package warden

import "warden/internal/rules"

// Decision is an alias for rules.Decision: the evaluator is the
// natural home for this type per the package boundary, but the type
// itself lives in internal/rules so ArgPattern and CommandRule can
// reference it without an import cycle back to this package.
type Decision = rules.Decision

const (
	Allow = rules.Allow
	Deny  = rules.Deny
	Ask   = rules.Ask
)
