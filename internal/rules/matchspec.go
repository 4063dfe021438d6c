package rules

import (
	"regexp"

	"warden/internal/shellgraph"
)

// CountRange bounds len(Args) inclusively; a zero Max means unbounded.
type CountRange struct {
	Min int
	Max int
}

func (r CountRange) contains(n int) bool {
	if n < r.Min {
		return false
	}
	if r.Max > 0 && n > r.Max {
		return false
	}
	return true
}

// MatchSpec is a conjunction of independent, optional predicates over
// an invocation. A predicate that is nil/empty imposes no constraint.
type MatchSpec struct {
	AnyArgMatches []*Pattern
	ArgsMatch     []*regexp.Regexp
	NoArgs        *bool
	ArgCount      *CountRange
	Not           bool
}

// Evaluate reports whether inv satisfies the spec. An entirely empty
// spec with Not=false matches everything, mirroring the teacher's
// zero-predicate fallthrough in matchTrackedRule.
func (m MatchSpec) Evaluate(inv shellgraph.Invocation) bool {
	result := true

	if len(m.AnyArgMatches) > 0 {
		result = result && anyPatternMatchesAnyArg(m.AnyArgMatches, inv.Args)
	}
	if len(m.ArgsMatch) > 0 {
		result = result && anyRegexSearches(m.ArgsMatch, inv.Raw)
	}
	if m.NoArgs != nil {
		result = result && (*m.NoArgs == (len(inv.Args) == 0))
	}
	if m.ArgCount != nil {
		result = result && m.ArgCount.contains(len(inv.Args))
	}

	if m.Not {
		return !result
	}
	return result
}

func anyPatternMatchesAnyArg(patterns []*Pattern, args []string) bool {
	for _, p := range patterns {
		if p.MatchesAny(args) {
			return true
		}
	}
	return false
}

func anyRegexSearches(patterns []*regexp.Regexp, raw string) bool {
	for _, re := range patterns {
		if re.MatchString(raw) {
			return true
		}
	}
	return false
}

// ArgPattern is one candidate rule within a CommandRule's ArgPatterns
// list, tried in order.
type ArgPattern struct {
	Match       MatchSpec
	Decision    Decision
	Reason      string
	Description string
}

// CommandRule is a per-command rule: a Command name (or the wildcard
// "*"), a Default decision, and an ordered list of ArgPatterns that
// override the default when their MatchSpec matches.
type CommandRule struct {
	Command     string
	Default     Decision
	ArgPatterns []ArgPattern
}

// MatchesCommand reports whether the rule applies to the given
// invocation command name.
func (r CommandRule) MatchesCommand(command string) bool {
	return r.Command == "*" || r.Command == command
}

// Evaluate returns the decision this rule prescribes for inv: the
// first matching ArgPattern, or the rule's Default if none match.
func (r CommandRule) Evaluate(inv shellgraph.Invocation) (Decision, string) {
	for _, ap := range r.ArgPatterns {
		if ap.Match.Evaluate(inv) {
			return ap.Decision, ap.Reason
		}
	}
	return r.Default, ""
}
