package config

import (
	"fmt"
	"regexp"

	"warden/internal/rules"
)

// GlobalDeny is a compiled globalDeny entry, tested against the raw
// pre-parse input string.
type GlobalDeny struct {
	Pattern *regexp.Regexp
	Reason  string
}

// Merged is the single in-memory configuration the evaluator reads:
// built-in defaults overridden by the user config, overridden in turn
// by the project config, with every pattern already compiled so no
// evaluation-time failure is possible.
type Merged struct {
	DefaultDecision rules.Decision
	AskOnSubshell   bool

	AlwaysAllow []string
	AlwaysDeny  []string
	GlobalDeny  []GlobalDeny

	TrustedSSHHosts         []string
	TrustedDockerContainers []string
	TrustedKubectlContexts  []string
	TrustedSprites          []string

	Rules []rules.CommandRule
}

// Merge combines sources in highest-to-lowest priority order (e.g.
// project, user, defaults) into one Merged configuration. Scalars are
// replace-wins (the first source that sets a field wins); list fields
// are unioned in first-seen order; Rules are appended in source order
// so the evaluator's first-match-wins walk makes higher-priority
// sources shadow lower ones without either being dropped.
func Merge(sources ...*Source) (*Merged, error) {
	m := &Merged{DefaultDecision: rules.Ask}

	decisionSet := false
	askOnSubshellSet := false

	allowSeen := map[string]bool{}
	denySeen := map[string]bool{}
	sshSeen := map[string]bool{}
	dockerSeen := map[string]bool{}
	kubectlSeen := map[string]bool{}
	spriteSeen := map[string]bool{}

	for _, s := range sources {
		if s == nil {
			continue
		}

		if !decisionSet && s.DefaultDecision != "" {
			d, err := rules.ParseDecision(s.DefaultDecision)
			if err != nil {
				return nil, fmt.Errorf("%s: defaultDecision: %w", s.Path, err)
			}
			m.DefaultDecision = d
			decisionSet = true
		}
		if !askOnSubshellSet && s.AskOnSubshell != nil {
			m.AskOnSubshell = *s.AskOnSubshell
			askOnSubshellSet = true
		}

		appendUnion(&m.AlwaysAllow, allowSeen, s.AlwaysAllow)
		appendUnion(&m.AlwaysDeny, denySeen, s.AlwaysDeny)
		appendUnion(&m.TrustedSSHHosts, sshSeen, s.TrustedSSHHosts)
		appendUnion(&m.TrustedDockerContainers, dockerSeen, s.TrustedDockerContainers)
		appendUnion(&m.TrustedKubectlContexts, kubectlSeen, s.TrustedKubectlContexts)
		appendUnion(&m.TrustedSprites, spriteSeen, s.TrustedSprites)

		for _, entry := range s.GlobalDeny {
			re, err := regexp.Compile(entry.Pattern)
			if err != nil {
				return nil, fmt.Errorf("%s: globalDeny pattern %q: %w", s.Path, entry.Pattern, err)
			}
			m.GlobalDeny = append(m.GlobalDeny, GlobalDeny{Pattern: re, Reason: entry.Reason})
		}

		for _, rs := range s.Rules {
			cr, err := compileRule(rs)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", s.Path, err)
			}
			m.Rules = append(m.Rules, cr)
		}
	}

	return m, nil
}

func appendUnion(dst *[]string, seen map[string]bool, items []string) {
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		*dst = append(*dst, item)
	}
}

func compileRule(rs RuleSource) (rules.CommandRule, error) {
	def, err := rules.ParseDecision(rs.Default)
	if err != nil {
		return rules.CommandRule{}, fmt.Errorf("rule %q: default: %w", rs.Command, err)
	}

	cr := rules.CommandRule{Command: rs.Command, Default: def}
	for _, aps := range rs.ArgPatterns {
		ap, err := compileArgPattern(aps)
		if err != nil {
			return rules.CommandRule{}, fmt.Errorf("rule %q: %w", rs.Command, err)
		}
		cr.ArgPatterns = append(cr.ArgPatterns, ap)
	}
	return cr, nil
}

func compileArgPattern(aps ArgPatternSource) (rules.ArgPattern, error) {
	decision, err := rules.ParseDecision(aps.Decision)
	if err != nil {
		return rules.ArgPattern{}, fmt.Errorf("argPattern: decision: %w", err)
	}

	spec := rules.MatchSpec{NoArgs: aps.Match.NoArgs, Not: aps.Match.Not}
	for _, p := range aps.Match.AnyArgMatches {
		pattern, err := rules.ParsePattern(p)
		if err != nil {
			return rules.ArgPattern{}, fmt.Errorf("argPattern: anyArgMatches: %w", err)
		}
		spec.AnyArgMatches = append(spec.AnyArgMatches, pattern)
	}
	for _, p := range aps.Match.ArgsMatch {
		re, err := regexp.Compile(p)
		if err != nil {
			return rules.ArgPattern{}, fmt.Errorf("argPattern: argsMatch: %w", err)
		}
		spec.ArgsMatch = append(spec.ArgsMatch, re)
	}
	if aps.Match.ArgCount != nil {
		spec.ArgCount = &rules.CountRange{Min: aps.Match.ArgCount.Min, Max: aps.Match.ArgCount.Max}
	}

	return rules.ArgPattern{
		Match:       spec,
		Decision:    decision,
		Reason:      aps.Reason,
		Description: aps.Description,
	}, nil
}
