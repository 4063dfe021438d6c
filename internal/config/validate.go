package config

import (
	"fmt"
	"regexp"

	"warden/internal/rules"
)

// Validate checks that every decision value, regex, and glob in s
// compiles and is well-formed, returning a *ConfigValidationError
// naming the first offending field. It never silently drops a bad
// entry — a config either loads whole or is rejected whole.
func (s *Source) Validate() error {
	if err := validateDecision(s.DefaultDecision, "defaultDecision", false); err != nil {
		return err
	}
	for i, entry := range s.GlobalDeny {
		if _, err := regexp.Compile(entry.Pattern); err != nil {
			return &ConfigValidationError{
				Location: fmt.Sprintf("globalDeny[%d].pattern", i),
				Value:    entry.Pattern,
				Message:  "invalid regular expression: " + err.Error(),
			}
		}
	}
	for _, glob := range s.TrustedSSHHosts {
		if err := validateGlob(glob, "trustedSSHHosts"); err != nil {
			return err
		}
	}
	for _, glob := range s.TrustedDockerContainers {
		if err := validateGlob(glob, "trustedDockerContainers"); err != nil {
			return err
		}
	}
	for _, glob := range s.TrustedKubectlContexts {
		if err := validateGlob(glob, "trustedKubectlContexts"); err != nil {
			return err
		}
	}
	for _, glob := range s.TrustedSprites {
		if err := validateGlob(glob, "trustedSprites"); err != nil {
			return err
		}
	}
	for i, rule := range s.Rules {
		if err := rule.validate(i); err != nil {
			return err
		}
	}
	return nil
}

func (r RuleSource) validate(index int) error {
	loc := fmt.Sprintf("rules[%d]", index)
	if r.Command == "" {
		return &ConfigValidationError{Location: loc + ".command", Value: r.Command, Message: "command must be non-empty or \"*\""}
	}
	if err := validateDecision(r.Default, loc+".default", true); err != nil {
		return err
	}
	for j, ap := range r.ArgPatterns {
		if err := ap.validate(fmt.Sprintf("%s.argPatterns[%d]", loc, j)); err != nil {
			return err
		}
	}
	return nil
}

func (ap ArgPatternSource) validate(loc string) error {
	if err := validateDecision(ap.Decision, loc+".decision", true); err != nil {
		return err
	}
	for _, pat := range ap.Match.AnyArgMatches {
		if _, err := rules.ParsePattern(pat); err != nil {
			return &ConfigValidationError{Location: loc + ".match.anyArgMatches", Value: pat, Message: err.Error()}
		}
	}
	for _, pat := range ap.Match.ArgsMatch {
		if _, err := regexp.Compile(pat); err != nil {
			return &ConfigValidationError{Location: loc + ".match.argsMatch", Value: pat, Message: "invalid regular expression: " + err.Error()}
		}
	}
	return nil
}

func validateDecision(value, loc string, required bool) error {
	if value == "" {
		if required {
			return &ConfigValidationError{Location: loc, Value: value, Message: "decision is required"}
		}
		return nil
	}
	if _, err := rules.ParseDecision(value); err != nil {
		return &ConfigValidationError{Location: loc, Value: value, Message: "must be \"allow\", \"deny\", or \"ask\""}
	}
	return nil
}

func validateGlob(glob, field string) error {
	if _, err := rules.ParsePattern("path:" + glob); err != nil {
		return &ConfigValidationError{Location: field, Value: glob, Message: err.Error()}
	}
	return nil
}
