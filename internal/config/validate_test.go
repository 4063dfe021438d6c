package config

import "testing"

func TestValidateRejectsBadDefaultDecision(t *testing.T) {
	s := &Source{DefaultDecision: "maybe"}
	if err := s.Validate(); err == nil {
		t.Error("Validate should reject an unrecognized defaultDecision")
	}
}

func TestValidateAcceptsEmptyDefaultDecision(t *testing.T) {
	s := &Source{}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate should accept an unset defaultDecision (falls through in Merge), got %v", err)
	}
}

func TestValidateRejectsBadGlobalDenyRegex(t *testing.T) {
	s := &Source{GlobalDeny: []GlobalDenyEntry{{Pattern: "(unclosed"}}}
	if err := s.Validate(); err == nil {
		t.Error("Validate should reject an invalid globalDeny regex")
	}
}

func TestValidateRejectsBadTrustedGlob(t *testing.T) {
	s := &Source{TrustedSSHHosts: []string{"[unclosed"}}
	if err := s.Validate(); err == nil {
		t.Error("Validate should reject an invalid trusted-host pattern")
	}
}

func TestValidateRejectsRuleMissingCommand(t *testing.T) {
	s := &Source{Rules: []RuleSource{{Command: "", Default: "allow"}}}
	if err := s.Validate(); err == nil {
		t.Error("Validate should reject a rule with an empty command")
	}
}

func TestValidateRejectsRuleBadDefault(t *testing.T) {
	s := &Source{Rules: []RuleSource{{Command: "git", Default: "nope"}}}
	if err := s.Validate(); err == nil {
		t.Error("Validate should reject a rule with an invalid default decision")
	}
}

func TestValidateRejectsArgPatternBadRegex(t *testing.T) {
	s := &Source{Rules: []RuleSource{{
		Command: "git",
		Default: "allow",
		ArgPatterns: []ArgPatternSource{
			{Match: MatchSource{AnyArgMatches: []string{"(unclosed"}}, Decision: "deny"},
		},
	}}}
	if err := s.Validate(); err == nil {
		t.Error("Validate should reject an invalid anyArgMatches pattern")
	}
}

func TestValidateAcceptsWellFormedSource(t *testing.T) {
	s := &Source{
		DefaultDecision: "ask",
		GlobalDeny:      []GlobalDenyEntry{{Pattern: `rm\s+-rf`, Reason: "dangerous"}},
		TrustedSSHHosts: []string{"*.internal"},
		Rules: []RuleSource{{
			Command: "git",
			Default: "allow",
			ArgPatterns: []ArgPatternSource{
				{Match: MatchSource{AnyArgMatches: []string{"push"}}, Decision: "ask", Reason: "pushes"},
			},
		}},
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate on well-formed source returned error: %v", err)
	}
}
