package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// PatternType indicates how a pattern string should be interpreted.
type PatternType int

const (
	PatternRegex PatternType = iota
	PatternPath
	PatternFlag
)

func (pt PatternType) String() string {
	switch pt {
	case PatternRegex:
		return "regex"
	case PatternPath:
		return "path"
	case PatternFlag:
		return "flag"
	default:
		return fmt.Sprintf("PatternType(%d)", int(pt))
	}
}

// Pattern is a single compiled matcher for one argument string. Unlike
// the teacher's match.go, an unprefixed pattern compiles as a regex
// rather than a literal: MatchSpec's AnyArgMatches field is documented
// as a list of regexes, so a bare entry must behave like one.
type Pattern struct {
	Type PatternType
	Raw  string

	regex *regexp.Regexp // full-match anchored, for PatternRegex

	pathPattern string // for PatternPath

	flagDelimiter string // for PatternFlag
	flagChars     string // for PatternFlag

	negated bool
}

// ParsePattern parses a pattern string and pre-compiles it. Supported
// prefixes: "re:" (explicit regex, same as no prefix), "path:" (glob
// match via doublestar, no variable expansion), "flags:"/"flags[delim]:"
// (short/long option matching). Any pattern may be negated by a
// leading "!".
func ParsePattern(s string) (*Pattern, error) {
	p := &Pattern{Raw: s}

	if after, ok := strings.CutPrefix(s, "!"); ok {
		p.negated = true
		s = after
	}

	switch {
	case strings.HasPrefix(s, "re:"):
		return p.compileRegex(strings.TrimPrefix(s, "re:"))
	case strings.HasPrefix(s, "path:"):
		p.Type = PatternPath
		p.pathPattern = strings.TrimPrefix(s, "path:")
		if !doublestar.ValidatePattern(p.pathPattern) {
			return nil, fmt.Errorf("invalid pattern %q: malformed glob", s)
		}
		return p, nil
	case strings.HasPrefix(s, "flags:"), strings.HasPrefix(s, "flags["):
		delim, chars, err := parseFlagPattern(s)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", s, err)
		}
		p.Type = PatternFlag
		p.flagDelimiter = delim
		p.flagChars = chars
		return p, nil
	default:
		return p.compileRegex(s)
	}
}

func (p *Pattern) compileRegex(expr string) (*Pattern, error) {
	re, err := regexp.Compile("^(?:" + expr + ")$")
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", expr, err)
	}
	p.Type = PatternRegex
	p.regex = re
	return p, nil
}

func parseFlagPattern(s string) (delimiter, chars string, err error) {
	if strings.HasPrefix(s, "flags[") {
		closeBracket := strings.Index(s, "]:")
		if closeBracket == -1 {
			return "", "", fmt.Errorf("missing ']:' in flag pattern")
		}
		delimiter = s[len("flags["):closeBracket]
		if delimiter == "" {
			return "", "", fmt.Errorf("flag delimiter cannot be empty")
		}
		chars = s[closeBracket+2:]
	} else {
		delimiter = "-"
		chars = strings.TrimPrefix(s, "flags:")
	}
	if chars == "" {
		return "", "", fmt.Errorf("flag pattern requires at least one character")
	}
	if !isAlphanumeric(chars) {
		return "", "", fmt.Errorf("flag chars must be alphanumeric, got %q", chars)
	}
	return delimiter, chars, nil
}

func isAlphanumeric(s string) bool {
	for _, c := range s {
		if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')) {
			return false
		}
	}
	return true
}

// Matches reports whether s satisfies the pattern.
func (p *Pattern) Matches(s string) bool {
	var matched bool
	switch p.Type {
	case PatternRegex:
		matched = p.regex.MatchString(s)
	case PatternPath:
		matched, _ = doublestar.Match(p.pathPattern, s)
	case PatternFlag:
		matched = matchFlag(s, p.flagDelimiter, p.flagChars)
	}
	if p.negated {
		return !matched
	}
	return matched
}

// MatchesAny reports whether p matches any element of ss.
func (p *Pattern) MatchesAny(ss []string) bool {
	for _, s := range ss {
		if p.Matches(s) {
			return true
		}
	}
	return false
}

// matchFlag reports whether s looks like a flag carrying all of chars,
// e.g. delimiter "-" and chars "rf" matches "-rf", "-fr", "-vrf".
func matchFlag(s, delimiter, chars string) bool {
	if !strings.HasPrefix(s, delimiter) {
		return false
	}
	if delimiter == "-" && strings.HasPrefix(s, "--") {
		return false
	}
	rest := s[len(delimiter):]
	if rest == "" {
		return false
	}
	for _, c := range chars {
		if !strings.ContainsRune(rest, c) {
			return false
		}
	}
	return true
}

// MatchGlob reports whether target matches glob, used for trusted-target
// lists (SSH hosts, docker containers, kubectl contexts, sprite handles).
func MatchGlob(glob, target string) bool {
	matched, _ := doublestar.Match(glob, target)
	return matched
}
