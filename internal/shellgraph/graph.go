// Package shellgraph decomposes a raw shell command string into the
// atomic invocations it would run, without executing or expanding any of
// them.
package shellgraph

import "strings"

// Invocation is a single atomic command extracted from a shell AST: a
// command name, its positional arguments, and any leading KEY=VALUE
// assignment words.
type Invocation struct {
	// Command is the basename of the executable word, e.g. "ls" for
	// both "ls" and "/usr/bin/ls".
	Command string
	// Args are the positional words after the command name, in
	// original order, unexpanded.
	Args []string
	// EnvPrefixes are leading KEY=VALUE assignment words.
	EnvPrefixes []string
	// Raw is the canonical space-joined reconstruction of
	// EnvPrefixes + the original command word + Args, used for
	// whole-string regex matches.
	Raw string
}

// ParseResult is the output of Parse: an ordered list of invocations
// plus the subshell taint the input carries.
type ParseResult struct {
	Commands []Invocation
	// HasSubshell is sticky: once set by a construct that cannot be
	// statically reduced, it stays set for the rest of the parse.
	HasSubshell bool
	// SubshellCommands collects the inner text of each command
	// substitution found, for optional recursive evaluation.
	SubshellCommands []string
	// ParseError signals the parser gave up entirely; the evaluator
	// must treat the whole input as ask.
	ParseError bool
}

// HeredocPlaceholder is substituted for $(cat <<MARKER...MARKER) idioms
// before parsing, so the outer command parses without spurious taint.
// Exported so config rules can match the token explicitly.
const HeredocPlaceholder = "__HEREDOC_TEXT__"

func joinWords(envPrefixes []string, head string, args []string) string {
	parts := make([]string, 0, len(envPrefixes)+1+len(args))
	parts = append(parts, envPrefixes...)
	parts = append(parts, head)
	parts = append(parts, args...)
	return strings.Join(parts, " ")
}
