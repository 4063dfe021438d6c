package warden

import (
	"context"
	"time"

	"warden/internal/config"
	"warden/internal/shellgraph"
)

// evalTimeout bounds a single invocation's rule walk. RE2 cannot
// pathologically backtrack, but a large compiled pattern run against a
// long Raw string can still be slow, so this is defense in depth
// rather than a strict necessity.
const evalTimeout = 200 * time.Millisecond

// Evaluator applies one merged configuration to parsed invocations.
type Evaluator struct {
	merged *config.Merged
}

// NewEvaluator builds an Evaluator from a merged configuration.
func NewEvaluator(merged *config.Merged) *Evaluator {
	return &Evaluator{merged: merged}
}

// EvaluateInput runs the full pipeline for one raw shell input: global
// deny against the original string, then per-invocation evaluation and
// taint-aware combination. rawInput must be the untouched input string
// (not the heredoc-preprocessed or sh -c-unwrapped form), so a global
// deny pattern can never be defeated by the parser's own rewrites.
func (e *Evaluator) EvaluateInput(rawInput string) Result {
	for _, gd := range e.merged.GlobalDeny {
		if gd.Pattern.MatchString(rawInput) {
			return Result{Decision: Deny, Reason: gd.Reason}
		}
	}

	parsed := shellgraph.Parse(rawInput)
	if parsed.ParseError {
		return Result{Decision: Ask, Reason: ErrParse.Error()}
	}

	results := make([]Result, 0, len(parsed.Commands))
	for _, inv := range parsed.Commands {
		results = append(results, e.evaluateInvocation(inv))
	}

	return Combine(results, parsed.HasSubshell, e.merged.AskOnSubshell)
}

// evaluateInvocation runs the fixed-precedence layers against one
// invocation: always-deny, always-allow, first-matching per-command
// rule, then the configured default. Global deny is handled by the
// caller against the raw string, before parsing.
func (e *Evaluator) evaluateInvocation(inv shellgraph.Invocation) Result {
	ctx, cancel := context.WithTimeout(context.Background(), evalTimeout)
	defer cancel()

	done := make(chan Result, 1)
	go func() { done <- e.evaluateInvocationUnguarded(inv) }()

	select {
	case r := <-done:
		return r
	case <-ctx.Done():
		return Result{Decision: Ask, Reason: ErrEvalTimeout.Error(), Command: inv.Command}
	}
}

var trustedTargetCommands = map[string]bool{
	"ssh": true, "docker": true, "kubectl": true, "sprite": true,
}

func (e *Evaluator) evaluateInvocationUnguarded(inv shellgraph.Invocation) Result {
	for _, name := range e.merged.AlwaysDeny {
		if name == inv.Command {
			return Result{Decision: Deny, Reason: "command is always denied", Command: inv.Command}
		}
	}
	for _, name := range e.merged.AlwaysAllow {
		if name == inv.Command {
			return Result{Decision: Allow, Command: inv.Command}
		}
	}

	result := Result{Decision: e.merged.DefaultDecision, Command: inv.Command}
	for _, rule := range e.merged.Rules {
		if !rule.MatchesCommand(inv.Command) {
			continue
		}
		decision, reason := rule.Evaluate(inv)
		result = Result{Decision: decision, Reason: reason, Command: inv.Command}
		break
	}

	if result.Decision == Ask && trustedTargetCommands[inv.Command] && trustedTargetAllowed(inv, e.merged) {
		return Result{Decision: Allow, Reason: "trusted target", Command: inv.Command}
	}
	return result
}
