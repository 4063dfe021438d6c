package warden

// Combine reduces the per-invocation results of a pipeline into one
// final decision: any deny wins outright; otherwise, if the input was
// tainted by a subshell and askOnSubshell is enabled, an overall allow
// is promoted to ask. An empty result list (no invocations, no parse
// error) allows: a no-op input is never worth asking about.
func Combine(results []Result, hasSubshell, askOnSubshell bool) Result {
	combined := Result{Decision: Allow}
	for _, r := range results {
		combined = combine(combined, r)
		if combined.Decision == Deny {
			return combined
		}
	}

	if combined.Decision == Allow && hasSubshell && askOnSubshell {
		return Result{Decision: Ask, Reason: "command contains a subshell or control-flow construct"}
	}

	return combined
}
