package main

import (
	"fmt"
	"os"

	"warden/internal/config"
	"warden/internal/rules"
)

// runFmt loads every discovered config layer, validates it, prints each
// layer's path with its entry counts, and then prints the merged rule
// set in first-match precedence order, flagging rules shadowed by an
// identical, earlier command match. Merged rules are printed without
// the source they came from. This is a generalization of the
// teacher's specificity-scored runFmt to this spec's first-match
// (rather than most-specific-wins) evaluation order.
func runFmt(explicitPath string) {
	chain, merged, err := config.LoadChain(explicitPath)
	if err != nil {
		fmt.Printf("ERROR: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Config Files")
	fmt.Println("============")
	for _, s := range []*config.Source{chain.Project, chain.User, chain.Defaults, chain.Explicit} {
		if s == nil {
			continue
		}
		fmt.Printf("\n%s\n", s.Path)
		fmt.Printf("    defaultDecision = %q\n", s.DefaultDecision)
		fmt.Printf("    %d rule(s), %d alwaysAllow, %d alwaysDeny, %d globalDeny\n",
			len(s.Rules), len(s.AlwaysAllow), len(s.AlwaysDeny), len(s.GlobalDeny))
	}

	fmt.Println("\n\nMerged Command Rules (first-match order)")
	fmt.Println("==========================================")
	seenCommand := map[string]int{}
	for i, r := range merged.Rules {
		shadowedBy, shadowed := seenCommand[r.Command]
		if !shadowed {
			seenCommand[r.Command] = i
		}

		fmt.Printf("\n[%d] %s\n", i, formatRule(r))
		if shadowed {
			fmt.Printf("    SHADOWED by rule[%d] (same command, matches first)\n", shadowedBy)
		}
	}

	fmt.Println("\n\nGlobal Deny Patterns")
	fmt.Println("====================")
	for i, gd := range merged.GlobalDeny {
		fmt.Printf("[%d] %s — %s\n", i, gd.Pattern.String(), gd.Reason)
	}

	fmt.Println("\n\nValidation passed.")
}

func formatRule(r rules.CommandRule) string {
	result := fmt.Sprintf("command=%q default=%s", r.Command, r.Default)
	for _, ap := range r.ArgPatterns {
		result += fmt.Sprintf("\n    -> %s decision=%s", describeMatch(ap.Match), ap.Decision)
		if ap.Reason != "" {
			result += " reason=" + ap.Reason
		}
	}
	return result
}

func describeMatch(m rules.MatchSpec) string {
	parts := []string{}
	if len(m.AnyArgMatches) > 0 {
		parts = append(parts, fmt.Sprintf("anyArgMatches(%d)", len(m.AnyArgMatches)))
	}
	if len(m.ArgsMatch) > 0 {
		parts = append(parts, fmt.Sprintf("argsMatch(%d)", len(m.ArgsMatch)))
	}
	if m.NoArgs != nil {
		parts = append(parts, fmt.Sprintf("noArgs=%v", *m.NoArgs))
	}
	if m.ArgCount != nil {
		parts = append(parts, fmt.Sprintf("argCount=[%d,%d]", m.ArgCount.Min, m.ArgCount.Max))
	}
	if m.Not {
		parts = append(parts, "not")
	}
	if len(parts) == 0 {
		return "match=<any>"
	}
	joined := parts[0]
	for _, p := range parts[1:] {
		joined += " " + p
	}
	return joined
}
