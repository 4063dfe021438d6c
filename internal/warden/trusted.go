package warden

import (
	"strings"

	"warden/internal/config"
	"warden/internal/rules"
	"warden/internal/shellgraph"
)

// trustedTargetAllowed reports whether inv is a trusted-target
// invocation (ssh, docker exec, kubectl, or sprite) whose extracted
// target argument matches one of the configured glob lists. It
// returns false, not just on no-match, but on any ambiguity in
// extracting the target at all — an invocation we can't confidently
// read the target out of is never silently trusted.
func trustedTargetAllowed(inv shellgraph.Invocation, merged *config.Merged) bool {
	switch inv.Command {
	case "ssh":
		host, ok := firstPositional(inv.Args)
		if !ok {
			return false
		}
		if at := strings.IndexByte(host, '@'); at >= 0 {
			host = host[at+1:]
		}
		return matchesAny(merged.TrustedSSHHosts, host)

	case "docker":
		if !hasSubcommand(inv.Args, "exec") {
			return false
		}
		container, ok := targetAfterSubcommand(inv.Args, "exec")
		if !ok {
			return false
		}
		return matchesAny(merged.TrustedDockerContainers, container)

	case "kubectl":
		if ctx, ok := flagValue(inv.Args, "--context"); ok {
			return matchesAny(merged.TrustedKubectlContexts, ctx)
		}
		return false

	case "sprite":
		handle, ok := firstPositional(inv.Args)
		if !ok {
			return false
		}
		return matchesAny(merged.TrustedSprites, handle)
	}
	return false
}

func matchesAny(globs []string, target string) bool {
	for _, g := range globs {
		if rules.MatchGlob(g, target) {
			return true
		}
	}
	return false
}

// firstPositional returns the first argument that isn't a flag.
func firstPositional(args []string) (string, bool) {
	for _, a := range args {
		if strings.HasPrefix(a, "-") {
			continue
		}
		return a, true
	}
	return "", false
}

func hasSubcommand(args []string, sub string) bool {
	for _, a := range args {
		if a == sub {
			return true
		}
	}
	return false
}

// targetAfterSubcommand returns the first non-flag argument following
// the given subcommand token, e.g. "exec" in "docker exec -it name sh".
func targetAfterSubcommand(args []string, sub string) (string, bool) {
	idx := -1
	for i, a := range args {
		if a == sub {
			idx = i
			break
		}
	}
	if idx < 0 {
		return "", false
	}
	return firstPositional(args[idx+1:])
}

func flagValue(args []string, flag string) (string, bool) {
	for i, a := range args {
		if a == flag && i+1 < len(args) {
			return args[i+1], true
		}
		if v, ok := strings.CutPrefix(a, flag+"="); ok {
			return v, true
		}
	}
	return "", false
}
