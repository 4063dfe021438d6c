package config

// Defaults returns the built-in Source compiled into the binary so
// warden has a sane policy with zero configuration. It sits at the
// bottom of the merge chain: project and user config override it
// field-by-field. Both scalars (defaultDecision, askOnSubshell) are set
// here; the trusted-target lists are left empty.
func Defaults() *Source {
	askOnSubshell := true
	return &Source{
		Path:            "<built-in>",
		DefaultDecision: "ask",
		AskOnSubshell:   &askOnSubshell,
		AlwaysAllow:     defaultAlwaysAllow,
		AlwaysDeny:      defaultAlwaysDeny,
		GlobalDeny:      defaultGlobalDeny,
		Rules:           defaultRules,
	}
}

var defaultAlwaysAllow = []string{
	"ls", "cat", "head", "tail", "less", "more", "file", "stat", "wc",
	"echo", "printf", "pwd", "whoami", "id", "uname", "hostname", "date",
	"env", "printenv", "which", "whereis", "type", "basename", "dirname",
	"realpath", "readlink",
	"grep", "egrep", "fgrep", "rg", "ag", "ack",
	"find", "fd", "locate",
	"diff", "comm", "sort", "uniq", "cut", "paste", "join", "tr", "sed", "awk",
	"jq", "yq", "xmllint",
	"tree", "du", "df", "free", "uptime", "ps", "top", "htop",
	"md5sum", "sha1sum", "sha256sum", "sha512sum", "cksum",
	"base64", "xxd", "od", "hexdump",
	"gzip", "gunzip", "zcat", "bzip2", "bunzip2", "xz", "unxz", "tar", "zip", "unzip",
	"true", "false", "test", "[", "sleep", "seq", "yes", "expr", "bc",
	"tee", "xargs", "parallel",
	"man", "info", "help", "apropos",
	"history", "alias", "export", "set", "unset", "source", ".",
	"vim", "nvim", "vi", "nano", "emacs", "code",
	"make", "cmake", "ninja",
	"go", "cargo", "rustc", "javac", "java", "mvn", "gradle",
	"diff3", "patch",
	"curl", "wget",
	"tmux", "screen",
}

var defaultAlwaysDeny = []string{
	"sudo", "su", "doas",
	"mkfs", "fdisk", "parted",
	"dd",
	"shutdown", "reboot", "halt", "poweroff",
	"iptables", "ip6tables", "nft",
	"useradd", "userdel", "usermod", "groupadd", "groupdel",
	"crontab",
	"systemctl", "service", "launchctl",
}

var defaultGlobalDeny = []GlobalDenyEntry{
	{
		Pattern: `rm\s+.*-[a-zA-Z]*r[a-zA-Z]*f|rm\s+.*-[a-zA-Z]*f[a-zA-Z]*r`,
		Reason:  "recursive force-remove matched regardless of which command carries it",
	},
	{
		Pattern: `:\(\)\s*\{\s*:\s*\|\s*:\s*&\s*\}\s*;`,
		Reason:  "fork bomb pattern",
	},
	{
		Pattern: `>\s*/dev/sd[a-z]`,
		Reason:  "direct write to a raw block device",
	},
	{
		Pattern: `chmod\s+.*-[a-zA-Z]*R[a-zA-Z]*\s+777`,
		Reason:  "recursive world-writable permission change",
	},
}

// defaultRules is the built-in per-command rule table. Rules are plain
// RuleSource values, the same shape a warden.yaml author writes, so
// they flow through the ordinary compileRule path in merge.go rather
// than needing their own compiled representation.
var defaultRules = []RuleSource{
	shellRule("bash"),
	shellRule("sh"),
	shellRule("zsh"),
	nodeRule(),
	npmFamilyRule("npm"),
	npmFamilyRule("pnpm"),
	npmFamilyRule("yarn"),
	npmFamilyRule("bun"),
	npxFamilyRule("npx"),
	npxFamilyRule("bunx"),
	pythonRule("python"),
	pythonRule("python3"),
	pipRule("pip"),
	pipRule("pip3"),
	pipRule("uv"),
	pipRule("pipx"),
	gitRule(),
	ghRule(),
	dockerRule(),
	rmRule(),
	chmodRule(),
	chownRule(),
	sshRule(),
	scpRule(),
	rsyncRule(),
	osPackageManagerRule("apt"),
	osPackageManagerRule("apt-get"),
	osPackageManagerRule("brew"),
	osPackageManagerRule("yum"),
	osPackageManagerRule("dnf"),
	osPackageManagerRule("pacman"),
	kubectlRule(),
	terraformRule(),
}

func boolPtr(b bool) *bool { return &b }

func shellRule(command string) RuleSource {
	return RuleSource{
		Command: command,
		Default: "ask",
		ArgPatterns: []ArgPatternSource{
			{
				Match:    MatchSource{AnyArgMatches: []string{`--version|-V`}},
				Decision: "allow",
				Reason:   "version query",
			},
			{
				Match:    MatchSource{AnyArgMatches: []string{`--help|-h`}},
				Decision: "allow",
				Reason:   "help text",
			},
			{
				Match:    MatchSource{NoArgs: boolPtr(true)},
				Decision: "ask",
				Reason:   "interactive shell",
			},
		},
	}
}

func nodeRule() RuleSource {
	return RuleSource{
		Command: "node",
		Default: "allow",
		ArgPatterns: []ArgPatternSource{
			{
				Match:    MatchSource{AnyArgMatches: []string{`-e|--eval|-p|--print`}},
				Decision: "ask",
				Reason:   "arbitrary code passed inline",
			},
			{
				Match:    MatchSource{NoArgs: boolPtr(true)},
				Decision: "ask",
				Reason:   "interactive REPL",
			},
		},
	}
}

func npmFamilyRule(command string) RuleSource {
	return RuleSource{
		Command: command,
		Default: "allow",
		ArgPatterns: []ArgPatternSource{
			{
				Match:    MatchSource{AnyArgMatches: []string{`publish|unpublish|deprecate|owner|access|token|adduser|login|logout`}},
				Decision: "ask",
				Reason:   "registry-mutating operation",
			},
		},
	}
}

var knownDevToolNames = `tsc|eslint|prettier|jest|vitest|mocha|webpack|vite|rollup|esbuild|parcel|` +
	`create-react-app|next|nuxt|gatsby|svelte-kit|astro|turbo|nx|lerna|` +
	`typedoc|jsdoc|stylelint|husky|lint-staged|commitlint|semantic-release|` +
	`npm-check-updates|depcheck|madge|size-limit|cross-env|rimraf|concurrently|` +
	`json|cowsay|create-next-app|create-vite|degit`

func npxFamilyRule(command string) RuleSource {
	return RuleSource{
		Command: command,
		Default: "ask",
		ArgPatterns: []ArgPatternSource{
			{
				Match:    MatchSource{AnyArgMatches: []string{`tsx|ts-node|nodemon`}},
				Decision: "ask",
				Reason:   "runs arbitrary project scripts",
			},
			{
				Match:    MatchSource{AnyArgMatches: []string{knownDevToolNames}},
				Decision: "allow",
				Reason:   "known development tool",
			},
		},
	}
}

func pythonRule(command string) RuleSource {
	return RuleSource{
		Command: command,
		Default: "allow",
		ArgPatterns: []ArgPatternSource{
			{
				Match:    MatchSource{AnyArgMatches: []string{`-c`}},
				Decision: "ask",
				Reason:   "arbitrary code passed inline",
			},
			{
				Match:    MatchSource{NoArgs: boolPtr(true)},
				Decision: "ask",
				Reason:   "interactive REPL",
			},
		},
	}
}

func pipRule(command string) RuleSource {
	return RuleSource{
		Command: command,
		Default: "allow",
		ArgPatterns: []ArgPatternSource{
			{
				Match:    MatchSource{AnyArgMatches: []string{`uninstall`}},
				Decision: "ask",
				Reason:   "removes installed packages",
			},
		},
	}
}

func gitRule() RuleSource {
	return RuleSource{
		Command: "git",
		Default: "allow",
		ArgPatterns: []ArgPatternSource{
			{
				Match:    MatchSource{ArgsMatch: []string{`push.*(--force|-f)\b`}},
				Decision: "ask",
				Reason:   "force-push can discard remote history",
			},
			{
				Match:    MatchSource{ArgsMatch: []string{`reset.*--hard`}},
				Decision: "ask",
				Reason:   "discards local changes irreversibly",
			},
			{
				Match:    MatchSource{AnyArgMatches: []string{`clean`}},
				Decision: "ask",
				Reason:   "deletes untracked files",
			},
		},
	}
}

func ghRule() RuleSource {
	return RuleSource{
		Command: "gh",
		Default: "allow",
		ArgPatterns: []ArgPatternSource{
			{
				Match:    MatchSource{ArgsMatch: []string{`repo\s+delete`, `release\s+delete`}},
				Decision: "ask",
				Reason:   "deletes a GitHub resource",
			},
		},
	}
}

func dockerRule() RuleSource {
	return RuleSource{
		Command: "docker",
		Default: "ask",
		ArgPatterns: []ArgPatternSource{
			{
				Match:    MatchSource{AnyArgMatches: []string{`ps|images|logs|inspect|version|info|top|stats|diff`}},
				Decision: "allow",
				Reason:   "read-only introspection",
			},
		},
	}
}

func rmRule() RuleSource {
	return RuleSource{
		Command: "rm",
		Default: "ask",
	}
}

func chmodRule() RuleSource {
	return RuleSource{
		Command: "chmod",
		Default: "allow",
		ArgPatterns: []ArgPatternSource{
			{
				Match:    MatchSource{ArgsMatch: []string{`-[a-zA-Z]*R[a-zA-Z]*\s+777`, `777.*-[a-zA-Z]*R`}},
				Decision: "deny",
				Reason:   "recursive world-writable permission change",
			},
		},
	}
}

func chownRule() RuleSource {
	return RuleSource{
		Command: "chown",
		Default: "allow",
		ArgPatterns: []ArgPatternSource{
			{
				Match:    MatchSource{AnyArgMatches: []string{`-R|--recursive`}},
				Decision: "ask",
				Reason:   "recursive ownership change",
			},
		},
	}
}

func sshRule() RuleSource {
	return RuleSource{
		Command: "ssh",
		Default: "ask",
	}
}

func scpRule() RuleSource {
	return RuleSource{
		Command: "scp",
		Default: "ask",
	}
}

func rsyncRule() RuleSource {
	return RuleSource{
		Command: "rsync",
		Default: "ask",
		ArgPatterns: []ArgPatternSource{
			{
				Match:    MatchSource{Not: true, AnyArgMatches: []string{`.*:.*`}},
				Decision: "allow",
				Reason:   "local-only transfer, no remote host involved",
			},
		},
	}
}

func osPackageManagerRule(command string) RuleSource {
	return RuleSource{
		Command: command,
		Default: "ask",
		ArgPatterns: []ArgPatternSource{
			{
				Match:    MatchSource{AnyArgMatches: []string{`list|search|show|info|which|deps`}},
				Decision: "allow",
				Reason:   "read-only package query",
			},
		},
	}
}

func kubectlRule() RuleSource {
	return RuleSource{
		Command: "kubectl",
		Default: "ask",
		ArgPatterns: []ArgPatternSource{
			{
				Match:    MatchSource{AnyArgMatches: []string{`get|describe|logs|top|explain|version|cluster-info|config`}},
				Decision: "allow",
				Reason:   "read-only verb",
			},
		},
	}
}

func terraformRule() RuleSource {
	return RuleSource{
		Command: "terraform",
		Default: "ask",
		ArgPatterns: []ArgPatternSource{
			{
				Match:    MatchSource{AnyArgMatches: []string{`plan|validate|show|output|fmt`}},
				Decision: "allow",
				Reason:   "side-effect-free operation",
			},
		},
	}
}
