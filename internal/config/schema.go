// Package config loads, discovers, merges, and validates warden's YAML
// configuration, and compiles it into the matcher-ready form the
// evaluator reads.
package config

// Source is the YAML-unmarshaled shape of one config file, before
// merging or pattern compilation.
type Source struct {
	// Path is the file this Source was loaded from, or a synthetic
	// name ("<built-in>") for the compiled-in table.
	Path string `yaml:"-"`

	DefaultDecision string `yaml:"defaultDecision"`
	AskOnSubshell   *bool  `yaml:"askOnSubshell"`

	AlwaysAllow []string          `yaml:"alwaysAllow"`
	AlwaysDeny  []string          `yaml:"alwaysDeny"`
	GlobalDeny  []GlobalDenyEntry `yaml:"globalDeny"`

	TrustedSSHHosts         []string `yaml:"trustedSSHHosts"`
	TrustedDockerContainers []string `yaml:"trustedDockerContainers"`
	TrustedKubectlContexts  []string `yaml:"trustedKubectlContexts"`
	TrustedSprites          []string `yaml:"trustedSprites"`

	Rules []RuleSource `yaml:"rules"`
}

// GlobalDenyEntry is one globalDeny list entry: a regex tested against
// the raw, unparsed input string.
type GlobalDenyEntry struct {
	Pattern string `yaml:"pattern"`
	Reason  string `yaml:"reason"`
}

// RuleSource is the YAML shape of a CommandRule.
type RuleSource struct {
	Command     string             `yaml:"command"`
	Default     string             `yaml:"default"`
	ArgPatterns []ArgPatternSource `yaml:"argPatterns"`
}

// ArgPatternSource is the YAML shape of an ArgPattern.
type ArgPatternSource struct {
	Match       MatchSource `yaml:"match"`
	Decision    string      `yaml:"decision"`
	Reason      string      `yaml:"reason"`
	Description string      `yaml:"description"`
}

// MatchSource is the YAML shape of a MatchSpec.
type MatchSource struct {
	AnyArgMatches []string         `yaml:"anyArgMatches"`
	ArgsMatch     []string         `yaml:"argsMatch"`
	NoArgs        *bool            `yaml:"noArgs"`
	ArgCount      *CountRangeSource `yaml:"argCount"`
	Not           bool             `yaml:"not"`
}

// CountRangeSource is the YAML shape of an ArgCount bound.
type CountRangeSource struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}
