package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadYAML reads and unmarshals one config file, validates it, and
// returns it ready for merging. A missing file is reported via
// ErrConfigNotFound so callers can treat it as "no override at this
// layer" rather than a hard failure.
func LoadYAML(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, ErrConfigNotFound)
		}
		return nil, fmt.Errorf("%s: %w: %v", path, ErrConfigRead, err)
	}

	var s Source
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", path, ErrConfigParse, err)
	}
	s.Path = path

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", path, ErrInvalidConfig, err)
	}
	return &s, nil
}

// Chain is the set of config layers discovered and loaded for one
// process invocation, in priority order (highest first).
type Chain struct {
	Explicit *Source // from -config, if given
	Project  *Source
	User     *Source
	Defaults *Source
}

// Sources returns the chain's layers ordered highest-priority first,
// ready to hand to Merge.
func (c *Chain) Sources() []*Source {
	return []*Source{c.Explicit, c.Project, c.User, c.Defaults}
}

// LoadChain discovers and loads every config layer (project, user,
// built-in defaults, plus an explicit -config override if given) and
// merges them into one Merged configuration. A layer simply missing
// from disk is not an error; a layer that exists but fails to parse or
// validate is.
func LoadChain(explicitPath string) (*Chain, *Merged, error) {
	chain := &Chain{Defaults: Defaults()}

	if explicitPath != "" {
		explicit, err := LoadYAML(explicitPath)
		if err != nil {
			return nil, nil, err
		}
		chain.Explicit = explicit
	}

	home, _ := os.UserHomeDir()
	projectRoot := FindProjectRoot()
	projectPath, userPath := Discover(projectRoot, home)

	if projectPath != "" {
		project, err := LoadYAML(projectPath)
		if err != nil {
			return nil, nil, err
		}
		chain.Project = project
	}
	if userPath != "" {
		user, err := LoadYAML(userPath)
		if err != nil {
			return nil, nil, err
		}
		chain.User = user
	}

	merged, err := Merge(chain.Sources()...)
	if err != nil {
		return nil, nil, err
	}
	return chain, merged, nil
}
