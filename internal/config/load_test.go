package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadYAMLParsesAndValidates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "warden.yaml")
	content := `
defaultDecision: ask
askOnSubshell: true
alwaysAllow: [ls, cat]
rules:
  - command: git
    default: allow
    argPatterns:
      - match:
          anyArgMatches: ["push"]
        decision: ask
        reason: pushes to remote
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadYAML(path)
	if err != nil {
		t.Fatalf("LoadYAML: %v", err)
	}
	if s.DefaultDecision != "ask" {
		t.Errorf("DefaultDecision = %q, want ask", s.DefaultDecision)
	}
	if len(s.AlwaysAllow) != 2 {
		t.Errorf("AlwaysAllow = %v, want 2 entries", s.AlwaysAllow)
	}
	if len(s.Rules) != 1 || s.Rules[0].Command != "git" {
		t.Errorf("Rules = %+v, want one git rule", s.Rules)
	}
}

func TestLoadYAMLMissingFileReturnsNotFound(t *testing.T) {
	_, err := LoadYAML(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing config file")
	}
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("LoadYAML(missing) error = %v, want ErrConfigNotFound", err)
	}
}

func TestLoadYAMLInvalidYAMLErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "warden.yaml")
	if err := os.WriteFile(path, []byte("defaultDecision: [this is not a scalar\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadYAML(path); err == nil {
		t.Fatal("expected a parse error for malformed YAML")
	}
}

func TestLoadYAMLInvalidConfigFailsValidation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "warden.yaml")
	if err := os.WriteFile(path, []byte("defaultDecision: maybe\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadYAML(path); err == nil {
		t.Fatal("expected a validation error for an invalid defaultDecision")
	}
}

func TestLoadChainIncludesBuiltinDefaults(t *testing.T) {
	_, merged, err := LoadChain("")
	if err != nil {
		t.Fatalf("LoadChain: %v", err)
	}
	if len(merged.AlwaysDeny) == 0 {
		t.Error("expected built-in AlwaysDeny entries even with no config files present")
	}
}
