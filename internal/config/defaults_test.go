package config

import "testing"

func TestDefaultsValidate(t *testing.T) {
	if err := Defaults().Validate(); err != nil {
		t.Fatalf("built-in defaults failed validation: %v", err)
	}
}

func TestDefaultsMergeProducesSaneBaseline(t *testing.T) {
	m, err := Merge(Defaults())
	if err != nil {
		t.Fatalf("Merge(Defaults()): %v", err)
	}
	if !m.AskOnSubshell {
		t.Error("built-in defaults should ask on subshell taint")
	}
	if len(m.AlwaysDeny) == 0 {
		t.Error("built-in defaults should include an alwaysDeny list")
	}
	if len(m.GlobalDeny) == 0 {
		t.Error("built-in defaults should include a globalDeny list")
	}

	foundGit := false
	for _, r := range m.Rules {
		if r.Command == "git" {
			foundGit = true
		}
	}
	if !foundGit {
		t.Error("built-in defaults should include a git rule")
	}
}

func TestDefaultsContainsKnownDangerousCommands(t *testing.T) {
	want := []string{"sudo", "mkfs", "dd", "shutdown"}
	for _, name := range want {
		found := false
		for _, d := range defaultAlwaysDeny {
			if d == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("defaultAlwaysDeny missing %q", name)
		}
	}
}
