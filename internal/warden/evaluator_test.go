package warden

import (
	"testing"

	"warden/internal/config"
)

func newTestEvaluator(t *testing.T, mutate func(*config.Source)) *Evaluator {
	t.Helper()
	s := config.Defaults()
	if mutate != nil {
		mutate(s)
	}
	merged, err := config.Merge(s)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	return NewEvaluator(merged)
}

func TestEvaluateInputExamples(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		mutate  func(*config.Source)
		want    Decision
	}{
		{
			name:  "read-only command always allowed",
			input: "ls -la",
			want:  Allow,
		},
		{
			name:  "always-denied admin command",
			input: "sudo rm -rf /",
			want:  Deny,
		},
		{
			name:  "rm asks by default",
			input: "rm file.txt",
			want:  Ask,
		},
		{
			name:  "recursive force rm hits global deny regardless of command",
			input: "rm -rf /",
			want:  Deny,
		},
		{
			name:  "git push is allowed",
			input: "git push origin main",
			want:  Allow,
		},
		{
			name:  "git force push asks",
			input: "git push --force origin main",
			want:  Ask,
		},
		{
			name:  "bare subshell promotes allow to ask",
			input: "(ls)",
			want:  Ask,
		},
		{
			name:  "command substitution promotes allow to ask",
			input: "echo $(ls)",
			want:  Ask,
		},
		{
			name:  "logical chain of allowed commands stays allow",
			input: "ls && pwd || echo done",
			want:  Allow,
		},
		{
			name:  "pipeline with one denied command denies the whole input",
			input: "ls | sudo tee /etc/passwd",
			want:  Deny,
		},
		{
			name:  "docker exec without trust configured asks",
			input: "docker exec scratch-1 ls",
			want:  Ask,
		},
		{
			name:  "docker exec against a trusted container allows",
			input: "docker exec scratch-1 ls",
			mutate: func(s *config.Source) {
				s.TrustedDockerContainers = []string{"scratch-*"}
			},
			want: Allow,
		},
		{
			name:  "ssh to a trusted host allows",
			input: "ssh deploy@prod.internal uptime",
			mutate: func(s *config.Source) {
				s.TrustedSSHHosts = []string{"*.internal"}
			},
			want: Allow,
		},
		{
			name:  "kubectl read-only verb allows without a trusted context",
			input: "kubectl get pods --context staging",
			want:  Allow, // "get" is already a read-only verb
		},
		{
			name:  "kubectl delete against a trusted context allows",
			input: "kubectl delete pod foo --context staging",
			mutate: func(s *config.Source) {
				s.TrustedKubectlContexts = []string{"staging"}
			},
			want: Allow,
		},
		{
			name:  "kubectl delete without trust asks",
			input: "kubectl delete pod foo --context staging",
			want:  Ask,
		},
		{
			name:  "unparseable input asks, never denies",
			input: `echo "unterminated`,
			want:  Ask,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEvaluator(t, tt.mutate)
			got := e.EvaluateInput(tt.input)
			if got.Decision != tt.want {
				t.Errorf("EvaluateInput(%q) = %v (reason %q), want %v", tt.input, got.Decision, got.Reason, tt.want)
			}
		})
	}
}

func TestEvaluateInputEmptyAllows(t *testing.T) {
	e := newTestEvaluator(t, nil)
	got := e.EvaluateInput("")
	if got.Decision != Allow {
		t.Errorf("EvaluateInput(\"\") = %v, want Allow (no-op input)", got.Decision)
	}
}

func TestEvaluateInputGlobalDenyWinsOverAlwaysAllow(t *testing.T) {
	e := newTestEvaluator(t, func(s *config.Source) {
		s.AlwaysAllow = append(s.AlwaysAllow, "rm")
	})
	got := e.EvaluateInput("rm -rf /")
	if got.Decision != Deny {
		t.Errorf("global deny should win over alwaysAllow, got %v", got.Decision)
	}
}
