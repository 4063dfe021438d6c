package warden

import "errors"

// Sentinel errors for the evaluation-time failure kinds, in the
// teacher's errors.go style. Both surface as a decision (never a
// returned error) from EvaluateInput; they're exported so cmd/warden
// and tests can assert on *why* a given Ask happened.
var (
	// ErrParse indicates the shell grammar rejected the input and no
	// heredoc fallback applied.
	ErrParse = errors.New("unparseable command")

	// ErrEvalTimeout indicates the per-invocation rule walk exceeded
	// its wall-clock guard.
	ErrEvalTimeout = errors.New("evaluation timeout")
)
