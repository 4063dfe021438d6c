package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"warden/internal/config"
	"warden/internal/rules"
	"warden/internal/warden"
	"warden/internal/wardenlog"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// HookInput is the JSON payload Claude Code sends on a PreToolUse hook.
type HookInput struct {
	ToolInput struct {
		Command string `json:"command"`
	} `json:"tool_input"`
}

// response is the JSON document printed to stdout for an allow or ask
// decision. A deny never prints this; it writes its reason to stderr
// and exits 2 instead.
type response struct {
	Decision string `json:"decision"`
	Message  string `json:"message,omitempty"`
}

func main() {
	configPath := flag.String("config", "", "path to an explicit YAML configuration file")
	hookMode := flag.Bool("hook", false, "read Claude Code hook JSON from stdin (extracts tool_input.command)")
	rawMode := flag.Bool("raw", false, "treat stdin as the literal command text, skipping JSON decoding")
	showVersion := flag.Bool("version", false, "print version and exit")
	debugMode := flag.Bool("debug", false, "enable debug logging to stderr and $TMPDIR/warden.log")
	flag.Parse()

	if flag.NArg() > 0 && flag.Arg(0) == "fmt" {
		runFmt(*configPath)
		return
	}

	if *showVersion {
		fmt.Printf("warden %s (commit: %s, built: %s)\n", version, commit, date)
		os.Exit(0)
	}

	if *debugMode {
		wardenlog.Enable("")
	}

	_, merged, err := config.LoadChain(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading config: %v\n", err)
		os.Exit(int(rules.ExitError))
	}

	commandStr, err := readCommand(*hookMode, *rawMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading input: %v\n", err)
		os.Exit(int(rules.ExitError))
	}
	wardenlog.Debugf("input command: %q", commandStr)

	eval := warden.NewEvaluator(merged)
	result := eval.EvaluateInput(commandStr)
	wardenlog.Debugf("result: decision=%s reason=%q command=%q", result.Decision, result.Reason, result.Command)

	emitResult(result)
}

// readCommand extracts the raw command text per the active input mode:
// hook mode decodes the assistant's JSON tool-use payload from stdin;
// raw (and plain) mode treats all of stdin as the literal command.
func readCommand(hookMode, rawMode bool) (string, error) {
	if hookMode {
		var hookInput HookInput
		if err := json.NewDecoder(os.Stdin).Decode(&hookInput); err != nil {
			return "", fmt.Errorf("parsing hook JSON: %w", err)
		}
		return hookInput.ToolInput.Command, nil
	}

	_ = rawMode // raw and plain mode both just read stdin literally
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// emitResult translates a decision into the documented external
// contract: allow and ask print a JSON decision document to stdout and
// exit 0; deny writes its reason to stderr and exits 2.
func emitResult(result warden.Result) {
	switch result.Decision {
	case warden.Allow:
		json.NewEncoder(os.Stdout).Encode(response{Decision: "approve"})
		os.Exit(0)
	case warden.Deny:
		reason := result.Reason
		if reason == "" {
			reason = "denied by warden policy"
		}
		if result.Command != "" {
			reason = result.Command + ": " + reason
		}
		fmt.Fprintln(os.Stderr, reason)
		os.Exit(2)
	default:
		reason := result.Reason
		if reason == "" {
			reason = "no warden rule matched"
		}
		if result.Command != "" {
			reason = result.Command + ": " + reason
		}
		json.NewEncoder(os.Stdout).Encode(response{Decision: "ask", Message: reason})
		os.Exit(0)
	}
}
