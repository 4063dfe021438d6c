package shellgraph

import (
	"regexp"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// maxUnwrapDepth bounds recursive sh -c / bash -c / zsh -c unwrapping,
// mirroring the teacher's bounded CWD-tracking recursion.
const maxUnwrapDepth = 8

var shCInterpreters = map[string]bool{"sh": true, "bash": true, "zsh": true}

// heredocCatOpen matches the opening of a $(cat <<MARKER … idiom. The
// matching MARKER close can't be expressed with RE2 backreferences, so
// preprocessHeredocCat locates the close by hand once this has matched.
var heredocCatOpen = regexp.MustCompile(`\$\(\s*cat\s+<<-?\s*(['"]?)(\w+)(['"]?)`)

// heredocRedir matches any heredoc redirect operator, used to find the
// fallback truncation point after a failed parse. A heredoc in a
// successful parse is detected from the AST instead (see walkStmt).
var heredocRedir = regexp.MustCompile(`<<-?\s*(['"]?)(\w+)(['"]?)`)

// Parse decomposes raw into the atomic invocations it would run,
// without executing or expanding any of them. It never panics.
func Parse(raw string) ParseResult {
	return parseAtDepth(raw, 0)
}

func parseAtDepth(raw string, depth int) ParseResult {
	if strings.TrimSpace(raw) == "" {
		return ParseResult{}
	}

	preprocessed := preprocessHeredocCat(raw)
	file, err := parseProgram(preprocessed)

	var result ParseResult
	switch {
	case err == nil:
		result = walkFile(file)
	default:
		fallback, ok := heredocFallback(raw)
		if !ok {
			return ParseResult{ParseError: true, HasSubshell: true}
		}
		fallback.HasSubshell = true
		result = fallback
	}

	return unwrapShC(result, depth)
}

func parseProgram(src string) (*syntax.File, error) {
	parser := syntax.NewParser(syntax.Variant(syntax.LangBash))
	return parser.Parse(strings.NewReader(src), "")
}

func walkFile(file *syntax.File) ParseResult {
	w := &walker{}
	w.walkStmts(file.Stmts)
	return ParseResult{
		Commands:         w.commands,
		HasSubshell:      w.hasSubshell,
		SubshellCommands: w.subshellCommands,
	}
}

// heredocFallback handles a failed top-level parse: it takes the first
// line of the original input, truncates it at the heredoc operator, and
// re-parses that shorter line on its own. It reports false when the
// first line has no heredoc operator or the truncated line fails too.
func heredocFallback(raw string) (ParseResult, bool) {
	firstLine := raw
	if idx := strings.IndexByte(raw, '\n'); idx >= 0 {
		firstLine = raw[:idx]
	}
	loc := heredocRedir.FindStringIndex(firstLine)
	if loc == nil {
		return ParseResult{}, false
	}
	head := strings.TrimSpace(firstLine[:loc[0]])
	if head == "" {
		return ParseResult{}, false
	}
	file, err := parseProgram(head)
	if err != nil {
		return ParseResult{}, false
	}
	return walkFile(file), true
}

// preprocessHeredocCat rewrites every $(cat <<MARKER ... MARKER) span
// to HeredocPlaceholder before parsing, so the outer command parses
// cleanly without the heredoc body tainting the result.
func preprocessHeredocCat(raw string) string {
	var b strings.Builder
	rest := raw
	for {
		loc := heredocCatOpen.FindStringSubmatchIndex(rest)
		if loc == nil {
			b.WriteString(rest)
			return b.String()
		}
		matchStart, matchEnd := loc[0], loc[1]
		marker := rest[loc[4]:loc[5]]

		afterOpen := rest[matchEnd:]
		nlIdx := strings.IndexByte(afterOpen, '\n')
		if nlIdx < 0 {
			b.WriteString(rest)
			return b.String()
		}
		body := afterOpen[nlIdx+1:]

		markerLine := regexp.MustCompile(`(?m)^[ \t]*` + regexp.QuoteMeta(marker) + `[ \t]*$`)
		endLoc := markerLine.FindStringIndex(body)
		if endLoc == nil {
			b.WriteString(rest)
			return b.String()
		}
		afterMarkerLine := body[endLoc[1]:]

		closeIdx := strings.IndexByte(afterMarkerLine, ')')
		if closeIdx < 0 || strings.TrimSpace(afterMarkerLine[:closeIdx]) != "" {
			b.WriteString(rest)
			return b.String()
		}

		b.WriteString(rest[:matchStart])
		b.WriteString(HeredocPlaceholder)
		rest = afterMarkerLine[closeIdx+1:]
	}
}

// unwrapShC recursively replaces any sh -c / bash -c / zsh -c
// invocation with the invocations parsed from its command string,
// bounded at maxUnwrapDepth so a self-referential wrapper can't loop.
func unwrapShC(result ParseResult, depth int) ParseResult {
	out := ParseResult{
		HasSubshell:      result.HasSubshell,
		SubshellCommands: result.SubshellCommands,
		ParseError:       result.ParseError,
	}
	for _, inv := range result.Commands {
		if !isShCWrapper(inv) {
			out.Commands = append(out.Commands, inv)
			continue
		}
		if depth+1 >= maxUnwrapDepth {
			out.HasSubshell = true
			out.Commands = append(out.Commands, inv)
			continue
		}
		child := parseAtDepth(inv.Args[1], depth+1)
		if child.ParseError {
			out.HasSubshell = true
			out.Commands = append(out.Commands, inv)
			continue
		}
		out.Commands = append(out.Commands, child.Commands...)
		out.HasSubshell = out.HasSubshell || child.HasSubshell
		out.SubshellCommands = append(out.SubshellCommands, child.SubshellCommands...)
	}
	return out
}

func isShCWrapper(inv Invocation) bool {
	return shCInterpreters[inv.Command] && len(inv.Args) >= 2 && inv.Args[0] == "-c"
}
