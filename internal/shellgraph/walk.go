package shellgraph

import (
	"fmt"
	"path"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// walker accumulates invocations and taint while descending a parsed
// shell AST, mirroring the teacher's extractFromStmt/extractFromCmd
// recursive-descent shape but without any CWD tracking.
type walker struct {
	commands         []Invocation
	hasSubshell      bool
	subshellCommands []string
}

func (w *walker) walkStmts(stmts []*syntax.Stmt) {
	for _, stmt := range stmts {
		w.walkStmt(stmt)
	}
}

func (w *walker) walkStmt(stmt *syntax.Stmt) {
	if stmt == nil {
		return
	}
	for _, redir := range stmt.Redirs {
		if redir.Hdoc != nil || redir.Op == syntax.WordHdoc {
			w.hasSubshell = true
		}
	}
	if stmt.Cmd != nil {
		w.walkCmd(stmt.Cmd)
	}
}

func (w *walker) walkCmd(cmd syntax.Command) {
	switch c := cmd.(type) {
	case *syntax.CallExpr:
		w.walkCallExpr(c)

	case *syntax.BinaryCmd:
		// Pipe/PipeAll/AndStmt/OrStmt all just sequence two statements;
		// none of them alone make the result unpredictable.
		w.walkStmt(c.X)
		w.walkStmt(c.Y)

	case *syntax.Subshell:
		w.hasSubshell = true
		w.walkStmts(c.Stmts)

	case *syntax.Block:
		w.walkStmts(c.Stmts)

	case *syntax.IfClause:
		// Taint only: a conditional's branches are not statically
		// analyzable in scope, so neither Cond/Then/Else is walked for
		// invocations.
		w.hasSubshell = true

	case *syntax.WhileClause:
		w.hasSubshell = true

	case *syntax.ForClause:
		w.hasSubshell = true

	case *syntax.CaseClause:
		w.hasSubshell = true

	case *syntax.FuncDecl:
		w.hasSubshell = true

	case *syntax.ArithmCmd, *syntax.TestClause, *syntax.DeclClause, *syntax.LetClause:
		// No executable command content to extract.

	case *syntax.CoprocClause:
		w.hasSubshell = true
		if c.Stmt != nil {
			w.walkStmt(c.Stmt)
		}

	case *syntax.TimeClause:
		if c.Stmt != nil {
			w.walkStmt(c.Stmt)
		}
	}
}

func (w *walker) walkCallExpr(c *syntax.CallExpr) {
	envPrefixes := make([]string, 0, len(c.Assigns))
	for _, assign := range c.Assigns {
		value := ""
		if assign.Value != nil {
			value = w.extractWord(assign.Value)
		} else if assign.Array != nil {
			value = "(…)"
		}
		envPrefixes = append(envPrefixes, assign.Name.Value+"="+value)
	}

	if len(c.Args) == 0 {
		// A bare assignment statement ("FOO=bar") runs no command.
		return
	}

	args := make([]string, len(c.Args))
	for i, arg := range c.Args {
		args[i] = w.extractWord(arg)
	}

	head := args[0]
	w.commands = append(w.commands, Invocation{
		Command:     path.Base(head),
		Args:        args[1:],
		EnvPrefixes: envPrefixes,
		Raw:         joinWords(envPrefixes, head, args[1:]),
	})
}

// extractWord flattens a Word to its literal text, recording taint for
// any command substitution encountered along the way.
func (w *walker) extractWord(word *syntax.Word) string {
	var b strings.Builder
	for _, part := range word.Parts {
		b.WriteString(w.extractWordPart(part))
	}
	return b.String()
}

func (w *walker) extractWordPart(part syntax.WordPart) string {
	switch p := part.(type) {
	case *syntax.Lit:
		return p.Value
	case *syntax.SglQuoted:
		return p.Value
	case *syntax.DblQuoted:
		var b strings.Builder
		for _, inner := range p.Parts {
			b.WriteString(w.extractWordPart(inner))
		}
		return b.String()
	case *syntax.ParamExp:
		if p.Param != nil {
			return "$" + p.Param.Value
		}
		return "$?"
	case *syntax.CmdSubst:
		w.hasSubshell = true
		if text := printStmts(p.Stmts); text != "" {
			w.subshellCommands = append(w.subshellCommands, text)
		}
		return "$(…)"
	case *syntax.ArithmExp:
		return "$((…))"
	case *syntax.ProcSubst:
		if p.Op == syntax.CmdIn {
			return "<(…)"
		}
		return ">(…)"
	case *syntax.ExtGlob:
		return fmt.Sprintf("%c(%s)", p.Op, p.Pattern.Value)
	case *syntax.BraceExp:
		parts := make([]string, len(p.Elems))
		for i, elem := range p.Elems {
			parts[i] = w.extractWord(elem)
		}
		return "{" + strings.Join(parts, ",") + "}"
	default:
		return fmt.Sprintf("<%T>", p)
	}
}

// printStmts renders a command substitution's body back to source text
// so it can be surfaced as a SubshellCommand for optional recursive
// evaluation by the caller.
func printStmts(stmts []*syntax.Stmt) string {
	printer := syntax.NewPrinter()
	var b strings.Builder
	for i, stmt := range stmts {
		if i > 0 {
			b.WriteString("; ")
		}
		if err := printer.Print(&b, stmt); err != nil {
			return ""
		}
	}
	return strings.TrimSpace(b.String())
}
