// Package parser turns MiniLang source text into the minilang package's
// own AST, using github.com/alecthomas/participle/v2 for both lexing and
// parsing, the way kanso-lang-kanso builds its grammar.KansoParser.
package parser

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"

	"github.com/LRParser/ProgrammingLanguages"
)

var build = participle.MustBuild[Program](
	participle.Lexer(MiniLangLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// Parse reads a complete MiniLang program from r and returns the
// evaluator's own *minilang.StmtList, ready to hand to minilang.NewProgram.
func Parse(name string, r io.Reader) (*minilang.StmtList, error) {
	tree, err := build.Parse(name, r)
	if err != nil {
		return nil, wrapParseError(err)
	}
	return toStmtList(tree.Stmts), nil
}

// ParseFile opens path and parses it, following the same contract as
// Parse but reporting file-not-found directly rather than through a
// ParseError (a ParseError is reserved for syntax problems, per
// minilang.ParseError's doc comment).
func ParseFile(path string) (*minilang.StmtList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(path, f)
}

// wrapParseError turns participle's own error (which already carries a
// position) into the evaluator's minilang.ParseError, so callers never
// need to import participle themselves to report a syntax error.
func wrapParseError(err error) error {
	if perr, ok := err.(participle.Error); ok {
		pos := perr.Position()
		return &minilang.ParseError{
			Pos:     minilang.Pos{Line: pos.Line, Column: pos.Column},
			Message: perr.Message(),
		}
	}
	return &minilang.ParseError{Message: err.Error()}
}

// FormatError renders err the way cmd/minilang's CLI driver reports a
// syntax error to a terminal: a red headline plus a caret pointing at the
// offending column, mirroring kanso-cli's own error printer.
func FormatError(src string, err error) string {
	perr, ok := err.(*minilang.ParseError)
	if !ok {
		return color.RedString("error: %s", err.Error())
	}
	line := perr.Pos.Line
	col := perr.Pos.Column
	lines := splitLines(src)
	var context string
	if line >= 1 && line <= len(lines) {
		context = lines[line-1]
	}
	caret := fmt.Sprintf("%s%s", repeat(" ", col-1), color.GreenString("^"))
	return fmt.Sprintf("%s\n%s\n%s\n%s",
		color.RedString("syntax error: %s", perr.Message),
		context, caret, perr.Pos.String())
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i, r := range s {
		if r == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	lines = append(lines, s[start:])
	return lines
}

func repeat(s string, n int) string {
	if n <= 0 {
		return ""
	}
	out := make([]byte, 0, n*len(s))
	for i := 0; i < n; i++ {
		out = append(out, s...)
	}
	return string(out)
}
