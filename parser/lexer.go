package parser

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// MiniLangLexer tokenizes MiniLang source. Identifiers are strictly
// lowercase (IDENT := [a-z]+); keywords like "if" or "define" are matched
// as literal strings in grammar.go's struct tags against the same Ident
// tokens, rather than carved out into their own token type.
var MiniLangLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[a-z]+`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Assign", Pattern: `:=`},
	{Name: "Concat", Pattern: `\|\|`},
	{Name: "Punct", Pattern: `[(),;\[\]+\-*]`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})
