package opexpr

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// tableLexer scans operator table text. An operator name is any run of
// characters other than whitespace and semicolons, except that the names left
// and right are associativity keywords.
var tableLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Assoc", Pattern: `\b(left|right)\b`},
	{Name: "Sep", Pattern: `;`},
	{Name: "Op", Pattern: `[^\s;]+`},
})
