package opexpr

import (
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// ArithmeticTable is the text of the table returned by Arithmetic.
const ArithmeticTable = "left + -; left * / %; right ^"

// tableAST is a parsed operator table. Levels are listed from loosest to
// tightest.
type tableAST struct {
	Levels []*levelAST `parser:"@@ ( ';' @@ )*"`
}

type levelAST struct {
	Assoc string   `parser:"@Assoc"`
	Ops   []*opAST `parser:"@@+"`
}

type opAST struct {
	Pos  lexer.Position
	Name string `parser:"@Op"`
}

var tableParser = participle.MustBuild[tableAST](
	participle.Lexer(tableLexer),
	participle.Elide("Whitespace"),
)

// ParseTable creates an operator table from text. Each level is an
// associativity, either left or right, followed by operator names, and levels
// are separated by semicolons with the loosest first. Operator names are
// looked up in ops, or in StandardOps if ops is nil. A name not found there
// gives an *UnknownOperatorError.
func ParseTable(src string, ops map[string]Operation) (*Table, error) {
	if ops == nil {
		ops = StandardOps
	}
	ast, err := tableParser.ParseString("", src)
	if err != nil {
		return nil, err
	}
	t := NewTable()
	for i, lv := range ast.Levels {
		if i > 0 {
			t.StepUp()
		}
		switch lv.Assoc {
		case "left":
			t.SetGroupAssoc(Left)
		case "right":
			t.SetGroupAssoc(Right)
		default:
			panic("opexpr: lexer produced associativity " + lv.Assoc)
		}
		for _, o := range lv.Ops {
			fn := ops[o.Name]
			if fn == nil {
				col := utf8.RuneCountInString(src[:o.Pos.Offset]) + 1
				return nil, &UnknownOperatorError{Col: col, Operator: o.Name}
			}
			if _, err := t.Add(o.Name, fn); err != nil {
				return nil, err
			}
		}
	}
	return t, nil
}

// MustParseTable is like ParseTable but panics on error.
func MustParseTable(src string, ops map[string]Operation) *Table {
	t, err := ParseTable(src, ops)
	if err != nil {
		panic("opexpr: " + err.Error())
	}
	return t
}

// Arithmetic returns a new table with the usual arithmetic operators: + and -
// loosest, then *, / and %, then ^ grouping right.
func Arithmetic() *Table {
	return MustParseTable(ArithmeticTable, nil)
}
