package opexpr

import (
	"math/rand"
	"strings"
)

// Tree is an expression tree together with the operator table used to build
// and render it. A Tree is not safe for concurrent use, including concurrent
// calls to Eval, because constants cache their values.
type Tree struct {
	tab  *Table
	root *node
}

// New creates an empty tree using the operators in tab. The tree must be
// filled by Parse or Randomize before it is evaluated or rendered.
func New(tab *Table) *Tree {
	return &Tree{tab: tab}
}

// Parse parses an expression and creates a tree from it.
func Parse(src string, tab *Table) (*Tree, error) {
	t := New(tab)
	if err := t.Parse(src); err != nil {
		return nil, err
	}
	return t, nil
}

// Random creates a random tree with at most maxDepth levels.
func Random(rng *rand.Rand, tab *Table, maxDepth int) *Tree {
	t := New(tab)
	t.Randomize(rng, maxDepth)
	return t
}

// EvalString is a shortcut to parse and evaluate an expression.
func EvalString(src string, tab *Table) (float64, error) {
	t, err := Parse(src, tab)
	if err != nil {
		return 0, err
	}
	return t.Eval()
}

// Parse replaces the tree with one parsed from src. Constants are not checked
// until they are evaluated. If there is an error, the tree is unchanged. Errors
// from malformed brackets are *BracketError; if an operator's precedence level
// has no associativity, the error is *AssocError.
func (t *Tree) Parse(src string) error {
	p := parser{src: src, tab: t.tab}
	n, err := p.parse(0, len(src))
	if err != nil {
		return err
	}
	t.root = n
	return nil
}

// Eval computes the value of the expression. If a constant is not a valid
// number, the error is a *ValueError. Panics if the tree is empty.
func (t *Tree) Eval() (float64, error) {
	t.check("Eval")
	return t.root.eval()
}

// Parenthesize renders the expression with every operation enclosed in square
// brackets. Panics if the tree is empty.
func (t *Tree) Parenthesize() string {
	t.check("Parenthesize")
	return t.root.String()
}

// Minimal renders the expression with only the parentheses required to
// preserve its grouping. Panics if the tree is empty.
func (t *Tree) Minimal() (string, error) {
	t.check("Minimal")
	var b strings.Builder
	// The root has no parent, so it behaves as if its parent were looser than
	// any operator.
	if err := t.root.fmtmin(&b, t.tab, -1, false); err != nil {
		return "", err
	}
	return b.String(), nil
}

// String is the same as Parenthesize, except it returns "<empty>" if the tree
// is empty.
func (t *Tree) String() string {
	if t.root == nil {
		return "<empty>"
	}
	return t.root.String()
}

// Depth returns the number of levels in the tree, or 0 if it is empty.
func (t *Tree) Depth() int {
	if t.root == nil {
		return 0
	}
	return t.root.depth()
}

// Table returns the tree's operator table.
func (t *Tree) Table() *Table {
	return t.tab
}

func (t *Tree) check(method string) {
	if t.root == nil {
		panic("opexpr: " + method + " on empty Tree")
	}
}
