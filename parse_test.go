package opexpr

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"testing"
)

// diff finds the first in-order node of n that differs from m, or nil, nil if
// the two trees are equal. If any node is nodeNone, it is returned.
func (n *node) diff(m *node) (*node, *node) {
	if n == nil {
		if m != nil {
			return n, m
		}
		return nil, nil
	}
	if m == nil {
		return n, m
	}
	if n.kind == nodeNone || m.kind == nodeNone {
		return n, m
	}
	if n.kind != m.kind {
		return n, m
	}
	switch n.kind {
	case nodeConst:
		if n.text != m.text {
			return n, m
		}
	case nodeOp:
		if n.op != m.op {
			return n, m
		}
		if d, e := n.left.diff(m.left); d != nil || e != nil {
			return d, e
		}
		if d, e := n.right.diff(m.right); d != nil || e != nil {
			return d, e
		}
	default:
		panic(fmt.Errorf("invalid node kind: n=%+v m=%+v", n, m))
	}
	return nil, nil
}

// testTable is the arithmetic table plus ** at the level of ^ and a string
// concatenation-like .. operator at the loosest level, grouping right.
func testTable() *Table {
	t := NewTable()
	t.SetGroupAssoc(Right)
	t.Add("..", StandardOps["+"])
	t.StepUp()
	t.SetGroupAssoc(Left)
	t.Add("+", StandardOps["+"])
	t.Add("-", StandardOps["-"])
	t.StepUp()
	t.SetGroupAssoc(Left)
	t.Add("*", StandardOps["*"])
	t.Add("/", StandardOps["/"])
	t.Add("×", StandardOps["×"])
	t.StepUp()
	t.SetGroupAssoc(Right)
	t.Add("^", Pow)
	t.Add("**", Pow)
	return t
}

func mustParse(t *testing.T, src string, tab *Table) *node {
	t.Helper()
	p := parser{src: src, tab: tab}
	n, err := p.parse(0, len(src))
	if err != nil {
		t.Fatalf("failed to parse %q: %v", src, err)
	}
	return n
}

func TestParseTrees(t *testing.T) {
	cases := []struct {
		name string
		a, b string
	}{
		{"paren", "(x)", "x"},
		{"square", "[x]", "x"},
		{"curly", "{x}", "x"},
		{"multi", "([{{[((x))]}}])", "x"},
		{"spaces", " ( x ) ", "x"},

		{"add", "x+y", "(x)+(y)"},
		{"sub", "x-y", "(x)-(y)"},
		{"mul", "x*y", "(x)*(y)"},
		{"div", "x/y", "(x)/(y)"},
		{"pow", "x^y", "(x)^(y)"},
		{"pow2", "x**y", "(x)**(y)"},
		{"alt", "x×y", "(x)×(y)"},

		{"add4", "w+x+y+z", "((w+x)+y)+z"},
		{"sub4", "w-x-y-z", "((w-x)-y)-z"},
		{"mixed4", "w-x+y-z", "((w-x)+y)-z"},
		{"mul4", "w*x*y*z", "((w*x)*y)*z"},
		{"div4", "w/x/y/z", "((w/x)/y)/z"},
		{"pow4", "w^x^y^z", "w^(x^(y^z))"},
		{"powmix4", "w^x**y^z", "w^(x**(y^z))"},
		{"cat4", "w..x..y..z", "w..(x..(y..z))"},

		{"desc", "w^x*y+z", "((w^x)*y)+z"},
		{"asc", "w+x*y^z", "w+(x*(y^z))"},
		{"descasc", "w^x*y+z+a*b^c", "(((w^x)*y)+z)+(a*(b^c))"},
		{"ascdesc", "w+x*y^z^a*b+c", "(w+((x*(y^(z^a)))*b))+c"},
		{"catadd", "a+b..c+d", "(a+b)..(c+d)"},
		{"longest", "2**3*4", "(2**3)*4"},
		{"longest-right", "2*3**4", "2*(3**4)"},
		{"grouped", "(w+x)*(y-z)", "[w+x]*{y-z}"},
		{"deep", "((1+2)*(3+4))^5", "[(1+2)*(3+4)]^5"},

		{"spaced", "5 - 2 - 1", "(5-2)-1"},
		{"bracketed", "[[5 - 2] - 1]", "(5-2)-1"},
		{"tabs", "\t5\t-\t2\t", "5-2"},
	}
	tab := testTable()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := mustParse(t, c.a, tab)
			b := mustParse(t, c.b, tab)
			d, e := a.diff(b)
			if d != nil || e != nil {
				t.Errorf("mismatched tree:\n\t%q parses %v has %v\n\t%q parses %v has %v", c.a, a, d, c.b, b, e)
			}
		})
	}
}

func TestParseExact(t *testing.T) {
	tab := testTable()
	ops := make(map[string]*Operator)
	for _, o := range tab.Operators() {
		ops[o.ID()] = o
	}
	cases := []struct {
		name string
		src  string
		n    *node
	}{
		{
			name: "const",
			src:  "42",
			n:    &node{kind: nodeConst, text: "42"},
		},
		{
			name: "const-paren",
			src:  "(42)",
			n:    &node{kind: nodeConst, text: "42"},
		},
		{
			name: "unvalidated",
			src:  "abc",
			n:    &node{kind: nodeConst, text: "abc"},
		},
		{
			name: "no-operand",
			src:  "2+",
			n: &node{
				kind:  nodeOp,
				op:    ops["+"],
				left:  &node{kind: nodeConst, text: "2"},
				right: &node{kind: nodeConst, text: ""},
			},
		},
		{
			name: "longest",
			src:  "2**3",
			n: &node{
				kind:  nodeOp,
				op:    ops["**"],
				left:  &node{kind: nodeConst, text: "2"},
				right: &node{kind: nodeConst, text: "3"},
			},
		},
		{
			name: "sub3",
			src:  "5-2-1",
			n: &node{
				kind: nodeOp,
				op:   ops["-"],
				left: &node{
					kind:  nodeOp,
					op:    ops["-"],
					left:  &node{kind: nodeConst, text: "5"},
					right: &node{kind: nodeConst, text: "2"},
				},
				right: &node{kind: nodeConst, text: "1"},
			},
		},
		{
			name: "pow3",
			src:  "2^3^2",
			n: &node{
				kind: nodeOp,
				op:   ops["^"],
				left: &node{kind: nodeConst, text: "2"},
				right: &node{
					kind:  nodeOp,
					op:    ops["^"],
					left:  &node{kind: nodeConst, text: "3"},
					right: &node{kind: nodeConst, text: "2"},
				},
			},
		},
		{
			name: "adjacent-text",
			src:  "(1)2",
			n:    &node{kind: nodeConst, text: "(1)2"},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			n := mustParse(t, c.src, tab)
			d, e := n.diff(c.n)
			if d != nil || e != nil {
				t.Errorf("mismatched tree:\n\twant %v which has %v\n\tgot  %v which has %v from %q", c.n, e, n, d, c.src)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		col  int
		res  []string
	}{
		{"unclosed", "(2+3", 1, []string{`(?i)\bopen bracket\b`, `\(`}},
		{"unopened", "2+3)", 4, []string{`(?i)\bclose bracket\b`, `\)`}},
		{"adjacent", "(2)(3)", 4, []string{`(?i)\boperator\b`, `\)\(`}},
		{"adjacent-spaced", "(2) (3)", 5, []string{`(?i)\boperator\b`, `\)\(`}},
		{"adjacent-nested", "((1)[2])", 5, []string{`(?i)\boperator\b`, `\)\[`}},
		{"empty", "()", 2, []string{`(?i)\bno expression\b`, `\(\)`}},
		{"empty-spaced", "1+( )", 5, []string{`(?i)\bno expression\b`}},
		{"mismatch", "(2+3]", 5, []string{`(?i)\bmismatched\b`, `\(`, `]`}},
		{"outermost", "1+(2*(3)", 3, []string{`(?i)\bopen bracket\b`}},
		{"double-open", "((1)", 1, []string{`(?i)\bopen bracket\b`}},
		{"runes", "2×(3", 3, []string{`(?i)\bopen bracket\b`}},
		{"runes-close", "2×3×4)", 6, []string{`(?i)\bclose bracket\b`}},
		{"close-first", ")1(", 1, []string{`(?i)\bclose bracket\b`}},
	}
	tab := testTable()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := parser{src: c.src, tab: tab}
			n, err := p.parse(0, len(c.src))
			if n != nil {
				t.Errorf("%q parsed non-nil to %v", c.src, n)
			}
			be, ok := err.(*BracketError)
			if !ok {
				t.Fatalf("wrong error type from %q: want *BracketError, got %T", c.src, err)
			}
			if be.Pos() != c.col {
				t.Errorf("wrong position from %q: want %d, got %d", c.src, c.col, be.Pos())
			}
			msg := err.Error()
			for _, re := range c.res {
				if !regexp.MustCompile(re).MatchString(msg) {
					t.Errorf("error message %q does not match %s", msg, re)
				}
			}
		})
	}
}

func TestParseAssocError(t *testing.T) {
	tab := NewTable()
	tab.SetGroupAssoc(Left)
	tab.Add("+", StandardOps["+"])
	tab.StepUp()
	tab.Add("*", StandardOps["*"])
	cases := []struct {
		name  string
		src   string
		level int
	}{
		{"mul", "2*3", 1},
		{"nested", "1+(2*3)", 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse(c.src, tab)
			ae, ok := err.(*AssocError)
			if !ok {
				t.Fatalf("wrong error type from %q: want *AssocError, got %T (%v)", c.src, err, err)
			}
			if ae.Level != c.level {
				t.Errorf("wrong level from %q: want %d, got %d", c.src, c.level, ae.Level)
			}
			if !strings.Contains(err.Error(), "associativity") {
				t.Errorf("error message %q doesn't mention associativity", err.Error())
			}
		})
	}
	// The level with an associativity is fine.
	if _, err := Parse("1+2", tab); err != nil {
		t.Errorf("1+2 failed to parse: %v", err)
	}
}

func TestParseLeavesTree(t *testing.T) {
	tr, err := Parse("1+2", testTable())
	if err != nil {
		t.Fatal(err)
	}
	old := tr.root
	if err := tr.Parse("(1+2"); err == nil {
		t.Fatal("no error from (1+2")
	}
	if tr.root != old {
		t.Errorf("failed parse replaced tree %v with %v", old, tr.root)
	}
}

func TestParseErrorTypes(t *testing.T) {
	cases := []struct {
		src string
		err error
	}{
		{"(2+3", new(BracketError)},
		{"2+3)", new(BracketError)},
		{"2+3", nil},
		{"abc", nil},
	}
	tab := testTable()
	for _, c := range cases {
		_, err := Parse(c.src, tab)
		if reflect.TypeOf(err) != reflect.TypeOf(c.err) {
			t.Errorf("wrong error type from %q: want %T, got %T", c.src, c.err, err)
		}
	}
}

func BenchmarkParse(b *testing.B) {
	cases := []struct {
		name string
		src  string
	}{
		{"descasc", "w^x*y+z+a*b^c"},
		{"descasc-parens", "(((w^x)*y)+z)+a*(b^c)"},
		{"ascdesc", "w+x*y^z^a*b+c"},
		{"ascdesc-parens", "w+((x*(y^(z^a)))*b)+c"},
		{"longest", "1**2**3**4**5**6"},
	}
	tab := testTable()
	for _, c := range cases {
		b.Run(c.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				Parse(c.src, tab)
			}
		})
	}
}
