package opexpr

import (
	"strconv"
	"strings"
)

// node is a node in the binary expression tree.
type node struct {
	kind nodeKind

	// text is the literal text of a constant.
	text string
	// val is the cached value of a constant, valid if ok is set.
	val float64
	ok  bool

	op *Operator

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeConst // text is the literal, value parsed on first eval
	nodeOp    // apply op to left and right
)

func (k nodeKind) String() string {
	switch k {
	case nodeNone:
		return "None"
	case nodeConst:
		return "Const"
	case nodeOp:
		return "Op"
	default:
		return "nodeKind(" + strconv.Itoa(int(k)) + ")"
	}
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

// fmt writes the node with every operation bracketed.
func (n *node) fmt(b *strings.Builder) {
	switch n.kind {
	case nodeConst:
		b.WriteString(n.text)
	case nodeOp:
		b.WriteByte('[')
		n.left.fmt(b)
		b.WriteByte(' ')
		b.WriteString(n.op.id)
		b.WriteByte(' ')
		n.right.fmt(b)
		b.WriteByte(']')
	default:
		panic("opexpr: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

// fmtmin writes the node with only the parentheses needed to preserve its
// grouping. prec is the precedence of the parent operator, and same is whether
// the node sits on the side of its parent that the parent's associativity
// groups toward.
func (n *node) fmtmin(b *strings.Builder, tab *Table, prec int, same bool) error {
	switch n.kind {
	case nodeConst:
		b.WriteString(n.text)
		return nil
	case nodeOp:
		a, err := tab.Assoc(n.op.prec)
		if err != nil {
			return err
		}
		wrap := n.op.prec < prec || n.op.prec == prec && !same
		if wrap {
			b.WriteByte('(')
		}
		if err := n.left.fmtmin(b, tab, n.op.prec, a == Left); err != nil {
			return err
		}
		b.WriteByte(' ')
		b.WriteString(n.op.id)
		b.WriteByte(' ')
		if err := n.right.fmtmin(b, tab, n.op.prec, a != Left); err != nil {
			return err
		}
		if wrap {
			b.WriteByte(')')
		}
		return nil
	default:
		panic("opexpr: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

// depth returns the height of the tree rooted at n.
func (n *node) depth() int {
	if n.kind != nodeOp {
		return 1
	}
	l, r := n.left.depth(), n.right.depth()
	if r > l {
		l = r
	}
	return l + 1
}
