package opexpr

import (
	"math/rand"
	"strings"
	"unicode"
)

// Operation is the function computed by a binary operator.
type Operation func(l, r float64) float64

// Operator is a binary operator registered in a Table.
type Operator struct {
	// id is the text that identifies the operator in expressions.
	id string
	// prec is the precedence level. Lower is less binding.
	prec int
	// op computes the operator's result.
	op Operation
}

// ID returns the operator's identifier.
func (o *Operator) ID() string {
	return o.id
}

// Prec returns the operator's precedence level.
func (o *Operator) Prec() int {
	return o.prec
}

// Apply computes the operator on two operands.
func (o *Operator) Apply(l, r float64) float64 {
	return o.op(l, r)
}

// matches reports whether s begins with the operator's identifier.
func (o *Operator) matches(s string) bool {
	return strings.HasPrefix(s, o.id)
}

// Assoc is the direction in which chains of operators at the same precedence
// level group.
type Assoc int8

const (
	assocNone Assoc = iota
	// Left groups a-b-c as (a-b)-c.
	Left
	// Right groups a^b^c as a^(b^c).
	Right
)

func (a Assoc) String() string {
	switch a {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// Table is a set of binary operators grouped into precedence levels. Each level
// that holds operators must be given an associativity before expressions using
// it are parsed or rendered. A Table is not safe to modify concurrently.
type Table struct {
	ops   []*Operator
	assoc map[int]Assoc
	level int
}

// NewTable creates an empty table whose current precedence level is 0.
func NewTable() *Table {
	return &Table{assoc: make(map[int]Assoc)}
}

// Add registers an operator at the current precedence level. The identifier
// must be non-empty and cannot contain brackets or whitespace.
func (t *Table) Add(id string, op Operation) (*Operator, error) {
	switch {
	case id == "":
		return nil, &IdentError{ID: id, Reason: "empty identifier"}
	case strings.ContainsAny(id, OpenBrackets+CloseBrackets):
		return nil, &IdentError{ID: id, Reason: "identifier contains a bracket"}
	case strings.IndexFunc(id, unicode.IsSpace) >= 0:
		return nil, &IdentError{ID: id, Reason: "identifier contains whitespace"}
	case op == nil:
		return nil, &IdentError{ID: id, Reason: "no operation"}
	}
	o := &Operator{id: id, prec: t.level, op: op}
	t.ops = append(t.ops, o)
	return o, nil
}

// StepUp advances the current precedence level by one. Operators added
// afterward bind more tightly than those already added.
func (t *Table) StepUp() {
	t.level++
}

// Level returns the current precedence level.
func (t *Table) Level() int {
	return t.level
}

// SetAssoc sets the associativity of a precedence level.
func (t *Table) SetAssoc(level int, a Assoc) {
	if a != Left && a != Right {
		panic("opexpr: invalid associativity " + a.String())
	}
	t.assoc[level] = a
}

// SetGroupAssoc sets the associativity of the current precedence level.
func (t *Table) SetGroupAssoc(a Assoc) {
	t.SetAssoc(t.level, a)
}

// Assoc returns the associativity of a precedence level. If none was set, the
// error is an *AssocError.
func (t *Table) Assoc(level int) (Assoc, error) {
	a := t.assoc[level]
	if a == assocNone {
		return assocNone, &AssocError{Level: level}
	}
	return a, nil
}

// BestMatch returns the operator with the longest identifier that is a prefix
// of s. Among equally long identifiers, the first registered wins. If no
// operator matches, the result is nil.
func (t *Table) BestMatch(s string) *Operator {
	var best *Operator
	for _, o := range t.ops {
		if !o.matches(s) {
			continue
		}
		if best == nil || len(o.id) > len(best.id) {
			best = o
		}
	}
	return best
}

// Random returns an operator chosen uniformly from the table, or nil if the
// table is empty.
func (t *Table) Random(rng *rand.Rand) *Operator {
	if len(t.ops) == 0 {
		return nil
	}
	return t.ops[rng.Intn(len(t.ops))]
}

// Operators returns the registered operators in registration order.
func (t *Table) Operators() []*Operator {
	return append(([]*Operator)(nil), t.ops...)
}
