package opexpr

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// parser splits expressions at their loosest operators. It holds only
// immutable data; every intermediate result lives in the call that made it.
type parser struct {
	// src is the entire input. Subexpressions are ranges of it, so that error
	// positions always refer to the original text.
	src string
	tab *Table
}

// OpenBrackets and CloseBrackets contain the characters which group
// expressions. The bracket at index k in OpenBrackets is matched by the bracket
// at index k in CloseBrackets.
const (
	OpenBrackets  = "([{"
	CloseBrackets = ")]}"
)

// matching reports whether l and r are an open and close bracket of the same
// kind.
func matching(l, r byte) bool {
	k := strings.IndexByte(OpenBrackets, l)
	return k >= 0 && CloseBrackets[k] == r
}

// match is an operator found outside brackets at byte offset pos of src.
type match struct {
	pos int
	op  *Operator
}

// parse parses src[lo:hi] into a tree.
func (p *parser) parse(lo, hi int) (*node, error) {
	lo, hi = p.trim(lo, hi)
	s := p.src[lo:hi]
	var (
		matches []match
		// open holds the offsets in s of brackets not yet closed.
		open []int
		// wrapped is whether a single bracket pair encloses all of s.
		wrapped bool
		// last is the last bracket seen, or 0 if anything else has been seen
		// since, ignoring whitespace.
		last byte
	)
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case strings.IndexByte(OpenBrackets, c) >= 0:
			if strings.IndexByte(CloseBrackets, last) >= 0 {
				return nil, &BracketError{Col: p.col(lo + i), Left: string(last), Right: string(c)}
			}
			open = append(open, i)
			last = c
			i++
			continue
		case strings.IndexByte(CloseBrackets, c) >= 0:
			if strings.IndexByte(OpenBrackets, last) >= 0 {
				return nil, &BracketError{Col: p.col(lo + i), Left: string(last), Right: string(c)}
			}
			if len(open) == 0 {
				return nil, &BracketError{Col: p.col(lo + i), Right: string(c)}
			}
			k := open[len(open)-1]
			if !matching(s[k], c) {
				return nil, &BracketError{Col: p.col(lo + i), Left: string(s[k]), Right: string(c)}
			}
			open = open[:len(open)-1]
			wrapped = len(open) == 0 && k == 0 && i == len(s)-1
			last = c
			i++
			continue
		}
		r, sz := utf8.DecodeRuneInString(s[i:])
		if !unicode.IsSpace(r) {
			last = 0
		}
		if len(open) > 0 {
			// Operators inside brackets can't be at the top of the tree.
			i += sz
			continue
		}
		op := p.tab.BestMatch(s[i:])
		if op == nil {
			i += sz
			continue
		}
		matches = append(matches, match{pos: lo + i, op: op})
		i += len(op.id)
	}
	if len(open) > 0 {
		// Report the outermost bracket that was never closed.
		return nil, &BracketError{Col: p.col(lo + open[0]), Left: string(s[open[0]])}
	}

	if len(matches) == 0 {
		if wrapped {
			return p.parse(lo+1, hi-1)
		}
		return &node{kind: nodeConst, text: s}, nil
	}

	best, err := p.split(matches)
	if err != nil {
		return nil, err
	}
	left, err := p.parse(lo, best.pos)
	if err != nil {
		return nil, err
	}
	right, err := p.parse(best.pos+len(best.op.id), hi)
	if err != nil {
		return nil, err
	}
	return &node{kind: nodeOp, op: best.op, left: left, right: right}, nil
}

// split chooses the match that goes at the top of the tree: the last of the
// loosest operators if they group left, otherwise the first.
func (p *parser) split(matches []match) (match, error) {
	prec := matches[0].op.prec
	for _, m := range matches[1:] {
		if m.op.prec < prec {
			prec = m.op.prec
		}
	}
	a, err := p.tab.Assoc(prec)
	if err != nil {
		return match{}, err
	}
	if a == Left {
		for i := len(matches) - 1; i >= 0; i-- {
			if matches[i].op.prec == prec {
				return matches[i], nil
			}
		}
	} else {
		for _, m := range matches {
			if m.op.prec == prec {
				return m, nil
			}
		}
	}
	panic("opexpr: no match at minimum precedence")
}

// trim narrows src[lo:hi] to exclude leading and trailing whitespace.
func (p *parser) trim(lo, hi int) (int, int) {
	for lo < hi {
		r, sz := utf8.DecodeRuneInString(p.src[lo:hi])
		if !unicode.IsSpace(r) {
			break
		}
		lo += sz
	}
	for hi > lo {
		r, sz := utf8.DecodeLastRuneInString(p.src[lo:hi])
		if !unicode.IsSpace(r) {
			break
		}
		hi -= sz
	}
	return lo, hi
}

// col converts a byte offset in src to a 1-based rune position.
func (p *parser) col(off int) int {
	return utf8.RuneCountInString(p.src[:off]) + 1
}
