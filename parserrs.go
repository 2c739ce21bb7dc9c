package opexpr

import (
	"strconv"
	"strings"
)

// BracketError is an error indicating unbalanced or malformed brackets in the
// input. It implements InputError.
type BracketError struct {
	// Col is the position of the offending bracket.
	Col int
	// Left is the bracket preceding the problem, or the empty string if a
	// close bracket had no opening bracket.
	Left string
	// Right is the bracket following the problem, or the empty string if an
	// open bracket was never closed.
	Right string
}

func (err *BracketError) Error() string {
	switch {
	case err.Left == "":
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	case err.Right == "":
		return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
	case strings.Contains(CloseBrackets, err.Left):
		return errpos(err.Col, "no operator between brackets "+err.Left+err.Right)
	case matching(err.Left[0], err.Right[0]):
		return errpos(err.Col, "no expression in brackets "+err.Left+err.Right)
	default:
		return errpos(err.Col, "mismatched bracket: "+err.Left+"expr"+err.Right)
	}
}

func (err *BracketError) Pos() int {
	return err.Col
}

// UnknownOperatorError is an error indicating an operator table naming an
// operator that has no known operation. It implements InputError.
type UnknownOperatorError struct {
	// Col is the position of the operator in the table source.
	Col int
	// Operator is the operator name that was not understood.
	Operator string
}

func (err *UnknownOperatorError) Error() string {
	return errpos(err.Col, "unknown operator "+strconv.Quote(err.Operator))
}

func (err *UnknownOperatorError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input text implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the character that caused the error.
	Pos() int
}

var (
	_ InputError = (*BracketError)(nil)
	_ InputError = (*UnknownOperatorError)(nil)
)

// AssocError is a configuration error indicating that a precedence level in
// use has no associativity.
type AssocError struct {
	// Level is the precedence level missing an associativity.
	Level int
}

func (err *AssocError) Error() string {
	return "no associativity for precedence level " + strconv.Itoa(err.Level)
}

// IdentError is a configuration error indicating an operator that cannot be
// added to a table.
type IdentError struct {
	// ID is the rejected operator identifier.
	ID string
	// Reason describes the problem.
	Reason string
}

func (err *IdentError) Error() string {
	return "invalid operator " + strconv.Quote(err.ID) + ": " + err.Reason
}
