package opexpr

import (
	"errors"
	"strconv"
)

// eval computes the node's value.
func (n *node) eval() (float64, error) {
	switch n.kind {
	case nodeConst:
		return n.num()
	case nodeOp:
		l, err := n.left.eval()
		if err != nil {
			return 0, err
		}
		r, err := n.right.eval()
		if err != nil {
			return 0, err
		}
		return n.op.op(l, r), nil
	default:
		panic("opexpr: invalid tree node " + n.kind.String())
	}
}

// num gets the possibly cached value of a constant from its text.
func (n *node) num() (float64, error) {
	if n.ok {
		return n.val, nil
	}
	v, err := strconv.ParseFloat(n.text, 64)
	switch {
	case err == nil: // do nothing
	case errors.Is(err, strconv.ErrRange):
		// ParseFloat already gives ±Inf or ±0 as appropriate.
	default:
		return 0, &ValueError{Text: n.text, Err: err}
	}
	n.val, n.ok = v, true
	return v, nil
}

// ValueError is an error indicating a constant whose text is not a number.
// ValueError unwraps to the error from strconv.
type ValueError struct {
	// Text is the literal text of the constant.
	Text string
	// Err is the conversion error.
	Err error
}

func (err *ValueError) Error() string {
	return "invalid constant " + strconv.Quote(err.Text)
}

func (err *ValueError) Unwrap() error {
	return err.Err
}
