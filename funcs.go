package opexpr

import (
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// StandardOps maps operator names to the operations that ParseTable uses for
// them by default. Callers may copy and extend it.
var StandardOps = map[string]Operation{
	"+":  func(l, r float64) float64 { return l + r },
	"-":  func(l, r float64) float64 { return l - r },
	"*":  func(l, r float64) float64 { return l * r },
	"×":  func(l, r float64) float64 { return l * r },
	"/":  func(l, r float64) float64 { return l / r },
	"÷":  func(l, r float64) float64 { return l / r },
	"%":  math.Mod,
	"^":  Pow,
	"**": Pow,
}

// powprec is the precision in bits used for exponentiation. It leaves enough
// headroom that exact results round exactly to float64.
const powprec = 128

// Pow computes l raised to r. Where math.Pow gives a finite, nonzero result
// for a positive base and fractional exponent, the result is recomputed in
// extended precision. Everything else follows math.Pow, which is exact for
// integer exponents whose results are representable.
func Pow(l, r float64) float64 {
	f := math.Pow(l, r)
	switch {
	case l <= 0, l == 1, r == math.Trunc(r):
		return f
	case f == 0, math.IsInf(f, 0), math.IsNaN(f):
		return f
	}
	x := new(big.Float).SetPrec(powprec).SetFloat64(l)
	y := new(big.Float).SetPrec(powprec).SetFloat64(r)
	z := new(big.Float).SetPrec(powprec)
	bigfloat.Pow(z, x, y)
	f, _ = z.Float64()
	return f
}
