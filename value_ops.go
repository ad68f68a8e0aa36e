package props

import (
	"math"
	"strings"
)

// Equal reports whether v and w hold equal payloads of the same variant.
// Values of different variants are never equal, and Num(NaN) is not equal to
// anything, itself included.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case KindNum:
		return v.n == w.n
	case KindStr:
		return v.s == w.s
	default:
		return v.b == w.b
	}
}

// Compare orders v against w. The second result is false when the two are
// incomparable: different variants, or a NaN on either side. Booleans order
// false before true, strings order bytewise.
func (v Value) Compare(w Value) (int, bool) {
	if v.kind != w.kind {
		return 0, false
	}
	switch v.kind {
	case KindNum:
		if math.IsNaN(float64(v.n)) || math.IsNaN(float64(w.n)) {
			return 0, false
		}
		switch {
		case v.n < w.n:
			return -1, true
		case v.n > w.n:
			return 1, true
		}
		return 0, true
	case KindStr:
		return strings.Compare(v.s, w.s), true
	default:
		switch {
		case v.b == w.b:
			return 0, true
		case w.b:
			return -1, true
		}
		return 1, true
	}
}

// Less reports whether v orders strictly before w. Incomparable values are
// never less than each other.
func (v Value) Less(w Value) bool {
	c, ok := v.Compare(w)
	return ok && c < 0
}

// Arithmetic is defined for every pair of values and always produces a Num.
// When only one operand is a number, sums and differences pass it through
// unchanged (negated for non-number minus number) and products are Num(0).
// Dividing by a non-numeric value is the same as dividing by one. Numbers
// combine with values through Num, e.g. Num(2).Mul(v).

// Add returns v + w.
func (v Value) Add(w Value) Value {
	switch {
	case v.kind == KindNum && w.kind == KindNum:
		return Num(v.n + w.n)
	case v.kind == KindNum:
		return Num(v.n)
	case w.kind == KindNum:
		return Num(w.n)
	}
	return Num(0)
}

// Sub returns v - w.
func (v Value) Sub(w Value) Value {
	switch {
	case v.kind == KindNum && w.kind == KindNum:
		return Num(v.n - w.n)
	case v.kind == KindNum:
		return Num(v.n)
	case w.kind == KindNum:
		return Num(-w.n)
	}
	return Num(0)
}

// Mul returns v * w. Unless both are numbers the result is Num(0), even for
// an infinite or NaN operand.
func (v Value) Mul(w Value) Value {
	if v.kind != KindNum || w.kind != KindNum {
		return Num(0)
	}
	return Num(v.n * w.n)
}

// Div returns v / w. A non-numeric divisor leaves v's number unchanged; a
// non-numeric dividend gives Num(0) whatever the divisor is.
func (v Value) Div(w Value) Value {
	if v.kind != KindNum {
		return Num(0)
	}
	if w.kind != KindNum {
		return Num(v.n)
	}
	return Num(v.n / w.n)
}

// AddAssign sets v to v + w.
func (v *Value) AddAssign(w Value) { *v = v.Add(w) }

// SubAssign sets v to v - w.
func (v *Value) SubAssign(w Value) { *v = v.Sub(w) }

// MulAssign sets v to v * w.
func (v *Value) MulAssign(w Value) { *v = v.Mul(w) }

// DivAssign sets v to v / w.
func (v *Value) DivAssign(w Value) { *v = v.Div(w) }
