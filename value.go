package props

import (
	"reflect"
	"strconv"
)

// Kind identifies which variant of a Value is active.
type Kind uint8

const (
	// KindBool is the boolean variant. It is the zero Kind, so the zero Value
	// is Bool(false).
	KindBool Kind = iota
	// KindNum is the 32-bit float variant.
	KindNum
	// KindStr is the string variant.
	KindStr
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindNum:
		return "num"
	case KindStr:
		return "str"
	default:
		return "unknown"
	}
}

// Value is a boolean, number or string.
//
// Exactly one variant is active at a time. The zero Value is Bool(false).
//
// Reads never fail: asking a Value for a type it does not hold returns the
// zero value of that type instead.
//
//	v := props.Str("hello")
//	v.Bool()  // false
//	v.Num()   // 0
//	v.Str()   // "hello"
//
// The mutable accessors BoolMut, NumMut and StrMut are different. When the
// variant does not match, the Value is overwritten with the zero value of the
// requested type before a pointer into it is returned, so the old contents are
// lost:
//
//	v := props.Str("hello")
//	*v.NumMut() += 10
//	// v is now Num(10)
//
// Two values are equal only if they hold equal payloads of the same variant.
// Num(NaN) is equal to nothing.
type Value struct {
	kind Kind
	b    bool
	n    float32
	s    string
}

// Primitive is the set of Go types a Value can be converted from and to.
type Primitive interface {
	~bool | ~float32 | ~float64 | ~string
}

// Bool returns a boolean Value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Num returns a numeric Value.
func Num(n float32) Value {
	return Value{kind: KindNum, n: n}
}

// Float64 returns a numeric Value, narrowing f to 32 bits.
func Float64(f float64) Value {
	return Value{kind: KindNum, n: float32(f)}
}

// Str returns a string Value.
func Str(s string) Value {
	return Value{kind: KindStr, s: s}
}

// From converts any primitive into a Value. Named types are accepted based on
// their underlying kind. It always succeeds.
func From[T Primitive](x T) Value {
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.Float32, reflect.Float64:
		return Float64(rv.Float())
	case reflect.String:
		return Str(rv.String())
	}
	return Value{}
}

// To converts v into T. The second result is false, and the first is the zero
// value of T, when the active variant does not match T.
func To[T Primitive](v Value) (T, bool) {
	var out T
	rv := reflect.ValueOf(&out).Elem()
	switch rv.Kind() {
	case reflect.Bool:
		if v.kind != KindBool {
			return out, false
		}
		rv.SetBool(v.b)
	case reflect.Float32, reflect.Float64:
		if v.kind != KindNum {
			return out, false
		}
		rv.SetFloat(float64(v.n))
	case reflect.String:
		if v.kind != KindStr {
			return out, false
		}
		rv.SetString(v.s)
	}
	return out, true
}

// As converts v into T, returning the zero value of T when the active variant
// does not match.
func As[T Primitive](v Value) T {
	out, _ := To[T](v)
	return out
}

// Kind returns the active variant.
func (v Value) Kind() Kind {
	return v.kind
}

// IsBool reports whether v holds a boolean.
func (v Value) IsBool() bool { return v.kind == KindBool }

// IsNum reports whether v holds a number.
func (v Value) IsNum() bool { return v.kind == KindNum }

// IsStr reports whether v holds a string.
func (v Value) IsStr() bool { return v.kind == KindStr }

// TryBool returns the boolean held by v, if any.
func (v Value) TryBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// TryNum returns the number held by v, if any.
func (v Value) TryNum() (float32, bool) {
	if v.kind != KindNum {
		return 0, false
	}
	return v.n, true
}

// TryStr returns the string held by v, if any.
func (v Value) TryStr() (string, bool) {
	if v.kind != KindStr {
		return "", false
	}
	return v.s, true
}

// Bool returns the boolean held by v, or false.
func (v Value) Bool() bool {
	b, _ := v.TryBool()
	return b
}

// Num returns the number held by v, or 0.
func (v Value) Num() float32 {
	n, _ := v.TryNum()
	return n
}

// Float64 returns the number held by v widened to 64 bits, or 0.
func (v Value) Float64() float64 {
	return float64(v.Num())
}

// Str returns the string held by v, or "".
func (v Value) Str() string {
	s, _ := v.TryStr()
	return s
}

// BoolMut returns a pointer to the boolean held by v. If v holds another
// variant it is first replaced with Bool(false).
func (v *Value) BoolMut() *bool {
	if v.kind != KindBool {
		*v = Value{kind: KindBool}
	}
	return &v.b
}

// NumMut returns a pointer to the number held by v. If v holds another
// variant it is first replaced with Num(0).
func (v *Value) NumMut() *float32 {
	if v.kind != KindNum {
		*v = Value{kind: KindNum}
	}
	return &v.n
}

// StrMut returns a pointer to the string held by v. If v holds another
// variant it is first replaced with Str("").
func (v *Value) StrMut() *string {
	if v.kind != KindStr {
		*v = Value{kind: KindStr}
	}
	return &v.s
}

// String formats the payload without any type decoration: true/false for
// booleans, the shortest exact decimal for numbers and the raw text for strings.
func (v Value) String() string {
	switch v.kind {
	case KindNum:
		return strconv.FormatFloat(float64(v.n), 'f', -1, 32)
	case KindStr:
		return v.s
	default:
		return strconv.FormatBool(v.b)
	}
}

// GoString formats v as the constructor call that would produce it.
func (v Value) GoString() string {
	switch v.kind {
	case KindNum:
		return "props.Num(" + v.String() + ")"
	case KindStr:
		return "props.Str(" + strconv.Quote(v.s) + ")"
	default:
		return "props.Bool(" + v.String() + ")"
	}
}
