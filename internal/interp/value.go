// Package interp is the core evaluator for forklang: the value model, the
// abstract syntax tree, the lexer and Pratt parser that build it, the
// environment of scope frames and user functions, and the tree-walking
// evaluator that drives it all.
package interp

import (
	"fmt"
	"math/big"
	"strconv"
)

// FloatPrecision is the default mantissa precision, in bits, used for every
// Float value. It matches the precision the reference implementation used
// for its arbitrary-precision binary floats.
const FloatPrecision = 363

// floatPrecision is the mantissa precision actually in effect, overridable
// via SetFloatPrecision before any Float value is constructed.
var floatPrecision uint = FloatPrecision

// SetFloatPrecision overrides the mantissa precision used for every Float
// value constructed afterward. It is a package-level setting, not a
// per-Interpreter one: math/big.Float carries its own precision per value,
// so existing Float values are unaffected, but callers embedding the
// interpreter with more than one desired precision at once should not rely
// on this.
func SetFloatPrecision(bits uint) {
	floatPrecision = bits
}

// Kind is the tag of a Value.
type Kind int

const (
	KindNil Kind = iota
	KindList
	KindString
	KindFloat
	KindInteger
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindList:
		return "list"
	case KindString:
		return "string"
	case KindFloat:
		return "float"
	case KindInteger:
		return "integer"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// isNumeric reports whether k is Integer or Float, the only kinds that
// comparison operators accept (§4.4).
func (k Kind) isNumeric() bool {
	return k == KindInteger || k == KindFloat
}

// strength returns the coercion rank of k. Lower is stronger; see the
// strength ordering in the data model (Nil < List < String < Float <
// Integer < Bool).
func (k Kind) strength() int {
	switch k {
	case KindNil:
		return 0
	case KindList:
		return 1
	case KindString:
		return 2
	case KindFloat:
		return 3
	case KindInteger:
		return 4
	case KindBool:
		return 5
	default:
		panic("unreachable kind")
	}
}

// Value is a single datum in the forklang runtime: a tagged union of Nil,
// List, String, Float, Integer, and Bool. The zero Value is Nil.
type Value struct {
	kind Kind
	i    *big.Int
	f    *big.Float
	s    string
	b    bool
	list []Value
}

// Nil is the absence/error sentinel value.
var Nil = Value{kind: KindNil}

// NewBool returns a Bool value.
func NewBool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// NewString returns a String value.
func NewString(s string) Value {
	return Value{kind: KindString, s: s}
}

// NewInteger returns an Integer value wrapping i. i is not retained; the
// Value takes ownership of a copy.
func NewInteger(i *big.Int) Value {
	return Value{kind: KindInteger, i: new(big.Int).Set(i)}
}

// NewIntegerFromInt64 returns an Integer value equal to n.
func NewIntegerFromInt64(n int64) Value {
	return Value{kind: KindInteger, i: big.NewInt(n)}
}

// NewFloat returns a Float value wrapping f, re-rounded to the precision in
// effect (see SetFloatPrecision).
func NewFloat(f *big.Float) Value {
	r := new(big.Float).SetPrec(floatPrecision)
	r.Set(f)
	return Value{kind: KindFloat, f: r}
}

func zeroFloat() *big.Float {
	return new(big.Float).SetPrec(floatPrecision)
}

// NewList returns a List value. The given slice is not retained.
func NewList(vs []Value) Value {
	cp := make([]Value, len(vs))
	for i, v := range vs {
		cp[i] = v.Clone()
	}
	return Value{kind: KindList, list: cp}
}

// Kind returns the tag of v.
func (v Value) Kind() Kind {
	return v.kind
}

// Clone returns a deep copy of v; lists copy their elements recursively.
// Values form trees, never graphs, so this always terminates.
func (v Value) Clone() Value {
	switch v.kind {
	case KindInteger:
		return Value{kind: KindInteger, i: new(big.Int).Set(v.i)}
	case KindFloat:
		return Value{kind: KindFloat, f: new(big.Float).Copy(v.f)}
	case KindList:
		cp := make([]Value, len(v.list))
		for i, e := range v.list {
			cp[i] = e.Clone()
		}
		return Value{kind: KindList, list: cp}
	default:
		return v
	}
}

// List returns the elements of v if v is a List, else nil, ok=false.
func (v Value) List() ([]Value, bool) {
	if v.kind != KindList {
		return nil, false
	}
	return v.list, true
}

// Integer returns the big.Int of v if v is an Integer, else nil, ok=false.
func (v Value) Integer() (*big.Int, bool) {
	if v.kind != KindInteger {
		return nil, false
	}
	return v.i, true
}

// Float returns the big.Float of v if v is a Float, else nil, ok=false.
func (v Value) Float() (*big.Float, bool) {
	if v.kind != KindFloat {
		return nil, false
	}
	return v.f, true
}

// asKind coerces v to the given rank, following the strength ladder (§3).
// Returns Nil if the coercion is not defined for v's kind.
func (v Value) asKind(k Kind) Value {
	switch k {
	case KindNil:
		return Nil
	case KindList:
		return v.asList()
	case KindString:
		return v.asString()
	case KindFloat:
		return v.asFloat()
	case KindInteger:
		return v.asInteger()
	case KindBool:
		return v.asBoolValue()
	default:
		panic("unreachable kind")
	}
}

// asFloat coerces v to Float, or Nil if not possible.
func (v Value) asFloat() Value {
	switch v.kind {
	case KindFloat:
		return v
	case KindInteger:
		f := zeroFloat()
		f.SetInt(v.i)
		return Value{kind: KindFloat, f: f}
	case KindBool:
		f := zeroFloat()
		if v.b {
			f.SetInt64(1)
		}
		return Value{kind: KindFloat, f: f}
	default:
		return Nil
	}
}

// asInteger coerces v to Integer, or Nil if not possible.
func (v Value) asInteger() Value {
	switch v.kind {
	case KindFloat:
		i, _ := v.f.Int(nil)
		return Value{kind: KindInteger, i: i}
	case KindInteger:
		return v
	case KindBool:
		n := int64(0)
		if v.b {
			n = 1
		}
		return Value{kind: KindInteger, i: big.NewInt(n)}
	default:
		return Nil
	}
}

// asBoolValue coerces v to Bool using the boolean-coercion ladder (§4.4), or
// Nil if v is Nil.
func (v Value) asBoolValue() Value {
	switch v.kind {
	case KindFloat:
		return NewBool(v.f.Sign() > 0)
	case KindInteger:
		return NewBool(v.i.Sign() > 0)
	case KindBool:
		return v
	case KindString:
		return NewBool(len(v.s) > 0)
	case KindList:
		return NewBool(len(v.list) > 0)
	default:
		return Nil
	}
}

// asString coerces v to String, or Nil if v is Nil.
func (v Value) asString() Value {
	if v.kind == KindString {
		return v
	}
	if v.kind == KindNil {
		return Nil
	}
	return NewString(v.Display())
}

// asList wraps v as a 1-element list, passes lists through, and leaves Nil
// as Nil.
func (v Value) asList() Value {
	switch v.kind {
	case KindList:
		return v
	case KindNil:
		return Nil
	default:
		return NewList([]Value{v})
	}
}

// Strongest coerces both v and o to the strongest (numerically smallest
// rank) of their two kinds. If either coercion fails, both results are Nil.
func (v Value) Strongest(o Value) (Value, Value) {
	rank := v.kind.strength()
	if o.kind.strength() < rank {
		rank = o.kind.strength()
	}
	var target Kind
	switch rank {
	case 0:
		target = KindNil
	case 1:
		target = KindList
	case 2:
		target = KindString
	case 3:
		target = KindFloat
	case 4:
		target = KindInteger
	case 5:
		target = KindBool
	}

	a := v.asKind(target)
	b := o.asKind(target)
	if a.kind == KindNil && target != KindNil {
		return Nil, Nil
	}
	if b.kind == KindNil && target != KindNil {
		return Nil, Nil
	}
	return a, b
}

// Bool coerces v to a Go bool per the boolean-coercion ladder. Coercing Nil
// is an error (§4.4).
func (v Value) Bool() (bool, error) {
	bv := v.asBoolValue()
	if bv.kind != KindBool {
		return false, fmt.Errorf("attempt to use nil in a boolean context")
	}
	return bv.b, nil
}

// Display renders v the way disp/displn and the REPL do (§6).
func (v Value) Display() string {
	switch v.kind {
	case KindNil:
		return "nil"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindString:
		return v.s
	case KindInteger:
		return v.i.String()
	case KindFloat:
		return v.f.Text('g', -1)
	case KindList:
		out := "["
		for _, e := range v.list {
			out += e.Display() + ","
		}
		return out + "]"
	default:
		panic("unreachable kind")
	}
}
