package interp

import (
	"errors"
	"fmt"
	"math"
	"math/big"
)

// Add implements the binary `+` operator (§4.4). Strings and lists
// concatenate; numbers add; bools are not addable.
func (v Value) Add(o Value) (Value, error) {
	a, b := v.Strongest(o)
	switch a.kind {
	case KindNil:
		return Nil, nil
	case KindList:
		return NewList(append(append([]Value{}, a.list...), b.list...)), nil
	case KindString:
		return NewString(a.s + b.s), nil
	case KindFloat:
		r := zeroFloat()
		r.Add(a.f, b.f)
		return Value{kind: KindFloat, f: r}, nil
	case KindInteger:
		r := new(big.Int).Add(a.i, b.i)
		return Value{kind: KindInteger, i: r}, nil
	case KindBool:
		return Nil, fmt.Errorf("cannot add booleans")
	default:
		panic("unreachable kind")
	}
}

// Sub implements the binary `-` operator. Lists are not subtractable.
func (v Value) Sub(o Value) (Value, error) {
	a, b := v.Strongest(o)
	switch a.kind {
	case KindFloat:
		r := zeroFloat()
		r.Sub(a.f, b.f)
		return Value{kind: KindFloat, f: r}, nil
	case KindInteger:
		r := new(big.Int).Sub(a.i, b.i)
		return Value{kind: KindInteger, i: r}, nil
	case KindNil:
		return Nil, nil
	default:
		return Nil, fmt.Errorf("cannot subtract %s and %s", v.kind, o.kind)
	}
}

// Mul implements the binary `*` operator.
func (v Value) Mul(o Value) (Value, error) {
	a, b := v.Strongest(o)
	switch a.kind {
	case KindFloat:
		r := zeroFloat()
		r.Mul(a.f, b.f)
		return Value{kind: KindFloat, f: r}, nil
	case KindInteger:
		r := new(big.Int).Mul(a.i, b.i)
		return Value{kind: KindInteger, i: r}, nil
	case KindNil:
		return Nil, nil
	default:
		return Nil, fmt.Errorf("cannot multiply %s and %s", v.kind, o.kind)
	}
}

// Div implements the binary `/` operator. Integer division truncates toward
// zero; dividing by zero is an error at any numeric kind.
func (v Value) Div(o Value) (Value, error) {
	a, b := v.Strongest(o)
	switch a.kind {
	case KindFloat:
		if b.f.Sign() == 0 {
			return Nil, fmt.Errorf("division by zero!")
		}
		r := zeroFloat()
		r.Quo(a.f, b.f)
		return Value{kind: KindFloat, f: r}, nil
	case KindInteger:
		if b.i.Sign() == 0 {
			return Nil, fmt.Errorf("division by zero!")
		}
		r := new(big.Int).Quo(a.i, b.i)
		return Value{kind: KindInteger, i: r}, nil
	case KindNil:
		return Nil, nil
	default:
		return Nil, fmt.Errorf("cannot divide %s and %s", v.kind, o.kind)
	}
}

// Mod implements the binary `%` operator.
func (v Value) Mod(o Value) (Value, error) {
	a, b := v.Strongest(o)
	switch a.kind {
	case KindFloat:
		if b.f.Sign() == 0 {
			return Nil, fmt.Errorf("division by zero!")
		}
		q := zeroFloat()
		q.Quo(a.f, b.f)
		qi, _ := q.Int(nil)
		qf := zeroFloat()
		qf.SetInt(qi)
		prod := zeroFloat()
		prod.Mul(qf, b.f)
		r := zeroFloat()
		r.Sub(a.f, prod)
		return Value{kind: KindFloat, f: r}, nil
	case KindInteger:
		if b.i.Sign() == 0 {
			return Nil, fmt.Errorf("division by zero!")
		}
		r := new(big.Int).Rem(a.i, b.i)
		return Value{kind: KindInteger, i: r}, nil
	case KindNil:
		return Nil, nil
	default:
		return Nil, fmt.Errorf("cannot modulo %s and %s", v.kind, o.kind)
	}
}

// exponentErr is the diagnostic reported when an integer `^` exponent
// doesn't fit an unsigned 32-bit integer (§4.4), matching the reference
// implementation's suggestion to cast to float instead.
const exponentErr = "Exponent too big! (Or Small). To bypass this error first convert to float using float(arg)."

// Pow implements the binary `^` operator. Integer bases require the
// exponent to fit an unsigned 32-bit integer; float exponentiation accepts
// any real exponent, computed via float64 (math/big has no transcendental
// pow of its own).
func (v Value) Pow(o Value) (Value, error) {
	a, b := v.Strongest(o)
	switch a.kind {
	case KindFloat:
		base, _ := a.f.Float64()
		exp, _ := b.f.Float64()
		result := math.Pow(base, exp)
		r := zeroFloat()
		r.SetFloat64(result)
		return Value{kind: KindFloat, f: r}, nil
	case KindInteger:
		if b.i.Sign() < 0 || !b.i.IsUint64() || b.i.Cmp(maxUint32) > 0 {
			return Nil, errors.New(exponentErr)
		}
		r := new(big.Int).Exp(a.i, b.i, nil)
		return Value{kind: KindInteger, i: r}, nil
	case KindNil:
		return Nil, nil
	default:
		return Nil, fmt.Errorf("cannot raise %s to the power of %s", v.kind, o.kind)
	}
}

var maxUint32 = big.NewInt(1<<32 - 1)

// Compare implements the comparison operators (`> < <= >= == !=`, §4.4). Both
// operands must be numeric (Integer or Float); if either is Float, both are
// promoted to Float, otherwise they are compared as integers. Any other pair
// of kinds is not comparable and yields an error. It returns -1, 0, or 1 the
// way [big.Int.Cmp] does.
func (v Value) Compare(o Value) (int, error) {
	if !v.kind.isNumeric() || !o.kind.isNumeric() {
		return 0, fmt.Errorf("cannot compare %s and %s", v.kind, o.kind)
	}
	if v.kind == KindFloat || o.kind == KindFloat {
		a := v.asFloat()
		b := o.asFloat()
		return a.f.Cmp(b.f), nil
	}
	a := v.asInteger()
	b := o.asInteger()
	return a.i.Cmp(b.i), nil
}
