package interp

import "math/big"

// builtinFunc implements one of the intrinsic functions available to every
// forklang program (§4.5). It receives its arguments already evaluated, in
// source order.
type builtinFunc func(in *Interpreter, args []Value) Value

var builtins = map[string]builtinFunc{
	"disp":   biDisp,
	"displn": biDispln,
	"pop":    biPop,
	"get":    biGet,
	"dim":    biDim,
	"vec":    biVec,
	"str":    biStr,
	"int":    biInt,
	"nil":    biNil,
}

// biDisp prints its arguments with no separator and no trailing newline, and
// yields Nil.
func biDisp(in *Interpreter, args []Value) Value {
	for _, a := range args {
		in.out(a.Display())
	}
	return Nil
}

// biDispln prints each of its arguments followed by its own newline, and
// yields Nil.
func biDispln(in *Interpreter, args []Value) Value {
	for _, a := range args {
		in.out(a.Display())
		in.out("\n")
	}
	return Nil
}

// biPop returns its list argument with the element at the given integer
// index removed (§4.5). Calling it with anything other than a list and an
// in-range integer index is an error.
func biPop(in *Interpreter, args []Value) Value {
	if len(args) != 2 {
		return in.fail("pop expects 2 arguments: a list followed by an index")
	}
	lst, ok := args[0].List()
	if !ok {
		return in.fail("pop: first argument is not a list")
	}
	idxVal, ok := args[1].Integer()
	if !ok {
		return in.fail("pop: second argument is not an integer")
	}
	if !idxVal.IsInt64() {
		return in.fail("pop: index out of range")
	}
	idx := idxVal.Int64()
	if idx < 0 || idx >= int64(len(lst)) {
		return in.fail("pop: index %d out of range for list of length %d", idx, len(lst))
	}
	out := make([]Value, 0, len(lst)-1)
	out = append(out, lst[:idx]...)
	out = append(out, lst[idx+1:]...)
	return NewList(out)
}

// biGet returns the element of a list argument at an integer index.
func biGet(in *Interpreter, args []Value) Value {
	if len(args) != 2 {
		return in.fail("get expects 2 arguments, got %d", len(args))
	}
	lst, ok := args[0].List()
	if !ok {
		return in.fail("get: first argument is not a list")
	}
	idxVal, ok := args[1].Integer()
	if !ok {
		return in.fail("get: second argument is not an integer")
	}
	if !idxVal.IsInt64() {
		return in.fail("get: index out of range")
	}
	idx := idxVal.Int64()
	if idx < 0 || idx >= int64(len(lst)) {
		return in.fail("get: index %d out of range for list of length %d", idx, len(lst))
	}
	return lst[idx]
}

// biDim returns the length of a string or list argument as an Integer; every
// other kind (including Integer itself) yields 0 (§4.5).
func biDim(in *Interpreter, args []Value) Value {
	if len(args) != 1 {
		return in.fail("dim expects 1 argument, got %d", len(args))
	}
	switch args[0].kind {
	case KindString:
		return NewInteger(big.NewInt(int64(len(args[0].s))))
	case KindList:
		return NewInteger(big.NewInt(int64(len(args[0].list))))
	default:
		return NewInteger(big.NewInt(0))
	}
}

// biVec wraps its single argument as a 1-element list, passing lists and Nil
// through unchanged (§4.5).
func biVec(in *Interpreter, args []Value) Value {
	if len(args) != 1 {
		return in.fail("vec expects 1 argument, got %d", len(args))
	}
	return args[0].asList()
}

// biStr coerces its single argument to String.
func biStr(in *Interpreter, args []Value) Value {
	if len(args) != 1 {
		return in.fail("str expects 1 argument, got %d", len(args))
	}
	return args[0].asString()
}

// biInt coerces its single argument to Integer.
func biInt(in *Interpreter, args []Value) Value {
	if len(args) != 1 {
		return in.fail("int expects 1 argument, got %d", len(args))
	}
	return args[0].asInteger()
}

// biNil is inverted: it returns true when its argument is NOT Nil. This
// mirrors the reference implementation's nil() intrinsic, which answers
// "is this a usable value" rather than "is this nil".
func biNil(in *Interpreter, args []Value) Value {
	if len(args) != 1 {
		return in.fail("nil expects 1 argument, got %d", len(args))
	}
	return NewBool(args[0].kind != KindNil)
}
