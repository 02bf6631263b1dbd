package interp

import (
	"fmt"
	"io"
	"os"

	"github.com/dekarrin/forklang/internal/diagnostics"
)

// Interpreter walks a parsed program against an Environment, reporting
// failures to a diagnostics.Sink instead of unwinding (§5), and writing
// disp/displn output to Out.
type Interpreter struct {
	Env  *Environment
	Sink diagnostics.Sink
	Out  io.Writer
}

// NewInterpreter returns an Interpreter with a fresh global Environment,
// printing disp/displn output to stdout.
func NewInterpreter(sink diagnostics.Sink) *Interpreter {
	return &Interpreter{Env: NewEnvironment(), Sink: sink, Out: os.Stdout}
}

func (in *Interpreter) fail(format string, args ...any) Value {
	in.Sink.Errorf(format, args...)
	return Nil
}

func (in *Interpreter) out(s string) {
	io.WriteString(in.Out, s)
}

// Eval evaluates a single top-level expression and returns its value.
func (in *Interpreter) Eval(n *Node) Value {
	switch n.Kind {
	case NodeLiteral:
		return n.Lit

	case NodeGet:
		v, ok := in.Env.Fetch(n.Name)
		if !ok {
			return in.fail("undefined variable %q", n.Name)
		}
		return v

	case NodeVecLiteral:
		elems := make([]Value, len(n.Children))
		for i, c := range n.Children {
			elems[i] = in.Eval(c)
		}
		return NewList(elems)

	case NodeFunDef:
		in.Env.DefineFunction(n.Name, n.Params, n.Body)
		return Nil

	case NodeSet:
		v := in.Eval(n.Body)
		in.Env.PushVal(n.Name, v)
		return Nil

	case NodeWhile:
		var last Value
		for {
			cond, err := in.Eval(n.Cond).Bool()
			if err != nil {
				in.fail("while condition: %s", err)
			}
			if !cond {
				break
			}
			last = in.Eval(n.Body)
		}
		return last

	case NodeExprList:
		var last Value = Nil
		for _, c := range n.Children {
			last = in.Eval(c)
		}
		return last

	case NodeIf:
		cond, err := in.Eval(n.Cond).Bool()
		if err != nil {
			in.fail("if condition: %s", err)
		}
		if cond {
			return in.Eval(n.Body)
		}
		if n.Else != nil {
			return in.Eval(n.Else)
		}
		return Nil

	case NodeCall:
		return in.evalCall(n)

	case NodeFork:
		return in.evalFork(n)

	default:
		panic(fmt.Sprintf("unhandled node kind %v", n.Kind))
	}
}

func (in *Interpreter) evalFork(n *Node) Value {
	left := in.Eval(n.A)
	right := in.Eval(n.B)

	switch n.Op {
	case ">", "<", "<=", ">=", "==", "!=":
		c, err := left.Compare(right)
		if err != nil {
			return in.fail("%s", err)
		}
		switch n.Op {
		case ">":
			return NewBool(c > 0)
		case "<":
			return NewBool(c < 0)
		case "<=":
			return NewBool(c <= 0)
		case ">=":
			return NewBool(c >= 0)
		case "==":
			return NewBool(c == 0)
		case "!=":
			return NewBool(c != 0)
		}
	}

	var (
		res Value
		err error
	)
	switch n.Op {
	case "+":
		res, err = left.Add(right)
	case "-":
		res, err = left.Sub(right)
	case "*":
		res, err = left.Mul(right)
	case "/":
		res, err = left.Div(right)
	case "%":
		res, err = left.Mod(right)
	case "^":
		res, err = left.Pow(right)
	default:
		panic("unknown fork operator " + n.Op)
	}
	if err != nil {
		return in.fail("%s", err)
	}
	return res
}

// evalCall evaluates a call's arguments (in source order) and dispatches to
// a builtin if n.Name names one, else to a user-defined function.
func (in *Interpreter) evalCall(n *Node) Value {
	args := make([]Value, len(n.Children))
	for i, c := range n.Children {
		args[i] = in.Eval(c)
	}

	if fn, ok := builtins[n.Name]; ok {
		return fn(in, args)
	}

	fdef, ok := in.Env.LookupFunction(n.Name)
	if !ok {
		return in.fail("undefined function %q", n.Name)
	}

	// Parameter count mismatches are silently tolerated (§4.6): excess
	// arguments are dropped, and parameters past the end of args are simply
	// never bound in the fresh frame (reads fall back to global, or Nil).
	bound := len(fdef.params)
	if len(args) < bound {
		bound = len(args)
	}

	in.Env.PushEnv()
	for i := 0; i < bound; i++ {
		in.Env.ForcePush(fdef.params[i], args[i])
	}
	result := in.Eval(fdef.body)
	in.Env.PopEnv()

	return result
}
