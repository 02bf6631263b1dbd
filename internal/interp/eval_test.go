package interp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/forklang/internal/diagnostics"
)

func newTestInterpreter() (*Interpreter, *strings.Builder, *diagnostics.Collecting) {
	sink := &diagnostics.Collecting{}
	in := NewInterpreter(sink)
	out := &strings.Builder{}
	in.Out = out
	return in, out, sink
}

func runProgram(t *testing.T, in *Interpreter, src string) Value {
	t.Helper()
	program, err := Parse(src)
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	var last Value = Nil
	for _, stmt := range program {
		last = in.Eval(stmt)
	}
	return last
}

func TestEval_arithmeticAndVariables(t *testing.T) {
	assert := assert.New(t)
	in, _, sink := newTestInterpreter()

	result := runProgram(t, in, "x = 2; y = 3; x * y + 1")

	assert.Empty(sink.Messages)
	assert.Equal("7", result.Display())
}

func TestEval_whileLoop(t *testing.T) {
	assert := assert.New(t)
	in, _, sink := newTestInterpreter()

	result := runProgram(t, in, "i = 0; total = 0; while i < 5 : [ total = total + i; i = i + 1 ]; total")

	assert.Empty(sink.Messages)
	assert.Equal("10", result.Display())
}

func TestEval_userFunctionCall(t *testing.T) {
	assert := assert.New(t)
	in, _, sink := newTestInterpreter()

	result := runProgram(t, in, "fn add(a, b) { a + b }; add(2, 3)")

	assert.Empty(sink.Messages)
	assert.Equal("5", result.Display())
}

func TestEval_recursiveFunction(t *testing.T) {
	assert := assert.New(t)
	in, _, sink := newTestInterpreter()

	result := runProgram(t, in, "fn fib(n) { n < 2 : n, fib(n - 1) + fib(n - 2) }; fib(10)")

	assert.Empty(sink.Messages)
	assert.Equal("55", result.Display())
}

func TestEval_globalAssignmentFromInsideFunction(t *testing.T) {
	assert := assert.New(t)
	in, _, sink := newTestInterpreter()

	result := runProgram(t, in, "counter = 0; fn bump() { counter = counter + 1 }; bump(); bump(); counter")

	assert.Empty(sink.Messages)
	assert.Equal("2", result.Display())
}

func TestEval_undefinedVariable(t *testing.T) {
	assert := assert.New(t)
	in, _, sink := newTestInterpreter()

	result := runProgram(t, in, "x")

	assert.Equal(KindNil, result.Kind())
	assert.Len(sink.Messages, 1)
}

func TestEval_builtins(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect string
	}{
		{name: "dim of a vec literal", input: "dim($[1, 2, 3])", expect: "3"},
		{name: "get", input: "get($[10, 20, 30], 1)", expect: "20"},
		{name: "pop", input: "pop($[1, 2, 3], 1)", expect: "[1,3,]"},
		{name: "str", input: "str(42)", expect: "42"},
		{name: "int truncates a float", input: "int(7.9)", expect: "7"},
		{name: "nil of a value is true", input: "nil(1)", expect: "true"},
		{name: "nil of nil is false", input: "nil(x)", expect: "false"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			in, _, _ := newTestInterpreter()
			result := runProgram(t, in, tc.input)
			assert.Equal(t, tc.expect, result.Display())
		})
	}
}

func TestEval_dispWritesToOut(t *testing.T) {
	assert := assert.New(t)
	in, out, sink := newTestInterpreter()

	runProgram(t, in, `displn("hello")`)

	assert.Empty(sink.Messages)
	assert.Equal("hello\n", out.String())
}

func TestEval_divisionByZeroReportsDiagnosticAndYieldsNil(t *testing.T) {
	assert := assert.New(t)
	in, _, sink := newTestInterpreter()

	result := runProgram(t, in, "1 / 0")

	assert.Equal(KindNil, result.Kind())
	if assert.Len(sink.Messages, 1) {
		assert.Contains(sink.Messages[0], "division by zero")
	}
}

// TestEval_dispArgOrder verifies the intrinsic argument-order property from
// §8: disp receives its arguments in source order.
func TestEval_dispArgOrder(t *testing.T) {
	assert := assert.New(t)
	in, out, sink := newTestInterpreter()

	runProgram(t, in, "disp(1,2,3);")

	assert.Empty(sink.Messages)
	assert.Equal("123", out.String())
}

func TestEval_displnPerArgumentNewline(t *testing.T) {
	assert := assert.New(t)
	in, out, _ := newTestInterpreter()

	runProgram(t, in, `displn(1, 2);`)

	assert.Equal("1\n2\n", out.String())
}

func TestEval_vecWrapsNonListAndPassesListsThrough(t *testing.T) {
	assert := assert.New(t)
	in, _, _ := newTestInterpreter()

	wrapped := runProgram(t, in, "vec(5)")
	assert.Equal("[5,]", wrapped.Display())

	passthrough := runProgram(t, in, "vec($[1, 2])")
	assert.Equal("[1,2,]", passthrough.Display())
}

func TestEval_dimOnStringsAndIntegers(t *testing.T) {
	in, _, _ := newTestInterpreter()

	assert.Equal(t, "5", runProgram(t, in, `dim("hello")`).Display())
	assert.Equal(t, "0", runProgram(t, in, "dim(42)").Display())
}

// TestEval_functionArityMismatchIsTolerated verifies §4.6: extra arguments
// are dropped and missing parameters fall back to global (or Nil), rather
// than erroring.
func TestEval_functionArityMismatchIsTolerated(t *testing.T) {
	assert := assert.New(t)
	in, _, sink := newTestInterpreter()

	extra := runProgram(t, in, "fn one(a) { a }; one(1, 2, 3)")
	assert.Empty(sink.Messages)
	assert.Equal("1", extra.Display())

	missing := runProgram(t, in, "b = 99; fn two(a, b) { a + b }; two(1)")
	assert.Empty(sink.Messages)
	assert.Equal("100", missing.Display())
}

// TestEval_scopeIsolation verifies §8: a variable assigned inside a call and
// not previously global is unobservable after the call returns.
func TestEval_scopeIsolation(t *testing.T) {
	assert := assert.New(t)
	in, _, sink := newTestInterpreter()

	result := runProgram(t, in, "fn setLocal() { local = 1 }; setLocal(); local")

	assert.Equal(KindNil, result.Kind())
	assert.Len(sink.Messages, 1)
}

// TestEval_arithmeticOnNilDoesNotDoubleDiagnose verifies §4.4: "any pair
// involving Nil yields Nil" with no diagnostic of its own, so an unbound
// variable used in arithmetic reports exactly one diagnostic (the undefined
// variable), not a second one from the arithmetic operator.
func TestEval_arithmeticOnNilDoesNotDoubleDiagnose(t *testing.T) {
	assert := assert.New(t)
	in, _, sink := newTestInterpreter()

	result := runProgram(t, in, "x + 1")

	assert.Equal(KindNil, result.Kind())
	assert.Len(sink.Messages, 1)
}

// TestEval_arityMismatchMissingParamDoesNotDoubleDiagnose verifies the same
// totality for a missing function parameter with no global fallback.
func TestEval_arityMismatchMissingParamDoesNotDoubleDiagnose(t *testing.T) {
	assert := assert.New(t)
	in, _, sink := newTestInterpreter()

	result := runProgram(t, in, "fn f(a, b) { a + b }; f(1)")

	assert.Equal(KindNil, result.Kind())
	assert.Len(sink.Messages, 1)
}

func TestEval_comparisonRequiresNumericOperands(t *testing.T) {
	assert := assert.New(t)
	in, _, sink := newTestInterpreter()

	result := runProgram(t, in, `"a" < "b"`)

	assert.Equal(KindNil, result.Kind())
	assert.Len(sink.Messages, 1)
}
