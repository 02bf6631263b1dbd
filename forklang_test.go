package forklang

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/forklang/internal/forkconfig"
)

func runSource(t *testing.T, src string) string {
	t.Helper()

	var out strings.Builder
	rt, err := New(strings.NewReader(""), &out, false, forkconfig.Default())
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	defer rt.Close()

	result, err := rt.RunSource(src)
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	return result.Display()
}

func TestRuntime_endToEndPrograms(t *testing.T) {
	testCases := []struct {
		name   string
		source string
		expect string
	}{
		{
			name:   "fibonacci",
			source: "fn fib(n) { n < 2 : n, fib(n - 1) + fib(n - 2) }; fib(10)",
			expect: "55",
		},
		{
			name:   "while loop accumulation",
			source: "i = 0; total = 0; while i < 10 : [ total = total + i; i = i + 1 ]; total",
			expect: "45",
		},
		{
			name:   "list concatenation",
			source: "$[1, 2] + $[3, 4]",
			expect: "[1,2,3,4,]",
		},
		{
			name:   "string coercion in addition",
			source: `str(1) + "a"`,
			expect: "1a",
		},
		{
			name:   "division by a coerced zero float",
			source: "1 / 0.0",
			expect: "nil",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, runSource(t, tc.source))
		})
	}
}

// runSourceOutput runs src once and returns everything written to stdout by
// disp/displn during evaluation (not the REPL "Result : " line).
func runSourceOutput(t *testing.T, src string) string {
	t.Helper()

	var out strings.Builder
	rt, err := New(strings.NewReader(""), &out, false, forkconfig.Default())
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	defer rt.Close()

	if _, err := rt.RunSource(src); err != nil {
		t.Fatalf("RunSource: %v", err)
	}
	return out.String()
}

// TestRuntime_workedExamples reproduces the literal end-to-end scenarios
// from §8 of the specification verbatim.
func TestRuntime_workedExamples(t *testing.T) {
	testCases := []struct {
		name   string
		source string
		expect string
	}{
		{
			name:   "addition",
			source: "displn(1+2);",
			expect: "3\n",
		},
		{
			name:   "fibonacci with fib(1)=1, fib(2)=2 convention",
			source: "fn fib(x) { x <= 2 : x, fib(x-1) + fib(x-2) };\ndispln(fib(8));",
			expect: "34\n",
		},
		{
			name:   "list literal plus scalars stays list-typed",
			source: "a = $[1,2,3]; a = a + 4 + 5 + 6; displn(a);",
			expect: "[1,2,3,4,5,6,]\n",
		},
		{
			name:   "number coerced to string on concatenation",
			source: `displn("" + 17);`,
			expect: "17\n",
		},
		{
			name:   "fibonacci-like loop",
			source: "a=1; b=1; c=1; while c < 4 : [ displn(a); t = a+b; a = b; b = t; c = c+1; ];",
			expect: "1\n1\n2\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, runSourceOutput(t, tc.source))
		})
	}
}

func TestRuntime_divisionByZeroReportsDiagnosticThenNil(t *testing.T) {
	assert := assert.New(t)

	cfg := forkconfig.Default()
	cfg.Colorize = false

	var out strings.Builder
	rt, err := New(strings.NewReader(""), &out, false, cfg)
	if !assert.NoError(err) {
		return
	}
	defer rt.Close()

	if _, err := rt.RunSource("displn(1/0);"); !assert.NoError(err) {
		return
	}

	assert.Contains(out.String(), "ERR: ")
	assert.True(strings.HasSuffix(out.String(), "nil\n"))
}

func TestRuntime_syntaxErrorReportsDiagnosticThenNilWithoutGoError(t *testing.T) {
	assert := assert.New(t)

	cfg := forkconfig.Default()
	cfg.Colorize = false

	var out strings.Builder
	rt, err := New(strings.NewReader(""), &out, false, cfg)
	if !assert.NoError(err) {
		return
	}
	defer rt.Close()

	result, err := rt.RunSource("(1 + 2")
	if !assert.NoError(err) {
		return
	}

	assert.Equal("nil", result.Display())
	assert.Contains(out.String(), "syntax error")
}

func TestRuntime_printsResultLineInShellMode(t *testing.T) {
	assert := assert.New(t)

	var out strings.Builder
	rt, err := New(strings.NewReader("1 + 1\n"), &out, false, forkconfig.Default())
	if !assert.NoError(err) {
		return
	}
	defer rt.Close()

	if !assert.NoError(rt.RunUntilQuit()) {
		return
	}

	assert.Contains(out.String(), ShellGreeting)
	assert.Contains(out.String(), "Result : 2")
}
