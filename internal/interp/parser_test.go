package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse_shapes(t *testing.T) {
	testCases := []struct {
		name       string
		input      string
		expectKind NodeKind
	}{
		{name: "literal", input: "1", expectKind: NodeLiteral},
		{name: "get", input: "x", expectKind: NodeGet},
		{name: "set", input: "x = 1", expectKind: NodeSet},
		{name: "vec literal", input: "$[1, 2, 3]", expectKind: NodeVecLiteral},
		{name: "expr list block", input: "[x; y]", expectKind: NodeExprList},
		{name: "call", input: "foo(1, 2)", expectKind: NodeCall},
		{name: "fun def", input: "fn foo(a, b) [ a + b ]", expectKind: NodeFunDef},
		{name: "while", input: "while x : x", expectKind: NodeWhile},
		{name: "conditional", input: "{ x < 1 : 1, 2 }", expectKind: NodeIf},
		{name: "binary op", input: "1 + 2", expectKind: NodeFork},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			program, err := Parse(tc.input)
			if !assert.NoError(err) {
				return
			}
			if !assert.Len(program, 1) {
				return
			}
			assert.Equal(tc.expectKind, program[0].Kind)
		})
	}
}

func TestParse_precedence(t *testing.T) {
	assert := assert.New(t)

	program, err := Parse("1 + 2 * 3")
	if !assert.NoError(err) {
		return
	}
	if !assert.Len(program, 1) {
		return
	}

	root := program[0]
	assert.Equal(NodeFork, root.Kind)
	assert.Equal("+", root.Op)
	assert.Equal(NodeLiteral, root.A.Kind)
	assert.Equal(NodeFork, root.B.Kind)
	assert.Equal("*", root.B.Op)
}

func TestParse_assignmentIsRightAssociative(t *testing.T) {
	assert := assert.New(t)

	program, err := Parse("a = b = 1")
	if !assert.NoError(err) {
		return
	}

	root := program[0]
	assert.Equal(NodeSet, root.Kind)
	assert.Equal("a", root.Name)
	assert.Equal(NodeSet, root.Body.Kind)
	assert.Equal("b", root.Body.Name)
}

func TestParse_multipleStatements(t *testing.T) {
	assert := assert.New(t)

	program, err := Parse("x = 1; y = 2; x + y")
	if !assert.NoError(err) {
		return
	}
	assert.Len(program, 3)
}

func TestParse_unmatchedParen(t *testing.T) {
	_, err := Parse("(1 + 2")
	assert.Error(t, err)
}
