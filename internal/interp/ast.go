package interp

// NodeKind identifies the shape of an AST node (§3).
type NodeKind int

const (
	// NodeLiteral holds a constant Value (string, integer, or float literal
	// from source).
	NodeLiteral NodeKind = iota
	// NodeGet reads a variable by name.
	NodeGet
	// NodeVecLiteral builds a List from its Children.
	NodeVecLiteral
	// NodeFunDef defines a function: Name is its identifier, Params its
	// parameter names, Body its single-expression body.
	NodeFunDef
	// NodeSet assigns Body's value to the variable named Name.
	NodeSet
	// NodeWhile loops Body while Cond is truthy.
	NodeWhile
	// NodeExprList evaluates Children in order; its value is the last
	// child's value (or Nil if empty).
	NodeExprList
	// NodeCall invokes the function named Name with Children as arguments.
	NodeCall
	// NodeIf evaluates Cond; if truthy runs Body, else Else (which may be
	// nil).
	NodeIf
	// NodeFork is a binary operator application: Op is one of
	// `> < <= >= == != + - * / ^ %`, applied to A and B.
	NodeFork
)

// Node is a single element of the abstract syntax tree (§3). Not every
// field is meaningful for every Kind; see the NodeKind docs above.
type Node struct {
	Kind NodeKind

	Lit  Value
	Name string
	Op   string

	Params   []string
	Children []*Node

	A, B *Node
	Cond *Node
	Body *Node
	Else *Node
}

func litNode(v Value) *Node {
	return &Node{Kind: NodeLiteral, Lit: v}
}

func getNode(name string) *Node {
	return &Node{Kind: NodeGet, Name: name}
}

func vecNode(elems []*Node) *Node {
	return &Node{Kind: NodeVecLiteral, Children: elems}
}

func funDefNode(name string, params []string, body *Node) *Node {
	return &Node{Kind: NodeFunDef, Name: name, Params: params, Body: body}
}

func setNode(name string, body *Node) *Node {
	return &Node{Kind: NodeSet, Name: name, Body: body}
}

func whileNode(cond, body *Node) *Node {
	return &Node{Kind: NodeWhile, Cond: cond, Body: body}
}

func exprListNode(children []*Node) *Node {
	return &Node{Kind: NodeExprList, Children: children}
}

func callNode(name string, args []*Node) *Node {
	return &Node{Kind: NodeCall, Name: name, Children: args}
}

func ifNode(cond, body, els *Node) *Node {
	return &Node{Kind: NodeIf, Cond: cond, Body: body, Else: els}
}

func forkNode(op string, a, b *Node) *Node {
	return &Node{Kind: NodeFork, Op: op, A: a, B: b}
}
