package internal

//go:generate go run ../cmd/astgen -o ast.go

// R is the result of visiting a node
type R interface{}

// NodeKind discriminates AST node types
type NodeKind string

// Node is any AST node. The set of nodes is closed, see ast.go.
type Node interface {
	Kind() NodeKind
	accept(nodeVisitor) R
}

// Stmt is a node allowed in a statement list
type Stmt interface {
	Node
	stmtNode()
}

// Expr is a node that produces a value
type Expr interface {
	Stmt
	exprNode()
}

// Property is a single object literal entry. A nil Value means shorthand,
// the key is looked up as a variable.
type Property struct {
	Key   string
	Value Expr
}
