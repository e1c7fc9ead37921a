package internal

import (
	"strings"
)

// PrintTree renders node as an S-expression, one line per top level
// statement when node is a Program
func PrintTree(node Node) string {
	return node.accept(stringVisitor{}).(string)
}

type stringVisitor struct{}

func (v stringVisitor) list(head string, nodes ...Node) string {
	out := "(" + head
	for _, n := range nodes {
		out += " " + n.accept(v).(string)
	}
	return out + ")"
}

func (v stringVisitor) visitProgram(node *Program) R {
	lines := make([]string, len(node.Body))
	for i, st := range node.Body {
		lines[i] = st.accept(v).(string)
	}
	return strings.Join(lines, "\n")
}

func (v stringVisitor) visitVarDeclaration(node *VarDeclaration) R {
	keyword := "let"
	if node.Constant {
		keyword = "const"
	}
	if node.Value == nil {
		return v.list(keyword + " " + node.Identifier)
	}
	return v.list(keyword+" "+node.Identifier, node.Value)
}

func (v stringVisitor) visitFunctionDeclaration(node *FunctionDeclaration) R {
	head := "fn " + node.Name + " (" + strings.Join(node.Parameters, " ") + ")"
	return v.list(head, stmtsToNodes(node.Body)...)
}

func (v stringVisitor) visitBlockStmt(node *BlockStmt) R {
	return v.list("block", stmtsToNodes(node.Body)...)
}

func (v stringVisitor) visitIfExpr(node *IfExpr) R {
	if node.Else == nil {
		return v.list("if", node.Cond, node.Then)
	}
	return v.list("if", node.Cond, node.Then, node.Else)
}

func (v stringVisitor) visitAssignmentExpr(node *AssignmentExpr) R {
	return v.list("=", node.Target, node.Value)
}

func (v stringVisitor) visitBinaryExpr(node *BinaryExpr) R {
	return v.list(node.Operator, node.Left, node.Right)
}

func (v stringVisitor) visitCallExpr(node *CallExpr) R {
	nodes := []Node{node.Callee}
	for _, arg := range node.Args {
		nodes = append(nodes, arg)
	}
	return v.list("call", nodes...)
}

func (v stringVisitor) visitMemberExpr(node *MemberExpr) R {
	if node.Computed {
		return v.list("[]", node.Object, node.Property)
	}
	return v.list(".", node.Object, node.Property)
}

func (v stringVisitor) visitObjectLiteral(node *ObjectLiteral) R {
	out := "(object"
	for _, prop := range node.Properties {
		if prop.Value == nil {
			out += " " + prop.Key
		} else {
			out += " " + v.list(prop.Key, prop.Value)
		}
	}
	return out + ")"
}

func (v stringVisitor) visitIdentifier(node *Identifier) R {
	return node.Symbol
}

func (v stringVisitor) visitNumericLiteral(node *NumericLiteral) R {
	return formatNumber(node.Value)
}

func stmtsToNodes(stmts []Stmt) []Node {
	nodes := make([]Node, len(stmts))
	for i, st := range stmts {
		nodes[i] = st
	}
	return nodes
}
