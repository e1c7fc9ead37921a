package main

import (
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
)

// Each entry is "Name: Base: fields". Base is Node, Stmt or Expr.
var nodes = []string{
	"Program: Node: Body []Stmt",
	"VarDeclaration: Stmt: Identifier string, Constant bool, Value Expr",
	"FunctionDeclaration: Stmt: Name string, Parameters []string, Body []Stmt",
	"BlockStmt: Stmt: Body []Stmt",
	"IfExpr: Expr: Cond Expr, Then Stmt, Else Stmt",
	"AssignmentExpr: Expr: Target Expr, Value Expr",
	"BinaryExpr: Expr: Left Expr, Right Expr, Operator string",
	"CallExpr: Expr: Callee Expr, Args []Expr",
	"MemberExpr: Expr: Object Expr, Property Expr, Computed bool",
	"ObjectLiteral: Expr: Properties []Property",
	"Identifier: Expr: Symbol string",
	"NumericLiteral: Expr: Value float64",
}

func main() {
	output := flag.String("o", "", "output file, stdout when empty")
	flag.Parse()

	src, err := format.Source([]byte(generateAst(nodes)))
	if err != nil {
		log.Fatal(err)
	}

	if *output == "" {
		fmt.Print(string(src))
		return
	}
	if err := os.WriteFile(*output, src, 0644); err != nil {
		log.Fatal(err)
	}
}

type nodeDef struct {
	name   string
	base   string
	fields []string
}

func parseDefs(types []string) []nodeDef {
	defs := make([]nodeDef, 0, len(types))
	for _, t := range types {
		parts := strings.SplitN(t, ":", 3)
		def := nodeDef{
			name: strings.TrimSpace(parts[0]),
			base: strings.TrimSpace(parts[1]),
		}
		for _, field := range strings.Split(parts[2], ",") {
			def.fields = append(def.fields, strings.TrimSpace(field))
		}
		defs = append(defs, def)
	}
	return defs
}

func generateAst(types []string) string {
	defs := parseDefs(types)

	out := "// Code generated by astgen; DO NOT EDIT.\n\n"
	out += "package internal\n\n"

	// Start kinds
	out += "const (\n"
	for _, def := range defs {
		out += fmt.Sprintf("\t%sKind NodeKind = %q\n", def.name, def.name)
	}
	out += ")\n\n"
	// End kinds

	// Start Visitor interface
	out += "type nodeVisitor interface {\n"
	for _, def := range defs {
		out += "\tvisit" + def.name + "(node *" + def.name + ") R\n"
	}
	out += "}\n\n"
	// End Visitor interface

	for _, def := range defs {
		out += generateType(def)
	}

	return out
}

func generateType(def nodeDef) string {
	// Start Structure Definition
	out := "type " + def.name + " struct {\n"
	for _, field := range def.fields {
		out += "\t" + field + "\n"
	}
	out += "}\n\n"
	// End Structure Definition

	// Start Method Definition
	out += "func (n *" + def.name + ") Kind() NodeKind {\n"
	out += "\treturn " + def.name + "Kind\n"
	out += "}\n\n"
	out += "func (n *" + def.name + ") accept(visitor nodeVisitor) R {\n"
	out += "\treturn visitor.visit" + def.name + "(n)\n"
	out += "}\n\n"
	switch def.base {
	case "Expr":
		out += "func (n *" + def.name + ") exprNode() {}\n\n"
		fallthrough
	case "Stmt":
		out += "func (n *" + def.name + ") stmtNode() {}\n\n"
	}
	// End Method Definition

	return out
}
