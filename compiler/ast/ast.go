package ast

import (
	"fmt"

	"github.com/tinylang/tiny/compiler/token"
)

type (
	Kind int

	// Node is the surface tree consumers (renderers) walk: a tag, an
	// optional scalar value and the ordered children. A node is a leaf
	// iff it has no children.
	Node interface {
		Kind() Kind
		Value() string
		Children() []Node
	}

	// Program is the single tree root.
	Program struct {
		Stmts []Node
	}

	// VarDeclaration is TYPE ID (',' ID)*. Names holds *Variable.
	VarDeclaration struct {
		Type  token.Token
		Names []Node
	}

	// Assignments groups the ID ':=' expr pairs of one assignment
	// statement. List holds *Assignment.
	Assignments struct {
		List []Node
	}

	Assignment struct {
		Target Node
		Expr   Node
	}

	ForLoop struct {
		Var  Node
		From Node
		To   Node
		Body []Node
	}

	PrintStatement struct {
		Arg Node
	}

	BinaryExpr struct {
		Op    token.Token
		Left  Node
		Right Node
	}

	UnaryExpr struct {
		Op token.Token
		X  Node
	}

	Literal struct {
		Tok token.Token
	}

	Variable struct {
		Name string
	}

	// Bad marks a production abandoned by error recovery, keeping the
	// children that were already built so the tree stays traversable.
	Bad struct {
		Nodes []Node
	}
)

const (
	KindProgram Kind = iota
	KindVarDeclaration
	KindAssignments
	KindAssignment
	KindForLoop
	KindPrintStatement
	KindBinaryExpr
	KindUnaryExpr
	KindLiteral
	KindVariable
	KindBad
)

var kindNames = []string{
	KindProgram:        "Program",
	KindVarDeclaration: "VarDeclaration",
	KindAssignments:    "Assignments",
	KindAssignment:     "Assignment",
	KindForLoop:        "ForLoop",
	KindPrintStatement: "PrintStatement",
	KindBinaryExpr:     "BinaryExpr",
	KindUnaryExpr:      "UnaryExpr",
	KindLiteral:        "Literal",
	KindVariable:       "Variable",
	KindBad:            "Error",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

func IsLeaf(n Node) bool { return len(n.Children()) == 0 }

func (x *Program) Kind() Kind       { return KindProgram }
func (x *Program) Value() string    { return "" }
func (x *Program) Children() []Node { return x.Stmts }

func (x *VarDeclaration) Kind() Kind       { return KindVarDeclaration }
func (x *VarDeclaration) Value() string    { return x.Type.Text }
func (x *VarDeclaration) Children() []Node { return x.Names }

func (x *Assignments) Kind() Kind       { return KindAssignments }
func (x *Assignments) Value() string    { return "" }
func (x *Assignments) Children() []Node { return x.List }

func (x *Assignment) Kind() Kind       { return KindAssignment }
func (x *Assignment) Value() string    { return "" }
func (x *Assignment) Children() []Node { return []Node{x.Target, x.Expr} }

func (x *ForLoop) Kind() Kind    { return KindForLoop }
func (x *ForLoop) Value() string { return "" }

func (x *ForLoop) Children() []Node {
	ch := []Node{x.Var, x.From, x.To}

	return append(ch, x.Body...)
}

func (x *PrintStatement) Kind() Kind       { return KindPrintStatement }
func (x *PrintStatement) Value() string    { return "" }
func (x *PrintStatement) Children() []Node { return []Node{x.Arg} }

func (x *BinaryExpr) Kind() Kind       { return KindBinaryExpr }
func (x *BinaryExpr) Value() string    { return x.Op.Text }
func (x *BinaryExpr) Children() []Node { return []Node{x.Left, x.Right} }

func (x *UnaryExpr) Kind() Kind       { return KindUnaryExpr }
func (x *UnaryExpr) Value() string    { return x.Op.Text }
func (x *UnaryExpr) Children() []Node { return []Node{x.X} }

func (x *Literal) Kind() Kind { return KindLiteral }

// Value strips the quotes off string literals; other literals keep
// their source spelling.
func (x *Literal) Value() string {
	t := x.Tok.Text

	if x.Tok.Kind == token.StringLit && len(t) >= 2 {
		return t[1 : len(t)-1]
	}

	return t
}

func (x *Literal) Children() []Node { return nil }

func (x *Variable) Kind() Kind       { return KindVariable }
func (x *Variable) Value() string    { return x.Name }
func (x *Variable) Children() []Node { return nil }

func (x *Bad) Kind() Kind       { return KindBad }
func (x *Bad) Value() string    { return "" }
func (x *Bad) Children() []Node { return x.Nodes }
