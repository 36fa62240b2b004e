package dot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinylang/tiny/compiler/ast"
	"github.com/tinylang/tiny/compiler/token"
)

func TestRender(t *testing.T) {
	tree := &ast.Program{
		Stmts: []ast.Node{
			&ast.Assignments{
				List: []ast.Node{
					&ast.Assignment{
						Target: &ast.Variable{Name: "A"},
						Expr:   &ast.Literal{Tok: token.Token{Kind: token.Number, Text: "2"}},
					},
				},
			},
		},
	}

	out := string(Render(tree))

	assert.True(t, strings.HasPrefix(out, "digraph G {\n"))
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.Contains(t, out, "rankdir=LR;")

	assert.Contains(t, out, `n0 [label="Program"];`)
	assert.Contains(t, out, `[label="Variable: A"];`)
	assert.Contains(t, out, `[label="Literal: 2"];`)

	// one node line and one edge line per tree node beyond the root
	assert.Equal(t, 5, strings.Count(out, "[label="))
	assert.Equal(t, 4, strings.Count(out, " -> "))
}

func TestRenderEscapesQuotes(t *testing.T) {
	out := string(Render(&ast.Variable{Name: `say "hi"`}))

	assert.Contains(t, out, `[label="Variable: say \"hi\""];`)
}

func TestRenderStableIDs(t *testing.T) {
	tree := &ast.PrintStatement{
		Arg: &ast.Literal{Tok: token.Token{Kind: token.StringLit, Text: `"X"`}},
	}

	a := Render(tree)
	b := Render(tree)

	require.Equal(t, a, b)
	assert.Contains(t, string(a), "n0 -> n1;")
}
