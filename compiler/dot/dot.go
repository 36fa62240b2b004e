// Package dot renders a parse tree as Graphviz DOT text: one graph node
// per tree node, one edge per parent-child pair. It only walks the
// tree's visitor surface and never runs Graphviz itself.
package dot

import (
	"strings"

	"github.com/nikandfor/hacked/hfmt"

	"github.com/tinylang/tiny/compiler/ast"
)

func Render(root ast.Node) []byte {
	b := []byte(`digraph G {
	dpi=600;
	rankdir=LR;
	size="11,8.5!";
	ratio="fill";
`)

	id := 0
	b = render(b, root, &id)

	b = append(b, "}\n"...)

	return b
}

// render numbers nodes in preorder, which keeps ids stable across runs
// for the same tree.
func render(b []byte, n ast.Node, next *int) []byte {
	id := *next
	*next++

	label := n.Kind().String()
	if v := n.Value(); v != "" {
		label += ": " + v
	}

	label = strings.ReplaceAll(label, `"`, `\"`)

	b = hfmt.Appendf(b, "	n%d [label=\"%s\"];\n", id, label)

	for _, ch := range n.Children() {
		b = hfmt.Appendf(b, "	n%d -> n%d;\n", id, *next)
		b = render(b, ch, next)
	}

	return b
}
