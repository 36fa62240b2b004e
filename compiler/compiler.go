/*

Process of parsing

Program Text ->
	lex ->
Token Stream ->
	parse ->
Parse Tree + Diagnostics ->
	dot ->
Graph Description (DOT)

The tree is best effort: malformed input yields a partial tree with
Error nodes plus a non-empty diagnostics list, never a failed parse.

*/
package compiler

import (
	"context"
	"os"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/tinylang/tiny/compiler/ast"
	"github.com/tinylang/tiny/compiler/dot"
	"github.com/tinylang/tiny/compiler/lexer"
	"github.com/tinylang/tiny/compiler/parser"
)

func ParseFile(ctx context.Context, name string) (*ast.Program, []parser.Diagnostic, error) {
	text, err := os.ReadFile(name)
	if err != nil {
		return nil, nil, errors.Wrap(err, "read file")
	}

	tlog.SpanFromContext(ctx).Printw("read file", "size", len(text), "name", name)

	prog, diags := Parse(ctx, string(text))

	return prog, diags, nil
}

func Parse(ctx context.Context, text string) (*ast.Program, []parser.Diagnostic) {
	toks := lexer.New(text).Tokens(ctx)

	return parser.Parse(ctx, toks)
}

// RenderDot parses the text and renders the resulting tree, partial or
// not, as Graphviz DOT.
func RenderDot(ctx context.Context, text string) ([]byte, []parser.Diagnostic) {
	prog, diags := Parse(ctx, text)

	return dot.Render(prog), diags
}
