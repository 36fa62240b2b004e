package parser

import (
	"context"
	"fmt"

	"tlog.app/go/loc"
	"tlog.app/go/tlog"

	"github.com/tinylang/tiny/compiler/ast"
	"github.com/tinylang/tiny/compiler/token"
)

type (
	Diagnostic struct {
		Msg  string
		Line int
		Col  int
	}

	mode int

	parser struct {
		toks []token.Token
		i    int

		mode  mode
		diags []Diagnostic
	}
)

// Recovery state. normal parses, panicking discards tokens up to a
// statement boundary, done means EOF was reached and every loop unwinds.
const (
	normal mode = iota
	panicking
	done
)

// MaxDiagnostics caps the diagnostics list on pathological input.
// Recovery still runs (and still terminates, the cursor only moves
// forward), it just stops recording messages.
const MaxDiagnostics = 100

// Parse consumes an EOF-terminated token sequence and always returns a
// Program, partial on malformed input, together with the diagnostics
// accumulated along the way. Recoverable syntax errors never surface as
// Go errors.
func Parse(ctx context.Context, toks []token.Token) (*ast.Program, []Diagnostic) {
	p := &parser{toks: toks}

	prog := p.program(ctx)

	tlog.SpanFromContext(ctx).Printw("parsed", "stmts", len(prog.Stmts), "diags", len(p.diags))

	return prog, p.diags
}

func (p *parser) program(ctx context.Context) *ast.Program {
	prog := &ast.Program{}

	if _, ok := p.expect(ctx, token.Begin); !ok {
		p.sync(ctx)
	}

	prog.Stmts = p.statementList(ctx, token.End)

	if _, ok := p.expect(ctx, token.End); !ok {
		p.sync(ctx)
	}

	for p.mode == normal && p.cur().Kind == token.Newline {
		p.advance(ctx)
	}

	if p.mode == normal && p.cur().Kind != token.EOF {
		p.report(p.cur(), "expected EOF, found %v", p.cur().Kind)
	}

	return prog
}

func (p *parser) statementList(ctx context.Context, until token.Kind) (list []ast.Node) {
	for {
		for p.mode == normal && p.cur().Kind == token.Newline {
			p.advance(ctx)
		}

		if p.mode != normal || p.cur().Kind == until || p.cur().Kind == token.EOF {
			break
		}

		st := p.statement(ctx)
		if st != nil {
			list = append(list, st)
		}

		if p.mode == panicking {
			p.sync(ctx)
			continue
		}

		if p.mode != normal {
			break
		}

		// statements are newline-terminated
		if k := p.cur().Kind; k != token.Newline && k != until && k != token.EOF {
			p.report(p.cur(), "expected newline, found %v", k)
			p.mode = panicking
			p.sync(ctx)
		}
	}

	return list
}

// statement dispatches on the single lookahead token. Each statement
// kind starts with a distinct keyword or an identifier.
func (p *parser) statement(ctx context.Context) ast.Node {
	tk := p.cur()

	switch {
	case tk.Kind.IsType():
		return p.varDeclaration(ctx)
	case tk.Kind == token.Ident:
		return p.assignments(ctx)
	case tk.Kind == token.For:
		return p.forLoop(ctx)
	case tk.Kind == token.Print:
		return p.printStatement(ctx)
	default:
		p.report(tk, "statement cannot start with %v", tk.Kind)
		p.mode = panicking

		return &ast.Bad{}
	}
}

func (p *parser) varDeclaration(ctx context.Context) ast.Node {
	typ := p.cur()
	p.advance(ctx)

	x := &ast.VarDeclaration{Type: typ}

	for {
		id, ok := p.expect(ctx, token.Ident)
		if !ok {
			return &ast.Bad{Nodes: x.Names}
		}

		x.Names = append(x.Names, &ast.Variable{Name: id.Text})

		if p.cur().Kind != token.Comma {
			break
		}

		p.advance(ctx)
	}

	return x
}

func (p *parser) assignments(ctx context.Context) ast.Node {
	x := &ast.Assignments{}

	for p.mode == normal && p.cur().Kind == token.Ident {
		v := &ast.Variable{Name: p.cur().Text}
		p.advance(ctx)

		if _, ok := p.expect(ctx, token.Assign); !ok {
			return &ast.Bad{Nodes: append(x.List, v)}
		}

		e := p.expression(ctx)

		x.List = append(x.List, &ast.Assignment{Target: v, Expr: e})
	}

	return x
}

// forLoop parses the header; the body runs to the END that also closes
// the program, which stays for the enclosing statement list to consume.
func (p *parser) forLoop(ctx context.Context) ast.Node {
	p.advance(ctx) // FOR

	var part []ast.Node

	id, ok := p.expect(ctx, token.Ident)
	if !ok {
		return &ast.Bad{}
	}

	v := &ast.Variable{Name: id.Text}
	part = append(part, v)

	if _, ok := p.expect(ctx, token.Assign); !ok {
		return &ast.Bad{Nodes: part}
	}

	from := p.expression(ctx)
	part = append(part, from)

	if p.mode != normal {
		return &ast.Bad{Nodes: part}
	}

	if _, ok := p.expect(ctx, token.To); !ok {
		return &ast.Bad{Nodes: part}
	}

	to := p.expression(ctx)
	part = append(part, to)

	if p.mode != normal {
		return &ast.Bad{Nodes: part}
	}

	body := p.statementList(ctx, token.End)

	return &ast.ForLoop{Var: v, From: from, To: to, Body: body}
}

func (p *parser) printStatement(ctx context.Context) ast.Node {
	p.advance(ctx) // PRINT

	if tk := p.cur(); tk.Kind == token.StringLit {
		p.advance(ctx)

		return &ast.PrintStatement{Arg: &ast.Literal{Tok: tk}}
	}

	return &ast.PrintStatement{Arg: p.expression(ctx)}
}

func (p *parser) expression(ctx context.Context) ast.Node {
	x := p.term(ctx)

	for p.mode == normal {
		op := p.cur()
		if op.Kind != token.Plus && op.Kind != token.Minus {
			break
		}

		p.advance(ctx)

		x = &ast.BinaryExpr{Op: op, Left: x, Right: p.term(ctx)}
	}

	return x
}

func (p *parser) term(ctx context.Context) ast.Node {
	x := p.factor(ctx)

	for p.mode == normal {
		op := p.cur()
		if op.Kind != token.Star && op.Kind != token.Slash {
			break
		}

		p.advance(ctx)

		x = &ast.BinaryExpr{Op: op, Left: x, Right: p.factor(ctx)}
	}

	return x
}

func (p *parser) factor(ctx context.Context) ast.Node {
	tk := p.cur()

	switch tk.Kind {
	case token.Number, token.StringLit:
		p.advance(ctx)

		return &ast.Literal{Tok: tk}
	case token.Ident:
		p.advance(ctx)

		return &ast.Variable{Name: tk.Text}
	case token.Minus:
		p.advance(ctx)

		return &ast.UnaryExpr{Op: tk, X: p.factor(ctx)}
	case token.LParen:
		p.advance(ctx)

		x := p.expression(ctx)

		if _, ok := p.expect(ctx, token.RParen); !ok {
			return &ast.Bad{Nodes: []ast.Node{x}}
		}

		return x
	default:
		p.report(tk, "expected expression, found %v", tk.Kind)
		p.mode = panicking

		return &ast.Bad{}
	}
}

// expect consumes the current token if it has the wanted kind; a
// mismatch records a diagnostic and flips the parser into panic mode
// without moving the cursor.
func (p *parser) expect(ctx context.Context, k token.Kind) (token.Token, bool) {
	tk := p.cur()
	if tk.Kind == k {
		p.advance(ctx)

		return tk, true
	}

	p.report(tk, "expected %v, found %v", k, tk.Kind)

	if p.mode == normal {
		p.mode = panicking
	}

	return tk, false
}

// sync discards tokens one at a time until a statement boundary.
// Every iteration moves the cursor, so recovery is bounded by the
// remaining token count.
func (p *parser) sync(ctx context.Context) {
	for p.mode == panicking {
		switch p.cur().Kind {
		case token.Newline, token.End:
			p.mode = normal
		case token.EOF:
			p.mode = done
		default:
			p.advance(ctx)
		}
	}
}

func (p *parser) cur() token.Token {
	if p.i < len(p.toks) {
		return p.toks[p.i]
	}

	// lexer sequences end with EOF; cover hand-built slices that don't
	return token.Token{Kind: token.EOF, Line: 1, Col: 1}
}

func (p *parser) advance(ctx context.Context) {
	if tr := tlog.SpanFromContext(ctx); tr.If("token") {
		tr.Printw("consume", "tok", p.cur(), "from", loc.Callers(1, 3))
	}

	if p.cur().Kind == token.EOF {
		p.mode = done

		return
	}

	p.i++
}

func (p *parser) report(tk token.Token, f string, args ...interface{}) {
	if len(p.diags) >= MaxDiagnostics {
		return
	}

	p.diags = append(p.diags, Diagnostic{
		Msg:  fmt.Sprintf(f, args...),
		Line: tk.Line,
		Col:  tk.Col,
	})
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%d:%d: %s", d.Line, d.Col, d.Msg)
}
