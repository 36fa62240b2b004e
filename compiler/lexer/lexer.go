package lexer

import (
	"context"

	"tlog.app/go/tlog"

	"github.com/tinylang/tiny/compiler/token"
)

type (
	// Lexer scans one source text front to back.
	// It is stateful and not rewindable; a fresh Lexer over the same
	// text reproduces the same token sequence.
	Lexer struct {
		b string

		i    int
		line int
		col  int
	}
)

var keywords = map[string]token.Kind{
	"BEGIN":   token.Begin,
	"END":     token.End,
	"PRINT":   token.Print,
	"FOR":     token.For,
	"TO":      token.To,
	"INTEGER": token.Integer,
	"REAL":    token.Real,
	"STRING":  token.String,
}

func New(text string) *Lexer {
	return &Lexer{
		b:    text,
		line: 1,
		col:  1,
	}
}

// Tokens drains the lexer, terminating the result with exactly one EOF.
func (l *Lexer) Tokens(ctx context.Context) []token.Token {
	var toks []token.Token

	for {
		tk := l.Next()
		toks = append(toks, tk)

		if tk.Kind == token.EOF {
			break
		}
	}

	tlog.SpanFromContext(ctx).Printw("tokenized", "bytes", len(l.b), "tokens", len(toks))

	return toks
}

func (l *Lexer) Next() (tk token.Token) {
	l.skipSpaces()

	tk.Line = l.line
	tk.Col = l.col

	if l.i == len(l.b) {
		tk.Kind = token.EOF
		return tk
	}

	c := l.b[l.i]

	switch c {
	case '\n':
		tk.Kind = token.Newline
		tk.Text = "\n"

		l.i++
		l.line++
		l.col = 1

		return tk
	case '+':
		return l.take(token.Plus, 1)
	case '-':
		return l.take(token.Minus, 1)
	case '*':
		return l.take(token.Star, 1)
	case '/':
		return l.take(token.Slash, 1)
	case ',':
		return l.take(token.Comma, 1)
	case '(':
		return l.take(token.LParen, 1)
	case ')':
		return l.take(token.RParen, 1)
	case ':':
		if l.i+1 < len(l.b) && l.b[l.i+1] == '=' {
			return l.take(token.Assign, 2)
		}

		return l.take(token.Illegal, 1)
	case '"':
		return l.str()
	}

	switch {
	case isLetter(c):
		e := skipIdent(l.b, l.i)

		tk.Kind = token.Ident
		tk.Text = l.b[l.i:e]

		// longest match first: the whole identifier is scanned before
		// the keyword table is consulted, so INTEGERX stays an Ident
		if kw, ok := keywords[tk.Text]; ok {
			tk.Kind = kw
		}

		l.move(e)

		return tk
	case isDigit(c):
		e := skipNum(l.b, l.i)

		tk.Kind = token.Number
		tk.Text = l.b[l.i:e]

		l.move(e)

		return tk
	default:
		return l.take(token.Illegal, 1)
	}
}

func (l *Lexer) take(k token.Kind, w int) token.Token {
	tk := token.Token{
		Kind: k,
		Text: l.b[l.i : l.i+w],
		Line: l.line,
		Col:  l.col,
	}

	l.move(l.i + w)

	return tk
}

// str scans a string literal. Text keeps the quotes.
// An unterminated literal degrades to an Illegal token for the opening
// quote and scanning continues after it.
func (l *Lexer) str() token.Token {
	e := l.i + 1

	for e < len(l.b) && l.b[e] != '"' && l.b[e] != '\n' {
		e++
	}

	if e == len(l.b) || l.b[e] == '\n' {
		return l.take(token.Illegal, 1)
	}

	return l.take(token.StringLit, e+1-l.i)
}

func (l *Lexer) move(e int) {
	l.col += e - l.i
	l.i = e
}

func (l *Lexer) skipSpaces() {
	for l.i < len(l.b) && (l.b[l.i] == ' ' || l.b[l.i] == '\t' || l.b[l.i] == '\r') {
		l.i++
		l.col++
	}
}

func skipIdent(b string, i int) int {
	for i < len(b) && (isLetter(b[i]) || isDigit(b[i])) {
		i++
	}

	return i
}

// skipNum accepts digits with an optional fraction and exponent.
func skipNum(b string, i int) int {
	for i < len(b) && isDigit(b[i]) {
		i++
	}

	if i+1 < len(b) && b[i] == '.' && isDigit(b[i+1]) {
		i++

		for i < len(b) && isDigit(b[i]) {
			i++
		}
	}

	if i < len(b) && (b[i] == 'e' || b[i] == 'E') {
		j := i + 1

		if j < len(b) && (b[j] == '+' || b[j] == '-') {
			j++
		}

		if j < len(b) && isDigit(b[j]) {
			for j < len(b) && isDigit(b[j]) {
				j++
			}

			i = j
		}
	}

	return i
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
