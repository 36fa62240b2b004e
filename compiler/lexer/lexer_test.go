package lexer

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinylang/tiny/compiler/token"
)

func TestTokens(t *testing.T) {
	src := "BEGIN\nINTEGER A, B\nA := 2\nEND"

	toks := New(src).Tokens(context.Background())

	kinds := []token.Kind{
		token.Begin, token.Newline,
		token.Integer, token.Ident, token.Comma, token.Ident, token.Newline,
		token.Ident, token.Assign, token.Number, token.Newline,
		token.End, token.EOF,
	}

	require.Len(t, toks, len(kinds))

	for i, k := range kinds {
		assert.Equal(t, k, toks[i].Kind, "token %d: %v", i, toks[i])
	}

	assert.Equal(t, "A", toks[3].Text)
	assert.Equal(t, "B", toks[5].Text)
	assert.Equal(t, "2", toks[9].Text)
}

func TestPositions(t *testing.T) {
	src := "BEGIN\n  A := 12\nEND"

	toks := New(src).Tokens(context.Background())

	// BEGIN NL A := 12 NL END EOF
	require.Len(t, toks, 8)

	assert.Equal(t, [2]int{1, 1}, [2]int{toks[0].Line, toks[0].Col}, "BEGIN")
	assert.Equal(t, [2]int{1, 6}, [2]int{toks[1].Line, toks[1].Col}, "newline")
	assert.Equal(t, [2]int{2, 3}, [2]int{toks[2].Line, toks[2].Col}, "A")
	assert.Equal(t, [2]int{2, 5}, [2]int{toks[3].Line, toks[3].Col}, ":=")
	assert.Equal(t, [2]int{2, 8}, [2]int{toks[4].Line, toks[4].Col}, "12")
	assert.Equal(t, [2]int{3, 1}, [2]int{toks[6].Line, toks[6].Col}, "END")
	assert.Equal(t, [2]int{3, 4}, [2]int{toks[7].Line, toks[7].Col}, "EOF")
}

func TestKeywordLongestMatch(t *testing.T) {
	toks := New("INTEGERX INTEGER TOO TO").Tokens(context.Background())

	require.Len(t, toks, 5)

	assert.Equal(t, token.Ident, toks[0].Kind)
	assert.Equal(t, "INTEGERX", toks[0].Text)
	assert.Equal(t, token.Integer, toks[1].Kind)
	assert.Equal(t, token.Ident, toks[2].Kind)
	assert.Equal(t, token.To, toks[3].Kind)
}

func TestNumbers(t *testing.T) {
	toks := New("1 2.5 3.5E-8 4e10 7.").Tokens(context.Background())

	texts := []string{"1", "2.5", "3.5E-8", "4e10"}
	for i, want := range texts {
		assert.Equal(t, token.Number, toks[i].Kind)
		assert.Equal(t, want, toks[i].Text)
	}

	// "7." is a number followed by a dangling dot, which matches no rule
	assert.Equal(t, token.Number, toks[4].Kind)
	assert.Equal(t, "7", toks[4].Text)
	assert.Equal(t, token.Illegal, toks[5].Kind)
	assert.Equal(t, ".", toks[5].Text)
}

func TestStrings(t *testing.T) {
	toks := New(`X := "hello there"`).Tokens(context.Background())

	require.Len(t, toks, 4)

	assert.Equal(t, token.StringLit, toks[2].Kind)
	assert.Equal(t, `"hello there"`, toks[2].Text)
}

func TestUnterminatedString(t *testing.T) {
	toks := New("\"abc\nEND").Tokens(context.Background())

	// the quote degrades to Illegal, scanning continues with abc
	require.Len(t, toks, 5)

	assert.Equal(t, token.Illegal, toks[0].Kind)
	assert.Equal(t, `"`, toks[0].Text)
	assert.Equal(t, token.Ident, toks[1].Kind)
	assert.Equal(t, "abc", toks[1].Text)
	assert.Equal(t, token.Newline, toks[2].Kind)
	assert.Equal(t, token.End, toks[3].Kind)
}

func TestIllegalByte(t *testing.T) {
	toks := New("A := 2 @ 3").Tokens(context.Background())

	require.Len(t, toks, 6)

	assert.Equal(t, token.Illegal, toks[3].Kind)
	assert.Equal(t, "@", toks[3].Text)

	// the lexer keeps going after a bad byte
	assert.Equal(t, token.Number, toks[4].Kind)
	assert.Equal(t, token.EOF, toks[5].Kind)
}

func TestDeterminism(t *testing.T) {
	src := "BEGIN\nPRINT \"HI\"\nFOR I := 1 TO 5\nX := (2.5 + -3) * Y / 4\n@\nEND"

	a := New(src).Tokens(context.Background())
	b := New(src).Tokens(context.Background())

	assert.Equal(t, a, b)
}

func TestCoverage(t *testing.T) {
	src := "BEGIN\nINTEGER A, B\nA := 2 + 3 * (B - 1)\nPRINT \"X\"\n@\nEND"

	toks := New(src).Tokens(context.Background())

	var got strings.Builder
	for _, tk := range toks {
		got.WriteString(tk.Text)
	}

	// every byte lands in exactly one token, spaces aside
	want := strings.NewReplacer(" ", "", "\t", "").Replace(src)
	assert.Equal(t, want, got.String())

	assert.Equal(t, token.EOF, toks[len(toks)-1].Kind)

	for _, tk := range toks[:len(toks)-1] {
		assert.NotEqual(t, token.EOF, tk.Kind, "EOF before the end")
	}
}
