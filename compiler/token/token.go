package token

import "fmt"

type (
	Kind int

	Token struct {
		Kind Kind
		Text string
		Line int
		Col  int
	}
)

const (
	Illegal Kind = iota
	EOF
	Newline

	Begin
	End
	Print
	For
	To
	Integer
	Real
	String

	Ident
	Number
	StringLit

	Assign
	Plus
	Minus
	Star
	Slash
	Comma
	LParen
	RParen
)

var names = []string{
	Illegal: "Illegal",
	EOF:     "EOF",
	Newline: "Newline",

	Begin:   "BEGIN",
	End:     "END",
	Print:   "PRINT",
	For:     "FOR",
	To:      "TO",
	Integer: "INTEGER",
	Real:    "REAL",
	String:  "STRING",

	Ident:     "Ident",
	Number:    "Number",
	StringLit: "StringLit",

	Assign: ":=",
	Plus:   "+",
	Minus:  "-",
	Star:   "*",
	Slash:  "/",
	Comma:  ",",
	LParen: "(",
	RParen: ")",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(names) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return names[k]
}

// IsType reports whether k is one of the type keywords opening a declaration.
func (k Kind) IsType() bool {
	return k == Integer || k == Real || k == String
}

func (t Token) String() string {
	return fmt.Sprintf("%v %q %d:%d", t.Kind, t.Text, t.Line, t.Col)
}
