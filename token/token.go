package token

import "fmt"

// TokenType classifies a lexeme
type TokenType string

const (
	WORD   = "WORD"   // keywords, variable names, labels
	SYMBOL = "SYMBOL" // operators and punctuation
	NUMBER = "NUMBER" // 10, 42.14
	STRING = "STRING" // "A string literal"
	EOL    = "EOL"    // end of a physical line
)

// Position locates a token in its source file.
type Position struct {
	File   string
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%s, line %d, column %d", p.File, p.Line, p.Column)
}

// Token is one classified lexeme. WORD literals arrive case-folded and
// NUMBER literals have their leading zeros stripped by the lexer.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}

// TypeName returns the description of a token type used in syntax errors.
func TypeName(t TokenType) string {
	switch t {
	case EOL:
		return "end of line"
	case NUMBER:
		return "integral literal"
	case STRING:
		return "string literal"
	case SYMBOL:
		return "operator"
	case WORD:
		return "identifier or keyword"
	}
	return string(t)
}
