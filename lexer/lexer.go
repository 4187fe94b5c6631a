package lexer

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/dwhitley/sbasic/berrors"
	"github.com/dwhitley/sbasic/token"
)

// symbols that can be lexed without seeing what follows them
const simpleSymbols = "+-*/&=:,()"

var foldCase = cases.Fold()

// Lexer scans source text into classified lexemes
type Lexer struct {
	input  string
	pos    int // index of the next unread character
	file   string
	line   int
	column int
}

// New creates a lexer over the full source text
func New(input string, file string) *Lexer {
	return &Lexer{input: input, file: file, line: 1}
}

// Next returns the next lexeme, or nil at end of input. Words come back
// case-folded, numbers with their leading zeros stripped.
func (l *Lexer) Next() (*token.Token, error) {
	l.skipWhitespace()

	ch := l.peek()
	switch {
	case ch == 0:
		return nil, nil

	case isDigit(ch):
		whole := l.extractWhile(isDigit)
		if l.peek() == '.' {
			l.get()
			return l.newToken(token.NUMBER, stripZeros(whole+"."+l.extractWhile(isDigit))), nil
		}
		return l.newToken(token.NUMBER, stripZeros(whole)), nil

	case ch == '"':
		l.get()
		value := l.extractUntil('"')
		l.get()
		return l.newToken(token.STRING, value), nil

	case strings.ContainsRune(simpleSymbols, rune(ch)):
		return l.newToken(token.SYMBOL, string(l.get())), nil

	case ch == '<' || ch == '>':
		l.get()
		if l.peek() == '>' || l.peek() == '=' {
			second := l.get()
			if second == '=' || (ch == '<' && second == '>') {
				return l.newToken(token.SYMBOL, string(ch)+string(second)), nil
			}
			return nil, berrors.NewLexer("Invalid operator: %c%c", ch, second)
		}
		return l.newToken(token.SYMBOL, string(ch)), nil

	case ch == '\n':
		// a run of blank lines collapses into a single end-of-line
		for l.peek() == '\n' {
			l.get()
			l.line++
			l.column = 0
			l.skipWhitespace()
		}
		return l.newToken(token.EOL, ""), nil

	case isLetter(ch):
		return l.newToken(token.WORD, foldCase.String(l.extractWhile(isWordChar))), nil
	}

	return nil, berrors.NewLexer("Invalid character at input: '%c' (%d)", ch, ch)
}

// SkipLine discards the rest of the physical line, used for comments
func (l *Lexer) SkipLine() {
	for l.peek() != '\n' && l.peek() != 0 {
		l.get()
	}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) get() byte {
	ch := l.peek()
	if ch != 0 {
		l.pos++
		l.column++
	}
	return ch
}

func (l *Lexer) skipWhitespace() {
	for l.peek() == ' ' || l.peek() == '\t' {
		l.get()
	}
}

func (l *Lexer) extractWhile(pred func(byte) bool) string {
	start := l.pos
	for l.peek() != 0 && pred(l.peek()) {
		l.get()
	}
	return l.input[start:l.pos]
}

func (l *Lexer) extractUntil(what byte) string {
	start := l.pos
	for l.peek() != what && l.peek() != 0 {
		l.get()
	}
	return l.input[start:l.pos]
}

func (l *Lexer) newToken(tokenType token.TokenType, literal string) *token.Token {
	return &token.Token{
		Type:    tokenType,
		Literal: literal,
		Pos:     token.Position{File: l.file, Line: l.line, Column: l.column},
	}
}

// stripZeros removes leading zeros from a numeric literal. An all-zero
// literal is left untouched.
func stripZeros(value string) string {
	if value[0] != '0' || len(value) == 1 {
		return value
	}

	trimmed := strings.TrimLeft(value, "0")
	if trimmed == "" {
		return value
	}
	return trimmed
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func isWordChar(ch byte) bool {
	return isLetter(ch) || isDigit(ch) || ch == '_' || ch == '$'
}
