// Package parser turns the lexeme stream into a block-structured
// program. It is a recursive-descent parser with exactly one lexeme of
// lookahead, driven by an accept/expect protocol: accept consumes only
// on a match, expect is accept that fails with a syntax error.
package parser

import (
	"github.com/dwhitley/sbasic/ast"
	"github.com/dwhitley/sbasic/berrors"
	"github.com/dwhitley/sbasic/lexer"
	"github.com/dwhitley/sbasic/token"
)

// keywords that terminate a block
var blockTerminators = []string{"end", "else", "elseif", "next", "loop"}

type stmtParser func(cmd token.Token) (ast.Statement, error)

// Parser an instance
type Parser struct {
	l    *lexer.Lexer
	next *token.Token // the one-token lookahead, nil at end of input

	stmtParsers map[string]stmtParser
}

// New creates a Parser over a lexeme stream and primes the lookahead
func New(l *lexer.Lexer) (*Parser, error) {
	p := &Parser{l: l}

	p.stmtParsers = map[string]stmtParser{
		"if":    p.parseIf,
		"do":    p.parseDo,
		"for":   p.parseFor,
		"print": p.parsePrint,
		"input": p.parseInput,
		"let":   p.parseLet,
		"goto":  p.parseGoto,
		"stop":  p.parseStop,
		"exit":  p.parseExit,
	}

	if err := p.prime(); err != nil {
		return nil, err
	}
	return p, nil
}

// Parse consumes the whole stream and returns the program block
func Parse(l *lexer.Lexer) (*ast.Block, error) {
	p, err := New(l)
	if err != nil {
		return nil, err
	}

	block, terminator, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	if terminator != "" && (terminator != "end" || p.next != nil) {
		return nil, p.errorAt("Unexpected "+terminator+", expected END or end-of-file", p.next)
	}

	return block, nil
}

// prime replaces the lookahead with the next lexeme from the stream
func (p *Parser) prime() error {
	var err error
	p.next, err = p.l.Next()
	return err
}

// acceptAny unconditionally consumes and returns the lookahead
func (p *Parser) acceptAny() (*token.Token, error) {
	result := p.next
	if err := p.prime(); err != nil {
		return nil, err
	}
	return result, nil
}

// accept consumes the lookahead only when it matches the wanted kind
// and, when given, the wanted literal. A miss is non-destructive.
func (p *Parser) accept(kind token.TokenType, literal ...string) (*token.Token, error) {
	if p.next == nil || p.next.Type != kind {
		return nil, nil
	}
	if len(literal) > 0 && p.next.Literal != literal[0] {
		return nil, nil
	}
	return p.acceptAny()
}

// expect is accept that raises a syntax error describing what was
// expected versus what was found.
func (p *Parser) expect(kind token.TokenType, literal ...string) (*token.Token, error) {
	tok, err := p.accept(kind, literal...)
	if err != nil {
		return nil, err
	}
	if tok != nil {
		return tok, nil
	}

	what := token.TypeName(kind)
	if len(literal) > 0 {
		what = literal[0]
	}

	got, err := p.acceptAny()
	if err != nil {
		return nil, err
	}
	if got == nil {
		return nil, berrors.NewSyntax("Expected %s, got end of input", what)
	}

	found := token.TypeName(got.Type)
	if len(literal) > 0 {
		found = got.Literal
	}
	return nil, berrors.NewSyntax("%s: Expected %s, got %s", got.Pos, what, found)
}

// errorAt builds a syntax error, embedding the source location when a
// lexeme is at hand.
func (p *Parser) errorAt(what string, where *token.Token) error {
	if where != nil {
		return berrors.NewSyntax("%s: %s", where.Pos, what)
	}
	return berrors.NewSyntax("%s", what)
}

// parseBlock repeatedly parses lines until the stream is exhausted or a
// line reports a block terminator. Exhaustion yields an empty
// terminator string.
func (p *Parser) parseBlock() (*ast.Block, string, error) {
	block := ast.NewBlock()

	for p.next != nil {
		stmt, label, terminator, err := p.parseLine()
		if err != nil {
			return nil, "", err
		}
		if stmt == nil {
			return block, terminator, nil
		}

		block.Add(stmt, label)
	}

	return block, "", nil
}

// parseLine extracts one statement. A line may begin with an integral
// label or a word followed by ':' naming a label. When the line starts
// a block terminator the statement comes back nil and the terminating
// keyword is reported instead.
func (p *Parser) parseLine() (ast.Statement, string, string, error) {
	var label string

	for {
		if lex, err := p.accept(token.NUMBER); err != nil {
			return nil, "", "", err
		} else if lex != nil {
			label = lex.Literal
		}

		word, err := p.accept(token.WORD)
		if err != nil {
			return nil, "", "", err
		}

		if word == nil {
			// this must be an empty line
			if _, err := p.expect(token.EOL); err != nil {
				return nil, "", "", err
			}
			return &ast.EmptyStatement{}, label, "", nil
		}

		if word.Literal == "rem" {
			// a comment, drop the rest of the line and go around
			if err := p.skipComment(); err != nil {
				return nil, "", "", err
			}
			continue
		}

		// the first word can be either a keyword or a named label
		if p.next != nil && p.next.Type == token.SYMBOL && p.next.Literal == ":" {
			label = word.Literal
			if _, err := p.acceptAny(); err != nil {
				return nil, "", "", err
			}

			// allow newlines between the label and the actual statement
			for {
				eol, err := p.accept(token.EOL)
				if err != nil {
					return nil, "", "", err
				}
				if eol == nil {
					break
				}
			}

			word, err = p.expect(token.WORD)
			if err != nil {
				return nil, "", "", err
			}
		}

		if word.Literal == "rem" {
			if err := p.skipComment(); err != nil {
				return nil, "", "", err
			}
			continue
		}

		parse, ok := p.stmtParsers[word.Literal]
		if !ok {
			if isBlockTerminator(word.Literal) {
				return nil, label, word.Literal, nil
			}
			return nil, "", "", p.errorAt("Unrecognised keyword: "+word.Literal, word)
		}

		stmt, err := parse(*word)
		if err != nil {
			return nil, "", "", err
		}

		if _, err := p.expect(token.EOL); err != nil {
			return nil, "", "", err
		}
		return stmt, label, "", nil
	}
}

// skipComment drops the rest of the physical line and refreshes the
// lookahead past whatever it was holding.
func (p *Parser) skipComment() error {
	p.l.SkipLine()
	return p.prime()
}

func isBlockTerminator(word string) bool {
	for _, t := range blockTerminators {
		if word == t {
			return true
		}
	}
	return false
}
