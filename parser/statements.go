package parser

import (
	"github.com/dwhitley/sbasic/ast"
	"github.com/dwhitley/sbasic/number"
	"github.com/dwhitley/sbasic/token"
)

// parseIf handles both forms: a label right after THEN makes the
// single-line goto form, an end of line opens the block form.
func (p *Parser) parseIf(cmd token.Token) (ast.Statement, error) {
	condition, err := p.parseNumericExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.WORD, "then"); err != nil {
		return nil, err
	}

	lex, err := p.accept(token.NUMBER)
	if err != nil {
		return nil, err
	}
	if lex == nil {
		if lex, err = p.accept(token.WORD); err != nil {
			return nil, err
		}
	}

	if lex != nil {
		return p.parseIfGoto(cmd, condition, lex.Literal)
	}

	if p.next != nil && p.next.Type == token.EOL {
		return p.parseIfBlock(cmd, condition)
	}

	return nil, p.errorAt("Expected a label or newline after THEN", p.next)
}

func (p *Parser) parseIfGoto(cmd token.Token, condition ast.NumericExpression, thenLabel string) (ast.Statement, error) {
	stmt := &ast.IfGotoStatement{Token: cmd, Condition: condition, ThenLabel: thenLabel}

	found, err := p.accept(token.WORD, "else")
	if err != nil {
		return nil, err
	}
	if found != nil {
		lex, err := p.accept(token.NUMBER)
		if err != nil {
			return nil, err
		}
		if lex == nil {
			if lex, err = p.expect(token.WORD); err != nil {
				return nil, err
			}
		}
		stmt.ElseLabel = lex.Literal
	}

	return stmt, nil
}

func (p *Parser) parseIfBlock(cmd token.Token, condition ast.NumericExpression) (ast.Statement, error) {
	// eat the newline
	if _, err := p.acceptAny(); err != nil {
		return nil, err
	}

	stmt := &ast.IfBlockStatement{
		Token:      cmd,
		Conditions: []ast.NumericExpression{condition},
	}

	keyword := "if"
	for keyword != "end" {
		clause, terminator, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		stmt.Blocks = append(stmt.Blocks, clause)
		keyword = terminator

		switch keyword {
		case "elseif":
			condition, err = p.parseNumericExpr()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.WORD, "then"); err != nil {
				return nil, err
			}
			if _, err := p.expect(token.EOL); err != nil {
				return nil, err
			}
			stmt.Conditions = append(stmt.Conditions, condition)

		case "end":

		case "else":
			if _, err := p.expect(token.EOL); err != nil {
				return nil, err
			}

		case "":
			return nil, p.errorAt("Unexpected end of input, expected ELSE, ELSEIF or END IF", nil)

		default:
			return nil, p.errorAt("Unexpected keyword "+keyword+", expected ELSE, ELSEIF or END IF", nil)
		}
	}

	// the whole thing closes with an END IF
	if _, err := p.expect(token.WORD, "if"); err != nil {
		return nil, err
	}

	return stmt, nil
}

func (p *Parser) parseDo(cmd token.Token) (ast.Statement, error) {
	if _, err := p.expect(token.WORD, "while"); err != nil {
		return nil, err
	}

	condition, err := p.parseNumericExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.EOL); err != nil {
		return nil, err
	}

	body, terminator, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if terminator != "loop" {
		return nil, p.errorAt("Expected LOOP, got "+terminator, nil)
	}

	return &ast.DoStatement{Token: cmd, Condition: condition, Body: body}, nil
}

func (p *Parser) parseFor(cmd token.Token) (ast.Statement, error) {
	name, err := p.expect(token.WORD)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SYMBOL, "="); err != nil {
		return nil, err
	}

	initial, err := p.parseNumericExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.WORD, "to"); err != nil {
		return nil, err
	}
	final, err := p.parseNumericExpr()
	if err != nil {
		return nil, err
	}

	// STEP defaults to a constant 1
	var step ast.NumericExpression = &ast.NumberLiteral{Value: number.FromInt(1)}
	found, err := p.accept(token.WORD, "step")
	if err != nil {
		return nil, err
	}
	if found != nil {
		if step, err = p.parseNumericExpr(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.EOL); err != nil {
		return nil, err
	}

	body, terminator, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if terminator != "next" {
		return nil, p.errorAt("Expected NEXT "+name.Literal+", got "+terminator, nil)
	}

	// the loop must close over the same variable
	if _, err := p.expect(token.WORD, name.Literal); err != nil {
		return nil, err
	}

	return &ast.ForStatement{
		Token:    cmd,
		Variable: name.Literal,
		Init:     initial,
		Final:    final,
		Step:     step,
		Body:     body,
	}, nil
}

func (p *Parser) parsePrint(cmd token.Token) (ast.Statement, error) {
	stmt := &ast.PrintStatement{Token: cmd}

	if p.next == nil || p.next.Type == token.EOL {
		return stmt, nil
	}

	for {
		exp, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt.Expressions = append(stmt.Expressions, exp)

		comma, err := p.accept(token.SYMBOL, ",")
		if err != nil {
			return nil, err
		}
		if comma == nil {
			return stmt, nil
		}
	}
}

func (p *Parser) parseInput(cmd token.Token) (ast.Statement, error) {
	name, err := p.expect(token.WORD)
	if err != nil {
		return nil, err
	}

	return &ast.InputStatement{Token: cmd, Name: name.Literal}, nil
}

// parseLet selects the expression grammar by the variable's name: the
// string suffix convention is the language's only type discriminator.
func (p *Parser) parseLet(cmd token.Token) (ast.Statement, error) {
	name, err := p.expect(token.WORD)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SYMBOL, "="); err != nil {
		return nil, err
	}

	stmt := &ast.LetStatement{Token: cmd, Name: name.Literal}
	if !ast.IsStringName(name.Literal) {
		stmt.NumericValue, err = p.parseNumericExpr()
	} else {
		stmt.StringValue, err = p.parseStringExpr()
	}
	if err != nil {
		return nil, err
	}

	return stmt, nil
}

func (p *Parser) parseGoto(cmd token.Token) (ast.Statement, error) {
	lex, err := p.accept(token.WORD)
	if err != nil {
		return nil, err
	}
	if lex == nil {
		if lex, err = p.accept(token.NUMBER); err != nil {
			return nil, err
		}
	}
	if lex == nil {
		return nil, p.errorAt("Expected a label", nil)
	}

	return &ast.GotoStatement{Token: cmd, Label: lex.Literal}, nil
}

func (p *Parser) parseStop(cmd token.Token) (ast.Statement, error) {
	return &ast.StopStatement{Token: cmd}, nil
}

func (p *Parser) parseExit(cmd token.Token) (ast.Statement, error) {
	name, err := p.expect(token.WORD)
	if err != nil {
		return nil, err
	}

	return &ast.ExitStatement{Token: cmd, Name: name.Literal}, nil
}
