package parser

import (
	"github.com/dwhitley/sbasic/ast"
	"github.com/dwhitley/sbasic/number"
	"github.com/dwhitley/sbasic/token"
)

// parseExpression dispatches to the string or numeric grammar by
// lookahead: a string literal or a string-suffixed identifier selects
// the string grammar.
func (p *Parser) parseExpression() (ast.Expression, error) {
	if p.next != nil && (p.next.Type == token.STRING ||
		(p.next.Type == token.WORD && ast.IsStringName(p.next.Literal))) {
		return p.parseStringExpr()
	}
	return p.parseNumericExpr()
}

// parseNumericExpr parses the boolean level: not, and, or
func (p *Parser) parseNumericExpr() (ast.NumericExpression, error) {
	not, err := p.accept(token.WORD, "not")
	if err != nil {
		return nil, err
	}
	if not != nil {
		left, err := p.parseNumericExpr()
		if err != nil {
			return nil, err
		}
		return &ast.BooleanExpression{Token: *not, Op: "not", Left: left}, nil
	}

	left, err := p.parseRelationalExpr()
	if err != nil {
		return nil, err
	}

	var op *token.Token
	if op, err = p.accept(token.WORD, "and"); err != nil {
		return nil, err
	}
	if op == nil {
		if op, err = p.accept(token.WORD, "or"); err != nil {
			return nil, err
		}
	}
	if op == nil {
		// not a boolean expression
		return left, nil
	}

	right, err := p.parseAdditiveExpr()
	if err != nil {
		return nil, err
	}
	return &ast.BooleanExpression{Token: *op, Op: op.Literal, Left: left, Right: right}, nil
}

// parseRelationalExpr parses a single, non-associative comparison
func (p *Parser) parseRelationalExpr() (ast.NumericExpression, error) {
	left, err := p.parseAdditiveExpr()
	if err != nil {
		return nil, err
	}

	var op *token.Token
	for _, sym := range []string{"=", "<>", "<", "<=", ">", ">="} {
		if op, err = p.accept(token.SYMBOL, sym); err != nil {
			return nil, err
		}
		if op != nil {
			break
		}
	}
	if op == nil {
		// not a relational expression
		return left, nil
	}

	right, err := p.parseAdditiveExpr()
	if err != nil {
		return nil, err
	}
	return &ast.RelationalExpression{Token: *op, Op: op.Literal, Left: left, Right: right}, nil
}

// parseAdditiveExpr parses + and -, right-associative by recursion
func (p *Parser) parseAdditiveExpr() (ast.NumericExpression, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for _, sym := range []string{"+", "-"} {
		op, err := p.accept(token.SYMBOL, sym)
		if err != nil {
			return nil, err
		}
		if op != nil {
			right, err := p.parseAdditiveExpr()
			if err != nil {
				return nil, err
			}
			return &ast.ArithExpression{Token: *op, Op: op.Literal, Left: left, Right: right}, nil
		}
	}

	return left, nil
}

// parseTerm parses *, / and mod; the right side recurses into a factor
func (p *Parser) parseTerm() (ast.NumericExpression, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	var op *token.Token
	for _, sym := range []string{"*", "/"} {
		if op, err = p.accept(token.SYMBOL, sym); err != nil {
			return nil, err
		}
		if op != nil {
			break
		}
	}
	if op == nil {
		if op, err = p.accept(token.WORD, "mod"); err != nil {
			return nil, err
		}
	}
	if op == nil {
		return left, nil
	}

	right, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	return &ast.ArithExpression{Token: *op, Op: op.Literal, Left: left, Right: right}, nil
}

// parseFactor parses a constant, a variable, or a parenthesised
// sub-expression, with an optional leading minus. A minus folds into a
// constant eagerly and rewrites a variable as (-1) * var.
func (p *Parser) parseFactor() (ast.NumericExpression, error) {
	minus, err := p.accept(token.SYMBOL, "-")
	if err != nil {
		return nil, err
	}
	negative := minus != nil

	lex, err := p.accept(token.NUMBER)
	if err != nil {
		return nil, err
	}
	if lex != nil {
		value, err := number.FromString(lex.Literal)
		if err != nil {
			return nil, err
		}
		if negative {
			value = value.Neg()
		}
		return &ast.NumberLiteral{Token: *lex, Value: value}, nil
	}

	if lex, err = p.accept(token.WORD); err != nil {
		return nil, err
	}
	if lex != nil {
		if ast.IsStringName(lex.Literal) {
			return nil, p.errorAt("String identifier in numeric expression", lex)
		}

		variable := &ast.NumericVariable{Token: *lex, Name: lex.Literal}
		if !negative {
			return variable, nil
		}
		return &ast.ArithExpression{
			Token: *lex,
			Op:    "*",
			Left:  &ast.NumberLiteral{Value: number.FromInt(-1)},
			Right: variable,
		}, nil
	}

	if lex, err = p.accept(token.SYMBOL, "("); err != nil {
		return nil, err
	}
	if lex != nil {
		sub, err := p.parseNumericExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.SYMBOL, ")"); err != nil {
			return nil, err
		}
		return sub, nil
	}

	// special-case strings so that we can produce a nicer error message
	if lex, err = p.accept(token.STRING); err != nil {
		return nil, err
	}
	if lex != nil {
		return nil, p.errorAt("String literal in numeric expression", lex)
	}

	got, err := p.acceptAny()
	if err != nil {
		return nil, err
	}
	return nil, p.errorAt("Expected an integral constant, a variable name, or an opening parenthesis", got)
}

// parseStringExpr parses right-associative & concatenation
func (p *Parser) parseStringExpr() (ast.StringExpression, error) {
	left, err := p.parseStringAtom()
	if err != nil {
		return nil, err
	}

	amp, err := p.accept(token.SYMBOL, "&")
	if err != nil {
		return nil, err
	}
	if amp == nil {
		return left, nil
	}

	right, err := p.parseStringExpr()
	if err != nil {
		return nil, err
	}
	return &ast.ConcatExpression{Token: *amp, Left: left, Right: right}, nil
}

// parseStringAtom parses a string literal, a string-suffixed
// identifier, or a parenthesised string expression.
func (p *Parser) parseStringAtom() (ast.StringExpression, error) {
	lex, err := p.accept(token.STRING)
	if err != nil {
		return nil, err
	}
	if lex != nil {
		return &ast.StringLiteral{Token: *lex, Value: lex.Literal}, nil
	}

	if lex, err = p.accept(token.WORD); err != nil {
		return nil, err
	}
	if lex != nil {
		if !ast.IsStringName(lex.Literal) {
			return nil, p.errorAt("Expected a string identifier", lex)
		}
		return &ast.StringVariable{Token: *lex, Name: lex.Literal}, nil
	}

	if lex, err = p.accept(token.SYMBOL, "("); err != nil {
		return nil, err
	}
	if lex != nil {
		sub, err := p.parseStringExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.SYMBOL, ")"); err != nil {
			return nil, err
		}
		return sub, nil
	}

	return nil, p.errorAt("Expected a string literal, string identifier or opening parenthesis", p.next)
}
