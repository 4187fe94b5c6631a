package interp

import (
	"fmt"

	"github.com/dwhitley/sbasic/ast"
	"github.com/dwhitley/sbasic/number"
)

// representation renders an expression for PRINT: numeric expressions
// as the decimal text of their value, string expressions as-is.
func (in *Interpreter) representation(exp ast.Expression) (string, error) {
	switch exp := exp.(type) {
	case ast.NumericExpression:
		value, err := in.evalNumeric(exp)
		if err != nil {
			return "", err
		}
		return value.String(), nil

	case ast.StringExpression:
		return in.evalString(exp)
	}

	return "", fmt.Errorf("cannot represent expression type %T", exp)
}

// evalNumeric evaluates the numeric expression family
func (in *Interpreter) evalNumeric(exp ast.NumericExpression) (number.Number, error) {
	switch exp := exp.(type) {
	case *ast.NumberLiteral:
		return exp.Value, nil

	case *ast.NumericVariable:
		return in.numericVar(exp.Name)

	case *ast.ArithExpression:
		return in.evalArith(exp)

	case *ast.RelationalExpression:
		return in.evalRelational(exp)

	case *ast.BooleanExpression:
		return in.evalBoolean(exp)
	}

	return number.Number{}, fmt.Errorf("cannot evaluate numeric expression type %T", exp)
}

func (in *Interpreter) evalArith(exp *ast.ArithExpression) (number.Number, error) {
	left, err := in.evalNumeric(exp.Left)
	if err != nil {
		return number.Number{}, err
	}
	right, err := in.evalNumeric(exp.Right)
	if err != nil {
		return number.Number{}, err
	}

	switch exp.Op {
	case "+":
		return left.Add(right), nil
	case "-":
		return left.Sub(right), nil
	case "*":
		return left.Mul(right), nil
	case "/":
		return left.Div(right)
	case "mod":
		return left.Mod(right)
	}

	return number.Number{}, fmt.Errorf("unknown arithmetic operator %s", exp.Op)
}

// evalRelational yields the numeric booleans 0 and 1
func (in *Interpreter) evalRelational(exp *ast.RelationalExpression) (number.Number, error) {
	left, err := in.evalNumeric(exp.Left)
	if err != nil {
		return number.Number{}, err
	}
	right, err := in.evalNumeric(exp.Right)
	if err != nil {
		return number.Number{}, err
	}

	switch exp.Op {
	case "=":
		return number.FromBool(left.Equal(right)), nil
	case "<>":
		return number.FromBool(!left.Equal(right)), nil
	case "<":
		return number.FromBool(left.Less(right)), nil
	case "<=":
		return number.FromBool(left.LessEq(right)), nil
	case ">":
		return number.FromBool(left.Greater(right)), nil
	case ">=":
		return number.FromBool(left.GreaterEq(right)), nil
	}

	return number.Number{}, fmt.Errorf("unknown relational operator %s", exp.Op)
}

// evalBoolean short-circuits and/or on the left operand
func (in *Interpreter) evalBoolean(exp *ast.BooleanExpression) (number.Number, error) {
	left, err := in.evalNumeric(exp.Left)
	if err != nil {
		return number.Number{}, err
	}

	switch exp.Op {
	case "not":
		return number.FromBool(!left.IsTrue()), nil

	case "and":
		if !left.IsTrue() {
			return number.FromBool(false), nil
		}
		right, err := in.evalNumeric(exp.Right)
		if err != nil {
			return number.Number{}, err
		}
		return number.FromBool(right.IsTrue()), nil

	case "or":
		if left.IsTrue() {
			return number.FromBool(true), nil
		}
		right, err := in.evalNumeric(exp.Right)
		if err != nil {
			return number.Number{}, err
		}
		return number.FromBool(right.IsTrue()), nil
	}

	return number.Number{}, fmt.Errorf("unknown boolean operator %s", exp.Op)
}

// evalString evaluates the string expression family
func (in *Interpreter) evalString(exp ast.StringExpression) (string, error) {
	switch exp := exp.(type) {
	case *ast.StringLiteral:
		return exp.Value, nil

	case *ast.StringVariable:
		return in.stringVar(exp.Name)

	case *ast.ConcatExpression:
		left, err := in.evalString(exp.Left)
		if err != nil {
			return "", err
		}
		right, err := in.evalString(exp.Right)
		if err != nil {
			return "", err
		}
		return left + right, nil
	}

	return "", fmt.Errorf("cannot evaluate string expression type %T", exp)
}
