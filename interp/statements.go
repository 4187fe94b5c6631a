package interp

import (
	"fmt"
	"strings"

	"github.com/dwhitley/sbasic/ast"
	"github.com/dwhitley/sbasic/berrors"
	"github.com/dwhitley/sbasic/number"
)

// execute dispatches one statement
func (in *Interpreter) execute(stmt ast.Statement) error {
	switch stmt := stmt.(type) {
	case *ast.IfGotoStatement:
		return in.executeIfGoto(stmt)

	case *ast.IfBlockStatement:
		return in.executeIfBlock(stmt)

	case *ast.DoStatement:
		// executing DO is the same as iterating it: a pre-test loop
		return in.iterateDo(stmt)

	case *ast.ForStatement:
		return in.executeFor(stmt)

	case *ast.PrintStatement:
		return in.executePrint(stmt)

	case *ast.InputStatement:
		return in.executeInput(stmt)

	case *ast.LetStatement:
		return in.executeLet(stmt)

	case *ast.GotoStatement:
		return in.jump(stmt.Label)

	case *ast.StopStatement:
		in.stop()
		return nil

	case *ast.ExitStatement:
		return in.exitBlock(stmt.Name)

	case *ast.EmptyStatement:
		return nil
	}

	return fmt.Errorf("cannot execute statement type %T", stmt)
}

// iterate runs a loop statement's next-pass protocol after its body
// frame fell off the stack.
func (in *Interpreter) iterate(owner ast.BlockStatement) error {
	switch stmt := owner.(type) {
	case *ast.DoStatement:
		return in.iterateDo(stmt)

	case *ast.ForStatement:
		return in.iterateFor(stmt)
	}

	return fmt.Errorf("cannot iterate statement type %T", owner)
}

func (in *Interpreter) executeIfGoto(stmt *ast.IfGotoStatement) error {
	cond, err := in.evalNumeric(stmt.Condition)
	if err != nil {
		return err
	}

	if cond.IsTrue() {
		return in.jump(stmt.ThenLabel)
	}
	if stmt.ElseLabel != "" {
		return in.jump(stmt.ElseLabel)
	}
	return nil
}

// executeIfBlock enters the body of the first true condition, or the
// ELSE body when one exists. At most one body is entered.
func (in *Interpreter) executeIfBlock(stmt *ast.IfBlockStatement) error {
	for i, condition := range stmt.Conditions {
		cond, err := in.evalNumeric(condition)
		if err != nil {
			return err
		}
		if cond.IsTrue() {
			in.enterBlock(stmt.Blocks[i], nil)
			return nil
		}
	}

	if len(stmt.Blocks) == len(stmt.Conditions)+1 {
		in.enterBlock(stmt.Blocks[len(stmt.Blocks)-1], nil)
	}
	return nil
}

// iterateDo re-evaluates the condition before every pass, the first
// one included.
func (in *Interpreter) iterateDo(stmt *ast.DoStatement) error {
	cond, err := in.evalNumeric(stmt.Condition)
	if err != nil {
		return err
	}

	if cond.IsTrue() {
		in.enterBlock(stmt.Body, stmt)
	}
	return nil
}

// executeFor binds the loop variable to the initial value and captures
// step and final once; they are not re-evaluated per iteration.
func (in *Interpreter) executeFor(stmt *ast.ForStatement) error {
	initial, err := in.evalNumeric(stmt.Init)
	if err != nil {
		return err
	}
	in.setNumericVar(stmt.Variable, initial)

	step, err := in.evalNumeric(stmt.Step)
	if err != nil {
		return err
	}
	final, err := in.evalNumeric(stmt.Final)
	if err != nil {
		return err
	}
	in.forState[stmt] = forState{step: step, final: final}

	if forInRange(initial, step, final) {
		in.enterBlock(stmt.Body, stmt)
	}
	return nil
}

func (in *Interpreter) iterateFor(stmt *ast.ForStatement) error {
	state := in.forState[stmt]

	value, err := in.numericVar(stmt.Variable)
	if err != nil {
		return err
	}
	value = value.Add(state.step)
	in.setNumericVar(stmt.Variable, value)

	if forInRange(value, state.step, state.final) {
		in.enterBlock(stmt.Body, stmt)
	}
	return nil
}

func forInRange(value, step, final number.Number) bool {
	zero := number.FromInt(0)
	return (step.Greater(zero) && value.LessEq(final)) ||
		(step.Less(zero) && value.GreaterEq(final))
}

// executePrint concatenates the representation of every expression and
// emits one line in a single write.
func (in *Interpreter) executePrint(stmt *ast.PrintStatement) error {
	var out strings.Builder

	for _, exp := range stmt.Expressions {
		repr, err := in.representation(exp)
		if err != nil {
			return err
		}
		out.WriteString(repr)
	}

	in.term.Println(out.String())
	return nil
}

// executeInput prompts, reads one line and parses it as an integer
func (in *Interpreter) executeInput(stmt *ast.InputStatement) error {
	in.term.Print("? ")

	line, err := in.term.ReadLine()
	if err != nil {
		return berrors.NewRuntime("User input error: expected an integer")
	}

	var value int
	if _, err := fmt.Sscanf(strings.TrimSpace(line), "%d", &value); err != nil {
		return berrors.NewRuntime("User input error: expected an integer")
	}

	in.setNumericVar(stmt.Name, number.FromInt(value))
	return nil
}

func (in *Interpreter) executeLet(stmt *ast.LetStatement) error {
	if stmt.NumericValue != nil {
		value, err := in.evalNumeric(stmt.NumericValue)
		if err != nil {
			return err
		}
		in.setNumericVar(stmt.Name, value)
		return nil
	}

	value, err := in.evalString(stmt.StringValue)
	if err != nil {
		return err
	}
	in.setStringVar(stmt.Name, value)
	return nil
}
