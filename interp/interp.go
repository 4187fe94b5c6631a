// Package interp executes a parsed program. Execution walks a stack of
// frames, one per active block: the program itself, a taken IF branch,
// or a loop body pass. The AST is read-only for the interpreter's
// lifetime; all mutable state lives in the frames.
package interp

import (
	"github.com/dwhitley/sbasic/ast"
	"github.com/dwhitley/sbasic/berrors"
	"github.com/dwhitley/sbasic/number"
)

// Console is the I/O surface the interpreter drives: one write per
// PRINT statement, one prompt write and one synchronous line read per
// INPUT statement.
type Console interface {
	Print(s string)
	Println(s string)
	ReadLine() (string, error)
}

// frame is one active block: a cursor into its statement sequence plus
// the variables bound there. owner is the loop statement that pushed
// the frame, nil for the program and for IF bodies.
type frame struct {
	owner   ast.BlockStatement
	block   *ast.Block
	pos     int
	numVars map[string]number.Number
	strVars map[string]string
}

// forState holds a FOR loop's step and final values, captured once on
// entry and never re-evaluated.
type forState struct {
	step  number.Number
	final number.Number
}

// Interpreter runs one program once
type Interpreter struct {
	frames   []*frame // innermost at the end
	stopped  bool
	term     Console
	forState map[*ast.ForStatement]forState
}

// New creates an interpreter for a program, ready to Run
func New(program *ast.Block, term Console) *Interpreter {
	in := &Interpreter{
		term:     term,
		forState: map[*ast.ForStatement]forState{},
	}
	in.enterBlock(program, nil)
	return in
}

// Run executes statements until the stack empties or a STOP statement
// halts the run. Any error is terminal.
func (in *Interpreter) Run() error {
	in.stopped = false

	for len(in.frames) > 0 && !in.stopped {
		f := in.top()

		if f.pos >= len(f.block.Statements) {
			// fell off the end of the block; loop frames get a
			// chance to start another pass
			owner := f.owner
			in.popFrame()
			if owner != nil {
				if err := in.iterate(owner); err != nil {
					return err
				}
			}
			continue
		}

		stmt := f.block.Statements[f.pos]
		f.pos++
		if err := in.execute(stmt); err != nil {
			return err
		}
	}

	return nil
}

func (in *Interpreter) top() *frame {
	return in.frames[len(in.frames)-1]
}

func (in *Interpreter) popFrame() {
	in.frames = in.frames[:len(in.frames)-1]
}

// enterBlock pushes a new frame at the start of a block
func (in *Interpreter) enterBlock(block *ast.Block, owner ast.BlockStatement) {
	in.frames = append(in.frames, &frame{
		owner:   owner,
		block:   block,
		numVars: map[string]number.Number{},
		strVars: map[string]string{},
	})
}

// jump scans frames innermost to outermost for the first block whose
// jump table holds the label, repositions that frame's cursor there and
// discards every frame above it. A jump is not a loop completion: no
// iterate protocol runs for the discarded frames.
func (in *Interpreter) jump(label string) error {
	for len(in.frames) > 0 {
		f := in.top()
		if pos, ok := f.block.Label(label); ok {
			f.pos = pos
			return nil
		}
		in.popFrame()
	}

	return berrors.NewRuntime("Jump to undefined label %s", label)
}

// exitBlock pops frames until one owned by a block statement of the
// given name has been popped.
func (in *Interpreter) exitBlock(name string) error {
	for len(in.frames) > 0 {
		var popped string
		if f := in.top(); f.owner != nil {
			popped = f.owner.BlockName()
		}

		in.popFrame()
		if popped == name {
			return nil
		}
	}

	return berrors.NewRuntime("Cannot EXIT %s: No such block", name)
}

// stop clears the whole stack at once; the run is over
func (in *Interpreter) stop() {
	in.frames = nil
	in.stopped = true
}

// numericVar walks frames innermost to outermost for a binding
func (in *Interpreter) numericVar(name string) (number.Number, error) {
	for i := len(in.frames) - 1; i >= 0; i-- {
		if v, ok := in.frames[i].numVars[name]; ok {
			return v, nil
		}
	}

	return number.Number{}, berrors.NewRuntime("Variable %s undefined", name)
}

// setNumericVar updates the innermost existing binding, or creates one
// in the current frame when the name is unbound everywhere.
func (in *Interpreter) setNumericVar(name string, value number.Number) {
	for i := len(in.frames) - 1; i >= 0; i-- {
		if _, ok := in.frames[i].numVars[name]; ok {
			in.frames[i].numVars[name] = value
			return
		}
	}

	in.top().numVars[name] = value
}

func (in *Interpreter) stringVar(name string) (string, error) {
	for i := len(in.frames) - 1; i >= 0; i-- {
		if v, ok := in.frames[i].strVars[name]; ok {
			return v, nil
		}
	}

	return "", berrors.NewRuntime("Variable %s undefined", name)
}

func (in *Interpreter) setStringVar(name string, value string) {
	for i := len(in.frames) - 1; i >= 0; i-- {
		if _, ok := in.frames[i].strVars[name]; ok {
			in.frames[i].strVars[name] = value
			return
		}
	}

	in.top().strVars[name] = value
}
