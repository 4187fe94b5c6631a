package interp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwhitley/sbasic/berrors"
	"github.com/dwhitley/sbasic/lexer"
	"github.com/dwhitley/sbasic/mocks"
	"github.com/dwhitley/sbasic/parser"
)

func run(t *testing.T, source string, input ...string) (*mocks.MockTerm, error) {
	t.Helper()

	program, err := parser.Parse(lexer.New(source, "test.bas"))
	require.NoError(t, err)

	term := &mocks.MockTerm{Input: input}
	return term, New(program, term).Run()
}

func runOK(t *testing.T, source string, input ...string) string {
	t.Helper()

	term, err := run(t, source, input...)
	require.NoError(t, err)
	return term.Output()
}

func TestPrint(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"print 1 + 2 * 3\n", "7\n"},
		{"print 3 / 2\n", "1.5\n"},
		{"print 4 / 2\n", "2\n"},
		{"print 10 mod 3\n", "1\n"},
		{"print 2.5 + 2.5\n", "5.0\n"},
		{"print 2 * 3.5\n", "7.0\n"},
		{"print 007\n", "7\n"},
		{"print 00.5\n", "0.5\n"},
		{"print -5 + 2\n", "-3\n"},
		{"print \"a\" & \"b\"\n", "ab\n"},
		{"print \"n=\", 42\n", "n=42\n"},
		{"print\n", "\n"},
		{"print 1 < 2, 2 < 1\n", "10\n"},
		{"print not 0, not 2\n", "10\n"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, runOK(t, tt.source), "source %q", tt.source)
	}
}

func TestLet(t *testing.T) {
	output := runOK(t, "let x = 6\nlet x = x * 7\nprint x\n")
	assert.Equal(t, "42\n", output)

	// numeric and string variables live in separate namespaces
	output = runOK(t, "let v = 1\nlet v$ = \"one\"\nprint v, \" \", v$\n")
	assert.Equal(t, "1 one\n", output)
}

func TestForLoop(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"for i = 1 to 3\nprint i\nnext i\n", "1\n2\n3\n"},
		{"for i = 3 to 1 step -1\nprint i\nnext i\n", "3\n2\n1\n"},
		{"for i = 1 to 0\nprint i\nnext i\nprint \"done\"\n", "done\n"},
		{"for i = 1 to 3\nnext i\nprint i\n", "4\n"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, runOK(t, tt.source), "source %q", tt.source)
	}
}

func TestForCapturesBoundsOnce(t *testing.T) {
	// rebinding the final value mid-loop must not change the trip count
	source := "let n = 3\nfor i = 1 to n\nlet n = 10\nprint i\nnext i\n"
	assert.Equal(t, "1\n2\n3\n", runOK(t, source))
}

func TestDoLoop(t *testing.T) {
	source := "let x = 3\ndo while x > 0\nprint x\nlet x = x - 1\nloop\n"
	assert.Equal(t, "3\n2\n1\n", runOK(t, source))

	// pre-test: a false condition means zero passes
	source = "do while 0\nprint \"no\"\nloop\nprint \"after\"\n"
	assert.Equal(t, "after\n", runOK(t, source))
}

func TestIfGoto(t *testing.T) {
	source := "if 0 then yes else no\nyes: print \"y\"\nstop\nno: print \"n\"\n"
	assert.Equal(t, "n\n", runOK(t, source))

	source = "let n = 0\ntop: let n = n + 1\nif n < 3 then top\nprint n\n"
	assert.Equal(t, "3\n", runOK(t, source))
}

func TestIfBlock(t *testing.T) {
	program := "if x = 1 then\nprint \"one\"\nelseif x = 2 then\nprint \"two\"\nelse\nprint \"many\"\nend if\n"

	tests := []struct {
		prologue string
		want     string
	}{
		{"let x = 1\n", "one\n"},
		{"let x = 2\n", "two\n"},
		{"let x = 7\n", "many\n"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, runOK(t, tt.prologue+program), "prologue %q", tt.prologue)
	}

	// without an ELSE clause nothing runs on a false condition
	source := "if 0 then\nprint \"no\"\nend if\nprint \"after\"\n"
	assert.Equal(t, "after\n", runOK(t, source))
}

func TestGoto(t *testing.T) {
	source := "print \"a\"\ngoto 100\nprint \"skipped\"\n100 print \"b\"\n"
	assert.Equal(t, "a\nb\n", runOK(t, source))
}

func TestGotoLeavesNestedBlocks(t *testing.T) {
	// the loop is abandoned, not completed: i keeps its current value
	source := "for i = 1 to 10\ngoto out\nnext i\nout: print \"escaped\"\nprint i\n"
	assert.Equal(t, "escaped\n1\n", runOK(t, source))
}

func TestGotoDuplicateLabel(t *testing.T) {
	source := "goto 5\n5 print \"first\"\nstop\n5 print \"second\"\n"
	assert.Equal(t, "first\n", runOK(t, source))
}

func TestGotoUndefinedLabel(t *testing.T) {
	_, err := run(t, "goto nowhere\n")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Jump to undefined label nowhere")

	var runtimeErr *berrors.RuntimeError
	assert.True(t, errors.As(err, &runtimeErr))
}

func TestExit(t *testing.T) {
	source := "for i = 1 to 10\nif i = 3 then\nexit for\nend if\nprint i\nnext i\n"
	assert.Equal(t, "1\n2\n", runOK(t, source))

	source = "do while 1\nexit do\nloop\nprint \"out\"\n"
	assert.Equal(t, "out\n", runOK(t, source))
}

func TestExitNamesTheBlockKind(t *testing.T) {
	// EXIT DO inside a FOR unwinds through the FOR to the enclosing DO
	source := "do while 1\nfor i = 1 to 10\nprint i\nexit do\nnext i\nloop\nprint \"out\"\n"
	assert.Equal(t, "1\nout\n", runOK(t, source))
}

func TestExitWithoutBlock(t *testing.T) {
	_, err := run(t, "exit for\n")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Cannot EXIT for: No such block")
}

func TestStop(t *testing.T) {
	assert.Equal(t, "a\n", runOK(t, "print \"a\"\nstop\nprint \"b\"\n"))

	// STOP unwinds everything at once
	source := "for i = 1 to 10\nstop\nnext i\nprint \"x\"\n"
	assert.Equal(t, "", runOK(t, source))
}

func TestDynamicScoping(t *testing.T) {
	// a nested block updates the outer binding in place
	source := "let x = 1\nif 1 then\nlet x = 2\nend if\nprint x\n"
	assert.Equal(t, "2\n", runOK(t, source))

	// a binding created in a nested block dies with its frame
	_, err := run(t, "if 1 then\nlet y = 5\nend if\nprint y\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Variable y undefined")
}

func TestUndefinedVariable(t *testing.T) {
	_, err := run(t, "print z\n")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Variable z undefined")

	_, err = run(t, "print z$\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Variable z$ undefined")
}

func TestInput(t *testing.T) {
	term, err := run(t, "input n\nprint n + 1\n", "41")
	require.NoError(t, err)
	assert.Equal(t, "? 42\n", term.Output())

	// surrounding whitespace is fine
	term, err = run(t, "input n\nprint n\n", "  7  ")
	require.NoError(t, err)
	assert.Equal(t, "? 7\n", term.Output())
}

func TestInputErrors(t *testing.T) {
	tests := []struct {
		name  string
		input []string
	}{
		{"not a number", []string{"abc"}},
		{"empty line", []string{""}},
		{"end of input", nil},
	}

	for _, tt := range tests {
		_, err := run(t, "input n\n", tt.input...)

		require.Error(t, err, tt.name)
		assert.Contains(t, err.Error(), "User input error: expected an integer", tt.name)
	}
}

func TestDivisionByZero(t *testing.T) {
	_, err := run(t, "print 1 / 0\n")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Division by zero")
}

func TestModuloNeedsWholeNumbers(t *testing.T) {
	_, err := run(t, "print 2.5 mod 2\n")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Modulo operation is only defined on whole number types.")
}

func TestFloatEqualityWithinEpsilon(t *testing.T) {
	source := "if 0.1 + 0.2 = 0.3 then 9\nprint \"ne\"\nstop\n9 print \"eq\"\n"
	assert.Equal(t, "eq\n", runOK(t, source))
}

func TestBooleanShortCircuit(t *testing.T) {
	// the right side of AND never runs when the left is false
	source := "let x = 0\nif x and 1 / x then 9\nprint \"ok\"\nstop\n9 print \"bad\"\n"
	assert.Equal(t, "ok\n", runOK(t, source))
}
