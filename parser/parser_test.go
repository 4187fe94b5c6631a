package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwhitley/sbasic/ast"
	"github.com/dwhitley/sbasic/berrors"
	"github.com/dwhitley/sbasic/lexer"
)

func parseProgram(t *testing.T, input string) *ast.Block {
	t.Helper()

	program, err := Parse(lexer.New(input, "test.bas"))
	require.NoError(t, err)
	return program
}

func TestStatementStrings(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"let x = 1 + 2 * 3\n", "LET x = (1 + (2 * 3))"},
		{"let x = (1 + 2) * 3\n", "LET x = ((1 + 2) * 3)"},
		{"let n = -5\n", "LET n = -5"},
		{"let n = -x\n", "LET n = (-1 * x)"},
		{"let m = 10 mod 3\n", "LET m = (10 mod 3)"},
		{"let b = 1 < 2 and x\n", "LET b = ((1 < 2) and x)"},
		{"let b = x <> y or 1\n", "LET b = ((x <> y) or 1)"},
		{"let b = not x or 1\n", "LET b = (not (x or 1))"},
		{"let s$ = \"a\" & \"b\" & c$\n", "LET s$ = (\"a\" & (\"b\" & c$))"},
		{"LET X = Y\n", "LET x = y"},
		{"print \"hi\", x + 1\n", "PRINT \"hi\", (x + 1)"},
		{"print\n", "PRINT"},
		{"input n\n", "INPUT n"},
		{"goto 100\n", "GOTO 100"},
		{"goto top\n", "GOTO top"},
		{"stop\n", "STOP"},
		{"exit do\n", "EXIT do"},
		{"if x < 10 then 100\n", "IF (x < 10) THEN 100"},
		{"if x then here else there\n", "IF x THEN here ELSE there"},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)

		require.Len(t, program.Statements, 1, "input %q", tt.input)
		assert.Equal(t, tt.want, program.Statements[0].String(), "input %q", tt.input)
	}
}

func TestBlockStatementStrings(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{
			"do while x > 0\nlet x = x - 1\nloop\n",
			"DO WHILE (x > 0)\nLET x = (x - 1)\nLOOP",
		},
		{
			"for i = 1 to 3\nprint i\nnext i\n",
			"FOR i = 1 TO 3 STEP 1\nPRINT i\nNEXT i",
		},
		{
			"for i = 10 to 0 step -2\nnext i\n",
			"FOR i = 10 TO 0 STEP -2\nNEXT i",
		},
		{
			"if x = 1 then\nprint \"one\"\nelseif x = 2 then\nprint \"two\"\nelse\nprint \"many\"\nend if\n",
			"IF (x = 1) THEN\nPRINT \"one\"\nELSEIF (x = 2) THEN\nPRINT \"two\"\nELSE\nPRINT \"many\"\nEND IF",
		},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)

		require.Len(t, program.Statements, 1, "input %q", tt.input)
		assert.Equal(t, tt.want, program.Statements[0].String(), "input %q", tt.input)
	}
}

func TestNestedBlocks(t *testing.T) {
	program := parseProgram(t, "do while 1\nfor i = 1 to 2\nprint i\nnext i\nloop\n")

	require.Len(t, program.Statements, 1)
	do, ok := program.Statements[0].(*ast.DoStatement)
	require.True(t, ok)

	require.Len(t, do.Body.Statements, 1)
	assert.IsType(t, &ast.ForStatement{}, do.Body.Statements[0])
}

func TestLoopBodyStartsAtFirstLine(t *testing.T) {
	// the header's newline must not leave an empty statement behind,
	// and a label on the first body line lands at position 0
	program := parseProgram(t, "for i = 1 to 2\n5 print i\nnext i\n")

	require.Len(t, program.Statements, 1)
	forStmt, ok := program.Statements[0].(*ast.ForStatement)
	require.True(t, ok)

	require.Len(t, forStmt.Body.Statements, 1)
	pos, ok := forStmt.Body.Label("5")
	require.True(t, ok)
	assert.Equal(t, 0, pos)
}

func TestLabels(t *testing.T) {
	program := parseProgram(t, "10 print \"a\"\ntop:\nprint \"b\"\n10 print \"c\"\n")

	require.Len(t, program.Statements, 3)

	pos, ok := program.Label("10")
	require.True(t, ok)
	assert.Equal(t, 0, pos, "first definition of a duplicate label wins")

	pos, ok = program.Label("top")
	require.True(t, ok)
	assert.Equal(t, 1, pos)

	_, ok = program.Label("bottom")
	assert.False(t, ok)
}

func TestComments(t *testing.T) {
	// a comment line leaves an empty statement in its place
	program := parseProgram(t, "rem a comment\nprint 1\n")

	require.Len(t, program.Statements, 2)
	assert.IsType(t, &ast.EmptyStatement{}, program.Statements[0])
	assert.IsType(t, &ast.PrintStatement{}, program.Statements[1])
}

func TestLabelledComment(t *testing.T) {
	// a label on a comment line survives to the following statement
	program := parseProgram(t, "100 rem note\nprint 2\n")

	require.Len(t, program.Statements, 2)
	assert.IsType(t, &ast.EmptyStatement{}, program.Statements[0])

	pos, ok := program.Label("100")
	require.True(t, ok)
	assert.Equal(t, 0, pos)
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"frobnicate\n", "Unrecognised keyword: frobnicate"},
		{"let s = \"oops\"\n", "String literal in numeric expression"},
		{"let x = y$\n", "String identifier in numeric expression"},
		{"let s$ = x\n", "Expected a string identifier"},
		{"let x = *\n", "Expected an integral constant, a variable name, or an opening parenthesis"},
		{"let x = (1 + 2\n", "Expected )"},
		{"do while 1\nprint\n", "Expected LOOP"},
		{"for i = 1 to 3\nnext j\n", "Expected i, got j"},
		{"for i = 1 to 3\nloop\n", "Expected NEXT i, got loop"},
		{"loop\n", "Unexpected loop, expected END or end-of-file"},
		{"if x then\nprint\n", "Unexpected end of input, expected ELSE, ELSEIF or END IF"},
		{"if x then\nprint\nnext\n", "Unexpected keyword next, expected ELSE, ELSEIF or END IF"},
		{"if x then +\n", "Expected a label or newline after THEN"},
		{"goto\n", "Expected a label"},
		{"if x 100\n", "Expected then, got 100"},
	}

	for _, tt := range tests {
		_, err := Parse(lexer.New(tt.input, "test.bas"))

		require.Error(t, err, "input %q", tt.input)
		assert.Contains(t, err.Error(), tt.want, "input %q", tt.input)

		var syntaxErr *berrors.SyntaxError
		assert.True(t, errors.As(err, &syntaxErr), "input %q", tt.input)
	}
}

func TestErrorPositions(t *testing.T) {
	_, err := Parse(lexer.New("print 1\nfrobnicate\n", "test.bas"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "test.bas, line 2")
}
