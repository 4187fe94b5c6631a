// Package ast defines the statement and expression nodes the parser
// builds and the interpreter walks. Nodes are immutable after parsing.
package ast

import (
	"bytes"
	"strings"

	"github.com/dwhitley/sbasic/number"
	"github.com/dwhitley/sbasic/token"
)

// Node defines interface for all node types
type Node interface {
	TokenLiteral() string
	String() string
}

// Statement defines the interface for all statement nodes
type Statement interface {
	Node
	statementNode()
}

// Expression is the printable interface both expression families share
type Expression interface {
	Node
	expressionNode()
}

// NumericExpression marks the numeric expression family
type NumericExpression interface {
	Expression
	numericExpr()
}

// StringExpression marks the string expression family
type StringExpression interface {
	Expression
	stringExpr()
}

// BlockStatement is a loop construct that owns a body block and supports
// repeated re-entry, distinct from its initial execution.
type BlockStatement interface {
	Statement
	BlockName() string
}

// IsStringName reports whether a name denotes a string variable. The
// trailing marker is the language's only type discriminator.
func IsStringName(name string) bool {
	return strings.HasSuffix(name, "$")
}

// IfGotoStatement is the single-line form IF <cond> THEN <label> [ELSE <label>]
type IfGotoStatement struct {
	Token     token.Token
	Condition NumericExpression
	ThenLabel string
	ElseLabel string
}

func (ifg *IfGotoStatement) statementNode() {}

// TokenLiteral returns my token literal
func (ifg *IfGotoStatement) TokenLiteral() string { return strings.ToUpper(ifg.Token.Literal) }

func (ifg *IfGotoStatement) String() string {
	var out bytes.Buffer

	out.WriteString("IF ")
	out.WriteString(ifg.Condition.String())
	out.WriteString(" THEN ")
	out.WriteString(ifg.ThenLabel)

	if ifg.ElseLabel != "" {
		out.WriteString(" ELSE ")
		out.WriteString(ifg.ElseLabel)
	}

	return out.String()
}

// IfBlockStatement is the block form with optional ELSEIF and ELSE
// clauses. Conditions[0] belongs to the IF itself; Conditions[i] to the
// i'th ELSEIF. Blocks holds one body per condition plus, when an ELSE
// clause exists, one more.
type IfBlockStatement struct {
	Token      token.Token
	Conditions []NumericExpression
	Blocks     []*Block
}

func (ifb *IfBlockStatement) statementNode() {}

// TokenLiteral returns my token literal
func (ifb *IfBlockStatement) TokenLiteral() string { return strings.ToUpper(ifb.Token.Literal) }

func (ifb *IfBlockStatement) String() string {
	var out bytes.Buffer

	for i, cond := range ifb.Conditions {
		if i == 0 {
			out.WriteString("IF ")
		} else {
			out.WriteString("ELSEIF ")
		}
		out.WriteString(cond.String())
		out.WriteString(" THEN\n")
		out.WriteString(ifb.Blocks[i].String())
	}

	if len(ifb.Blocks) == len(ifb.Conditions)+1 {
		out.WriteString("ELSE\n")
		out.WriteString(ifb.Blocks[len(ifb.Blocks)-1].String())
	}
	out.WriteString("END IF")

	return out.String()
}

// DoStatement is a pre-test loop, DO WHILE <cond> ... LOOP. The
// condition is re-evaluated before every pass.
type DoStatement struct {
	Token     token.Token
	Condition NumericExpression
	Body      *Block
}

func (do *DoStatement) statementNode() {}

// BlockName names the block for EXIT
func (do *DoStatement) BlockName() string { return "do" }

// TokenLiteral returns my token literal
func (do *DoStatement) TokenLiteral() string { return strings.ToUpper(do.Token.Literal) }

func (do *DoStatement) String() string {
	var out bytes.Buffer

	out.WriteString("DO WHILE ")
	out.WriteString(do.Condition.String())
	out.WriteString("\n")
	out.WriteString(do.Body.String())
	out.WriteString("LOOP")

	return out.String()
}

// ForStatement is FOR <var> = <init> TO <final> [STEP <expr>] ... NEXT <var>.
// Final and Step are evaluated once, on entry.
type ForStatement struct {
	Token    token.Token
	Variable string
	Init     NumericExpression
	Final    NumericExpression
	Step     NumericExpression
	Body     *Block
}

func (f *ForStatement) statementNode() {}

// BlockName names the block for EXIT
func (f *ForStatement) BlockName() string { return "for" }

// TokenLiteral returns my token literal
func (f *ForStatement) TokenLiteral() string { return strings.ToUpper(f.Token.Literal) }

func (f *ForStatement) String() string {
	var out bytes.Buffer

	out.WriteString("FOR ")
	out.WriteString(f.Variable)
	out.WriteString(" = ")
	out.WriteString(f.Init.String())
	out.WriteString(" TO ")
	out.WriteString(f.Final.String())
	out.WriteString(" STEP ")
	out.WriteString(f.Step.String())
	out.WriteString("\n")
	out.WriteString(f.Body.String())
	out.WriteString("NEXT ")
	out.WriteString(f.Variable)

	return out.String()
}

// PrintStatement emits the representation of each expression, then a newline
type PrintStatement struct {
	Token       token.Token
	Expressions []Expression
}

func (p *PrintStatement) statementNode() {}

// TokenLiteral returns my token literal
func (p *PrintStatement) TokenLiteral() string { return strings.ToUpper(p.Token.Literal) }

func (p *PrintStatement) String() string {
	var out bytes.Buffer

	out.WriteString("PRINT")
	for i, exp := range p.Expressions {
		if i > 0 {
			out.WriteString(",")
		}
		out.WriteString(" ")
		out.WriteString(exp.String())
	}

	return out.String()
}

// InputStatement reads one integer into a numeric variable
type InputStatement struct {
	Token token.Token
	Name  string
}

func (inp *InputStatement) statementNode() {}

// TokenLiteral returns my token literal
func (inp *InputStatement) TokenLiteral() string { return strings.ToUpper(inp.Token.Literal) }

func (inp *InputStatement) String() string { return "INPUT " + inp.Name }

// LetStatement assigns to a variable. Exactly one of NumericValue and
// StringValue is set, chosen at parse time by the variable's name.
type LetStatement struct {
	Token        token.Token
	Name         string
	NumericValue NumericExpression
	StringValue  StringExpression
}

func (let *LetStatement) statementNode() {}

// TokenLiteral returns my token literal
func (let *LetStatement) TokenLiteral() string { return strings.ToUpper(let.Token.Literal) }

func (let *LetStatement) String() string {
	var out bytes.Buffer

	out.WriteString("LET ")
	out.WriteString(let.Name)
	out.WriteString(" = ")
	if let.NumericValue != nil {
		out.WriteString(let.NumericValue.String())
	} else {
		out.WriteString(let.StringValue.String())
	}

	return out.String()
}

// GotoStatement transfers control to a label in any active block
type GotoStatement struct {
	Token token.Token
	Label string
}

func (g *GotoStatement) statementNode() {}

// TokenLiteral returns my token literal
func (g *GotoStatement) TokenLiteral() string { return strings.ToUpper(g.Token.Literal) }

func (g *GotoStatement) String() string { return "GOTO " + g.Label }

// StopStatement halts the run
type StopStatement struct {
	Token token.Token
}

func (s *StopStatement) statementNode() {}

// TokenLiteral returns my token literal
func (s *StopStatement) TokenLiteral() string { return strings.ToUpper(s.Token.Literal) }

func (s *StopStatement) String() string { return "STOP" }

// ExitStatement leaves the nearest enclosing block of the named kind
type ExitStatement struct {
	Token token.Token
	Name  string
}

func (e *ExitStatement) statementNode() {}

// TokenLiteral returns my token literal
func (e *ExitStatement) TokenLiteral() string { return strings.ToUpper(e.Token.Literal) }

func (e *ExitStatement) String() string { return "EXIT " + e.Name }

// EmptyStatement is a line with no content
type EmptyStatement struct {
	Token token.Token
}

func (e *EmptyStatement) statementNode() {}

// TokenLiteral returns my token literal
func (e *EmptyStatement) TokenLiteral() string { return "" }

func (e *EmptyStatement) String() string { return "" }

// NumberLiteral is a numeric constant, folded at parse time
type NumberLiteral struct {
	Token token.Token
	Value number.Number
}

func (nl *NumberLiteral) expressionNode() {}
func (nl *NumberLiteral) numericExpr()    {}

// TokenLiteral returns my token literal
func (nl *NumberLiteral) TokenLiteral() string { return nl.Token.Literal }

func (nl *NumberLiteral) String() string { return nl.Value.String() }

// NumericVariable references a numeric variable by name
type NumericVariable struct {
	Token token.Token
	Name  string
}

func (nv *NumericVariable) expressionNode() {}
func (nv *NumericVariable) numericExpr()    {}

// TokenLiteral returns my token literal
func (nv *NumericVariable) TokenLiteral() string { return nv.Token.Literal }

func (nv *NumericVariable) String() string { return nv.Name }

// ArithExpression applies +, -, *, / or mod to two numeric operands
type ArithExpression struct {
	Token token.Token
	Op    string
	Left  NumericExpression
	Right NumericExpression
}

func (ae *ArithExpression) expressionNode() {}
func (ae *ArithExpression) numericExpr()    {}

// TokenLiteral returns my token literal
func (ae *ArithExpression) TokenLiteral() string { return ae.Token.Literal }

func (ae *ArithExpression) String() string {
	return "(" + ae.Left.String() + " " + ae.Op + " " + ae.Right.String() + ")"
}

// RelationalExpression compares two numeric operands, yielding 0 or 1
type RelationalExpression struct {
	Token token.Token
	Op    string
	Left  NumericExpression
	Right NumericExpression
}

func (re *RelationalExpression) expressionNode() {}
func (re *RelationalExpression) numericExpr()    {}

// TokenLiteral returns my token literal
func (re *RelationalExpression) TokenLiteral() string { return re.Token.Literal }

func (re *RelationalExpression) String() string {
	return "(" + re.Left.String() + " " + re.Op + " " + re.Right.String() + ")"
}

// BooleanExpression applies and, or or not. Right is nil exactly when
// the operator is not.
type BooleanExpression struct {
	Token token.Token
	Op    string
	Left  NumericExpression
	Right NumericExpression
}

func (be *BooleanExpression) expressionNode() {}
func (be *BooleanExpression) numericExpr()    {}

// TokenLiteral returns my token literal
func (be *BooleanExpression) TokenLiteral() string { return be.Token.Literal }

func (be *BooleanExpression) String() string {
	if be.Op == "not" {
		return "(not " + be.Left.String() + ")"
	}
	return "(" + be.Left.String() + " " + be.Op + " " + be.Right.String() + ")"
}

// StringLiteral is quoted text
type StringLiteral struct {
	Token token.Token
	Value string
}

func (sl *StringLiteral) expressionNode() {}
func (sl *StringLiteral) stringExpr()     {}

// TokenLiteral returns my token literal
func (sl *StringLiteral) TokenLiteral() string { return sl.Token.Literal }

func (sl *StringLiteral) String() string { return `"` + sl.Value + `"` }

// StringVariable references a string variable by name
type StringVariable struct {
	Token token.Token
	Name  string
}

func (sv *StringVariable) expressionNode() {}
func (sv *StringVariable) stringExpr()     {}

// TokenLiteral returns my token literal
func (sv *StringVariable) TokenLiteral() string { return sv.Token.Literal }

func (sv *StringVariable) String() string { return sv.Name }

// ConcatExpression joins two string operands with &
type ConcatExpression struct {
	Token token.Token
	Left  StringExpression
	Right StringExpression
}

func (ce *ConcatExpression) expressionNode() {}
func (ce *ConcatExpression) stringExpr()     {}

// TokenLiteral returns my token literal
func (ce *ConcatExpression) TokenLiteral() string { return ce.Token.Literal }

func (ce *ConcatExpression) String() string {
	return "(" + ce.Left.String() + " & " + ce.Right.String() + ")"
}
