package parser

import (
	"strings"

	op "github.com/XJIeI5/rpncalc/internal/operation"
	"github.com/informitas/stack"
)

// Token is one element of a postfix program: either an operand snapshot or a
// binary operator.
type Token struct {
	operand  op.Operand
	operator op.Operator
}

func operandToken(o op.Operand) Token   { return Token{operand: o} }
func operatorToken(o op.Operator) Token { return Token{operator: o} }

func (t Token) IsOperand() bool { return !t.operator.IsReal() }

func (t Token) Operand() op.Operand { return t.operand }

func (t Token) Operator() op.Operator { return t.operator }

func (t Token) String() string {
	if t.IsOperand() {
		return t.operand.String()
	}
	return t.operator.String()
}

// Expression is the result of Parse. It is not modified by Evaluate, so one
// Expression may be evaluated any number of times, also concurrently.
type Expression struct {
	stack     *stack.Stack[op.Operator]
	postfix   []Token
	anomalies []Anomaly
}

func newExpression() *Expression {
	return &Expression{stack: stack.NewStack[op.Operator]()}
}

func (e *Expression) emit(t Token) {
	e.postfix = append(e.postfix, t)
}

func (e *Expression) report(kind AnomalyKind, pos int) {
	e.anomalies = append(e.anomalies, Anomaly{Kind: kind, Pos: pos})
}

// Postfix returns a copy of the program in evaluation order.
func (e *Expression) Postfix() []Token {
	res := make([]Token, len(e.postfix))
	copy(res, e.postfix)
	return res
}

// Anomalies lists the irregularities Parse tolerated, in input order, except
// that unclosed parentheses are reported last.
func (e *Expression) Anomalies() []Anomaly {
	res := make([]Anomaly, len(e.anomalies))
	copy(res, e.anomalies)
	return res
}

// Clean reports whether the input was parsed without tolerating anything.
func (e *Expression) Clean() bool { return len(e.anomalies) == 0 }

// String renders the postfix program with every token followed by a space,
// e.g. "3 4 2 * + ".
func (e *Expression) String() string {
	var b strings.Builder
	for _, t := range e.postfix {
		b.WriteString(t.String())
		b.WriteByte(' ')
	}
	return b.String()
}
