package parser

import (
	"fmt"
	"unicode"

	op "github.com/XJIeI5/rpncalc/internal/operation"
)

var (
	ErrNotClosedParen       = fmt.Errorf("paren doesn't closed")
	ErrNoOpenParen          = fmt.Errorf("closed paren located before open paren")
	ErrRepeatedDecimalPoint = fmt.Errorf("second decimal point in number")
	ErrUnknownSymbol        = fmt.Errorf("unknown symbol")
)

// Parse converts an infix expression to postfix order in a single pass with
// the shunting-yard algorithm. It never fails: malformed input yields a
// program that Evaluate may reject, and the tolerated irregularities are
// available from Anomalies.
func Parse(infixExpr string) *Expression {
	e := newExpression()
	operand := op.NewOperand()
	var opens []int

	for i, r := range infixExpr {
		switch {
		case r >= '0' && r <= '9':
			operand.AppendDigit(uint8(r - '0'))
		case r == '.':
			if operand.MarkDecimal() {
				e.report(RepeatedDecimalPoint, i)
			}
		default:
			oper, ok := op.Lookup(r)
			if ok && operand.Initialized() {
				e.emit(operandToken(operand))
				operand = op.NewOperand()
			}
			switch {
			case !ok:
				if !unicode.IsSpace(r) {
					e.report(IgnoredSymbol, i)
				}
			case oper == op.OpenParen:
				e.stack.Push(oper)
				opens = append(opens, i)
			case oper == op.ClosedParen:
				if e.parseClosedParen() {
					opens = opens[:len(opens)-1]
				} else {
					e.report(UnmatchedCloseParen, i)
				}
			default:
				e.parseBinaryOperator(oper)
			}
		}
	}

	if operand.Initialized() {
		e.emit(operandToken(operand))
	}
	for !e.stack.IsEmpty() {
		oper, _ := e.stack.Pop()
		if oper.IsBinary() {
			e.emit(operatorToken(oper))
		}
	}
	for _, pos := range opens {
		e.report(UnmatchedOpenParen, pos)
	}

	return e
}

// parseClosedParen moves operators to the output until the matching open
// paren, which is dropped. It reports whether that paren was found.
func (e *Expression) parseClosedParen() bool {
	for !e.stack.IsEmpty() {
		oper, _ := e.stack.Pop()
		if oper == op.OpenParen {
			return true
		}
		e.emit(operatorToken(oper))
	}
	return false
}

func (e *Expression) parseBinaryOperator(oper op.Operator) {
	for !e.stack.IsEmpty() {
		peek, _ := e.stack.Top()
		if oper.Precedence() < peek.Precedence() ||
			(oper.Precedence() == peek.Precedence() && !oper.IsRightAssociative()) {
			e.stack.Pop()
			e.emit(operatorToken(peek))
			continue
		}
		break
	}
	e.stack.Push(oper)
}

// ParseToPostfix is the strict form of Parse: any anomaly is returned as an
// error instead of being tolerated.
func ParseToPostfix(infixExpr string) (string, error) {
	e := Parse(infixExpr)
	if !e.Clean() {
		return "", e.anomalies[0].Err()
	}
	return e.String(), nil
}

// EvalString parses and evaluates infixExpr.
func EvalString(infixExpr string) (float64, error) {
	return Parse(infixExpr).Evaluate()
}
