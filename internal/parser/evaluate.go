package parser

import (
	"fmt"

	"github.com/informitas/stack"
)

var (
	ErrMissingRightOperand = fmt.Errorf("no right operand")
	ErrMissingLeftOperand  = fmt.Errorf("no left operand")
	ErrNoResult            = fmt.Errorf("no result")
)

// Evaluate reduces the postfix program to a number. Division by zero and
// invalid powers produce ±Inf or NaN, not errors. Values left below the
// result on the stack are discarded.
func (e *Expression) Evaluate() (float64, error) {
	values := stack.NewStack[float64]()

	for _, t := range e.postfix {
		if t.IsOperand() {
			values.Push(t.operand.Value())
			continue
		}
		if values.IsEmpty() {
			return 0, ErrMissingRightOperand
		}
		right, _ := values.Pop()
		if values.IsEmpty() {
			return 0, ErrMissingLeftOperand
		}
		left, _ := values.Pop()
		values.Push(t.operator.Apply(left, right))
	}

	if values.IsEmpty() {
		return 0, ErrNoResult
	}
	res, _ := values.Pop()
	return res, nil
}
