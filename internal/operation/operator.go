package op

import "math"

// Operator is a single non-digit token of an infix expression.
// The zero value None marks a rune that is not an operator.
type Operator int

const (
	None Operator = iota
	Add
	Sub
	Mult
	Div
	Exp
	OpenParen
	ClosedParen
)

// FromRune classifies r. Anything outside "+-*/^()" yields None.
func FromRune(r rune) Operator {
	switch r {
	case '+':
		return Add
	case '-':
		return Sub
	case '*':
		return Mult
	case '/':
		return Div
	case '^':
		return Exp
	case '(':
		return OpenParen
	case ')':
		return ClosedParen
	default:
		return None
	}
}

// Lookup is FromRune with the None case reported as ok == false.
func Lookup(r rune) (Operator, bool) {
	o := FromRune(r)
	return o, o.IsReal()
}

func (o Operator) Precedence() int {
	switch o {
	case Add, Sub:
		return 1
	case Mult, Div:
		return 2
	case Exp:
		return 3
	default:
		return 0
	}
}

func (o Operator) IsRightAssociative() bool { return o == Exp }

func (o Operator) IsReal() bool { return o != None }

// IsBinary reports whether o takes two operands, i.e. it is a real
// operator other than a parenthesis.
func (o Operator) IsBinary() bool {
	switch o {
	case Add, Sub, Mult, Div, Exp:
		return true
	default:
		return false
	}
}

// Apply computes "left o right". Division and exponentiation follow IEEE 754,
// so x/0 is ±Inf and a negative base with a fractional power is NaN.
// Non-binary operators return 0.
func (o Operator) Apply(left, right float64) float64 {
	switch o {
	case Add:
		return left + right
	case Sub:
		return left - right
	case Mult:
		return left * right
	case Div:
		return left / right
	case Exp:
		return math.Pow(left, right)
	default:
		return 0
	}
}

func (o Operator) String() string {
	switch o {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mult:
		return "*"
	case Div:
		return "/"
	case Exp:
		return "^"
	case OpenParen:
		return "("
	case ClosedParen:
		return ")"
	default:
		return ""
	}
}
