package parser

import "fmt"

type AnomalyKind int

const (
	// UnmatchedCloseParen is a ')' that found no '(' on the stack.
	UnmatchedCloseParen AnomalyKind = iota + 1
	// UnmatchedOpenParen is a '(' still on the stack at end of input.
	UnmatchedOpenParen
	// RepeatedDecimalPoint is a second '.' inside one literal.
	RepeatedDecimalPoint
	// IgnoredSymbol is a non-space rune that is neither digit, point nor operator.
	IgnoredSymbol
)

func (k AnomalyKind) String() string {
	switch k {
	case UnmatchedCloseParen:
		return "unmatched close paren"
	case UnmatchedOpenParen:
		return "unmatched open paren"
	case RepeatedDecimalPoint:
		return "repeated decimal point"
	case IgnoredSymbol:
		return "ignored symbol"
	default:
		return "unknown anomaly"
	}
}

// Anomaly is a piece of malformed input that Parse skipped over. Pos is the
// byte offset of the offending rune.
type Anomaly struct {
	Kind AnomalyKind
	Pos  int
}

func (a Anomaly) String() string {
	return fmt.Sprintf("%s at %d", a.Kind, a.Pos)
}

// Err converts a into the matching strict-mode error.
func (a Anomaly) Err() error {
	var err error
	switch a.Kind {
	case UnmatchedCloseParen:
		err = ErrNoOpenParen
	case UnmatchedOpenParen:
		err = ErrNotClosedParen
	case RepeatedDecimalPoint:
		err = ErrRepeatedDecimalPoint
	default:
		err = ErrUnknownSymbol
	}
	return fmt.Errorf("%w at %d", err, a.Pos)
}
