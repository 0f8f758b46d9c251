package op

import "strconv"

// Operand accumulates the digits of one numeric literal.
//
// The accumulators have fixed width and wrap around on very long digit runs
// instead of failing. The zero value is not ready for use, call NewOperand.
type Operand struct {
	whole    int32
	fraction uint32
	scale    uint32

	decimal     bool
	negative    bool
	initialized bool
}

func NewOperand() Operand {
	return Operand{scale: 1}
}

// AppendDigit adds d (0-9) as the next least significant digit of the whole
// part, or of the fraction once a decimal point has been marked.
func (o *Operand) AppendDigit(d uint8) {
	if o.decimal {
		o.fraction = o.fraction*10 + uint32(d)
		o.scale *= 10
	} else {
		o.whole = o.whole*10 + int32(d)
	}
	o.initialized = true
}

// MarkDecimal routes subsequent digits into the fraction. It reports whether
// the mark had already been set.
func (o *Operand) MarkDecimal() (repeated bool) {
	repeated = o.decimal
	o.decimal = true
	return repeated
}

// negate flips the sign applied by Value. Nothing outside tests calls it:
// the expression grammar has no unary minus, so literals are never negative.
func (o *Operand) negate() {
	o.negative = !o.negative
}

func (o Operand) Initialized() bool { return o.initialized }

func (o Operand) Value() float64 {
	v := float64(o.whole) + float64(o.fraction)/float64(o.scale)
	if o.negative {
		return -v
	}
	return v
}

func (o Operand) String() string {
	return strconv.FormatFloat(o.Value(), 'f', -1, 64)
}
