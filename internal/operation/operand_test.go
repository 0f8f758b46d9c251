package op

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func appendDigits(o *Operand, digits string) {
	for _, r := range digits {
		if r == '.' {
			o.MarkDecimal()
			continue
		}
		o.AppendDigit(uint8(r - '0'))
	}
}

func TestOperandEmpty(t *testing.T) {
	o := NewOperand()
	assert.False(t, o.Initialized())
	assert.Equal(t, 0.0, o.Value())
}

func TestOperandWhole(t *testing.T) {
	o := NewOperand()
	appendDigits(&o, "1024")
	assert.True(t, o.Initialized())
	assert.Equal(t, 1024.0, o.Value())
	assert.Equal(t, "1024", o.String())
}

func TestOperandFraction(t *testing.T) {
	o := NewOperand()
	appendDigits(&o, "3.14")
	assert.InDelta(t, 3.14, o.Value(), 1e-12)
	assert.Equal(t, "3.14", o.String())

	o = NewOperand()
	appendDigits(&o, ".5")
	assert.Equal(t, 0.5, o.Value())
}

func TestOperandPointOnly(t *testing.T) {
	o := NewOperand()
	assert.False(t, o.MarkDecimal())
	assert.True(t, o.MarkDecimal())
	assert.False(t, o.Initialized())
}

func TestOperandRepeatedPoint(t *testing.T) {
	// The second point changes nothing: digits keep extending the fraction.
	o := NewOperand()
	appendDigits(&o, "1.2.3")
	assert.InDelta(t, 1.23, o.Value(), 1e-12)
}

func TestOperandNegate(t *testing.T) {
	o := NewOperand()
	appendDigits(&o, "2.5")
	o.negate()
	assert.Equal(t, -2.5, o.Value())
}

func TestOperandWrapAround(t *testing.T) {
	o := NewOperand()
	// 2^32 + 5 wraps modulo 2^32 in the 32-bit whole part.
	appendDigits(&o, "4294967301")
	assert.Equal(t, 5.0, o.Value())

	o = NewOperand()
	appendDigits(&o, "2147483648")
	assert.Equal(t, float64(math.MinInt32), o.Value())
}
