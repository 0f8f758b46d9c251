package op_test

import (
	"math"
	"testing"

	op "github.com/XJIeI5/rpncalc/internal/operation"
	"github.com/stretchr/testify/assert"
)

func TestFromRune(t *testing.T) {
	cases := map[rune]op.Operator{
		'+': op.Add,
		'-': op.Sub,
		'*': op.Mult,
		'/': op.Div,
		'^': op.Exp,
		'(': op.OpenParen,
		')': op.ClosedParen,
		'7': op.None,
		'.': op.None,
		' ': op.None,
		'x': op.None,
	}
	for r, want := range cases {
		assert.Equal(t, want, op.FromRune(r), "rune %q", r)
	}
}

func TestLookup(t *testing.T) {
	o, ok := op.Lookup('^')
	assert.True(t, ok)
	assert.Equal(t, op.Exp, o)

	_, ok = op.Lookup('\n')
	assert.False(t, ok)
}

func TestPrecedence(t *testing.T) {
	assert.Equal(t, 1, op.Add.Precedence())
	assert.Equal(t, 1, op.Sub.Precedence())
	assert.Equal(t, 2, op.Mult.Precedence())
	assert.Equal(t, 2, op.Div.Precedence())
	assert.Equal(t, 3, op.Exp.Precedence())
	assert.Equal(t, 0, op.OpenParen.Precedence())
	assert.Equal(t, 0, op.ClosedParen.Precedence())
	assert.Equal(t, 0, op.None.Precedence())
}

func TestClassification(t *testing.T) {
	for _, o := range []op.Operator{op.Add, op.Sub, op.Mult, op.Div, op.Exp, op.OpenParen, op.ClosedParen} {
		assert.True(t, o.IsReal(), o.String())
		assert.Equal(t, o == op.Exp, o.IsRightAssociative(), o.String())
		assert.Equal(t, o != op.OpenParen && o != op.ClosedParen, o.IsBinary(), o.String())
	}
	assert.False(t, op.None.IsReal())
	assert.False(t, op.None.IsBinary())
}

func TestApply(t *testing.T) {
	assert.Equal(t, 7.0, op.Add.Apply(3, 4))
	assert.Equal(t, -1.0, op.Sub.Apply(3, 4))
	assert.Equal(t, 12.0, op.Mult.Apply(3, 4))
	assert.Equal(t, 0.75, op.Div.Apply(3, 4))
	assert.Equal(t, 81.0, op.Exp.Apply(3, 4))
	assert.Equal(t, 0.5, op.Exp.Apply(4, -0.5))
	assert.Equal(t, 0.0, op.OpenParen.Apply(3, 4))

	assert.True(t, math.IsInf(op.Div.Apply(5, 0), 1))
	assert.True(t, math.IsInf(op.Div.Apply(-5, 0), -1))
	assert.True(t, math.IsNaN(op.Div.Apply(0, 0)))
	assert.True(t, math.IsNaN(op.Exp.Apply(-8, 0.5)))
}
