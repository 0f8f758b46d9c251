package parser_test

import (
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/XJIeI5/rpncalc/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name string
		expr string
		want float64
	}{
		{"precedence", "3+4*2", 11},
		{"parens", "(3+4)*2", 14},
		{"right assoc exponent", "2^3^2", 512},
		{"decimal", "3.14", 3.14},
		{"left assoc sub", "8-4-2", 2},
		{"left assoc div", "8/4/2", 1},
		{"exponent over mult", "2*3^2", 18},
		{"fractional exponent", "16^0.5", 4},
		{"negative exponent", "2^(0-2)", 0.25},
		{"nested", "((2+3)*(4-1))/5", 3},
		{"spaces join digits", "1 0 + 1", 11},
		{"unmatched close tolerated", "1+2)*3", 9},
		{"unmatched open tolerated", "(1+2*3", 7},
		{"trailing operands discarded", "(1)(2)", 2},
		{"repeated point", "1.2.3+0", 1.23},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := parser.Parse(c.expr).Evaluate()
			require.NoError(t, err)
			assert.InDelta(t, c.want, got, 1e-12)
		})
	}
}

func TestEvaluateExact(t *testing.T) {
	got, err := parser.EvalString("3.14")
	require.NoError(t, err)
	assert.Equal(t, 3.14, got)
}

func TestEvaluateFloatEdgeCases(t *testing.T) {
	got, err := parser.EvalString("5/0")
	require.NoError(t, err)
	assert.True(t, math.IsInf(got, 1))

	got, err = parser.EvalString("(0-5)/0")
	require.NoError(t, err)
	assert.True(t, math.IsInf(got, -1))

	got, err = parser.EvalString("0/0")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got))

	got, err = parser.EvalString("(0-8)^0.5")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got))
}

func TestEvaluateErrors(t *testing.T) {
	cases := []struct {
		expr string
		err  error
	}{
		{"+3", parser.ErrMissingLeftOperand},
		{"1 * * 2", parser.ErrMissingLeftOperand},
		{"2 + 2 + ", parser.ErrMissingLeftOperand},
		{"*", parser.ErrMissingRightOperand},
		{"()+", parser.ErrMissingRightOperand},
		{"", parser.ErrNoResult},
		{"  \n", parser.ErrNoResult},
		{"(.)", parser.ErrNoResult},
	}
	for _, c := range cases {
		_, err := parser.EvalString(c.expr)
		assert.ErrorIs(t, err, c.err, "%q", c.expr)
	}
}

func TestEvaluateDoesNotMutate(t *testing.T) {
	e := parser.Parse("(1+2)^2")
	before := e.String()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := e.Evaluate()
			assert.NoError(t, err)
			assert.Equal(t, 9.0, got)
		}()
	}
	wg.Wait()
	assert.Equal(t, before, e.String())
}

func TestWhitespaceIndependence(t *testing.T) {
	cases := []struct {
		tokens []string
		want   float64
	}{
		{[]string{"(", "1", "+", "2", ")", "*", "(", "3", "-", "4", ")"}, (1 + 2) * (3 - 4)},
		{[]string{"(", "(", "6", "/", "4", ")", "^", "2", ")", "-", "1.5"}, 1.5*1.5 - 1.5},
		{[]string{"10", "-", "(", "2", "*", "(", "3", "+", "0.5", ")", ")"}, 10 - 2*(3+0.5)},
		{[]string{"2", "^", "(", "1", "+", "1", ")", "^", "3"}, 256},
	}
	for _, c := range cases {
		for _, sep := range []string{"", " ", "  ", "\t", " \n "} {
			expr := strings.Join(c.tokens, sep)
			got, err := parser.EvalString(expr)
			require.NoError(t, err, "%q", expr)
			assert.InDelta(t, c.want, got, 1e-12, "%q", expr)
		}
	}
}
