package obd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateEquationArithmetic(t *testing.T) {
	v, err := evaluateEquation("(A+B)/2", map[byte]float64{'A': 10, 'B': 20})
	assert.NoError(t, err)
	assert.Equal(t, 15.0, v)
}

func TestEvaluateEquationOnlyBindsReferencedLetters(t *testing.T) {
	v, err := evaluateEquation("A*2", map[byte]float64{'A': 3})
	assert.NoError(t, err)
	assert.Equal(t, 6.0, v)
}

func TestEvaluateEquationUnaryMinus(t *testing.T) {
	v, err := evaluateEquation("-A+10", map[byte]float64{'A': 4})
	assert.NoError(t, err)
	assert.Equal(t, 6.0, v)
}

func TestEvaluateEquationDivisionByZero(t *testing.T) {
	_, err := evaluateEquation("A/0", map[byte]float64{'A': 1})
	assert.Error(t, err)
}

func TestEvaluateEquationMalformedSyntax(t *testing.T) {
	_, err := evaluateEquation("A+", map[byte]float64{'A': 1})
	assert.Error(t, err)
}
