package obd

import (
	"strconv"
	"strings"

	"github.com/provrb/obdium/internal/obderr"
)

// evaluator is a small recursive-descent parser over the grammar
// expr := term (('+'|'-') term)*
// term := factor (('*'|'/') factor)*
// factor := number | letter | '(' expr ')' | '-' factor
// covering exactly the `+ - * / ( )` and single-letter A..E variable
// subset Mode 22 equations need, grounded on the design note in §9
// permitting a hand-rolled evaluator instead of a general expression
// library.
type evaluator struct {
	src  string
	pos  int
	vars map[byte]float64
}

func newEvaluator(src string, vars map[byte]float64) *evaluator {
	return &evaluator{src: src, vars: vars}
}

func (e *evaluator) peek() byte {
	e.skipSpace()
	if e.pos >= len(e.src) {
		return 0
	}
	return e.src[e.pos]
}

func (e *evaluator) skipSpace() {
	for e.pos < len(e.src) && e.src[e.pos] == ' ' {
		e.pos++
	}
}

func (e *evaluator) advance() byte {
	c := e.peek()
	e.pos++
	return c
}

// evaluate parses and evaluates e.src fully, failing if any input
// remains unconsumed.
func (e *evaluator) evaluate() (float64, error) {
	v, err := e.expr()
	if err != nil {
		return 0, err
	}
	e.skipSpace()
	if e.pos != len(e.src) {
		return 0, obderr.Msg(obderr.ParseError, "unexpected trailing input at position "+strconv.Itoa(e.pos))
	}
	return v, nil
}

func (e *evaluator) expr() (float64, error) {
	v, err := e.term()
	if err != nil {
		return 0, err
	}
	for {
		switch e.peek() {
		case '+':
			e.advance()
			rhs, err := e.term()
			if err != nil {
				return 0, err
			}
			v += rhs
		case '-':
			e.advance()
			rhs, err := e.term()
			if err != nil {
				return 0, err
			}
			v -= rhs
		default:
			return v, nil
		}
	}
}

func (e *evaluator) term() (float64, error) {
	v, err := e.factor()
	if err != nil {
		return 0, err
	}
	for {
		switch e.peek() {
		case '*':
			e.advance()
			rhs, err := e.factor()
			if err != nil {
				return 0, err
			}
			v *= rhs
		case '/':
			e.advance()
			rhs, err := e.factor()
			if err != nil {
				return 0, err
			}
			if rhs == 0 {
				return 0, obderr.Msg(obderr.ParseError, "division by zero")
			}
			v /= rhs
		default:
			return v, nil
		}
	}
}

func (e *evaluator) factor() (float64, error) {
	c := e.peek()
	switch {
	case c == '-':
		e.advance()
		v, err := e.factor()
		return -v, err
	case c == '(':
		e.advance()
		v, err := e.expr()
		if err != nil {
			return 0, err
		}
		if e.peek() != ')' {
			return 0, obderr.Msg(obderr.ParseError, "expected closing parenthesis")
		}
		e.advance()
		return v, nil
	case c >= 'A' && c <= 'E':
		e.advance()
		v, ok := e.vars[c]
		if !ok {
			return 0, obderr.Msg(obderr.ParseError, "unbound variable "+string(c))
		}
		return v, nil
	case c == '.' || (c >= '0' && c <= '9'):
		start := e.pos
		for e.pos < len(e.src) && (e.src[e.pos] == '.' || (e.src[e.pos] >= '0' && e.src[e.pos] <= '9')) {
			e.pos++
		}
		n, err := strconv.ParseFloat(e.src[start:e.pos], 64)
		if err != nil {
			return 0, obderr.Wrap(obderr.ParseError, err)
		}
		return n, nil
	default:
		return 0, obderr.Msg(obderr.ParseError, "unexpected character in equation")
	}
}

// evaluateEquation evaluates equation (a Mode 22 formula string using
// only A..E, digits, '.', '+', '-', '*', '/', '(', ')'), binding only the
// letters that actually appear in equation to their values in bindings,
// per §4.12.
func evaluateEquation(equation string, bindings map[byte]float64) (float64, error) {
	used := map[byte]float64{}
	for _, letter := range []byte{'A', 'B', 'C', 'D', 'E'} {
		if strings.IndexByte(equation, letter) >= 0 {
			used[letter] = bindings[letter]
		}
	}
	return newEvaluator(equation, used).evaluate()
}
