package main

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

const Operators = "+-*/^"

// integerRegex is the accepted operand and literal grammar: optional
// leading minus, then decimal digits. No decimals, no leading plus.
var integerRegex = regexp.MustCompile(`^-?[0-9]+$`)

// RpnEvaluator walks a postfix token sequence with a single int64
// operand stack. Division by zero is the only fault surfaced as a
// runtime arithmetic error; everything else is structural.
type RpnEvaluator struct{}

func NewRpnEvaluator() *RpnEvaluator {
	return &RpnEvaluator{}
}

func (e *RpnEvaluator) Evaluate(postfix []Token) (int64, error) {
	stack := make([]int64, 0, len(postfix))

	for _, token := range postfix {
		if token.Kind != TokenOperator {
			operand, err := parseInteger(token.Lexeme)
			if err != nil {
				return 0, err
			}
			stack = append(stack, operand)
			continue
		}

		if len(stack) < 2 {
			return 0, MalformedExpressionError
		}
		b := stack[len(stack)-1]
		a := stack[len(stack)-2]
		stack = stack[:len(stack)-2]

		var result int64
		switch token.Lexeme {
		case "+":
			result = a + b
		case "-":
			result = a - b
		case "*":
			result = a * b
		case "/":
			if b == 0 {
				return 0, DivideByZeroError
			}
			result = a / b
		case "^":
			result = int64(math.Pow(float64(a), float64(b)))
		}
		stack = append(stack, result)
	}

	if len(stack) != 1 {
		return 0, MalformedExpressionError
	}
	return stack[0], nil
}

func parseInteger(s string) (int64, error) {
	if !integerRegex.MatchString(s) {
		return 0, fmt.Errorf("%w: %q", NotNumberError, s)
	}
	return strconv.ParseInt(s, 10, 64)
}
