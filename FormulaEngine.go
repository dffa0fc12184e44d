package main

import (
	"errors"
	"fmt"
	"gridCalc/contracts"
	"strconv"
	"strings"
)

// Engine fault taxonomy. Every structural fault wraps EvaluationError;
// DivideByZeroError stands alone because it is the only fault rendered
// with its own display code.
var EvaluationError = errors.New("evaluation error")

var UnexpectedTokenError = fmt.Errorf("%w: unexpected token", EvaluationError)

var MismatchedParensError = fmt.Errorf("%w: mismatched parentheses", EvaluationError)

var MalformedExpressionError = fmt.Errorf("%w: malformed expression", EvaluationError)

var NotNumberError = fmt.Errorf("%w: not an integer", EvaluationError)

var RefError = fmt.Errorf("%w: reference error", EvaluationError)

var EmptyRangeError = fmt.Errorf("%w: empty range", EvaluationError)

var DivideByZeroError = errors.New("division by zero")

// FormulaEngine dispatches a formula body to the function evaluator or
// the expression pipeline and is the single place where engine faults
// become display error codes.
type FormulaEngine struct {
	tokenizer *Tokenizer
	parser    *ExpressionParser
	evaluator *RpnEvaluator
	functions *FunctionEvaluator
}

func NewFormulaEngine(grid *CellGrid, resolver *AddressResolver) *FormulaEngine {
	return &FormulaEngine{
		tokenizer: NewTokenizer(),
		parser:    NewExpressionParser(grid, resolver),
		evaluator: NewRpnEvaluator(),
		functions: NewFunctionEvaluator(grid, resolver),
	}
}

func (e *FormulaEngine) Evaluate(body string) string {
	body = strings.TrimSpace(body)
	if body == "" {
		return ""
	}

	result, err := e.evaluate(body)
	if err != nil {
		if errors.Is(err, DivideByZeroError) {
			return contracts.ErrorCodeDivideByZero
		}
		return contracts.ErrorCodeGeneric
	}

	return strconv.FormatInt(result, 10)
}

func (e *FormulaEngine) evaluate(body string) (int64, error) {
	if name := MatchFunction(body); name != "" {
		return e.functions.Evaluate(name, strings.ToUpper(body))
	}

	tokens, err := e.tokenizer.Tokenize(body)
	if err != nil {
		return 0, err
	}

	postfix, err := e.parser.ToPostfix(tokens)
	if err != nil {
		return 0, err
	}

	return e.evaluator.Evaluate(postfix)
}
