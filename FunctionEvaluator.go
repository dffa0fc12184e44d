package main

import (
	"fmt"
	"math"
	"strings"
)

// Aggregate function names as they appear in formula bodies.
const (
	FunctionSum     = "SUMME"
	FunctionMin     = "MIN"
	FunctionMax     = "MAX"
	FunctionAverage = "MITTELWERT"
)

var functionNames = []string{FunctionSum, FunctionMin, FunctionMax, FunctionAverage}

// FunctionEvaluator reduces a single range argument over the grid for
// the fixed set of aggregate functions. Multi-range and nested
// arguments are unsupported.
type FunctionEvaluator struct {
	grid     *CellGrid
	resolver *AddressResolver
}

func NewFunctionEvaluator(grid *CellGrid, resolver *AddressResolver) *FunctionEvaluator {
	return &FunctionEvaluator{grid: grid, resolver: resolver}
}

// MatchFunction reports the function name an uppercased formula body
// starts with, or "" when the body is a plain expression.
func MatchFunction(body string) string {
	upper := strings.ToUpper(body)
	for _, name := range functionNames {
		if strings.HasPrefix(upper, name+"(") {
			return name
		}
	}
	return ""
}

func (e *FunctionEvaluator) Evaluate(name string, body string) (int64, error) {
	if !strings.HasSuffix(body, ")") {
		return 0, fmt.Errorf("%w: unterminated %s call", UnexpectedTokenError, name)
	}

	rangeExpr := strings.TrimSpace(body[len(name)+1 : len(body)-1])
	values, err := e.rangeValues(rangeExpr)
	if err != nil {
		return 0, err
	}

	switch name {
	case FunctionSum:
		var sum int64
		for _, v := range values {
			sum += v
		}
		return sum, nil

	case FunctionMin:
		if len(values) == 0 {
			return 0, EmptyRangeError
		}
		best := values[0]
		for _, v := range values[1:] {
			if v < best {
				best = v
			}
		}
		return best, nil

	case FunctionMax:
		if len(values) == 0 {
			return 0, EmptyRangeError
		}
		best := values[0]
		for _, v := range values[1:] {
			if v > best {
				best = v
			}
		}
		return best, nil

	case FunctionAverage:
		if len(values) == 0 {
			return 0, EmptyRangeError
		}
		var sum int64
		for _, v := range values {
			sum += v
		}
		// math.Round rounds halves away from zero, the documented
		// tie-breaking rule for MITTELWERT.
		return int64(math.Round(float64(sum) / float64(len(values)))), nil
	}

	return 0, fmt.Errorf("%w: unknown function %s", UnexpectedTokenError, name)
}

// rangeValues collects the numeric values of a range in row-major
// order. Empty cells are skipped and do not count toward the
// aggregate's cardinality; any other non-integer value fails the call.
func (e *FunctionEvaluator) rangeValues(rangeExpr string) ([]int64, error) {
	rowStart, colStart, rowEnd, colEnd, err := e.resolver.ParseRange(rangeExpr)
	if err != nil {
		return nil, err
	}

	values := make([]int64, 0, (rowEnd-rowStart+1)*(colEnd-colStart+1))
	for row := rowStart; row <= rowEnd; row++ {
		for col := colStart; col <= colEnd; col++ {
			text := strings.TrimSpace(e.grid.Read(row, col))
			if text == "" {
				continue
			}
			value, err := parseInteger(text)
			if err != nil {
				return nil, err
			}
			values = append(values, value)
		}
	}

	return values, nil
}
