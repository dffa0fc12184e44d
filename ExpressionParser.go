package main

import (
	"fmt"
	"strings"
)

// ExpressionParser converts an infix token sequence into postfix (RPN)
// with the shunting-yard algorithm. Cell references are resolved to
// numeric literals immediately, against the referenced cell's value at
// this moment; later writes to that cell never re-trigger evaluation.
type ExpressionParser struct {
	grid     *CellGrid
	resolver *AddressResolver
}

func NewExpressionParser(grid *CellGrid, resolver *AddressResolver) *ExpressionParser {
	return &ExpressionParser{grid: grid, resolver: resolver}
}

var operatorPrecedence = map[string]int{
	"^": 3,
	"*": 2, "/": 2,
	"+": 1, "-": 1,
}

// isLeftAssociative reports operator associativity; only
// exponentiation groups to the right.
func isLeftAssociative(operator string) bool {
	return operator != "^"
}

func (p *ExpressionParser) ToPostfix(tokens []Token) ([]Token, error) {
	output := make([]Token, 0, len(tokens))
	stack := make([]Token, 0, len(tokens))

	for _, token := range tokens {
		switch token.Kind {
		case TokenReference:
			literal, err := p.resolveReference(token.Lexeme)
			if err != nil {
				return nil, err
			}
			output = append(output, Token{Kind: TokenNumber, Lexeme: literal})

		case TokenNumber:
			output = append(output, token)

		case TokenOperator:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Kind != TokenOperator {
					break
				}
				if operatorPrecedence[top.Lexeme] > operatorPrecedence[token.Lexeme] ||
					(operatorPrecedence[top.Lexeme] == operatorPrecedence[token.Lexeme] && isLeftAssociative(token.Lexeme)) {
					output = append(output, top)
					stack = stack[:len(stack)-1]
					continue
				}
				break
			}
			stack = append(stack, token)

		case TokenParenOpen:
			stack = append(stack, token)

		case TokenParenClose:
			matched := false
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Kind == TokenParenOpen {
					matched = true
					break
				}
				output = append(output, top)
			}
			if !matched {
				return nil, MismatchedParensError
			}

		case TokenSeparator:
			// Ranges and argument lists only exist inside recognized
			// function calls, which never reach this parser.
			return nil, fmt.Errorf("%w: %q", UnexpectedTokenError, token.Lexeme)
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Kind == TokenParenOpen {
			return nil, MismatchedParensError
		}
		output = append(output, top)
	}

	return output, nil
}

// resolveReference reads the referenced cell and yields its numeric
// literal. Empty cells count as "0"; a cell holding a display error
// code poisons the expression instead of coercing to zero.
func (p *ExpressionParser) resolveReference(address string) (string, error) {
	row, col, err := p.resolver.ParseAddress(address)
	if err != nil {
		return "", fmt.Errorf("%w: %s", RefError, address)
	}

	value := strings.TrimSpace(p.grid.Read(row, col))
	if value == "" {
		return "0", nil
	}
	if strings.HasPrefix(value, "#") {
		return "", fmt.Errorf("%w: %s holds %s", RefError, address, value)
	}
	if !integerRegex.MatchString(value) {
		return "", fmt.Errorf("%w: %s holds %q", NotNumberError, address, value)
	}

	return value, nil
}
