package main

import (
	"fmt"
	"strings"
)

type TokenKind int

const (
	TokenReference TokenKind = iota
	TokenNumber
	TokenOperator
	TokenParenOpen
	TokenParenClose
	TokenSeparator
)

// Token is a tagged lexeme. The kind is decided once here and never
// re-sniffed downstream.
type Token struct {
	Kind   TokenKind
	Lexeme string
}

type Tokenizer struct{}

func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Tokenize lexes a formula body (marker already stripped) into a flat
// token sequence. The input is uppercased and whitespace-stripped
// first; any character matching no category fails the whole scan.
func (t *Tokenizer) Tokenize(body string) ([]Token, error) {
	s := strings.ToUpper(removeWhitespace(body))

	tokens := make([]Token, 0, len(s))
	for i := 0; i < len(s); {
		ch := s[i]

		switch {
		case ch >= 'A' && ch <= 'Z':
			start := i
			for i < len(s) && s[i] >= 'A' && s[i] <= 'Z' {
				i++
			}
			if i >= len(s) || s[i] < '0' || s[i] > '9' {
				return nil, fmt.Errorf("%w: %q", UnexpectedTokenError, s[start:i])
			}
			for i < len(s) && s[i] >= '0' && s[i] <= '9' {
				i++
			}
			tokens = append(tokens, Token{Kind: TokenReference, Lexeme: s[start:i]})

		case ch >= '0' && ch <= '9':
			start := i
			for i < len(s) && s[i] >= '0' && s[i] <= '9' {
				i++
			}
			tokens = append(tokens, Token{Kind: TokenNumber, Lexeme: s[start:i]})

		case strings.ContainsRune(Operators, rune(ch)):
			tokens = append(tokens, Token{Kind: TokenOperator, Lexeme: string(ch)})
			i++

		case ch == '(':
			tokens = append(tokens, Token{Kind: TokenParenOpen, Lexeme: "("})
			i++

		case ch == ')':
			tokens = append(tokens, Token{Kind: TokenParenClose, Lexeme: ")"})
			i++

		case ch == ':' || ch == ',':
			tokens = append(tokens, Token{Kind: TokenSeparator, Lexeme: string(ch)})
			i++

		default:
			return nil, fmt.Errorf("%w: %q", UnexpectedTokenError, string(ch))
		}
	}

	return tokens, nil
}

func removeWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			return -1
		}
		return r
	}, s)
}
