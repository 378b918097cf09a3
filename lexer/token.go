/*
File    : jackc/lexer/token.go

Package lexer implements lexical analysis for Jack source code.
*/
package lexer

import "fmt"

// TokenType classifies a lexical token produced by the Lexer.
// It is defined as a string so that token kinds double as human-readable
// debug output without a separate String() method.
type TokenType string

// Token kinds. Jack has exactly five: keyword, symbol, integer constant,
// string constant, and identifier.
const (
	EOF_TYPE TokenType = "EOF"

	KEYWORD_TYPE TokenType = "Keyword"
	SYMBOL_TYPE  TokenType = "Symbol"

	INT_CONST_TYPE    TokenType = "IntegerConstant"
	STRING_CONST_TYPE TokenType = "StringConstant"
	IDENTIFIER_TYPE   TokenType = "Identifier"
)

// Keywords is the exact reserved-word set of Jack. Anything not in this map
// is either a symbol, a literal, or an identifier.
var Keywords = map[string]bool{
	"class": true, "method": true, "function": true, "constructor": true,
	"int": true, "boolean": true, "char": true, "void": true,
	"var": true, "static": true, "field": true,
	"let": true, "do": true, "if": true, "else": true, "while": true, "return": true,
	"true": true, "false": true, "null": true, "this": true,
}

// Symbols is the exact symbol alphabet of Jack. The lexer splits on every
// one of these characters, retaining each as its own token.
var Symbols = map[byte]bool{
	'{': true, '}': true, '(': true, ')': true, '[': true, ']': true,
	'.': true, ',': true, ';': true,
	'+': true, '-': true, '*': true, '/': true,
	'&': true, '|': true, '<': true, '>': true, '=': true, '~': true,
}

// MaxIntLiteral is the inclusive upper bound for a Jack IntegerConstant,
// the largest positive value of the Hack platform's 16-bit two's-complement
// word. Integers outside
// [0, MaxIntLiteral] are a lex error.
const MaxIntLiteral = 32767

// Token is a single lexical unit: its kind, its literal spelling, and its
// source position (1-indexed line/column) for error reporting.
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

// NewToken builds a Token at the given source position.
func NewToken(typ TokenType, literal string, line, column int) Token {
	return Token{Type: typ, Literal: literal, Line: line, Column: column}
}

// String renders a token as "literal:type".
func (t Token) String() string {
	return fmt.Sprintf("%s:%s", t.Literal, t.Type)
}

// IsKeyword reports whether the token is the named keyword.
func (t Token) IsKeyword(kw string) bool {
	return t.Type == KEYWORD_TYPE && t.Literal == kw
}

// IsSymbol reports whether the token is the named single-character symbol.
func (t Token) IsSymbol(sym string) bool {
	return t.Type == SYMBOL_TYPE && t.Literal == sym
}

// classify returns the token type for a word that is neither a string literal
// nor a bare symbol: a keyword or an identifier. Digit-led words never reach
// it; readNumber handles those.
func classify(word string) TokenType {
	if Keywords[word] {
		return KEYWORD_TYPE
	}
	return IDENTIFIER_TYPE
}
