package lexer

import (
	"strconv"

	"github.com/nand2tetris-go/jackc/jackerr"
)

// Lexer performs lexical analysis of Jack source code. It scans the source
// byte-by-byte, stripping comments and whitespace, and produces one Token
// per call to Next. It holds no state beyond its own cursor, so a Lexer is
// only ever used for a single source file.
type Lexer struct {
	src    string
	pos    int // index of the current byte
	length int
	line   int
	column int
}

// New creates a Lexer positioned at the start of src.
func New(src string) *Lexer {
	return &Lexer{src: src, pos: 0, length: len(src), line: 1, column: 1}
}

func (l *Lexer) current() byte {
	if l.pos >= l.length {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) peek() byte {
	if l.pos+1 >= l.length {
		return 0
	}
	return l.src[l.pos+1]
}

func (l *Lexer) advance() {
	if l.pos < l.length && l.src[l.pos] == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	l.pos++
}

func (l *Lexer) atEOF() bool {
	return l.pos >= l.length
}

// skipWhitespaceAndComments consumes runs of whitespace, line comments
// ("// ... \n") and block comments ("/* ... */", including the doc-comment
// form "/** ... */"). Block comments do not nest.
func (l *Lexer) skipWhitespaceAndComments() error {
	for !l.atEOF() {
		c := l.current()
		switch {
		case isWhitespace(c):
			l.advance()
		case c == '/' && l.peek() == '/':
			for !l.atEOF() && l.current() != '\n' {
				l.advance()
			}
		case c == '/' && l.peek() == '*':
			startLine, startColumn := l.line, l.column
			l.advance()
			l.advance()
			closed := false
			for !l.atEOF() {
				if l.current() == '*' && l.peek() == '/' {
					l.advance()
					l.advance()
					closed = true
					break
				}
				l.advance()
			}
			if !closed {
				return jackerr.New(jackerr.Lex, startLine, startColumn, "/*", "", "closing */")
			}
		default:
			return nil
		}
	}
	return nil
}

// Next scans and returns the next token, or an EOF_TYPE token once the
// source is exhausted. It returns an error for any of the lex failure modes:
// unterminated string, out-of-range integer, digit-leading identifier,
// unrecognized character.
func (l *Lexer) Next() (Token, error) {
	if err := l.skipWhitespaceAndComments(); err != nil {
		return Token{}, err
	}
	if l.atEOF() {
		return NewToken(EOF_TYPE, "", l.line, l.column), nil
	}

	line, column := l.line, l.column
	c := l.current()

	switch {
	case c == '"':
		return l.readString(line, column)
	case Symbols[c]:
		l.advance()
		return NewToken(SYMBOL_TYPE, string(c), line, column), nil
	case isDigit(c):
		return l.readNumber(line, column)
	case isIdentStart(c):
		return l.readWord(line, column)
	default:
		l.advance()
		return Token{}, jackerr.New(jackerr.Lex, line, column, string(c), "", "a recognized character")
	}
}

// readString reads a Jack string literal. It begins at the opening '"' and
// ends at the next '"'; Jack strings have no escape sequences, so the
// content runs verbatim, spaces included, up to that closing quote. The
// returned token's Literal excludes both quotes.
func (l *Lexer) readString(line, column int) (Token, error) {
	l.advance() // consume opening quote
	start := l.pos
	for {
		if l.atEOF() {
			return Token{}, jackerr.New(jackerr.Lex, line, column, "\"", "", "closing \"")
		}
		if l.current() == '"' {
			break
		}
		l.advance()
	}
	content := l.src[start:l.pos]
	l.advance() // consume closing quote
	return NewToken(STRING_CONST_TYPE, content, line, column), nil
}

// readNumber reads a run of decimal digits as an IntegerConstant. A digit
// run immediately followed by a letter or underscore (e.g. "1abc") is a lex
// error: identifiers may not begin with a digit, and this word is not a
// valid integer either.
func (l *Lexer) readNumber(line, column int) (Token, error) {
	start := l.pos
	for !l.atEOF() && isDigit(l.current()) {
		l.advance()
	}
	if !l.atEOF() && (isAlpha(l.current()) || l.current() == '_') {
		wordStart := start
		for !l.atEOF() && isIdentPart(l.current()) {
			l.advance()
		}
		return Token{}, jackerr.New(jackerr.Lex, line, column, l.src[wordStart:l.pos], "", "a valid integer constant")
	}
	text := l.src[start:l.pos]
	value, err := strconv.Atoi(text)
	if err != nil || value < 0 || value > MaxIntLiteral {
		return Token{}, jackerr.New(jackerr.Lex, line, column, text, "", "an integer in [0, 32767]")
	}
	return NewToken(INT_CONST_TYPE, text, line, column), nil
}

// readWord reads a maximal run of letters, digits, and underscores not
// starting with a digit, and classifies it as a keyword or identifier.
func (l *Lexer) readWord(line, column int) (Token, error) {
	start := l.pos
	for !l.atEOF() && isIdentPart(l.current()) {
		l.advance()
	}
	word := l.src[start:l.pos]
	return NewToken(classify(word), word, line, column), nil
}

// All tokenizes the entire source and returns the full token slice. It is a
// convenience used by the parser and by the --tokens debug dump; it stops
// (returning the error) at the first lex failure.
func All(src string) ([]Token, error) {
	lex := New(src)
	var tokens []Token
	for {
		tok, err := lex.Next()
		if err != nil {
			return nil, err
		}
		if tok.Type == EOF_TYPE {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentStart(c byte) bool {
	return isAlpha(c) || c == '_'
}

func isIdentPart(c byte) bool {
	return isAlpha(c) || isDigit(c) || c == '_'
}
