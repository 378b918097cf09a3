/*
File    : jackc/tokenstream/cursor.go

Package tokenstream provides a bounded, random-access view over a fixed
slice of lexer.Token, with a single-slot saved position for look-behind
speculation.
*/
package tokenstream

import "github.com/nand2tetris-go/jackc/lexer"

// Cursor is a read-only walk over a token slice. The zero value is not
// usable; construct one with New.
//
// Invariants: 0 <= pos <= len(tokens); if marked is true, mark <= pos.
type Cursor struct {
	tokens []lexer.Token
	pos    int
	mark   int
	marked bool
}

// New wraps tokens for traversal, cursor positioned before the first token.
func New(tokens []lexer.Token) *Cursor {
	return &Cursor{tokens: tokens}
}

// More reports whether any tokens remain at or after the cursor.
func (c *Cursor) More() bool {
	return c.pos < len(c.tokens)
}

// Peek returns the token at the cursor without advancing. Past the end of
// the stream it returns the zero Token, which matches no keyword or symbol,
// so callers may peek without checking More first.
func (c *Cursor) Peek() lexer.Token {
	if !c.More() {
		return lexer.Token{}
	}
	return c.tokens[c.pos]
}

// PeekAt returns the token offset ahead of the cursor (0 == Peek), or the
// zero Token if that position is past the end. This is the lookahead used to
// disambiguate a term without needing mark/rewind.
func (c *Cursor) PeekAt(offset int) lexer.Token {
	i := c.pos + offset
	if i < 0 || i >= len(c.tokens) {
		return lexer.Token{}
	}
	return c.tokens[i]
}

// PeekType returns the type of the token at the cursor.
func (c *Cursor) PeekType() lexer.TokenType {
	return c.Peek().Type
}

// Advance returns the token at the cursor, then moves the cursor forward
// by one.
func (c *Cursor) Advance() lexer.Token {
	tok := c.Peek()
	if c.More() {
		c.pos++
	}
	return tok
}

// Mark saves the current cursor position. A single slot is supported; a
// second Mark before a Rewind overwrites the first. The compiler package
// disambiguates terms with PeekAt and does not call Mark.
func (c *Cursor) Mark() {
	c.mark = c.pos
	c.marked = true
}

// Rewind restores the cursor to the most recently saved Mark. Calling
// Rewind without a prior Mark is a no-op.
func (c *Cursor) Rewind() {
	if c.marked {
		c.pos = c.mark
		c.marked = false
	}
}
