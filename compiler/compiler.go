/*
File    : jackc/compiler/compiler.go

Package compiler implements a single-pass recursive-descent parser and code
generator for Jack: it consumes a Jack token stream and emits VM
instructions inline, with no intermediate AST, driving a symtable.Table and
a vmwriter.Writer as it goes.
*/
package compiler

import (
	"fmt"

	"github.com/nand2tetris-go/jackc/jackerr"
	"github.com/nand2tetris-go/jackc/lexer"
	"github.com/nand2tetris-go/jackc/symtable"
	"github.com/nand2tetris-go/jackc/tokenstream"
	"github.com/nand2tetris-go/jackc/vmwriter"
)

// Compiler holds all per-file compilation state: the token cursor, the
// symbol table, the VM writer, and the current class/subroutine context.
// One Compiler compiles exactly one class; nothing here is shared across
// files, since Jack classes compile independently of one another.
type Compiler struct {
	cursor *tokenstream.Cursor
	sym    *symtable.Table
	out    *vmwriter.Writer

	className  string
	returnType string // declared return type of the subroutine being compiled
	labelSeq   int    // monotonically increasing per class
}

// Compile reads Jack source text and writes the VM instructions for its one
// class to w. Directory walking, file pairing, and extension handling are
// the caller's job.
func Compile(src string, w *vmwriter.Writer) error {
	tokens, err := lexer.All(src)
	if err != nil {
		return err
	}
	c := &Compiler{
		cursor: tokenstream.New(tokens),
		sym:    symtable.New(),
		out:    w,
	}
	if err := c.compileClass(); err != nil {
		return err
	}
	return w.Flush()
}

// nextLabelIndex mints a fresh, class-unique label index. Both labels
// bracketing one if/while construct share the same index, only their
// prefixes differ (e.g. a loop bracketed by "WHILE_EXP0" and "WHILE_END0").
func (c *Compiler) nextLabelIndex() int {
	n := c.labelSeq
	c.labelSeq++
	return n
}

// label formats a class-unique label as prefix+index.
func label(prefix string, index int) string {
	return fmt.Sprintf("%s%d", prefix, index)
}

// ---- token-matching helpers -------------------------------------------------
//
// Jack's grammar needs no operator precedence and only one token of
// lookahead almost everywhere, so a small set of expect*/peekIs* helpers
// covers every dispatch point instead of a precedence-climbing parser.

// peek is the token at the cursor.
func (c *Compiler) peek() lexer.Token { return c.cursor.Peek() }

// atEnd reports whether the token stream is exhausted.
func (c *Compiler) atEnd() bool { return !c.cursor.More() }

// unexpectedEOF builds the Parse error for running out of tokens mid-rule.
func (c *Compiler) unexpectedEOF(want string) error {
	return jackerr.New(jackerr.Parse, 0, 0, "", "EOF", want)
}

// expectSymbol consumes the current token if it is the exact symbol sym,
// or returns a Parse error naming what was expected.
func (c *Compiler) expectSymbol(sym string) (lexer.Token, error) {
	if c.atEnd() {
		return lexer.Token{}, c.unexpectedEOF("'" + sym + "'")
	}
	tok := c.peek()
	if !tok.IsSymbol(sym) {
		return lexer.Token{}, jackerr.New(jackerr.Parse, tok.Line, tok.Column, tok.Literal, string(tok.Type), "'"+sym+"'")
	}
	return c.cursor.Advance(), nil
}

// expectKeyword consumes the current token if it is one of the given
// keywords, returning which one matched.
func (c *Compiler) expectKeyword(kws ...string) (lexer.Token, error) {
	if c.atEnd() {
		return lexer.Token{}, c.unexpectedEOF(oneOf(kws))
	}
	tok := c.peek()
	for _, kw := range kws {
		if tok.IsKeyword(kw) {
			return c.cursor.Advance(), nil
		}
	}
	return lexer.Token{}, jackerr.New(jackerr.Parse, tok.Line, tok.Column, tok.Literal, string(tok.Type), oneOf(kws))
}

// expectIdentifier consumes the current token if it is an identifier.
func (c *Compiler) expectIdentifier() (lexer.Token, error) {
	if c.atEnd() {
		return lexer.Token{}, c.unexpectedEOF("identifier")
	}
	tok := c.peek()
	if tok.Type != lexer.IDENTIFIER_TYPE {
		return lexer.Token{}, jackerr.New(jackerr.Parse, tok.Line, tok.Column, tok.Literal, string(tok.Type), "identifier")
	}
	return c.cursor.Advance(), nil
}

// peekIsSymbol reports whether the current token is the exact symbol sym,
// without consuming it. Used at the symbol-driven one-token-of-lookahead
// dispatch points (end of a list, '[' after a name, etc.).
func (c *Compiler) peekIsSymbol(sym string) bool {
	return c.peek().IsSymbol(sym)
}

func (c *Compiler) peekIsKeyword(kws ...string) bool {
	tok := c.peek()
	for _, kw := range kws {
		if tok.IsKeyword(kw) {
			return true
		}
	}
	return false
}

func oneOf(options []string) string {
	if len(options) == 1 {
		return options[0]
	}
	s := "one of "
	for i, o := range options {
		if i > 0 {
			s += ", "
		}
		s += "'" + o + "'"
	}
	return s
}
