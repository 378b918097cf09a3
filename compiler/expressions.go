package compiler

import (
	"strconv"

	"github.com/nand2tetris-go/jackc/jackerr"
	"github.com/nand2tetris-go/jackc/lexer"
	"github.com/nand2tetris-go/jackc/symtable"
	"github.com/nand2tetris-go/jackc/vmwriter"
)

// binaryOps maps a Jack operator symbol to the VM instruction it emits
// after its right operand. '*' and '/' are calls, not arithmetic opcodes,
// and are handled specially below.
var binaryOps = map[string]vmwriter.Op{
	"+": "add", "-": "sub", "&": "and", "|": "or", "<": "lt", ">": "gt", "=": "eq",
}

// compileExpression parses and emits term (op term)*. Jack has no operator
// precedence: operators are applied strictly left to right as they appear.
func (c *Compiler) compileExpression() error {
	if err := c.compileTerm(); err != nil {
		return err
	}
	for c.peekIsAnyBinaryOp() {
		opTok := c.cursor.Advance()
		if err := c.compileTerm(); err != nil {
			return err
		}
		switch opTok.Literal {
		case "*":
			c.out.Call("Math.multiply", 2)
		case "/":
			c.out.Call("Math.divide", 2)
		default:
			c.out.Arithmetic(binaryOps[opTok.Literal])
		}
	}
	return nil
}

func (c *Compiler) peekIsAnyBinaryOp() bool {
	tok := c.peek()
	if tok.Type != lexer.SYMBOL_TYPE {
		return false
	}
	if tok.Literal == "*" || tok.Literal == "/" {
		return true
	}
	_, ok := binaryOps[tok.Literal]
	return ok
}

// compileTerm parses and emits a single term: a literal, a keyword constant,
// a parenthesized expression, a unary operator applied to a term, or an
// identifier form whose meaning is disambiguated by the next one or two
// tokens.
func (c *Compiler) compileTerm() error {
	if c.atEnd() {
		return c.unexpectedEOF("a term")
	}
	tok := c.peek()

	switch tok.Type {
	case lexer.INT_CONST_TYPE:
		c.cursor.Advance()
		n, err := strconv.Atoi(tok.Literal)
		if err != nil {
			return jackerr.New(jackerr.Lex, tok.Line, tok.Column, tok.Literal, string(tok.Type), "a valid integer constant")
		}
		c.out.Push("constant", n)
		return nil

	case lexer.STRING_CONST_TYPE:
		c.cursor.Advance()
		return c.emitStringConstant(tok.Literal)

	case lexer.KEYWORD_TYPE:
		switch tok.Literal {
		case "true":
			c.cursor.Advance()
			c.out.Push("constant", 0)
			c.out.Arithmetic("not")
			return nil
		case "false", "null":
			c.cursor.Advance()
			c.out.Push("constant", 0)
			return nil
		case "this":
			c.cursor.Advance()
			c.out.Push("pointer", 0)
			return nil
		default:
			return jackerr.New(jackerr.Parse, tok.Line, tok.Column, tok.Literal, string(tok.Type), "a term")
		}

	case lexer.SYMBOL_TYPE:
		switch tok.Literal {
		case "(":
			c.cursor.Advance()
			if err := c.compileExpression(); err != nil {
				return err
			}
			_, err := c.expectSymbol(")")
			return err
		case "-":
			c.cursor.Advance()
			if err := c.compileTerm(); err != nil {
				return err
			}
			c.out.Arithmetic("neg")
			return nil
		case "~":
			c.cursor.Advance()
			if err := c.compileTerm(); err != nil {
				return err
			}
			c.out.Arithmetic("not")
			return nil
		default:
			return jackerr.New(jackerr.Parse, tok.Line, tok.Column, tok.Literal, string(tok.Type), "a term")
		}

	case lexer.IDENTIFIER_TYPE:
		return c.compileIdentifierTerm()

	default:
		return jackerr.New(jackerr.Parse, tok.Line, tok.Column, tok.Literal, string(tok.Type), "a term")
	}
}

// emitStringConstant allocates a Jack string object and appends each
// character, matching the only way Jack source can build a String value.
func (c *Compiler) emitStringConstant(s string) error {
	c.out.Push("constant", len(s))
	c.out.Call("String.new", 1)
	for i := 0; i < len(s); i++ {
		c.out.Push("constant", int(s[i]))
		c.out.Call("String.appendChar", 2)
	}
	return nil
}

// compileIdentifierTerm disambiguates an identifier-led term by looking one
// or two tokens ahead, without needing mark/rewind:
//   - next is '(' or '.'  -> subroutine call
//   - next is '['         -> array access
//   - otherwise           -> plain variable read
func (c *Compiler) compileIdentifierTerm() error {
	next := c.cursor.PeekAt(1)

	if next.Type == lexer.SYMBOL_TYPE && (next.Literal == "(" || next.Literal == ".") {
		return c.compileSubroutineCall()
	}

	name, err := c.expectIdentifier()
	if err != nil {
		return err
	}
	entry, ok := c.sym.Lookup(name.Literal)
	if !ok {
		return jackerr.New(jackerr.Symbol, name.Line, name.Column, name.Literal, "", "a previously declared variable")
	}
	seg := symtable.SegmentOf(entry.Kind)

	if c.peekIsSymbol("[") {
		c.cursor.Advance()
		c.out.Push(seg, entry.Index)
		if err := c.compileExpression(); err != nil {
			return err
		}
		if _, err := c.expectSymbol("]"); err != nil {
			return err
		}
		c.out.Arithmetic("add")
		c.out.Pop("pointer", 1)
		c.out.Push("that", 0)
		return nil
	}

	c.out.Push(seg, entry.Index)
	return nil
}

// compileSubroutineCall parses and emits one of the two call forms sharing
// an identifier first token:
//
//	name ( args )          -- method call on the current object
//	name1 . name2 ( args ) -- static call, constructor call, or method call
//	                           on an object variable
func (c *Compiler) compileSubroutineCall() error {
	first, err := c.expectIdentifier()
	if err != nil {
		return err
	}

	if c.peekIsSymbol("(") {
		// Implicit method call on the current object: push the receiver
		// first, then the arguments.
		c.out.Push("pointer", 0)
		nArgs, err := c.compileArgList()
		if err != nil {
			return err
		}
		c.out.Call(c.className+"."+first.Literal, nArgs+1)
		return nil
	}

	if _, err := c.expectSymbol("."); err != nil {
		return err
	}
	second, err := c.expectIdentifier()
	if err != nil {
		return err
	}

	if entry, ok := c.sym.Lookup(first.Literal); ok {
		// first is a variable: push the receiver, call on its declared type.
		seg := symtable.SegmentOf(entry.Kind)
		c.out.Push(seg, entry.Index)
		nArgs, err := c.compileArgList()
		if err != nil {
			return err
		}
		c.out.Call(entry.Type+"."+second.Literal, nArgs+1)
		return nil
	}

	// first is a class name not in any scope: static/constructor call.
	nArgs, err := c.compileArgList()
	if err != nil {
		return err
	}
	c.out.Call(first.Literal+"."+second.Literal, nArgs)
	return nil
}

// compileArgList parses '(' (expr (',' expr)*)? ')' and returns the number
// of expressions compiled.
func (c *Compiler) compileArgList() (int, error) {
	if _, err := c.expectSymbol("("); err != nil {
		return 0, err
	}
	if c.peekIsSymbol(")") {
		c.cursor.Advance()
		return 0, nil
	}
	count := 0
	for {
		if err := c.compileExpression(); err != nil {
			return 0, err
		}
		count++
		if c.peekIsSymbol(",") {
			c.cursor.Advance()
			continue
		}
		break
	}
	if _, err := c.expectSymbol(")"); err != nil {
		return 0, err
	}
	return count, nil
}
