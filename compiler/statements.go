package compiler

import (
	"github.com/nand2tetris-go/jackc/jackerr"
	"github.com/nand2tetris-go/jackc/symtable"
)

// compileStatements parses and emits statement* until the enclosing '}' is
// reached, dispatching on the leading keyword.
func (c *Compiler) compileStatements() error {
	for c.peekIsKeyword("let", "if", "while", "do", "return") {
		tok := c.peek()
		var err error
		switch tok.Literal {
		case "let":
			err = c.compileLet()
		case "if":
			err = c.compileIf()
		case "while":
			err = c.compileWhile()
		case "do":
			err = c.compileDo()
		case "return":
			err = c.compileReturn()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// compileLet parses and emits 'let' name ('[' expr ']')? '=' expr ';'.
func (c *Compiler) compileLet() error {
	if _, err := c.expectKeyword("let"); err != nil {
		return err
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
		// Array assignment: push base, add index, stash RHS, fix `that`,
		// then store. The RHS is compiled BEFORE pointer 1 is fixed so that
		// if the RHS itself dereferences `that`, it sees the old binding,
		// not the new target address.
		c.cursor.Advance()
		c.out.Push(seg, entry.Index)
		if err := c.compileExpression(); err != nil {
			return err
		}
		if _, err := c.expectSymbol("]"); err != nil {
			return err
		}
		c.out.Arithmetic("add")

		if _, err := c.expectSymbol("="); err != nil {
			return err
		}
		if err := c.compileExpression(); err != nil {
			return err
		}
		if _, err := c.expectSymbol(";"); err != nil {
			return err
		}

		c.out.Pop("temp", 0)
		c.out.Pop("pointer", 1)
		c.out.Push("temp", 0)
		c.out.Pop("that", 0)
		return nil
	}

	if _, err := c.expectSymbol("="); err != nil {
		return err
	}
	if err := c.compileExpression(); err != nil {
		return err
	}
	if _, err := c.expectSymbol(";"); err != nil {
		return err
	}
	c.out.Pop(seg, entry.Index)
	return nil
}

// compileIf parses and emits 'if' '(' expr ')' '{' statements '}'
// ('else' '{' statements '}')?, with a fixed two-label shape: the condition
// negated, an if-goto past the true branch, and a goto past the else branch
// (emitted even when there is no else, leaving the region between the two
// labels empty).
func (c *Compiler) compileIf() error {
	if _, err := c.expectKeyword("if"); err != nil {
		return err
	}
	if _, err := c.expectSymbol("("); err != nil {
		return err
	}
	if err := c.compileExpression(); err != nil {
		return err
	}
	if _, err := c.expectSymbol(")"); err != nil {
		return err
	}

	n := c.nextLabelIndex()
	elseLabel := label("IF_FALSE", n)
	endLabel := label("IF_END", n)

	c.out.Arithmetic("not")
	c.out.IfGoto(elseLabel)

	if _, err := c.expectSymbol("{"); err != nil {
		return err
	}
	if err := c.compileStatements(); err != nil {
		return err
	}
	if _, err := c.expectSymbol("}"); err != nil {
		return err
	}

	c.out.Goto(endLabel)
	c.out.Label(elseLabel)

	if c.peekIsKeyword("else") {
		c.cursor.Advance()
		if _, err := c.expectSymbol("{"); err != nil {
			return err
		}
		if err := c.compileStatements(); err != nil {
			return err
		}
		if _, err := c.expectSymbol("}"); err != nil {
			return err
		}
	}

	c.out.Label(endLabel)
	return nil
}

// compileWhile parses and emits 'while' '(' expr ')' '{' statements '}'.
func (c *Compiler) compileWhile() error {
	if _, err := c.expectKeyword("while"); err != nil {
		return err
	}
	n := c.nextLabelIndex()
	topLabel := label("WHILE_EXP", n)
	endLabel := label("WHILE_END", n)

	c.out.Label(topLabel)

	if _, err := c.expectSymbol("("); err != nil {
		return err
	}
	if err := c.compileExpression(); err != nil {
		return err
	}
	if _, err := c.expectSymbol(")"); err != nil {
		return err
	}

	c.out.Arithmetic("not")
	c.out.IfGoto(endLabel)

	if _, err := c.expectSymbol("{"); err != nil {
		return err
	}
	if err := c.compileStatements(); err != nil {
		return err
	}
	if _, err := c.expectSymbol("}"); err != nil {
		return err
	}

	c.out.Goto(topLabel)
	c.out.Label(endLabel)
	return nil
}

// compileDo parses and emits 'do' subroutineCall ';'. The call always
// leaves a value on the stack; 'do' discards it.
func (c *Compiler) compileDo() error {
	if _, err := c.expectKeyword("do"); err != nil {
		return err
	}
	if err := c.compileSubroutineCall(); err != nil {
		return err
	}
	if _, err := c.expectSymbol(";"); err != nil {
		return err
	}
	c.out.Pop("temp", 0)
	return nil
}

// compileReturn parses and emits 'return' expr? ';'. Every VM function must
// return a value, so a void subroutine pushes a dummy zero regardless of
// source.
func (c *Compiler) compileReturn() error {
	if _, err := c.expectKeyword("return"); err != nil {
		return err
	}
	if c.returnType == "void" {
		if _, err := c.expectSymbol(";"); err != nil {
			return err
		}
		c.out.Push("constant", 0)
		c.out.Return()
		return nil
	}
	if err := c.compileExpression(); err != nil {
		return err
	}
	if _, err := c.expectSymbol(";"); err != nil {
		return err
	}
	c.out.Return()
	return nil
}
