package compiler

import (
	"github.com/nand2tetris-go/jackc/jackerr"
	"github.com/nand2tetris-go/jackc/symtable"
)

// compileClass parses and emits 'class' Name '{' classVarDec* subroutineDec* '}'.
func (c *Compiler) compileClass() error {
	if _, err := c.expectKeyword("class"); err != nil {
		return err
	}
	name, err := c.expectIdentifier()
	if err != nil {
		return err
	}
	c.className = name.Literal

	if _, err := c.expectSymbol("{"); err != nil {
		return err
	}

	for c.peekIsKeyword("static", "field") {
		if err := c.compileClassVarDec(); err != nil {
			return err
		}
	}
	for c.peekIsKeyword("constructor", "function", "method") {
		if err := c.compileSubroutineDec(); err != nil {
			return err
		}
	}

	_, err = c.expectSymbol("}")
	return err
}

// compileClassVarDec parses ('static'|'field') type name (',' name)* ';' and
// defines each name on the class scope.
func (c *Compiler) compileClassVarDec() error {
	kindTok, err := c.expectKeyword("static", "field")
	if err != nil {
		return err
	}
	kind := symtable.Static
	if kindTok.Literal == "field" {
		kind = symtable.Field
	}

	typ, err := c.parseType()
	if err != nil {
		return err
	}

	for {
		name, err := c.expectIdentifier()
		if err != nil {
			return err
		}
		if !c.sym.Define(name.Literal, typ, kind) {
			return jackerr.New(jackerr.Symbol, name.Line, name.Column, name.Literal, "", "a name not already defined in this scope")
		}
		if c.peekIsSymbol(",") {
			c.cursor.Advance()
			continue
		}
		break
	}
	_, err = c.expectSymbol(";")
	return err
}

// parseType parses ('int'|'char'|'boolean'|className) and returns its
// spelling.
func (c *Compiler) parseType() (string, error) {
	if c.peekIsKeyword("int", "char", "boolean") {
		tok, _ := c.expectKeyword("int", "char", "boolean")
		return tok.Literal, nil
	}
	tok, err := c.expectIdentifier()
	if err != nil {
		return "", jackerr.New(jackerr.Parse, c.peek().Line, c.peek().Column, c.peek().Literal, string(c.peek().Type), "a type ('int', 'char', 'boolean', or a class name)")
	}
	return tok.Literal, nil
}

// compileSubroutineDec parses and emits one subroutine declaration,
// following the Jack calling convention step by step:
//
//  1. reset subroutine scope; for a method, bind 'this' as argument 0
//     before the parameter list so real parameters get indices 1..n
//  2. parse the parameter list
//  3. parse all var declarations, counting locals, before emitting
//     "function Class.sub k"
//  4. constructor: allocate the object and anchor 'this'
//  5. method: bind the receiver
//  6. compile statements
func (c *Compiler) compileSubroutineDec() error {
	flavorTok, err := c.expectKeyword("constructor", "function", "method")
	if err != nil {
		return err
	}
	flavor := flavorTok.Literal

	if c.peekIsKeyword("void") {
		c.cursor.Advance()
		c.returnType = "void"
	} else {
		typ, err := c.parseType()
		if err != nil {
			return err
		}
		c.returnType = typ
	}

	nameTok, err := c.expectIdentifier()
	if err != nil {
		return err
	}
	subName := nameTok.Literal

	c.sym.StartSubroutine()
	if flavor == "method" {
		c.sym.Define("this", c.className, symtable.Arg)
	}

	if _, err := c.expectSymbol("("); err != nil {
		return err
	}
	if err := c.compileParameterList(); err != nil {
		return err
	}
	if _, err := c.expectSymbol(")"); err != nil {
		return err
	}

	if _, err := c.expectSymbol("{"); err != nil {
		return err
	}
	for c.peekIsKeyword("var") {
		if err := c.compileVarDec(); err != nil {
			return err
		}
	}

	qualified := c.className + "." + subName
	c.out.Function(qualified, c.sym.Count(symtable.Var))
	c.out.Indent()

	switch flavor {
	case "constructor":
		c.out.Push("constant", c.sym.Count(symtable.Field))
		c.out.Call("Memory.alloc", 1)
		c.out.Pop("pointer", 0)
	case "method":
		c.out.Push(symtable.SegArgument, 0)
		c.out.Pop("pointer", 0)
	}

	if err := c.compileStatements(); err != nil {
		return err
	}

	c.out.Dedent()
	_, err = c.expectSymbol("}")
	return err
}

// compileParameterList parses ((type name) (',' type name)*)? and defines
// each parameter as an Arg, continuing the index sequence past the
// synthetic 'this' binding for methods.
func (c *Compiler) compileParameterList() error {
	if c.peekIsSymbol(")") {
		return nil
	}
	for {
		typ, err := c.parseType()
		if err != nil {
			return err
		}
		name, err := c.expectIdentifier()
		if err != nil {
			return err
		}
		if !c.sym.Define(name.Literal, typ, symtable.Arg) {
			return jackerr.New(jackerr.Symbol, name.Line, name.Column, name.Literal, "", "a name not already defined in this scope")
		}
		if c.peekIsSymbol(",") {
			c.cursor.Advance()
			continue
		}
		return nil
	}
}

// compileVarDec parses 'var' type name (',' name)* ';' and defines each name
// as a Var on the subroutine scope.
func (c *Compiler) compileVarDec() error {
	if _, err := c.expectKeyword("var"); err != nil {
		return err
	}
	typ, err := c.parseType()
	if err != nil {
		return err
	}
	for {
		name, err := c.expectIdentifier()
		if err != nil {
			return err
		}
		if !c.sym.Define(name.Literal, typ, symtable.Var) {
			return jackerr.New(jackerr.Symbol, name.Line, name.Column, name.Literal, "", "a name not already defined in this scope")
		}
		if c.peekIsSymbol(",") {
			c.cursor.Advance()
			continue
		}
		break
	}
	_, err = c.expectSymbol(";")
	return err
}
