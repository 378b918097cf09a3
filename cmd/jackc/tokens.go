package main

import (
	"fmt"
	"os"

	"github.com/nand2tetris-go/jackc/lexer"
)

// dumpTokens lexes path and prints one line per token, a debug aid for
// inspecting how the lexer segments a file without running the full compile.
func dumpTokens(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	tokens, err := lexer.All(string(src))
	if err != nil {
		return err
	}
	for _, tok := range tokens {
		fmt.Printf("%-16s %-20q line=%d col=%d\n", tok.Type, tok.Literal, tok.Line, tok.Column)
	}
	return nil
}
