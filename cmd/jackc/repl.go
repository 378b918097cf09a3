package main

import (
	"bytes"
	"strings"

	"github.com/chzyer/readline"
	"github.com/nand2tetris-go/jackc/compiler"
	"github.com/nand2tetris-go/jackc/vmwriter"
)

const (
	replBanner = `jackc interactive compiler`
	replLine   = "--------------------------------------------------"
)

// runRepl starts an interactive console that accumulates lines of Jack
// source until a blank line, then compiles the accumulated class and prints
// the VM instructions it emits.
func runRepl() {
	cyanColor.Println(replLine)
	cyanColor.Println(replBanner)
	cyanColor.Println(replLine)
	cyanColor.Printf("jackc %s | enter a class, blank line to compile, '.exit' to quit\n", VERSION)
	cyanColor.Println(replLine)

	rl, err := readline.New("jack> ")
	if err != nil {
		redColor.Printf("[REPL ERROR] %v\n", err)
		return
	}
	defer rl.Close()

	var buf strings.Builder
	for {
		line, err := rl.Readline()
		if err != nil {
			yellowColor.Println("Good bye!")
			return
		}
		trimmed := strings.TrimSpace(line)

		if trimmed == ".exit" {
			yellowColor.Println("Good bye!")
			return
		}

		if trimmed == "" {
			src := buf.String()
			buf.Reset()
			if strings.TrimSpace(src) == "" {
				continue
			}
			rl.SaveHistory(src)
			compileAndPrint(src)
			continue
		}

		buf.WriteString(line)
		buf.WriteByte('\n')
	}
}

func compileAndPrint(src string) {
	var out bytes.Buffer
	w := vmwriter.New(&out)
	if err := compiler.Compile(src, w); err != nil {
		redColor.Printf("[ERROR] %v\n", err)
		return
	}
	yellowColor.Print(out.String())
}
