/*
File    : jackc/cmd/jackc/main.go

Package main is the command-line entry point for the Jack-to-VM compiler.
It owns directory discovery, file pairing, extension rewriting, and the
command surface, keeping the core compiler free of any filesystem or CLI
concerns. The core itself is exposed as the single compiler.Compile(src,
writer) call.
*/
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
)

// VERSION is the compiler's release string.
var VERSION = "v1.0.0"

// LICENSE is the software license under which this compiler is released.
var LICENSE = "MIT"

// Color definitions for CLI output: red for errors, yellow for results,
// cyan for informational text.
var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	if len(os.Args) < 2 {
		showHelp()
		os.Exit(1)
	}

	switch arg := os.Args[1]; arg {
	case "--help", "-h":
		showHelp()
	case "--version", "-v":
		showVersion()
	case "repl":
		runRepl()
	case "--tokens":
		if len(os.Args) < 3 {
			redColor.Fprintln(os.Stderr, "[USAGE ERROR] --tokens requires a file path")
			os.Exit(1)
		}
		if err := dumpTokens(os.Args[2]); err != nil {
			redColor.Fprintf(os.Stderr, "[ERROR] %v\n", err)
			os.Exit(1)
		}
	default:
		if err := compilePath(arg); err != nil {
			redColor.Fprintf(os.Stderr, "[ERROR] %v\n", err)
			os.Exit(1)
		}
	}
}

func showHelp() {
	cyanColor.Println("jackc - Jack to Hack-VM compiler")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  jackc <file.jack>          Compile a single class to <file>.vm")
	yellowColor.Println("  jackc <directory>          Compile every .jack file in a directory")
	yellowColor.Println("  jackc --tokens <file.jack> Dump the token stream for a file")
	yellowColor.Println("  jackc repl                 Start an interactive compile console")
	yellowColor.Println("  jackc --help               Show this message")
	yellowColor.Println("  jackc --version            Show version information")
}

func showVersion() {
	cyanColor.Printf("jackc %s (%s license)\n", VERSION, LICENSE)
}

// compilePath compiles a single file or every .jack file in a directory,
// printing a per-file OK/FAIL line and returning an error if any file failed.
func compilePath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrapf(err, "could not stat %q", path)
	}

	var jobs []compileJob
	if info.IsDir() {
		jobs, err = discoverJobs(path)
		if err != nil {
			return err
		}
	} else {
		jobs = []compileJob{jobFor(path)}
	}

	if len(jobs) == 0 {
		yellowColor.Println("no .jack files found")
		return nil
	}

	failed := 0
	for _, job := range jobs {
		if err := runJob(job); err != nil {
			redColor.Printf("FAIL %s: %v\n", job.input, err)
			failed++
			continue
		}
		yellowColor.Printf("OK   %s -> %s\n", job.input, job.output)
	}
	if failed > 0 {
		return errors.Errorf("%d of %d files failed to compile", failed, len(jobs))
	}
	return nil
}
