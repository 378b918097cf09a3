package compiler

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nand2tetris-go/jackc/jackerr"
	"github.com/nand2tetris-go/jackc/vmwriter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// compileToLines compiles src and returns its emitted VM instructions as a
// slice of trimmed, non-empty lines (indentation is cosmetic, so tests
// ignore it).
func compileToLines(t *testing.T, src string) []string {
	t.Helper()
	var buf bytes.Buffer
	w := vmwriter.New(&buf)
	err := Compile(src, w)
	require.NoError(t, err)

	var lines []string
	for _, line := range strings.Split(buf.String(), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

// S1 — void function, single statement.
func TestVoidFunctionSingleStatement(t *testing.T) {
	src := `class Main { function void main() { return; } }`
	got := compileToLines(t, src)
	want := []string{
		"function Main.main 0",
		"push constant 0",
		"return",
	}
	assert.Equal(t, want, got)
}

// S2 — constructor with fields.
func TestConstructorWithFields(t *testing.T) {
	src := `class P { field int x, y; constructor P new(int ax, int ay) { let x = ax; let y = ay; return this; } }`
	got := compileToLines(t, src)
	want := []string{
		"function P.new 0",
		"push constant 2",
		"call Memory.alloc 1",
		"pop pointer 0",
		"push argument 0",
		"pop this 0",
		"push argument 1",
		"pop this 1",
		"push pointer 0",
		"return",
	}
	assert.Equal(t, want, got)
}

// S3 — method call on object.
func TestMethodCallOnObjectField(t *testing.T) {
	src := `class C { field P p; method void go() { do p.move(1, 2); return; } }`
	got := compileToLines(t, src)
	want := []string{
		"function C.go 0",
		"push argument 0",
		"pop pointer 0",
		"push this 0",
		"push constant 1",
		"push constant 2",
		"call P.move 3",
		"pop temp 0",
		"push constant 0",
		"return",
	}
	assert.Equal(t, want, got)
}

// S4 — while with array store.
func TestWhileWithArrayStore(t *testing.T) {
	src := `class A { function void f() { var Array a; var int i; let i = 0; while (i < 10) { let a[i] = i; let i = i + 1; } return; } }`
	got := compileToLines(t, src)

	require.Equal(t, "function A.f 2", got[0])

	joined := strings.Join(got, "\n")
	assert.Contains(t, joined, "label WHILE_EXP0")
	assert.Contains(t, joined, "label WHILE_END0")

	// let a[i] = i: pop temp 0, then pointer 1, push temp 0, pop that 0.
	idx := indexOf(got, "pop temp 0")
	require.GreaterOrEqual(t, idx, 0)
	assert.Equal(t, []string{"pop temp 0", "pop pointer 1", "push temp 0", "pop that 0"}, got[idx:idx+4])

	assert.Equal(t, []string{"push constant 0", "return"}, got[len(got)-2:])
}

// S5 — string constant.
func TestStringConstant(t *testing.T) {
	src := `class Main { function void main() { do Output.printString("Hi"); return; } }`
	got := compileToLines(t, src)
	want := []string{
		"push constant 2",
		"call String.new 1",
		"push constant 72",
		"call String.appendChar 2",
		"push constant 105",
		"call String.appendChar 2",
	}
	joined := strings.Join(got, "\n")
	assert.Contains(t, joined, strings.Join(want, "\n"))
}

// S6 — no operator precedence, strict left-to-right.
func TestNoOperatorPrecedence(t *testing.T) {
	src := `class Main { function void main() { do f(1 + 2 * 3); return; } }`
	got := compileToLines(t, src)
	want := []string{
		"push constant 1",
		"push constant 2",
		"add",
		"push constant 3",
		"call Math.multiply 2",
	}
	joined := strings.Join(got, "\n")
	assert.Contains(t, joined, strings.Join(want, "\n"))
}

func TestMethodBindsThisBeforeBody(t *testing.T) {
	src := `class C { field int x; method int get() { return x; } }`
	got := compileToLines(t, src)
	assert.Equal(t, "function C.get 0", got[0])
	assert.Equal(t, []string{"push argument 0", "pop pointer 0"}, got[1:3])
}

func TestIfElseLabelsUniquePerClassNotPerSubroutine(t *testing.T) {
	src := `class Main {
		function void a() { if (true) { } else { } return; }
		function void b() { if (true) { } else { } return; }
	}`
	got := compileToLines(t, src)
	joined := strings.Join(got, "\n")
	assert.Contains(t, joined, "IF_FALSE0")
	assert.Contains(t, joined, "IF_FALSE1")
}

func TestUndefinedVariableIsSymbolError(t *testing.T) {
	src := `class Main { function void main() { let x = 1; return; } }`
	var buf bytes.Buffer
	err := Compile(src, vmwriter.New(&buf))
	require.Error(t, err)
	jerr, ok := err.(*jackerr.Error)
	require.True(t, ok)
	assert.Equal(t, jackerr.Symbol, jerr.Category)
}

func TestDuplicateDefinitionIsSymbolError(t *testing.T) {
	src := `class Main { field int x, x; }`
	var buf bytes.Buffer
	err := Compile(src, vmwriter.New(&buf))
	require.Error(t, err)
	jerr, ok := err.(*jackerr.Error)
	require.True(t, ok)
	assert.Equal(t, jackerr.Symbol, jerr.Category)
}

func TestTokenMismatchIsParseError(t *testing.T) {
	src := `class Main { function void main() return; } }`
	var buf bytes.Buffer
	err := Compile(src, vmwriter.New(&buf))
	require.Error(t, err)
	jerr, ok := err.(*jackerr.Error)
	require.True(t, ok)
	assert.Equal(t, jackerr.Parse, jerr.Category)
}

func indexOf(xs []string, target string) int {
	for i, x := range xs {
		if x == target {
			return i
		}
	}
	return -1
}
