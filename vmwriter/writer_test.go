package vmwriter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBasicEmission(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf)
	w.Push("constant", 7)
	w.Pop("local", 0)
	w.Arithmetic(Add)
	w.Label("IF_TRUE0")
	w.Goto("WHILE_EXP0")
	w.IfGoto("IF_FALSE0")
	w.Call("Math.multiply", 2)
	w.Function("Main.main", 3)
	w.Return()
	require := w.Flush()
	assert.NoError(t, require)

	want := []string{
		"push constant 7",
		"pop local 0",
		"add",
		"label IF_TRUE0",
		"goto WHILE_EXP0",
		"if-goto IF_FALSE0",
		"call Math.multiply 2",
		"function Main.main 3",
		"return",
	}
	got := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, want, got)
}

func TestInvalidArithmeticOpPanics(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf)
	assert.Panics(t, func() { w.Arithmetic(Op("xor")) })
}

func TestIndentIsCosmeticOnly(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf)
	w.Function("Main.main", 0)
	w.Indent()
	w.Push("constant", 0)
	w.Dedent()
	w.Return()
	w.Flush()
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, "function Main.main 0", lines[0])
	assert.Equal(t, "  push constant 0", lines[1])
	assert.Equal(t, "return", lines[2])
}
