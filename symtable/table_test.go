package symtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefineAssignsDenseIndicesPerKind(t *testing.T) {
	tab := New()
	require.True(t, tab.Define("x", "int", Field))
	require.True(t, tab.Define("y", "int", Field))
	require.True(t, tab.Define("count", "int", Static))

	x, ok := tab.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, 0, x.Index)

	y, _ := tab.Lookup("y")
	assert.Equal(t, 1, y.Index)

	count, _ := tab.Lookup("count")
	assert.Equal(t, 0, count.Index)
	assert.Equal(t, 2, tab.Count(Field))
	assert.Equal(t, 1, tab.Count(Static))
}

func TestDuplicateDefineInSameScopeFails(t *testing.T) {
	tab := New()
	require.True(t, tab.Define("x", "int", Var))
	assert.False(t, tab.Define("x", "int", Var))
}

func TestStartSubroutineClearsArgsAndVarsOnly(t *testing.T) {
	tab := New()
	tab.Define("field1", "int", Field)
	tab.Define("this", "Main", Arg)
	tab.Define("i", "int", Var)

	tab.StartSubroutine()

	_, ok := tab.Lookup("this")
	assert.False(t, ok)
	_, ok = tab.Lookup("i")
	assert.False(t, ok)
	_, ok = tab.Lookup("field1")
	assert.True(t, ok, "class scope survives StartSubroutine")
	assert.Equal(t, 0, tab.Count(Arg))
	assert.Equal(t, 0, tab.Count(Var))
}

func TestSubroutineScopeShadowsClassScope(t *testing.T) {
	tab := New()
	tab.Define("x", "int", Field)
	tab.Define("x", "boolean", Var)

	e, ok := tab.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, Var, e.Kind)
	assert.Equal(t, "boolean", e.Type)
}

func TestSegmentOfMapping(t *testing.T) {
	assert.Equal(t, SegStatic, SegmentOf(Static))
	assert.Equal(t, SegThis, SegmentOf(Field))
	assert.Equal(t, SegArgument, SegmentOf(Arg))
	assert.Equal(t, SegLocal, SegmentOf(Var))
}
