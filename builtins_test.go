package minilang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInterpreter(capacity int) *Interpreter {
	cfg := NewConfig()
	cfg.SetHeapCapacity(capacity)
	return NewInterpreter(cfg)
}

func TestBuiltins_ConsCarCdr(t *testing.T) {
	it := newTestInterpreter(8)
	l, err := newListFromValues(it, []Value{Number(1), Number(2), Number(3)})
	require.NoError(t, err)

	head, err := car(it.Heap, l)
	require.NoError(t, err)
	assert.Equal(t, Number(1), head)

	rest := cdr(it.Heap, l)
	second, err := car(it.Heap, rest)
	require.NoError(t, err)
	assert.Equal(t, Number(2), second)
}

func TestBuiltins_CarOfEmptyIsError(t *testing.T) {
	it := newTestInterpreter(4)
	_, err := car(it.Heap, EmptyList)
	require.Error(t, err)
	assert.IsType(t, &EmptyListError{}, err)
}

func TestBuiltins_CdrOfEmptyIsEmpty(t *testing.T) {
	it := newTestInterpreter(4)
	assert.True(t, cdr(it.Heap, EmptyList).Empty())
}

func TestBuiltins_Nullp(t *testing.T) {
	assert.Equal(t, Number(1), nullp(EmptyList))
	assert.Equal(t, Number(0), nullp(Number(0)))

	it := newTestInterpreter(4)
	l, err := newListFromValues(it, []Value{Number(1)})
	require.NoError(t, err)
	assert.Equal(t, Number(0), nullp(l))
}

func TestBuiltins_Listp(t *testing.T) {
	assert.Equal(t, Number(1), listp(EmptyList))
	assert.Equal(t, Number(0), listp(Number(42)))
}

func TestBuiltins_Concat(t *testing.T) {
	it := newTestInterpreter(16)
	lhs, err := newListFromValues(it, []Value{Number(1), Number(2)})
	require.NoError(t, err)
	rhs, err := newListFromValues(it, []Value{Number(3), Number(4)})
	require.NoError(t, err)

	joined, err := concat(it, lhs, rhs)
	require.NoError(t, err)

	values, err := listValues(it.Heap, joined)
	require.NoError(t, err)
	assert.Equal(t, []Value{Number(1), Number(2), Number(3), Number(4)}, values)
}

func TestBuiltins_ConcatOfEmptyLists(t *testing.T) {
	it := newTestInterpreter(4)
	joined, err := concat(it, EmptyList, EmptyList)
	require.NoError(t, err)
	assert.True(t, joined.Empty())
}
