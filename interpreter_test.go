package minilang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run evaluates stmts under a fresh Interpreter with the given heap
// capacity and returns the Interpreter for assertions on Env/Heap.
func run(t *testing.T, capacity int, stmts *StmtList) *Interpreter {
	t.Helper()
	cfg := NewConfig()
	cfg.SetHeapCapacity(capacity)
	it := NewInterpreter(cfg)
	require.NoError(t, stmts.Exec(it))
	return it
}

// S1: a simple list literal is bound, and exactly as many cells are
// allocated as there are elements — no stray allocations survive once the
// statement completes.
func TestScenario_ListLiteralAllocatesExactlyItsElements(t *testing.T) {
	stmts := NewStmtList([]Stmt{
		NewAssignStmt("xs", NewListLit([]Expr{NewNumberLit(1), NewNumberLit(2), NewNumberLit(3)})),
	})
	it := run(t, 8, stmts)
	assert.Equal(t, 3, it.Heap.CountAllocated())
	xs, ok := it.Env["xs"].(List)
	require.True(t, ok)
	values, err := listValues(it.Heap, xs)
	require.NoError(t, err)
	assert.Equal(t, []Value{Number(1), Number(2), Number(3)}, values)
}

// S2: once a name is rebound to a fresh list, the old list is no longer a
// root and an explicit collection reclaims its cells.
func TestScenario_RebindingReclaimsOldList(t *testing.T) {
	stmts := NewStmtList([]Stmt{
		NewAssignStmt("xs", NewListLit([]Expr{NewNumberLit(1), NewNumberLit(2)})),
		NewAssignStmt("xs", NewListLit([]Expr{NewNumberLit(3)})),
	})
	it := run(t, 3, stmts)
	assert.Equal(t, 3, it.Heap.CountAllocated(), "old list isn't swept until a collection runs")

	require.NoError(t, it.CollectNow())
	assert.Equal(t, 1, it.Heap.CountAllocated())
	xs := it.Env["xs"].(List)
	values, err := listValues(it.Heap, xs)
	require.NoError(t, err)
	assert.Equal(t, []Value{Number(3)}, values)
}

// S3: while accumulating a list across loop iterations, the accumulator
// stays reachable (bound in Env) while the loop fills the heap to exactly
// its capacity.
func TestScenario_WhileLoopAccumulatesUnderHeapPressure(t *testing.T) {
	// acc := []; i := 0; while i < 3 do acc := cons(i, acc); i := i + 1 od
	body := NewStmtList([]Stmt{
		NewAssignStmt("acc", NewFunCall("cons", []Expr{NewIdent("i"), NewIdent("acc")})),
		NewAssignStmt("i", NewPlus(NewIdent("i"), NewNumberLit(1))),
	})
	stmts := NewStmtList([]Stmt{
		NewAssignStmt("acc", NewListLit(nil)),
		NewAssignStmt("i", NewNumberLit(0)),
		NewWhileStmt(lessThan(NewIdent("i"), NewNumberLit(3)), body),
	})
	it := run(t, 3, stmts)
	acc := it.Env["acc"].(List)
	values, err := listValues(it.Heap, acc)
	require.NoError(t, err)
	assert.Equal(t, []Value{Number(2), Number(1), Number(0)}, values)
	assert.Equal(t, 3, it.Heap.CountAllocated())
}

// lessThan isn't a MiniLang operator; Cond only tests "> 0", so loop
// bounds are written as `bound - i` the way MiniLang programs express a
// less-than test without a dedicated comparison operator.
func lessThan(i, bound Expr) Expr {
	return NewMinus(bound, i)
}

// S4: car on the empty list is an error, and the heap is left unchanged
// by the failed operation.
func TestScenario_CarOfEmptyListDoesNotCorruptHeap(t *testing.T) {
	stmts := NewStmtList([]Stmt{
		NewAssignStmt("xs", NewListLit(nil)),
	})
	it := run(t, 4, stmts)
	before := it.Heap.CountAllocated()

	_, err := NewFunCall("car", []Expr{NewIdent("xs")}).Eval(it)
	require.Error(t, err)
	assert.IsType(t, &EmptyListError{}, err)
	assert.Equal(t, before, it.Heap.CountAllocated())
}

// A procedure under static scoping cannot see the caller's locals; one
// under dynamic scoping does.
func TestScenario_StaticVsDynamicScoping(t *testing.T) {
	proc := NewDefineStmt("peek", nil, NewStmtList([]Stmt{
		NewAssignStmt(returnSymbol, NewIdent("x")),
	}))
	callerBindsXThenCalls := NewStmtList([]Stmt{
		proc,
		NewAssignStmt("x", NewNumberLit(7)),
		NewAssignStmt("result", NewFunCall("peek", nil)),
	})

	cfg := NewConfig()
	cfg.SetHeapCapacity(4)
	it := NewInterpreter(cfg)
	err := callerBindsXThenCalls.Exec(it)
	require.Error(t, err)
	assert.IsType(t, &UnboundNameError{}, err)

	cfg2 := NewConfig()
	cfg2.SetHeapCapacity(4)
	cfg2.SetScoping(ScopingDynamic)
	it2 := NewInterpreter(cfg2)
	require.NoError(t, callerBindsXThenCalls.Exec(it2))
	assert.Equal(t, Number(7), it2.Env["result"])
}

// Concatenating two lists with `||` produces a flat sequence whose
// car/cdr behave like an ordinary list, not a nested pair.
func TestScenario_ConcatProducesFlatList(t *testing.T) {
	stmts := NewStmtList([]Stmt{
		NewAssignStmt("a", NewListLit([]Expr{NewNumberLit(1), NewNumberLit(2)})),
		NewAssignStmt("b", NewListLit([]Expr{NewNumberLit(3)})),
		NewAssignStmt("joined", NewConcat(NewIdent("a"), NewIdent("b"))),
	})
	it := run(t, 16, stmts)
	joined := it.Env["joined"].(List)
	values, err := listValues(it.Heap, joined)
	require.NoError(t, err)
	assert.Equal(t, []Value{Number(1), Number(2), Number(3)}, values)
}

// S5: reassigning a name to a freshly-allocated list under heap pressure
// cannot recover by collecting the name's own previous value. The root
// set is the current NameTable (see gc_roots.go), and during evaluation
// of `x := cons(...)` the old binding for x is still present in Env until
// the statement finishes — so a collection forced mid-cons finds the old
// list still rooted, reclaims nothing, and the allocation fails with
// OutOfMemoryError rather than succeeding after a GC pass. See DESIGN.md's
// "Open Question decisions" for why this is the accepted behavior rather
// than a bug.
func TestScenario_ReassigningSameNameUnderHeapPressureOOMs(t *testing.T) {
	stmts := NewStmtList([]Stmt{
		NewAssignStmt("x", NewFunCall("cons", []Expr{NewNumberLit(0), NewListLit(nil)})),
	})
	it := run(t, 1, stmts)
	require.Equal(t, 1, it.Heap.CountAllocated())

	reassign := NewAssignStmt("x", NewFunCall("cons", []Expr{NewNumberLit(1), NewListLit(nil)}))
	err := reassign.Exec(it)
	require.Error(t, err)
	assert.IsType(t, &OutOfMemoryError{}, err)
}

// S6: once every cell in the heap is rooted by a live binding, allocation
// fails outright — there is no unrooted cell left for any collection to
// reclaim, under any scoping policy.
func TestScenario_AllocationFailsWhenHeapIsFullyRooted(t *testing.T) {
	stmts := NewStmtList([]Stmt{
		NewAssignStmt("a", NewNumberLit(1)),
		NewAssignStmt("xs", NewListLit([]Expr{NewNumberLit(1), NewNumberLit(2)})),
	})
	it := run(t, 2, stmts)
	require.Equal(t, 2, it.Heap.CountAllocated())

	overflow := NewAssignStmt("ys", NewListLit([]Expr{NewNumberLit(3)}))
	err := overflow.Exec(it)
	require.Error(t, err)
	assert.IsType(t, &OutOfMemoryError{}, err)
}

func TestInterpreter_UnboundProcedureError(t *testing.T) {
	stmts := NewStmtList([]Stmt{
		NewAssignStmt("x", NewFunCall("nope", nil)),
	})
	cfg := NewConfig()
	cfg.SetHeapCapacity(4)
	it := NewInterpreter(cfg)
	err := stmts.Exec(it)
	require.Error(t, err)
	assert.IsType(t, &UnboundProcedureError{}, err)
}

func TestInterpreter_MissingReturnError(t *testing.T) {
	proc := NewDefineStmt("noop", nil, NewStmtList(nil))
	stmts := NewStmtList([]Stmt{
		proc,
		NewAssignStmt("x", NewFunCall("noop", nil)),
	})
	cfg := NewConfig()
	cfg.SetHeapCapacity(4)
	it := NewInterpreter(cfg)
	err := stmts.Exec(it)
	require.Error(t, err)
	assert.IsType(t, &MissingReturnError{}, err)
}
