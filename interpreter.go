package minilang

import (
	"fmt"
	"io"
)

// Interpreter is the runtime the evaluator and statement executor share:
// the heap, the current NameTable, the FuncTable, configuration, and the
// in-flight root set.
type Interpreter struct {
	Heap     *Heap
	Env      NameTable
	Funcs    FuncTable
	Config   *Config
	scopes   []NameTable
	inFlight rootStack
	trace    io.Writer
	depth    int
}

// NewInterpreter builds an Interpreter with a heap sized from cfg, an
// empty global NameTable, and an empty FuncTable. The global table is
// pushed onto scopes immediately: it stays live (and rooted) for as long
// as the Interpreter exists, regardless of call depth.
func NewInterpreter(cfg *Config) *Interpreter {
	global := NameTable{}
	return &Interpreter{
		Heap:   NewHeap(cfg.HeapCapacity()),
		Env:    global,
		Funcs:  FuncTable{},
		Config: cfg,
		scopes: []NameTable{global},
	}
}

// pushScope makes env the active scope, keeping the previous scope live
// (and rooted by Roots) underneath it, and returns a function that
// restores the prior state. Used by a procedure call under static
// scoping: the caller's locals must not be collected away while the
// callee runs.
func (it *Interpreter) pushScope(env NameTable) (restore func()) {
	saved := it.Env
	it.Env = env
	it.scopes = append(it.scopes, env)
	return func() {
		it.scopes = it.scopes[:len(it.scopes)-1]
		it.Env = saved
	}
}

// SetTrace directs per-statement debug traces to w; nil disables tracing
// (the default).
func (it *Interpreter) SetTrace(w io.Writer) {
	it.trace = w
}

func (it *Interpreter) tracef(format string, args ...interface{}) {
	if it.trace == nil {
		return
	}
	indent := ""
	for i := 0; i < it.depth; i++ {
		indent += "  "
	}
	fmt.Fprintf(it.trace, indent+format+"\n", args...)
}

// alloc requests a new cell from the heap, protecting it in the in-flight
// root set until the enclosing statement finishes (see clearInFlight).
func (it *Interpreter) alloc() (cellRef, error) {
	ref, err := it.Heap.Alloc(it.Roots)
	if err != nil {
		return noRef, err
	}
	it.inFlight.push(ref)
	return ref, nil
}

// clearInFlight drops the in-flight protection. Called by StmtList.Exec
// after each statement completes: by then, anything still needed is
// bound to a name and reachable through Env instead.
func (it *Interpreter) clearInFlight() {
	it.inFlight.clear()
}
