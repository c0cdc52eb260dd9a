package minilang

// NameTable maps identifiers to fully-evaluated values. Insertion order
// is irrelevant.
type NameTable map[string]Value

// FuncTable maps identifiers to user-defined procedures.
type FuncTable map[string]*Procedure

// Procedure is a parameter list plus a statement body. Procedures have no
// captured environment: every call gets a fresh scope (or, under dynamic
// scoping, runs directly in the caller's scope).
type Procedure struct {
	Name   string
	Params []string
	Body   *StmtList
}

// returnSymbol is the reserved name a procedure body assigns to produce
// its result.
const returnSymbol = "return"

// reservedBuiltinNames are identifiers that a call always dispatches to a
// built-in. A procedure defined under one of these names is installed in
// the FuncTable but is never called.
var reservedBuiltinNames = map[string]bool{
	"car":   true,
	"cdr":   true,
	"cons":  true,
	"nullp": true,
	"listp": true,
	"intp":  true,
}
