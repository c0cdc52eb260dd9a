package minilang

// Roots implements RootsFunc for this Interpreter: the root set is every
// List bound in any currently live scope (the global table plus every
// caller's NameTable a static-scoped call is suspended underneath), plus
// any cell allocated but not yet bound during the statement in progress.
//
// it.scopes always holds every live scope, not just the current one: a
// call under static scoping pushes the caller's table before swapping in
// the callee's (see pushScope), so a collection triggered mid-call still
// roots the caller's bindings instead of sweeping them out from under it.
//
// Procedures are not walked: a Procedure holds only AST (parameter names
// and a body), never a List value, so it can never anchor a cell.
func (it *Interpreter) Roots() []cellRef {
	roots := make([]cellRef, 0, it.inFlight.len())
	for _, scope := range it.scopes {
		for _, v := range scope {
			if l, ok := v.(List); ok && !l.Empty() {
				roots = append(roots, l.head)
			}
		}
	}
	roots = append(roots, it.inFlight.snapshot()...)
	return roots
}

// CollectNow runs an explicit collection using the current root set. It
// is exposed for callers (such as tests) that want to force a collection
// outside of allocation pressure, not only as an Alloc fallback.
func (it *Interpreter) CollectNow() error {
	return it.Heap.Collect(it.Roots)
}
