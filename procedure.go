package minilang

// Apply binds args to p's formal parameters and runs its body, following
// whichever scoping policy is configured. Arity has already been checked
// by the caller (FunCall.Eval) against len(n.Args), but is re-checked
// here since Apply is the entry point for anything driving a Procedure
// directly (e.g. tests).
func (p *Procedure) Apply(it *Interpreter, args []Value) (Value, error) {
	if len(args) != len(p.Params) {
		return nil, &ArityMismatchError{Name: p.Name, Expected: len(p.Params), Got: len(args)}
	}

	switch it.Config.Scoping() {
	case ScopingDynamic:
		return p.applyDynamic(it, args)
	default:
		return p.applyStatic(it, args)
	}
}

// applyStatic gives the callee a fresh, empty scope: it sees only its
// own parameters, never the caller's locals. The scope is discarded once
// `return` has been read back out.
//
// The caller's NameTable is pushed onto it.scopes for the duration of the
// call (see pushScope) rather than just held in a local variable: Roots
// walks it.scopes, so a collection triggered while the body runs still
// sees every list the caller has bound, not only the callee's own.
func (p *Procedure) applyStatic(it *Interpreter, args []Value) (Value, error) {
	callee := make(NameTable, len(p.Params))
	for i, name := range p.Params {
		callee[name] = args[i]
	}

	restore := it.pushScope(callee)
	err := p.Body.Exec(it)
	restore()

	if err != nil {
		return nil, err
	}
	ret, ok := callee[returnSymbol]
	if !ok {
		return nil, &MissingReturnError{Procedure: p.Name}
	}
	return ret, nil
}

// applyDynamic runs the body directly in the caller's NameTable: params
// are bound (and, if they shadow an existing caller local, overwrite it)
// in place, and nothing is rolled back afterwards.
func (p *Procedure) applyDynamic(it *Interpreter, args []Value) (Value, error) {
	for i, name := range p.Params {
		it.Env[name] = args[i]
	}
	if err := p.Body.Exec(it); err != nil {
		return nil, err
	}
	ret, ok := it.Env[returnSymbol]
	if !ok {
		return nil, &MissingReturnError{Procedure: p.Name}
	}
	return ret, nil
}
