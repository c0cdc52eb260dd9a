package minilang

// Eval on a NumberLit always succeeds: literals carry no state to fail on.
func (n *NumberLit) Eval(it *Interpreter) (Value, error) {
	return Number(n.Value), nil
}

// Eval on an Ident looks the name up in the current NameTable.
func (n *Ident) Eval(it *Interpreter) (Value, error) {
	v, ok := it.Env[n.Name]
	if !ok {
		return nil, &UnboundNameError{Name: n.Name}
	}
	return v, nil
}

// asNumber evaluates e and requires the result to be a Number; every
// arithmetic operand goes through here.
func asNumber(it *Interpreter, e Expr, context string) (int64, error) {
	v, err := e.Eval(it)
	if err != nil {
		return 0, err
	}
	n, ok := v.(Number)
	if !ok {
		return 0, &TypeError{Context: context, Want: "Number", Got: valueKind(v)}
	}
	return int64(n), nil
}

func (n *Plus) Eval(it *Interpreter) (Value, error) {
	lhs, err := asNumber(it, n.LHS, "+")
	if err != nil {
		return nil, err
	}
	rhs, err := asNumber(it, n.RHS, "+")
	if err != nil {
		return nil, err
	}
	return Number(lhs + rhs), nil // wraps on overflow
}

func (n *Minus) Eval(it *Interpreter) (Value, error) {
	lhs, err := asNumber(it, n.LHS, "-")
	if err != nil {
		return nil, err
	}
	rhs, err := asNumber(it, n.RHS, "-")
	if err != nil {
		return nil, err
	}
	return Number(lhs - rhs), nil
}

func (n *Times) Eval(it *Interpreter) (Value, error) {
	lhs, err := asNumber(it, n.LHS, "*")
	if err != nil {
		return nil, err
	}
	rhs, err := asNumber(it, n.RHS, "*")
	if err != nil {
		return nil, err
	}
	return Number(lhs * rhs), nil
}

// asList evaluates e and requires the result to be a List.
func asList(it *Interpreter, e Expr, context string) (List, error) {
	v, err := e.Eval(it)
	if err != nil {
		return EmptyList, err
	}
	l, ok := v.(List)
	if !ok {
		return EmptyList, &TypeError{Context: context, Want: "List", Got: valueKind(v)}
	}
	return l, nil
}

func (n *ConcatExpr) Eval(it *Interpreter) (Value, error) {
	lhs, err := asList(it, n.LHS, "||")
	if err != nil {
		return nil, err
	}
	rhs, err := asList(it, n.RHS, "||")
	if err != nil {
		return nil, err
	}
	return concat(it, lhs, rhs)
}

// Eval on a ListLit materializes one fresh chain of cells, one per
// element, left value first. Elements are evaluated once, in order; the
// resulting List is never re-derived from the AST afterwards.
func (n *ListLit) Eval(it *Interpreter) (Value, error) {
	values := make([]Value, len(n.Elements))
	for i, e := range n.Elements {
		v, err := e.Eval(it)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return newListFromValues(it, values)
}

// Eval on a FunCall dispatches to a built-in if Name names one, otherwise
// to a user procedure.
func (n *FunCall) Eval(it *Interpreter) (Value, error) {
	if reservedBuiltinNames[n.Name] {
		return it.evalBuiltin(n)
	}
	proc, ok := it.Funcs[n.Name]
	if !ok {
		return nil, &UnboundProcedureError{Name: n.Name}
	}
	if len(n.Args) != len(proc.Params) {
		return nil, &ArityMismatchError{Name: n.Name, Expected: len(proc.Params), Got: len(n.Args)}
	}
	args := make([]Value, len(n.Args))
	for i, a := range n.Args {
		v, err := a.Eval(it)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return proc.Apply(it, args)
}

// evalBuiltin dispatches to one of the six reserved built-ins by a fixed
// table keyed on name, rather than dynamic attribute lookup.
func (it *Interpreter) evalBuiltin(n *FunCall) (Value, error) {
	switch n.Name {
	case "car":
		if len(n.Args) != 1 {
			return nil, &ArityMismatchError{Name: "car", Expected: 1, Got: len(n.Args)}
		}
		l, err := asList(it, n.Args[0], "car")
		if err != nil {
			return nil, err
		}
		return car(it.Heap, l)

	case "cdr":
		if len(n.Args) != 1 {
			return nil, &ArityMismatchError{Name: "cdr", Expected: 1, Got: len(n.Args)}
		}
		l, err := asList(it, n.Args[0], "cdr")
		if err != nil {
			return nil, err
		}
		return cdr(it.Heap, l), nil

	case "cons":
		if len(n.Args) != 2 {
			return nil, &ArityMismatchError{Name: "cons", Expected: 2, Got: len(n.Args)}
		}
		x, err := n.Args[0].Eval(it)
		if err != nil {
			return nil, err
		}
		y, err := asList(it, n.Args[1], "cons")
		if err != nil {
			return nil, err
		}
		return cons(it, x, y)

	case "nullp":
		if len(n.Args) != 1 {
			return nil, &ArityMismatchError{Name: "nullp", Expected: 1, Got: len(n.Args)}
		}
		v, err := n.Args[0].Eval(it)
		if err != nil {
			return nil, err
		}
		return nullp(v), nil

	case "listp":
		if len(n.Args) != 1 {
			return nil, &ArityMismatchError{Name: "listp", Expected: 1, Got: len(n.Args)}
		}
		v, err := n.Args[0].Eval(it)
		if err != nil {
			return nil, err
		}
		return listp(v), nil

	case "intp":
		if len(n.Args) != 1 {
			return nil, &ArityMismatchError{Name: "intp", Expected: 1, Got: len(n.Args)}
		}
		return it.intp(n.Args[0])

	default:
		// unreachable: n.Name was checked against reservedBuiltinNames
		return nil, &UnboundProcedureError{Name: n.Name}
	}
}

// intp resolves to either of two deliberately distinct behaviors behind a
// flag: by default it evaluates the argument and checks whether the
// result is a Number; in syntactic mode it instead tests whether the raw
// AST node is a NumberLit, without evaluating it at all.
func (it *Interpreter) intp(arg Expr) (Value, error) {
	if it.Config.IntpSyntactic() {
		if _, ok := arg.(*NumberLit); ok {
			return Number(1), nil
		}
		return Number(0), nil
	}
	v, err := arg.Eval(it)
	if err != nil {
		return nil, err
	}
	if _, ok := v.(Number); ok {
		return Number(1), nil
	}
	return Number(0), nil
}
