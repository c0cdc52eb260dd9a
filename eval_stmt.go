package minilang

// Exec on an AssignStmt evaluates RHS once and binds the result. Every
// Value here is already fully evaluated, so there is no need to
// special-case a List-literal or Number-literal RHS to dodge a double
// evaluation: Eval never re-walks the AST, so no copy can happen either
// way.
func (s *AssignStmt) Exec(it *Interpreter) error {
	v, err := s.RHS.Eval(it)
	if err != nil {
		return err
	}
	it.Env[s.Name] = v
	it.tracef("Assign: %s := %s", s.Name, v.String(it.Heap))
	return nil
}

// Exec on a DefineStmt installs (or replaces) a procedure definition.
func (s *DefineStmt) Exec(it *Interpreter) error {
	it.Funcs[s.Name] = s.Proc
	it.tracef("Define: %s(%v)", s.Name, s.Proc.Params)
	return nil
}

// Exec on an IfStmt runs Then when Cond evaluates to a positive integer,
// Else otherwise.
func (s *IfStmt) Exec(it *Interpreter) error {
	cond, err := asNumber(it, s.Cond, "if")
	if err != nil {
		return err
	}
	it.tracef("If %d", cond)
	if cond > 0 {
		return s.Then.Exec(it)
	}
	return s.Else.Exec(it)
}

// Exec on a WhileStmt repeats Body while Cond evaluates to a positive
// integer.
func (s *WhileStmt) Exec(it *Interpreter) error {
	for {
		cond, err := asNumber(it, s.Cond, "while")
		if err != nil {
			return err
		}
		if cond <= 0 {
			return nil
		}
		if err := s.Body.Exec(it); err != nil {
			return err
		}
	}
}

// Exec on a StmtList runs every statement in order, stopping on the
// first error. The in-flight root set is cleared after each statement:
// by then anything still live is reachable through a name in Env, so a
// collection triggered by the next statement's allocations can safely
// reclaim everything else.
func (s *StmtList) Exec(it *Interpreter) error {
	for _, stmt := range s.Stmts {
		if err := stmt.Exec(it); err != nil {
			return err
		}
		it.clearInFlight()
	}
	return nil
}
