package minilang

// Program couples a parsed StmtList with the Interpreter that will run
// it.
type Program struct {
	StmtList *StmtList
	*Interpreter
}

// NewProgram builds a Program ready to run stmts under cfg.
func NewProgram(stmts *StmtList, cfg *Config) *Program {
	return &Program{StmtList: stmts, Interpreter: NewInterpreter(cfg)}
}

// Eval runs every top-level statement in order, stopping at the first
// error: errors unwind to the top level, there is no in-language
// try/catch.
func (p *Program) Eval() error {
	return p.StmtList.Exec(p.Interpreter)
}
