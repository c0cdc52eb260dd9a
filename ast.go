package minilang

// Expr is any node that evaluates to a Value.
type Expr interface {
	Eval(it *Interpreter) (Value, error)
}

// Stmt is any node that runs for effect.
type Stmt interface {
	Exec(it *Interpreter) error
}

// NumberLit is an integer literal.
type NumberLit struct {
	Value int64
}

func NewNumberLit(v int64) *NumberLit { return &NumberLit{Value: v} }

// Ident looks up a bound name.
type Ident struct {
	Name string
}

func NewIdent(name string) *Ident { return &Ident{Name: name} }

// BinOp is the shared shape of Plus/Minus/Times/Concat: two operand
// expressions combined by one operator.
type BinOp struct {
	LHS, RHS Expr
}

type Plus struct{ BinOp }
type Minus struct{ BinOp }
type Times struct{ BinOp }

// ConcatExpr implements the `||` list-concatenation operator.
type ConcatExpr struct{ BinOp }

func NewPlus(lhs, rhs Expr) *Plus { return &Plus{BinOp{lhs, rhs}} }
func NewMinus(lhs, rhs Expr) *Minus { return &Minus{BinOp{lhs, rhs}} }
func NewTimes(lhs, rhs Expr) *Times { return &Times{BinOp{lhs, rhs}} }
func NewConcat(lhs, rhs Expr) *ConcatExpr { return &ConcatExpr{BinOp{lhs, rhs}} }

// ListLit is a literal list, e.g. `[1, 2, x]` or `[]`.
type ListLit struct {
	Elements []Expr
}

func NewListLit(elements []Expr) *ListLit { return &ListLit{Elements: elements} }

// FunCall is a call to either a built-in (§4.3) or a user procedure
// (§4.5); dispatch happens at Eval time.
type FunCall struct {
	Name string
	Args []Expr
}

func NewFunCall(name string, args []Expr) *FunCall { return &FunCall{Name: name, Args: args} }

// AssignStmt binds Name to the evaluated value of RHS.
type AssignStmt struct {
	Name string
	RHS  Expr
}

func NewAssignStmt(name string, rhs Expr) *AssignStmt { return &AssignStmt{Name: name, RHS: rhs} }

// IfStmt runs Then if Cond evaluates > 0, else Else.
type IfStmt struct {
	Cond       Expr
	Then, Else *StmtList
}

func NewIfStmt(cond Expr, then, els *StmtList) *IfStmt {
	return &IfStmt{Cond: cond, Then: then, Else: els}
}

// WhileStmt runs Body while Cond evaluates > 0.
type WhileStmt struct {
	Cond Expr
	Body *StmtList
}

func NewWhileStmt(cond Expr, body *StmtList) *WhileStmt {
	return &WhileStmt{Cond: cond, Body: body}
}

// DefineStmt installs Proc under Name in the FuncTable.
type DefineStmt struct {
	Name string
	Proc *Procedure
}

func NewDefineStmt(name string, params []string, body *StmtList) *DefineStmt {
	return &DefineStmt{Name: name, Proc: &Procedure{Name: name, Params: params, Body: body}}
}

// StmtList is an ordered sequence of statements, executed in textual
// order, stopping only on error.
type StmtList struct {
	Stmts []Stmt
}

func NewStmtList(stmts []Stmt) *StmtList { return &StmtList{Stmts: stmts} }
