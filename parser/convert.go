package parser

import "github.com/LRParser/ProgrammingLanguages"

// toStmtList walks the participle-produced parse tree exactly once and
// builds the evaluator's own AST (minilang.Expr / minilang.Stmt trees).
// The converted tree is evaluated as-is and never re-walked or
// re-interpreted node-by-node at runtime.

func toStmtList(n *StmtListNode) *minilang.StmtList {
	stmts := make([]minilang.Stmt, 0, len(n.Stmts))
	for _, s := range n.Stmts {
		stmts = append(stmts, toStmt(s))
	}
	return minilang.NewStmtList(stmts)
}

func toStmt(n *StmtNode) minilang.Stmt {
	switch {
	case n.Assign != nil:
		return toAssign(n.Assign)
	case n.If != nil:
		return toIf(n.If)
	case n.While != nil:
		return toWhile(n.While)
	case n.Define != nil:
		return toDefine(n.Define)
	default:
		panic("parser: empty StmtNode")
	}
}

func toAssign(n *AssignNode) *minilang.AssignStmt {
	return minilang.NewAssignStmt(n.Name, toElement(n.RHS))
}

func toIf(n *IfNode) *minilang.IfStmt {
	return minilang.NewIfStmt(toExpr(n.Cond), toStmtList(n.Then), toStmtList(n.Else))
}

func toWhile(n *WhileNode) *minilang.WhileStmt {
	return minilang.NewWhileStmt(toExpr(n.Cond), toStmtList(n.Body))
}

func toDefine(n *DefineNode) *minilang.DefineStmt {
	return minilang.NewDefineStmt(n.Name, n.Params, toStmtList(n.Body))
}

// toElement converts an element production (expr, list literal, or a
// chain of '||' concatenations) into an Expr. The grammar's right-hand
// side recurses on ElementNode, so a chain folds up right-associatively
// here; that's equivalent to folding left-associatively since concat
// under the flatten discipline is associative either way.
func toElement(n *ElementNode) minilang.Expr {
	head := toAtom(n.Head)
	if n.Rhs == nil {
		return head
	}
	return minilang.NewConcat(head, toElement(n.Rhs))
}

func toAtom(n *AtomNode) minilang.Expr {
	switch {
	case n.List != nil:
		return toListLit(n.List)
	case n.Expr != nil:
		return toExpr(n.Expr)
	default:
		panic("parser: empty AtomNode")
	}
}

func toListLit(n *ListLitNode) *minilang.ListLit {
	elements := make([]minilang.Expr, 0, len(n.Elements))
	for _, e := range n.Elements {
		elements = append(elements, toElement(e))
	}
	return minilang.NewListLit(elements)
}

// toExpr folds the flat left-operand-plus-operator-run shape produced by
// the non-left-recursive ExprNode grammar into a left-associative
// Plus/Minus chain.
func toExpr(n *ExprNode) minilang.Expr {
	result := toTerm(n.Left)
	for _, op := range n.Ops {
		right := toTerm(op.Right)
		if op.Operator == "+" {
			result = minilang.NewPlus(result, right)
		} else {
			result = minilang.NewMinus(result, right)
		}
	}
	return result
}

func toTerm(n *TermNode) minilang.Expr {
	result := toFact(n.Left)
	for _, op := range n.Ops {
		result = minilang.NewTimes(result, toFact(op.Right))
	}
	return result
}

func toFact(n *FactNode) minilang.Expr {
	switch {
	case n.Paren != nil:
		return toExpr(n.Paren)
	case n.Call != nil:
		return toFunCall(n.Call)
	case n.Number != nil:
		return minilang.NewNumberLit(*n.Number)
	case n.Ident != nil:
		return minilang.NewIdent(*n.Ident)
	default:
		panic("parser: empty FactNode")
	}
}

func toFunCall(n *FunCallNode) *minilang.FunCall {
	args := make([]minilang.Expr, 0, len(n.Args))
	for _, a := range n.Args {
		args = append(args, toElement(a))
	}
	return minilang.NewFunCall(n.Name, args)
}
