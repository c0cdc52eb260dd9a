package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LRParser/ProgrammingLanguages"
)

func evalSource(t *testing.T, src string) *minilang.Interpreter {
	t.Helper()
	stmts, err := Parse("test", strings.NewReader(src))
	require.NoError(t, err)

	cfg := minilang.NewConfig()
	cfg.SetHeapCapacity(64)
	prog := minilang.NewProgram(stmts, cfg)
	require.NoError(t, prog.Eval())
	return prog.Interpreter
}

func TestParser_Arithmetic(t *testing.T) {
	for _, tt := range []struct {
		name string
		src  string
		want minilang.Value
	}{
		{"addition", "x := 1 + 2", minilang.Number(3)},
		{"precedence", "x := 2 + 3 * 4", minilang.Number(14)},
		{"parens", "x := (2 + 3) * 4", minilang.Number(20)},
		{"subtraction chain", "x := 10 - 2 - 3", minilang.Number(5)},
	} {
		t.Run(tt.name, func(t *testing.T) {
			it := evalSource(t, tt.src)
			assert.Equal(t, tt.want, it.Env["x"])
		})
	}
}

func TestParser_IfStmt(t *testing.T) {
	it := evalSource(t, "x := 1; if x then y := 10 else y := 20 fi")
	assert.Equal(t, minilang.Number(10), it.Env["y"])

	it = evalSource(t, "x := 0; if x then y := 10 else y := 20 fi")
	assert.Equal(t, minilang.Number(20), it.Env["y"])
}

func TestParser_WhileStmt(t *testing.T) {
	it := evalSource(t, "i := 0; n := 0; while 3 - i do n := n + i; i := i + 1 od")
	assert.Equal(t, minilang.Number(3), it.Env["n"])
}

func TestParser_DefineAndCall(t *testing.T) {
	it := evalSource(t, "define add proc (a, b) return := a + b end; x := add(2, 3)")
	assert.Equal(t, minilang.Number(5), it.Env["x"])
}

func TestParser_ListLiteralAndCar(t *testing.T) {
	it := evalSource(t, "xs := [1, 2, 3]; h := car(xs)")
	assert.Equal(t, minilang.Number(1), it.Env["h"])
}

func TestParser_EmptyListLiteral(t *testing.T) {
	it := evalSource(t, "xs := []; e := nullp(xs)")
	assert.Equal(t, minilang.Number(1), it.Env["e"])
}

func TestParser_Concat(t *testing.T) {
	it := evalSource(t, "a := [1, 2]; b := [3]; c := a || b; h := car(cdr(cdr(c)))")
	assert.Equal(t, minilang.Number(3), it.Env["h"])
}

func TestParser_ChainedConcat(t *testing.T) {
	it := evalSource(t, "a := [1]; b := [2]; c := [3]; joined := a || b || c; h := car(cdr(cdr(joined)))")
	assert.Equal(t, minilang.Number(3), it.Env["h"])
}

func TestParser_NestedListLiteral(t *testing.T) {
	it := evalSource(t, "xs := [1, [2, 3]]; inner := car(cdr(xs)); h := car(inner)")
	assert.Equal(t, minilang.Number(2), it.Env["h"])
}

func TestParser_Cons(t *testing.T) {
	it := evalSource(t, "xs := cons(1, [2, 3]); h := car(xs)")
	assert.Equal(t, minilang.Number(1), it.Env["h"])
}

func TestParser_FunCallAsArgument(t *testing.T) {
	it := evalSource(t, "xs := [1, 2]; ys := cons(car(xs), cdr(xs)); h := car(ys)")
	assert.Equal(t, minilang.Number(1), it.Env["h"])
}

func TestParser_SyntaxErrorReportsPosition(t *testing.T) {
	_, err := Parse("test", strings.NewReader("x := + 1"))
	require.Error(t, err)
	var parseErr *minilang.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 1, parseErr.Pos.Line)
	assert.Equal(t, 6, parseErr.Pos.Column)
}
