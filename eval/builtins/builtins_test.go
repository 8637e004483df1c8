package builtins_test

import (
	"testing"

	"github.com/lispy-lang/lispy"
	"github.com/lispy-lang/lispy/eval"
)

func run(t *testing.T, env *lispy.Environment, expr lispy.Value) lispy.Value {
	t.Helper()
	return eval.Eval(env, expr)
}

func sym(s string) lispy.Symbol { return lispy.Symbol(s) }

func TestArithmetic(t *testing.T) {
	env := eval.NewRootEnvironment()
	tests := []struct {
		name string
		expr lispy.Value
		want lispy.Value
	}{
		{"add", lispy.MakeSExpr(sym("+"), lispy.Number(1), lispy.Number(2), lispy.Number(3)), lispy.Number(6)},
		{"add associativity", lispy.MakeSExpr(sym("+"), lispy.MakeSExpr(sym("+"), lispy.Number(1), lispy.Number(2)), lispy.Number(3)), lispy.Number(6)},
		{"unary sub", lispy.MakeSExpr(sym("-"), lispy.Number(10)), lispy.Number(-10)},
		{"fold sub", lispy.MakeSExpr(sym("-"), lispy.Number(10), lispy.Number(3), lispy.Number(2)), lispy.Number(5)},
		{"mul", lispy.MakeSExpr(sym("*"), lispy.Number(2), lispy.Number(3), lispy.Number(4)), lispy.Number(24)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := run(t, env, tc.expr)
			if !got.Equal(tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDivisionByZero(t *testing.T) {
	env := eval.NewRootEnvironment()
	got := run(t, env, lispy.MakeSExpr(sym("/"), lispy.Number(10), lispy.Number(0)))
	want := &lispy.Error{Message: "Division by zero!"}
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestDefAndLookup(t *testing.T) {
	env := eval.NewRootEnvironment()
	defResult := run(t, env, lispy.MakeSExpr(sym("def"), lispy.MakeQExpr(sym("x")), lispy.Number(100)))
	if !defResult.Equal(lispy.MakeSExpr()) {
		t.Fatalf("def result = %v, want ()", defResult)
	}
	got := run(t, env, sym("x"))
	if !got.Equal(lispy.Number(100)) {
		t.Fatalf("x = %v, want 100", got)
	}
}

func TestHeadTailJoinList(t *testing.T) {
	env := eval.NewRootEnvironment()
	list123 := lispy.MakeSExpr(sym("list"), lispy.Number(1), lispy.Number(2), lispy.Number(3))

	head := run(t, env, lispy.MakeSExpr(sym("head"), list123))
	if !head.Equal(lispy.MakeQExpr(lispy.Number(1))) {
		t.Fatalf("head = %v, want {1}", head)
	}

	tail := run(t, env, lispy.MakeSExpr(sym("tail"), list123))
	if !tail.Equal(lispy.MakeQExpr(lispy.Number(2), lispy.Number(3))) {
		t.Fatalf("tail = %v, want {2 3}", tail)
	}

	joined := run(t, env, lispy.MakeSExpr(sym("join"), lispy.MakeQExpr(lispy.Number(1)), lispy.MakeQExpr(lispy.Number(2)), lispy.MakeQExpr(lispy.Number(3))))
	if !joined.Equal(lispy.MakeQExpr(lispy.Number(1), lispy.Number(2), lispy.Number(3))) {
		t.Fatalf("join = %v, want {1 2 3}", joined)
	}
}

func TestTailOfEmptyList(t *testing.T) {
	env := eval.NewRootEnvironment()
	got := run(t, env, lispy.MakeSExpr(sym("tail"), lispy.MakeQExpr()))
	if !lispy.IsError(got) {
		t.Fatalf("expected an Error for (tail {}), got %#v", got)
	}
}

func TestEvalTaggingLaw(t *testing.T) {
	env := eval.NewRootEnvironment()
	direct := run(t, env, lispy.MakeSExpr(sym("+"), lispy.Number(1), lispy.Number(2)))
	viaEval := run(t, env, lispy.MakeSExpr(sym("eval"), lispy.MakeQExpr(sym("+"), lispy.Number(1), lispy.Number(2))))
	if !direct.Equal(viaEval) {
		t.Fatalf("eval tagging law broke: direct=%v eval=%v", direct, viaEval)
	}
}

func TestIfBranches(t *testing.T) {
	env := eval.NewRootEnvironment()
	expr := func(cond int64) lispy.Value {
		return lispy.MakeSExpr(sym("if"),
			lispy.MakeSExpr(sym("=="), lispy.Number(cond), lispy.Number(1)),
			lispy.MakeQExpr(lispy.Number(1)),
			lispy.MakeQExpr(lispy.Number(0)),
		)
	}
	if got := run(t, env, expr(1)); !got.Equal(lispy.Number(1)) {
		t.Fatalf("if true branch = %v, want 1", got)
	}
	if got := run(t, env, expr(2)); !got.Equal(lispy.Number(0)) {
		t.Fatalf("if false branch = %v, want 0", got)
	}
}

func TestLambdaCallAndPartialApplication(t *testing.T) {
	env := eval.NewRootEnvironment()
	run(t, env, lispy.MakeSExpr(sym("def"), lispy.MakeQExpr(sym("add")),
		lispy.MakeSExpr(sym("\\"), lispy.MakeQExpr(sym("a"), sym("b")), lispy.MakeQExpr(lispy.MakeSExpr(sym("+"), sym("a"), sym("b"))))))

	full := run(t, env, lispy.MakeSExpr(sym("add"), lispy.Number(3), lispy.Number(4)))
	if !full.Equal(lispy.Number(7)) {
		t.Fatalf("add(3,4) = %v, want 7", full)
	}

	run(t, env, lispy.MakeSExpr(sym("def"), lispy.MakeQExpr(sym("add10")), lispy.MakeSExpr(sym("add"), lispy.Number(10))))
	partial := run(t, env, lispy.MakeSExpr(sym("add10"), lispy.Number(5)))
	if !partial.Equal(lispy.Number(15)) {
		t.Fatalf("add10(5) = %v, want 15", partial)
	}
}

func TestVariadicAddMul(t *testing.T) {
	env := eval.NewRootEnvironment()
	run(t, env, lispy.MakeSExpr(sym("def"), lispy.MakeQExpr(sym("add-mul")),
		lispy.MakeSExpr(sym("\\"),
			lispy.MakeQExpr(sym("x"), lispy.SymbolAmp, sym("xs")),
			lispy.MakeQExpr(lispy.MakeSExpr(sym("+"), sym("x"),
				lispy.MakeSExpr(sym("*"), lispy.Number(1),
					lispy.MakeSExpr(sym("eval"), lispy.MakeSExpr(sym("join"), lispy.MakeQExpr(sym("+")), sym("xs")))))))))

	got := run(t, env, lispy.MakeSExpr(sym("add-mul"), lispy.Number(1), lispy.Number(2), lispy.Number(3)))
	if !got.Equal(lispy.Number(6)) {
		t.Fatalf("add-mul(1,2,3) = %v, want 6", got)
	}
}

func TestShadowingLocalVsGlobal(t *testing.T) {
	env := eval.NewRootEnvironment()
	run(t, env, lispy.MakeSExpr(sym("def"), lispy.MakeQExpr(sym("x")), lispy.Number(1)))
	// A lambda taking zero formals can never be invoked through
	// evalSExpr: an SExpr with exactly one child (the bare symbol)
	// collapses to that child before any apply happens (spec §4.2.2,
	// step 4) — so f takes one unused formal purely to be callable.
	run(t, env, lispy.MakeSExpr(sym("def"), lispy.MakeQExpr(sym("f")),
		lispy.MakeSExpr(sym("\\"), lispy.MakeQExpr(sym("_")), lispy.MakeQExpr(lispy.MakeSExpr(sym("="), lispy.MakeQExpr(sym("x")), lispy.Number(2))))))
	run(t, env, lispy.MakeSExpr(sym("f"), lispy.Number(0)))
	got := run(t, env, sym("x"))
	if !got.Equal(lispy.Number(1)) {
		t.Fatalf("outer x = %v after local shadow, want unaffected 1", got)
	}
}
