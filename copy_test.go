package lispy_test

import (
	"testing"

	"github.com/lispy-lang/lispy"
)

func TestCopyValueDeepCopiesChildren(t *testing.T) {
	orig := lispy.MakeQExpr(lispy.MakeQExpr(lispy.Number(1)))
	cp := lispy.CopyValue(orig).(*lispy.QExpr)

	inner := cp.Children[0].(*lispy.QExpr)
	inner.Children[0] = lispy.Number(2)

	origInner := orig.Children[0].(*lispy.QExpr)
	if origInner.Children[0].Equal(lispy.Number(2)) {
		t.Fatal("mutating a copy's nested child must not affect the original")
	}
}

func TestCopyValueLambdaSharesEnvironment(t *testing.T) {
	env := lispy.NewEnvironment(nil)
	l := &lispy.Lambda{
		Formals: lispy.MakeQExpr(lispy.Symbol("x")),
		Body:    lispy.MakeQExpr(lispy.Symbol("x")),
		Env:     env,
	}
	cp := lispy.CopyValue(l).(*lispy.Lambda)
	if cp.Env != l.Env {
		t.Fatal("copying a Lambda must share its captured Environment, not duplicate it")
	}
	if cp.Formals == l.Formals {
		t.Fatal("copying a Lambda must deep-copy its Formals QExpr, not alias it")
	}
}

func TestCopyValueAtomsAreIndependent(t *testing.T) {
	e := &lispy.Error{Message: "boom"}
	cp := lispy.CopyValue(e).(*lispy.Error)
	if cp == e {
		t.Fatal("copying an *Error should allocate a fresh instance")
	}
	if !cp.Equal(e) {
		t.Fatal("the copy should carry the same message")
	}
}
