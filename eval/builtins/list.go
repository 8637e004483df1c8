package builtins

import "github.com/lispy-lang/lispy"

// List re-tags its (already evaluated) arguments as a QExpr (spec §4.3.1).
var List = &lispy.Builtin{Name: "list", Fn: func(_ *lispy.Environment, args []lispy.Value) lispy.Value {
	return lispy.MakeQExpr(args...)
}}

// Head returns a QExpr holding only the first element of a non-empty
// QExpr argument.
var Head = &lispy.Builtin{Name: "head", Fn: func(_ *lispy.Environment, args []lispy.Value) lispy.Value {
	if err := checkArity("head", args, 1); err != nil {
		return err
	}
	if err := checkType("head", args, 0, "Q-Expression"); err != nil {
		return err
	}
	q := args[0].(*lispy.QExpr)
	if err := checkNonEmptyQExpr("head", q); err != nil {
		return err
	}
	return lispy.MakeQExpr(q.Children[0])
}}

// Tail returns its QExpr argument with the first element removed.
var Tail = &lispy.Builtin{Name: "tail", Fn: func(_ *lispy.Environment, args []lispy.Value) lispy.Value {
	if err := checkArity("tail", args, 1); err != nil {
		return err
	}
	if err := checkType("tail", args, 0, "Q-Expression"); err != nil {
		return err
	}
	q := args[0].(*lispy.QExpr)
	if err := checkNonEmptyQExpr("tail", q); err != nil {
		return err
	}
	return lispy.MakeQExpr(q.Children[1:]...)
}}

// Join concatenates all QExpr arguments in order.
var Join = &lispy.Builtin{Name: "join", Fn: func(_ *lispy.Environment, args []lispy.Value) lispy.Value {
	var children []lispy.Value
	for i := range args {
		if err := checkType("join", args, i, "Q-Expression"); err != nil {
			return err
		}
		children = append(children, args[i].(*lispy.QExpr).Children...)
	}
	return lispy.MakeQExpr(children...)
}}

// evalFn is set by the eval package at bootstrap to break the import
// cycle between eval and builtins (the `eval` builtin must call back
// into the evaluator, which in turn wires this package's names into
// the root environment).
type evalFn func(env *lispy.Environment, v lispy.Value) lispy.Value

var evaluator evalFn

// SetEvaluator installs the callback the `eval` builtin dispatches
// through. Called by eval.NewRootEnvironment each time it builds a root
// environment, before handing it to the caller.
func SetEvaluator(fn func(env *lispy.Environment, v lispy.Value) lispy.Value) {
	evaluator = fn
}

// Eval re-tags its QExpr argument as an SExpr and evaluates it in the
// calling environment.
var Eval = &lispy.Builtin{Name: "eval", Fn: func(env *lispy.Environment, args []lispy.Value) lispy.Value {
	if err := checkArity("eval", args, 1); err != nil {
		return err
	}
	if err := checkType("eval", args, 0, "Q-Expression"); err != nil {
		return err
	}
	q := args[0].(*lispy.QExpr)
	return evaluator(env, lispy.MakeSExpr(q.Children...))
}}
