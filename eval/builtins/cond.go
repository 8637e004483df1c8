package builtins

import "github.com/lispy-lang/lispy"

// If implements `if`: a Number condition, a then-QExpr, an else-QExpr
// (spec §4.3.4). The chosen branch is evaluated as an SExpr in the
// calling environment.
var If = &lispy.Builtin{Name: "if", Fn: func(env *lispy.Environment, args []lispy.Value) lispy.Value {
	if err := checkArity("if", args, 3); err != nil {
		return err
	}
	if err := firstErr(
		checkType("if", args, 0, "Number"),
		checkType("if", args, 1, "Q-Expression"),
		checkType("if", args, 2, "Q-Expression"),
	); err != nil {
		return err
	}
	cond := args[0].(lispy.Number)
	var branch *lispy.QExpr
	if cond != 0 {
		branch = args[1].(*lispy.QExpr)
	} else {
		branch = args[2].(*lispy.QExpr)
	}
	return evaluator(env, lispy.MakeSExpr(branch.Children...))
}}
