package builtins

import "github.com/lispy-lang/lispy"

// Lambda implements `\`: two QExpr arguments, formals and body. Every
// formals element must be a distinct Symbol (spec §4.3.6); the produced
// Function's captured environment starts empty, with no parent until a
// call installs one (spec §4.2.3).
var Lambda = &lispy.Builtin{Name: "\\", Fn: func(_ *lispy.Environment, args []lispy.Value) lispy.Value {
	if err := checkArity("\\", args, 2); err != nil {
		return err
	}
	if err := firstErr(
		checkType("\\", args, 0, "Q-Expression"),
		checkType("\\", args, 1, "Q-Expression"),
	); err != nil {
		return err
	}
	formals := args[0].(*lispy.QExpr)
	if _, errVal := symbolNames("\\", formals); errVal != nil {
		return errVal
	}
	return &lispy.Lambda{
		Formals: formals,
		Body:    args[1].(*lispy.QExpr),
		Env:     lispy.NewEnvironment(nil),
	}
}}
