package builtins

import "github.com/lispy-lang/lispy"

func boolNumber(b bool) lispy.Number {
	if b {
		return 1
	}
	return 0
}

// Eq implements `==`: structural equality over any two values (spec §4.3.3).
var Eq = &lispy.Builtin{Name: "==", Fn: func(_ *lispy.Environment, args []lispy.Value) lispy.Value {
	if err := checkArity("==", args, 2); err != nil {
		return err
	}
	return boolNumber(args[0].Equal(args[1]))
}}

// Neq implements `!=`.
var Neq = &lispy.Builtin{Name: "!=", Fn: func(_ *lispy.Environment, args []lispy.Value) lispy.Value {
	if err := checkArity("!=", args, 2); err != nil {
		return err
	}
	return boolNumber(!args[0].Equal(args[1]))
}}

func numCompare(name string, cmp func(a, b lispy.Number) bool) *lispy.Builtin {
	return &lispy.Builtin{Name: name, Fn: func(_ *lispy.Environment, args []lispy.Value) lispy.Value {
		if err := checkArity(name, args, 2); err != nil {
			return err
		}
		if err := firstErr(checkType(name, args, 0, "Number"), checkType(name, args, 1, "Number")); err != nil {
			return err
		}
		return boolNumber(cmp(args[0].(lispy.Number), args[1].(lispy.Number)))
	}}
}

// Gt, Lt, Ge, Le implement `>`, `<`, `>=`, `<=`.
var (
	Gt = numCompare(">", func(a, b lispy.Number) bool { return a > b })
	Lt = numCompare("<", func(a, b lispy.Number) bool { return a < b })
	Ge = numCompare(">=", func(a, b lispy.Number) bool { return a >= b })
	Le = numCompare("<=", func(a, b lispy.Number) bool { return a <= b })
)
