package builtins

import "github.com/lispy-lang/lispy"

func arithBuiltin(name string, unary func(lispy.Number) lispy.Value, fold func(a, b lispy.Number) lispy.Value) *lispy.Builtin {
	return &lispy.Builtin{Name: name, Fn: func(_ *lispy.Environment, args []lispy.Value) lispy.Value {
		if err := checkMinArity(name, args, 1); err != nil {
			return err
		}
		for i := range args {
			if err := checkType(name, args, i, "Number"); err != nil {
				return err
			}
		}
		if len(args) == 1 {
			return unary(args[0].(lispy.Number))
		}
		acc := args[0].(lispy.Number)
		for _, a := range args[1:] {
			result := fold(acc, a.(lispy.Number))
			if lispy.IsError(result) {
				return result
			}
			acc = result.(lispy.Number)
		}
		return acc
	}}
}

// Add implements `+`: unary identity, left-folded sum.
var Add = arithBuiltin("+",
	func(n lispy.Number) lispy.Value { return n },
	func(a, b lispy.Number) lispy.Value { return a + b },
)

// Sub implements `-`: unary negation, left-folded difference.
var Sub = arithBuiltin("-",
	func(n lispy.Number) lispy.Value { return -n },
	func(a, b lispy.Number) lispy.Value { return a - b },
)

// Mul implements `*`: unary identity, left-folded product.
var Mul = arithBuiltin("*",
	func(n lispy.Number) lispy.Value { return n },
	func(a, b lispy.Number) lispy.Value { return a * b },
)

// Div implements `/`: unary reciprocal (integer), left-folded quotient.
// Division by zero short-circuits the fold with an Error.
var Div = arithBuiltin("/",
	func(n lispy.Number) lispy.Value {
		if n == 0 {
			return lispy.Errorf("Division by zero!")
		}
		return lispy.Number(1 / n)
	},
	func(a, b lispy.Number) lispy.Value {
		if b == 0 {
			return lispy.Errorf("Division by zero!")
		}
		return a / b
	},
)
