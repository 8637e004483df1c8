package builtins

import "github.com/lispy-lang/lispy"

// All lists every builtin under its bootstrap name (spec §6.3), in the
// exact set that belongs in the root environment.
var All = map[string]*lispy.Builtin{
	"list": List,
	"head": Head,
	"tail": Tail,
	"eval": Eval,
	"join": Join,
	"def":  Def,
	"=":    Put,
	"\\":   Lambda,
	"if":   If,
	">":    Gt,
	"<":    Lt,
	">=":   Ge,
	"<=":   Le,
	"==":   Eq,
	"!=":   Neq,
	"+":    Add,
	"-":    Sub,
	"*":    Mul,
	"/":    Div,
}

// Register binds every builtin in All into env under its canonical name.
func Register(env *lispy.Environment) {
	for name, b := range All {
		env.Def(lispy.Symbol(name), b)
	}
}
