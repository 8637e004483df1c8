package builtins

import (
	"t73f.de/r/zero/set"

	"github.com/lispy-lang/lispy"
)

// symbolNames validates that names is a QExpr of distinct Symbols and
// returns them, grounded on the duplicate-binding check
// `sxbuiltins/let.go` performs with `set.New(...).Length()`.
func symbolNames(fn string, names *lispy.QExpr) ([]lispy.Symbol, lispy.Value) {
	syms := make([]lispy.Symbol, len(names.Children))
	for i, c := range names.Children {
		sym, ok := c.(lispy.Symbol)
		if !ok {
			return nil, lispy.Errorf("Function '%s' cannot define non-symbol. Got %s, Expected Symbol.", fn, typeName(c))
		}
		syms[i] = sym
	}
	if set.New(syms...).Length() != len(syms) {
		return nil, lispy.Errorf("Function '%s' passed duplicate symbols in binding list.", fn)
	}
	return syms, nil
}

func defineBuiltin(name string, bind func(env *lispy.Environment, sym lispy.Symbol, val lispy.Value)) *lispy.Builtin {
	return &lispy.Builtin{Name: name, Fn: func(env *lispy.Environment, args []lispy.Value) lispy.Value {
		if err := checkMinArity(name, args, 1); err != nil {
			return err
		}
		if err := checkType(name, args, 0, "Q-Expression"); err != nil {
			return err
		}
		names := args[0].(*lispy.QExpr)
		syms, errVal := symbolNames(name, names)
		if errVal != nil {
			return errVal
		}
		values := args[1:]
		if len(syms) != len(values) {
			return lispy.Errorf("Function '%s' cannot define incorrect number of values to symbols. Symbols: %d, Values: %d.",
				name, len(syms), len(values))
		}
		for i, sym := range syms {
			bind(env, sym, values[i])
		}
		return lispy.MakeSExpr()
	}}
}

// Def implements `def`: binds in the root frame (spec §4.3.5).
var Def = defineBuiltin("def", func(env *lispy.Environment, sym lispy.Symbol, val lispy.Value) { env.Def(sym, val) })

// Put implements `=`: binds in the current frame only (spec §4.3.5).
var Put = defineBuiltin("=", func(env *lispy.Environment, sym lispy.Symbol, val lispy.Value) { env.Put(sym, val) })
