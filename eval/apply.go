package eval

import "github.com/lispy-lang/lispy"

// Apply implements spec §4.2.3: invoke a builtin directly, or bind a
// lambda's formals against args one at a time, evaluating the body once
// every formal has a value and returning a shortened partial
// application otherwise.
func Apply(env *lispy.Environment, f lispy.Function, args []lispy.Value) lispy.Value {
	builtin, isBuiltin := f.(*lispy.Builtin)
	if isBuiltin {
		return builtin.Fn(env, args)
	}
	return applyLambda(env, f.(*lispy.Lambda), args)
}

func applyLambda(env *lispy.Environment, l *lispy.Lambda, args []lispy.Value) lispy.Value {
	given := len(args)
	total := len(l.Formals.Children)

	formals := append([]lispy.Value(nil), l.Formals.Children...)
	lenv := l.Env.Copy()

	for len(args) > 0 {
		if len(formals) == 0 {
			return lispy.Errorf("Function passed too many arguments. Got %d, Expected %d.", given, total)
		}
		sym := formals[0].(lispy.Symbol)
		formals = formals[1:]

		if sym == lispy.SymbolAmp {
			if len(formals) != 1 {
				return lispy.Errorf("Function format invalid. Symbol '&' not followed by single symbol.")
			}
			nsym := formals[0].(lispy.Symbol)
			lenv.Put(nsym, lispy.MakeQExpr(args...))
			formals = nil
			args = nil
			break
		}

		val := args[0]
		args = args[1:]
		lenv.Put(sym, val)
	}

	if len(formals) == 1 && formals[0].(lispy.Symbol) == lispy.SymbolAmp {
		return lispy.Errorf("Function format invalid. Symbol '&' not followed by single symbol.")
	}
	if len(formals) == 2 && formals[0].(lispy.Symbol) == lispy.SymbolAmp {
		nsym := formals[1].(lispy.Symbol)
		lenv.Put(nsym, lispy.MakeQExpr())
		formals = nil
	}

	if len(formals) == 0 {
		lenv.SetParent(env)
		return Eval(lenv, lispy.MakeSExpr(l.Body.Children...))
	}

	return &lispy.Lambda{
		Formals: lispy.MakeQExpr(formals...),
		Body:    l.Body,
		Env:     lenv,
	}
}
