// Package eval implements the evaluator: eval/eval_sexpr/apply over the
// lispy value model and environment chain (spec §4.2).
package eval

import "github.com/lispy-lang/lispy"

// Eval evaluates v in env (spec §4.2.1):
//   - a Symbol resolves against env; an unbound symbol yields an Error.
//   - an SExpr delegates to evalSExpr.
//   - every other variant evaluates to itself.
func Eval(env *lispy.Environment, v lispy.Value) lispy.Value {
	switch val := v.(type) {
	case lispy.Symbol:
		if bound, ok := env.Lookup(val); ok {
			return bound
		}
		return lispy.Errorf("Unbound symbol '%s'!", string(val))
	case *lispy.SExpr:
		return evalSExpr(env, val)
	default:
		return v
	}
}

// evalSExpr implements spec §4.2.2.
func evalSExpr(env *lispy.Environment, s *lispy.SExpr) lispy.Value {
	children := make([]lispy.Value, len(s.Children))
	for i, c := range s.Children {
		children[i] = Eval(env, c)
	}
	for _, c := range children {
		if lispy.IsError(c) {
			return c
		}
	}
	switch len(children) {
	case 0:
		return lispy.MakeSExpr()
	case 1:
		return children[0]
	}
	head := children[0]
	fn, ok := head.(lispy.Function)
	if !ok {
		return lispy.Errorf("S-expression does not start with function")
	}
	return Apply(env, fn, children[1:])
}
