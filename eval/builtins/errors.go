// Package builtins implements the built-in operator set bootstrapped
// into the root environment (spec §4.3, §6.3).
package builtins

import "github.com/lispy-lang/lispy"

// typeName returns the descriptive name a builtin error message uses
// for a Value's runtime type, grounded on the original implementation's
// ltype_name table.
func typeName(v lispy.Value) string {
	switch v.(type) {
	case lispy.Number:
		return "Number"
	case *lispy.Error:
		return "Error"
	case lispy.Symbol:
		return "Symbol"
	case lispy.String:
		return "String"
	case *lispy.SExpr:
		return "S-Expression"
	case *lispy.QExpr:
		return "Q-Expression"
	case lispy.Function:
		return "Function"
	default:
		return "Unknown"
	}
}

// checkArity reports an arity mismatch naming the function and the
// observed/expected counts, matching the original's exact phrasing.
func checkArity(name string, args []lispy.Value, want int) lispy.Value {
	if len(args) != want {
		return lispy.Errorf("Function '%s' passed incorrect number of arguments. Got %d, Expected %d.",
			name, len(args), want)
	}
	return nil
}

// checkMinArity reports an arity mismatch when fewer than want arguments
// were supplied.
func checkMinArity(name string, args []lispy.Value, want int) lispy.Value {
	if len(args) < want {
		return lispy.Errorf("Function '%s' passed incorrect number of arguments. Got %d, Expected at least %d.",
			name, len(args), want)
	}
	return nil
}

// checkType reports a type mismatch for argument index idx (0-based),
// naming the function, the offending index, the observed type, and the
// expected type.
func checkType(name string, args []lispy.Value, idx int, want string) lispy.Value {
	if typeName(args[idx]) != want {
		return lispy.Errorf("Function '%s' passed incorrect type for argument %d. Got %s, Expected %s.",
			name, idx, typeName(args[idx]), want)
	}
	return nil
}

// checkNonEmptyQExpr reports an empty-list misuse error for head/tail.
func checkNonEmptyQExpr(name string, q *lispy.QExpr) lispy.Value {
	if len(q.Children) == 0 {
		return lispy.Errorf("Function '%s' passed {}!", name)
	}
	return nil
}

func firstErr(errs ...lispy.Value) lispy.Value {
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}
