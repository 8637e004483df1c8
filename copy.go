package lispy

// CopyValue returns a deep copy of v. Composite values (SExpr, QExpr)
// are copied recursively so that a caller holding the copy can never
// observe or cause mutation of the original's backing storage. Atoms
// are copied by value or, for *Error, by allocating a fresh instance
// with the same payload. A *Builtin is returned as is. Lambda copies
// share their captured Environment by reference: the environment
// itself is never duplicated, only the binding frame built for a call
// (see Environment.Copy).
func CopyValue(v Value) Value {
	switch val := v.(type) {
	case Number:
		return val
	case Symbol:
		return val
	case String:
		return val
	case *Error:
		return &Error{Message: val.Message}
	case *SExpr:
		return &SExpr{Children: copyChildren(val.Children)}
	case *QExpr:
		return &QExpr{Children: copyChildren(val.Children)}
	case *Builtin:
		return val
	case *Lambda:
		return &Lambda{
			Formals: CopyValue(val.Formals).(*QExpr),
			Body:    CopyValue(val.Body).(*QExpr),
			Env:     val.Env,
		}
	default:
		return v
	}
}

func copyChildren(children []Value) []Value {
	if children == nil {
		return nil
	}
	cp := make([]Value, len(children))
	for i, c := range children {
		cp[i] = CopyValue(c)
	}
	return cp
}
