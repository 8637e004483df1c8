package lispy

import "strings"

// SExpr is an ordered, owned sequence of child values intended to be
// evaluated as a function application.
type SExpr struct {
	Children []Value
}

// MakeSExpr builds an SExpr from the given children.
func MakeSExpr(children ...Value) *SExpr { return &SExpr{Children: children} }

// IsAtom returns true only for the empty s-expression.
func (s *SExpr) IsAtom() bool { return len(s.Children) == 0 }

// Equal compares two s-expressions by length and pairwise-equal children.
func (s *SExpr) Equal(other Value) bool {
	os, ok := other.(*SExpr)
	return ok && equalChildren(s.Children, os.Children)
}

// String returns the printed form: "(", space-separated children, ")".
func (s *SExpr) String() string { return printExpr('(', ')', s.Children) }

func equalChildren(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i, v := range a {
		if !v.Equal(b[i]) {
			return false
		}
	}
	return true
}

func printExpr(open, close byte, children []Value) string {
	var sb strings.Builder
	sb.WriteByte(open)
	for i, c := range children {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(c.String())
	}
	sb.WriteByte(close)
	return sb.String()
}
