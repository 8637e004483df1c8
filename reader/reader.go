// Package reader converts a syntax.Node parse tree into a lispy.Value,
// dispatching on tag words (syntax.Node.HasTag) as in spec §4.1.
package reader

import (
	"strconv"
	"strings"

	"github.com/lispy-lang/lispy"
	"github.com/lispy-lang/lispy/syntax"
)

// Read converts the parse tree rooted at n into a single Value. The
// only error this can produce at the value level is a numeric-range
// overflow, which is returned as an *lispy.Error value rather than a Go
// error — structural parse failures are the syntax package's concern
// and never reach here (spec §4.1, "Error conditions").
func Read(n *syntax.Node) lispy.Value {
	switch {
	case n.HasTag("number"):
		return readNumber(n.Contents)
	case n.HasTag("string"):
		return readString(n.Contents)
	case n.HasTag("symbol"):
		return lispy.Symbol(n.Contents)
	case n.Tag == syntax.RootTag || n.HasTag("sexpr"):
		return readSeq(n, func(children []lispy.Value) lispy.Value { return lispy.MakeSExpr(children...) })
	case n.HasTag("qexpr"):
		return readSeq(n, func(children []lispy.Value) lispy.Value { return lispy.MakeQExpr(children...) })
	default:
		return lispy.Errorf("unreadable node %q", n.Tag)
	}
}

func readNumber(contents string) lispy.Value {
	n, err := strconv.ParseInt(contents, 10, 64)
	if err != nil {
		return lispy.Errorf("invalid number")
	}
	return lispy.Number(n)
}

var stringUnescapes = map[byte]byte{
	'n':  '\n',
	't':  '\t',
	'r':  '\r',
	'"':  '"',
	'\\': '\\',
}

// readString strips the enclosing quotes from contents and undoes the
// \n, \t, \r, \", \\ escape sequences (spec §4.1).
func readString(contents string) lispy.Value {
	body := contents
	if len(body) >= 2 && body[0] == '"' && body[len(body)-1] == '"' {
		body = body[1 : len(body)-1]
	}
	var sb strings.Builder
	for i := 0; i < len(body); i++ {
		if body[i] == '\\' && i+1 < len(body) {
			if repl, ok := stringUnescapes[body[i+1]]; ok {
				sb.WriteByte(repl)
				i++
				continue
			}
		}
		sb.WriteByte(body[i])
	}
	return lispy.MakeString(sb.String())
}

// skip reports whether a child node must be excluded from a sequence's
// children: parser punctuation, a boundary-anchor "regex" node, or a
// comment (spec §4.1).
func skip(child *syntax.Node) bool {
	switch child.Contents {
	case "(", ")", "{", "}":
		return true
	}
	if child.Tag == "regex" {
		return true
	}
	return child.HasTag("comment")
}

func readSeq(n *syntax.Node, build func([]lispy.Value) lispy.Value) lispy.Value {
	children := make([]lispy.Value, 0, len(n.Children))
	for _, c := range n.Children {
		if skip(c) {
			continue
		}
		children = append(children, Read(c))
	}
	return build(children)
}
