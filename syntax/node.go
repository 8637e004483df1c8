// Package syntax implements the concrete-syntax parser: it turns program
// text into a parse tree of Nodes, following the grammar of the
// external parser the core evaluator is built against (number, string,
// comment, symbol, sexpr, qexpr, expr, program).
package syntax

import "strings"

// Node is one parse-tree node. Tag is a space-separated label built the
// way the reference parser's tags work: it names the syntactic category
//("number", "string", "symbol", "sexpr", "qexpr") and, for punctuation
// and anchor nodes the reader must skip, carries "char" or "regex"
// instead. Contents holds literal text for leaf nodes (numbers, strings,
// symbols, and punctuation); Children holds sub-nodes in source order.
type Node struct {
	Tag      string
	Contents string
	Children []*Node
}

// HasTag reports whether tag appears as one of the node's tag words.
// The reader dispatches on it; it is a whole-word match, not a
// substring test, which gives the same answer for the single-word tags
// Parse produces.
func (n *Node) HasTag(tag string) bool {
	for _, word := range strings.Fields(n.Tag) {
		if word == tag {
			return true
		}
	}
	return false
}

// RootTag is the tag given to the top-level node returned by Parse.
const RootTag = ">"
