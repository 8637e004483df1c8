package syntax

import "strings"

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokString
	tokComment
	tokSymbol
	tokLParen
	tokRParen
	tokLBrace
	tokRBrace
	tokEOF
)

type token struct {
	kind     tokenKind
	contents string
}

// isSymbolRune tests the exact character class the grammar allows in a
// symbol (spec §6.1): [A-Za-z0-9_+\-*/\\=<>!&]
func isSymbolRune(r byte) bool {
	switch {
	case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		return true
	}
	return strings.IndexByte(`_+-*/\=<>!&`, r) >= 0
}

func isDigit(r byte) bool { return r >= '0' && r <= '9' }

// lexer turns source text into a flat token stream. It has no lookahead
// beyond one byte and never backtracks across tokens, matching the
// simple longest-match-per-token shape of a PEG/regex-combinator grammar.
type lexer struct {
	src []byte
	pos int
}

func newLexer(src string) *lexer { return &lexer{src: []byte(src)} }

func (l *lexer) peekByte() (byte, bool) {
	if l.pos >= len(l.src) {
		return 0, false
	}
	return l.src[l.pos], true
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case ' ', '\t', '\n', '\r':
			l.pos++
		default:
			return
		}
	}
}

// next returns the next token, or tokEOF at end of input. A malformed
// string literal (unterminated) is reported via ok=false; every other
// construct always succeeds because the symbol/number classes are
// closed under any single byte that doesn't start something else.
func (l *lexer) next() (token, bool) {
	l.skipSpace()
	b, ok := l.peekByte()
	if !ok {
		return token{kind: tokEOF}, true
	}
	switch b {
	case '(':
		l.pos++
		return token{kind: tokLParen, contents: "("}, true
	case ')':
		l.pos++
		return token{kind: tokRParen, contents: ")"}, true
	case '{':
		l.pos++
		return token{kind: tokLBrace, contents: "{"}, true
	case '}':
		l.pos++
		return token{kind: tokRBrace, contents: "}"}, true
	case ';':
		return l.lexComment(), true
	case '"':
		return l.lexString()
	}
	if isDigit(b) || (b == '-' && l.peekDigitAt(l.pos+1)) {
		return l.lexNumber(), true
	}
	if isSymbolRune(b) {
		return l.lexSymbol(), true
	}
	// Unknown byte: consume it as a one-byte symbol so the lexer always
	// makes progress; the reader never sees this case for well-formed
	// input per the grammar.
	l.pos++
	return token{kind: tokSymbol, contents: string(b)}, true
}

func (l *lexer) peekDigitAt(i int) bool { return i < len(l.src) && isDigit(l.src[i]) }

func (l *lexer) lexComment() token {
	start := l.pos
	for l.pos < len(l.src) && l.src[l.pos] != '\n' && l.src[l.pos] != '\r' {
		l.pos++
	}
	return token{kind: tokComment, contents: string(l.src[start:l.pos])}
}

func (l *lexer) lexNumber() token {
	start := l.pos
	if l.src[l.pos] == '-' {
		l.pos++
	}
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		l.pos++
	}
	return token{kind: tokNumber, contents: string(l.src[start:l.pos])}
}

func (l *lexer) lexSymbol() token {
	start := l.pos
	for l.pos < len(l.src) && isSymbolRune(l.src[l.pos]) {
		l.pos++
	}
	return token{kind: tokSymbol, contents: string(l.src[start:l.pos])}
}

// lexString scans a double-quoted literal, including its surrounding
// quotes in contents (the reader is responsible for stripping them and
// undoing escapes). Returns ok=false on an unterminated literal.
func (l *lexer) lexString() (token, bool) {
	start := l.pos
	l.pos++ // opening quote
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case '\\':
			l.pos += 2
			continue
		case '"':
			l.pos++
			return token{kind: tokString, contents: string(l.src[start:l.pos])}, true
		}
		l.pos++
	}
	return token{}, false
}
