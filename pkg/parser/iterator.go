// Package parser implements the comment-aware token iterator, the shared
// mutable parse state, and the recursive-descent/Pratt parsing core that
// turns a lexed token vector into an ast.Tree or a diagnostic.Report
// (spec.md §4.3-§4.10). Naming follows the teacher's pkg/parser curToken/
// peekToken/nextToken/expectPeek idiom (mnohosten-php-go/pkg/parser/*.go),
// generalized from PHP's grammar to Ara's.
package parser

import "github.com/ara-lang/ara-parser/pkg/token"

// TokenIterator wraps a flat token vector with a cursor and optional
// comment collection (spec.md §4.3). While collectComments is on,
// advancing past comment tokens accumulates them into pendingComments
// instead of exposing them through Current/Lookahead.
type TokenIterator struct {
	tokens          []token.Token
	cursor          int
	collectComments bool
	pendingComments []token.Token
}

// NewTokenIterator builds an iterator over tokens with comment collection
// enabled, matching the parser's default mode.
func NewTokenIterator(tokens []token.Token) *TokenIterator {
	it := &TokenIterator{tokens: tokens, collectComments: true}
	it.skipComments()
	return it
}

func (it *TokenIterator) eofToken() token.Token {
	return it.tokens[len(it.tokens)-1]
}

func (it *TokenIterator) isComment(k token.Kind) bool {
	return k == token.Comment || k == token.DocComment
}

// skipComments advances the cursor over any run of comment tokens,
// stashing them in pendingComments, when collection is enabled.
func (it *TokenIterator) skipComments() {
	if !it.collectComments {
		return
	}
	for it.cursor < len(it.tokens)-1 && it.isComment(it.tokens[it.cursor].Kind) {
		it.pendingComments = append(it.pendingComments, it.tokens[it.cursor])
		it.cursor++
	}
}

// Current returns the token at the cursor, clamped to the final (Eof)
// token when the cursor has run past the end.
func (it *TokenIterator) Current() token.Token {
	if it.cursor >= len(it.tokens) {
		return it.eofToken()
	}
	return it.tokens[it.cursor]
}

// Previous returns the token immediately before the cursor, clamped to 0.
func (it *TokenIterator) Previous() token.Token {
	i := it.cursor - 1
	if i < 0 {
		i = 0
	}
	if i >= len(it.tokens) {
		i = len(it.tokens) - 1
	}
	return it.tokens[i]
}

// Next advances the cursor by one token (re-applying comment collection),
// returning the token that was current before advancing.
func (it *TokenIterator) Next() token.Token {
	cur := it.Current()
	if it.cursor < len(it.tokens)-1 {
		it.cursor++
	}
	it.skipComments()
	return cur
}

// Lookahead returns the nth token ahead of the cursor (1 = next), skipping
// comments when collection is enabled, clamped to Eof.
func (it *TokenIterator) Lookahead(n int) token.Token {
	i := it.cursor
	remaining := n
	for remaining > 0 && i < len(it.tokens)-1 {
		i++
		if it.collectComments && it.isComment(it.tokens[i].Kind) {
			continue
		}
		remaining--
	}
	if i >= len(it.tokens) {
		return it.eofToken()
	}
	return it.tokens[i]
}

// Comments atomically drains and returns the accumulated pending comment
// group (spec.md §4.3).
func (it *TokenIterator) Comments() []token.Token {
	out := it.pendingComments
	it.pendingComments = nil
	return out
}

// IsEof reports whether the cursor has reached the Eof token.
func (it *TokenIterator) IsEof() bool { return it.Current().Kind == token.Eof }

// Reset zeros the cursor and clears any pending comments.
func (it *TokenIterator) Reset() {
	it.cursor = 0
	it.pendingComments = nil
	it.skipComments()
}

// WithCommentCollection switches collection on and resets the cursor.
func (it *TokenIterator) WithCommentCollection() *TokenIterator {
	it.collectComments = true
	it.Reset()
	return it
}

// WithoutCommentCollection switches collection off and resets the cursor.
func (it *TokenIterator) WithoutCommentCollection() *TokenIterator {
	it.collectComments = false
	it.Reset()
	return it
}
