package lexer

import "github.com/ara-lang/ara-parser/pkg/token"

// cursor is a position-tracked byte stream. It owns no tokenization
// behavior; the Lexer builds on top of it. Advancing across '\n' bumps the
// line counter and resets the column to 1; every other byte advances the
// column by one. Positions never go backward and reads past EOF are bounded
// (never panic), per spec.md §4.1.
type cursor struct {
	input  []byte
	pos    int // index of the next unread byte
	line   int
	column int
}

func newCursor(input []byte) *cursor {
	return &cursor{input: input, pos: 0, line: 1, column: 1}
}

// span returns the current position as a token.Span.
func (c *cursor) span() token.Span {
	return token.Span{Position: c.pos, Line: c.line, Column: c.column}
}

// eof reports whether the cursor has consumed the whole input.
func (c *cursor) eof() bool { return c.pos >= len(c.input) }

// current returns the byte at the cursor, or 0 at EOF.
func (c *cursor) current() byte {
	if c.eof() {
		return 0
	}
	return c.input[c.pos]
}

// peek returns up to n bytes starting i bytes ahead of the cursor. The
// returned slice is bounded to the input length and is never longer than n.
func (c *cursor) peek(i, n int) []byte {
	start := c.pos + i
	if start < 0 || start >= len(c.input) {
		return nil
	}
	end := start + n
	if end > len(c.input) {
		end = len(c.input)
	}
	return c.input[start:end]
}

// peekByte returns the byte i positions ahead of the cursor, or 0 past EOF.
func (c *cursor) peekByte(i int) byte {
	p := c.peek(i, 1)
	if len(p) == 0 {
		return 0
	}
	return p[0]
}

// atCaseInsensitive reports whether the next n bytes equal the given ASCII
// bytes under case-insensitive comparison (used for `<?php`, spec.md §6).
func (c *cursor) atCaseInsensitive(want []byte) bool {
	got := c.peek(0, len(want))
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if toLowerASCIIByte(got[i]) != toLowerASCIIByte(want[i]) {
			return false
		}
	}
	return true
}

func toLowerASCIIByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// next advances the cursor by exactly one byte, updating line/column.
func (c *cursor) next() {
	if c.eof() {
		return
	}
	if c.input[c.pos] == '\n' {
		c.line++
		c.column = 1
	} else {
		c.column++
	}
	c.pos++
}

// skip advances the cursor by n bytes (bounded to the remaining input).
func (c *cursor) skip(n int) {
	for i := 0; i < n && !c.eof(); i++ {
		c.next()
	}
}

// read consumes and returns up to n bytes starting at the cursor.
func (c *cursor) read(n int) []byte {
	start := c.pos
	c.skip(n)
	end := c.pos
	if end > len(c.input) {
		end = len(c.input)
	}
	return c.input[start:end]
}
