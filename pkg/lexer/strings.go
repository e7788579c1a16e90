package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/ara-lang/ara-parser/pkg/diagnostic"
	"github.com/ara-lang/ara-parser/pkg/token"
)

// scanSingleQuotedString scans '...' with only \\ and \' recognized as
// escapes; every other byte (including a bare backslash not followed by one
// of those two) is copied literally (spec.md §4.2). The token value is the
// decoded body together with its surrounding quote bytes and any byte-string
// prefix already consumed by the caller.
func (l *Lexer) scanSingleQuotedString(start token.Span, prefix string) (token.Token, *diagnostic.Issue) {
	var body strings.Builder
	body.WriteByte('\'')
	l.cur.next() // opening quote

	for {
		if l.cur.eof() {
			return token.Token{}, l.issue(diagnostic.LUnclosedStringLiteral,
				"unclosed string literal", start)
		}
		ch := l.cur.current()
		if ch == '\'' {
			l.cur.next()
			body.WriteByte('\'')
			break
		}
		if ch == '\\' && (l.cur.peekByte(1) == '\\' || l.cur.peekByte(1) == '\'') {
			l.cur.next()
			body.WriteByte(l.cur.current())
			l.cur.next()
			continue
		}
		body.WriteByte(ch)
		l.cur.next()
	}

	value := prefix + body.String()
	return token.Token{Kind: token.LiteralString, Span: start, Value: value}, nil
}

// scanDoubleQuotedString scans "..." with the full escape set of spec.md
// §4.2. prefix is the already-consumed b/B prefix byte (if any), included
// verbatim in the returned token value.
func (l *Lexer) scanDoubleQuotedString(start token.Span, prefix string) (token.Token, *diagnostic.Issue) {
	var body strings.Builder
	body.WriteByte('"')
	l.cur.next() // opening quote

	for {
		if l.cur.eof() {
			return token.Token{}, l.issue(diagnostic.LUnclosedStringLiteral,
				"unclosed string literal", start)
		}
		ch := l.cur.current()
		if ch == '"' {
			l.cur.next()
			body.WriteByte('"')
			break
		}
		if ch != '\\' {
			body.WriteByte(ch)
			l.cur.next()
			continue
		}

		// Escape sequence.
		l.cur.next() // consume backslash
		esc := l.cur.current()
		switch esc {
		case '"':
			body.WriteByte('"')
			l.cur.next()
		case '\\':
			body.WriteByte('\\')
			l.cur.next()
		case '$':
			body.WriteByte('$')
			l.cur.next()
		case 'n':
			body.WriteByte('\n')
			l.cur.next()
		case 'r':
			body.WriteByte('\r')
			l.cur.next()
		case 't':
			body.WriteByte('\t')
			l.cur.next()
		case 'v':
			body.WriteByte(0x0B)
			l.cur.next()
		case 'e':
			body.WriteByte(0x1B)
			l.cur.next()
		case 'f':
			body.WriteByte(0x0C)
			l.cur.next()
		case 'x':
			l.cur.next()
			n, ok := l.readHexDigits(1, 2)
			if !ok {
				body.WriteByte('x')
				continue
			}
			body.WriteByte(byte(n))
		case 'u':
			l.cur.next()
			if l.cur.current() != '{' {
				body.WriteString("u")
				continue
			}
			l.cur.next() // '{'
			digitsStart := l.cur.pos
			for isHexDigit(l.cur.current()) {
				l.cur.next()
			}
			digits := string(l.cur.input[digitsStart:l.cur.pos])
			if digits == "" || l.cur.current() != '}' {
				return token.Token{}, l.issue(diagnostic.LInvalidUnicodeEscape,
					"invalid unicode escape sequence: missing closing '}'", start)
			}
			l.cur.next() // '}'
			scalar, ok := parseHex(digits)
			if !ok || !utf8.ValidRune(rune(scalar)) || scalar > 0x10FFFF {
				return token.Token{}, l.issue(diagnostic.LInvalidUnicodeEscape,
					"invalid unicode escape sequence: not a valid Unicode scalar value", start)
			}
			var buf [utf8.UTFMax]byte
			n := utf8.EncodeRune(buf[:], rune(scalar))
			body.Write(buf[:n])
		case '0', '1', '2', '3', '4', '5', '6', '7':
			n, ok := l.readOctalDigits(1, 3)
			if !ok {
				return token.Token{}, l.issue(diagnostic.LInvalidOctalEscape,
					"invalid octal escape sequence", start)
			}
			body.WriteByte(byte(n))
		default:
			body.WriteByte('\\')
			body.WriteByte(esc)
			l.cur.next()
		}
	}

	value := prefix + body.String()
	return token.Token{Kind: token.LiteralString, Span: start, Value: value}, nil
}

// readHexDigits reads between min and max hex digits (already positioned at
// the first one) and returns their numeric value.
func (l *Lexer) readHexDigits(min, max int) (int, bool) {
	n := 0
	count := 0
	for count < max && isHexDigit(l.cur.current()) {
		n = n*16 + hexDigitValue(l.cur.current())
		l.cur.next()
		count++
	}
	return n, count >= min
}

// readOctalDigits reads between min and max octal digits, where the first
// digit is still the current byte.
func (l *Lexer) readOctalDigits(min, max int) (int, bool) {
	n := 0
	count := 0
	for count < max && isOctalDigit(l.cur.current()) {
		n = n*8 + int(l.cur.current()-'0')
		l.cur.next()
		count++
	}
	return n & 0xFF, count >= min
}

func hexDigitValue(ch byte) int {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0')
	case ch >= 'a' && ch <= 'f':
		return int(ch-'a') + 10
	case ch >= 'A' && ch <= 'F':
		return int(ch-'A') + 10
	}
	return 0
}

func parseHex(s string) (int, bool) {
	n := 0
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return 0, false
		}
		n = n*16 + hexDigitValue(s[i])
	}
	return n, true
}
