// Package lexer implements the Ara byte-level lexer: a maximal-munch
// tokenizer that turns source bytes into a flat token vector terminated by
// exactly one Eof token (spec.md §4.2). Structured after the teacher's
// pkg/lexer (token.go's Token/TokenType shape, strings.go's escape-decoding
// style), generalized from PHP's keyword/operator set to Ara's.
package lexer

import (
	"strings"

	"github.com/ara-lang/ara-parser/pkg/diagnostic"
	"github.com/ara-lang/ara-parser/pkg/token"
)

// Lexer performs maximal-munch tokenization of one source unit.
type Lexer struct {
	name   string
	cur    *cursor
	tokens []token.Token
	fatal  *diagnostic.Issue
}

// New constructs a Lexer over content, tagging every Issue with name.
func New(name string, content []byte) *Lexer {
	return &Lexer{name: name, cur: newCursor(content)}
}

// Tokenize runs the lexer to completion (or to its first fatal issue) and
// returns the resulting token vector. On a fatal lexical error, the vector
// still ends with an Eof token and the second return value is non-nil
// (spec.md §4.2, §4.10).
func (l *Lexer) Tokenize() ([]token.Token, *diagnostic.Issue) {
	for {
		l.skipWhitespace()
		if l.cur.eof() {
			break
		}
		tok, fatal := l.scanOne()
		if fatal != nil {
			l.fatal = fatal
			break
		}
		l.tokens = append(l.tokens, tok)
	}
	l.tokens = append(l.tokens, token.Token{Kind: token.Eof, Span: l.cur.span(), Value: ""})
	return l.tokens, l.fatal
}

func (l *Lexer) skipWhitespace() {
	for !l.cur.eof() {
		switch l.cur.current() {
		case ' ', '\t', '\n', '\r':
			l.cur.next()
		default:
			return
		}
	}
}

func (l *Lexer) issue(code diagnostic.Code, message string, start token.Span) *diagnostic.Issue {
	return &diagnostic.Issue{
		Code: code, Message: message, SourceName: l.name,
		Start: start, End: l.cur.span(), Severity: diagnostic.SeverityError,
	}
}

// scanOne tokenizes exactly one token starting at the cursor, which must
// not be at EOF and must not be positioned on whitespace.
func (l *Lexer) scanOne() (token.Token, *diagnostic.Issue) {
	start := l.cur.span()
	ch := l.cur.current()

	switch {
	case ch == '<' && l.cur.atCaseInsensitive([]byte("<?php")):
		l.cur.skip(5)
		return token.Token{Kind: token.OpenTag, Span: start, Value: "<?php"}, nil
	case ch == '<' && l.cur.atCaseInsensitive([]byte("<?=")):
		l.cur.skip(3)
		return token.Token{Kind: token.OpenTagEcho, Span: start, Value: "<?="}, nil
	case ch == '<' && l.cur.atCaseInsensitive([]byte("<?")):
		l.cur.skip(2)
		return token.Token{Kind: token.OpenTagShort, Span: start, Value: "<?"}, nil
	case ch == '?' && l.cur.peekByte(1) == '>':
		l.cur.skip(2)
		return token.Token{Kind: token.CloseTag, Span: start, Value: "?>"}, nil
	case ch == '/' && l.cur.peekByte(1) == '/':
		return l.scanLineComment(start, "//"), nil
	case ch == '#' && l.cur.peekByte(1) == '[':
		l.cur.skip(2)
		return token.Token{Kind: token.AttributeStart, Span: start, Value: "#["}, nil
	case ch == '#':
		return l.scanLineComment(start, "#"), nil
	case ch == '/' && l.cur.peekByte(1) == '*':
		return l.scanBlockComment(start)
	case ch == '$' && isIdentifierStart(l.cur.peekByte(1)):
		return l.scanVariable(start), nil
	case isIdentifierStart(ch):
		return l.scanIdentifierOrPrefixedString(start)
	case ch == '\\' && isIdentifierStart(l.cur.peekByte(1)):
		return l.scanFullyQualifiedIdentifier(start), nil
	case ch >= '0' && ch <= '9':
		return l.scanNumber(start), nil
	case ch == '.' && isDigit(l.cur.peekByte(1)):
		return l.scanNumber(start), nil
	case ch == '\'':
		return l.scanSingleQuotedString(start, "")
	case ch == '"':
		return l.scanDoubleQuotedString(start, "")
	default:
		return l.scanOperator(start)
	}
}

func (l *Lexer) scanLineComment(start token.Span, marker string) token.Token {
	l.cur.skip(len(marker))
	for !l.cur.eof() && l.cur.current() != '\n' {
		if l.cur.current() == '?' && l.cur.peekByte(1) == '>' {
			break
		}
		l.cur.next()
	}
	value := string(l.cur.input[start.Position:l.cur.pos])
	return token.Token{Kind: token.Comment, Span: start, Value: value}
}

func (l *Lexer) scanBlockComment(start token.Span) (token.Token, *diagnostic.Issue) {
	isDoc := l.cur.peekByte(2) == '*' && l.cur.peekByte(3) != '/'
	l.cur.skip(2)
	for !l.cur.eof() {
		if l.cur.current() == '*' && l.cur.peekByte(1) == '/' {
			l.cur.skip(2)
			value := string(l.cur.input[start.Position:l.cur.pos])
			kind := token.Comment
			if isDoc {
				kind = token.DocComment
			}
			return token.Token{Kind: kind, Span: start, Value: value}, nil
		}
		l.cur.next()
	}
	return token.Token{}, l.issue(diagnostic.LUnclosedStringLiteral, "unclosed block comment", start)
}

func isIdentifierStart(ch byte) bool {
	return ch == '_' || (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z') || ch >= 0x80
}

func isIdentifierContinue(ch byte) bool {
	return isIdentifierStart(ch) || isDigit(ch)
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func (l *Lexer) scanVariable(start token.Span) token.Token {
	l.cur.next() // '$'
	for !l.cur.eof() && isIdentifierContinue(l.cur.current()) {
		l.cur.next()
	}
	value := string(l.cur.input[start.Position:l.cur.pos])
	return token.Token{Kind: token.Variable, Span: start, Value: value}
}

// scanIdentifierOrPrefixedString handles plain/qualified identifiers and
// the b"..."/B'...' string-prefix forms (spec.md §4.2).
func (l *Lexer) scanIdentifierOrPrefixedString(start token.Span) (token.Token, *diagnostic.Issue) {
	if l.cur.current() == 'b' || l.cur.current() == 'B' {
		prefix := string(l.cur.input[start.Position : start.Position+1])
		next := l.cur.peekByte(1)
		if next == '"' {
			l.cur.next()
			return l.scanDoubleQuotedString(start, prefix)
		}
		if next == '\'' {
			l.cur.next()
			return l.scanSingleQuotedString(start, prefix)
		}
	}
	return l.scanIdentifier(start), nil
}

func (l *Lexer) scanIdentifier(start token.Span) token.Token {
	qualified := false
	for {
		for !l.cur.eof() && isIdentifierContinue(l.cur.current()) {
			l.cur.next()
		}
		if l.cur.current() == '\\' && isIdentifierStart(l.cur.peekByte(1)) {
			qualified = true
			l.cur.next()
			continue
		}
		break
	}
	value := string(l.cur.input[start.Position:l.cur.pos])
	if qualified {
		return token.Token{Kind: token.QualifiedIdentifier, Span: start, Value: value}
	}
	kind := token.LookupIdentifier(value)
	return token.Token{Kind: kind, Span: start, Value: value}
}

func (l *Lexer) scanFullyQualifiedIdentifier(start token.Span) token.Token {
	l.cur.next() // leading backslash
	idStart := l.cur.span()
	inner := l.scanIdentifier(idStart)
	value := string(l.cur.input[start.Position:l.cur.pos])
	kind := token.FullyQualifiedIdentifier
	_ = inner
	return token.Token{Kind: kind, Span: start, Value: value}
}

// scanNumber handles binary/octal/hex integers and decimal integer/float
// literals with optional digit-group underscores and exponents
// (spec.md §4.2).
func (l *Lexer) scanNumber(start token.Span) token.Token {
	isFloat := false

	if l.cur.current() == '0' && (l.cur.peekByte(1) == 'b' || l.cur.peekByte(1) == 'B') {
		l.cur.skip(2)
		l.scanDigitsInBase(isBinaryDigit)
		return l.finishNumber(start, false)
	}
	if l.cur.current() == '0' && (l.cur.peekByte(1) == 'o' || l.cur.peekByte(1) == 'O') {
		l.cur.skip(2)
		l.scanDigitsInBase(isOctalDigit)
		return l.finishNumber(start, false)
	}
	if l.cur.current() == '0' && (l.cur.peekByte(1) == 'x' || l.cur.peekByte(1) == 'X') {
		l.cur.skip(2)
		l.scanDigitsInBase(isHexDigit)
		return l.finishNumber(start, false)
	}

	if l.cur.current() == '.' {
		isFloat = true
		l.cur.next()
		l.scanDigitsInBase(isDigit)
	} else {
		l.scanDigitsInBase(isDigit)
		if l.cur.current() == '.' && isDigit(l.cur.peekByte(1)) {
			isFloat = true
			l.cur.next()
			l.scanDigitsInBase(isDigit)
		} else if l.cur.current() == '.' && !isIdentifierStart(l.cur.peekByte(1)) && l.cur.peekByte(1) != '.' {
			isFloat = true
			l.cur.next()
		}
	}

	if l.cur.current() == 'e' || l.cur.current() == 'E' {
		save := *l.cur
		l.cur.next()
		if l.cur.current() == '+' || l.cur.current() == '-' {
			l.cur.next()
		}
		if isDigit(l.cur.current()) {
			isFloat = true
			l.scanDigitsInBase(isDigit)
		} else {
			*l.cur = save
		}
	}

	return l.finishNumber(start, isFloat)
}

func (l *Lexer) finishNumber(start token.Span, isFloat bool) token.Token {
	raw := l.cur.input[start.Position:l.cur.pos]
	value := stripDigitSeparators(raw)
	kind := token.LiteralInteger
	if isFloat {
		kind = token.LiteralFloat
	}
	return token.Token{Kind: kind, Span: start, Value: value}
}

// scanDigitsInBase consumes digits of the given predicate, allowing a single
// '_' between two digits as a separator (spec.md §4.2).
func (l *Lexer) scanDigitsInBase(isDigitFn func(byte) bool) {
	sawDigit := false
	for !l.cur.eof() {
		ch := l.cur.current()
		if isDigitFn(ch) {
			sawDigit = true
			l.cur.next()
			continue
		}
		if ch == '_' && sawDigit && isDigitFn(l.cur.peekByte(1)) {
			l.cur.next()
			continue
		}
		break
	}
}

func isBinaryDigit(ch byte) bool { return ch == '0' || ch == '1' }
func isOctalDigit(ch byte) bool  { return ch >= '0' && ch <= '7' }
func isHexDigit(ch byte) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func stripDigitSeparators(raw []byte) string {
	if !strings.ContainsRune(string(raw), '_') {
		return string(raw)
	}
	var b strings.Builder
	b.Grow(len(raw))
	for _, c := range raw {
		if c != '_' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// scanOperator handles three-, two-, and single-byte punctuation/operators
// (spec.md §4.2). Matching is longest-first (maximal munch).
func (l *Lexer) scanOperator(start token.Span) (token.Token, *diagnostic.Issue) {
	three := string(l.cur.peek(0, 3))
	if kind, ok := threeByteOps[three]; ok {
		l.cur.skip(3)
		return token.Token{Kind: kind, Span: start, Value: three}, nil
	}
	two := string(l.cur.peek(0, 2))
	if kind, ok := twoByteOps[two]; ok {
		l.cur.skip(2)
		return token.Token{Kind: kind, Span: start, Value: two}, nil
	}
	one := string(l.cur.peek(0, 1))
	if kind, ok := oneByteOps[one]; ok {
		l.cur.skip(1)
		return token.Token{Kind: kind, Span: start, Value: one}, nil
	}
	ch := l.cur.current()
	l.cur.next()
	return token.Token{}, l.issue(diagnostic.LUnrecognizableToken,
		"unrecognizable token '"+string(ch)+"'", start)
}

var threeByteOps = map[string]token.Kind{
	"!==": token.NotIdentical, "??=": token.CoalesceAssign, "?->": token.NullsafeArrow,
	"===": token.Identical, "...": token.Ellipsis, "::<": token.GenericStart,
	"**=": token.PowAssign, "<<=": token.ShiftLeftAssign, "<=>": token.Spaceship,
	">>=": token.ShiftRightAssign,
}

var twoByteOps = map[string]token.Kind{
	"!=": token.NotEq, "&&": token.BooleanAnd, "&=": token.AndAssign, "??": token.Coalesce,
	"?:": token.QuestionColon, "=>": token.DoubleArrow, "==": token.Eq, ".=": token.ConcatAssign,
	"/=": token.DivAssign, "**": token.Pow, "*=": token.MulAssign, "||": token.BooleanOr,
	"|=": token.OrAssign, "^=": token.XorAssign, "++": token.Inc, "+=": token.PlusAssign,
	"%=": token.ModAssign, "--": token.Dec, "->": token.Arrow, "-=": token.MinusAssign,
	"<<": token.ShiftLeft, "<=": token.Le, ">>": token.ShiftRight, ">=": token.Ge,
	"::": token.DoubleColon,
}

var oneByteOps = map[string]token.Kind{
	"!": token.Bang, "&": token.Ampersand, "?": token.Question, "=": token.Assign,
	".": token.Dot, "\\": token.NsSeparator, "/": token.Slash, "*": token.Asterisk,
	"|": token.Pipe, "^": token.Caret, "{": token.LBrace, "}": token.RBrace,
	"(": token.LParen, ")": token.RParen, ";": token.Semicolon, "+": token.Plus,
	"%": token.Percent, "-": token.Minus, "<": token.Lt, ">": token.Gt, ",": token.Comma,
	"[": token.LBracket, "]": token.RBracket, ":": token.Colon, "~": token.Tilde,
	"`": token.Backtick, "@": token.At, "$": token.Dollar,
}
