package lexer

import (
	"testing"

	"github.com/ara-lang/ara-parser/pkg/token"
	"github.com/stretchr/testify/require"
)

func tokenize(t *testing.T, src string) []token.Token {
	t.Helper()
	l := New("test.ara", []byte(src))
	tokens, fatal := l.Tokenize()
	require.Nil(t, fatal, "unexpected lexer error")
	return tokens
}

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func TestTokenizeAlwaysEndsInEof(t *testing.T) {
	tokens := tokenize(t, "function foo(): int { return 1; }")
	require.NotEmpty(t, tokens)
	require.Equal(t, token.Eof, tokens[len(tokens)-1].Kind)
}

func TestTokenizeEmptySourceIsJustEof(t *testing.T) {
	tokens := tokenize(t, "")
	require.Equal(t, []token.Kind{token.Eof}, kinds(tokens))
}

func TestTokenizeKeywordsAndIdentifiers(t *testing.T) {
	tokens := tokenize(t, "class Foo extends Bar")
	require.Equal(t, []token.Kind{
		token.Class, token.Identifier, token.Extends, token.Identifier, token.Eof,
	}, kinds(tokens))
	require.Equal(t, "Foo", tokens[1].Value)
}

func TestTokenizeVariable(t *testing.T) {
	tokens := tokenize(t, "$count")
	require.Equal(t, token.Variable, tokens[0].Kind)
	require.Equal(t, "$count", tokens[0].Value)
}

func TestTokenizeQualifiedIdentifier(t *testing.T) {
	tokens := tokenize(t, `Foo\Bar\Baz`)
	require.Equal(t, token.QualifiedIdentifier, tokens[0].Kind)
	require.Equal(t, `Foo\Bar\Baz`, tokens[0].Value)
}

func TestTokenizeFullyQualifiedIdentifier(t *testing.T) {
	tokens := tokenize(t, `\Foo\Bar`)
	require.Equal(t, token.FullyQualifiedIdentifier, tokens[0].Kind)
	require.Equal(t, `\Foo\Bar`, tokens[0].Value)
}

func TestTokenizeIntegerLiteralBases(t *testing.T) {
	cases := []struct{ src, want string }{
		{"0b101", "0b101"},
		{"0o17", "0o17"},
		{"0x1F", "0x1F"},
		{"1_000_000", "1000000"},
	}
	for _, c := range cases {
		tokens := tokenize(t, c.src)
		require.Equal(t, token.LiteralInteger, tokens[0].Kind, c.src)
		require.Equal(t, c.want, tokens[0].Value, c.src)
	}
}

func TestTokenizeFloatLiteral(t *testing.T) {
	cases := []string{"1.5", "1.", ".5", "1e10", "1.5e-3"}
	for _, src := range cases {
		tokens := tokenize(t, src)
		require.Equal(t, token.LiteralFloat, tokens[0].Kind, src)
	}
}

func TestTokenizeMaximalMunchOperators(t *testing.T) {
	cases := []struct {
		src  string
		kind token.Kind
	}{
		{"<=>", token.Spaceship},
		{"<=", token.Le},
		{"<", token.Lt},
		{"??=", token.CoalesceAssign},
		{"??", token.Coalesce},
		{"?", token.Question},
		{"?->", token.NullsafeArrow},
		{"...", token.Ellipsis},
		{"::<", token.GenericStart},
		{"::", token.DoubleColon},
	}
	for _, c := range cases {
		tokens := tokenize(t, c.src)
		require.Equal(t, c.kind, tokens[0].Kind, c.src)
		require.Equal(t, c.src, tokens[0].Value, c.src)
	}
}

func TestTokenizeLineComment(t *testing.T) {
	tokens := tokenize(t, "// hello\nx")
	require.Equal(t, token.Comment, tokens[0].Kind)
	require.Equal(t, token.Identifier, tokens[1].Kind)
}

func TestTokenizeDocBlockComment(t *testing.T) {
	tokens := tokenize(t, "/** doc */ x")
	require.Equal(t, token.DocComment, tokens[0].Kind)
}

func TestTokenizePlainBlockComment(t *testing.T) {
	tokens := tokenize(t, "/* plain */ x")
	require.Equal(t, token.Comment, tokens[0].Kind)
}

func TestTokenizeUnclosedBlockCommentIsFatal(t *testing.T) {
	l := New("test.ara", []byte("/* never closes"))
	_, fatal := l.Tokenize()
	require.NotNil(t, fatal)
}

func TestTokenizeUnrecognizableTokenIsFatal(t *testing.T) {
	l := New("test.ara", []byte{0x01})
	_, fatal := l.Tokenize()
	require.NotNil(t, fatal)
}

func TestTokenizeOpenTagVariants(t *testing.T) {
	cases := []struct {
		src  string
		kind token.Kind
	}{
		{"<?php", token.OpenTag},
		{"<?=", token.OpenTagEcho},
		{"<?", token.OpenTagShort},
	}
	for _, c := range cases {
		tokens := tokenize(t, c.src)
		require.Equal(t, c.kind, tokens[0].Kind, c.src)
	}
}

func TestTokenizeAttributeStart(t *testing.T) {
	tokens := tokenize(t, "#[Foo]")
	require.Equal(t, token.AttributeStart, tokens[0].Kind)
}
