package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupIdentifierIsCaseInsensitiveForKeywords(t *testing.T) {
	require.Equal(t, Function, LookupIdentifier("function"))
	require.Equal(t, Function, LookupIdentifier("FUNCTION"))
	require.Equal(t, Function, LookupIdentifier("FuncTion"))
}

func TestLookupIdentifierFallsBackToIdentifier(t *testing.T) {
	require.Equal(t, Identifier, LookupIdentifier("someVariableName"))
	require.Equal(t, Identifier, LookupIdentifier("Enumerable"))
}

func TestKindStringIsStable(t *testing.T) {
	require.Equal(t, "Eof", Eof.String())
	require.Equal(t, "Variable", Variable.String())
}

func TestTokenString(t *testing.T) {
	tok := Token{Kind: Identifier, Span: Span{Line: 1, Column: 1}, Value: "foo"}
	require.Contains(t, tok.String(), "foo")
}
